package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mycrmsystems/elatco-will-system/internal/will"
	"github.com/mycrmsystems/elatco-will-system/internal/will/service"
	"github.com/mycrmsystems/elatco-will-system/pkg/logger"
)

// RegisterWillRoutes wires the submission endpoints and, behind adminGate,
// the admin listing/detail/download endpoints. adminGate may be nil for
// ungated dev/test deployments.
func RegisterWillRoutes(r *gin.Engine, svc *service.Service, adminGate gin.HandlerFunc) {
	// public submission surface
	r.GET("/api/trust-types", func(c *gin.Context) {
		c.JSON(http.StatusOK, will.TrustTypes())
	})

	r.POST("/api/wills", func(c *gin.Context) {
		var sub will.Submission
		if err := c.ShouldBindJSON(&sub); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		w, err := svc.Create(c.Request.Context(), &sub)
		if err != nil {
			if errors.Is(err, will.ErrClientNameRequired) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			logger.Errorf("will create failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create will"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"id": w.ID, "clientName": w.ClientName, "pdfFilename": w.PDFFilename})
	})

	// admin surface
	admin := r.Group("/api")
	if adminGate != nil {
		admin.Use(adminGate)
	}

	admin.GET("/wills", func(c *gin.Context) {
		list, err := svc.List(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
			return
		}
		out := make([]gin.H, 0, len(list))
		for _, w := range list {
			out = append(out, gin.H{
				"id":          w.ID,
				"clientName":  w.ClientName,
				"createdAt":   w.CreatedAt,
				"trustType":   w.TrustType,
				"pdfFilename": w.PDFFilename,
			})
		}
		c.JSON(http.StatusOK, out)
	})

	admin.GET("/wills/:id", func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		w, err := svc.Get(c.Request.Context(), id)
		if err != nil {
			notFoundOr500(c, err)
			return
		}
		c.JSON(http.StatusOK, w)
	})

	admin.GET("/wills/:id/pdf", func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		w, data, err := svc.EnsureArtifact(c.Request.Context(), id)
		if err != nil {
			notFoundOr500(c, err)
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", w.PDFFilename))
		c.Data(http.StatusOK, "application/pdf", data)
	})

	admin.GET("/wills/:id/renders", func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		hist, err := svc.RenderHistory(c.Request.Context(), id)
		if err != nil {
			notFoundOr500(c, err)
			return
		}
		c.JSON(http.StatusOK, hist)
	})
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

func notFoundOr500(c *gin.Context, err error) {
	if errors.Is(err, service.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	logger.Errorf("will request failed: %v", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}
