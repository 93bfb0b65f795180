package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterSwagger registers minimal Swagger/OpenAPI endpoints for the will service.
// - GET /swagger/index.html  -> a small HTML page that loads the OpenAPI JSON
// - GET /swagger/doc.json    -> machine-readable OpenAPI JSON
func RegisterSwagger(rg *gin.Engine) {
	rg.GET("/swagger/index.html", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.String(http.StatusOK, swaggerHTML)
	})

	rg.GET("/swagger/doc.json", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(swaggerJSON))
	})
}

const swaggerHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>elatco-will-system — Swagger</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@4/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@4/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '/swagger/doc.json',
        dom_id: '#swagger-ui',
      })
    </script>
  </body>
</html>`

// Minimal OpenAPI document covering the public and admin endpoints.
const swaggerJSON = `{
  "openapi": "3.0.0",
  "info": { "title": "elatco-will-system", "version": "v0.1.0" },
  "paths": {
    "/auth/login": {
      "post": {
        "summary": "Admin login",
        "requestBody": { "content": { "application/json": { "schema": {"type":"object","properties":{"email":{"type":"string"},"password":{"type":"string"}}}}}},
        "responses": { "200": { "description": "tokens returned" }, "401": { "description": "authentication failed" } }
      }
    },
    "/auth/refresh": {
      "post": { "summary": "Refresh access token", "requestBody": { "content": { "application/json": { "schema": {"type":"object","properties":{"refresh_token":{"type":"string"}}}}}}, "responses": { "200": { "description": "new access token" }, "401": { "description": "invalid refresh" } } }
    },
    "/auth/logout": {
      "post": { "summary": "Logout and invalidate refresh token", "requestBody": { "content": { "application/json": { "schema": {"type":"object","properties":{"refresh_token":{"type":"string"}}}}}}, "responses": { "200": { "description": "logged out" } } }
    },
    "/api/trust-types": {
      "get": { "summary": "List supported trust types", "responses": { "200": { "description": "trust type labels" } } }
    },
    "/api/wills": {
      "post": { "summary": "Submit a will form", "requestBody": { "content": { "application/json": { "schema": {"type":"object","properties":{"clientName":{"type":"string"},"dob":{"type":"string"},"address":{"type":"string"},"executors":{"type":"string"},"guardians":{"type":"string"},"gifts":{"type":"string"},"residuary":{"type":"string"},"trustType":{"type":"string"},"trustees":{"type":"string"},"beneficiaries":{"type":"string"},"ageOfAccess":{"type":"string"},"specialClauses":{"type":"string"}}}}}}, "responses": { "201": { "description": "record created, PDF rendered" }, "400": { "description": "invalid submission" } } },
      "get": { "summary": "List will records (admin)", "responses": { "200": { "description": "record summaries" }, "401": { "description": "missing or invalid token" } } }
    },
    "/api/wills/{id}": {
      "get": { "summary": "Get a will record (admin)", "responses": { "200": { "description": "record" }, "404": { "description": "unknown record" } } }
    },
    "/api/wills/{id}/pdf": {
      "get": { "summary": "Download the will PDF, regenerating if missing (admin)", "responses": { "200": { "description": "PDF bytes" }, "404": { "description": "unknown record" } } }
    },
    "/api/wills/{id}/renders": {
      "get": { "summary": "List render history for a record (admin)", "responses": { "200": { "description": "render entries" } } }
    },
    "/health": { "get": { "summary": "Liveness check", "responses": { "200": { "description": "healthy" } } } },
    "/ready": { "get": { "summary": "Readiness check", "responses": { "200": { "description": "ready" }, "503": { "description": "not ready" } } } }
  }
}`
