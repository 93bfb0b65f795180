package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mycrmsystems/elatco-will-system/internal/database"
	"github.com/mycrmsystems/elatco-will-system/internal/renders"
	"github.com/mycrmsystems/elatco-will-system/internal/storage"
	"github.com/mycrmsystems/elatco-will-system/internal/will/handler"
	"github.com/mycrmsystems/elatco-will-system/internal/will/repository"
	"github.com/mycrmsystems/elatco-will-system/internal/will/service"
)

// Standalone will service without the auth/session stack. Intended for local
// development and form testing; the admin routes are left ungated.
func main() {
	port := os.Getenv("WILL_SERVICE_PORT")
	if port == "" {
		port = "5001"
	}

	r := gin.New()
	r.Use(gin.Recovery())

	// Prefer Mongo-backed repositories when MONGODB_URI is provided.
	var repo repository.Repository
	var rendersStore renders.Store
	if mongoURI := os.Getenv("MONGODB_URI"); mongoURI != "" {
		client, err := database.ConnectMongo(context.Background(), mongoURI, 10*time.Second)
		if err != nil {
			log.Printf("warning: cannot connect to MongoDB (%v), using memory-backed repo", err)
		} else {
			db := client.Database(os.Getenv("MONGODB_DATABASE"))
			repo = repository.NewMongoRepo(db)
			rendersStore = renders.NewMongoStore(db.Collection("renders"))
		}
	}
	if repo == nil {
		repo = repository.NewMemoryRepo()
	}
	if rendersStore == nil {
		rendersStore = renders.NewMemoryStore()
	}

	var artifacts storage.Storage
	if cfg := storage.LoadMinIOConfig(); cfg.Endpoint != "" {
		ms, err := storage.NewMinIOStorage(cfg)
		if err != nil {
			log.Printf("warning: cannot connect to MinIO (%v), using memory-backed storage", err)
		} else {
			artifacts = ms
		}
	}
	if artifacts == nil {
		artifacts = storage.NewMemoryStorage()
	}

	prefix := os.Getenv("ARTIFACT_PREFIX")
	if prefix == "" {
		prefix = "will"
	}
	svc := service.New(repo, artifacts, rendersStore, prefix)
	handler.RegisterWillRoutes(r, svc, nil)

	log.Printf("will service listening on :%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
