package main

import (
	"log"
	"os"

	"github.com/Shxreef603/Fitly/config"
	"github.com/Shxreef603/Fitly/controllers"
	"github.com/Shxreef603/Fitly/routes"
	"github.com/Shxreef603/Fitly/services"
	"github.com/Shxreef603/Fitly/utils"
)

func main() {
	config.InitDB()
	utils.InitS3()
	utils.InitSES()

	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "data"
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		log.Fatalf("data dir: %v", err)
	}

	hub := services.NewSyncHub()
	remote := services.NewRemoteStore(config.DB)
	sessions := services.NewSessionManager(dataDir, remote, hub)
	auth := services.NewAuthService(config.DB)
	ai := services.NewOpenRouterService()

	rek, err := services.NewRekognitionService()
	if err != nil {
		log.Printf("rekognition disabled: %v", err)
		rek = nil
	}
	scanner := services.NewScanService(ai, rek)

	controllers.Init(sessions, auth, ai, scanner, hub)

	r := routes.SetupRouter()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
