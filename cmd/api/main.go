package main

import (
	"context"
	"encoding/json"
	"log"
	"os"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	fbapp "firebase.google.com/go/v4"

	"greengarden/internal/adapter/api"
	"greengarden/internal/adapter/api/handler"
	apimiddleware "greengarden/internal/adapter/api/middleware"
	"greengarden/internal/adapter/api/router"
	"greengarden/internal/adapter/repository"
	"greengarden/internal/domain/entity"
	"greengarden/internal/infrastructure/firebase"
	"greengarden/internal/infrastructure/storage"
	"greengarden/internal/infrastructure/websocket"
	"greengarden/internal/usecase"
	"greengarden/pkg/config"
	"greengarden/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opts []option.ClientOption

	// Service account from environment variable (production) or file path
	// (local development).
	if serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON"); serviceAccountJSON != "" {
		opts = append(opts, option.WithCredentialsJSON([]byte(serviceAccountJSON)))
	} else if serviceAccountPath := os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH"); serviceAccountPath != "" {
		if _, err := os.Stat(serviceAccountPath); os.IsNotExist(err) {
			log.Fatalf("Service account file does not exist: %s", serviceAccountPath)
		}
		opts = append(opts, option.WithCredentialsFile(serviceAccountPath))
	}

	firebaseApp, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: cfg.FirebaseProject}, opts...)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	authClient, err := firebaseApp.Auth(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase Auth: %v", err)
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opts...)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	storageClient, err := storage.NewCloudStorageClient(ctx, cfg.StorageBucket, opts...)
	if err != nil {
		log.Fatalf("Failed to initialize Cloud Storage: %v", err)
	}
	defer storageClient.Close()

	plantRepo := repository.NewFirestorePlantRepository(firestoreClient)
	categoryRepo := repository.NewFirestoreCategoryRepository(firestoreClient)
	userRepo := repository.NewFirestoreUserRepository(firestoreClient)

	firebaseAuthClient := firebase.NewFirebaseAuthClient(authClient, cfg.FirebaseApiKey)

	authUseCase := usecase.NewAuthUseCase(userRepo, storageClient, firebaseAuthClient)
	plantUseCase := usecase.NewPlantUseCase(plantRepo)
	categoryUseCase := usecase.NewCategoryUseCase(categoryRepo)
	userUseCase := usecase.NewUserUseCase(userRepo, storageClient, firebaseAuthClient)

	handler.Setup(authUseCase, plantUseCase, categoryUseCase, userUseCase)
	handler.SetupUploadHandler(storageClient)

	// Live streams: one repository subscription per collection fans out to
	// every connected WebSocket client.
	catalogManager := websocket.NewManager()
	catalogManager.Start(ctx)

	unsubscribeCatalog := plantUseCase.SubscribeCatalog(ctx,
		func(plants []*entity.Plant) {
			payload, err := json.Marshal(map[string]interface{}{
				"type":   "catalog",
				"plants": plants,
			})
			if err != nil {
				logger.Error("Failed to encode catalog snapshot: %v", err)
				return
			}
			catalogManager.Broadcast <- payload
		},
		func(err error) {
			logger.Error("Catalog subscription error: %v", err)
		},
	)
	defer unsubscribeCatalog()

	categoryManager := websocket.NewManager()
	categoryManager.Start(ctx)

	unsubscribeCategories := categoryUseCase.SubscribeCategories(ctx,
		func(categories []*entity.Category) {
			payload, err := json.Marshal(map[string]interface{}{
				"type":       "categories",
				"categories": categories,
			})
			if err != nil {
				logger.Error("Failed to encode category snapshot: %v", err)
				return
			}
			categoryManager.Broadcast <- payload
		},
		func(err error) {
			logger.Error("Category subscription error: %v", err)
		},
	)
	defer unsubscribeCategories()

	e := echo.New()

	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(authClient, userRepo)
	adminMiddleware := apimiddleware.NewAdminMiddleware()

	wsHandler := handler.NewWebSocketHandler(catalogManager, categoryManager)

	router.Setup(e, authMiddleware, adminMiddleware)
	router.SetupWebSocketRouter(e, wsHandler)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
