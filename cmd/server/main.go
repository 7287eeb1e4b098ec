package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"photoevent-admin-go/internal/api"
	"photoevent-admin-go/internal/config"
	"photoevent-admin-go/internal/core"
	"photoevent-admin-go/internal/db"
	"photoevent-admin-go/internal/middleware"
	"photoevent-admin-go/internal/session"
)

func main() {
	// Load .env if present; real environments set variables directly.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("Warning: could not load .env file: %v", err)
	}

	zapLogger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("CRITICAL_ERROR: Failed to initialize Zap logger: %v", err)
	}
	defer zapLogger.Sync()
	zapLogger.Info("Zap logger initialized successfully.")

	appConfig, err := config.LoadConfig()
	if err != nil {
		zapLogger.Fatal("CRITICAL_ERROR: Failed to load application configuration", zap.Error(err))
	}
	zapLogger.Info("Application configuration loaded successfully.")

	initCtx, cancelInitCtx := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelInitCtx()
	if err := db.InitFirestore(initCtx, appConfig); err != nil {
		zapLogger.Fatal("CRITICAL_ERROR: Failed to initialize Firestore and Firebase Admin SDK", zap.Error(err))
	}
	zapLogger.Info("Firebase Admin SDK (Firestore, Auth) initialized successfully.")

	firestoreClient := db.GetFirestoreClient()
	firebaseAuthClient := db.GetFirebaseAuthClient()
	if firestoreClient == nil {
		zapLogger.Fatal("CRITICAL_ERROR: Firestore client is nil after initialization. Application cannot start.")
	}
	if firebaseAuthClient == nil {
		zapLogger.Fatal("CRITICAL_ERROR: Firebase Auth client is nil after initialization. Application cannot start.")
	}

	// Repositories
	userRepo := db.NewFirestoreUserRepository(firestoreClient)
	eventRepo := db.NewFirestoreEventRepository(firestoreClient)
	planRepo := db.NewFirestorePlanRepository(firestoreClient)
	paymentRepo := db.NewFirestorePaymentRepository(firestoreClient)
	guestRepo := db.NewFirestoreGuestUserRepository(firestoreClient)
	activityRepo := db.NewFirestoreActivityRepository(firestoreClient)
	authenticator := db.NewIdentityClient(appConfig.FirebaseWebAPIKey, firebaseAuthClient)
	zapLogger.Info("Repositories initialized successfully.")

	// Session manager: restore any durable markers from a previous run
	// before the first request arrives.
	sessions := session.NewManager(session.NewFileStore(appConfig.SessionFile), zapLogger)
	sessions.Sync()

	// Core services
	statsService := core.NewStatsService(userRepo, eventRepo, guestRepo, paymentRepo, zapLogger)
	planService := core.NewPlanService(planRepo, zapLogger)
	userService := core.NewUserService(userRepo, activityRepo, zapLogger)
	eventService := core.NewEventService(eventRepo, guestRepo, zapLogger)
	authService := core.NewAuthService(authenticator, sessions, appConfig.AdminEmail, zapLogger)
	zapLogger.Info("Core services initialized successfully.")

	if strings.ToLower(appConfig.GinMode) == "release" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}
	router := gin.New()

	// Global middleware; order matters: request id before the logger that
	// reads it, recovery after the logger.
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.RequestLogger(zapLogger))
	router.Use(middleware.RecoveryMiddleware(zapLogger))
	router.Use(middleware.CORSMiddleware(appConfig))

	api.SetupRoutes(
		router,
		appConfig,
		zapLogger,
		sessions,
		authService,
		statsService,
		planService,
		userService,
		eventService,
	)

	serverAddr := fmt.Sprintf(":%s", appConfig.Port)
	httpServer := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	zapLogger.Info("Starting HTTP server...", zap.String("address", serverAddr), zap.String("ginMode", gin.Mode()))
	go func() {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("Failed to start HTTP server", zap.Error(err))
		}
	}()

	quitChannel := make(chan os.Signal, 1)
	signal.Notify(quitChannel, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quitChannel
	zapLogger.Info("Received shutdown signal", zap.String("signal", sig.String()))

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		zapLogger.Fatal("Server forced to shutdown due to error during graceful shutdown", zap.Error(err))
	}

	if err := firestoreClient.Close(); err != nil {
		zapLogger.Warn("Failed to close Firestore client", zap.Error(err))
	}

	zapLogger.Info("Server exiting gracefully.")
}
