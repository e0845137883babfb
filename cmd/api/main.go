package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/GioMjds/pinterest-backend/internal/config"
	"github.com/GioMjds/pinterest-backend/internal/infrastructure/dynamo"
	jwtinfra "github.com/GioMjds/pinterest-backend/internal/infrastructure/jwt"
	"github.com/GioMjds/pinterest-backend/internal/infrastructure/smtp"
	"github.com/GioMjds/pinterest-backend/internal/pkg/logger"
	transporthttp "github.com/GioMjds/pinterest-backend/internal/transport/http"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found, reading from environment")
	}

	cfg := config.Load()
	log := logger.New(cfg.AppEnv)

	// Bootstrap DynamoDB tables (creates them if they don't exist).
	dynamoClient := dynamo.NewClient(cfg)
	dynamo.Bootstrap(context.Background(), dynamoClient, cfg.DynamoTables)

	jwtProvider, err := jwtinfra.NewProvider(cfg)
	if err != nil {
		log.Error("JWT provider not available", "err", err)
		os.Exit(1)
	}

	mailer := smtp.NewMailer(cfg)

	deps := &transporthttp.Deps{
		UserRepo:     dynamo.NewUserRepo(dynamoClient, cfg.DynamoTables.Users),
		OTPRepo:      dynamo.NewOTPRepo(dynamoClient, cfg.DynamoTables.OTPs),
		BoardRepo:    dynamo.NewBoardRepo(dynamoClient, cfg.DynamoTables.Boards),
		PinRepo:      dynamo.NewPinRepo(dynamoClient, cfg.DynamoTables.Pins),
		SaveRepo:     dynamo.NewSaveRepo(dynamoClient, cfg.DynamoTables.PinSaves),
		CommentRepo:  dynamo.NewCommentRepo(dynamoClient, cfg.DynamoTables.Comments),
		CategoryRepo: dynamo.NewCategoryRepo(dynamoClient, cfg.DynamoTables.Categories),
		Mailer:       mailer,
		JWTProvider:  jwtProvider,
		Logger:       log,
	}

	router := transporthttp.NewRouter(cfg, deps)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.AppPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("server starting", "port", cfg.AppPort, "env", cfg.AppEnv)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "err", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("forced shutdown", "err", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}
