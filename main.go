package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"evolution-connector/internal/config"
	"evolution-connector/internal/domain/entities"
	Iservices "evolution-connector/internal/domain/interfaces/services"
	"evolution-connector/internal/infra/handlers"
	"evolution-connector/internal/infra/logger"
	"evolution-connector/internal/infra/provider"
	"evolution-connector/internal/infra/repository"
	"evolution-connector/internal/infra/routes"
	"evolution-connector/internal/infra/services"
	"evolution-connector/internal/middleware"
	client "evolution-connector/internal/pkg"

	"github.com/gorilla/mux"
)

func main() {
	// A missing .env is fine, the environment may already be set.
	_ = config.LoadEnv()

	ctx := context.Background()

	jsonLogs, err := config.GetBoolOrDefault("LOG_JSON", true)
	log := logger.NewLogger(ctx, jsonLogs, config.GetEnvOrDefault("LOG_LEVEL", "info"))
	if err != nil {
		log.Warn(err.Error())
	}

	timeout, err := config.GetDurationOrDefault("EVOLUTION_API_TIMEOUT", 30*time.Second)
	if err != nil {
		log.Fatal(err.Error())
	}

	evolutionProvider := provider.NewEvolutionProvider(
		log,
		config.GetEnv("EVOLUTION_API_URL"),
		config.GetEnv("EVOLUTION_API_KEY"),
		timeout,
	)

	var dispatchSvc Iservices.IDispatchService
	if uri := os.Getenv("MONGODB_URI"); uri != "" {
		mongoClient, err := client.MongoClient(ctx, uri)
		if err != nil {
			log.Fatal(err.Error())
		}
		defer mongoClient.Disconnect(context.Background())

		database := mongoClient.Database(config.GetEnvOrDefault("MONGODB_DATABASE", "EvolutionConnector"))
		dispatchRepo := repository.NewMongoRepository[entities.Dispatch](database)
		dispatchSvc = services.NewDispatchService(dispatchRepo, log)
		log.Info("Dispatch history enabled")
	} else {
		log.Warn("MONGODB_URI not set, dispatch history disabled")
	}

	var sendListSvc Iservices.ISendListService = services.NewSendListService(log, evolutionProvider, dispatchSvc)

	router := mux.NewRouter()
	router.Use(middleware.LoggingMiddleware(log))

	sendListHandlers := handlers.NewSendListHandlers(log, sendListSvc, dispatchSvc)

	routes := routes.NewRoutes(router, sendListHandlers)
	routes.Init()

	port := config.GetEnvOrDefault("PORT", "8080")
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", port),
		Handler: router,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Info(fmt.Sprintf("Server is running on port %s", port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(fmt.Sprintf("Error running HTTP server: %s", err))
		}
	}()

	<-stop
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error(fmt.Sprintf("Server forced to shutdown: %v", err))
	} else {
		log.Info("Server stopped gracefully.")
	}
}
