package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/shopspring/decimal"

	anthropicclient "profilecoach/clients/anthropic"
	apifyclient "profilecoach/clients/apify"
	"profilecoach/config"
	"profilecoach/handlers"
	"profilecoach/services/intents"
	"profilecoach/services/profiles"
	"profilecoach/services/prompts"
	"profilecoach/services/responses"
	"profilecoach/services/sessions"
	"profilecoach/services/usage"
	"profilecoach/usecases/chat"
)

func main() {
	if err := run(); err != nil {
		log.Printf("❌ Fatal error: %v", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	// External collaborators
	scraperClient := apifyclient.NewApifyClient(
		cfg.ApifyConfig.APIToken,
		cfg.ApifyConfig.ActorID,
		cfg.ApifyConfig.LiAtCookie,
	)
	llmClient := anthropicclient.NewAnthropicClient(
		cfg.AnthropicConfig.APIKey,
		cfg.AnthropicConfig.Model,
		cfg.AnthropicConfig.MaxTokens,
	)

	// Domain services
	profilesService := profiles.NewProfilesService()
	intentsService := intents.NewIntentsService()
	promptsService := prompts.NewPromptsService()
	responsesService := responses.NewResponsesService()
	sessionsService := sessions.NewSessionsService()
	// Sonnet-class list prices per million tokens
	usageService := usage.NewUsageService(decimal.NewFromInt(3), decimal.NewFromInt(15))

	chatUseCase := chat.NewChatUseCase(
		scraperClient,
		llmClient,
		profilesService,
		intentsService,
		promptsService,
		responsesService,
		sessionsService,
		usageService,
		cfg.MaxHistoryPairs,
	)
	chatHandler := handlers.NewChatHTTPHandler(chatUseCase)

	router := mux.NewRouter()
	chatHandler.SetupEndpoints(router)

	// Health check endpoint
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte(`{"status":"ok"}`)); err != nil {
			log.Printf("❌ Failed to write health check response: %v", err)
		}
	}).Methods("GET")

	// Setup CORS middleware
	allowedOrigins := strings.Split(cfg.CORSAllowedOrigins, ",")
	for i, origin := range allowedOrigins {
		allowedOrigins[i] = strings.TrimSpace(origin)
	}

	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	})

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           c.Handler(router),
		ReadHeaderTimeout: 30 * time.Second,
	}

	return handleGracefulShutdown(server)
}

func handleGracefulShutdown(server *http.Server) error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("✅ Listening on http://localhost%s", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("❌ Server error: %v", err)
		}
	}()

	<-stop
	log.Printf("🛑 Shutdown signal received, cleaning up...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return err
	}

	log.Printf("✅ Server shut down cleanly")
	return nil
}
