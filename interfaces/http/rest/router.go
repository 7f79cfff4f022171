// Package rest wires the REST endpoints, middleware and handlers into the
// HTTP router.
package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/MauGud/amanda-project/interfaces/http/rest/handlers"
	"github.com/MauGud/amanda-project/interfaces/http/rest/middleware"
)

// Router creates and configures the HTTP router
type Router struct {
	phrases        handlers.PhraseReader
	memories       handlers.MemoryWriter
	contributions  handlers.MemoryContributor
	reminders      handlers.ReminderWriter
	maxUploadBytes int64
	enableCORS     bool
	logger         *zap.Logger
}

// NewRouter creates a new router instance
func NewRouter(
	phrases handlers.PhraseReader,
	memories handlers.MemoryWriter,
	contributions handlers.MemoryContributor,
	reminders handlers.ReminderWriter,
	maxUploadBytes int64,
	enableCORS bool,
	logger *zap.Logger,
) *Router {
	return &Router{
		phrases:        phrases,
		memories:       memories,
		contributions:  contributions,
		reminders:      reminders,
		maxUploadBytes: maxUploadBytes,
		enableCORS:     enableCORS,
		logger:         logger,
	}
}

// Setup configures all routes and middleware
func (rt *Router) Setup() http.Handler {
	router := chi.NewRouter()

	// Global middleware
	router.Use(middleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.Logger(rt.logger))

	if rt.enableCORS {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type", middleware.RequestIDHeader},
			ExposedHeaders: []string{middleware.RequestIDHeader},
			MaxAge:         300,
		}))
	}

	// Health check
	router.Get("/health", rt.healthCheck)

	router.Route("/api/v1", func(r chi.Router) {
		// Phrase endpoints
		r.Route("/phrases", func(r chi.Router) {
			phraseHandler := handlers.NewPhraseHandler(rt.phrases, rt.logger)
			r.Get("/", phraseHandler.ListPhrases)
			r.Get("/{phraseID}", phraseHandler.GetPhrase)
		})

		// Memory endpoints
		r.Route("/memories", func(r chi.Router) {
			memoryHandler := handlers.NewMemoryHandler(rt.memories, rt.maxUploadBytes, rt.logger)
			r.Get("/", memoryHandler.ListMemories)
			r.Post("/", memoryHandler.CreateMemory)
			r.Get("/{memoryID}", memoryHandler.GetMemory)
			r.Put("/{memoryID}", memoryHandler.UpdateMemory)
			r.Delete("/{memoryID}", memoryHandler.DeleteMemory)
		})

		// Visitor contribution endpoint
		r.Route("/shared", func(r chi.Router) {
			sharedHandler := handlers.NewSharedHandler(rt.contributions, rt.maxUploadBytes, rt.logger)
			r.Post("/memories", sharedHandler.ContributeMemory)
		})

		// Reminder endpoints
		r.Route("/reminders", func(r chi.Router) {
			reminderHandler := handlers.NewReminderHandler(rt.reminders, rt.logger)
			r.Get("/", reminderHandler.ListReminders)
			r.Post("/", reminderHandler.CreateReminder)
			r.Get("/{reminderID}", reminderHandler.GetReminder)
			r.Put("/{reminderID}", reminderHandler.UpdateReminder)
			r.Put("/{reminderID}/important", reminderHandler.SetImportant)
			r.Put("/{reminderID}/complete", reminderHandler.SetCompleted)
			r.Delete("/{reminderID}", reminderHandler.DeleteReminder)
		})
	})

	return router
}

// healthCheck handles health check requests
func (rt *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy"}`))
}
