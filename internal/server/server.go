package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/MohamedREDA-24/AI-interview-agent/internal/service"
)

// Server exposes the scheduling operations over HTTP for the conversational
// and web front-ends. Handlers decode, call a service, and encode plain
// results; no scheduling logic lives here.
type Server struct {
	slots    *service.SlotService
	booking  *service.BookingService
	sessions *service.SessionService
	logger   *zap.Logger
}

func New(slots *service.SlotService, booking *service.BookingService, sessions *service.SessionService, logger *zap.Logger) *Server {
	return &Server{
		slots:    slots,
		booking:  booking,
		sessions: sessions,
		logger:   logger,
	}
}

// Router builds the HTTP route table.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Get("/slots", s.handleListSlots)

		r.Route("/sessions", func(r chi.Router) {
			r.Post("/", s.handleBookSession)
			r.Get("/", s.handleListSessions)
			r.Get("/upcoming", s.handleUpcomingSessions)
			r.Get("/{sessionID}", s.handleSessionDetails)
			r.Post("/{sessionID}/cancel", s.handleCancelSession)
			r.Post("/{sessionID}/complete", s.handleCompleteSession)
		})
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
