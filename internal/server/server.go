// Package server exposes the planning services over HTTP. Every response uses
// the same envelope: {"success": true, "data": ...} on success and
// {"success": false, "error": {...}} on failure.
package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/hmorales/wedplan/internal/auth"
	"github.com/hmorales/wedplan/internal/middleware"
	"github.com/hmorales/wedplan/internal/service"
	"github.com/hmorales/wedplan/internal/storage"
)

// Server wires the service layer to HTTP routes.
type Server struct {
	guests         *service.GuestService
	vendors        *service.VendorService
	activities     *service.ActivityService
	events         *service.EventService
	locations      *service.LocationService
	accommodations *service.AccommodationService
	rsvps          *service.RSVPService
	budget         *service.BudgetService

	authenticator *auth.PasswordAuthenticator
	jwtManager    *auth.JWTManager
	logger        *slog.Logger
}

// New builds a server over the given store.
func New(store storage.Store, jwtManager *auth.JWTManager, logger *slog.Logger) *Server {
	return &Server{
		guests:         service.NewGuestService(store, logger),
		vendors:        service.NewVendorService(store, logger),
		activities:     service.NewActivityService(store, logger),
		events:         service.NewEventService(store, logger),
		locations:      service.NewLocationService(store, logger),
		accommodations: service.NewAccommodationService(store, logger),
		rsvps:          service.NewRSVPService(store, logger),
		budget:         service.NewBudgetService(store, logger),
		authenticator:  auth.NewPasswordAuthenticator(store),
		jwtManager:     jwtManager,
		logger:         logger,
	}
}

// Routes returns the full router with middleware applied.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestLogger(s.logger))
	r.Use(middleware.Metrics())

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeData(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", s.handleRegister)
		r.Post("/auth/login", s.handleLogin)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth(s.jwtManager))

			r.Route("/guests", func(r chi.Router) {
				r.Get("/", s.handleListGuests)
				r.Post("/", s.handleCreateGuest)
				r.Get("/export", s.handleExportGuests)
				r.Post("/import", s.handleImportGuests)
				r.Get("/{id}", s.handleGetGuest)
				r.Put("/{id}", s.handleUpdateGuest)
				r.Delete("/{id}", s.handleDeleteGuest)
			})

			r.Route("/vendors", func(r chi.Router) {
				r.Get("/", s.handleListVendors)
				r.Post("/", s.handleCreateVendor)
				r.Get("/{id}", s.handleGetVendor)
				r.Put("/{id}", s.handleUpdateVendor)
				r.Delete("/{id}", s.handleDeleteVendor)
				r.Post("/{id}/payments", s.handleRecordPayment)
			})

			r.Route("/activities", func(r chi.Router) {
				r.Get("/", s.handleListActivities)
				r.Post("/", s.handleCreateActivity)
				r.Get("/{id}", s.handleGetActivity)
				r.Put("/{id}", s.handleUpdateActivity)
				r.Delete("/{id}", s.handleDeleteActivity)
				r.Get("/{id}/cost", s.handleActivityCost)
				r.Get("/{id}/rsvps", s.handleListActivityRSVPs)
			})

			r.Route("/events", func(r chi.Router) {
				r.Get("/", s.handleListEvents)
				r.Post("/", s.handleCreateEvent)
				r.Get("/{id}", s.handleGetEvent)
				r.Put("/{id}", s.handleUpdateEvent)
				r.Delete("/{id}", s.handleDeleteEvent)
			})

			r.Route("/locations", func(r chi.Router) {
				r.Get("/", s.handleListLocations)
				r.Post("/", s.handleCreateLocation)
				r.Get("/{id}", s.handleGetLocation)
				r.Put("/{id}", s.handleUpdateLocation)
				r.Delete("/{id}", s.handleDeleteLocation)
			})

			r.Route("/accommodations", func(r chi.Router) {
				r.Get("/", s.handleListAccommodations)
				r.Post("/", s.handleCreateAccommodation)
				r.Get("/{id}", s.handleGetAccommodation)
				r.Put("/{id}", s.handleUpdateAccommodation)
				r.Delete("/{id}", s.handleDeleteAccommodation)
				r.Get("/{id}/room-types", s.handleListRoomTypes)
				r.Post("/{id}/room-types", s.handleCreateRoomType)
			})

			r.Route("/room-types", func(r chi.Router) {
				r.Delete("/{id}", s.handleDeleteRoomType)
				r.Get("/{id}/assignments", s.handleListRoomAssignments)
				r.Post("/{id}/assignments", s.handleAssignRoom)
				r.Post("/{id}/cost", s.handleRoomCost)
			})

			r.Delete("/room-assignments/{id}", s.handleUnassignRoom)

			r.Route("/rsvps", func(r chi.Router) {
				r.Post("/", s.handleCreateRSVP)
				r.Get("/{id}", s.handleGetRSVP)
				r.Put("/{id}", s.handleUpdateRSVP)
				r.Delete("/{id}", s.handleDeleteRSVP)
			})

			r.Route("/budget", func(r chi.Router) {
				r.Post("/", s.handleCalculateBudget)
				r.Get("/summary", s.handleBudgetSummary)
				r.Get("/payment-status", s.handlePaymentStatusReport)
				r.Get("/subsidies", s.handleSubsidyTracking)
			})

			r.Route("/reports", func(r chi.Router) {
				r.Get("/budget.xlsx", s.handleBudgetXLSX)
				r.Get("/payment-status.pdf", s.handlePaymentStatusPDF)
			})
		})
	})

	return r
}
