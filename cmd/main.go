package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelReservationHandler "github.com/hyeonbit/Salon-BookingGateway/internal/api/handlers/cancel_reservation"
	chooseDateHandler "github.com/hyeonbit/Salon-BookingGateway/internal/api/handlers/choose_date"
	chooseTimeHandler "github.com/hyeonbit/Salon-BookingGateway/internal/api/handlers/choose_time"
	completeReservationHandler "github.com/hyeonbit/Salon-BookingGateway/internal/api/handlers/complete_reservation"
	createSelectionHandler "github.com/hyeonbit/Salon-BookingGateway/internal/api/handlers/create_selection"
	getAdminReservationsHandler "github.com/hyeonbit/Salon-BookingGateway/internal/api/handlers/get_admin_reservations"
	getAvailabilityHandler "github.com/hyeonbit/Salon-BookingGateway/internal/api/handlers/get_availability"
	getCategoriesHandler "github.com/hyeonbit/Salon-BookingGateway/internal/api/handlers/get_categories"
	getMeHandler "github.com/hyeonbit/Salon-BookingGateway/internal/api/handlers/get_me"
	getMenuHandler "github.com/hyeonbit/Salon-BookingGateway/internal/api/handlers/get_menu"
	getMenusHandler "github.com/hyeonbit/Salon-BookingGateway/internal/api/handlers/get_menus"
	getMyReservationsHandler "github.com/hyeonbit/Salon-BookingGateway/internal/api/handlers/get_my_reservations"
	getSelectionHandler "github.com/hyeonbit/Salon-BookingGateway/internal/api/handlers/get_selection"
	loginHandler "github.com/hyeonbit/Salon-BookingGateway/internal/api/handlers/login"
	resetSelectionHandler "github.com/hyeonbit/Salon-BookingGateway/internal/api/handlers/reset_selection"
	signUpHandler "github.com/hyeonbit/Salon-BookingGateway/internal/api/handlers/sign_up"
	submitReservationHandler "github.com/hyeonbit/Salon-BookingGateway/internal/api/handlers/submit_reservation"
	toggleOptionHandler "github.com/hyeonbit/Salon-BookingGateway/internal/api/handlers/toggle_option"
	"github.com/hyeonbit/Salon-BookingGateway/internal/api/middleware"
	"github.com/hyeonbit/Salon-BookingGateway/internal/config"
	"github.com/hyeonbit/Salon-BookingGateway/internal/domain"
	selectionsStore "github.com/hyeonbit/Salon-BookingGateway/internal/infra/storage/selections"
	salonAPIClient "github.com/hyeonbit/Salon-BookingGateway/internal/integrations/salonapi"
	accountsService "github.com/hyeonbit/Salon-BookingGateway/internal/service/accounts"
	catalogService "github.com/hyeonbit/Salon-BookingGateway/internal/service/catalog"
	reservationsService "github.com/hyeonbit/Salon-BookingGateway/internal/service/reservations"
	selectionsService "github.com/hyeonbit/Salon-BookingGateway/internal/service/selections"
	getAvailabilityUC "github.com/hyeonbit/Salon-BookingGateway/internal/usecase/get_availability"
	submitReservationUC "github.com/hyeonbit/Salon-BookingGateway/internal/usecase/submit_reservation"
	"github.com/hyeonbit/Salon-BookingGateway/pkg/authtoken"
	"github.com/hyeonbit/Salon-BookingGateway/pkg/clientmetrics"
	"github.com/hyeonbit/Salon-BookingGateway/pkg/logger"
	"github.com/hyeonbit/Salon-BookingGateway/pkg/metrics"
)

func main() {
	// Load configuration
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting Salon-BookingGateway...")
	log.Info("Configuration loaded from config.toml")

	// Initialize metrics (if enabled)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Initialize the salon API client, with upstream metrics when enabled
	var transport http.RoundTripper = http.DefaultTransport
	if cfg.Metrics.Enabled {
		transport = clientmetrics.WrapTransport(transport, metricsCollector)
	}
	salonClient := salonAPIClient.NewClient(
		cfg.SalonAPI.URL,
		time.Duration(cfg.SalonAPI.Timeout)*time.Second,
		transport,
		log,
	)
	log.Info("Salon API client initialized (url=%s, timeout=%ds)", cfg.SalonAPI.URL, cfg.SalonAPI.Timeout)

	// Token validation for the protected routes
	tokens := authtoken.NewService(
		cfg.Auth.JWTSecret,
		time.Duration(cfg.Auth.TokenTTLMinutes)*time.Minute,
	)

	// Business hours drive the slot grid
	hours := domain.BusinessHours{
		OpeningHour: cfg.Booking.OpeningHour,
		ClosingHour: cfg.Booking.ClosingHour,
		SlotMinutes: cfg.Booking.SlotMinutes,
	}
	log.Info("Business hours: %02d:00-%02d:00, slot=%dmin (%d slots/day)",
		hours.OpeningHour, hours.ClosingHour, hours.SlotMinutes, hours.SlotCount())

	// In-memory selection store with a TTL janitor for abandoned flows
	store := selectionsStore.NewStore(time.Duration(cfg.Booking.SelectionTTLMinutes) * time.Minute)
	stopJanitorCh := make(chan struct{})
	go func() {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()
		for {
			select {
			case now := <-ticker.C:
				if removed := store.Sweep(now); removed > 0 {
					log.Info("Selection janitor: removed %d expired selections, %d remain", removed, store.Len())
				}
			case <-stopJanitorCh:
				return
			}
		}
	}()

	// Initialize use cases
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(
		salonClient,
		salonClient,
		hours,
		log,
	)
	submitReservationUseCase := submitReservationUC.NewUseCase(
		store,
		salonClient,
		log,
	)

	// Initialize services
	catalogSvc := catalogService.NewService(salonClient, log)
	accountsSvc := accountsService.NewService(salonClient, log)
	reservationsSvc := reservationsService.NewService(salonClient, log)
	selectionsSvc := selectionsService.NewService(
		store,
		salonClient,
		getAvailabilityUseCase,
		cfg.Booking.SlotMinutes,
		log,
	)

	// Initialize handlers
	getCategories := getCategoriesHandler.NewHandler(catalogSvc, log)
	getMenus := getMenusHandler.NewHandler(catalogSvc, log)
	getMenu := getMenuHandler.NewHandler(catalogSvc, log)
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	signUp := signUpHandler.NewHandler(accountsSvc, log)
	login := loginHandler.NewHandler(accountsSvc, log)
	getMe := getMeHandler.NewHandler(accountsSvc, log)
	createSelection := createSelectionHandler.NewHandler(selectionsSvc, log)
	getSelection := getSelectionHandler.NewHandler(selectionsSvc, log)
	chooseDate := chooseDateHandler.NewHandler(selectionsSvc, log)
	toggleOption := toggleOptionHandler.NewHandler(selectionsSvc, log)
	chooseTime := chooseTimeHandler.NewHandler(selectionsSvc, log)
	resetSelection := resetSelectionHandler.NewHandler(selectionsSvc, log)
	submitReservation := submitReservationHandler.NewHandler(submitReservationUseCase, log)
	getMyReservations := getMyReservationsHandler.NewHandler(reservationsSvc, log)
	cancelReservation := cancelReservationHandler.NewHandler(reservationsSvc, log)
	getAdminReservations := getAdminReservationsHandler.NewHandler(reservationsSvc, log)
	completeReservation := completeReservationHandler.NewHandler(reservationsSvc, log)

	// Set up the router
	r := mux.NewRouter()
	r.Use(middleware.CORS(cfg.Server.CORSOrigin))

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (no authentication)
	// ============================================================

	api.HandleFunc("/categories", getCategories.Handle).Methods(http.MethodGet)
	api.HandleFunc("/menus", getMenus.Handle).Methods(http.MethodGet)
	api.HandleFunc("/menus/{menuId}", getMenu.Handle).Methods(http.MethodGet)
	api.HandleFunc("/availability", getAvailability.Handle).Methods(http.MethodGet)
	api.HandleFunc("/auth/sign-up", signUp.Handle).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", login.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (require a Bearer token)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(tokens, log))

	// --- Account ---
	protected.HandleFunc("/users/me", getMe.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/users/me/reservations", getMyReservations.Handle).Methods(http.MethodGet)

	// --- Booking flow ---
	protected.HandleFunc("/selections", createSelection.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/selections/{selectionId}", getSelection.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/selections/{selectionId}", resetSelection.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/selections/{selectionId}/date", chooseDate.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/selections/{selectionId}/options", toggleOption.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/selections/{selectionId}/time", chooseTime.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/selections/{selectionId}/submit", submitReservation.Handle).Methods(http.MethodPost)

	// --- Reservations ---
	protected.HandleFunc("/reservations/{reservationId}/cancel", cancelReservation.Handle).Methods(http.MethodPatch)

	// ============================================================
	// ADMIN ROUTES (require the ADMIN role)
	// ============================================================

	admin := protected.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.RequireAdmin(log))

	admin.HandleFunc("/reservations", getAdminReservations.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/reservations/{reservationId}/complete", completeReservation.Handle).Methods(http.MethodPatch)

	// Create the HTTP server
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Wait for a termination signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	close(stopJanitorCh)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
