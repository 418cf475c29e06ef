package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	addChargeHandler "github.com/m04kA/SMC-HotelFrontDesk/internal/api/handlers/add_charge"
	businessDateHandler "github.com/m04kA/SMC-HotelFrontDesk/internal/api/handlers/business_date"
	cancelReservationHandler "github.com/m04kA/SMC-HotelFrontDesk/internal/api/handlers/cancel_reservation"
	checkInHandler "github.com/m04kA/SMC-HotelFrontDesk/internal/api/handlers/check_in"
	checkOutHandler "github.com/m04kA/SMC-HotelFrontDesk/internal/api/handlers/check_out"
	createReservationHandler "github.com/m04kA/SMC-HotelFrontDesk/internal/api/handlers/create_reservation"
	getAvailableRoomsHandler "github.com/m04kA/SMC-HotelFrontDesk/internal/api/handlers/get_available_rooms"
	getFinancialSummaryHandler "github.com/m04kA/SMC-HotelFrontDesk/internal/api/handlers/get_financial_summary"
	getReservationHandler "github.com/m04kA/SMC-HotelFrontDesk/internal/api/handlers/get_reservation"
	guestsHandler "github.com/m04kA/SMC-HotelFrontDesk/internal/api/handlers/guests"
	invoicesHandler "github.com/m04kA/SMC-HotelFrontDesk/internal/api/handlers/invoices"
	issueInvoiceHandler "github.com/m04kA/SMC-HotelFrontDesk/internal/api/handlers/issue_invoice"
	listMovementsHandler "github.com/m04kA/SMC-HotelFrontDesk/internal/api/handlers/list_movements"
	listReservationsHandler "github.com/m04kA/SMC-HotelFrontDesk/internal/api/handlers/list_reservations"
	postConsumptionHandler "github.com/m04kA/SMC-HotelFrontDesk/internal/api/handlers/post_consumption"
	recordMovementHandler "github.com/m04kA/SMC-HotelFrontDesk/internal/api/handlers/record_movement"
	reservationCalendarHandler "github.com/m04kA/SMC-HotelFrontDesk/internal/api/handlers/reservation_calendar"
	roomsHandler "github.com/m04kA/SMC-HotelFrontDesk/internal/api/handlers/rooms"
	updateReservationHandler "github.com/m04kA/SMC-HotelFrontDesk/internal/api/handlers/update_reservation"
	"github.com/m04kA/SMC-HotelFrontDesk/internal/api/middleware"
	"github.com/m04kA/SMC-HotelFrontDesk/internal/config"
	"github.com/m04kA/SMC-HotelFrontDesk/internal/infra/migrations"
	clockRepo "github.com/m04kA/SMC-HotelFrontDesk/internal/infra/storage/clock"
	guestRepo "github.com/m04kA/SMC-HotelFrontDesk/internal/infra/storage/guest"
	invoiceRepo "github.com/m04kA/SMC-HotelFrontDesk/internal/infra/storage/invoice"
	movementRepo "github.com/m04kA/SMC-HotelFrontDesk/internal/infra/storage/movement"
	reservationRepo "github.com/m04kA/SMC-HotelFrontDesk/internal/infra/storage/reservation"
	roomRepo "github.com/m04kA/SMC-HotelFrontDesk/internal/infra/storage/room"
	"github.com/m04kA/SMC-HotelFrontDesk/internal/service/availability"
	billingService "github.com/m04kA/SMC-HotelFrontDesk/internal/service/billing"
	clockService "github.com/m04kA/SMC-HotelFrontDesk/internal/service/clock"
	guestsService "github.com/m04kA/SMC-HotelFrontDesk/internal/service/guests"
	reservationsService "github.com/m04kA/SMC-HotelFrontDesk/internal/service/reservations"
	roomsService "github.com/m04kA/SMC-HotelFrontDesk/internal/service/rooms"
	addChargeUC "github.com/m04kA/SMC-HotelFrontDesk/internal/usecase/add_charge"
	cancelReservationUC "github.com/m04kA/SMC-HotelFrontDesk/internal/usecase/cancel_reservation"
	checkInUC "github.com/m04kA/SMC-HotelFrontDesk/internal/usecase/check_in"
	checkOutUC "github.com/m04kA/SMC-HotelFrontDesk/internal/usecase/check_out"
	createReservationUC "github.com/m04kA/SMC-HotelFrontDesk/internal/usecase/create_reservation"
	getAvailableRoomsUC "github.com/m04kA/SMC-HotelFrontDesk/internal/usecase/get_available_rooms"
	issueInvoiceUC "github.com/m04kA/SMC-HotelFrontDesk/internal/usecase/issue_invoice"
	postConsumptionUC "github.com/m04kA/SMC-HotelFrontDesk/internal/usecase/post_consumption"
	recordMovementUC "github.com/m04kA/SMC-HotelFrontDesk/internal/usecase/record_movement"
	updateReservationUC "github.com/m04kA/SMC-HotelFrontDesk/internal/usecase/update_reservation"
	"github.com/m04kA/SMC-HotelFrontDesk/pkg/dbmetrics"
	"github.com/m04kA/SMC-HotelFrontDesk/pkg/logger"
	"github.com/m04kA/SMC-HotelFrontDesk/pkg/metrics"
	"github.com/m04kA/SMC-HotelFrontDesk/pkg/txmanager"
)

func main() {
	configPath := "config.toml"
	if p, ok := os.LookupEnv("HOTEL_CONFIG"); ok {
		configPath = p
	}

	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-HotelFrontDesk...")
	log.Info("Configuration loaded from %s", configPath)

	// Метрики (nil, если выключены: все вызовы становятся no-op)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	if cfg.Database.MigrateOnStart {
		if err := migrations.Up(cfg.Database.MigrateURL(), log); err != nil {
			log.Fatal("Failed to apply migrations: %v", err)
		}
	}

	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
	txMgr := txmanager.NewTransactionManager(wrappedDB, time.Duration(cfg.Database.TxTimeoutSeconds)*time.Second)

	// Инициализируем репозитории
	roomRepository := roomRepo.NewRepository(wrappedDB)
	guestRepository := guestRepo.NewRepository(wrappedDB)
	reservationRepository := reservationRepo.NewRepository(wrappedDB)
	invoiceRepository := invoiceRepo.NewRepository(wrappedDB)
	movementRepository := movementRepo.NewRepository(wrappedDB)
	clockRepository := clockRepo.NewRepository(wrappedDB)

	// Инициализируем сервисы
	checker := availability.NewChecker(reservationRepository, roomRepository, log)
	clockSvc := clockService.NewService(clockRepository, txMgr, log)
	roomsSvc := roomsService.NewService(roomRepository, reservationRepository, clockSvc, txMgr, log)
	guestsSvc := guestsService.NewService(guestRepository, log)
	reservationsSvc := reservationsService.NewService(reservationRepository, log)
	billingSvc := billingService.NewService(reservationRepository, invoiceRepository, movementRepository, txMgr, log)

	// Инициализируем use cases
	createReservationUseCase := createReservationUC.NewUseCase(
		roomRepository,
		guestRepository,
		reservationRepository,
		checker,
		clockSvc,
		txMgr,
		metricsCollector,
		log,
	)
	cancelReservationUseCase := cancelReservationUC.NewUseCase(
		reservationRepository,
		roomRepository,
		txMgr,
		metricsCollector,
		log,
	)
	updateReservationUseCase := updateReservationUC.NewUseCase(
		reservationRepository,
		roomRepository,
		checker,
		cancelReservationUseCase,
		txMgr,
		metricsCollector,
		log,
	)
	checkInUseCase := checkInUC.NewUseCase(
		reservationRepository,
		roomRepository,
		clockSvc,
		txMgr,
		metricsCollector,
		log,
	)
	checkOutUseCase := checkOutUC.NewUseCase(
		reservationRepository,
		invoiceRepository,
		roomRepository,
		clockSvc,
		txMgr,
		metricsCollector,
		log,
	)
	issueInvoiceUseCase := issueInvoiceUC.NewUseCase(
		reservationRepository,
		roomRepository,
		invoiceRepository,
		movementRepository,
		clockSvc,
		txMgr,
		metricsCollector,
		log,
	)
	addChargeUseCase := addChargeUC.NewUseCase(
		reservationRepository,
		invoiceRepository,
		txMgr,
		metricsCollector,
		log,
	)
	postConsumptionUseCase := postConsumptionUC.NewUseCase(
		reservationRepository,
		invoiceRepository,
		txMgr,
		metricsCollector,
		log,
	)
	recordMovementUseCase := recordMovementUC.NewUseCase(
		reservationRepository,
		movementRepository,
		txMgr,
		metricsCollector,
		log,
	)
	getAvailableRoomsUseCase := getAvailableRoomsUC.NewUseCase(roomRepository, checker, log)

	// Инициализируем handlers
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	updateReservation := updateReservationHandler.NewHandler(updateReservationUseCase, log)
	cancelReservation := cancelReservationHandler.NewHandler(cancelReservationUseCase, log)
	checkIn := checkInHandler.NewHandler(checkInUseCase, log)
	checkOut := checkOutHandler.NewHandler(checkOutUseCase, log)
	issueInvoice := issueInvoiceHandler.NewHandler(issueInvoiceUseCase, log)
	addCharge := addChargeHandler.NewHandler(addChargeUseCase, log)
	postConsumption := postConsumptionHandler.NewHandler(postConsumptionUseCase, log)
	recordMovement := recordMovementHandler.NewHandler(recordMovementUseCase, log)
	getAvailableRooms := getAvailableRoomsHandler.NewHandler(getAvailableRoomsUseCase, log)
	getReservation := getReservationHandler.NewHandler(reservationsSvc, log)
	listReservations := listReservationsHandler.NewHandler(reservationsSvc, log)
	reservationCalendar := reservationCalendarHandler.NewHandler(reservationsSvc, log)
	getFinancialSummary := getFinancialSummaryHandler.NewHandler(billingSvc, log)
	listMovements := listMovementsHandler.NewHandler(billingSvc, log)
	rooms := roomsHandler.NewHandler(roomsSvc, log)
	guests := guestsHandler.NewHandler(guestsSvc, log)
	invoices := invoicesHandler.NewHandler(billingSvc, log)
	businessDate := businessDateHandler.NewHandler(clockSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recover(log))

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Бронирования ---
	api.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)
	api.HandleFunc("/reservations", listReservations.Handle).Methods(http.MethodGet)
	// calendar регистрируется раньше /reservations/{id}
	api.HandleFunc("/reservations/calendar", reservationCalendar.Handle).Methods(http.MethodGet)
	api.HandleFunc("/reservations/{id:[0-9]+}", getReservation.Handle).Methods(http.MethodGet)
	api.HandleFunc("/reservations/{id:[0-9]+}", updateReservation.Handle).Methods(http.MethodPut)
	api.HandleFunc("/reservations/{id:[0-9]+}/cancel", cancelReservation.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/reservations/{id:[0-9]+}/check-in", checkIn.Handle).Methods(http.MethodPost)
	api.HandleFunc("/reservations/{id:[0-9]+}/check-out", checkOut.Handle).Methods(http.MethodPost)

	// --- Финансы ---
	api.HandleFunc("/reservations/{id:[0-9]+}/invoice", issueInvoice.Handle).Methods(http.MethodPost)
	api.HandleFunc("/reservations/{id:[0-9]+}/invoice/charges", addCharge.Handle).Methods(http.MethodPost)
	api.HandleFunc("/reservations/{id:[0-9]+}/consumptions", postConsumption.Handle).Methods(http.MethodPost)
	api.HandleFunc("/reservations/{id:[0-9]+}/movements", recordMovement.Handle).Methods(http.MethodPost)
	api.HandleFunc("/reservations/{id:[0-9]+}/movements", listMovements.Handle).Methods(http.MethodGet)
	api.HandleFunc("/reservations/{id:[0-9]+}/finances", getFinancialSummary.Handle).Methods(http.MethodGet)
	api.HandleFunc("/invoices", invoices.List).Methods(http.MethodGet)
	api.HandleFunc("/invoices/{id:[0-9]+}", invoices.Get).Methods(http.MethodGet)
	api.HandleFunc("/invoices/{id:[0-9]+}/reconcile", invoices.Reconcile).Methods(http.MethodPost)

	// --- Номера ---
	// available регистрируется раньше /rooms/{number}
	api.HandleFunc("/rooms/available", getAvailableRooms.Handle).Methods(http.MethodGet)
	api.HandleFunc("/rooms", rooms.List).Methods(http.MethodGet)
	api.HandleFunc("/rooms/{number}/status", rooms.Status).Methods(http.MethodGet)
	api.HandleFunc("/rooms/{id:[0-9]+}/state", rooms.SetState).Methods(http.MethodPut)

	// --- Гости ---
	api.HandleFunc("/guests", guests.List).Methods(http.MethodGet)
	api.HandleFunc("/guests", guests.Create).Methods(http.MethodPost)
	api.HandleFunc("/guests/{id:[0-9]+}", guests.Get).Methods(http.MethodGet)
	api.HandleFunc("/guests/{id:[0-9]+}", guests.Update).Methods(http.MethodPut)

	// --- Операционная дата ---
	api.HandleFunc("/business-date", businessDate.Get).Methods(http.MethodGet)
	api.HandleFunc("/business-date", businessDate.Set).Methods(http.MethodPut)
	api.HandleFunc("/business-date/close", businessDate.Close).Methods(http.MethodPost)

	// Создаем HTTP сервер
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

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

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
