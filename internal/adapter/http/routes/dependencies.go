package routes

import (
	"context"
	"fmt"

	"petsit_booking/internal/adapter/http/handlers"
	"petsit_booking/internal/adapter/http/middleware"
	"petsit_booking/internal/adapter/persistence/repository"
	"petsit_booking/internal/config"
	"petsit_booking/internal/infrastructure/cache"
	"petsit_booking/internal/infrastructure/database"
	"petsit_booking/internal/infrastructure/messaging"
	"petsit_booking/internal/infrastructure/metrics"
	"petsit_booking/internal/infrastructure/notifications"
	"petsit_booking/internal/infrastructure/payments"
	"petsit_booking/internal/usecase"
	"petsit_booking/internal/usecase/interfaces"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/zap"
)

const serviceName = "petsit_booking"

// Dependencies is everything NewRouter mounts.
type Dependencies struct {
	Bookings      *handlers.BookingHandler
	Payments      *handlers.PaymentHandler
	Payouts       *handlers.PayoutHandler
	Settings      *handlers.SettingsHandler
	Ledger        *handlers.LedgerHandler
	Notifications *handlers.NotificationHandler

	Auth         *middleware.Authenticator
	NotifySecret string
	Idempotency  middleware.IdempotencyStore
	Metrics      *metrics.Metrics
	Log          *zap.Logger
}

// Build connects the backing services and wires repositories, usecases and handlers. Optional
// integrations (checkout, email, broker, idempotency) are skipped with a warning when they are
// not configured or not reachable. The returned cleanup closes what was opened.
func Build(ctx context.Context, cfg config.App, log *zap.Logger) (Dependencies, func(), error) {
	var closers []func()
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	m := metrics.New(serviceName, cfg.Environment)

	ddb, err := database.ConnectDynamoDB(ctx, cfg)
	if err != nil {
		return Dependencies{}, cleanup, fmt.Errorf("connect dynamodb: %w", err)
	}

	node, err := snowflake.NewNode(cfg.SnowflakeNode)
	if err != nil {
		return Dependencies{}, cleanup, fmt.Errorf("snowflake node: %w", err)
	}

	tables := repository.Tables{
		Bookings: cfg.Tables.Bookings,
		Invoices: cfg.Tables.Invoices,
		Payments: cfg.Tables.Payments,
		Payouts:  cfg.Tables.Payouts,
		Ledger:   cfg.Tables.Ledger,
		Settings: cfg.Tables.Settings,
		Profiles: cfg.Tables.Profiles,
		Counters: cfg.Tables.Counters,
	}
	bookingRepo := repository.NewBookingDynamoRepository(ddb, tables)
	invoiceRepo := repository.NewInvoiceDynamoRepository(ddb, tables)
	paymentRepo := repository.NewPaymentDynamoRepository(ddb, tables)
	payoutRepo := repository.NewPayoutDynamoRepository(ddb, tables)
	ledgerRepo := repository.NewLedgerDynamoRepository(ddb, tables)
	settingsRepo := repository.NewSettingsDynamoRepository(ddb, tables)
	profileRepo := repository.NewProfileDynamoRepository(ddb, tables)
	lifecycle := repository.NewLifecycleDynamoStore(ddb, tables)

	var publisher interfaces.IEventPublisher = messaging.NopPublisher{}
	if cfg.RabbitMQURL != "" {
		p, err := messaging.NewPublisher(cfg.RabbitMQURL, cfg.RabbitMQExchange)
		if err != nil {
			log.Warn("event broker unavailable, events stay in the ledger only", zap.Error(err))
		} else {
			publisher = p
			closers = append(closers, func() { _ = p.Close() })
		}
	}

	var emailProvider interfaces.IEmailProvider
	if cfg.ResendAPIKey != "" {
		p, err := notifications.NewResendProvider(cfg.ResendAPIKey, cfg.EmailFrom)
		if err != nil {
			log.Warn("email provider not configured, emails are logged", zap.Error(err))
		} else {
			emailProvider = p
		}
	} else {
		log.Warn("RESEND_API_KEY not set, emails are logged")
	}

	var gateway interfaces.ICheckoutGateway
	g, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken, cfg.PaymentGatewayMock, payments.BackURLs{
		Success: cfg.CheckoutSuccessURL,
		Failure: cfg.CheckoutFailureURL,
		Pending: cfg.CheckoutPendingURL,
	}, log)
	if err != nil {
		log.Warn("checkout gateway not configured", zap.Error(err))
	} else {
		gateway = g
	}

	var idem middleware.IdempotencyStore
	if cfg.RedisAddr != "" {
		client, err := cache.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			log.Warn("redis unavailable, idempotency keys disabled", zap.Error(err))
		} else {
			idem = cache.NewIdempotencyStore(client, cfg.IdempotencyTTL)
			closers = append(closers, func() { _ = client.Close() })
		}
	}

	ledgerUC := usecase.NewLedgerUseCase(usecase.LedgerUseCaseParams{
		Repo:      ledgerRepo,
		Publisher: publisher,
		Metrics:   m,
		GenID:     node,
		Log:       log,
	})
	notificationUC := usecase.NewNotificationUseCase(usecase.NotificationUseCaseParams{
		Provider:   emailProvider,
		Profiles:   profileRepo,
		AdminEmail: cfg.AdminEmail,
		Metrics:    m,
		Log:        log,
	})
	settingsUC := usecase.NewSettingsUseCase(settingsRepo, ledgerUC, cfg.PlatformFeePercent, log)
	bookingUC := usecase.NewBookingUseCase(usecase.BookingUseCaseParams{
		Bookings:  bookingRepo,
		Invoices:  invoiceRepo,
		Lifecycle: lifecycle,
		Audit:     ledgerUC,
		Notifier:  notificationUC,
		Invoice: usecase.InvoiceSettings{
			NumberTemplate:      cfg.InvoiceNumberTemplate,
			DueDays:             cfg.InvoiceDueDays,
			Currency:            cfg.Currency,
			PaymentInstructions: cfg.PaymentInstructions,
		},
		Log: log,
	})
	paymentUC := usecase.NewPaymentUseCase(usecase.PaymentUseCaseParams{
		Bookings:    bookingRepo,
		Invoices:    invoiceRepo,
		Payments:    paymentRepo,
		Lifecycle:   lifecycle,
		Gateway:     gateway,
		Audit:       ledgerUC,
		Notifier:    notificationUC,
		StartWindow: cfg.PaymentStartWindow,
		Log:         log,
	})
	payoutUC := usecase.NewPayoutUseCase(usecase.PayoutUseCaseParams{
		Bookings:  bookingRepo,
		Payouts:   payoutRepo,
		Lifecycle: lifecycle,
		Fees:      settingsUC,
		Audit:     ledgerUC,
		Notifier:  notificationUC,
		Log:       log,
	})

	return Dependencies{
		Bookings:      handlers.NewBookingHandler(bookingUC, log),
		Payments:      handlers.NewPaymentHandler(paymentUC, log),
		Payouts:       handlers.NewPayoutHandler(payoutUC, log),
		Settings:      handlers.NewSettingsHandler(settingsUC, log),
		Ledger:        handlers.NewLedgerHandler(ledgerUC, log),
		Notifications: handlers.NewNotificationHandler(notificationUC, log),
		Auth:          middleware.NewAuthenticator(cfg.JWTSecret),
		NotifySecret:  cfg.NotifySecret,
		Idempotency:   idem,
		Metrics:       m,
		Log:           log,
	}, cleanup, nil
}
