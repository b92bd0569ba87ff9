package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// App is the service configuration read from the environment (and .env through godotenv).
type App struct {
	Port        int    `envconfig:"PORT" default:"8080"`
	Environment string `envconfig:"APP_ENV" default:"local"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat   string `envconfig:"LOG_FORMAT" default:"json"`

	// Auth
	JWTSecret    string `envconfig:"JWT_SECRET" required:"true"`
	NotifySecret string `envconfig:"NOTIFY_SECRET"`

	// AWS / DynamoDB
	AWSRegion          string `envconfig:"AWS_REGION" default:"us-east-1"`
	AWSAccessKeyID     string `envconfig:"AWS_ACCESS_KEY_ID" default:"local"`
	AWSSecretAccessKey string `envconfig:"AWS_SECRET_ACCESS_KEY" default:"local"`
	DynamoDBEndpoint   string `envconfig:"DYNAMODB_ENDPOINT"`
	Tables

	// Lifecycle
	PlatformFeePercent    float64       `envconfig:"PLATFORM_FEE_PERCENT" default:"15"`
	InvoiceNumberTemplate string        `envconfig:"INVOICE_NUMBER_TEMPLATE" default:"INV-{YYYY}{MM}{DD}-{SEQ6}"`
	InvoiceDueDays        int           `envconfig:"INVOICE_DUE_DAYS" default:"3"`
	Currency              string        `envconfig:"CURRENCY" default:"EUR"`
	PaymentInstructions   string        `envconfig:"PAYMENT_INSTRUCTIONS" default:"Please transfer {amount} using the reference {invoice_number} before {due_date}."`
	PaymentStartWindow    time.Duration `envconfig:"PAYMENT_START_WINDOW" default:"24h"`

	// Mercado Pago
	MercadoPagoAccessToken string `envconfig:"MERCADOPAGO_ACCESS_TOKEN"`
	PaymentGatewayMock     bool   `envconfig:"PAYMENT_GATEWAY_MOCK" default:"false"`
	CheckoutSuccessURL     string `envconfig:"CHECKOUT_SUCCESS_URL"`
	CheckoutFailureURL     string `envconfig:"CHECKOUT_FAILURE_URL"`
	CheckoutPendingURL     string `envconfig:"CHECKOUT_PENDING_URL"`

	// Email
	ResendAPIKey string `envconfig:"RESEND_API_KEY"`
	EmailFrom    string `envconfig:"EMAIL_FROM" default:"Petsit <bookings@petsit.local>"`
	AdminEmail   string `envconfig:"ADMIN_EMAIL"`

	// Messaging
	RabbitMQURL      string `envconfig:"RABBITMQ_URL"`
	RabbitMQExchange string `envconfig:"RABBITMQ_EXCHANGE" default:"booking.events"`

	// Idempotency
	RedisAddr      string        `envconfig:"REDIS_ADDR"`
	RedisPassword  string        `envconfig:"REDIS_PASSWORD"`
	RedisDB        int           `envconfig:"REDIS_DB" default:"0"`
	IdempotencyTTL time.Duration `envconfig:"IDEMPOTENCY_TTL" default:"10m"`

	SnowflakeNode int64 `envconfig:"SNOWFLAKE_NODE" default:"1"`
}

// Tables holds the DynamoDB table names.
type Tables struct {
	Bookings string `envconfig:"TABLE_BOOKINGS" default:"bookings"`
	Invoices string `envconfig:"TABLE_INVOICES" default:"invoices"`
	Payments string `envconfig:"TABLE_PAYMENTS" default:"booking_payments"`
	Payouts  string `envconfig:"TABLE_PAYOUTS" default:"payouts"`
	Ledger   string `envconfig:"TABLE_LEDGER" default:"ledger_events"`
	Settings string `envconfig:"TABLE_SETTINGS" default:"settings"`
	Profiles string `envconfig:"TABLE_PROFILES" default:"profiles"`
	Counters string `envconfig:"TABLE_COUNTERS" default:"counters"`
}

func Load() (App, error) {
	var c App
	if err := envconfig.Process("", &c); err != nil {
		return App{}, err
	}
	if err := c.validate(); err != nil {
		return App{}, err
	}
	return c, nil
}

func (c App) validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is empty")
	}
	if c.PlatformFeePercent < 0 || c.PlatformFeePercent >= 100 {
		return fmt.Errorf("PLATFORM_FEE_PERCENT must be in [0, 100): %v", c.PlatformFeePercent)
	}
	if c.InvoiceDueDays <= 0 {
		return fmt.Errorf("INVOICE_DUE_DAYS must be positive: %d", c.InvoiceDueDays)
	}
	if c.PaymentStartWindow < 0 {
		return fmt.Errorf("PAYMENT_START_WINDOW must not be negative: %s", c.PaymentStartWindow)
	}
	if c.SnowflakeNode < 0 || c.SnowflakeNode > 1023 {
		return fmt.Errorf("SNOWFLAKE_NODE must be in [0, 1023]: %d", c.SnowflakeNode)
	}
	return nil
}

// Addr is the listen address for the HTTP server.
func (c App) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
