package config

const (
	EnvMongoURI          = "MONGO_URI"
	EnvMongoDatabaseName = "MONGO_DATABASE_NAME"
	EnvMongoConnTimeout  = "MONGO_CONN_TIMEOUT"

	EnvPort     = "PORT"
	EnvLogLevel = "LOG_LEVEL"

	EnvRequestTimeout = "REQUEST_TIMEOUT"
	EnvMaxRequestSize = "MAX_REQUEST_SIZE"

	EnvReadTimeout     = "READ_TIMEOUT"
	EnvWriteTimeout    = "WRITE_TIMEOUT"
	EnvIdleTimeout     = "IDLE_TIMEOUT"
	EnvShutdownTimeout = "SHUTDOWN_TIMEOUT"

	EnvCORSOrigins = "CORS_ALLOWED_ORIGINS"

	EnvBookingAutoConfirm = "BOOKING_AUTO_CONFIRM"

	EnvSendGridAPIKey = "SENDGRID_API_KEY"
	EnvEmailFrom      = "EMAIL_FROM"
	EnvEmailFromName  = "EMAIL_FROM_NAME"
	EnvAdminEmail     = "ADMIN_TO"
	EnvSupportPhone   = "SUPPORT_PHONE"
	EnvSupportAddress = "SUPPORT_ADDRESS"
	EnvPaymentNumber  = "PAYMENT_NUMBER"

	EnvKafkaBrokers     = "KAFKA_BROKERS"
	EnvKafkaEventsTopic = "KAFKA_EVENTS_TOPIC"
)
