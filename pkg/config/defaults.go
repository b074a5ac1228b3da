package config

import "time"

const (
	DefaultMongoURI          = "mongodb://localhost:27017"
	DefaultMongoDatabaseName = "ijuruhub"
	DefaultMongoConnTimeout  = 10 * time.Second

	DefaultPort     = "5000"
	DefaultLogLevel = "info"

	DefaultRequestTimeout = 30 * time.Second
	DefaultMaxRequestSize = 1 * 1024 * 1024 // 1MB

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second

	DefaultPaginationLimit = 100

	// Ledger defaults applied when a booking request omits the field.
	DefaultBookingDuration = 1
	DefaultBookingPrice    = "TBD"

	// Cap on date-range calendar queries.
	DateRangeResultCap = 500

	DefaultBrandName      = "IJURU HUB"
	DefaultAdminEmail     = "info@ijuruhub.rw"
	DefaultSupportPhone   = "+250 798287944"
	DefaultSupportAddress = "42 KG 40 St, Kimironko, Kigali, Rwanda"

	DefaultKafkaEventsTopic = "ijuruhub.events"
)
