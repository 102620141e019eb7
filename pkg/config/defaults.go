package config

import "time"

const (
	DefaultMongoURI          = "" // store not configured
	DefaultMongoDatabaseName = "stlucia"
	DefaultMongoConnTimeout  = 10 * time.Second

	DefaultPort     = "8000"
	DefaultLogLevel = "info"
	DefaultEnvFile  = ".env"

	DefaultMaxRequestSize = 1 * 1024 * 1024 // 1MB

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second

	DefaultLeadsTopic = "booking-leads"
)
