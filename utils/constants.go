package utils

import "time"

// HealthCheckInterval is how often the backend pings its storage.
const HealthCheckInterval = 60 * time.Second

// RequestIDHeader carries the client-generated request id.
const RequestIDHeader = "X-Request-ID"
