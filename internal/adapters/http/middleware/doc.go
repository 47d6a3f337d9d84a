// Package middleware holds the inbound HTTP pipeline.
//
// cmd/server installs the global middleware in this order:
//
//	Recovery → RequestID → CorrelationID → OpenTelemetry → Logging → Timeout → router
//
// The router adds RateLimit to the login route and Authenticate to the
// /api/v1 group. Every rejection is written as a Problem Details body
// through dto.WriteErrorResponse.
package middleware
