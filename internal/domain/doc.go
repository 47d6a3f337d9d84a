// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/company, domain/transfer,
// domain/auth) and the rolling reporting window lives in domain/period.
// This root package holds sentinel errors and the field-level validation type.
package domain
