// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/tasklist, domain/user).
// This root package holds the error kinds every layer agrees on and the
// field-level ValidationError.
package domain
