// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/todo). This root package
// holds the sentinel errors and the typed errors that wrap them, which the
// HTTP layer classifies into status codes.
package domain
