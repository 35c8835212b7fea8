// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/todo, domain/category).
// This root package holds sentinel errors, validation types, and the Action
// interface used to stage local and remote mutations with rollback.
package domain
