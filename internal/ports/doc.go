// Package ports defines interfaces between layers in the hexagonal architecture.
// The repository port is implemented by outbound storage adapters and called by
// the use-cases; the health ports are implemented by the platform layer.
package ports
