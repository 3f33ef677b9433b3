// Package mcp exposes the wppm models over the Model Context Protocol, so
// AI assistants can evaluate strain invariants, Warren plots and size
// distributions.
package mcp

import "errors"

var (
	// ErrMissingStrainService is returned when the strain service is not provided.
	ErrMissingStrainService = errors.New("mcp: strain service is required")

	// ErrMissingSizeService is returned when the size service is not provided.
	ErrMissingSizeService = errors.New("mcp: size service is required")

	// ErrNoSetup is returned when a tool call names neither a setup nor a session.
	ErrNoSetup = errors.New("mcp: setup or session is required")
)
