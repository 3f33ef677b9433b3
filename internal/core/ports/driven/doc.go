// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - SizeKernel: Lognormal density evaluation
//   - StrainKernel: Mean displacement of lattice planes per strain model
//   - SessionStore: FitSession persistence (SQLite or in-memory)
//   - ConfigStore: Application configuration
//
// Kernels are pure functions of their arguments and must be safe for
// concurrent use.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
