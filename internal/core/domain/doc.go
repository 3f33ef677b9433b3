// Package domain defines the core microstructure entities for wppm.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Parameter: A named fit variable with bounds and an optional derivation link
//   - SizeDistribution: Crystallite-size distribution configuration
//   - InvariantModel: Symmetry-constrained anisotropic strain model
//   - KrivoglazWilkensModel: Dislocation-density strain model
//   - WarrenModel: Single-parameter cell-distortion strain model
//   - FitSession: One size model and one strain model set up for a fit
//
// Evaluation that needs numeric kernels lives in the services package;
// everything here is a pure function of parameter values and configuration.
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
