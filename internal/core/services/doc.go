// Package services implements the driving port interfaces.
// Services contain the model evaluation logic and orchestrate
// calls to driven ports (kernels, stores, config).
//
// Services are pure Go with no CGO or external dependencies beyond
// golang.org/x/sync for bounded concurrent evaluation.
package services
