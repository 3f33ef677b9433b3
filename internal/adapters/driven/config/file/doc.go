// Package file provides filesystem-backed driven adapters.
//
// Adapters:
//   - ConfigStore: application settings in ~/.wppm/config.toml
//   - SetupLoader: fit setup documents (TOML or JSON)
package file
