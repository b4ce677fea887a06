// Package cli defines the Cobra command tree for the uisx CLI. Each file
// registers one top-level command with the root command. Commands resolve
// the configured layer stack through the registry package and only handle
// flags and output formatting.
package cli
