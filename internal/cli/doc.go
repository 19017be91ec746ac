// Package cli defines the Cobra command tree for the protolist CLI. Each file
// registers one top-level command (generate, check, list, etc.) with the root
// command. Commands delegate to the generator and catalog packages and only
// handle flags, settings and output formatting.
package cli
