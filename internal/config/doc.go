// Package config loads and validates the signalfeed YAML configuration.
//
// Configuration is loaded from a single YAML file with ${VAR} environment
// variable expansion, so secrets like the dashboard password can live in
// the environment rather than on disk.
package config
