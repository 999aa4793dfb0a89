// Package config loads and merges tabsync configuration from environment
// variables, command-line flags, and an optional JSON file, exposing
// role-specific views for the sync agent and the sync server.
package config
