// Package config loads process configuration from the environment into an
// immutable [Config] value. Configuration is read exactly once at startup;
// the rest of the codebase never touches os.Getenv, which keeps the core
// pipeline testable without environment manipulation.
package config
