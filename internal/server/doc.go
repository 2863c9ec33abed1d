// Package server is the HTTP surface of the service: a health check and the
// single /generate endpoint, wrapped in request-id, logging and CORS
// middleware. Handlers stay thin; all generation logic lives in
// internal/generate.
package server
