// Package handler exposes storage readiness over HTTP. Every request reloads
// the configuration snapshot and resolves it again, so edits to the env file
// show up without a restart.
package handler
