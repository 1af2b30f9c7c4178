// Package timeouts defines the durations the gallery's HTTP surface is
// bounded by.
package timeouts

import "time"

// ReadHeader limits how long an HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long an HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second

// Dispatch caps a single action handler invocation.
const Dispatch = 10 * time.Second
