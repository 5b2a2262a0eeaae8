package api

import (
	"net/http"
	"time"
)

const (
	serverReadTimeout  = 15 * time.Second
	serverIdleTimeout  = 60 * time.Second
	minWriteTimeout    = 15 * time.Second
	writeTimeoutMargin = 5 * time.Second
)

// WriteTimeout returns a response deadline that outlasts an aggregation taking
// runBudget, so a run where every source times out still gets its empty 200
func WriteTimeout(runBudget time.Duration) time.Duration {
	timeout := runBudget + writeTimeoutMargin
	if timeout < minWriteTimeout {
		return minWriteTimeout
	}
	return timeout
}

// NewHTTPServer builds the HTTP server for handler with timeouts sized for runBudget
func NewHTTPServer(addr string, handler http.Handler, runBudget time.Duration) *http.Server {
	return &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  serverReadTimeout,
		WriteTimeout: WriteTimeout(runBudget),
		IdleTimeout:  serverIdleTimeout,
	}
}
