// Package server runs the HTTP and gRPC transports of the bootstrap server.
//
// It owns their lifecycles: startup, signal handling, and graceful shutdown
// in which the gRPC health status turns NOT_SERVING before connections are
// drained.
package server
