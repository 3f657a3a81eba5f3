package server

// Server is the lifecycle of the bootstrap server process.
//
// RunServer blocks until SIGTERM, SIGINT or SIGQUIT is received or a
// transport fails, then shuts every transport down.
type Server interface {
	RunServer()

	// Shutdown gracefully stops every transport.
	Shutdown()
}
