package server

// Server is the lifecycle contract for the transport servers managed by this
// package. Only an HTTP server exists today; the interface keeps room for an
// additional transport without touching main.
//
// Implementations are expected to block in [RunServer] until shutdown is
// requested and to release resources in [Shutdown].
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer()

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
