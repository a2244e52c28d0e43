package handlers

// AppHandlers holds every handler the router wires up.
type AppHandlers struct {
	ClientHandler     *ClientHandler
	FreelancerHandler *FreelancerHandler
	GigHandler        *GigHandler
}
