package endpoints

// Endpoints holds every endpoint exposed by the service.
type Endpoints struct {
	BoardEndpoint BoardEndpoint
}
