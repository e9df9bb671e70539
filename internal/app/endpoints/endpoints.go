package endpoints

// Endpoints holds every endpoint the service exposes.
type Endpoints struct {
	SearchEndpoint SearchEndpoint
}
