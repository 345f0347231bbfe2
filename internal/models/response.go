package models

// HealthResponse is returned by GET /health
type HealthResponse struct {
	Status  string            `json:"status"`
	Version string            `json:"version"`
	Checks  map[string]string `json:"checks,omitempty"`
}

// QueryParameter is a named value bound into a parameterised container query.
type QueryParameter struct {
	Name  string `json:"name"`
	Value any    `json:"value"`
}
