package requestresponse

// Envelope : common shape of every API response
type Envelope struct {
	Success bool        `json:"success" example:"true"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty" example:"incorrect credentials"`
	Message string      `json:"message,omitempty" example:"login succeeded"`
	Details string      `json:"details,omitempty"`
}

// HealthData : payload of GET /health
type HealthData struct {
	Status string `json:"status" example:"ok"`
}
