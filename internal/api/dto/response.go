package dto

// Envelope is the tagged success envelope returned by every endpoint;
// failures use the errors package envelope with success=false
type Envelope struct {
	Success bool `json:"success"`
	Data    any  `json:"data,omitempty"`
}

// OK wraps a payload in a success envelope
func OK(data any) Envelope {
	return Envelope{Success: true, Data: data}
}
