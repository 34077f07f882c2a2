package models

// JsonWireCapabilities JsonWire capabilities model
// full description at https://www.selenium.dev/documentation/legacy/json_wire_protocol/
type JsonWireCapabilities struct {
	DesiredCapabilities any `json:"desiredCapabilities,omitempty"`
}

// JsonWireResponse legacy response envelope, non-zero status means failure
type JsonWireResponse struct {
	SessionID string `json:"sessionId,omitempty"`
	Status    int    `json:"status"`
	Value     any    `json:"value"`
}
