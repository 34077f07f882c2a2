package models

// W3CCapabilities WebDriver capabilities model
// see details at https://www.w3.org/TR/webdriver2/#capabilities
type W3CCapabilities struct {
	AlwaysMatch any   `json:"alwaysMatch,omitempty"`
	FirstMatch  []any `json:"firstMatch,omitempty"`
}

// NewSessionRequest carries both dialects, so legacy and W3C hubs accept it
type NewSessionRequest struct {
	*JsonWireCapabilities
	Capabilities *W3CCapabilities `json:"capabilities,omitempty"`
}

func NewNewSessionRequest(desired, alwaysMatch any) *NewSessionRequest {
	return &NewSessionRequest{
		JsonWireCapabilities: &JsonWireCapabilities{DesiredCapabilities: desired},
		Capabilities:         &W3CCapabilities{AlwaysMatch: alwaysMatch},
	}
}
