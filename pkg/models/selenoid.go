package models

// SelenoidOptions vendor capability understood by selenoid compatible hubs
type SelenoidOptions struct {
	TestName         string            `json:"name,omitempty"             mapstructure:"name"`
	SessionTimeout   Duration          `json:"sessionTimeout,omitempty"   mapstructure:"sessionTimeout"`
	ScreenResolution string            `json:"screenResolution,omitempty" mapstructure:"screenResolution"`
	EnableVNC        bool              `json:"enableVNC,omitempty"        mapstructure:"enableVNC"`
	Env              []string          `json:"env,omitempty"              mapstructure:"env"`
	Labels           map[string]string `json:"labels,omitempty"           mapstructure:"labels"`
}
