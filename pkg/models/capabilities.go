package models

// Capabilities typed view of the capabilities negotiated for a session
type Capabilities struct {
	Name            string           `mapstructure:"browserName"`
	Version         string           `mapstructure:"version"`
	BrowserVersion  string           `mapstructure:"browserVersion"`
	Platform        string           `mapstructure:"platform"`
	PlatformName    string           `mapstructure:"platformName"`
	SelenoidOptions *SelenoidOptions `mapstructure:"selenoid:options"`
}

func (caps *Capabilities) GetName() string {
	return caps.Name
}

func (caps *Capabilities) GetVersion() string {
	if caps.BrowserVersion != "" {
		return caps.BrowserVersion
	}
	return caps.Version
}

func (caps *Capabilities) GetPlatform() string {
	if caps.PlatformName != "" {
		return caps.PlatformName
	}
	return caps.Platform
}

func (caps *Capabilities) GetTestName() string {
	if caps.SelenoidOptions == nil {
		return ""
	}
	return caps.SelenoidOptions.TestName
}

func (caps *Capabilities) IsVNCEnabled() bool {
	if caps.SelenoidOptions == nil {
		return false
	}
	return caps.SelenoidOptions.EnableVNC
}
