package capabilities

import (
	"strings"
)

const (
	w3cBrowserVersion = "browserVersion"
	w3cPlatformName   = "platformName"
)

// W3C standard capability names, see https://www.w3.org/TR/webdriver2/#capabilities
var w3cNames = map[string]bool{
	BrowserNameKey:              true,
	w3cBrowserVersion:           true,
	w3cPlatformName:             true,
	"acceptInsecureCerts":       true,
	"pageLoadStrategy":          true,
	"proxy":                     true,
	"setWindowRect":             true,
	"timeouts":                  true,
	"strictFileInteractability": true,
	"unhandledPromptBehavior":   true,
	"webSocketUrl":              true,
}

// W3C converts the set to capabilities acceptable by strict W3C remote ends:
// legacy version and platform are renamed, other non-standard names without
// vendor prefix are dropped.
func (s *Set) W3C() *Set {
	res := NewSet()
	for _, k := range s.keys {
		v := s.values[k]
		switch {
		case k == VersionKey:
			if ver, _ := v.(string); ver != "" {
				res.Put(w3cBrowserVersion, ver)
			}
		case k == PlatformKey:
			if p, _ := v.(string); p != "" && !strings.EqualFold(p, PlatformAny) {
				res.Put(w3cPlatformName, strings.ToLower(p))
			}
		case w3cNames[k] || strings.Contains(k, ":"):
			res.Put(k, plain(v))
		}
	}
	return res
}
