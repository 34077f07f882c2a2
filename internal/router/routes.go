package router

import "fmt"

const (
	WDHUBPath    = "/wd/hub"
	StatusPath   = "/status"
	SessionPath  = "/session"
	SessionParam = "sess"

	CookiePath = "/cookie"
	WindowPath = "/window"
	URLPath    = "/url"
	TitlePath  = "/title"

	MetricsPath = "/metrics"
	InfoPath    = "/info"
)

func SessRoute(s string) string {
	return fmt.Sprintf(s, SessionParam)
}

// SessionCommandPath path of the command relative to remote end root
func SessionCommandPath(id, command string) string {
	return SessionPath + "/" + id + command
}
