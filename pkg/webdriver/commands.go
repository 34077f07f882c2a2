package webdriver

import (
	"net/http"

	"github.com/selebrow/steward/internal/router"
)

// Command names, the legacy Selenium client names are kept
const (
	NewSession       = "newSession"
	Quit             = "quit"
	CloseWindow      = "closeWindow"
	DeleteAllCookies = "deleteAllCookies"
	Get              = "get"
	GetCurrentURL    = "getCurrentUrl"
	GetTitle         = "getTitle"
	Status           = "status"
)

type Command struct {
	Name   string
	Params map[string]any
}

func NewCommand(name string, params map[string]any) Command {
	return Command{Name: name, Params: params}
}

// NewGetCommand navigates current browsing context to the URL
func NewGetCommand(url string) Command {
	return NewCommand(Get, map[string]any{"url": url})
}

type endpoint struct {
	method string
	path   string
	// session scoped endpoints are relative to /session/{id}
	session bool
}

var commands = map[string]endpoint{
	NewSession:       {method: http.MethodPost, path: router.SessionPath},
	Status:           {method: http.MethodGet, path: router.StatusPath},
	Quit:             {method: http.MethodDelete, session: true},
	CloseWindow:      {method: http.MethodDelete, path: router.WindowPath, session: true},
	DeleteAllCookies: {method: http.MethodDelete, path: router.CookiePath, session: true},
	Get:              {method: http.MethodPost, path: router.URLPath, session: true},
	GetCurrentURL:    {method: http.MethodGet, path: router.URLPath, session: true},
	GetTitle:         {method: http.MethodGet, path: router.TitlePath, session: true},
}

func lookupEndpoint(name string) (endpoint, bool) {
	e, ok := commands[name]
	return e, ok
}

func (e endpoint) resolve(sessionID string) string {
	if e.session {
		return router.SessionCommandPath(sessionID, e.path)
	}
	return e.path
}
