// Package webdrivertest provides in-process WebDriver hub for tests
package webdrivertest

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/selebrow/steward/internal/router"
	"github.com/selebrow/steward/pkg/models"
)

// Failure canned error response. JSONWire failures are sent the legacy way: HTTP 200 with non-zero status.
type Failure struct {
	Status   int
	Error    string
	Message  string
	JSONWire bool
}

type Session struct {
	ID          string
	Desired     map[string]any
	AlwaysMatch map[string]any
	URL         string
	Cookies     bool
	Windows     int
	Quit        bool
}

type Hub struct {
	srv *httptest.Server

	mu             sync.Mutex
	createFailures []Failure
	cmdFailures    map[string]Failure
	commands       []string
	sessions       map[string]*Session
	createAttempts int
	seq            int
}

// NewHub starts the hub, it is stopped on test cleanup
func NewHub(t testing.TB) *Hub {
	t.Helper()
	h := &Hub{
		cmdFailures: make(map[string]Failure),
		sessions:    make(map[string]*Session),
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	sessRoute := router.SessRoute(router.SessionPath + "/:%s")
	wd := e.Group(router.WDHUBPath)
	wd.GET(router.StatusPath, h.status)
	wd.POST(router.SessionPath, h.newSession)
	wd.DELETE(sessRoute, h.command("quit", h.quit))
	wd.DELETE(sessRoute+router.CookiePath, h.command("deleteAllCookies", h.deleteCookies))
	wd.DELETE(sessRoute+router.WindowPath, h.command("closeWindow", h.closeWindow))
	wd.POST(sessRoute+router.URLPath, h.command("get", h.navigate))
	wd.GET(sessRoute+router.URLPath, h.command("getCurrentUrl", h.currentURL))
	wd.GET(sessRoute+router.TitlePath, h.command("getTitle", h.title))

	h.srv = httptest.NewServer(e)
	t.Cleanup(h.srv.Close)
	return h
}

// URL remote end URL including /wd/hub path
func (h *Hub) URL() string {
	return h.srv.URL + router.WDHUBPath
}

// FailCreate makes the next new session requests fail in the order given
func (h *Hub) FailCreate(f ...Failure) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.createFailures = append(h.createFailures, f...)
}

// FailCommand makes every request of the named command fail
func (h *Hub) FailCommand(name string, f Failure) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.cmdFailures[name] = f
}

// Commands names of commands received so far, in order
func (h *Hub) Commands() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]string(nil), h.commands...)
}

func (h *Hub) CreateAttempts() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.createAttempts
}

func (h *Hub) Session(id string) (Session, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	s, ok := h.sessions[id]
	if !ok {
		return Session{}, false
	}
	return *s, true
}

func (h *Hub) status(c echo.Context) error {
	h.record("status")
	return c.JSON(http.StatusOK, models.W3CResponse{Value: map[string]any{
		"ready":   true,
		"message": "fake hub is ready",
	}})
}

func (h *Hub) newSession(c echo.Context) error {
	var req struct {
		DesiredCapabilities map[string]any `json:"desiredCapabilities"`
		Capabilities        *struct {
			AlwaysMatch map[string]any `json:"alwaysMatch"`
		} `json:"capabilities"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse(models.UnknownErr, err.Error()))
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.commands = append(h.commands, "newSession")
	h.createAttempts++

	if len(h.createFailures) > 0 {
		f := h.createFailures[0]
		h.createFailures = h.createFailures[1:]
		return writeFailure(c, f)
	}

	h.seq++
	s := &Session{
		ID:      fmt.Sprintf("session-%d", h.seq),
		Desired: req.DesiredCapabilities,
		Windows: 1,
	}
	if req.Capabilities != nil {
		s.AlwaysMatch = req.Capabilities.AlwaysMatch
	}
	h.sessions[s.ID] = s

	return c.JSON(http.StatusOK, models.W3CResponse{Value: map[string]any{
		"sessionId":    s.ID,
		"capabilities": s.Desired,
	}})
}

type sessionHandler func(c echo.Context, s *Session) error

// command resolves the session and records the command, handlers run under lock
func (h *Hub) command(name string, next sessionHandler) echo.HandlerFunc {
	return func(c echo.Context) error {
		h.mu.Lock()
		defer h.mu.Unlock()
		h.commands = append(h.commands, name)

		if f, ok := h.cmdFailures[name]; ok {
			return writeFailure(c, f)
		}

		s, ok := h.sessions[c.Param(router.SessionParam)]
		if !ok || s.Quit {
			return c.JSON(http.StatusNotFound, errorResponse(models.InvalidSessionIDErr, "session not found"))
		}
		return next(c, s)
	}
}

func (h *Hub) quit(c echo.Context, s *Session) error {
	s.Quit = true
	return c.JSON(http.StatusOK, models.W3CResponse{})
}

func (h *Hub) deleteCookies(c echo.Context, s *Session) error {
	s.Cookies = false
	return c.JSON(http.StatusOK, models.W3CResponse{})
}

func (h *Hub) closeWindow(c echo.Context, s *Session) error {
	if s.Windows > 0 {
		s.Windows--
	}
	return c.JSON(http.StatusOK, models.W3CResponse{Value: []string{}})
}

func (h *Hub) navigate(c echo.Context, s *Session) error {
	var req struct {
		URL string `json:"url"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse(models.UnknownErr, err.Error()))
	}
	s.URL = req.URL
	s.Cookies = true
	return c.JSON(http.StatusOK, models.W3CResponse{})
}

func (h *Hub) currentURL(c echo.Context, s *Session) error {
	return c.JSON(http.StatusOK, models.W3CResponse{Value: s.URL})
}

func (h *Hub) title(c echo.Context, s *Session) error {
	return c.JSON(http.StatusOK, models.W3CResponse{Value: "title of " + s.URL})
}

func (h *Hub) record(name string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.commands = append(h.commands, name)
}

func writeFailure(c echo.Context, f Failure) error {
	if f.JSONWire {
		return c.JSON(http.StatusOK, models.JsonWireResponse{
			Status: 13,
			Value:  map[string]any{"message": f.Message},
		})
	}
	status := f.Status
	if status == 0 {
		status = http.StatusInternalServerError
	}
	errText := f.Error
	if errText == "" {
		errText = models.UnknownErr
	}
	return c.JSON(status, errorResponse(errText, f.Message))
}

func errorResponse(errText, msg string) models.W3CResponse {
	return models.W3CResponse{Value: models.ErrorBody{
		Error:   errText,
		Message: msg,
	}}
}
