package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/selebrow/steward/pkg/session"
)

type RunStatus struct {
	Ready    bool `json:"ready"`
	Sessions int  `json:"sessions"`
}

// StatusController reports whether tests can still get sessions and how many slots are held
type StatusController struct {
	slots session.SlotStorage
}

func NewStatusController(slots session.SlotStorage) *StatusController {
	return &StatusController{slots: slots}
}

func (s *StatusController) Status(c echo.Context) error {
	st := RunStatus{
		Ready:    !s.slots.IsShutdown(),
		Sessions: s.slots.Len(),
	}
	code := http.StatusOK
	if !st.Ready {
		code = http.StatusServiceUnavailable
	}
	return c.JSON(code, st)
}
