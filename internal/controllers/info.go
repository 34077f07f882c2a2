package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type RunInfo struct {
	Name        string `json:"name"`
	GitRef      string `json:"gitRef"`
	GitSha      string `json:"gitSha"`
	Lineage     string `json:"lineage"`
	ServerURL   string `json:"serverUrl"`
	BrowserName string `json:"browserName"`
}

type InfoController struct {
	info RunInfo
}

func NewInfoController(info RunInfo) *InfoController {
	return &InfoController{info: info}
}

func (i *InfoController) Info(c echo.Context) error {
	return c.JSON(http.StatusOK, i.info)
}
