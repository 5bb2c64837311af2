package handlers

import (
	"log"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/bridal-rental/internal/httperr"
)

const flashCookie = "bride_flash"

const (
	flashSuccess = "success"
	flashDanger  = "danger"
	flashInfo    = "info"
)

type Flash struct {
	Kind    string
	Message string
}

func setFlash(c *gin.Context, kind, message string) {
	c.SetCookie(flashCookie, url.QueryEscape(kind+"|"+message), 60, "/", "", false, true)
}

// popFlash reads the pending message and clears it.
func popFlash(c *gin.Context) *Flash {
	raw, err := c.Cookie(flashCookie)
	if err != nil || raw == "" {
		return nil
	}
	c.SetCookie(flashCookie, "", -1, "/", "", false, true)

	v, err := url.QueryUnescape(raw)
	if err != nil {
		return nil
	}
	kind, message, ok := strings.Cut(v, "|")
	if !ok || message == "" {
		return nil
	}
	return &Flash{Kind: kind, Message: message}
}

func flashError(c *gin.Context, err error) {
	if code := httperr.CodeOf(err); code != "" {
		setFlash(c, flashDanger, httperr.Message(code))
		return
	}
	log.Printf("web: %v", err)
	setFlash(c, flashDanger, "Unexpected error.")
}
