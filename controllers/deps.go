package controllers

import (
	"net/http"

	"github.com/Shxreef603/Fitly/services"

	"github.com/gin-gonic/gin"
)

var (
	sessions *services.SessionManager
	auth     *services.AuthService
	ai       *services.OpenRouterService
	scanner  *services.ScanService
	hub      *services.SyncHub
)

// Init wires the controller package once at startup.
func Init(sm *services.SessionManager, a *services.AuthService, o *services.OpenRouterService, sc *services.ScanService, h *services.SyncHub) {
	sessions = sm
	auth = a
	ai = o
	scanner = sc
	hub = h
}

// currentSession resolves the signed-in user's session or aborts.
func currentSession(c *gin.Context) (*services.Session, bool) {
	uid := c.GetUint("userID")
	if uid == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not signed in"})
		return nil, false
	}
	s, err := sessions.Session(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return nil, false
	}
	return s, true
}
