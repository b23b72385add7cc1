package controllers

import (
	"net/http"
	"time"

	"github.com/Shxreef603/Fitly/models"
	"github.com/Shxreef603/Fitly/services"

	"github.com/gin-gonic/gin"
)

type ChatInput struct {
	Message             string                 `json:"message"`
	Image               string                 `json:"image"`
	UserGoals           *models.MacroTargets   `json:"userGoals"`
	ConversationHistory []services.ChatMessage `json:"conversationHistory"`
}

// Chat forwards a nutrition question (optionally with a photo) to the
// assistant.
func Chat(c *gin.Context) {
	s, ok := currentSession(c)
	if !ok {
		return
	}

	var input ChatInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Message == "" && input.Image == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Message or image is required"})
		return
	}
	if !ai.Configured() {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "AI Chat is not configured"})
		return
	}

	goals := input.UserGoals
	if goals == nil {
		if g := s.Goals(); g != (models.MacroTargets{}) {
			goals = &g
		}
	}

	reply, err := ai.Chat(input.Message, input.Image, goals, input.ConversationHistory)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get AI response", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   reply,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
