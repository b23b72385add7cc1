package controllers

import (
	"net/http"
	"strings"

	"github.com/Shxreef603/Fitly/models"

	"github.com/gin-gonic/gin"
)

type FoodSearchInput struct {
	Query string `json:"query"`
}

// FoodSearch resolves a free-text query into candidate foods to log.
func FoodSearch(c *gin.Context) {
	var input FoodSearchInput
	if err := c.ShouldBindJSON(&input); err != nil || strings.TrimSpace(input.Query) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Search query is required"})
		return
	}

	if !ai.Configured() {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "AI Search is not configured"})
		return
	}

	foods, err := ai.FoodSearch(input.Query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search for foods", "message": err.Error()})
		return
	}
	if foods == nil {
		foods = []models.FoodCandidate{}
	}
	c.JSON(http.StatusOK, gin.H{"foods": foods})
}
