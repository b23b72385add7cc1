package controllers

import (
	"net/http"

	"github.com/Shxreef603/Fitly/models"

	"github.com/gin-gonic/gin"
)

type FoodScanInput struct {
	Image     string               `json:"image"`
	UserGoals *models.MacroTargets `json:"userGoals"`
}

// FoodScan analyzes a meal photo and returns the structured nutrition
// estimate.
func FoodScan(c *gin.Context) {
	s, ok := currentSession(c)
	if !ok {
		return
	}

	var input FoodScanInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Image == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image is required"})
		return
	}

	goals := input.UserGoals
	if goals == nil {
		if g := s.Goals(); g != (models.MacroTargets{}) {
			goals = &g
		}
	}

	result, err := scanner.Scan(input.Image, goals)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to analyze meal", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}
