package controllers

import (
	"net/http"

	"github.com/Shxreef603/Fitly/models"
	"github.com/Shxreef603/Fitly/utils"

	"github.com/gin-gonic/gin"
)

func GetProfile(c *gin.Context) {
	s, ok := currentSession(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"profile": s.Profile()})
}

func UpdateProfile(c *gin.Context) {
	s, ok := currentSession(c)
	if !ok {
		return
	}

	var input models.Profile
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := s.SaveProfile(input); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"profile": s.Profile()})
}

func GetGoals(c *gin.Context) {
	s, ok := currentSession(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"goals": s.Goals()})
}

type GoalsInput struct {
	Calories float64 `json:"calories" binding:"min=0"`
	Protein  float64 `json:"protein" binding:"min=0"`
	Carbs    float64 `json:"carbs" binding:"min=0"`
	Fat      float64 `json:"fat" binding:"min=0"`
}

func UpdateGoals(c *gin.Context) {
	s, ok := currentSession(c)
	if !ok {
		return
	}

	var input GoalsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	goals := models.MacroTargets(input)
	if err := s.SaveGoals(goals); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"goals": goals})
}

type SuggestGoalsInput struct {
	Weight   float64 `json:"weight" binding:"required,gt=0"`
	Height   float64 `json:"height" binding:"required,gt=0"`
	Age      int     `json:"age" binding:"required,gt=0"`
	Gender   string  `json:"gender" binding:"required"`
	Activity string  `json:"activity" binding:"required"`
	Goal     string  `json:"goal" binding:"required"`
}

// SuggestGoals computes macro targets from body stats without saving
// them; the client decides whether to apply the suggestion.
func SuggestGoals(c *gin.Context) {
	var input SuggestGoalsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	suggestion, err := utils.CalculateMacros(input.Weight, input.Height, input.Age, input.Gender, input.Activity, input.Goal)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"macros": suggestion})
}
