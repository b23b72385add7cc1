package controllers

import (
	"errors"
	"net/http"

	"github.com/Shxreef603/Fitly/ledger"
	"github.com/Shxreef603/Fitly/services"

	"github.com/gin-gonic/gin"
)

// dateKeyParam validates the :date path segment.
func dateKeyParam(c *gin.Context) (string, bool) {
	key := c.Param("date")
	if _, err := ledger.ParseDateKey(key); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
		return "", false
	}
	return key, true
}

func slotParam(c *gin.Context) (ledger.Slot, bool) {
	slot := ledger.Slot(c.Param("slot"))
	if !ledger.ValidSlot(slot) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown meal slot"})
		return "", false
	}
	return slot, true
}

func GetMeals(c *gin.Context) {
	s, ok := currentSession(c)
	if !ok {
		return
	}
	dateKey, ok := dateKeyParam(c)
	if !ok {
		return
	}

	day, err := s.MealsForDate(dateKey)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, day)
}

type LogMealInput struct {
	Name     string  `json:"name" binding:"required"`
	Calories float64 `json:"calories" binding:"min=0"`
	Protein  float64 `json:"protein" binding:"min=0"`
	Carbs    float64 `json:"carbs" binding:"min=0"`
	Fat      float64 `json:"fat" binding:"min=0"`
	Icon     string  `json:"icon"`
}

func LogMeal(c *gin.Context) {
	s, ok := currentSession(c)
	if !ok {
		return
	}
	dateKey, ok := dateKeyParam(c)
	if !ok {
		return
	}
	slot, ok := slotParam(c)
	if !ok {
		return
	}

	var input LogMealInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry := ledger.NewMealEntry(input.Name, input.Calories, input.Protein, input.Carbs, input.Fat, input.Icon)
	day, err := s.AddMeal(dateKey, slot, entry)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"meal": entry, "day": day})
}

func UpdateMeal(c *gin.Context) {
	s, ok := currentSession(c)
	if !ok {
		return
	}
	dateKey, ok := dateKeyParam(c)
	if !ok {
		return
	}
	slot, ok := slotParam(c)
	if !ok {
		return
	}

	var updates ledger.MealUpdate
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	day, err := s.UpdateMeal(dateKey, slot, c.Param("id"), updates)
	if err != nil {
		status(c, err)
		return
	}
	c.JSON(http.StatusOK, day)
}

func DeleteMeal(c *gin.Context) {
	s, ok := currentSession(c)
	if !ok {
		return
	}
	dateKey, ok := dateKeyParam(c)
	if !ok {
		return
	}
	slot, ok := slotParam(c)
	if !ok {
		return
	}

	day, err := s.RemoveMeal(dateKey, slot, c.Param("id"))
	if err != nil {
		status(c, err)
		return
	}
	c.JSON(http.StatusOK, day)
}

func GetTotals(c *gin.Context) {
	s, ok := currentSession(c)
	if !ok {
		return
	}
	dateKey, ok := dateKeyParam(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, s.Totals(dateKey))
}

func GetStreak(c *gin.Context) {
	s, ok := currentSession(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"streak": s.Streak()})
}

func status(c *gin.Context, err error) {
	if errors.Is(err, services.ErrInvalidSlot) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
