package controllers

import (
	"net/http"
	"time"

	"github.com/Shxreef603/Fitly/ledger"

	"github.com/gin-gonic/gin"
)

// builtinPlanDays gives the fixed challenge lengths; custom plans carry
// their own.
var builtinPlanDays = map[ledger.PlanType]int{
	ledger.PlanNinetyDay: 90,
	ledger.PlanSevenDay:  7,
	ledger.PlanNoSugar:   30,
}

func GetPlan(c *gin.Context) {
	s, ok := currentSession(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"plan": s.Plan()})
}

type SelectPlanInput struct {
	Type     string `json:"type" binding:"required"`
	Duration int    `json:"duration"`
}

// SelectPlan starts a new challenge today, replacing any active one.
func SelectPlan(c *gin.Context) {
	s, ok := currentSession(c)
	if !ok {
		return
	}

	var input SelectPlanInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	planType := ledger.PlanType(input.Type)
	duration := input.Duration
	if days, ok := builtinPlanDays[planType]; ok {
		duration = days
	} else if planType != ledger.PlanCustom {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown plan type"})
		return
	}

	plan, err := s.SelectPlan(planType, duration)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"plan": plan})
}

type ReplacePlanInput struct {
	Type      string    `json:"type" binding:"required"`
	StartDate time.Time `json:"startDate" binding:"required"`
	Duration  int       `json:"duration" binding:"required,gt=0"`
}

// ReplacePlan overwrites the active plan wholesale, including its start
// date.
func ReplacePlan(c *gin.Context) {
	s, ok := currentSession(c)
	if !ok {
		return
	}

	var input ReplacePlanInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	plan := ledger.Plan{
		Type:      ledger.PlanType(input.Type),
		StartDate: input.StartDate,
		Duration:  input.Duration,
	}
	if err := s.ReplacePlan(plan); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"plan": plan})
}

func GetPlanProgress(c *gin.Context) {
	s, ok := currentSession(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, s.PlanProgress())
}
