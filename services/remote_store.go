package services

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Shxreef603/Fitly/ledger"
	"github.com/Shxreef603/Fitly/models"

	"gorm.io/gorm"
)

// RemoteStore is the cloud side of the dual write: per-user documents
// for meals-by-date, the active plan and the macro goals. Reads return
// the latest stored document or absence; writes upsert the whole
// record.
type RemoteStore struct{ db *gorm.DB }

func NewRemoteStore(db *gorm.DB) *RemoteStore { return &RemoteStore{db: db} }

func (s *RemoteStore) GetMealsForDate(userID uint, dateKey string) (ledger.DaySlots, bool, error) {
	var row models.MealDay
	err := s.db.Where("user_id = ? AND date_key = ?", userID, dateKey).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	day := ledger.InitializeDaySlots()
	if err := json.Unmarshal([]byte(row.Slots), &day); err != nil {
		return nil, false, fmt.Errorf("failed to decode stored day %s: %w", dateKey, err)
	}
	return day, true, nil
}

func (s *RemoteStore) SetMealsForDate(userID uint, dateKey string, day ledger.DaySlots) error {
	encoded, err := json.Marshal(day)
	if err != nil {
		return fmt.Errorf("failed to encode day %s: %w", dateKey, err)
	}

	var row models.MealDay
	err = s.db.Where("user_id = ? AND date_key = ?", userID, dateKey).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		row = models.MealDay{UserID: userID, DateKey: dateKey, Slots: string(encoded)}
		return s.db.Create(&row).Error
	}
	if err != nil {
		return err
	}
	row.Slots = string(encoded)
	return s.db.Save(&row).Error
}

func (s *RemoteStore) GetPlan(userID uint) (*ledger.Plan, error) {
	var row models.ActivePlan
	err := s.db.Where("user_id = ?", userID).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ledger.Plan{
		Type:      ledger.PlanType(row.Type),
		StartDate: row.StartDate,
		Duration:  row.Duration,
	}, nil
}

func (s *RemoteStore) SetPlan(userID uint, p ledger.Plan) error {
	var row models.ActivePlan
	err := s.db.Where("user_id = ?", userID).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		row = models.ActivePlan{
			UserID:    userID,
			Type:      string(p.Type),
			StartDate: p.StartDate,
			Duration:  p.Duration,
		}
		return s.db.Create(&row).Error
	}
	if err != nil {
		return err
	}
	row.Type = string(p.Type)
	row.StartDate = p.StartDate
	row.Duration = p.Duration
	return s.db.Save(&row).Error
}

func (s *RemoteStore) GetProfile(userID uint) (*models.Profile, error) {
	var user models.User
	err := s.db.First(&user, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	p := &models.Profile{
		FullName:  user.FullName,
		Gender:    user.Gender,
		Age:       user.Age,
		Height:    user.Height,
		Weight:    user.Weight,
		Activity:  user.Activity,
		Goal:      user.Goal,
		Onboarded: user.Onboarded,
	}
	goal, err := s.GetGoals(userID)
	if err != nil {
		return nil, err
	}
	if goal != nil {
		p.Macros = models.MacroTargets{
			Calories: goal.Calories,
			Protein:  goal.Protein,
			Carbs:    goal.Carbs,
			Fat:      goal.Fat,
		}
	}
	return p, nil
}

func (s *RemoteStore) SetProfile(userID uint, p models.Profile) error {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return err
	}

	user.FullName = p.FullName
	user.Gender = p.Gender
	user.Age = p.Age
	user.Height = p.Height
	user.Weight = p.Weight
	user.Activity = p.Activity
	user.Goal = p.Goal
	user.Onboarded = p.Onboarded
	if err := s.db.Save(&user).Error; err != nil {
		return err
	}

	m := p.Macros
	return s.SetGoals(userID, m.Calories, m.Protein, m.Carbs, m.Fat)
}

func (s *RemoteStore) GetGoals(userID uint) (*models.MacroGoal, error) {
	var goal models.MacroGoal
	err := s.db.Where("user_id = ?", userID).First(&goal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &goal, nil
}

func (s *RemoteStore) SetGoals(userID uint, calories, protein, carbs, fat float64) error {
	var goal models.MacroGoal
	err := s.db.Where("user_id = ?", userID).First(&goal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		goal = models.MacroGoal{
			UserID:   userID,
			Calories: calories,
			Protein:  protein,
			Carbs:    carbs,
			Fat:      fat,
		}
		return s.db.Create(&goal).Error
	}
	if err != nil {
		return err
	}
	goal.Calories = calories
	goal.Protein = protein
	goal.Carbs = carbs
	goal.Fat = fat
	return s.db.Save(&goal).Error
}
