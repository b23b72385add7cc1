package services

import (
	"errors"
	"log"

	"github.com/Shxreef603/Fitly/models"
	"github.com/Shxreef603/Fitly/utils"
)

// ScanService runs a meal-photo analysis end to end: archive the photo
// to S3, then ask the LLM for the structured estimate, falling back to
// Rekognition labels when no LLM key is configured.
type ScanService struct {
	ai  *OpenRouterService
	rek *RekognitionService // may be nil
}

func NewScanService(ai *OpenRouterService, rek *RekognitionService) *ScanService {
	return &ScanService{ai: ai, rek: rek}
}

// Scan analyzes the image against the user's goals. The S3 upload is
// best-effort; a failed upload only costs the archive URL.
func (s *ScanService) Scan(image string, goals *models.MacroTargets) (*models.ScanResult, error) {
	var imgURL string
	if url, err := utils.UploadBase64ImageToS3(image, "scans/meal"); err != nil {
		log.Printf("meal photo upload failed: %v", err)
	} else {
		imgURL = url
	}

	if s.ai.Configured() {
		result, err := s.ai.FoodScan(image, goals)
		if err != nil {
			return nil, err
		}
		result.ImageURL = imgURL
		return result, nil
	}

	if s.rek == nil {
		return nil, errors.New("meal scanning is not configured")
	}

	foods, err := s.rek.DetectFoods(image)
	if err != nil {
		return nil, err
	}
	if len(foods) == 0 {
		return nil, errors.New("no foods detected")
	}
	return &models.ScanResult{
		MealName:      foods[0].Name,
		FoodsDetected: foods,
		ImageURL:      imgURL,
	}, nil
}
