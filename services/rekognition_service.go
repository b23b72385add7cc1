package services

import (
	"context"
	"encoding/base64"
	"errors"
	"os"
	"strings"

	"github.com/Shxreef603/Fitly/models"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	"github.com/aws/aws-sdk-go-v2/service/rekognition/types"
)

// RekognitionService is the degraded scan path: when the LLM is not
// configured it can still name what is on the plate, with confidence
// scores but no nutrition estimate.
type RekognitionService struct {
	client *rekognition.Client
}

func NewRekognitionService() (*RekognitionService, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(os.Getenv("AWS_REGION")))
	if err != nil {
		return nil, err
	}
	return &RekognitionService{client: rekognition.NewFromConfig(cfg)}, nil
}

// DetectFoods returns the top labels for an image (data URI or raw
// base64) as detected foods.
func (r *RekognitionService) DetectFoods(image string) ([]models.DetectedFood, error) {
	raw := image
	if strings.HasPrefix(image, "data:") {
		idx := strings.Index(image, ",")
		if idx == -1 {
			return nil, errors.New("invalid data URI")
		}
		raw = image[idx+1:]
	}
	data, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return nil, err
	}

	out, err := r.client.DetectLabels(context.TODO(), &rekognition.DetectLabelsInput{
		Image:         &types.Image{Bytes: data},
		MaxLabels:     aws.Int32(5),
		MinConfidence: aws.Float32(75),
	})
	if err != nil {
		return nil, err
	}

	foods := make([]models.DetectedFood, 0, len(out.Labels))
	for _, l := range out.Labels {
		f := models.DetectedFood{Name: aws.ToString(l.Name)}
		if l.Confidence != nil {
			f.Confidence = float64(*l.Confidence) / 100
		}
		foods = append(foods, f)
	}
	return foods, nil
}
