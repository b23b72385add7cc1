package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/Shxreef603/Fitly/models"
)

const openRouterModel = "openai/gpt-4o-mini"

// OpenRouterService proxies the three AI features (meal-photo scan,
// food search, nutrition chat) to the OpenRouter chat-completions API.
type OpenRouterService struct {
	apiKey  string
	baseURL string
	referer string
	client  *http.Client
}

func NewOpenRouterService() *OpenRouterService {
	baseURL := os.Getenv("OPENROUTER_BASE_URL")
	if baseURL == "" {
		baseURL = "https://openrouter.ai/api/v1/chat/completions"
	}
	return &OpenRouterService{
		apiKey:  os.Getenv("OPENROUTER_API_KEY"),
		baseURL: baseURL,
		referer: os.Getenv("APP_ORIGIN"),
		client:  &http.Client{Timeout: 60 * time.Second},
	}
}

// Configured reports whether an API key is present. Callers fall back
// to degraded behavior when it is not.
func (s *OpenRouterService) Configured() bool { return s.apiKey != "" }

type chatMessage struct {
	Role    string `json:"role"`
	Content any    `json:"content"`
}

type contentPart struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *imageURL `json:"image_url,omitempty"`
}

type imageURL struct {
	URL string `json:"url"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type completionRequest struct {
	Model          string          `json:"model"`
	Messages       []chatMessage   `json:"messages"`
	Temperature    float64         `json:"temperature,omitempty"`
	MaxTokens      int             `json:"max_tokens,omitempty"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type completionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (s *OpenRouterService) complete(req completionRequest) (string, error) {
	if !s.Configured() {
		return "", errors.New("OPENROUTER_API_KEY is not configured")
	}

	b, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("failed to marshal completion payload: %w", err)
	}

	httpReq, err := http.NewRequest("POST", s.baseURL, bytes.NewReader(b))
	if err != nil {
		return "", fmt.Errorf("failed to create completion request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+s.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")
	if s.referer != "" {
		httpReq.Header.Set("HTTP-Referer", s.referer)
	}
	httpReq.Header.Set("X-Title", "Fitly Nutrition Tracker")

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("failed to call OpenRouter: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read OpenRouter response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		var cr completionResponse
		if json.Unmarshal(body, &cr) == nil && cr.Error != nil && cr.Error.Message != "" {
			return "", fmt.Errorf("OpenRouter API error %d: %s", resp.StatusCode, cr.Error.Message)
		}
		return "", fmt.Errorf("OpenRouter API error %d: %s", resp.StatusCode, string(body))
	}

	var cr completionResponse
	if err := json.Unmarshal(body, &cr); err != nil {
		return "", fmt.Errorf("failed to parse OpenRouter JSON: %w", err)
	}
	if len(cr.Choices) == 0 || cr.Choices[0].Message.Content == "" {
		return "", errors.New("no response from AI")
	}
	return cr.Choices[0].Message.Content, nil
}

// dataURI normalizes an image argument to a data URI; raw base64 is
// assumed to be JPEG, matching the client contract.
func dataURI(image string) string {
	if strings.HasPrefix(image, "data:") {
		return image
	}
	return "data:image/jpeg;base64," + image
}

// extractJSON pulls the outermost JSON object out of a reply that may
// be wrapped in markdown fences or prose.
func extractJSON(s string) string {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end <= start {
		return s
	}
	return s[start : end+1]
}

const scanSystemPrompt = `You are a nutrition expert. Analyze the food image and provide a detailed nutrition breakdown.
Return ONLY a valid JSON object with this exact structure:
{
  "meal_name": "brief meal description",
  "foods_detected": [
    { "name": "food item", "confidence": 0.0-1.0, "portion": "estimated portion" }
  ],
  "nutrition_estimate": {
    "calories_kcal": 0,
    "protein_g": 0,
    "carbs_g": 0,
    "fat_g": 0,
    "fiber_g": 0,
    "sugar_g": 0,
    "sodium_mg": 0
  },
  "plan_assessment": {
    "is_healthy": true/false,
    "notes": ["brief note"],
    "alternatives": ["suggestion"]
  }
}`

// FoodScan analyzes a meal photo, optionally judging it against the
// user's macro targets.
func (s *OpenRouterService) FoodScan(image string, goals *models.MacroTargets) (*models.ScanResult, error) {
	system := scanSystemPrompt
	if goals != nil {
		system += fmt.Sprintf(`
User's daily goals: %.0f calories, %.0fg protein, %.0fg carbs, %.0fg fat.
In plan_assessment, evaluate if this meal fits their goals and suggest improvements.`,
			orDefault(goals.Calories, 2000), orDefault(goals.Protein, 150),
			orDefault(goals.Carbs, 200), orDefault(goals.Fat, 65))
	}

	reply, err := s.complete(completionRequest{
		Model: openRouterModel,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: []contentPart{
				{Type: "text", Text: "Analyze this meal and provide nutrition information in the JSON format specified."},
				{Type: "image_url", ImageURL: &imageURL{URL: dataURI(image)}},
			}},
		},
		Temperature: 0.3,
		MaxTokens:   2000,
	})
	if err != nil {
		return nil, err
	}

	var result models.ScanResult
	if err := json.Unmarshal([]byte(extractJSON(reply)), &result); err != nil {
		return nil, errors.New("AI response was not valid JSON")
	}
	if result.MealName == "" || len(result.FoodsDetected) == 0 || result.NutritionEstimate == nil {
		return nil, errors.New("AI response missing required fields")
	}
	return &result, nil
}

const searchSystemPrompt = `You are a nutritional database. Return a JSON array of 5 top food items matching the search query. For each item, provide: name (descriptive, includes portion size), calories (int), protein (float), carbs (float), fat (float), and icon (a single relevant emoji). Return ONLY the JSON object with a "foods" key containing the array.`

// FoodSearch resolves a free-text query into up to five candidate
// foods ready to log. A blank query yields an empty list without any
// I/O.
func (s *OpenRouterService) FoodSearch(query string) ([]models.FoodCandidate, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return []models.FoodCandidate{}, nil
	}

	reply, err := s.complete(completionRequest{
		Model: openRouterModel,
		Messages: []chatMessage{
			{Role: "system", Content: searchSystemPrompt},
			{Role: "user", Content: "Search query: " + q},
		},
		ResponseFormat: &responseFormat{Type: "json_object"},
	})
	if err != nil {
		return nil, err
	}

	var parsed struct {
		Foods []struct {
			Name     string  `json:"name"`
			Calories float64 `json:"calories"`
			Protein  float64 `json:"protein"`
			Carbs    float64 `json:"carbs"`
			Fat      float64 `json:"fat"`
			Icon     string  `json:"icon"`
		} `json:"foods"`
	}
	if err := json.Unmarshal([]byte(extractJSON(reply)), &parsed); err != nil {
		return nil, errors.New("AI response was not valid JSON")
	}

	foods := make([]models.FoodCandidate, 0, len(parsed.Foods))
	for _, f := range parsed.Foods {
		name := f.Name
		if name == "" {
			name = "Unknown"
		}
		icon := f.Icon
		if icon == "" {
			icon = "🍽️"
		}
		foods = append(foods, models.FoodCandidate{
			Name:     name,
			Calories: int(math.Round(f.Calories)),
			Protein:  math.Round(f.Protein*10) / 10,
			Carbs:    math.Round(f.Carbs*10) / 10,
			Fat:      math.Round(f.Fat*10) / 10,
			Icon:     icon,
		})
	}
	return foods, nil
}

// ChatMessage is one prior turn the client replays for context.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

const chatSystemPrompt = `You are Fitly AI, a friendly and knowledgeable fitness and nutrition assistant.

Guidelines:
- Keep responses SHORT and CRISP (2-4 sentences or bullet points)
- Use emojis sparingly for emphasis (✅ ⚠️ 🍽️)
- Always structure feedback as:
  ✅ What's good
  ⚠️ What to improve
  🍽️ Better alternatives (if applicable)
- Be encouraging but honest
- Focus on practical, actionable advice`

// Chat answers a free-form nutrition question, optionally about an
// attached image, in the context of the user's goals and conversation
// history.
func (s *OpenRouterService) Chat(message, image string, goals *models.MacroTargets, history []ChatMessage) (string, error) {
	system := chatSystemPrompt
	if goals != nil {
		system += fmt.Sprintf(`

User's Daily Goals:
- Calories: %.0f kcal
- Protein: %.0fg
- Carbs: %.0fg
- Fat: %.0fg

Always evaluate meals and suggestions against these targets.`,
			orDefault(goals.Calories, 2000), orDefault(goals.Protein, 150),
			orDefault(goals.Carbs, 200), orDefault(goals.Fat, 65))
	}

	messages := []chatMessage{{Role: "system", Content: system}}
	for _, h := range history {
		messages = append(messages, chatMessage{Role: h.Role, Content: h.Content})
	}

	switch {
	case image != "" && message != "":
		messages = append(messages, chatMessage{Role: "user", Content: []contentPart{
			{Type: "text", Text: message},
			{Type: "image_url", ImageURL: &imageURL{URL: dataURI(image)}},
		}})
	case image != "":
		messages = append(messages, chatMessage{Role: "user", Content: []contentPart{
			{Type: "image_url", ImageURL: &imageURL{URL: dataURI(image)}},
		}})
	default:
		messages = append(messages, chatMessage{Role: "user", Content: message})
	}

	return s.complete(completionRequest{
		Model:       openRouterModel,
		Messages:    messages,
		Temperature: 0.7,
		MaxTokens:   500,
	})
}

func orDefault(v, def float64) float64 {
	if v <= 0 {
		return def
	}
	return v
}
