package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// NutritionPayload is the JSON object Claude is instructed to return.
// Notes, DateOffsetDays and MealTime are nullable in the contract.
type NutritionPayload struct {
	Calories       float64 `json:"calories"`
	ProteinG       float64 `json:"protein_g"`
	CarbsG         float64 `json:"carbs_g"`
	FatG           float64 `json:"fat_g"`
	FiberG         float64 `json:"fiber_g"`
	SugarG         float64 `json:"sugar_g"`
	SodiumMg       float64 `json:"sodium_mg"`
	SaturatedFatG  float64 `json:"saturated_fat_g"`
	FoodName       string  `json:"food_name"`
	Notes          *string `json:"notes"`
	DateOffsetDays *int    `json:"date_offset_days"`
	MealTime       *string `json:"meal_time"`
}

// NutritionInferencer parses a free-text food description into nutrition data.
type NutritionInferencer interface {
	ParseFood(food string) (*NutritionPayload, error)
}

var ErrNoAPIKey = errors.New("ANTHROPIC_API_KEY not configured")

// APIError is a non-2xx reply from the Anthropic API, body included.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("claude API error %d: %s", e.StatusCode, e.Body)
}

// ParseError means Claude answered but the text was not the JSON we asked for.
// Raw carries the verbatim reply for diagnostics.
type ParseError struct {
	Raw string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid JSON from claude: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

const systemPrompt = `You are a nutrition parser. Given a food description, return ONLY valid JSON with no other text.

Return this structure:
{
  "calories": number,
  "protein_g": number,
  "carbs_g": number,
  "fat_g": number,
  "fiber_g": number,
  "sugar_g": number,
  "sodium_mg": number,
  "saturated_fat_g": number,
  "food_name": "brief summary of the food",
  "notes": "any additional context mentioned (e.g., 'felt hungry', 'cheat meal', 'post workout') or null if none",
  "date_offset_days": number or null,
  "meal_time": "breakfast" | "lunch" | "dinner" | "snack" | null
}

For date_offset_days: 0 = today, -1 = yesterday, -2 = two days ago, etc. Set to null if no date mentioned.
For meal_time: extract if mentioned (e.g., "at breakfast", "for dinner", "lunch"). Set to null if not mentioned.

Use your knowledge of nutrition databases. If weight is given, calculate accordingly. If weight is not given, assume a typical serving size. Only return valid JSON, no other text.`

type ClaudeService struct {
	apiKey string
	apiURL string
	model  string
	client *http.Client
}

func NewClaudeService(apiKey string) *ClaudeService {
	return &ClaudeService{
		apiKey: apiKey,
		apiURL: "https://api.anthropic.com/v1/messages",
		model:  "claude-sonnet-4-20250514",
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

type claudeMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type messagesRequest struct {
	Model     string          `json:"model"`
	MaxTokens int             `json:"max_tokens"`
	Messages  []claudeMessage `json:"messages"`
}

type messagesResponse struct {
	Content []struct {
		Text string `json:"text"`
	} `json:"content"`
}

func (s *ClaudeService) ParseFood(food string) (*NutritionPayload, error) {
	if s.apiKey == "" {
		return nil, ErrNoAPIKey
	}

	payload := messagesRequest{
		Model:     s.model,
		MaxTokens: 300,
		Messages: []claudeMessage{{
			Role:    "user",
			Content: fmt.Sprintf("%s\n\nFood: %s", systemPrompt, food),
		}},
	}

	b, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal messages payload: %w", err)
	}

	req, err := http.NewRequest("POST", s.apiURL, bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("failed to create messages request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", s.apiKey)
	req.Header.Set("anthropic-version", "2023-06-01")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call claude API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read claude response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var mr messagesResponse
	if err := json.Unmarshal(body, &mr); err != nil {
		return nil, fmt.Errorf("failed to parse claude envelope: %w", err)
	}
	if len(mr.Content) == 0 {
		return nil, &ParseError{Raw: string(body), Err: errors.New("empty content")}
	}

	text := mr.Content[0].Text
	var nutrition NutritionPayload
	if err := json.Unmarshal([]byte(stripCodeFence(text)), &nutrition); err != nil {
		return nil, &ParseError{Raw: text, Err: err}
	}
	return &nutrition, nil
}

// stripCodeFence removes a surrounding markdown code block ("```json ... ```"
// or bare "```") that the model sometimes wraps its answer in.
func stripCodeFence(text string) string {
	s := strings.TrimSpace(text)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimPrefix(s, "json")
	if i := strings.LastIndex(s, "```"); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}
