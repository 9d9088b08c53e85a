package intelligence

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"calendarcopilot/models"
)

// DefaultAvailabilityInterpreter turns free text into a WeekAvailability by
// prompting a generative model and running its output through the
// parse-and-normalize boundary. Model output is never trusted directly.
type DefaultAvailabilityInterpreter struct {
	client ContentGenerator
}

// NewDefaultAvailabilityInterpreter wires a Gemini-backed interpreter.
func NewDefaultAvailabilityInterpreter(apiKey, modelName string) *DefaultAvailabilityInterpreter {
	return &DefaultAvailabilityInterpreter{
		client: NewGeminiClient(apiKey, modelName),
	}
}

// NewInterpreterWithGenerator wires an interpreter over any content
// generator; used by tests.
func NewInterpreterWithGenerator(client ContentGenerator) *DefaultAvailabilityInterpreter {
	return &DefaultAvailabilityInterpreter{client: client}
}

func (s *DefaultAvailabilityInterpreter) ParseAvailability(ctx context.Context, description string) (*models.WeekAvailability, error) {
	content, err := s.client.GenerateContent(ctx, availabilityPrompt(description))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return parseWeekJSON(content)
}

// parseWeekJSON extracts the JSON object from model output and normalizes
// it into a week. Models occasionally wrap the object in prose or code
// fences; everything outside the outermost braces is discarded.
func parseWeekJSON(content string) (*models.WeekAvailability, error) {
	payload, ok := extractJSONObject(content)
	if !ok {
		return nil, fmt.Errorf("%w: no JSON object found", ErrUnparsable)
	}

	var raw map[string]interface{}
	if err := json.Unmarshal([]byte(payload), &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnparsable, err)
	}
	return models.NormalizeWeek(raw), nil
}

func extractJSONObject(content string) (string, bool) {
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start == -1 || end < start {
		return "", false
	}
	return content[start : end+1], true
}
