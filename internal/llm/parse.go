package llm

import (
	"encoding/json"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/lenderdesk/docsift/internal/model"
)

// parseExtraction decodes the dual fields/confidence response.
func parseExtraction(text string) (map[string]any, map[string]float64, error) {
	cleaned := cleanJSON(text)

	var raw struct {
		Fields           map[string]any     `json:"fields"`
		ConfidenceScores map[string]float64 `json:"confidence_scores"`
	}
	if err := json.Unmarshal([]byte(cleaned), &raw); err != nil {
		return nil, nil, eris.Wrap(err, "llm: parse extraction response")
	}
	if raw.Fields == nil {
		return nil, nil, eris.New("llm: extraction response missing fields object")
	}
	if raw.ConfidenceScores == nil {
		raw.ConfidenceScores = make(map[string]float64)
	}
	return raw.Fields, raw.ConfidenceScores, nil
}

func parseClassification(text string) (*model.Classification, error) {
	cleaned := cleanJSON(text)

	var c model.Classification
	if err := json.Unmarshal([]byte(cleaned), &c); err != nil {
		return nil, eris.Wrap(err, "llm: parse classification response")
	}
	if c.DocTypeID == "" {
		c.DocTypeID = "generic"
	}
	return &c, nil
}

func parseEvaluation(text string) (*model.Evaluation, error) {
	cleaned := cleanJSON(text)

	var ev model.Evaluation
	if err := json.Unmarshal([]byte(cleaned), &ev); err != nil {
		return nil, eris.Wrap(err, "llm: parse evaluation response")
	}
	return &ev, nil
}

// cleanJSON strips markdown fences and extracts the JSON object.
func cleanJSON(text string) string {
	text = strings.TrimSpace(text)

	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
	} else if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
	}

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start >= 0 && end > start {
		text = text[start : end+1]
	}

	return strings.TrimSpace(text)
}
