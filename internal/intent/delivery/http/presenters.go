package http

import (
	"math"

	"ecoavobot/internal/intent"
)

// --- Request DTOs ---

type chatReq struct {
	Message string `json:"message"`
}

func (r chatReq) toInput() intent.ClassifyInput {
	return intent.ClassifyInput{Message: r.Message}
}

// ---

type listReq struct {
	Query string `form:"q"`
}

func (r listReq) toInput() intent.ListIntentsInput {
	return intent.ListIntentsInput{Query: r.Query}
}

// --- Response DTOs ---

type chatResp struct {
	Intent     string  `json:"intent,omitempty"`
	Confidence float64 `json:"confidence"`
	Answer     string  `json:"answer"`
	Outcome    string  `json:"outcome"`
	Strategy   string  `json:"strategy,omitempty"`
}

func (h *handler) newChatResp(out intent.ClassifyOutput) chatResp {
	return chatResp{
		Intent:     out.Tag,
		Confidence: roundConfidence(out.Confidence),
		Answer:     out.Answer,
		Outcome:    string(out.Outcome),
		Strategy:   out.Strategy,
	}
}

// legacyChatResp is the flat body the web widget reads. Intent and confidence
// are only present when an intent was chosen.
type legacyChatResp struct {
	Intent     string   `json:"intent,omitempty"`
	Confidence *float64 `json:"confidence,omitempty"`
	Answer     string   `json:"answer"`
}

func (h *handler) newLegacyChatResp(out intent.ClassifyOutput) legacyChatResp {
	if !out.Resolved() {
		return legacyChatResp{Answer: out.Answer}
	}
	conf := roundConfidence(out.Confidence)
	return legacyChatResp{
		Intent:     out.Tag,
		Confidence: &conf,
		Answer:     out.Answer,
	}
}

type intentResp struct {
	Tag           string `json:"tag"`
	PatternCount  int    `json:"pattern_count"`
	ResponseCount int    `json:"response_count"`
}

type listResp struct {
	Intents []intentResp `json:"intents"`
	Total   int          `json:"total"`
}

func (h *handler) newListResp(out intent.ListIntentsOutput) listResp {
	items := make([]intentResp, len(out.Intents))
	for i, it := range out.Intents {
		items[i] = intentResp{
			Tag:           it.Tag,
			PatternCount:  it.PatternCount,
			ResponseCount: it.ResponseCount,
		}
	}
	return listResp{Intents: items, Total: out.Total}
}

type reloadResp struct {
	Intents  int `json:"intents"`
	Patterns int `json:"patterns"`
}

func (h *handler) newReloadResp(out intent.ReloadOutput) reloadResp {
	return reloadResp{Intents: out.Intents, Patterns: out.Patterns}
}

type statusResp struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func roundConfidence(v float64) float64 {
	p := math.Pow10(confidenceDecimals)
	return math.Round(v*p) / p
}
