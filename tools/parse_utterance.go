package tools

import (
	"context"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"
)

// ParseUtteranceInput defines the input parameters for the
// parse_utterance tool.
type ParseUtteranceInput struct {
	// Text is the free-text utterance to extract entities from.
	Text string `json:"text" jsonschema:"The utterance to parse"`
}

// ParsedClaim is one entity claim extracted from an utterance.
type ParsedClaim struct {
	// Entity is the entity type, e.g. "food" or "city".
	Entity string `json:"entity"`

	// Value is the canonical identifier for the matched expression.
	Value any `json:"value"`

	// Score is the claim's confidence in [0,1].
	Score float64 `json:"score"`

	// Length is the number of words the matched expression spans.
	Length int `json:"length"`
}

// ParseUtteranceOutput contains the parse_utterance results.
type ParseUtteranceOutput struct {
	// Claims are the entity claims that best explain the utterance.
	Claims []ParsedClaim `json:"claims"`

	// Score is the combined confidence across all claims, in [0,1].
	Score float64 `json:"score"`

	// Tier classifies Score into strong/moderate/weak/no_signal.
	Tier string `json:"tier"`
}

// ParseUtterance runs the Iron Throne engine over the given utterance
// and returns the entity claims that best explain it.
func (h *Handler) ParseUtterance(
	ctx context.Context, req *mcp.CallToolRequest,
	input ParseUtteranceInput,
) (*mcp.CallToolResult, ParseUtteranceOutput, error) {
	requestID := uuid.New().String()
	h.log.Info("parse_utterance request",
		zap.String("request_id", requestID), zap.Int("text_len", len(input.Text)))

	claims, score := h.engine.GetEntities(input.Text)

	out := ParseUtteranceOutput{
		Claims: make([]ParsedClaim, len(claims)),
		Score:  score,
		Tier:   ClassifyTier(score),
	}

	for i, c := range claims {
		out.Claims[i] = ParsedClaim{
			Entity: c.Entity,
			Value:  c.Value,
			Score:  c.Score,
			Length: c.Length,
		}
	}

	h.log.Info("parse_utterance response",
		zap.String("request_id", requestID), zap.Int("claims", len(out.Claims)), zap.Float64("score", score))

	return nil, out, nil
}
