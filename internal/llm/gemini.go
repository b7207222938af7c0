package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"
	genai "google.golang.org/genai"

	"voltlink/internal/models"
)

// ErrEmptyResponse reports a response with no usable candidate content.
var ErrEmptyResponse = errors.New("llm: empty response from model")

// GeminiClient is a thin wrapper around the official genai client. It reads
// GEMINI_API_KEY from the environment via the client config.
type GeminiClient struct {
	cli    *genai.Client
	model  string
	logger *zap.Logger
}

// NewGeminiClient builds the client for the given model.
func NewGeminiClient(ctx context.Context, model string, logger *zap.Logger) (*GeminiClient, error) {
	cli, err := genai.NewClient(ctx, &genai.ClientConfig{Backend: genai.BackendGeminiAPI})
	if err != nil {
		return nil, err
	}
	return &GeminiClient{cli: cli, model: model, logger: logger}, nil
}

func contents(text string) []*genai.Content {
	return []*genai.Content{{Parts: []*genai.Part{{Text: text}}}}
}

const negotiationPromptFormat = `Act as an OCPI (Open Charge Point Interface) v2.2 gateway.
Attempt to start a charging session for Charger ID: %s and Vehicle: %s.

Return a JSON object with:
- status: "ACCEPTED" or "REJECTED"
- sessionId: string (a mock UUID)
- message: string (technical response from the charger)
- estimatedMaxPower: number (kW)`

// StartSession asks the model to emulate a charge-point gateway handshake and
// returns its structured decision. A single request, no retry.
func (g *GeminiClient) StartSession(ctx context.Context, chargerID, vehicleID string) (models.NegotiationOutcome, error) {
	prompt := fmt.Sprintf(negotiationPromptFormat, chargerID, vehicleID)
	g.logger.Debug("negotiation request",
		zap.String("model", g.model),
		zap.String("charger_id", chargerID))

	resp, err := g.cli.Models.GenerateContent(ctx, g.model, contents(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"status":            {Type: genai.TypeString, Enum: []string{models.NegotiationAccepted, models.NegotiationRejected}},
				"sessionId":         {Type: genai.TypeString},
				"message":           {Type: genai.TypeString},
				"estimatedMaxPower": {Type: genai.TypeNumber},
			},
		},
	})
	if err != nil {
		return models.NegotiationOutcome{}, err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return models.NegotiationOutcome{}, ErrEmptyResponse
	}

	var outcome models.NegotiationOutcome
	if err := json.Unmarshal([]byte(resp.Candidates[0].Content.Parts[0].Text), &outcome); err != nil {
		return models.NegotiationOutcome{}, fmt.Errorf("llm: decode negotiation response: %w", err)
	}
	return outcome, nil
}

// Search queries the model with Google Maps grounding and returns the answer
// text plus the raw grounding links, in response order.
func (g *GeminiClient) Search(ctx context.Context, query string, coords *models.Coordinates) (string, []models.GroundingURL, error) {
	prompt := fmt.Sprintf("Find EV chargers: %s. Focus on location, power, and operator.", query)
	g.logger.Debug("search request", zap.String("model", g.model), zap.Int("query_len", len(query)))

	resp, err := g.cli.Models.GenerateContent(ctx, g.model, contents(prompt), searchConfig(coords))
	if err != nil {
		return "", nil, err
	}
	if len(resp.Candidates) == 0 {
		return "", nil, ErrEmptyResponse
	}

	var urls []models.GroundingURL
	if md := resp.Candidates[0].GroundingMetadata; md != nil {
		for _, chunk := range md.GroundingChunks {
			if chunk.Web == nil {
				continue
			}
			urls = append(urls, models.GroundingURL{URI: chunk.Web.URI, Title: chunk.Web.Title})
		}
	}

	return resp.Text(), urls, nil
}

// searchConfig enables the Google Maps grounding tool and, when the user
// position is known, scopes retrieval to it.
func searchConfig(coords *models.Coordinates) *genai.GenerateContentConfig {
	cfg := &genai.GenerateContentConfig{
		Tools: []*genai.Tool{{GoogleMaps: &genai.GoogleMaps{}}},
	}
	if coords != nil {
		cfg.ToolConfig = &genai.ToolConfig{
			RetrievalConfig: &genai.RetrievalConfig{
				LatLng: &genai.LatLng{
					Latitude:  genai.Ptr(coords.Lat),
					Longitude: genai.Ptr(coords.Lng),
				},
			},
		}
	}
	return cfg
}
