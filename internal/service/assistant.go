package service

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"voltlink/internal/models"
)

// SearchService is the remote answer capability behind the assistant.
// Implemented by the Gemini client; tests substitute fakes.
type SearchService interface {
	Search(ctx context.Context, query string, coords *models.Coordinates) (string, []models.GroundingURL, error)
}

const (
	greetingText    = `Hi! I can help you find charging stations nearby. Try "Find fast chargers near me" or "Cheap chargers in Downtown".`
	emptyResultText = "I found some results."
	apologyText     = "Sorry, I couldn't connect to the charging network database right now. Please try again."
)

// Assistant forwards free-text queries to the search capability and keeps
// the append-only chat transcript. From the caller's perspective it never
// fails: remote errors degrade to a canned apology message.
type Assistant struct {
	search SearchService
	logger *zap.Logger

	mu       sync.Mutex
	messages []models.ChatMessage
}

// NewAssistant builds the assistant with the greeting already in the log.
func NewAssistant(search SearchService, logger *zap.Logger) *Assistant {
	return &Assistant{
		search: search,
		logger: logger,
		messages: []models.ChatMessage{{
			ID:   uuid.NewString(),
			Role: models.ChatRoleModel,
			Text: greetingText,
		}},
	}
}

// Messages returns a copy of the transcript.
func (a *Assistant) Messages() []models.ChatMessage {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]models.ChatMessage, len(a.messages))
	copy(out, a.messages)
	return out
}

// Send appends the user query, performs the search and appends the reply.
// The reply is returned; it is always a model message.
func (a *Assistant) Send(ctx context.Context, text string, coords *models.Coordinates) models.ChatMessage {
	userMsg := models.ChatMessage{
		ID:   uuid.NewString(),
		Role: models.ChatRoleUser,
		Text: text,
	}
	a.append(userMsg)

	reply := a.query(ctx, text, coords)
	a.append(reply)
	return reply
}

func (a *Assistant) query(ctx context.Context, text string, coords *models.Coordinates) models.ChatMessage {
	answer, urls, err := a.search.Search(ctx, text, coords)
	if err != nil {
		a.logger.Warn("assistant search failed", zap.Error(err))
		return models.ChatMessage{
			ID:   uuid.NewString(),
			Role: models.ChatRoleModel,
			Text: apologyText,
		}
	}

	if strings.TrimSpace(answer) == "" {
		answer = emptyResultText
	}

	// Keep only citations carrying both a URI and a title, in service order.
	var cites []models.GroundingURL
	for _, u := range urls {
		if u.URI == "" || u.Title == "" {
			continue
		}
		cites = append(cites, u)
	}

	return models.ChatMessage{
		ID:            uuid.NewString(),
		Role:          models.ChatRoleModel,
		Text:          answer,
		GroundingURLs: cites,
	}
}

func (a *Assistant) append(msg models.ChatMessage) {
	a.mu.Lock()
	a.messages = append(a.messages, msg)
	a.mu.Unlock()
}
