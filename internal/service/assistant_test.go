package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"voltlink/internal/models"
)

type fakeSearchService struct {
	text string
	urls []models.GroundingURL
	err  error

	lastQuery  string
	lastCoords *models.Coordinates
}

func (f *fakeSearchService) Search(_ context.Context, query string, coords *models.Coordinates) (string, []models.GroundingURL, error) {
	f.lastQuery = query
	f.lastCoords = coords
	return f.text, f.urls, f.err
}

func TestAssistantSeedsGreeting(t *testing.T) {
	assistant := NewAssistant(&fakeSearchService{}, zap.NewNop())

	messages := assistant.Messages()
	if len(messages) != 1 {
		t.Fatalf("expected greeting only, got %d messages", len(messages))
	}
	if messages[0].Role != models.ChatRoleModel {
		t.Fatalf("greeting must be a model message, got %s", messages[0].Role)
	}
	if messages[0].Text == "" || messages[0].ID == "" {
		t.Fatalf("greeting must have id and text: %+v", messages[0])
	}
}

func TestSendAppendsUserAndReply(t *testing.T) {
	search := &fakeSearchService{text: "Three fast chargers nearby."}
	assistant := NewAssistant(search, zap.NewNop())

	coords := &models.Coordinates{Lat: 37.7, Lng: -122.4}
	reply := assistant.Send(context.Background(), "find fast chargers", coords)

	if reply.Role != models.ChatRoleModel {
		t.Fatalf("reply role = %s", reply.Role)
	}
	if reply.Text != "Three fast chargers nearby." {
		t.Fatalf("unexpected reply text: %q", reply.Text)
	}
	if search.lastQuery != "find fast chargers" {
		t.Fatalf("query not forwarded: %q", search.lastQuery)
	}
	if search.lastCoords == nil || search.lastCoords.Lat != 37.7 {
		t.Fatalf("coords not forwarded: %+v", search.lastCoords)
	}

	messages := assistant.Messages()
	if len(messages) != 3 {
		t.Fatalf("expected greeting + user + reply, got %d", len(messages))
	}
	if messages[1].Role != models.ChatRoleUser || messages[1].Text != "find fast chargers" {
		t.Fatalf("user message not recorded: %+v", messages[1])
	}
	if messages[2].ID == messages[1].ID {
		t.Fatalf("message ids must be unique")
	}
}

func TestSendFailureYieldsApologyWithoutCitations(t *testing.T) {
	search := &fakeSearchService{err: errors.New("api quota exceeded")}
	assistant := NewAssistant(search, zap.NewNop())

	reply := assistant.Send(context.Background(), "chargers downtown", nil)
	if reply.Role != models.ChatRoleModel {
		t.Fatalf("reply role = %s", reply.Role)
	}
	if reply.Text != apologyText {
		t.Fatalf("unexpected apology text: %q", reply.Text)
	}
	if len(reply.GroundingURLs) != 0 {
		t.Fatalf("apology must carry no citations, got %d", len(reply.GroundingURLs))
	}
}

func TestSendEmptyAnswerUsesGenericText(t *testing.T) {
	search := &fakeSearchService{text: "   "}
	assistant := NewAssistant(search, zap.NewNop())

	reply := assistant.Send(context.Background(), "anything", nil)
	if reply.Text != emptyResultText {
		t.Fatalf("unexpected text for empty answer: %q", reply.Text)
	}
}

func TestSendFiltersIncompleteCitationsPreservingOrder(t *testing.T) {
	search := &fakeSearchService{
		text: "Found results.",
		urls: []models.GroundingURL{
			{URI: "https://a.example", Title: "A"},
			{URI: "", Title: "missing uri"},
			{URI: "https://b.example", Title: ""},
			{URI: "https://c.example", Title: "C"},
		},
	}
	assistant := NewAssistant(search, zap.NewNop())

	reply := assistant.Send(context.Background(), "q", nil)
	if len(reply.GroundingURLs) != 2 {
		t.Fatalf("expected 2 citations, got %d", len(reply.GroundingURLs))
	}
	if reply.GroundingURLs[0].URI != "https://a.example" || reply.GroundingURLs[1].URI != "https://c.example" {
		t.Fatalf("citation order not preserved: %+v", reply.GroundingURLs)
	}
}
