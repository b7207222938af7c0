package models

// Chat roles.
const (
	ChatRoleUser  = "user"
	ChatRoleModel = "model"
)

// GroundingURL is a source link attached to an assistant response.
type GroundingURL struct {
	URI   string `json:"uri"`
	Title string `json:"title"`
}

// ChatMessage is one entry in the append-only assistant transcript.
type ChatMessage struct {
	ID            string         `json:"id"`
	Role          string         `json:"role"`
	Text          string         `json:"text"`
	GroundingURLs []GroundingURL `json:"grounding_urls,omitempty"`
}

// UserLocation is the resolved user position plus load state.
type UserLocation struct {
	Coords Coordinates `json:"coords"`
	Loaded bool        `json:"loaded"`
	Error  string      `json:"error,omitempty"`
}
