package httpserver

import "net/http"

// Routes groups handlers.
type Routes struct {
	Health         http.HandlerFunc
	Chargers       http.HandlerFunc
	ChargerGet     http.HandlerFunc
	Location       http.HandlerFunc
	SessionSelect  http.HandlerFunc
	SessionStart   http.HandlerFunc
	SessionStop    http.HandlerFunc
	SessionCurrent http.HandlerFunc
	ChatMessages   http.HandlerFunc
	ChatSearch     http.HandlerFunc
	SessionStream  http.HandlerFunc
}

// NewRouter registers endpoints.
func NewRouter(routes Routes) http.Handler {
	mux := http.NewServeMux()
	if routes.Health != nil {
		mux.Handle("/health", method(http.MethodGet, routes.Health))
	}
	if routes.Chargers != nil {
		mux.Handle("/chargers", method(http.MethodGet, routes.Chargers))
	}
	if routes.ChargerGet != nil {
		mux.Handle("/chargers/get", method(http.MethodGet, routes.ChargerGet))
	}
	if routes.Location != nil {
		mux.Handle("/location", method(http.MethodGet, routes.Location))
	}
	if routes.SessionSelect != nil {
		mux.Handle("/sessions/select", method(http.MethodPost, routes.SessionSelect))
	}
	if routes.SessionStart != nil {
		mux.Handle("/sessions/start", method(http.MethodPost, routes.SessionStart))
	}
	if routes.SessionStop != nil {
		mux.Handle("/sessions/stop", method(http.MethodPost, routes.SessionStop))
	}
	if routes.SessionCurrent != nil {
		mux.Handle("/sessions/current", method(http.MethodGet, routes.SessionCurrent))
	}
	if routes.ChatMessages != nil {
		mux.Handle("/chat/messages", method(http.MethodGet, routes.ChatMessages))
	}
	if routes.ChatSearch != nil {
		mux.Handle("/chat/search", method(http.MethodPost, routes.ChatSearch))
	}
	if routes.SessionStream != nil {
		mux.Handle("/ws/session", method(http.MethodGet, routes.SessionStream))
	}
	return mux
}

func method(expected string, handler http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != expected {
			w.Header().Set("Allow", expected)
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		handler(w, r)
	}
}
