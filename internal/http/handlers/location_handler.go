package handlers

import (
	"net/http"

	"voltlink/internal/geo"
)

// NewLocationHandler serves the resolved user location state.
func NewLocationHandler(resolver *geo.Resolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, resolver.Location())
	}
}
