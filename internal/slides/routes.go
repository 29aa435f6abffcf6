package slides

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/takumif/aiact-explorer/internal/articles"
)

// RegisterRoutes mounts the slide deck API routes.
func RegisterRoutes(r chi.Router, store *articles.Store) {
	r.Route("/api/slides", func(r chi.Router) {
		r.Get("/", handleDeck(store))
		r.Get("/export", handleExport(store))
	})
}

func handleDeck(store *articles.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		deck := BuildDeck(store.Articles())
		if deck == nil {
			deck = []Slide{}
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(deck)
	}
}

func handleExport(store *articles.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		deck := BuildDeck(store.Articles())
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="eu_ai_act_slides.html"`)
		if err := NewExporter("").Render(w, deck); err != nil {
			http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusInternalServerError)
		}
	}
}
