package articles

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes mounts the collection, article and selection API routes.
func RegisterRoutes(r chi.Router, store *Store) {
	r.Route("/api/collection", func(r chi.Router) {
		r.Get("/", handleDownload(store))
		r.Post("/", handleLoad(store))
	})

	r.Route("/api/articles", func(r chi.Router) {
		r.Get("/", handleList(store))
		r.Post("/", handleCreate(store))
		r.Get("/{id}", handleGet(store))
		r.Put("/{id}", handleCommit(store))
		r.Delete("/{id}", handleDelete(store))
		r.Post("/{id}/select", handleSelect(store))
	})

	r.Route("/api/selection", func(r chi.Router) {
		r.Get("/", handleSelection(store))
		r.Post("/edit", handleToggleEdit(store))
		r.Post("/requirements", handleAddSub(store.AddRequirement))
		r.Delete("/requirements/{index}", handleDeleteSub(store.DeleteRequirement))
		r.Post("/related-articles", handleAddSub(store.AddRelatedArticle))
		r.Delete("/related-articles/{index}", handleDeleteSub(store.DeleteRelatedArticle))
		r.Post("/related-recitals", handleAddSub(store.AddRelatedRecital))
		r.Delete("/related-recitals/{index}", handleDeleteSub(store.DeleteRelatedRecital))
	})
}

// writeError maps store errors onto HTTP status codes.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, ErrDuplicateID), errors.Is(err, ErrNoSelection):
		status = http.StatusConflict
	case errors.Is(err, ErrParse), errors.Is(err, ErrIndexOutOfRange):
		status = http.StatusBadRequest
	}
	http.Error(w, `{"error":"`+err.Error()+`"}`, status)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func handleDownload(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, err := store.Serialize()
		if err != nil {
			writeError(w, err)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write(data)
	}
}

func handleLoad(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, `{"error":"reading request body"}`, http.StatusBadRequest)
			return
		}
		if err := store.Load(payload); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, map[string]int{"articles": len(store.Articles())})
	}
}

func handleList(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		store.SetFilter(Filter{
			SearchText: q.Get("search"),
			Category:   Category(q.Get("category")),
			RiskLevel:  RiskLevel(q.Get("risk")),
		})
		articles := store.Filtered()
		if articles == nil {
			articles = []Article{}
		}
		writeJSON(w, articles)
	}
}

func handleCreate(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ArticleNumber string `json:"article_number"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
			return
		}
		a, err := store.AddArticle(req.ArticleNumber)
		if err != nil {
			writeError(w, err)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(a)
	}
}

func handleGet(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a := store.Resolve(chi.URLParam(r, "id"))
		if a == nil {
			http.Error(w, `{"error":"article not found"}`, http.StatusNotFound)
			return
		}
		writeJSON(w, a)
	}
}

func handleCommit(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var patch EditPatch
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
			return
		}
		id := chi.URLParam(r, "id")
		if err := store.CommitEdit(id, patch); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, store.Resolve(id))
	}
}

func handleDelete(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := store.DeleteArticle(chi.URLParam(r, "id")); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func handleSelect(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, err := store.Select(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, a)
	}
}

func handleSelection(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := struct {
			Article  *Article `json:"article"`
			EditMode bool     `json:"edit_mode"`
		}{
			Article:  store.Selected(),
			EditMode: store.EditMode(),
		}
		writeJSON(w, resp)
	}
}

func handleToggleEdit(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Leaving edit mode carries the editor's rebuilt values; entering
		// edit mode sends an empty body.
		var patch *EditPatch
		if r.ContentLength != 0 {
			patch = &EditPatch{}
			if err := json.NewDecoder(r.Body).Decode(patch); err != nil {
				http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
				return
			}
		}
		if err := store.ToggleEdit(patch); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, map[string]bool{"edit_mode": store.EditMode()})
	}
}

func handleAddSub(add func() (int, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		idx, err := add()
		if err != nil {
			writeError(w, err)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]int{"index": idx})
	}
}

func handleDeleteSub(del func(int) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		idx, err := strconv.Atoi(chi.URLParam(r, "index"))
		if err != nil {
			http.Error(w, `{"error":"invalid index"}`, http.StatusBadRequest)
			return
		}
		if err := del(idx); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
