package dataset

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/takumif/aiact-explorer/internal/articles"
)

const minimalCollection = `{"schema_version":"1.0","articles":[{"article_id":"article_9","article_number":"9条"}]}`

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "articles.json")

	src := articles.NewStore("")
	if err := src.Load([]byte(minimalCollection)); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if err := SaveFile(src, path); err != nil {
		t.Fatalf("SaveFile: %v", err)
	}

	dst := articles.NewStore("")
	if err := LoadFile(dst, path); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	arts := dst.Articles()
	if len(arts) != 1 || arts[0].ArticleID != "article_9" {
		t.Errorf("round-trip articles = %+v", arts)
	}
}

func TestLoadFileMissing(t *testing.T) {
	store := articles.NewStore("")
	err := LoadFile(store, filepath.Join(t.TempDir(), "absent.json"))
	if !os.IsNotExist(err) {
		t.Errorf("got %v, want not-exist error", err)
	}
}

func TestBootstrapFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "articles.json")
	if err := os.WriteFile(path, []byte(minimalCollection), 0644); err != nil {
		t.Fatalf("writing dataset: %v", err)
	}

	store := articles.NewStore("")
	Bootstrap(store, path, "")
	if len(store.Articles()) != 1 {
		t.Errorf("got %d articles, want 1", len(store.Articles()))
	}
}

func TestBootstrapFallsBackToURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(minimalCollection))
	}))
	defer srv.Close()

	store := articles.NewStore("")
	Bootstrap(store, filepath.Join(t.TempDir(), "absent.json"), srv.URL)
	if len(store.Articles()) != 1 {
		t.Errorf("got %d articles, want 1", len(store.Articles()))
	}
}

func TestBootstrapDegradesToEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	store := articles.NewStore("")
	Bootstrap(store, filepath.Join(t.TempDir(), "absent.json"), srv.URL)
	if len(store.Articles()) != 0 {
		t.Errorf("got %d articles, want empty collection", len(store.Articles()))
	}
}
