package articles

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
)

func setupTestRouter(t *testing.T) (*Store, chi.Router) {
	t.Helper()
	store := setupLoadedStore(t)
	r := chi.NewRouter()
	RegisterRoutes(r, store)
	return store, r
}

func TestListArticlesWithQueryFilter(t *testing.T) {
	_, r := setupTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/articles?search=ARTICLE+9", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var got []Article
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(got) != 1 || got[0].ArticleID != "article_9" {
		t.Fatalf("got %d articles, want only article_9", len(got))
	}
}

func TestCreateArticleConflict(t *testing.T) {
	_, r := setupTestRouter(t)

	body := `{"article_number":"24条"}`
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/articles", strings.NewReader(body)))
	if rec.Code != http.StatusCreated {
		t.Fatalf("first create: status = %d, want 201", rec.Code)
	}

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/articles", strings.NewReader(body)))
	if rec.Code != http.StatusConflict {
		t.Fatalf("duplicate create: status = %d, want 409", rec.Code)
	}
}

func TestGetArticleNotFound(t *testing.T) {
	_, r := setupTestRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/articles/article_404", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestCommitViaPut(t *testing.T) {
	store, r := setupTestRouter(t)

	patch := `{"article_text":{"ja":"改訂","en":"revised"},"requirements":{"0":{"req_id":"9-1","type":"mandatory","description_ja":"a","description_en":"b"}}}`
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/api/articles/article_9", strings.NewReader(patch)))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", rec.Code, rec.Body.String())
	}

	a := store.Resolve("article_9")
	if a.ArticleText.JA != "改訂" {
		t.Error("article text not committed")
	}
	if len(a.Requirements) != 1 {
		t.Errorf("got %d requirements, want row 1 dropped", len(a.Requirements))
	}
}

func TestDeleteArticleViaAPI(t *testing.T) {
	store, r := setupTestRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/articles/article_17", nil))
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rec.Code)
	}
	if store.Resolve("article_17") != nil {
		t.Error("article still present after delete")
	}
}

func TestSelectionAndEditFlow(t *testing.T) {
	store, r := setupTestRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/articles/article_9/select", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("select: status = %d, want 200", rec.Code)
	}

	// Enter edit mode with an empty body.
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/selection/edit", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("toggle: status = %d, want 200; body: %s", rec.Code, rec.Body.String())
	}
	if !store.EditMode() {
		t.Fatal("edit mode not active")
	}

	// Append a requirement while editing.
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/selection/requirements", nil))
	if rec.Code != http.StatusCreated {
		t.Fatalf("add requirement: status = %d, want 201", rec.Code)
	}
	var resp map[string]int
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp["index"] != 2 {
		t.Errorf("new index = %d, want 2", resp["index"])
	}

	// Out-of-range delete reports 400.
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/selection/requirements/99", nil))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("out-of-range delete: status = %d, want 400", rec.Code)
	}

	// Leave edit mode with the editor's rebuilt values.
	patch := bytes.NewReader([]byte(`{"article_text":{"ja":"保存","en":"saved"}}`))
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/selection/edit", patch))
	if rec.Code != http.StatusOK {
		t.Fatalf("toggle with patch: status = %d, want 200", rec.Code)
	}
	if store.EditMode() {
		t.Error("edit mode still active")
	}
	if store.Resolve("article_9").ArticleText.JA != "保存" {
		t.Error("patch not applied on edit->view transition")
	}
}

func TestSubItemWithoutSelectionConflicts(t *testing.T) {
	_, r := setupTestRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/selection/requirements", nil))
	if rec.Code != http.StatusConflict {
		t.Errorf("status = %d, want 409", rec.Code)
	}
}

func TestCollectionLoadAndDownload(t *testing.T) {
	store, r := setupTestRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/collection", strings.NewReader(`{"bad":`)))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("malformed load: status = %d, want 400", rec.Code)
	}
	if len(store.Articles()) != 2 {
		t.Fatal("failed load mutated the collection")
	}

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/collection", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("download: status = %d, want 200", rec.Code)
	}
	var c Collection
	if err := json.Unmarshal(rec.Body.Bytes(), &c); err != nil {
		t.Fatalf("decoding download: %v", err)
	}
	if len(c.Articles) != 2 {
		t.Errorf("downloaded %d articles, want 2", len(c.Articles))
	}
}
