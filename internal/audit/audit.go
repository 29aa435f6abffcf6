package audit

import (
	"time"

	"github.com/takumif/aiact-explorer/internal/articles"
)

// Entry is one edit-history record. Entries describe what happened to the
// in-memory document; the document itself is never persisted here.
type Entry struct {
	ID        string          `json:"id"`
	Timestamp time.Time       `json:"timestamp"`
	Actor     string          `json:"actor"`
	Action    articles.Action `json:"action"`
	ArticleID string          `json:"article_id,omitempty"`
	Summary   string          `json:"summary"`
	Detail    string          `json:"detail,omitempty"`
}

// QueryFilter controls which entries Query returns.
type QueryFilter struct {
	ArticleID string
	Action    articles.Action
	Since     *time.Time
	Limit     int
	Offset    int
}
