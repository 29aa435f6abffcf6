package audit

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/takumif/aiact-explorer/internal/articles"
	"github.com/takumif/aiact-explorer/internal/db"
)

// Store provides persistence for edit-history entries.
type Store struct {
	db *db.DB
}

// NewStore creates a Store backed by the given database.
func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

// Log inserts a new entry. If entry.ID is empty a UUID is generated; a zero
// timestamp defaults to now.
func (s *Store) Log(ctx context.Context, entry Entry) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}

	var detail sql.NullString
	if entry.Detail != "" {
		detail = sql.NullString{String: entry.Detail, Valid: true}
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO edit_history (id, timestamp, actor, action, article_id, summary, detail)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		entry.ID,
		entry.Timestamp,
		entry.Actor,
		string(entry.Action),
		entry.ArticleID,
		entry.Summary,
		detail,
	)
	if err != nil {
		return fmt.Errorf("inserting history entry: %w", err)
	}
	return nil
}

// Query returns entries matching the filter, newest first.
func (s *Store) Query(ctx context.Context, filter QueryFilter) ([]Entry, error) {
	var (
		clauses []string
		args    []any
	)

	if filter.ArticleID != "" {
		clauses = append(clauses, "article_id = ?")
		args = append(args, filter.ArticleID)
	}
	if filter.Action != "" {
		clauses = append(clauses, "action = ?")
		args = append(args, string(filter.Action))
	}
	if filter.Since != nil {
		clauses = append(clauses, "timestamp >= ?")
		args = append(args, *filter.Since)
	}

	query := `SELECT id, timestamp, actor, action, article_id, summary, detail FROM edit_history`
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY timestamp DESC"

	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}
	if filter.Offset > 0 {
		query += " OFFSET ?"
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying edit history: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			e      Entry
			action string
			detail sql.NullString
		)
		if err := rows.Scan(&e.ID, &e.Timestamp, &e.Actor, &action, &e.ArticleID, &e.Summary, &detail); err != nil {
			return nil, fmt.Errorf("scanning history entry: %w", err)
		}
		e.Action = articles.Action(action)
		e.Detail = detail.String
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Recorder subscribes a store's mutation events into the history log.
// Failed inserts are logged and dropped; the document edit itself has
// already been committed at that point.
func Recorder(store *Store, actor string) func(articles.Event) {
	return func(ev articles.Event) {
		err := store.Log(context.Background(), Entry{
			Actor:     actor,
			Action:    ev.Action,
			ArticleID: ev.ArticleID,
			Summary:   ev.Summary,
		})
		if err != nil {
			log.Printf("audit: recording %s: %v", ev.Action, err)
		}
	}
}
