package dataset

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/takumif/aiact-explorer/internal/articles"
)

var fetchClient = &http.Client{Timeout: 30 * time.Second}

// Bootstrap fills the store at startup: the dataset file when it exists,
// otherwise a fetch of the default dataset URL. Either source failing
// degrades to the store's empty, still-usable document rather than an
// error; only the attempts are logged.
func Bootstrap(store *articles.Store, path, url string) {
	if path != "" {
		if err := LoadFile(store, path); err == nil {
			log.Printf("dataset: loaded %d articles from %s", len(store.Articles()), path)
			return
		} else if !os.IsNotExist(err) {
			log.Printf("dataset: loading %s: %v", path, err)
		}
	}

	if url == "" {
		log.Printf("dataset: no dataset found, starting with an empty collection")
		return
	}
	if err := fetch(store, url); err != nil {
		log.Printf("dataset: fetching %s: %v; starting with an empty collection", url, err)
		return
	}
	log.Printf("dataset: loaded %d articles from %s", len(store.Articles()), url)
}

// LoadFile loads the dataset file into the store. A missing file is
// reported with os.IsNotExist semantics.
func LoadFile(store *articles.Store, path string) error {
	payload, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return store.Load(payload)
}

// SaveFile serializes the store into the dataset file.
func SaveFile(store *articles.Store, path string) error {
	data, err := store.Serialize()
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating dataset directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing dataset to %s: %w", path, err)
	}
	return nil
}

func fetch(store *articles.Store, url string) error {
	resp, err := fetchClient.Get(url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %s", resp.Status)
	}
	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	return store.Load(payload)
}

// Watch reloads the dataset file into the store whenever it changes on
// disk, until the context is cancelled. The parent directory is watched so
// editors that replace the file via rename are still observed.
func Watch(ctx context.Context, store *articles.Store, path string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(path), err)
	}

	target := filepath.Clean(path)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if err := LoadFile(store, path); err != nil {
				log.Printf("dataset: reloading %s: %v", path, err)
				continue
			}
			log.Printf("dataset: reloaded %d articles from %s", len(store.Articles()), path)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("dataset: watcher: %v", err)
		}
	}
}
