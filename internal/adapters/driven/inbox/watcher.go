// Package inbox watches a drop directory and ingests new documents as
// the active one - the headless counterpart of a drag-and-drop upload.
package inbox

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/R-Jayasree/LegalEase/internal/core/ports/driving"
)

// Watcher monitors a directory and ingests created or modified files
type Watcher struct {
	watcher    *fsnotify.Watcher
	documents  driving.DocumentService
	extensions []string
	logger     *slog.Logger
}

// NewWatcher creates a new inbox watcher.
// With no extensions given, .pdf, .txt and .md files are watched.
func NewWatcher(documents driving.DocumentService, extensions []string, logger *slog.Logger) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if len(extensions) == 0 {
		extensions = []string{".pdf", ".txt", ".md"}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Watcher{
		watcher:    w,
		documents:  documents,
		extensions: extensions,
		logger:     logger,
	}, nil
}

// Watch ingests matching files dropped into dir until the context is
// cancelled. Each create or write replaces the active document.
func (w *Watcher) Watch(ctx context.Context, dir string) error {
	if err := w.watcher.Add(dir); err != nil {
		return err
	}

	w.logger.Info("inbox watcher started", "dir", dir, "extensions", w.extensions)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !w.isWatchedExtension(event.Name) {
				continue
			}
			if event.Op&(fsnotify.Create|fsnotify.Write) == 0 {
				continue
			}

			if err := w.documents.IngestFile(ctx, event.Name); err != nil {
				w.logger.Warn("failed to ingest dropped file",
					"path", event.Name, "error", err)
				continue
			}
			w.logger.Info("ingested dropped file", "path", event.Name)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("inbox watcher error", "error", err)
		}
	}
}

// Stop stops the watcher
func (w *Watcher) Stop() error {
	return w.watcher.Close()
}

func (w *Watcher) isWatchedExtension(path string) bool {
	ext := filepath.Ext(path)
	for _, e := range w.extensions {
		if ext == e {
			return true
		}
	}
	return false
}
