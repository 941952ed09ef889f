// Package filesystem exposes a local directory of .txt and .md files as
// an article source, with optional change watching via fsnotify.
package filesystem

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/scholia-labs/scholia-cli/internal/core/domain"
	"github.com/scholia-labs/scholia-cli/internal/core/ports/driven"
	"github.com/scholia-labs/scholia-cli/internal/logger"
)

// supported file extensions, lowercased.
var supportedExts = map[string]struct{}{
	".txt": {},
	".md":  {},
}

// Connector reads local text files as articles. The file content becomes
// the abstract and the file name becomes the title.
type Connector struct {
	dir string
	log *logger.Logger
}

var (
	_ driven.ArticleSource = (*Connector)(nil)
	_ driven.WatchSource   = (*Connector)(nil)
)

// NewConnector creates a filesystem source over dir.
func NewConnector(dir string, log *logger.Logger) (*Connector, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSourceUnavailable, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", domain.ErrSourceUnavailable, dir)
	}
	return &Connector{dir: dir, log: log}, nil
}

// Type returns the source name.
func (c *Connector) Type() string {
	return "filesystem"
}

// Close releases resources.
func (c *Connector) Close() error {
	return nil
}

// Search walks the directory and returns up to limit articles whose
// name or content contains the query, case-insensitively. An empty
// query matches every file.
func (c *Connector) Search(ctx context.Context, query string, limit int) ([]domain.Article, error) {
	queryLower := strings.ToLower(query)

	var articles []domain.Article
	err := filepath.WalkDir(c.dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if d.IsDir() {
			if isHidden(d.Name()) && path != c.dir {
				return filepath.SkipDir
			}
			return nil
		}
		if len(articles) >= limit {
			return filepath.SkipAll
		}
		if !isSupported(d.Name()) {
			return nil
		}

		article, err := c.readArticle(path)
		if err != nil {
			c.log.Warn("filesystem: reading %s: %v", path, err)
			return nil
		}

		if queryLower != "" &&
			!strings.Contains(strings.ToLower(article.Title), queryLower) &&
			!strings.Contains(strings.ToLower(article.Abstract), queryLower) {
			return nil
		}

		articles = append(articles, article)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return articles, nil
}

// Watch emits an article whenever a supported file is created or
// written under the directory, until ctx is cancelled.
func (c *Connector) Watch(ctx context.Context) (<-chan domain.Article, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := watcher.Add(c.dir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watching %s: %w", c.dir, err)
	}

	out := make(chan domain.Article)
	go func() {
		defer close(out)
		defer watcher.Close()

		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
					continue
				}
				name := filepath.Base(event.Name)
				if !isSupported(name) || isHidden(name) {
					continue
				}

				article, err := c.readArticle(event.Name)
				if err != nil {
					c.log.Warn("filesystem: reading %s: %v", event.Name, err)
					continue
				}
				select {
				case out <- article:
				case <-ctx.Done():
					return
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				c.log.Warn("filesystem: watch error: %v", err)
			}
		}
	}()

	return out, nil
}

// readArticle loads one file as an article.
func (c *Connector) readArticle(path string) (domain.Article, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return domain.Article{}, err
	}

	rel, err := filepath.Rel(c.dir, path)
	if err != nil {
		rel = filepath.Base(path)
	}

	return domain.Article{
		ID:          "file:" + filepath.ToSlash(rel),
		Title:       titleFromName(filepath.Base(path)),
		Abstract:    string(content),
		Source:      c.Type(),
		CollectedAt: time.Now().UTC(),
	}, nil
}

// titleFromName turns "amyloid_review-2024.txt" into "amyloid review 2024".
func titleFromName(name string) string {
	title := strings.TrimSuffix(name, filepath.Ext(name))
	title = strings.ReplaceAll(title, "_", " ")
	title = strings.ReplaceAll(title, "-", " ")
	return strings.Join(strings.Fields(title), " ")
}

func isSupported(name string) bool {
	_, ok := supportedExts[strings.ToLower(filepath.Ext(name))]
	return ok
}

func isHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}
