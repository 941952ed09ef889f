// Package sqlite provides the persistent article corpus store.
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/scholia-labs/scholia-cli/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/scholia-labs/scholia-cli/internal/core/domain"
	"github.com/scholia-labs/scholia-cli/internal/core/ports/driven"
)

// Store persists collected articles in a SQLite database so the corpus
// survives between runs.
type Store struct {
	db   *sql.DB
	path string
}

var _ driven.ArticleStore = (*Store)(nil)

// NewStore creates the article store under the given data directory.
// If dataDir is empty, defaults to ~/.scholia/data/articles.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".scholia", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "articles.db")

	// WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db, path: dbPath}
	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// SaveArticles upserts the given articles in one transaction.
func (s *Store) SaveArticles(ctx context.Context, articles []domain.Article) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO articles (id, title, abstract, authors, journal, pub_date, source, pmid, doi, collected_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			abstract = excluded.abstract,
			authors = excluded.authors,
			journal = excluded.journal,
			pub_date = excluded.pub_date,
			source = excluded.source,
			pmid = excluded.pmid,
			doi = excluded.doi
	`)
	if err != nil {
		return fmt.Errorf("preparing statement: %w", err)
	}
	defer stmt.Close()

	for _, a := range articles {
		authorsJSON, err := json.Marshal(a.Authors)
		if err != nil {
			return fmt.Errorf("marshalling authors: %w", err)
		}

		collectedAt := a.CollectedAt
		if collectedAt.IsZero() {
			collectedAt = time.Now().UTC()
		}

		if _, err := stmt.ExecContext(ctx,
			a.ID, a.Title, a.Abstract, string(authorsJSON),
			a.Journal, a.PubDate, a.Source, a.PMID, a.DOI,
			collectedAt.Format(time.RFC3339),
		); err != nil {
			return fmt.Errorf("saving article %s: %w", a.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// ListArticles returns every stored article, newest first.
func (s *Store) ListArticles(ctx context.Context) ([]domain.Article, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, abstract, authors, journal, pub_date, source, pmid, doi, collected_at
		FROM articles
		ORDER BY collected_at DESC, id
	`)
	if err != nil {
		return nil, fmt.Errorf("querying articles: %w", err)
	}
	defer rows.Close()

	var articles []domain.Article
	for rows.Next() {
		var a domain.Article
		var authorsJSON, collectedAt string

		if err := rows.Scan(&a.ID, &a.Title, &a.Abstract, &authorsJSON,
			&a.Journal, &a.PubDate, &a.Source, &a.PMID, &a.DOI, &collectedAt); err != nil {
			return nil, fmt.Errorf("scanning article: %w", err)
		}

		if err := json.Unmarshal([]byte(authorsJSON), &a.Authors); err != nil {
			return nil, fmt.Errorf("unmarshalling authors for %s: %w", a.ID, err)
		}
		if t, err := time.Parse(time.RFC3339, collectedAt); err == nil {
			a.CollectedAt = t
		}

		articles = append(articles, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating articles: %w", err)
	}
	return articles, nil
}

// CountArticles reports how many articles are stored.
func (s *Store) CountArticles(ctx context.Context) (int, error) {
	var count int
	row := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM articles")
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("counting articles: %w", err)
	}
	return count, nil
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}
		if version <= currentVersion {
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}
		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
	}

	return nil
}
