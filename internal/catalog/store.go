package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"filmvault/internal/config"
)

// Store manages catalog persistence backed by SQLite. A file lock prevents
// two processes from writing the same catalog concurrently.
type Store struct {
	db   *sql.DB
	path string
	lock *flock.Flock
}

// Open initializes or connects to the catalog database.
func Open(cfg *config.Config) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}

	dbPath := cfg.DatabasePath()
	lock := flock.New(dbPath + ".lock")
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire catalog lock: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("catalog at %s is in use by another process", dbPath)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		_ = lock.Unlock()
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			_ = lock.Unlock()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: dbPath, lock: lock}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		_ = lock.Unlock()
		return nil, err
	}
	return store, nil
}

// Close closes the database connection and releases the file lock.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	err := s.db.Close()
	if s.lock != nil {
		if unlockErr := s.lock.Unlock(); err == nil {
			err = unlockErr
		}
	}
	return err
}

// CreateCollection inserts a new named collection and re-reads it.
func (s *Store) CreateCollection(ctx context.Context, name string) (*Collection, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("collection name must not be empty")
	}
	id := uuid.NewString()
	now := time.Now().UTC().Format(time.RFC3339Nano)
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO collections (id, name, created_at) VALUES (?, ?, ?)`, id, name, now)
	if err != nil {
		return nil, fmt.Errorf("insert collection: %w", err)
	}
	return s.GetCollection(ctx, id)
}

// GetCollection fetches a collection by identifier; nil when absent.
func (s *Store) GetCollection(ctx context.Context, id string) (*Collection, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, name, created_at FROM collections WHERE id = ?`, id)
	return scanCollection(row)
}

// FindCollectionByName fetches a collection by exact name; nil when absent.
func (s *Store) FindCollectionByName(ctx context.Context, name string) (*Collection, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, name, created_at FROM collections WHERE name = ?`, strings.TrimSpace(name))
	return scanCollection(row)
}

// ListCollections returns all collections ordered by creation time.
func (s *Store) ListCollections(ctx context.Context) ([]*Collection, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, created_at FROM collections ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("query collections: %w", err)
	}
	defer rows.Close()

	var collections []*Collection
	for rows.Next() {
		collection, err := scanCollection(rows)
		if err != nil {
			return nil, err
		}
		collections = append(collections, collection)
	}
	return collections, rows.Err()
}

// DeleteCollection removes a collection and, via cascade, its items.
func (s *Store) DeleteCollection(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM collections WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete collection: %w", err)
	}
	return nil
}

const itemColumns = `id, collection_id, tmdb_id, title, media_type, year,
	poster_path, formats, quantity, watched, rating, added_at, updated_at`

// AddItem inserts an item and re-reads the stored row.
func (s *Store) AddItem(ctx context.Context, item Item) (*Item, error) {
	if item.CollectionID == "" {
		return nil, errors.New("item requires a collection id")
	}
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	if item.Quantity < 1 {
		item.Quantity = 1
	}
	now := time.Now().UTC()
	timestamp := now.Format(time.RFC3339Nano)
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO items (`+itemColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		item.ID, item.CollectionID, item.TMDBID, item.Title, item.MediaType, item.Year,
		item.PosterPath, strings.Join(item.Formats, ","), item.Quantity,
		boolToInt(item.Watched), item.Rating, timestamp, timestamp)
	if err != nil {
		return nil, fmt.Errorf("insert item: %w", err)
	}
	return s.GetItem(ctx, item.ID)
}

// GetItem fetches an item by identifier; nil when absent.
func (s *Store) GetItem(ctx context.Context, id string) (*Item, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+itemColumns+` FROM items WHERE id = ?`, id)
	return scanItem(row)
}

// ListItems returns a collection's items ordered by when they were added.
func (s *Store) ListItems(ctx context.Context, collectionID string) ([]*Item, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+itemColumns+` FROM items WHERE collection_id = ? ORDER BY added_at`, collectionID)
	if err != nil {
		return nil, fmt.Errorf("query items: %w", err)
	}
	defer rows.Close()

	var items []*Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// UpdateItem persists changes to an existing item.
func (s *Store) UpdateItem(ctx context.Context, item *Item) error {
	if item == nil {
		return errors.New("item is nil")
	}
	item.UpdatedAt = time.Now().UTC()
	_, err := s.db.ExecContext(ctx,
		`UPDATE items
		 SET title = ?, media_type = ?, year = ?, poster_path = ?, formats = ?,
		     quantity = ?, watched = ?, rating = ?, updated_at = ?
		 WHERE id = ?`,
		item.Title, item.MediaType, item.Year, item.PosterPath,
		strings.Join(item.Formats, ","), item.Quantity, boolToInt(item.Watched),
		item.Rating, item.UpdatedAt.Format(time.RFC3339Nano), item.ID)
	if err != nil {
		return fmt.Errorf("update item: %w", err)
	}
	return nil
}

// SetWatched flips the watched flag on an item.
func (s *Store) SetWatched(ctx context.Context, id string, watched bool) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE items SET watched = ?, updated_at = ? WHERE id = ?`,
		boolToInt(watched), time.Now().UTC().Format(time.RFC3339Nano), id)
	if err != nil {
		return fmt.Errorf("set watched: %w", err)
	}
	return nil
}

// SetRating stores a 0-10 user rating on an item.
func (s *Store) SetRating(ctx context.Context, id string, rating int) error {
	if rating < 0 || rating > 10 {
		return fmt.Errorf("rating %d out of range 0-10", rating)
	}
	_, err := s.db.ExecContext(ctx,
		`UPDATE items SET rating = ?, updated_at = ? WHERE id = ?`,
		rating, time.Now().UTC().Format(time.RFC3339Nano), id)
	if err != nil {
		return fmt.Errorf("set rating: %w", err)
	}
	return nil
}

// DeleteItem removes an item.
func (s *Store) DeleteItem(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM items WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCollection(row rowScanner) (*Collection, error) {
	var (
		collection Collection
		createdAt  string
	)
	err := row.Scan(&collection.ID, &collection.Name, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scan collection: %w", err)
	}
	collection.CreatedAt, err = parseTimestamp(createdAt)
	if err != nil {
		return nil, err
	}
	return &collection, nil
}

func scanItem(row rowScanner) (*Item, error) {
	var (
		item      Item
		formats   string
		watched   int
		addedAt   string
		updatedAt string
	)
	err := row.Scan(&item.ID, &item.CollectionID, &item.TMDBID, &item.Title,
		&item.MediaType, &item.Year, &item.PosterPath, &formats, &item.Quantity,
		&watched, &item.Rating, &addedAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scan item: %w", err)
	}
	item.Watched = watched != 0
	item.Formats = splitFormats(formats)
	if item.AddedAt, err = parseTimestamp(addedAt); err != nil {
		return nil, err
	}
	if item.UpdatedAt, err = parseTimestamp(updatedAt); err != nil {
		return nil, err
	}
	return &item, nil
}

func splitFormats(joined string) []string {
	if joined == "" {
		return nil
	}
	parts := strings.Split(joined, ",")
	formats := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			formats = append(formats, part)
		}
	}
	return formats
}

func parseTimestamp(value string) (time.Time, error) {
	parsed, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse timestamp %q: %w", value, err)
	}
	return parsed, nil
}

func boolToInt(value bool) int {
	if value {
		return 1
	}
	return 0
}
