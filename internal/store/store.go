package store

import (
	"database/sql"
	"fmt"
	"regexp"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// Well-known metadata keys attached to listings.
const (
	MetaURL        = "scholarship_url"
	MetaCountry    = "scholarship_country"
	MetaSource     = "scholarship_source"
	MetaPostedDate = "posted_date"
	MetaDeadline   = "scholarship_deadline"
	MetaIsFeatured = "scholarship_is_featured"
)

// StatusPublished is the publish state for newly imported listings.
const StatusPublished = "publish"

// Schema for the content tables. Applied by Open.
const Schema = `
CREATE TABLE IF NOT EXISTS listings (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	title TEXT NOT NULL,
	body TEXT NOT NULL,
	status TEXT NOT NULL,
	created_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS listing_meta (
	listing_id INTEGER NOT NULL REFERENCES listings(id),
	key TEXT NOT NULL,
	value TEXT NOT NULL,
	PRIMARY KEY (listing_id, key)
);
CREATE INDEX IF NOT EXISTS idx_listing_meta_kv ON listing_meta(key, value);
CREATE TABLE IF NOT EXISTS categories (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	slug TEXT NOT NULL UNIQUE
);
CREATE TABLE IF NOT EXISTS listing_categories (
	listing_id INTEGER PRIMARY KEY REFERENCES listings(id),
	category_id INTEGER NOT NULL REFERENCES categories(id)
);
`

// Store is the SQLite-backed content repository holding imported listings,
// their metadata, and the provenance category taxonomy.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at path and applies the
// schema. Use ":memory:" for an ephemeral store in tests.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("applying schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// FindListingByMeta returns the ID of a listing whose metadata key equals
// value (exact, case-sensitive match). found is false when none exists.
func (s *Store) FindListingByMeta(key, value string) (id int64, found bool, err error) {
	row := s.db.QueryRow(
		`SELECT listing_id FROM listing_meta WHERE key = ? AND value = ? LIMIT 1`,
		key, value)
	switch err := row.Scan(&id); err {
	case nil:
		return id, true, nil
	case sql.ErrNoRows:
		return 0, false, nil
	default:
		return 0, false, fmt.Errorf("querying metadata: %w", err)
	}
}

// CreateListing inserts a new listing and returns its ID.
func (s *Store) CreateListing(title, body, status string) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO listings (title, body, status, created_at) VALUES (?, ?, ?, ?)`,
		title, body, status, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return 0, fmt.Errorf("creating listing: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("creating listing: %w", err)
	}
	return id, nil
}

// SetMeta attaches a metadata key-value pair to a listing, replacing any
// existing value for that key.
func (s *Store) SetMeta(listingID int64, key, value string) error {
	_, err := s.db.Exec(
		`INSERT OR REPLACE INTO listing_meta (listing_id, key, value) VALUES (?, ?, ?)`,
		listingID, key, value)
	if err != nil {
		return fmt.Errorf("setting metadata %s: %w", key, err)
	}
	return nil
}

// GetMeta returns the value for a listing's metadata key, or "" when unset.
func (s *Store) GetMeta(listingID int64, key string) (string, error) {
	var value string
	row := s.db.QueryRow(
		`SELECT value FROM listing_meta WHERE listing_id = ? AND key = ?`,
		listingID, key)
	switch err := row.Scan(&value); err {
	case nil:
		return value, nil
	case sql.ErrNoRows:
		return "", nil
	default:
		return "", fmt.Errorf("reading metadata %s: %w", key, err)
	}
}

// EnsureCategory returns the ID of the category with the given display
// name, creating it on first use. Lookup is by derived slug.
func (s *Store) EnsureCategory(name string) (int64, error) {
	slug := Slugify(name)

	var id int64
	row := s.db.QueryRow(`SELECT id FROM categories WHERE slug = ?`, slug)
	switch err := row.Scan(&id); err {
	case nil:
		return id, nil
	case sql.ErrNoRows:
		// fall through to create
	default:
		return 0, fmt.Errorf("querying category: %w", err)
	}

	res, err := s.db.Exec(`INSERT INTO categories (name, slug) VALUES (?, ?)`, name, slug)
	if err != nil {
		return 0, fmt.Errorf("creating category: %w", err)
	}
	id, err = res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("creating category: %w", err)
	}
	return id, nil
}

// AssignCategory tags a listing with exactly one category, replacing any
// prior assignment.
func (s *Store) AssignCategory(listingID, categoryID int64) error {
	_, err := s.db.Exec(
		`INSERT OR REPLACE INTO listing_categories (listing_id, category_id) VALUES (?, ?)`,
		listingID, categoryID)
	if err != nil {
		return fmt.Errorf("assigning category: %w", err)
	}
	return nil
}

// ListingCategory returns the ID of the category assigned to a listing.
// found is false when the listing has no category.
func (s *Store) ListingCategory(listingID int64) (id int64, found bool, err error) {
	row := s.db.QueryRow(
		`SELECT category_id FROM listing_categories WHERE listing_id = ?`, listingID)
	switch err := row.Scan(&id); err {
	case nil:
		return id, true, nil
	case sql.ErrNoRows:
		return 0, false, nil
	default:
		return 0, false, fmt.Errorf("querying listing category: %w", err)
	}
}

// CountListings returns the number of stored listings.
func (s *Store) CountListings() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM listings`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting listings: %w", err)
	}
	return n, nil
}

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives a taxonomy slug from a display name:
// "ScholarshipDB Import" becomes "scholarshipdb-import".
func Slugify(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = nonSlugChars.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}
