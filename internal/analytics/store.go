// Package analytics counts page visits without storing raw IP addresses.
package analytics

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

type Visit struct {
	ID        int64     `json:"id"`
	HashedIP  string    `json:"hashed_ip"`
	UserAgent string    `json:"user_agent"`
	Path      string    `json:"path"`
	Timestamp time.Time `json:"timestamp"`
}

type PathCount struct {
	Path   string `json:"path"`
	Visits int64  `json:"visits"`
}

type Stats struct {
	TotalVisits    int64       `json:"total_visits"`
	UniqueVisitors int64       `json:"unique_visitors"`
	VisitsToday    int64       `json:"visits_today"`
	VisitsThisWeek int64       `json:"visits_this_week"`
	TopPaths       []PathCount `json:"top_paths"`
	RecentVisits   []Visit     `json:"recent_visits"`
}

const schema = `
CREATE TABLE IF NOT EXISTS visits (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	hashed_ip TEXT NOT NULL,
	user_agent TEXT NOT NULL DEFAULT '',
	path TEXT NOT NULL,
	visited_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS visits_visited_at ON visits (visited_at);
`

const (
	topPathsLimit     = 10
	recentVisitsLimit = 50
)

// Store persists visits in SQLite.
type Store struct {
	db   *sql.DB
	salt string
	now  func() time.Time
}

type Option func(*Store)

// WithSalt fixes the IP hashing salt. By default each process draws a random
// salt, so hashes cannot be correlated across restarts.
func WithSalt(salt string) Option {
	return func(s *Store) { s.salt = salt }
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// Open opens (or creates) the database at path and applies the schema.
func Open(ctx context.Context, path string, opts ...Option) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open visits db: %w", err)
	}
	db.SetMaxOpenConns(1)

	s := &Store{db: db, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	if s.salt == "" {
		salt, err := randomHex(32)
		if err != nil {
			db.Close()
			return nil, err
		}
		s.salt = salt
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate visits db: %w", err)
	}
	return s, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// HashIP returns a salted, truncated SHA-256 of ip. The same ip hashes the
// same way for the lifetime of the store.
func (s *Store) HashIP(ip string) string {
	sum := sha256.Sum256([]byte(ip + s.salt))
	return hex.EncodeToString(sum[:])[:16]
}

// Record stores one visit.
func (s *Store) Record(ctx context.Context, ip, userAgent, path string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO visits (hashed_ip, user_agent, path, visited_at) VALUES (?, ?, ?, ?)`,
		s.HashIP(ip), userAgent, path, s.now().UTC().Unix(),
	)
	if err != nil {
		return fmt.Errorf("record visit: %w", err)
	}
	return nil
}

// Cleanup deletes visits older than retention and returns how many were
// removed.
func (s *Store) Cleanup(ctx context.Context, retention time.Duration) (int64, error) {
	cutoff := s.now().Add(-retention).UTC().Unix()
	res, err := s.db.ExecContext(ctx, `DELETE FROM visits WHERE visited_at < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("cleanup visits: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("cleanup visits: %w", err)
	}
	return n, nil
}

func (s *Store) Stats(ctx context.Context) (Stats, error) {
	var st Stats
	now := s.now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).Unix()
	week := now.Add(-7 * 24 * time.Hour).Unix()

	err := s.db.QueryRowContext(ctx, `
		SELECT
			COUNT(*),
			COUNT(DISTINCT hashed_ip),
			COALESCE(SUM(CASE WHEN visited_at >= ? THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN visited_at >= ? THEN 1 ELSE 0 END), 0)
		FROM visits`, today, week,
	).Scan(&st.TotalVisits, &st.UniqueVisitors, &st.VisitsToday, &st.VisitsThisWeek)
	if err != nil {
		return Stats{}, fmt.Errorf("count visits: %w", err)
	}

	st.TopPaths, err = s.topPaths(ctx)
	if err != nil {
		return Stats{}, err
	}
	st.RecentVisits, err = s.recent(ctx)
	if err != nil {
		return Stats{}, err
	}
	return st, nil
}

func (s *Store) topPaths(ctx context.Context) ([]PathCount, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT path, COUNT(*) AS n FROM visits
		GROUP BY path ORDER BY n DESC, path ASC LIMIT ?`, topPathsLimit)
	if err != nil {
		return nil, fmt.Errorf("top paths: %w", err)
	}
	defer rows.Close()

	var out []PathCount
	for rows.Next() {
		var pc PathCount
		if err := rows.Scan(&pc.Path, &pc.Visits); err != nil {
			return nil, fmt.Errorf("scan top path: %w", err)
		}
		out = append(out, pc)
	}
	return out, rows.Err()
}

func (s *Store) recent(ctx context.Context) ([]Visit, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, hashed_ip, user_agent, path, visited_at FROM visits
		ORDER BY visited_at DESC, id DESC LIMIT ?`, recentVisitsLimit)
	if err != nil {
		return nil, fmt.Errorf("recent visits: %w", err)
	}
	defer rows.Close()

	var out []Visit
	for rows.Next() {
		var v Visit
		var at int64
		if err := rows.Scan(&v.ID, &v.HashedIP, &v.UserAgent, &v.Path, &at); err != nil {
			return nil, fmt.Errorf("scan visit: %w", err)
		}
		v.Timestamp = time.Unix(at, 0).UTC()
		out = append(out, v)
	}
	return out, rows.Err()
}

func randomHex(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate random bytes: %w", err)
	}
	return hex.EncodeToString(b), nil
}
