// Package ledger stores mood records as one serialized sequence under a
// single key and keeps at most one record per calendar day.
package ledger

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/chris-regnier/sunspot/internal/kv"
	"github.com/chris-regnier/sunspot/internal/mood"
)

// DefaultKey is the logical key the ledger is persisted under.
const DefaultKey = "sunspot-moods"

// ErrInvalidRecord is returned when Upsert is given a record that fails validation.
var ErrInvalidRecord = errors.New("invalid mood record")

// Store is the record store over a kv.Surface.
type Store struct {
	surface kv.Surface
	key     string
	logger  *slog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithKey overrides the persistence key.
func WithKey(key string) Option {
	return func(s *Store) {
		if key != "" {
			s.key = key
		}
	}
}

// WithLogger sets the logger used for soft-failure warnings.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// New creates a Store on surface.
func New(surface kv.Surface, opts ...Option) *Store {
	s := &Store{
		surface: surface,
		key:     DefaultKey,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("component", "ledger", "key", s.key)
	return s
}

// Key returns the persistence key.
func (s *Store) Key() string { return s.key }

// read decodes the ledger. A missing or malformed blob, or one holding a
// record that fails validation, is an empty ledger; only a failure of the
// surface itself is returned.
func (s *Store) read() ([]mood.Record, error) {
	blob, ok, err := s.surface.Get(s.key)
	if err != nil {
		return nil, fmt.Errorf("reading ledger: %w", err)
	}
	if !ok {
		return []mood.Record{}, nil
	}

	var records []mood.Record
	if err := json.Unmarshal([]byte(blob), &records); err != nil {
		s.logger.Warn("ignoring unreadable ledger", "error", err, "bytes", len(blob))
		return []mood.Record{}, nil
	}
	for _, r := range records {
		if err := r.Validate(); err != nil {
			s.logger.Warn("ignoring ledger with invalid record", "error", err, "bytes", len(blob))
			return []mood.Record{}, nil
		}
	}
	if records == nil {
		records = []mood.Record{}
	}
	return records, nil
}

// Records returns every record in stored order.
func (s *Store) Records() ([]mood.Record, error) {
	return s.read()
}

// LoadToday returns the record for today. When several records share the
// date, the one with the greatest timestamp wins.
func (s *Store) LoadToday(today string) (mood.Record, bool, error) {
	records, err := s.read()
	if err != nil {
		return mood.Record{}, false, err
	}

	var (
		best  mood.Record
		found bool
	)
	for _, r := range records {
		if r.Date != today {
			continue
		}
		if !found || r.Timestamp > best.Timestamp {
			best = r
			found = true
		}
	}
	return best, found, nil
}

// Upsert replaces every record for r.Date with r and writes the ledger back
// in one Set call.
func (s *Store) Upsert(r mood.Record) error {
	if err := r.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}

	records, err := s.read()
	if err != nil {
		return err
	}

	next := make([]mood.Record, 0, len(records)+1)
	for _, existing := range records {
		if existing.Date != r.Date {
			next = append(next, existing)
		}
	}
	next = append(next, r)

	data, err := json.Marshal(next)
	if err != nil {
		return fmt.Errorf("%w: encoding ledger: %v", kv.ErrStorage, err)
	}
	if err := s.surface.Set(s.key, string(data)); err != nil {
		return fmt.Errorf("writing ledger: %w", err)
	}

	s.logger.Debug("record saved", "date", r.Date, "mood", string(r.Mood), "records", len(next))
	return nil
}
