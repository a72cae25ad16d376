package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/authdesk/internal/client/repositories/kv"
	"github.com/dmitrijs2005/authdesk/internal/dbx"
	"github.com/dmitrijs2005/authdesk/internal/logging"
)

// StoreKey is the fixed key the record lives under.
const StoreKey = "user"

var ErrEmptyToken = errors.New("session record has no token")

// Loader is the read side of the store. The route guard needs nothing else.
type Loader interface {
	Load(ctx context.Context) (Record, bool)
}

// Store is the explicit session context handed to whatever needs it.
// Save, Load and Clear are its only operations; it has no side effects on
// any transport.
type Store interface {
	Loader
	Save(ctx context.Context, r Record) error
	Clear(ctx context.Context) error
}

type SQLiteStore struct {
	db     *sql.DB
	logger logging.Logger
}

func NewSQLiteStore(db *sql.DB, logger logging.Logger) *SQLiteStore {
	return &SQLiteStore{db: db, logger: logger.With("component", "session")}
}

// Save serializes r and replaces any previous record in one transaction.
// Records without a token are refused.
func (s *SQLiteStore) Save(ctx context.Context, r Record) error {
	if !r.Authenticated() {
		return ErrEmptyToken
	}

	raw, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return kv.NewSQLiteRepository(tx).Set(ctx, StoreKey, raw)
	})
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// Load returns the current record. Missing, unreadable, malformed and
// tokenless records all yield (Record{}, false); Load never fails.
func (s *SQLiteStore) Load(ctx context.Context) (Record, bool) {
	raw, err := kv.NewSQLiteRepository(s.db).Get(ctx, StoreKey)
	if err != nil {
		s.logger.Warn(ctx, "session read failed", "error", err)
		return Record{}, false
	}
	if raw == nil {
		return Record{}, false
	}

	var r Record
	if err := json.Unmarshal(raw, &r); err != nil {
		s.logger.Warn(ctx, "malformed session record ignored", "error", err)
		return Record{}, false
	}
	if !r.Authenticated() {
		return Record{}, false
	}
	return r, true
}

// Clear removes the record. Clearing an empty store is not an error.
func (s *SQLiteStore) Clear(ctx context.Context) error {
	if err := kv.NewSQLiteRepository(s.db).Delete(ctx, StoreKey); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
