package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-session-keeper/internal/logger"
	"github.com/MKhiriev/go-session-keeper/models"
)

// accountRepository is the SQLite-backed implementation of
// [AccountRepository].
//
// A repository-level mutex serializes all writes: combined with the
// transform-based update primitive this guarantees a transform always sees
// the latest committed record, which is what keeps concurrent writers from
// losing each other's fields.
type accountRepository struct {
	db     *DB
	logger *logger.Logger

	mu  sync.Mutex
	hub *signalHub[models.Account]
}

// NewAccountRepository constructs an [AccountRepository] backed by the
// provided database connection and logger.
func NewAccountRepository(db *DB, logger *logger.Logger) AccountRepository {
	logger.Debug().Msg("creating account repository")
	return &accountRepository{
		db:     db,
		logger: logger,
		hub:    newSignalHub[models.Account](),
	}
}

func (r *accountRepository) Get(ctx context.Context, id string) (models.Account, error) {
	query, args, err := buildSelectAccountQuery(id)
	if err != nil {
		return models.Account{}, fmt.Errorf("build select account query: %w", err)
	}

	account, err := scanAccount(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Account{}, ErrAccountNotFound
	}
	if err != nil {
		return models.Account{}, fmt.Errorf("select account %s: %w", id, err)
	}

	return account, nil
}

func (r *accountRepository) UpdateOrCreate(ctx context.Context, id string, transform func(*models.Account), def models.Account) (models.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	account, err := r.Get(ctx, id)
	created := false
	if errors.Is(err, ErrAccountNotFound) {
		account = def
		account.ID = id
		created = true
	} else if err != nil {
		return models.Account{}, err
	}

	transform(&account)
	account.ID = id

	now := time.Now().UTC()
	if created {
		account.CreatedAt = now
	}
	account.UpdatedAt = now

	query, args, err := buildUpsertAccountQuery(account)
	if err != nil {
		return models.Account{}, fmt.Errorf("build upsert account query: %w", err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).
			Str("func", "accountRepository.UpdateOrCreate").
			Str("account_id", id).
			Msg("failed to upsert account record")
		return models.Account{}, fmt.Errorf("upsert account %s: %w", id, err)
	}

	r.hub.publish(account)
	return account, nil
}

func (r *accountRepository) Remove(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	query, args, err := buildDeleteAccountQuery(id)
	if err != nil {
		return fmt.Errorf("build delete account query: %w", err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete account %s: %w", id, err)
	}

	// Subscribers observe removal as a zero record that only carries the
	// id: no cookie means logged out, no client id means nothing to watch.
	r.hub.publish(models.Account{ID: id})
	return nil
}

func (r *accountRepository) Signal(id string) (<-chan models.Account, func()) {
	return r.hub.subscribe(func(a models.Account) bool { return a.ID == id })
}

func scanAccount(row *sql.Row) (models.Account, error) {
	var (
		a           models.Account
		accessToken string
		clientState string
		teamState   string
	)

	err := row.Scan(
		&a.ID,
		&a.Cookie,
		&accessToken,
		&a.Verified,
		&a.UserID,
		&a.ClientID,
		&clientState,
		&teamState,
		&a.TeamID,
		&a.Permissions,
		&a.Email,
		&a.Phone,
		&a.Handle,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return models.Account{}, err
	}

	a.AccessToken = models.Token(accessToken)
	a.ClientState = models.ClientState(clientState)
	a.TeamState = models.TeamState(teamState)

	return a, nil
}
