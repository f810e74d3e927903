package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-session-keeper/internal/logger"
	"github.com/MKhiriev/go-session-keeper/models"
)

// clientRepository is the SQLite-backed implementation of [ClientRepository].
type clientRepository struct {
	db     *DB
	logger *logger.Logger
	hub    *signalHub[string]
}

// NewClientRepository constructs a [ClientRepository] backed by the provided
// database connection and logger.
func NewClientRepository(db *DB, logger *logger.Logger) ClientRepository {
	logger.Debug().Msg("creating device client repository")
	return &clientRepository{
		db:     db,
		logger: logger,
		hub:    newSignalHub[string](),
	}
}

func (r *clientRepository) Get(ctx context.Context, id string) (models.DeviceClient, error) {
	query, args, err := buildSelectClientQuery(id)
	if err != nil {
		return models.DeviceClient{}, fmt.Errorf("build select client query: %w", err)
	}

	var c models.DeviceClient
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&c.ID,
		&c.AccountID,
		&c.Label,
		&c.SignalingKey,
		&c.RegisteredAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.DeviceClient{}, ErrClientNotFound
	}
	if err != nil {
		return models.DeviceClient{}, fmt.Errorf("select client %s: %w", id, err)
	}

	return c, nil
}

func (r *clientRepository) Save(ctx context.Context, client models.DeviceClient) error {
	query, args, err := buildUpsertClientQuery(client)
	if err != nil {
		return fmt.Errorf("build upsert client query: %w", err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).
			Str("func", "clientRepository.Save").
			Str("client_id", client.ID).
			Msg("failed to upsert device client")
		return fmt.Errorf("upsert client %s: %w", client.ID, err)
	}

	r.hub.publish(client.ID)
	return nil
}

func (r *clientRepository) Delete(ctx context.Context, id string) error {
	query, args, err := buildDeleteClientQuery(id)
	if err != nil {
		return fmt.Errorf("build delete client query: %w", err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete client %s: %w", id, err)
	}

	r.hub.publish(id)
	return nil
}

func (r *clientRepository) Signal() (<-chan string, func()) {
	return r.hub.subscribe(nil)
}
