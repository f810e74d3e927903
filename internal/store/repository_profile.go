package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-session-keeper/internal/logger"
	"github.com/MKhiriev/go-session-keeper/models"
)

// profileRepository is the SQLite-backed implementation of
// [ProfileRepository].
type profileRepository struct {
	db     *DB
	logger *logger.Logger
	hub    *signalHub[models.UserProfile]
}

// NewProfileRepository constructs a [ProfileRepository] backed by the
// provided database connection and logger.
func NewProfileRepository(db *DB, logger *logger.Logger) ProfileRepository {
	logger.Debug().Msg("creating user profile repository")
	return &profileRepository{
		db:     db,
		logger: logger,
		hub:    newSignalHub[models.UserProfile](),
	}
}

func (r *profileRepository) Get(ctx context.Context, userID string) (models.UserProfile, error) {
	query, args, err := buildSelectProfileQuery(userID)
	if err != nil {
		return models.UserProfile{}, fmt.Errorf("build select profile query: %w", err)
	}

	var p models.UserProfile
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&p.UserID,
		&p.Name,
		&p.Email,
		&p.Phone,
		&p.Handle,
		&p.TeamID,
		&p.Deleted,
		&p.Connection,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.UserProfile{}, ErrProfileNotFound
	}
	if err != nil {
		return models.UserProfile{}, fmt.Errorf("select profile %s: %w", userID, err)
	}

	return p, nil
}

func (r *profileRepository) Save(ctx context.Context, profile models.UserProfile) error {
	query, args, err := buildUpsertProfileQuery(profile)
	if err != nil {
		return fmt.Errorf("build upsert profile query: %w", err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).
			Str("func", "profileRepository.Save").
			Str("user_id", profile.UserID).
			Msg("failed to upsert user profile")
		return fmt.Errorf("upsert profile %s: %w", profile.UserID, err)
	}

	r.hub.publish(profile)
	return nil
}

func (r *profileRepository) Remove(ctx context.Context, userID string) error {
	query, args, err := buildDeleteProfileQuery(userID)
	if err != nil {
		return fmt.Errorf("build delete profile query: %w", err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete profile %s: %w", userID, err)
	}

	return nil
}

func (r *profileRepository) Signal() (<-chan models.UserProfile, func()) {
	return r.hub.subscribe(nil)
}
