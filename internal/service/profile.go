package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-session-keeper/models"
)

// Profile edits follow a strict remote-first order: the backend call must
// succeed before anything local changes, so a failed edit leaves the account
// record and the profile mirror untouched.

func (m *accountManager) UpdateEmail(ctx context.Context, email string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.backend.PutEmail(ctx, email); err != nil {
		return fmt.Errorf("update email: %w", err)
	}
	return m.mirrorContact(ctx,
		func(a *models.Account) { a.Email = email },
		func(p *models.UserProfile) { p.Email = email },
	)
}

func (m *accountManager) ClearEmail(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.backend.DeleteEmail(ctx); err != nil {
		return fmt.Errorf("clear email: %w", err)
	}
	return m.mirrorContact(ctx,
		func(a *models.Account) { a.Email = "" },
		func(p *models.UserProfile) { p.Email = "" },
	)
}

func (m *accountManager) UpdatePhone(ctx context.Context, phone string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.backend.PutPhone(ctx, phone); err != nil {
		return fmt.Errorf("update phone: %w", err)
	}
	return m.mirrorContact(ctx,
		func(a *models.Account) { a.Phone = phone },
		func(p *models.UserProfile) { p.Phone = phone },
	)
}

func (m *accountManager) ClearPhone(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.backend.DeletePhone(ctx); err != nil {
		return fmt.Errorf("clear phone: %w", err)
	}
	return m.mirrorContact(ctx,
		func(a *models.Account) { a.Phone = "" },
		func(p *models.UserProfile) { p.Phone = "" },
	)
}

func (m *accountManager) UpdatePassword(ctx context.Context, oldPassword, newPassword string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.backend.PutPassword(ctx, oldPassword, newPassword); err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	m.creds.Password = newPassword
	return nil
}

func (m *accountManager) UpdateHandle(ctx context.Context, handle string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.backend.PutHandle(ctx, handle); err != nil {
		return fmt.Errorf("update handle: %w", err)
	}
	return m.mirrorContact(ctx,
		func(a *models.Account) { a.Handle = handle },
		func(p *models.UserProfile) { p.Handle = handle },
	)
}

// mirrorContact applies the already-accepted remote change to the account
// record and, when the self profile is resolved, to the profile mirror.
// Callers hold mu.
func (m *accountManager) mirrorContact(ctx context.Context, onAccount func(*models.Account), onProfile func(*models.UserProfile)) error {
	account, err := m.persist(ctx, onAccount)
	if err != nil {
		return err
	}
	if account.UserID == "" {
		return nil
	}

	profile, err := m.profiles.Get(ctx, account.UserID)
	if err != nil {
		m.logger.Warn().Err(err).Str("user_id", account.UserID).Msg("profile mirror missing, skipping contact mirror")
		return nil
	}
	onProfile(&profile)
	return m.profiles.Save(ctx, profile)
}
