// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-session-keeper/models"
)

var accountColumns = []string{
	"id",
	"cookie",
	"access_token",
	"verified",
	"user_id",
	"client_id",
	"client_state",
	"team_state",
	"team_id",
	"permissions",
	"email",
	"phone",
	"handle",
	"created_at",
	"updated_at",
}

func buildSelectAccountQuery(id string) (string, []any, error) {
	return sq.Select(accountColumns...).
		From(models.Account{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildUpsertAccountQuery(a models.Account) (string, []any, error) {
	return sq.Insert(models.Account{}.TableName()).
		Columns(accountColumns...).
		Values(
			a.ID,
			a.Cookie,
			a.AccessToken.String(),
			a.Verified,
			a.UserID,
			a.ClientID,
			string(a.ClientState),
			string(a.TeamState),
			a.TeamID,
			a.Permissions,
			a.Email,
			a.Phone,
			a.Handle,
			a.CreatedAt,
			a.UpdatedAt,
		).
		Suffix(`ON CONFLICT(id) DO UPDATE SET
			cookie=excluded.cookie,
			access_token=excluded.access_token,
			verified=excluded.verified,
			user_id=excluded.user_id,
			client_id=excluded.client_id,
			client_state=excluded.client_state,
			team_state=excluded.team_state,
			team_id=excluded.team_id,
			permissions=excluded.permissions,
			email=excluded.email,
			phone=excluded.phone,
			handle=excluded.handle,
			updated_at=excluded.updated_at`).
		ToSql()
}

func buildDeleteAccountQuery(id string) (string, []any, error) {
	return sq.Delete(models.Account{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
}

var clientColumns = []string{
	"id",
	"account_id",
	"label",
	"signaling_key",
	"registered_at",
}

func buildSelectClientQuery(id string) (string, []any, error) {
	return sq.Select(clientColumns...).
		From(models.DeviceClient{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildUpsertClientQuery(c models.DeviceClient) (string, []any, error) {
	return sq.Insert(models.DeviceClient{}.TableName()).
		Columns(clientColumns...).
		Values(c.ID, c.AccountID, c.Label, c.SignalingKey, c.RegisteredAt).
		Suffix(`ON CONFLICT(id) DO UPDATE SET
			account_id=excluded.account_id,
			label=excluded.label,
			signaling_key=excluded.signaling_key,
			registered_at=excluded.registered_at`).
		ToSql()
}

func buildDeleteClientQuery(id string) (string, []any, error) {
	return sq.Delete(models.DeviceClient{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
}

var profileColumns = []string{
	"user_id",
	"name",
	"email",
	"phone",
	"handle",
	"team_id",
	"deleted",
	"connection",
}

func buildSelectProfileQuery(userID string) (string, []any, error) {
	return sq.Select(profileColumns...).
		From(models.UserProfile{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

func buildUpsertProfileQuery(p models.UserProfile) (string, []any, error) {
	return sq.Insert(models.UserProfile{}.TableName()).
		Columns(profileColumns...).
		Values(p.UserID, p.Name, p.Email, p.Phone, p.Handle, p.TeamID, p.Deleted, p.Connection).
		Suffix(`ON CONFLICT(user_id) DO UPDATE SET
			name=excluded.name,
			email=excluded.email,
			phone=excluded.phone,
			handle=excluded.handle,
			team_id=excluded.team_id,
			deleted=excluded.deleted,
			connection=excluded.connection`).
		ToSql()
}

func buildDeleteProfileQuery(userID string) (string, []any, error) {
	return sq.Delete(models.UserProfile{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}
