// Package repo provides postgres access for settings
package repo

import (
	"context"
	"encoding/json"

	"honest/internal/modkit/repokit"
)

// Repo defines the repository contract for settings
type Repo interface {
	Get(ctx context.Context, key string) (RowSetting, bool, error)
	Put(ctx context.Context, key string, value json.RawMessage) error
	Delete(ctx context.Context, key string) (bool, error)
}

// RowSetting is a settings row
type RowSetting struct {
	Key       string
	Value     json.RawMessage
	UpdatedAt string
}

type (
	// PG implements the Repo interface using Postgres
	PG struct{}

	queries struct{ q repokit.Queryer }
)

// NewPG creates a new Postgres repository binder
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind binds a Postgres queryer to the Repo implementation
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

func (r *queries) Get(ctx context.Context, key string) (RowSetting, bool, error) {
	const sql = `
select key, value, updated_at::text
from settings
where key = $1
`
	rows, err := r.q.Query(ctx, sql, key)
	if err != nil {
		return RowSetting{}, false, err
	}
	defer rows.Close()
	if !rows.Next() {
		return RowSetting{}, false, rows.Err()
	}
	var row RowSetting
	if err := rows.Scan(&row.Key, &row.Value, &row.UpdatedAt); err != nil {
		return RowSetting{}, false, err
	}
	return row, true, rows.Err()
}

func (r *queries) Put(ctx context.Context, key string, value json.RawMessage) error {
	const sql = `
insert into settings (key, value, updated_at)
values ($1, $2, now())
on conflict (key) do update set value = excluded.value, updated_at = now()
`
	_, err := r.q.Exec(ctx, sql, key, value)
	return err
}

func (r *queries) Delete(ctx context.Context, key string) (bool, error) {
	const sql = `delete from settings where key = $1`
	ct, err := r.q.Exec(ctx, sql, key)
	if err != nil {
		return false, err
	}
	return ct.RowsAffected() > 0, nil
}
