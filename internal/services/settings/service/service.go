// Package service contains settings workflows
package service

import (
	"context"
	"encoding/json"

	"honest/internal/modkit/repokit"
	perr "honest/internal/platform/errors"
	"honest/internal/services/settings/domain"
	"honest/internal/services/settings/repo"
)

// Service defines the settings service contract
type Service interface {
	Get(ctx context.Context, key string) (domain.Setting, error)
	Put(ctx context.Context, in domain.PutInput) (domain.Setting, error)
	Delete(ctx context.Context, key string) error
}

// Svc implements the Service interface
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
}

// New creates a new settings service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo]) *Svc {
	if db == nil {
		panic("settings.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("settings.Service requires a non nil Repo binder")
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db}
}

// Get returns the setting stored at key
func (s *Svc) Get(ctx context.Context, key string) (domain.Setting, error) {
	if key == "" {
		return domain.Setting{}, perr.InvalidArgf("key is required")
	}
	row, ok, err := s.Repo.Get(ctx, key)
	if err != nil {
		return domain.Setting{}, perr.Wrap(err, perr.ErrorCodeDB, "get setting")
	}
	if !ok {
		return domain.Setting{}, perr.NotFoundf("setting %q not found", key)
	}
	return domain.Setting{Key: row.Key, Value: row.Value, UpdatedAt: row.UpdatedAt}, nil
}

// Put upserts a setting and returns the stored value
func (s *Svc) Put(ctx context.Context, in domain.PutInput) (domain.Setting, error) {
	if !json.Valid(in.Value) {
		return domain.Setting{}, perr.InvalidArgf("value must be valid JSON")
	}
	if err := s.Repo.Put(ctx, in.Key, in.Value); err != nil {
		return domain.Setting{}, perr.Wrap(err, perr.ErrorCodeDB, "put setting")
	}
	return s.Get(ctx, in.Key)
}

// Delete removes the setting at key
func (s *Svc) Delete(ctx context.Context, key string) error {
	if key == "" {
		return perr.InvalidArgf("key is required")
	}
	ok, err := s.Repo.Delete(ctx, key)
	if err != nil {
		return perr.Wrap(err, perr.ErrorCodeDB, "delete setting")
	}
	if !ok {
		return perr.NotFoundf("setting %q not found", key)
	}
	return nil
}
