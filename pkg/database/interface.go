package database

import (
	"context"

	"github.com/tagalong/ramp/pkg/structs"
)

type Database interface {
	// EnsureSuperuser creates the admin account if no account with the
	// given email exists. Returns true if the account was created.
	EnsureSuperuser(ctx context.Context, spec *structs.UserSpec) (bool, error)

	// UpsertUsers inserts or updates demo accounts, returning the number
	// of rows written.
	UpsertUsers(ctx context.Context, in []*structs.UserSpec) (int64, error)

	// InsertRun records a finished deployment run for operator history.
	InsertRun(ctx context.Context, r *structs.Run) error

	Close() error
}
