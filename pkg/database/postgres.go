package database

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tagalong/ramp/internal/utils"
	"github.com/tagalong/ramp/pkg/structs"
)

const (
	tableUsers = "users"
	tableRuns  = "deploy_runs"
)

// Postgres is a ramp database implementation that uses postgres.
type Postgres struct {
	opts *Options
	pool *pgxpool.Pool
}

// NewPostgres returns a new Postgres database connection.
func NewPostgres(opts *Options) (*Postgres, error) {
	opts.setDefaults()
	opts.URL = strings.Replace(opts.URL, "$"+opts.UsernameEnvVar, os.Getenv(opts.UsernameEnvVar), 1)
	opts.URL = strings.Replace(opts.URL, "$"+opts.PasswordEnvVar, os.Getenv(opts.PasswordEnvVar), 1)
	pool, err := pgxpool.New(context.Background(), opts.URL)
	return &Postgres{pool: pool, opts: opts}, err
}

// Close shuts down the database connection.
func (p *Postgres) Close() error {
	p.pool.Close()
	return nil
}

// EnsureSuperuser inserts the admin account if the email is not taken.
//
// An existing account is left untouched; we never overwrite a password
// that may have been rotated since the account was first provisioned.
func (p *Postgres) EnsureSuperuser(ctx context.Context, spec *structs.UserSpec) (bool, error) {
	u, err := newUser(spec)
	if err != nil {
		return false, err
	}
	u.IsSuperuser = true
	u.IsStaff = true

	ustr, uargs := toUserSqlArgs(1, u)
	ustr = fmt.Sprintf(
		`INSERT INTO %s (email, username, first_name, last_name, password, is_superuser, is_staff, id, is_active, created_at, updated_at) VALUES %s ON CONFLICT (email) DO NOTHING;`,
		tableUsers, ustr,
	)

	tag, err := p.pool.Exec(ctx, ustr, uargs...)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// UpsertUsers writes the given accounts, updating names & flags on conflict.
// Passwords of existing accounts are not touched.
func (p *Postgres) UpsertUsers(ctx context.Context, in []*structs.UserSpec) (int64, error) {
	ustrs, uargs := []string{}, []interface{}{}
	for _, spec := range in {
		u, err := newUser(spec)
		if err != nil {
			return 0, err
		}
		s, a := toUserSqlArgs(len(uargs)+1, u)
		ustrs = append(ustrs, s)
		uargs = append(uargs, a...)
	}
	ustr := strings.Join(ustrs, ",") // join so its (),(),() etc
	ustr = fmt.Sprintf(
		`INSERT INTO %s (email, username, first_name, last_name, password, is_superuser, is_staff, id, is_active, created_at, updated_at) VALUES %s
		 ON CONFLICT (email) DO UPDATE SET
		   first_name = EXCLUDED.first_name,
		   last_name = EXCLUDED.last_name,
		   is_superuser = EXCLUDED.is_superuser,
		   is_staff = EXCLUDED.is_staff,
		   updated_at = EXCLUDED.updated_at;`,
		tableUsers, ustr,
	)

	tag, err := p.pool.Exec(ctx, ustr, uargs...)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// InsertRun records one finished deployment run.
func (p *Postgres) InsertRun(ctx context.Context, r *structs.Run) error {
	stages, err := json.Marshal(r.Stages)
	if err != nil {
		return err
	}
	rstr := fmt.Sprintf(
		`INSERT INTO %s (id, status, stages, created_at, updated_at) VALUES ($1, $2, $3, $4, $5);`,
		tableRuns,
	)
	_, err = p.pool.Exec(ctx, rstr, r.ID, r.Status, stages, r.CreatedAt, r.UpdatedAt)
	return err
}

// newUser builds a db-ready User from a spec; the password is hashed here.
func newUser(spec *structs.UserSpec) (*structs.User, error) {
	hash, err := utils.HashPassword(spec.Password)
	if err != nil {
		return nil, err
	}
	now := time.Now().Unix()
	u := &structs.User{
		UserSpec:  *spec,
		ID:        utils.NewID(),
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	u.Password = hash
	if u.Username == "" {
		u.Username = strings.SplitN(spec.Email, "@", 2)[0]
	}
	return u, nil
}

// toUserSqlArgs converts a user into a SQL query string & args (for an insert)
func toUserSqlArgs(offset int, u *structs.User) (string, []interface{}) {
	fields := []string{}
	for i := offset; i < offset+11; i++ {
		fields = append(fields, fmt.Sprintf("$%d", i))
	}
	return fmt.Sprintf("(%s)", strings.Join(fields, ", ")), []interface{}{
		u.Email,
		u.Username,
		u.FirstName,
		u.LastName,
		u.Password,
		u.IsSuperuser,
		u.IsStaff,
		u.ID,
		u.IsActive,
		u.CreatedAt,
		u.UpdatedAt,
	}
}
