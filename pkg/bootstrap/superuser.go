package bootstrap

import (
	"context"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/tagalong/ramp/pkg/database"
	"github.com/tagalong/ramp/pkg/errors"
	"github.com/tagalong/ramp/pkg/structs"
)

const (
	defaultAdminEmailVar    = "ADMIN_EMAIL"
	defaultAdminPasswordVar = "ADMIN_PASSWORD"
	defaultAdminNameVar     = "ADMIN_NAME"
)

// SuperuserStage provisions the admin account from environment-supplied
// credentials. If any of the three variables is unset the stage reports
// ErrMissingCreds; the pipeline's suppressed branch turns that (and any
// other failure here) into a skip rather than a deploy failure.
type SuperuserStage struct {
	db database.Database

	emailVar    string
	passwordVar string
	nameVar     string
}

func NewSuperuserStage(db database.Database, emailVar, passwordVar, nameVar string) *SuperuserStage {
	if emailVar == "" {
		emailVar = defaultAdminEmailVar
	}
	if passwordVar == "" {
		passwordVar = defaultAdminPasswordVar
	}
	if nameVar == "" {
		nameVar = defaultAdminNameVar
	}
	return &SuperuserStage{db: db, emailVar: emailVar, passwordVar: passwordVar, nameVar: nameVar}
}

func (s *SuperuserStage) Kind() structs.Stage {
	return structs.StageSuperuser
}

func (s *SuperuserStage) Run(ctx context.Context) error {
	email := os.Getenv(s.emailVar)
	password := os.Getenv(s.passwordVar)
	name := os.Getenv(s.nameVar)
	if email == "" || password == "" || name == "" {
		return errors.ErrMissingCreds
	}

	first, last := splitName(name)
	created, err := s.db.EnsureSuperuser(ctx, &structs.UserSpec{
		Email:       email,
		FirstName:   first,
		LastName:    last,
		Password:    password,
		IsSuperuser: true,
		IsStaff:     true,
	})
	if err != nil {
		return err
	}

	if created {
		log.WithField("email", email).Info("admin account created")
	} else {
		log.WithField("email", email).Info("admin account already exists")
	}
	return nil
}

func splitName(in string) (string, string) {
	parts := strings.Fields(in)
	if len(parts) < 2 {
		return in, ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}
