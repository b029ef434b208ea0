package bootstrap

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/tagalong/ramp/internal/mocks/pkg/database_mock"
	"github.com/tagalong/ramp/pkg/errors"
	"github.com/tagalong/ramp/pkg/structs"
)

func TestSuperuserStageMissingCreds(t *testing.T) {
	cases := []struct {
		Name     string
		Email    string
		Password string
		DispName string
	}{
		{"AllAbsent", "", "", ""},
		{"NoEmail", "", "secret", "Admin User"},
		{"NoPassword", "admin@tagalong.app", "", "Admin User"},
		{"NoName", "admin@tagalong.app", "secret", ""},
	}

	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			t.Setenv("TEST_ADMIN_EMAIL", c.Email)
			t.Setenv("TEST_ADMIN_PASSWORD", c.Password)
			t.Setenv("TEST_ADMIN_NAME", c.DispName)

			// the db must never be touched without full credentials
			db := database_mock.NewMockDatabase(gomock.NewController(t))
			s := NewSuperuserStage(db, "TEST_ADMIN_EMAIL", "TEST_ADMIN_PASSWORD", "TEST_ADMIN_NAME")

			err := s.Run(context.Background())

			assert.ErrorIs(t, err, errors.ErrMissingCreds)
		})
	}
}

func TestSuperuserStageCreates(t *testing.T) {
	t.Setenv("TEST_ADMIN_EMAIL", "admin@tagalong.app")
	t.Setenv("TEST_ADMIN_PASSWORD", "secret")
	t.Setenv("TEST_ADMIN_NAME", "Rishika Agrawal")

	db := database_mock.NewMockDatabase(gomock.NewController(t))
	db.EXPECT().EnsureSuperuser(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, spec *structs.UserSpec) (bool, error) {
			assert.Equal(t, "admin@tagalong.app", spec.Email)
			assert.Equal(t, "Rishika", spec.FirstName)
			assert.Equal(t, "Agrawal", spec.LastName)
			assert.Equal(t, "secret", spec.Password)
			assert.True(t, spec.IsSuperuser)
			assert.True(t, spec.IsStaff)
			return true, nil
		},
	)

	s := NewSuperuserStage(db, "TEST_ADMIN_EMAIL", "TEST_ADMIN_PASSWORD", "TEST_ADMIN_NAME")

	assert.Nil(t, s.Run(context.Background()))
}

func TestSuperuserStageAccountExists(t *testing.T) {
	t.Setenv("TEST_ADMIN_EMAIL", "admin@tagalong.app")
	t.Setenv("TEST_ADMIN_PASSWORD", "secret")
	t.Setenv("TEST_ADMIN_NAME", "Admin")

	db := database_mock.NewMockDatabase(gomock.NewController(t))
	db.EXPECT().EnsureSuperuser(gomock.Any(), gomock.Any()).Return(false, nil)

	s := NewSuperuserStage(db, "TEST_ADMIN_EMAIL", "TEST_ADMIN_PASSWORD", "TEST_ADMIN_NAME")

	// already-exists is success; suppression is the pipeline's concern
	assert.Nil(t, s.Run(context.Background()))
}

func TestSuperuserStageDatabaseError(t *testing.T) {
	t.Setenv("TEST_ADMIN_EMAIL", "admin@tagalong.app")
	t.Setenv("TEST_ADMIN_PASSWORD", "secret")
	t.Setenv("TEST_ADMIN_NAME", "Admin")

	db := database_mock.NewMockDatabase(gomock.NewController(t))
	db.EXPECT().EnsureSuperuser(gomock.Any(), gomock.Any()).Return(false, fmt.Errorf("connection refused"))

	s := NewSuperuserStage(db, "TEST_ADMIN_EMAIL", "TEST_ADMIN_PASSWORD", "TEST_ADMIN_NAME")

	assert.NotNil(t, s.Run(context.Background()))
}

func TestSplitName(t *testing.T) {
	cases := []struct {
		Name        string
		Given       string
		ExpectFirst string
		ExpectLast  string
	}{
		{"Single", "Admin", "Admin", ""},
		{"Pair", "Rishika Agrawal", "Rishika", "Agrawal"},
		{"Triple", "Carlos Rodriguez Jr", "Carlos", "Rodriguez Jr"},
		{"ExtraSpaces", "  Emma   Wilson ", "Emma", "Wilson"},
	}

	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			first, last := splitName(c.Given)
			assert.Equal(t, c.ExpectFirst, first)
			assert.Equal(t, c.ExpectLast, last)
		})
	}
}
