package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDemoUsers(t *testing.T) {
	users := DemoUsers()

	assert.Len(t, users, 5)
	assert.Equal(t, "admin@tagalong.app", users[0].Email)
	assert.True(t, users[0].IsSuperuser)
	assert.True(t, users[0].IsStaff)

	for _, u := range users[1:] {
		assert.False(t, u.IsSuperuser)
		assert.NotEmpty(t, u.Email)
		assert.NotEmpty(t, u.Password)
	}
}
