package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewID(t *testing.T) {
	a := NewID()
	b := NewID()

	assert.NotEqual(t, a, b)
	assert.True(t, IsValidID(a))
	assert.True(t, IsValidID(b))
}

func TestIsValidID(t *testing.T) {
	cases := []struct {
		Name   string
		Given  string
		Expect bool
	}{
		{"Empty", "", false},
		{"Garbage", "not-an-id", false},
		{"Valid", "6ba7b810-9dad-11d1-80b4-00c04fd430c8", true},
	}

	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			assert.Equal(t, IsValidID(c.Given), c.Expect)
		})
	}
}
