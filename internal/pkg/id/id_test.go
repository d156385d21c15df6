package id

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_IsValidAndUnique(t *testing.T) {
	a, b := New(), New()
	assert.True(t, Valid(a))
	assert.Len(t, a, 26)
	assert.NotEqual(t, a, b)
}

func TestValid_RejectsGarbage(t *testing.T) {
	assert.False(t, Valid(""))
	assert.False(t, Valid("new"))
	assert.False(t, Valid("not-a-ulid-at-all-000000000"))
}
