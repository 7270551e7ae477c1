package validation

import (
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func newValidator(t *testing.T) *validator.Validate {
	t.Helper()
	v := validator.New()
	RegisterValidators(v)
	return v
}

func TestListName(t *testing.T) {
	v := newValidator(t)

	assert.NoError(t, v.Var("Groceries", "list_name"))
	assert.NoError(t, v.Var(strings.Repeat("a", 255), "list_name"))
	assert.NoError(t, v.Var(strings.Repeat("ü", 255), "list_name"))

	assert.Error(t, v.Var("", "list_name"))
	assert.Error(t, v.Var("   ", "list_name"))
	assert.Error(t, v.Var(strings.Repeat("a", 256), "list_name"))
}

func TestUsername(t *testing.T) {
	v := newValidator(t)

	assert.NoError(t, v.Var("alice", "username"))
	assert.NoError(t, v.Var("al.ice_2-b", "username"))

	assert.Error(t, v.Var("al", "username"))
	assert.Error(t, v.Var(strings.Repeat("a", 33), "username"))
	assert.Error(t, v.Var("alice!", "username"))
	assert.Error(t, v.Var("al ice", "username"))
}

func TestNoEmoji(t *testing.T) {
	v := newValidator(t)

	assert.NoError(t, v.Var("plain text with punctuation.", "no_emoji"))
	assert.Error(t, v.Var("hello \U0001F600", "no_emoji"))
}
