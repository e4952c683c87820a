package validation

import (
	"strings"
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type roomPayload struct {
	Room string `binding:"roomname"`
}

type identityPayload struct {
	Identity string `binding:"identity"`
}

func engine(t *testing.T) *validator.Validate {
	t.Helper()
	v, ok := binding.Validator.Engine().(*validator.Validate)
	require.True(t, ok)
	return v
}

func TestRoomNameTag(t *testing.T) {
	v := engine(t)

	valid := []string{"lesson-1", "a", "room_42", strings.Repeat("x", 64)}
	for _, name := range valid {
		assert.NoError(t, v.Struct(roomPayload{Room: name}), name)
	}

	invalid := []string{"", "has space", "slash/room", strings.Repeat("x", 65), "émoji"}
	for _, name := range invalid {
		assert.Error(t, v.Struct(roomPayload{Room: name}), name)
	}
}

func TestIdentityTag(t *testing.T) {
	v := engine(t)

	valid := []string{"user-1", "alice@example.com", "tenant:42", "a.b_c"}
	for _, id := range valid {
		assert.NoError(t, v.Struct(identityPayload{Identity: id}), id)
	}

	invalid := []string{"", "has space", strings.Repeat("x", 129)}
	for _, id := range invalid {
		assert.Error(t, v.Struct(identityPayload{Identity: id}), id)
	}
}

func TestFormatValidationError(t *testing.T) {
	v := engine(t)

	err := v.Struct(roomPayload{Room: "has space"})
	require.Error(t, err)

	out := FormatValidationError(err)
	require.Len(t, out, 1)
	assert.Equal(t, "Room", out[0].Field)
	assert.NotEmpty(t, out[0].Message)
}

func TestFormatNonValidationError(t *testing.T) {
	assert.Nil(t, FormatValidationError(assert.AnError))
}
