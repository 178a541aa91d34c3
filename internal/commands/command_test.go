package commands

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSupportedCommands(t *testing.T) {
	cases := []struct {
		in       string
		typeWant Type
	}{
		{"/add buy milk", TypeAdd},
		{"title Buy  oat milk", TypeTitle},
		{"desc", TypeDesc},
		{"photo ~/Pictures/milk.png", TypePhoto},
		{"EDIT 2", TypeEdit},
		{"done 1", TypeDone},
		{"delete 3", TypeDelete},
		{"open 1", TypeOpen},
		{"close", TypeClose},
		{"/save", TypeSave},
		{"cancel", TypeCancel},
		{"theme", TypeTheme},
	}

	for _, tc := range cases {
		cmd, err := Parse(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.typeWant, cmd.Type, tc.in)
	}
}

func TestParseKeepsTextAsTyped(t *testing.T) {
	cmd, err := Parse("/title Buy  Oat milk ")
	require.NoError(t, err)
	assert.Equal(t, "Buy  Oat milk", cmd.Text.Text)

	cmd, err = Parse("desc")
	require.NoError(t, err)
	assert.Equal(t, "", cmd.Text.Text)

	cmd, err = Parse("photo /tmp/my photo.png")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/my photo.png", cmd.Photo.Path)
}

func TestParseRejectsBadArguments(t *testing.T) {
	for _, in := range []string{"add", "/add   ", "photo", "edit", "edit x", "done 0", "open 1 2", "close now"} {
		_, err := Parse(in)
		var ce *CommandError
		require.True(t, errors.As(err, &ce), in)
		assert.Equal(t, ErrCodeInvalidArgument, ce.Code, in)
	}
}

func TestParseEmptyAndUnknown(t *testing.T) {
	_, err := Parse("  / ")
	var ce *CommandError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, ErrCodeEmptyInput, ce.Code)

	_, err = Parse("/unknown do x")
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, ErrCodeUnknownCommand, ce.Code)
}

func TestExecuteDispatch(t *testing.T) {
	cmd, err := Parse("/done 2")
	require.NoError(t, err)

	called := false
	res, err := Execute(cmd, Handlers{
		Done: func(a TargetArgs) (Result, error) {
			called = true
			assert.Equal(t, 2, a.Position)
			return Result{Message: "ok"}, nil
		},
	})
	require.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, "ok", res.Message)
}

func TestExecuteMissingHandler(t *testing.T) {
	for _, in := range []string{"save", "add x", "open 1"} {
		cmd, err := Parse(in)
		require.NoError(t, err)
		_, err = Execute(cmd, Handlers{})
		var ce *CommandError
		require.True(t, errors.As(err, &ce), in)
		assert.Equal(t, ErrCodeHandlerMissing, ce.Code, in)
	}
}
