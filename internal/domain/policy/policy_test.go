package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linenotify/internal/domain/model"
	"linenotify/internal/errors"
)

var allResults = []model.Result{
	model.ResultSuccess,
	model.ResultFailure,
	model.ResultUnstable,
	model.ResultAborted,
	model.ResultNotBuilt,
	model.ResultUnknown,
}

func TestParseSendType(t *testing.T) {
	for _, st := range model.SendTypes {
		got, err := ParseSendType(string(st))
		require.NoError(t, err)
		assert.Equal(t, st, got)
	}

	_, err := ParseSendType("BOGUS")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrUnknownSendType))

	_, err = ParseSendType("always")
	assert.Error(t, err, "matching is case-sensitive")
}

func TestShouldSend_Never(t *testing.T) {
	for _, r := range allResults {
		assert.False(t, ShouldSend(model.SendNever, r, "", false), r)
	}
}

func TestShouldSend_AlwaysForEveryResult(t *testing.T) {
	for _, r := range allResults {
		assert.True(t, ShouldSend(model.SendAlways, r, "", false), r)
		assert.True(t, ShouldSend(model.SendAlways, r, r, true), r)
	}
}

func TestShouldSend_OnlySuccess(t *testing.T) {
	for _, r := range allResults {
		assert.Equal(t, r == model.ResultSuccess, ShouldSend(model.SendOnlySuccess, r, "", false), r)
		assert.Equal(t, r == model.ResultSuccess, ShouldSend(model.SendOnlySuccess, r, r, true), r)
	}
}

func TestShouldSend_OnlyFailure(t *testing.T) {
	for _, r := range allResults {
		assert.Equal(t, r == model.ResultFailure, ShouldSend(model.SendOnlyFailure, r, "", false), r)
	}
}

func TestShouldSend_StatusChangeOverride(t *testing.T) {
	tests := []struct {
		name     string
		sendType model.SendType
		current  model.Result
		previous model.Result
		onChange bool
		want     bool
	}{
		{"failure recovered", model.SendOnlyFailure, model.ResultSuccess, model.ResultFailure, true, true},
		{"override disabled", model.SendOnlyFailure, model.ResultSuccess, model.ResultFailure, false, false},
		{"no previous build", model.SendOnlyFailure, model.ResultSuccess, "", true, false},
		{"same result", model.SendOnlySuccess, model.ResultFailure, model.ResultFailure, true, false},
		{"never still overridden", model.SendNever, model.ResultUnstable, model.ResultSuccess, true, true},
		{"already true", model.SendOnlySuccess, model.ResultSuccess, model.ResultFailure, true, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ShouldSend(tc.sendType, tc.current, tc.previous, tc.onChange))
		})
	}
}

func TestStatusChanged(t *testing.T) {
	assert.False(t, StatusChanged(model.ResultSuccess, ""))
	assert.False(t, StatusChanged(model.ResultSuccess, model.ResultSuccess))
	assert.True(t, StatusChanged(model.ResultSuccess, model.ResultAborted))
}
