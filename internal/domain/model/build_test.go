package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseResult(t *testing.T) {
	tests := []struct {
		in   string
		want Result
	}{
		{"SUCCESS", ResultSuccess},
		{"failure", ResultFailure},
		{" Unstable ", ResultUnstable},
		{"ABORTED", ResultAborted},
		{"NOT_BUILT", ResultNotBuilt},
		{"", ""},
		{"weird", ResultUnknown},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, ParseResult(tc.in))
		})
	}
}

func TestResultKnown(t *testing.T) {
	assert.True(t, ResultFailure.Known())
	assert.False(t, Result("").Known())
	assert.False(t, ResultUnknown.Known())
}

func TestCredentialMasked(t *testing.T) {
	assert.Equal(t, "******cdef", Credential{Token: "6789abcdef"}.Masked())
	assert.Equal(t, "***", Credential{Token: "abc"}.Masked())
	assert.Equal(t, "", Credential{}.Masked())
}
