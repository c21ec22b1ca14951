package runner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutcome(t *testing.T) {
	tests := []struct {
		outcome Outcome
		icon    string
		failed  bool
		message string
	}{
		{Success, "✔", false, ""},
		{Failure, "✘", true, "Test failed"},
		{Error, "‼", true, "Internal error"},
		{Skipped, "⊘", false, "Test skipped"},
	}

	for _, tt := range tests {
		t.Run(string(tt.outcome), func(t *testing.T) {
			assert.Equal(t, tt.icon, tt.outcome.Icon())
			assert.Equal(t, tt.failed, tt.outcome.Failed())
			assert.Equal(t, tt.message, tt.outcome.ReportMessage())
		})
	}
}

func TestVerbosity_Set(t *testing.T) {
	var v Verbosity
	require.NoError(t, v.Set("VERBOSE"))
	assert.Equal(t, Verbose, v)
	assert.Equal(t, "verbose", v.String())
	assert.Equal(t, "verbosity", v.Type())

	assert.Error(t, v.Set("loud"))
	assert.Equal(t, Verbose, v)

	parsed, err := ParseVerbosity("silent")
	require.NoError(t, err)
	assert.Equal(t, Silent, parsed)
}
