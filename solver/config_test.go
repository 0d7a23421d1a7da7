package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 100, cfg.MaxIter)
	assert.Equal(t, 1e-6, cfg.Tol)
	assert.Equal(t, Silent, cfg.Verbosity)
	assert.NoError(t, cfg.Validate())
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("VARLDA_MAX_ITER", "250")
	t.Setenv("VARLDA_TOL", "0.001")
	t.Setenv("VARLDA_VERBOSITY", "per_iteration")

	cfg, err := ConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, 250, cfg.MaxIter)
	assert.Equal(t, 0.001, cfg.Tol)
	assert.Equal(t, PerIteration, cfg.Verbosity)
}

func TestConfigFromEnv_Defaults(t *testing.T) {
	cfg, err := ConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, 100, cfg.MaxIter)
	assert.Equal(t, 1e-6, cfg.Tol)
	assert.Equal(t, Silent, cfg.Verbosity)
}

func TestConfigFromEnv_InvalidVerbosity(t *testing.T) {
	t.Setenv("VARLDA_VERBOSITY", "chatty")
	_, err := ConfigFromEnv()
	assert.Error(t, err)
}

func TestVerbosity_RoundTrip(t *testing.T) {
	tests := []struct {
		text string
		want Verbosity
	}{
		{"silent", Silent},
		{"", Silent},
		{"per_iteration", PerIteration},
		{"PerIteration", PerIteration},
		{"final-only", FinalOnly},
		{"FINAL_ONLY", FinalOnly},
	}
	for _, tt := range tests {
		var v Verbosity
		require.NoError(t, v.UnmarshalText([]byte(tt.text)), tt.text)
		assert.Equal(t, tt.want, v, tt.text)
	}

	var v Verbosity
	assert.Error(t, v.UnmarshalText([]byte("loud")))

	assert.Equal(t, "silent", Silent.String())
	assert.Equal(t, "per_iteration", PerIteration.String())
	assert.Equal(t, "final_only", FinalOnly.String())
}
