package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeParams(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "params.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("valid file", func(t *testing.T) {
		p, err := Load(writeParams(t, "alpha: 0.1\nl1_ratio: 0.5\n"))
		require.NoError(t, err)
		assert.Equal(t, 0.1, p.Alpha)
		assert.Equal(t, 0.5, p.L1Ratio)
	})

	t.Run("integer scalars are accepted", func(t *testing.T) {
		p, err := Load(writeParams(t, "alpha: 1\nl1_ratio: 0\n"))
		require.NoError(t, err)
		assert.Equal(t, 1.0, p.Alpha)
		assert.Equal(t, 0.0, p.L1Ratio)
	})

	t.Run("unrecognized keys are ignored", func(t *testing.T) {
		p, err := Load(writeParams(t, "alpha: 0.1\nl1_ratio: 0.5\nseed: 42\n"))
		require.NoError(t, err)
		assert.Equal(t, 0.1, p.Alpha)
	})

	t.Run("missing alpha", func(t *testing.T) {
		_, err := Load(writeParams(t, "l1_ratio: 0.5\n"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrMissingKey))
		assert.Contains(t, err.Error(), "alpha")
	})

	t.Run("missing l1_ratio", func(t *testing.T) {
		_, err := Load(writeParams(t, "alpha: 0.1\n"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrMissingKey))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := Load(writeParams(t, "alpha: [0.1\n"))
		assert.Error(t, err)
	})

	t.Run("non-scalar value", func(t *testing.T) {
		_, err := Load(writeParams(t, "alpha: [0.1, 0.2]\nl1_ratio: 0.5\n"))
		assert.Error(t, err)
	})

	t.Run("negative alpha", func(t *testing.T) {
		_, err := Load(writeParams(t, "alpha: -1\nl1_ratio: 0.5\n"))
		assert.ErrorContains(t, err, "alpha")
	})

	t.Run("l1_ratio out of range", func(t *testing.T) {
		_, err := Load(writeParams(t, "alpha: 0.1\nl1_ratio: 1.5\n"))
		assert.ErrorContains(t, err, "l1_ratio")
	})
}
