package artifacts

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dberenbaum/diabetes/pkg/evaluation"
)

func TestWriteAndReadMetrics(t *testing.T) {
	ev := &evaluation.Eval{R2: 0.512, MAE: 41.2, MSE: 2900.5, RMSE: 53.86}
	path := filepath.Join(t.TempDir(), "metrics.yaml")

	require.NoError(t, WriteMetrics(path, ev))

	back, err := ReadMetrics(path)
	require.NoError(t, err)
	assert.Equal(t, ev, back)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	// r2 is the primary metric and leads the file.
	assert.True(t, strings.HasPrefix(string(data), "r2:"), "got: %s", data)

	// No leftover temp files from the atomic write.
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestWriteMetricsToMissingDirectory(t *testing.T) {
	ev := &evaluation.Eval{R2: 0.5}
	err := WriteMetrics(filepath.Join(t.TempDir(), "missing", "metrics.yaml"), ev)
	assert.Error(t, err)
}

func TestReadMetricsErrors(t *testing.T) {
	_, err := ReadMetrics(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "metrics.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("r2: [oops\n"), 0644))
	_, err = ReadMetrics(bad)
	assert.Error(t, err)
}
