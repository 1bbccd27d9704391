// internal/synonyms/load_test.go
package synonyms

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeOverlay(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "synonyms.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeOverlay(t, "hg38: GRCh38\n\"GRCh38.p14\": GRCh38\nB37: GRCh37\n")
	got, err := Load(path)
	require.NoError(t, err)

	want := map[string]string{
		"hg38":       "GRCh38",
		"GRCh38.p14": "GRCh38",
		"B37":        "GRCh37",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("overlay mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadEmptyFile(t *testing.T) {
	got, err := Load(writeOverlay(t, ""))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestLoadRejectsEmptyValue(t *testing.T) {
	_, err := Load(writeOverlay(t, "hg38: \"\"\n"))
	assert.Error(t, err)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	_, err := Load(writeOverlay(t, "hg38: [not, a, string]\n"))
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
