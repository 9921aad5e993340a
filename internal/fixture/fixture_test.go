package fixture_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prettyjs/jsfmt/internal/fixture"
)

func TestParseThreeSections(t *testing.T) {
	t.Parallel()

	raw := "{\"semicolons\": false}\n---\nlet x = 1\n---\nlet x = 1\n"

	c, err := fixture.Parse(raw)
	require.NoError(t, err)

	assert.Equal(t, "let x = 1", c.Input)
	assert.Equal(t, "let x = 1", c.Expected)
	assert.False(t, c.Options.Semicolons)
}

func TestParseEmptyOptionsUsesDefault(t *testing.T) {
	t.Parallel()

	raw := "\n---\nconst a = 1;\n---\nconst a = 1;\n"

	c, err := fixture.Parse(raw)
	require.NoError(t, err)

	assert.True(t, c.Options.Semicolons)
	assert.Equal(t, 80, c.Options.MaxLineLength)
}

func TestParseNormalizesCRLF(t *testing.T) {
	t.Parallel()

	raw := "{}\r\n---\r\na\r\n---\r\na\r\n"

	c, err := fixture.Parse(raw)
	require.NoError(t, err)

	assert.Equal(t, "a", c.Input)
	assert.Equal(t, "a", c.Expected)
}

func TestParseWrongSectionCountErrors(t *testing.T) {
	t.Parallel()

	_, err := fixture.Parse("{}\n---\nonly two sections\n")
	require.Error(t, err)
}

func TestLoadReadsFileFromDisk(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "sample.fixture")

	raw := "{}\n---\nlet x=1;\n---\nlet x = 1;\n"
	require.NoError(t, writeFile(path, raw))

	c, err := fixture.Load(path)
	require.NoError(t, err)

	assert.Equal(t, path, c.Path)
	assert.Equal(t, "let x=1;", c.Input)
	assert.Equal(t, "let x = 1;", c.Expected)
}

func TestLoadGlobLoadsAllMatches(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	raw := "{}\n---\na\n---\na\n"
	require.NoError(t, writeFile(filepath.Join(dir, "one.fixture"), raw))
	require.NoError(t, writeFile(filepath.Join(dir, "two.fixture"), raw))

	cases, err := fixture.LoadGlob(filepath.Join(dir, "*.fixture"))
	require.NoError(t, err)
	assert.Len(t, cases, 2)
}

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0o644)
}
