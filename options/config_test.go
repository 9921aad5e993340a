package options_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prettyjs/jsfmt/options"
)

func TestLoadBytesYAML(t *testing.T) {
	t.Parallel()

	doc := []byte("indent: 4\nquotes: single\nsemicolons: false\n")

	o, err := options.LoadBytes(doc, ".yaml")
	require.NoError(t, err)

	assert.Equal(t, "    ", o.Indent.Unit())
	assert.Equal(t, options.Single, o.Quotes)
	assert.False(t, o.Semicolons)
}

func TestLoadBytesJSON(t *testing.T) {
	t.Parallel()

	doc := []byte(`{"indent": "\t", "maxEmptyLines": 3}`)

	o, err := options.LoadBytes(doc, ".json")
	require.NoError(t, err)

	assert.Equal(t, "\t", o.Indent.Unit())
	assert.Equal(t, 3, o.MaxEmptyLines)
}

func TestLoadBytesUnsupportedExt(t *testing.T) {
	t.Parallel()

	_, err := options.LoadBytes([]byte("{}"), ".toml")
	require.Error(t, err)
	assert.True(t, options.IsOptionError(err))
}

func TestConfigExtAndFileName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ".yaml", options.ConfigExt("/repo/.jsfmtrc.yaml"))
	assert.Equal(t, "", options.ConfigExt("/repo/package.json"))
	assert.Equal(t, ".jsfmtrc.json", options.FileName(".json"))
}
