package keyword

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadStopwords(t *testing.T) {
	t.Run("embedded", func(t *testing.T) {
		sw, err := LoadStopwords("")
		require.NoError(t, err)
		assert.Greater(t, len(sw), 50)
		assert.Contains(t, sw, "những")
		assert.NotContains(t, sw, "# common vietnamese function words, one per line")
	})

	t.Run("from file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "stop.txt")
		require.NoError(t, os.WriteFile(path, []byte("Foo\n\n  bar  \n# comment\n"), 0o600))
		sw, err := LoadStopwords(path)
		require.NoError(t, err)
		assert.Equal(t, Stopwords{"foo": {}, "bar": {}}, sw)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadStopwords("/no/such/file.txt")
		require.Error(t, err)
	})
}

func TestStopwords_Contains(t *testing.T) {
	sw, err := ParseStopwords(strings.NewReader("những\ncủa\n"))
	require.NoError(t, err)

	assert.True(t, sw.Contains("những người"))
	assert.True(t, sw.Contains("giá CỦA vàng"))
	assert.False(t, sw.Contains("giá vàng"))
	assert.False(t, sw.Contains("nhữngngười"))
	assert.False(t, sw.Contains(""))
}
