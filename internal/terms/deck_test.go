package terms

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"cards/02-data.md":    {Data: []byte("# Your data\nWe keep *little*.")},
		"cards/01-welcome.md": {Data: []byte("# Welcome\n<script>alert(1)</script>")},
		"cards/03-end.md":     {Data: []byte("Thanks.")},
		"cards/readme.txt":    {Data: []byte("ignored")},
	}
}

func TestLoadOrdersByName(t *testing.T) {
	d, err := Load(testFS(), "cards")
	require.NoError(t, err)
	require.Equal(t, 3, d.Len())

	assert.Equal(t, "01-welcome", d.At(0).Card.Name)
	assert.Equal(t, "02-data", d.At(1).Card.Name)
	assert.Contains(t, string(d.At(1).Card.Body), "<em>little</em>")
}

func TestLoadEscapesRawHTML(t *testing.T) {
	d, err := Load(testFS(), "cards")
	require.NoError(t, err)
	assert.NotContains(t, string(d.At(0).Card.Body), "<script>")
}

func TestLoadEmpty(t *testing.T) {
	_, err := Load(fstest.MapFS{}, "cards")
	assert.Error(t, err)
}

func TestAtClampsAndLabels(t *testing.T) {
	d, err := Load(testFS(), "cards")
	require.NoError(t, err)

	first := d.At(-5)
	assert.Equal(t, 0, first.Index)
	assert.Equal(t, "1 / 3", first.Step)
	assert.False(t, first.HasPrev)
	assert.True(t, first.HasNext)
	assert.Equal(t, 2, first.Next)

	last := d.At(99)
	assert.Equal(t, 2, last.Index)
	assert.Equal(t, "3 / 3", last.Step)
	assert.True(t, last.HasPrev)
	assert.False(t, last.HasNext)
	assert.Equal(t, 2, last.Prev)
}
