package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRendersMarkdown(t *testing.T) {
	r, err := New(40)
	require.NoError(t, err)
	assert.Equal(t, 40, r.Width())

	out, err := r.Render("# Title\n\nbody text")
	require.NoError(t, err)
	assert.Contains(t, out, "Title")
	assert.Contains(t, out, "body text")
}

func TestStyleOverridesAcceptedByGlamour(t *testing.T) {
	// New fails if the palette overrides are not a valid glamour style;
	// constructing a renderer is the parse check.
	_, err := New(20)
	require.NoError(t, err)
}
