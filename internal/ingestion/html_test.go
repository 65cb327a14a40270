package ingestion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTMLToText_BlocksBecomeLines(t *testing.T) {
	html := `<html><head><style>p { color: red; }</style></head><body>
		<h1>Sara Ahmed</h1>
		<p>Python &amp; SQL</p>
		<script>alert("x")</script>
		<ul><li>AWS</li><li>Docker</li></ul>
	</body></html>`

	text, err := HTMLToText(html)
	require.NoError(t, err)
	assert.Equal(t, "Sara Ahmed\nPython & SQL\nAWS\nDocker", text)
}

func TestHTMLToText_StripsLinksAndAttributes(t *testing.T) {
	text, err := HTMLToText(`<p class="x" onclick="evil()">See <a href="javascript:alert(1)">profile</a></p>`)
	require.NoError(t, err)

	assert.Equal(t, "See profile", text)
	assert.NotContains(t, text, "javascript")
}

func TestHTMLToText_PlainText(t *testing.T) {
	text, err := HTMLToText("Python, JavaScript, AWS")
	require.NoError(t, err)
	assert.Equal(t, "Python, JavaScript, AWS", text)
}

func TestHTMLToText_Empty(t *testing.T) {
	text, err := HTMLToText("   ")
	require.NoError(t, err)
	assert.Empty(t, text)
}
