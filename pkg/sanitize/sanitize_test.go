package sanitize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/jobboard-api/pkg/sanitize"
)

func TestRichText_EliminaScripts(t *testing.T) {
	out := sanitize.RichText(`<p>Hola</p><script>alert(1)</script>`)
	assert.Equal(t, "<p>Hola</p>", out)
}

func TestRichText_ConservaListas(t *testing.T) {
	in := "<ul><li>Go</li><li>SQL</li></ul>"
	assert.Equal(t, in, sanitize.RichText(in))
}

func TestPlainText_QuitaMarcado(t *testing.T) {
	assert.Equal(t, "Senior Backend Engineer", sanitize.PlainText("  <b>Senior</b> Backend Engineer "))
}

func TestPlainText_NoEscapaEntidades(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"R&D Engineer", "R&D Engineer"},
		{"O'Reilly", "O'Reilly"},
		{`São Paulo & "Rio"`, `São Paulo & "Rio"`},
		{"<i>R&amp;D</i> Lead", "R&D Lead"},
		{"Go <script>alert(1)</script>Dev", "Go Dev"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, sanitize.PlainText(tc.in), tc.in)
	}
}
