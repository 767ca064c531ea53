package ui

import (
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	m.Run()
}

func TestTableColumnsIDFirstThenAlphabetical(t *testing.T) {
	items := []any{
		map[string]any{"name": "Cedric", "id": 1, "role": "admin"},
		map[string]any{"id": 2, "name": "Ada"},
	}

	var sb strings.Builder
	NewTable(&sb, items).Render()
	out := sb.String()

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Regexp(t, `^id\s+name\s+role`, lines[0])
	assert.Contains(t, out, "Cedric")
	assert.Contains(t, out, "Ada")
}

func TestTableMissingValuesRenderEmpty(t *testing.T) {
	items := []any{
		map[string]any{"id": 1, "name": "Cedric"},
		map[string]any{"id": 2},
	}

	var sb strings.Builder
	NewTable(&sb, items).Render()

	lines := strings.Split(strings.TrimSpace(sb.String()), "\n")
	// header, separator, two rows
	assert.Len(t, lines, 4)
	assert.Regexp(t, `^2\s*$`, lines[3])
}

func TestTableScalarCollection(t *testing.T) {
	var sb strings.Builder
	NewTable(&sb, []any{"a", "b"}).Render()

	out := sb.String()
	assert.Contains(t, out, "value")
	assert.Contains(t, out, "a")
	assert.Contains(t, out, "b")
}

func TestTableEmptyCollection(t *testing.T) {
	var sb strings.Builder
	NewTable(&sb, nil).Render()
	assert.Empty(t, sb.String())
}
