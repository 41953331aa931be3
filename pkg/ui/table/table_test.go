package table_test

import (
	"strings"
	"testing"

	// Packages
	lipgloss "github.com/charmbracelet/lipgloss"
	table "github.com/mutablelogic/go-consulta/pkg/ui/table"
	assert "github.com/stretchr/testify/assert"
)

type rows [][]any

func (r rows) Header() []string { return []string{"Key", "Value"} }
func (r rows) Len() int         { return len(r) }
func (r rows) Row(i int) []any  { return r[i] }

func Test_table_001(t *testing.T) {
	assert := assert.New(t)
	out := table.RenderWidth(rows{{"name", "consulta"}, nil, {"empty", ""}}, 0)
	assert.Contains(out, "Key")
	assert.Contains(out, "consulta")
	assert.Contains(out, "-")
	assert.Contains(out, "empty")
}

func Test_table_002(t *testing.T) {
	// Wide tables are wrapped to the given width
	assert := assert.New(t)
	long := strings.Repeat("word ", 40)
	out := table.RenderWidth(rows{{"text", long}}, 40)
	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(lipgloss.Width(line), 40)
	}
}

func Test_table_003(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("-", table.FormatCell(nil))
	assert.Equal("-", table.FormatCell("  "))
	assert.Equal("42", table.FormatCell(42))
}
