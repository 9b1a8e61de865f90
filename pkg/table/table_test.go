package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadPreservesOrder(t *testing.T) {
	lines := []string{"a,b", "c,d", "e,f"}
	tbl := Load(lines)

	assert.Equal(t, 3, tbl.Len())
	assert.Equal(t, "a,b", tbl.Row(1))
	assert.Equal(t, "c,d", tbl.Row(2))
	assert.Equal(t, "e,f", tbl.Row(3))
}

func TestLoadCopiesInput(t *testing.T) {
	lines := []string{"a,b"}
	tbl := Load(lines)

	lines[0] = "mutated"

	assert.Equal(t, "a,b", tbl.Row(1), "table should not alias caller's slice")
}

func TestLoadEmpty(t *testing.T) {
	tbl := Load(nil)
	assert.Equal(t, 0, tbl.Len())
	assert.Equal(t, "", tbl.Cell(1, 1))

	tbl = Load([]string{})
	assert.Equal(t, 0, tbl.Len())
	assert.Equal(t, "", tbl.Cell(1, 1))
}

func TestCell(t *testing.T) {
	tbl := Load([]string{
		"name,age,city",
		"a, b ,c",
		"x,y,",
		"single",
	})

	tests := []struct {
		name string
		row  int
		col  int
		want string
	}{
		{name: "first cell", row: 1, col: 1, want: "name"},
		{name: "middle cell", row: 1, col: 2, want: "age"},
		{name: "whitespace trimmed", row: 2, col: 2, want: "b"},
		{name: "trailing delimiter yields empty field", row: 3, col: 3, want: ""},
		{name: "column past field count", row: 4, col: 2, want: ""},
		{name: "row zero", row: 0, col: 1, want: ""},
		{name: "row negative", row: -1, col: 1, want: ""},
		{name: "row past end", row: 5, col: 1, want: ""},
		{name: "column zero", row: 1, col: 0, want: ""},
		{name: "column negative", row: 1, col: -3, want: ""},
		{name: "single field row", row: 4, col: 1, want: "single"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tbl.Cell(tt.row, tt.col))
		})
	}
}

func TestCellTrailingDelimiterCountsField(t *testing.T) {
	tbl := Load([]string{"a,b,"})

	// "a,b," splits into three fields; the third is empty, not out of
	// bounds, so column 3 and column 4 are distinguishable only by
	// contract, both returning "".
	assert.Equal(t, "a", tbl.Cell(1, 1))
	assert.Equal(t, "b", tbl.Cell(1, 2))
	assert.Equal(t, "", tbl.Cell(1, 3))
	assert.Equal(t, "", tbl.Cell(1, 4))
}

func TestRowOutOfRange(t *testing.T) {
	tbl := Load([]string{"a"})
	assert.Equal(t, "", tbl.Row(0))
	assert.Equal(t, "", tbl.Row(2))
}

func TestLinesReturnsCopy(t *testing.T) {
	tbl := Load([]string{"a", "b"})

	got := tbl.Lines()
	got[0] = "mutated"

	assert.Equal(t, "a", tbl.Row(1))
}

func TestSerialize(t *testing.T) {
	tests := []struct {
		name string
		rows []string
		want string
	}{
		{name: "two rows", rows: []string{"x", "y"}, want: "x\ny\n"},
		{name: "order preserved", rows: []string{"b", "a"}, want: "b\na\n"},
		{name: "empty sequence", rows: nil, want: ""},
		{name: "rows written verbatim", rows: []string{`a,"b"`}, want: "a,\"b\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Serialize(tt.rows))
		})
	}
}

func TestEscapeField(t *testing.T) {
	tests := []struct {
		name  string
		field string
		want  string
	}{
		{name: "plain passes through", field: "plain", want: "plain"},
		{name: "embedded delimiter quoted", field: "a,b", want: `"a,b"`},
		{name: "embedded quote doubled", field: `a"b`, want: `"a""b"`},
		{name: "embedded newline quoted", field: "a\nb", want: "\"a\nb\""},
		{name: "empty field unchanged", field: "", want: ""},
		{name: "only quotes", field: `""`, want: `""""""`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EscapeField(tt.field))
		})
	}
}

func TestRoundTripFirstField(t *testing.T) {
	lines := []string{"alpha,1", "beta,2", "gamma,3"}
	tbl := Load(lines)

	for i, line := range lines {
		first := tbl.Cell(i+1, 1)
		assert.Equal(t, line[:len(first)], first)
	}
}
