package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/labelkit/pkg/labels"
)

type fixtureRow struct {
	FileName string `json:"file_name"`
	Lines    int    `json:"lines,omitempty"`
	Marked   bool
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", "", false},
		{"table", FormatTable, false},
		{"JSON", FormatJSON, false},
		{"yaml", FormatYAML, false},
		{"wide", "", true},
		{"xml", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDetectFormatExplicit(t *testing.T) {
	assert.Equal(t, FormatYAML, DetectFormat("YAML"))
}

func TestNewFormatter(t *testing.T) {
	assert.IsType(t, &JSONFormatter{}, NewFormatter(FormatJSON))
	assert.IsType(t, &YAMLFormatter{}, NewFormatter(FormatYAML))
	assert.IsType(t, &TableFormatter{}, NewFormatter(FormatTable))
	assert.IsType(t, &TableFormatter{}, NewFormatter(""))
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	err := NewFormatter(FormatJSON).Format(&buf, []labels.Rename{{From: "tEste", To: "Teste"}})
	require.NoError(t, err)
	assert.JSONEq(t, `[{"from":"tEste","to":"Teste"}]`, buf.String())
}

func TestYAMLFormatter(t *testing.T) {
	var buf bytes.Buffer
	err := NewFormatter(FormatYAML).Format(&buf, []labels.Rename{{From: "tEste", To: "Teste"}})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "from: tEste")
	assert.Contains(t, buf.String(), "to: Teste")
}

func TestTableFormatterData(t *testing.T) {
	var buf bytes.Buffer
	m := labels.Mapping{"tEste": "Teste"}
	require.NoError(t, NewFormatter(FormatTable).Format(&buf, MappingData(m)))

	out := buf.String()
	assert.Contains(t, strings.ToUpper(out), "FROM")
	assert.Contains(t, out, "tEste")
	assert.Contains(t, out, "Teste")
}

func TestTableFormatterStructs(t *testing.T) {
	f := &TableFormatter{}

	data := f.convertToTableData([]fixtureRow{{FileName: "demofile0.csv", Lines: 2, Marked: true}})
	require.NotNil(t, data)
	assert.Equal(t, []string{"File Name", "Lines", "Marked"}, data.Headers)
	assert.Equal(t, [][]string{{"demofile0.csv", "2", "true"}}, data.Rows)

	single := f.convertToTableData(&fixtureRow{FileName: "a"})
	require.NotNil(t, single)
	assert.Equal(t, []string{"Property", "Value"}, single.Headers)
	assert.Equal(t, []string{"File Name", "a"}, single.Rows[0])

	assert.Nil(t, f.convertToTableData(42))
}

func TestTableFormatterFallsBackToJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&TableFormatter{}).Format(&buf, map[string]int{"a": 1}))
	assert.JSONEq(t, `{"a":1}`, buf.String())
}

func TestLabelsData(t *testing.T) {
	data := LabelsData([]string{"Teste", "abilidebob"})
	assert.Equal(t, []string{"#", "Label"}, data.Headers)
	assert.Equal(t, [][]string{{"0", "Teste"}, {"1", "abilidebob"}}, data.Rows)
}

func TestTableData(t *testing.T) {
	tbl := labels.MustTable(
		labels.Column{Label: "a", Values: []any{1, nil}},
		labels.Column{Label: "b", Values: []any{"x", true}},
	)
	data := TableData(tbl)
	assert.Equal(t, []string{"a", "b"}, data.Headers)
	assert.Equal(t, [][]string{{"1", "x"}, {"[NULL]", "1"}}, data.Rows)
}
