package output

import (
	"strconv"

	"github.com/agentstation/labelkit/pkg/labels"
)

// MappingData converts a label mapping into From/To rows sorted by source.
func MappingData(m labels.Mapping) Data {
	rows := make([][]string, 0, len(m))
	for _, e := range m.Entries() {
		rows = append(rows, []string{e.From, e.To})
	}
	return Data{
		Headers: []string{"From", "To"},
		Rows:    rows,
	}
}

// LabelsData lists labels with their position.
func LabelsData(list []string) Data {
	rows := make([][]string, 0, len(list))
	for i, l := range list {
		rows = append(rows, []string{strconv.Itoa(i), l})
	}
	return Data{
		Headers:         []string{"#", "Label"},
		Rows:            rows,
		ColumnAlignment: []Align{AlignRight, AlignLeft},
	}
}

// TableData renders a labeled table with its column labels as headers.
func TableData(t *labels.Table) Data {
	return Data{
		Headers: t.Columns(),
		Rows:    t.Records(),
	}
}
