package labels_test

import (
	"fmt"
	"os"

	"github.com/agentstation/labelkit/pkg/labels"
)

func Example() {
	r := labels.New([]string{"tEste", "abilidebob"})
	out := r.Correct([]string{"Teste", "abilidebob"})

	fmt.Println(out.List())
	fmt.Println(r.Mapping())

	// Output:
	// [Teste abilidebob]
	// map[tEste:Teste]
}

func Example_table() {
	table := labels.MustTable(
		labels.Column{Label: "tEste", Values: []any{1, 2, 3}},
		labels.Column{Label: "abilidebob", Values: []any{4, 5, 6}},
	)

	labels.New(table).Correct([]any{"TestE", "AbiliDEbob"})

	_ = table.WriteCSV(os.Stdout)

	// Output:
	// TestE,AbiliDEbob
	// 1,4
	// 2,5
	// 3,6
}

func Example_copy() {
	table := labels.MustTable(labels.Column{Label: "name", Values: []any{"ann"}})

	out := labels.New(table, labels.WithRenameMode(labels.RenameCopy)).Correct([]string{"NAME"})

	fmt.Println(table.Columns(), out.Table().Columns())

	// Output: [name] [NAME]
}
