// Package labelkit corrects the spelling of labels against a reference and
// manages disposable test fixtures.
//
// A target is either an ordered list of labels or a table whose column
// labels are corrected. Every target label that equals a reference label when
// both are case-folded takes the reference spelling; everything else is left
// alone, and the order and number of labels never change.
//
//	corrected := labelkit.Correct([]string{"tEste", "abilidebob"}, []string{"Teste"})
//	fmt.Println(corrected.List()) // [Teste abilidebob]
//
// The reconciler itself lives in pkg/labels and the marker-guarded fixture
// manager in pkg/fixtures; this package offers one-call helpers over both.
package labelkit

import (
	"context"

	"github.com/agentstation/labelkit/pkg/fixtures"
	"github.com/agentstation/labelkit/pkg/labels"
)

// Correct reconciles target against reference and returns the corrected
// collection. Unsupported target shapes yield a KindNone collection.
func Correct(target, reference any, opts ...labels.Option) labels.Collection {
	return labels.New(target, opts...).Correct(reference)
}

// CorrectContext is Correct with a context that carries the logger.
func CorrectContext(ctx context.Context, target, reference any, opts ...labels.Option) labels.Collection {
	return labels.New(target, opts...).CorrectContext(ctx, reference)
}

// BuildMapping returns the renames Correct would apply, without applying them.
func BuildMapping(target, reference any, opts ...labels.Option) labels.Mapping {
	return labels.New(target, opts...).BuildMapping(reference)
}

// Fixtures returns a fixture manager for a marked directory.
func Fixtures(dir string, opts ...fixtures.Option) *fixtures.Manager {
	return fixtures.New(dir, opts...)
}

// CSVFixtures returns a CSV fixture manager for a marked directory.
func CSVFixtures(dir string, opts ...fixtures.CSVOption) *fixtures.CSVManager {
	return fixtures.NewCSV(dir, opts...)
}
