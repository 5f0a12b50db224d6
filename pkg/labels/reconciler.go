package labels

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/agentstation/labelkit/pkg/constants"
	"github.com/agentstation/labelkit/pkg/logging"
)

// Reconciler corrects the casing of one target collection. It is built once
// per target and may be used with any number of references; the mapping and
// the corrected result are recomputed on every call.
type Reconciler struct {
	target  Collection
	folding Folding
	mode    RenameMode
	logger  *zerolog.Logger

	mapping   Mapping
	corrected Collection
}

// Option configures a Reconciler.
type Option func(*Reconciler)

// WithFolding sets the case-insensitive comparison.
func WithFolding(f Folding) Option {
	return func(r *Reconciler) {
		r.folding = f
	}
}

// WithRenameMode chooses between renaming table targets in place (default)
// and renaming a copy.
func WithRenameMode(m RenameMode) Option {
	return func(r *Reconciler) {
		r.mode = m
	}
}

// WithLogger sets the logger. Without it the logger comes from the context
// passed to CorrectContext.
func WithLogger(logger *zerolog.Logger) Option {
	return func(r *Reconciler) {
		r.logger = logger
	}
}

// New creates a reconciler for target. See Of for the accepted shapes; an
// unsupported target produces a reconciler whose corrections are always empty.
func New(target any, opts ...Option) *Reconciler {
	r := &Reconciler{target: Of(target)}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Target returns the normalized target.
func (r *Reconciler) Target() Collection {
	return r.target
}

// Mapping returns the mapping built by the last Correct call.
func (r *Reconciler) Mapping() Mapping {
	return r.mapping
}

// Corrected returns the result of the last Correct call.
func (r *Reconciler) Corrected() Collection {
	return r.corrected
}

// Correct applies the case corrections implied by reference.
func (r *Reconciler) Correct(reference any) Collection {
	return r.CorrectContext(context.Background(), reference)
}

// CorrectContext is Correct with a context carrying the logger.
//
// A list target yields a new list of the same length and order. A table target
// yields the renamed table; in RenameInPlace mode that is the caller's own
// table. A KindNone target yields a KindNone collection.
func (r *Reconciler) CorrectContext(ctx context.Context, reference any) Collection {
	log := r.loggerFor(ctx)

	r.mapping = r.buildMapping(log, reference)

	switch r.target.kind {
	case KindList:
		r.corrected = FromList(r.mapping.Apply(r.target.list))
	case KindTable:
		table := r.target.table
		if r.mode == RenameCopy {
			table = table.Copy()
		}
		renamed := table.Rename(r.mapping)
		log.Debug().
			Strs("columns", table.Columns()).
			Int("renamed", renamed).
			Str("mode", r.mode.String()).
			Msg("Renamed table columns")
		r.corrected = FromTable(table)
	default:
		log.Debug().Msg("Unsupported target shape, no correction applied")
		r.corrected = Collection{}
	}

	return r.corrected
}

// BuildMapping computes the mapping for reference without applying it.
func (r *Reconciler) BuildMapping(reference any) Mapping {
	return r.buildMapping(r.loggerFor(context.Background()), reference)
}

// buildMapping compares every target key with every reference label. When
// several reference labels match one key, the last one wins.
func (r *Reconciler) buildMapping(log *zerolog.Logger, reference any) Mapping {
	values := referenceLabels(reference)
	keys := r.target.Labels()
	fold := r.folding.folder()

	log.Debug().
		Strs("keys", keys).
		Strs("reference", values).
		Str("folding", r.folding.String()).
		Msg("Building mapping")

	folded := make([]string, len(values))
	for i, v := range values {
		folded[i] = fold(v)
	}

	mapping := make(Mapping)
	for _, key := range keys {
		fk := fold(key)
		for i, value := range values {
			if fk == folded[i] && key != value {
				log.Trace().Str("from", key).Str("to", value).Msg("Adding to mapping")
				mapping[key] = value
			}
		}
	}

	log.Debug().Int("entries", len(mapping)).Msg("Mapping built")
	return mapping
}

func (r *Reconciler) loggerFor(ctx context.Context) *zerolog.Logger {
	if r.logger != nil {
		return r.logger
	}
	return logging.FromContext(ctx)
}

// String reports the target's shape, size and first few labels.
func (r *Reconciler) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "type: %s\n", r.target.Kind())

	if r.target.IsNone() {
		b.WriteString("Length: Does not apply\n")
		b.WriteString("Content: Does not apply")
		return b.String()
	}

	labels := r.target.Labels()
	fmt.Fprintf(&b, "Length: %d\n", len(labels))

	preview := labels[:min(len(labels), constants.ReportPreviewSize)]
	b.WriteString("Content: " + strings.Join(preview, ", "))
	return b.String()
}
