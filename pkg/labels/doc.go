// Package labels reconciles the casing of labels against a reference.
//
// A target is either a flat list of strings or the column labels of a Table.
// Given a reference collection, a Reconciler finds target labels that are
// equal to some reference label under case-insensitive comparison but differ
// in exact spelling, builds a Mapping from the target spelling to the
// reference spelling, and applies it:
//
//	r := labels.New([]string{"tEste", "abilidebob"})
//	out := r.Correct([]string{"Teste", "abilidebob"})
//	out.List() // [Teste abilidebob]
//
// Targets and references are accepted in several shapes (a single string, a
// []string, a tuple-like []any of strings, a *Table, a Collection or any
// Labeler). Unsupported shapes never produce an error: they degrade to "no
// correction". When several reference labels fold to the same key, the last
// one in reference order wins; this is an artifact of iteration order rather
// than a tie-break rule and callers should not depend on it.
//
// Table targets are renamed in place by default, so the table handed to New
// is the one that changes. Use WithRenameMode(RenameCopy) to leave the
// caller's table untouched and receive a renamed copy instead.
package labels
