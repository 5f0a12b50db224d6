package labels

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/agentstation/labelkit/pkg/errors"
)

// Folding selects how labels are compared case-insensitively.
type Folding int

const (
	// FoldLower compares strings.ToLower forms.
	FoldLower Folding = iota
	// FoldUnicode compares full Unicode case folds, so "straße" matches "STRASSE".
	FoldUnicode
)

// String returns the configuration name of the folding.
func (f Folding) String() string {
	if f == FoldUnicode {
		return "unicode"
	}
	return "lower"
}

// ParseFolding parses "lower" or "unicode". An empty string is FoldLower.
func ParseFolding(s string) (Folding, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "lower":
		return FoldLower, nil
	case "unicode", "fold":
		return FoldUnicode, nil
	default:
		return FoldLower, errors.NewValidationError("fold", s, "must be lower or unicode")
	}
}

// folder returns the key function for a single reconciliation pass.
// A cases.Caser keeps state, so a fresh one is built per pass.
func (f Folding) folder() func(string) string {
	if f == FoldUnicode {
		return cases.Fold().String
	}
	return strings.ToLower
}

// RenameMode selects whether table targets are renamed in place or copied first.
type RenameMode int

const (
	// RenameInPlace mutates the target table; the returned collection aliases it.
	RenameInPlace RenameMode = iota
	// RenameCopy renames a copy and leaves the target table untouched.
	RenameCopy
)

// String returns the configuration name of the mode.
func (m RenameMode) String() string {
	if m == RenameCopy {
		return "copy"
	}
	return "inplace"
}

// ParseRenameMode parses "inplace" or "copy". An empty string is RenameInPlace.
func ParseRenameMode(s string) (RenameMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "inplace", "in-place", "in_place":
		return RenameInPlace, nil
	case "copy":
		return RenameCopy, nil
	default:
		return RenameInPlace, errors.NewValidationError("rename_mode", s, "must be inplace or copy")
	}
}
