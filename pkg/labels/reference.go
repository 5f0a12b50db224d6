package labels

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/agentstation/labelkit/pkg/errors"
)

// referenceDocument is the mapping form of a reference file.
type referenceDocument struct {
	Labels []string `yaml:"labels"`
}

// LoadReferenceFile reads reference labels from a file. CSV files contribute
// their header; anything else is parsed as YAML, either a plain sequence of
// strings or a mapping with a "labels" sequence.
func LoadReferenceFile(path string) ([]string, error) {
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		t, err := LoadTableFile(path)
		if err != nil {
			return nil, err
		}
		return t.Columns(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			return nil, errors.NewNotFoundError("file", path)
		}
		return nil, errors.WrapIO("read", path, err)
	}

	labels, err := ParseReference(data)
	if err != nil {
		var parseErr *errors.ParseError
		if stderrors.As(err, &parseErr) {
			parseErr.File = path
		}
		return nil, err
	}
	return labels, nil
}

// ParseReference parses YAML reference labels.
func ParseReference(data []byte) ([]string, error) {
	var list []string
	if err := yaml.Unmarshal(data, &list); err == nil {
		return list, nil
	}

	var doc referenceDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.NewParseError("yaml", "", "expected a list of labels or a mapping with a labels key", err)
	}
	return doc.Labels, nil
}
