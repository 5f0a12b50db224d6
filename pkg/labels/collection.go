package labels

// Kind identifies the shape held by a Collection.
type Kind int

const (
	// KindNone is an unsupported or absent shape.
	KindNone Kind = iota
	// KindList is an ordered list of labels.
	KindList
	// KindTable is a table whose column labels are reconciled.
	KindTable
)

// String returns the string representation of a kind
func (k Kind) String() string {
	switch k {
	case KindList:
		return "list"
	case KindTable:
		return "table"
	default:
		return "none"
	}
}

// Labeler is implemented by anything that exposes an ordered set of labels.
// It is accepted wherever a reference collection is expected.
type Labeler interface {
	Labels() []string
}

// Collection is a tagged variant over an ordered label list and a labeled table.
// The zero value is a KindNone collection.
type Collection struct {
	kind  Kind
	list  []string
	table *Table
}

// FromString wraps a single label into a one-element list.
func FromString(label string) Collection {
	return Collection{kind: KindList, list: []string{label}}
}

// FromList wraps an ordered list of labels. The slice is not copied.
func FromList(labels []string) Collection {
	if labels == nil {
		labels = []string{}
	}
	return Collection{kind: KindList, list: labels}
}

// FromTuple converts a tuple-like sequence into a fresh list. Every element
// must be a string; otherwise the result is a KindNone collection.
func FromTuple(values []any) Collection {
	list, ok := tupleToList(values)
	if !ok {
		return Collection{}
	}
	return Collection{kind: KindList, list: list}
}

// FromTable wraps a table by reference. A nil table yields KindNone.
func FromTable(t *Table) Collection {
	if t == nil {
		return Collection{}
	}
	return Collection{kind: KindTable, table: t}
}

// Of normalizes any supported target shape into a Collection.
func Of(v any) Collection {
	switch x := v.(type) {
	case Collection:
		return x
	case *Collection:
		if x == nil {
			return Collection{}
		}
		return *x
	case string:
		return FromString(x)
	case []string:
		return FromList(x)
	case []any:
		return FromTuple(x)
	case *Table:
		return FromTable(x)
	default:
		return Collection{}
	}
}

// Kind returns the shape of the collection.
func (c Collection) Kind() Kind {
	return c.kind
}

// IsNone reports whether the collection holds no supported shape.
func (c Collection) IsNone() bool {
	return c.kind == KindNone
}

// List returns the labels of a list collection, or nil for other kinds.
func (c Collection) List() []string {
	if c.kind != KindList {
		return nil
	}
	return c.list
}

// Table returns the table of a table collection, or nil for other kinds.
func (c Collection) Table() *Table {
	if c.kind != KindTable {
		return nil
	}
	return c.table
}

// Labels returns the label view of the collection: the list itself or the
// table's current column labels. Column labels are read at call time.
func (c Collection) Labels() []string {
	switch c.kind {
	case KindList:
		return c.list
	case KindTable:
		return c.table.Columns()
	default:
		return nil
	}
}

// Len returns the number of labels.
func (c Collection) Len() int {
	switch c.kind {
	case KindList:
		return len(c.list)
	case KindTable:
		return c.table.Width()
	default:
		return 0
	}
}

// referenceLabels normalizes a reference into its ordered labels.
// Unsupported shapes produce no labels.
func referenceLabels(v any) []string {
	switch x := v.(type) {
	case *Collection:
		if x == nil {
			return nil
		}
		return x.Labels()
	case Labeler:
		return x.Labels()
	case []string:
		return x
	case []any:
		list, _ := tupleToList(x)
		return list
	case string:
		return []string{x}
	default:
		return nil
	}
}

func tupleToList(values []any) ([]string, bool) {
	list := make([]string, 0, len(values))
	for _, v := range values {
		s, ok := v.(string)
		if !ok {
			return nil, false
		}
		list = append(list, s)
	}
	return list, true
}
