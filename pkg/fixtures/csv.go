package fixtures

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/agentstation/labelkit/pkg/constants"
)

// CSVManager creates CSV fixtures filled with small random integers.
type CSVManager struct {
	*Manager
	columns int
	intN    func(n int) int
}

// CSVOption configures a CSVManager.
type CSVOption func(*csvSettings)

type csvSettings struct {
	columns int
	rnd     *rand.Rand
	opts    []Option
}

// WithColumnNumber sets the index of the last column, so n=3 yields col0..col3.
func WithColumnNumber(n int) CSVOption {
	return func(s *csvSettings) {
		if n >= 0 {
			s.columns = n
		}
	}
}

// WithRand sets the random source for cell values.
func WithRand(r *rand.Rand) CSVOption {
	return func(s *csvSettings) {
		s.rnd = r
	}
}

// WithManagerOptions forwards options to the underlying Manager.
func WithManagerOptions(opts ...Option) CSVOption {
	return func(s *csvSettings) {
		s.opts = append(s.opts, opts...)
	}
}

// NewCSV returns a CSV fixture manager for the directory at path.
func NewCSV(path string, opts ...CSVOption) *CSVManager {
	s := &csvSettings{columns: constants.DefaultColumnNumber}
	for _, opt := range opts {
		opt(s)
	}

	managerOpts := append([]Option{WithExtension("csv")}, s.opts...)
	c := &CSVManager{
		Manager: New(path, managerOpts...),
		columns: s.columns,
		intN:    rand.IntN,
	}
	if s.rnd != nil {
		c.intN = s.rnd.IntN
	}
	return c
}

// Header returns the CSV header row.
func (c *CSVManager) Header() string {
	names := make([]string, 0, c.columns+1)
	for i := 0; i <= c.columns; i++ {
		names = append(names, fmt.Sprintf("col%d", i))
	}
	return strings.Join(names, ",")
}

// Rows generates lineNumber+1 rows of random values.
func (c *CSVManager) Rows() []string {
	rows := make([]string, 0, c.lineNumber+1)
	for range c.lineNumber + 1 {
		cells := make([]string, 0, c.columns+1)
		for range c.columns + 1 {
			v := constants.MinCSVValue + c.intN(constants.MaxCSVValue-constants.MinCSVValue+1)
			cells = append(cells, strconv.Itoa(v))
		}
		rows = append(rows, strings.Join(cells, ","))
	}
	return rows
}

// CreateCSVFile regenerates the header and rows, then writes the file.
func (c *CSVManager) CreateCSVFile() (string, error) {
	c.header = c.Header()
	c.lines = c.Rows()
	return c.CreateFile()
}

// CreateCSV writes a fresh CSV fixture and reports whether it succeeded.
func (c *CSVManager) CreateCSV() bool {
	name, err := c.CreateCSVFile()
	if err != nil {
		c.logGuard(err, "create")
		return false
	}
	c.logger.Info().Str("file", name).Int("columns", c.columns+1).Msg("CSV fixture created")
	return true
}
