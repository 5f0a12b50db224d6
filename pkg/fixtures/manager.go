package fixtures

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/agentstation/labelkit/pkg/constants"
	"github.com/agentstation/labelkit/pkg/errors"
	"github.com/agentstation/labelkit/pkg/logging"
)

// Manager creates and wipes fixture files inside a single marked directory.
type Manager struct {
	fs     afero.Fs
	path   string
	logger *zerolog.Logger

	extension  string
	multiple   bool
	header     string
	linePrefix string
	lineNumber int
	lines      []string

	counter int
	current string
}

// Option configures a Manager.
type Option func(*Manager)

// WithFs sets the filesystem the manager operates on.
func WithFs(fs afero.Fs) Option {
	return func(m *Manager) {
		if fs != nil {
			m.fs = fs
		}
	}
}

// WithExtension sets the fixture file extension, with or without a leading dot.
func WithExtension(ext string) Option {
	return func(m *Manager) {
		m.extension = strings.TrimPrefix(ext, ".")
	}
}

// WithMultipleFiles makes every create produce a new numbered file instead of
// overwriting demofile0.
func WithMultipleFiles(multiple bool) Option {
	return func(m *Manager) {
		m.multiple = multiple
	}
}

// WithIndex selects demofile<n> as the current file, so Current and Show
// address it and multiple-file creation continues at n+1.
func WithIndex(n int) Option {
	return func(m *Manager) {
		if n >= 0 {
			m.counter = n
		}
	}
}

// WithHeader sets the text written before the first line.
func WithHeader(header string) Option {
	return func(m *Manager) {
		m.header = header
	}
}

// WithLinePrefix sets the prefix of generated lines.
func WithLinePrefix(prefix string) Option {
	return func(m *Manager) {
		m.linePrefix = prefix
	}
}

// WithLineNumber sets the index of the last generated line.
func WithLineNumber(n int) Option {
	return func(m *Manager) {
		if n >= 0 {
			m.lineNumber = n
		}
	}
}

// WithLines replaces generated lines with explicit content.
func WithLines(lines ...string) Option {
	return func(m *Manager) {
		m.lines = lines
	}
}

// WithLogger sets the logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(m *Manager) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// New returns a manager for the directory at path. An empty path means the
// current working directory. The guard is evaluated and logged here, and
// again before every operation that touches the filesystem.
func New(path string, opts ...Option) *Manager {
	m := &Manager{
		fs:         afero.NewOsFs(),
		path:       path,
		logger:     logging.Default(),
		extension:  constants.DefaultExtension,
		header:     constants.DefaultHeader,
		linePrefix: constants.DefaultLinePrefix,
		lineNumber: constants.DefaultLineNumber,
	}
	for _, opt := range opts {
		opt(m)
	}

	if m.path == "" {
		if wd, err := os.Getwd(); err == nil {
			m.path = wd
		}
	}
	m.path = filepath.Clean(m.path)

	if err := m.Check(); err != nil {
		m.logGuard(err, "init")
	} else {
		m.logger.Debug().Str("path", m.path).Msg("Fixture directory is marked")
	}
	return m
}

// Path returns the managed directory.
func (m *Manager) Path() string {
	return m.path
}

// Current returns the path of the last fixture file written, or the file the
// next create would write when nothing was created yet.
func (m *Manager) Current() string {
	if m.current != "" {
		return m.current
	}
	return m.fileName()
}

// Check verifies that the managed directory exists, is a directory and
// carries the marker.
func (m *Manager) Check() error {
	return Guard(m.fs, m.path, "")
}

// CreateFile writes the fixture file and returns its path.
func (m *Manager) CreateFile() (string, error) {
	if err := Guard(m.fs, m.path, "create"); err != nil {
		return "", err
	}

	if m.multiple {
		m.counter++
	}
	name := m.fileName()

	if err := afero.WriteFile(m.fs, name, []byte(m.content()), constants.FilePermissions); err != nil {
		return "", errors.WrapIO("write", name, err)
	}
	m.current = name
	return name, nil
}

// Create writes the fixture file and reports whether it succeeded.
func (m *Manager) Create() bool {
	name, err := m.CreateFile()
	if err != nil {
		m.logGuard(err, "create")
		return false
	}
	m.logger.Info().Str("file", name).Msg("Fixture file created")
	return true
}

// ClearDir removes every entry of the managed directory except the marker.
// Entries that cannot be removed are logged and skipped.
func (m *Manager) ClearDir() error {
	if err := Guard(m.fs, m.path, "clear"); err != nil {
		return err
	}

	entries, err := afero.ReadDir(m.fs, m.path)
	if err != nil {
		return errors.WrapIO("read", m.path, err)
	}

	removed := 0
	for _, entry := range entries {
		if entry.Name() == constants.MarkerFileName {
			continue
		}
		target := filepath.Join(m.path, entry.Name())
		if err := m.fs.RemoveAll(target); err != nil {
			m.logger.Warn().Err(err).Str("path", target).Msg("Failed to remove fixture entry")
			continue
		}
		removed++
	}

	m.counter = 0
	m.current = ""
	m.logger.Info().Str("path", m.path).Int("removed", removed).Msg("Fixture directory cleared")
	return nil
}

// Clear wipes the managed directory and reports whether the guard passed.
func (m *Manager) Clear() bool {
	if err := m.ClearDir(); err != nil {
		m.logGuard(err, "clear")
		return false
	}
	return true
}

// Show copies the current fixture file to w.
func (m *Manager) Show(w io.Writer) error {
	if err := Guard(m.fs, m.path, "show"); err != nil {
		return err
	}

	name := m.Current()
	f, err := m.fs.Open(name)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.NewNotFoundError("fixture file", name)
		}
		return errors.WrapIO("open", name, err)
	}
	defer func() { _ = f.Close() }()

	if _, err := io.Copy(w, f); err != nil {
		return errors.WrapIO("read", name, err)
	}
	return nil
}

// Lines returns the lines the next create writes.
func (m *Manager) Lines() []string {
	if m.lines != nil {
		return m.lines
	}
	lines := make([]string, 0, m.lineNumber+1)
	for i := 0; i <= m.lineNumber; i++ {
		lines = append(lines, fmt.Sprintf("%s%d", m.linePrefix, i))
	}
	return lines
}

func (m *Manager) fileName() string {
	name := fmt.Sprintf("%s%d", constants.FixtureBaseName, m.counter)
	if m.extension != "" {
		name += "." + m.extension
	}
	return filepath.Join(m.path, name)
}

func (m *Manager) content() string {
	var b strings.Builder
	b.WriteString(m.header)
	for _, line := range m.Lines() {
		b.WriteString("\n")
		b.WriteString(line)
	}
	return b.String()
}

func (m *Manager) logGuard(err error, operation string) {
	event := m.logger.Error()
	if errors.IsNotFound(err) {
		event = m.logger.Warn()
	}
	event.Err(err).Str("path", m.path).Str("operation", operation).Msg("Fixture directory rejected")
}
