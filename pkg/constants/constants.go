// Package constants provides shared constants used throughout the labelkit codebase.
// This includes the fixture marker name, file permissions and the defaults used
// when scaffolding disposable test files.
package constants

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Fixture constants
const (
	// MarkerFileName is the zero-byte sentinel that opts a directory into
	// destructive test operations. It must sit at the top level of the directory.
	MarkerFileName = "testmarker"

	// FixtureBaseName is the base name of generated fixture files (demofile0.csv, demofile1.csv, ...)
	FixtureBaseName = "demofile"

	// DefaultExtension is the extension used for fixture files
	DefaultExtension = "csv"

	// DefaultHeader is the first line written to a plain fixture file
	DefaultHeader = "file header\n"

	// DefaultLinePrefix prefixes every generated fixture line
	DefaultLinePrefix = "file line "

	// DefaultLineNumber is the highest line index generated (inclusive)
	DefaultLineNumber = 1

	// DefaultColumnNumber is the highest column index of a CSV fixture (inclusive)
	DefaultColumnNumber = 3

	// MinCSVValue and MaxCSVValue bound the random integers of CSV fixtures (inclusive)
	MinCSVValue = 1
	MaxCSVValue = 20
)

// Table constants
const (
	// NullCell is the cell text that is read and written as a missing value
	NullCell = "[NULL]"

	// ReportPreviewSize is the number of labels shown in a reconciler report
	ReportPreviewSize = 6
)

// Path constants
const (
	// ConfigFileName is the base name of the optional config file in $HOME or the working directory
	ConfigFileName = ".labelkit"

	// EnvPrefix is the prefix of labelkit environment variables (LABELKIT_FIXTURE_DIR, ...)
	EnvPrefix = "LABELKIT"
)
