// Package fixtures creates and wipes disposable test files.
//
// Every destructive operation is confined to a directory that has been
// explicitly marked as a test area: it must contain a zero-byte regular file
// named constants.MarkerFileName ("testmarker") at its top level. Operations on
// an unmarked directory are refused with an errors.SafetyError, and a path
// that names a file instead of a directory is refused with an
// errors.NotDirectoryError. Clearing a marked directory removes everything in
// it except the marker itself.
//
// All filesystem access goes through an afero.Fs, so tests can run against
// afero.NewMemMapFs().
package fixtures
