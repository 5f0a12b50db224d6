package fixtures

import (
	stderrors "errors"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/agentstation/labelkit/pkg/constants"
	"github.com/agentstation/labelkit/pkg/errors"
)

// MarkerPath returns the path of the marker file inside dir.
func MarkerPath(dir string) string {
	return filepath.Join(dir, constants.MarkerFileName)
}

// IsMarked reports whether dir contains a zero-byte regular marker file.
func IsMarked(fs afero.Fs, dir string) (bool, error) {
	info, err := fs.Stat(MarkerPath(dir))
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, errors.WrapIO("stat", MarkerPath(dir), err)
	}
	return info.Mode().IsRegular() && info.Size() == 0, nil
}

// Mark creates the marker file in dir. Marking an already marked directory is
// a no-op; a non-empty file occupying the marker name is rejected.
func Mark(fs afero.Fs, dir string) error {
	if err := checkDirectory(fs, dir); err != nil {
		return err
	}

	marked, err := IsMarked(fs, dir)
	if err != nil {
		return err
	}
	if marked {
		return nil
	}

	path := MarkerPath(dir)
	if _, err := fs.Stat(path); err == nil {
		return errors.NewValidationError("marker", path, "existing "+constants.MarkerFileName+" is not an empty regular file")
	}

	f, err := fs.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, constants.FilePermissions)
	if err != nil {
		return errors.WrapIO("create", path, err)
	}
	return errors.WrapIO("close", path, f.Close())
}

// Unmark removes the marker file from dir. A missing marker is not an error.
func Unmark(fs afero.Fs, dir string) error {
	err := fs.Remove(MarkerPath(dir))
	if err != nil && !stderrors.Is(err, os.ErrNotExist) {
		return errors.WrapIO("delete", MarkerPath(dir), err)
	}
	return nil
}

// Guard returns nil when dir is an existing, marked directory.
func Guard(fs afero.Fs, dir, operation string) error {
	if err := checkDirectory(fs, dir); err != nil {
		return err
	}

	marked, err := IsMarked(fs, dir)
	if err != nil {
		return err
	}
	if !marked {
		return errors.NewSafetyError(operation, dir, constants.MarkerFileName)
	}
	return nil
}

func checkDirectory(fs afero.Fs, dir string) error {
	info, err := fs.Stat(dir)
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			return errors.NewNotFoundError("directory", dir)
		}
		return errors.WrapIO("stat", dir, err)
	}
	if !info.IsDir() {
		return errors.NewNotDirectoryError(dir)
	}
	return nil
}
