package fixtures

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/labelkit/internal/cmd/application"
	"github.com/agentstation/labelkit/pkg/constants"
	"github.com/agentstation/labelkit/pkg/errors"
)

const workDir = "/work"

func newApp(t *testing.T, format string) *application.Mock {
	t.Helper()
	app := &application.Mock{
		OutputFormatFunc: func() string { return format },
		FixtureDirFunc:   func() string { return workDir },
	}
	require.NoError(t, app.Fs().MkdirAll(workDir, constants.DirPermissions))
	return app
}

func run(t *testing.T, app AppContext, args ...string) (string, error) {
	t.Helper()
	cmd := NewCommand(app)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestMarkStatusUnmark(t *testing.T) {
	app := newApp(t, "json")

	out, err := run(t, app, "mark")
	require.NoError(t, err)
	assert.Equal(t, "Marked /work\n", out)

	out, err = run(t, app, "status")
	require.NoError(t, err)
	var status Status
	require.NoError(t, json.Unmarshal([]byte(out), &status))
	assert.Equal(t, Status{Path: workDir, Exists: true, Directory: true, Marked: true, Entries: 1}, status)

	_, err = run(t, app, "unmark", workDir)
	require.NoError(t, err)

	exists, err := afero.Exists(app.Fs(), filepath.Join(workDir, constants.MarkerFileName))
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestStatusMissingDirectory(t *testing.T) {
	app := newApp(t, "json")

	out, err := run(t, app, "status", "/absent")
	require.NoError(t, err)
	var status Status
	require.NoError(t, json.Unmarshal([]byte(out), &status))
	assert.False(t, status.Exists)
	assert.False(t, status.Marked)
}

// deniedFs fails every Stat with a permission error.
type deniedFs struct {
	afero.Fs
}

func (deniedFs) Stat(name string) (os.FileInfo, error) {
	return nil, &os.PathError{Op: "stat", Path: name, Err: os.ErrPermission}
}

func TestStatusStatFailure(t *testing.T) {
	app := &application.Mock{
		OutputFormatFunc: func() string { return "json" },
		FixtureDirFunc:   func() string { return workDir },
		FsFunc:           func() afero.Fs { return deniedFs{afero.NewMemMapFs()} },
	}

	out, err := run(t, app, "status")
	require.Error(t, err)
	assert.Empty(t, out)

	var ioErr *errors.IOError
	require.ErrorAs(t, err, &ioErr)
	assert.Equal(t, "stat", ioErr.Operation)
	assert.ErrorIs(t, err, os.ErrPermission)
}

func TestCreateRequiresMarker(t *testing.T) {
	app := newApp(t, "table")

	_, err := run(t, app, "create")
	require.Error(t, err)
	assert.True(t, errors.IsUnsafe(err))
}

func TestCreatePlainFiles(t *testing.T) {
	app := newApp(t, "json")
	_, err := run(t, app, "mark")
	require.NoError(t, err)

	out, err := run(t, app, "create", "--multiple", "--count", "2", "--ext", "txt", "--lines", "0")
	require.NoError(t, err)

	var created Created
	require.NoError(t, json.Unmarshal([]byte(out), &created))
	assert.Equal(t, []string{
		filepath.Join(workDir, "demofile1.txt"),
		filepath.Join(workDir, "demofile2.txt"),
	}, created.Files)

	data, err := afero.ReadFile(app.Fs(), created.Files[0])
	require.NoError(t, err)
	assert.Equal(t, "file header\n\nfile line 0", string(data))
}

func TestCreateCSVAndShow(t *testing.T) {
	app := newApp(t, "table")
	_, err := run(t, app, "mark")
	require.NoError(t, err)

	out, err := run(t, app, "create", "--csv", "--columns", "1", "--lines", "2")
	require.NoError(t, err)
	assert.Equal(t, "Created /work/demofile0.csv\n", out)

	out, err = run(t, app, "show")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "col0,col1", lines[0])
}

func TestShowIndexedFile(t *testing.T) {
	app := newApp(t, "json")
	_, err := run(t, app, "mark")
	require.NoError(t, err)
	_, err = run(t, app, "create", "--multiple", "--count", "2", "--ext", "txt", "--lines", "0", "--header", "second")
	require.NoError(t, err)

	out, err := run(t, app, "show", "--index", "2", "--ext", "txt")
	require.NoError(t, err)
	assert.Equal(t, "second\n\nfile line 0\n", out)

	_, err = run(t, app, "show", "--index", "3", "--ext", "txt")
	assert.True(t, errors.IsNotFound(err))
}

func TestClear(t *testing.T) {
	app := newApp(t, "table")
	_, err := run(t, app, "mark")
	require.NoError(t, err)
	_, err = run(t, app, "create", "--multiple", "--count", "3")
	require.NoError(t, err)

	out, err := run(t, app, "clear")
	require.NoError(t, err)
	assert.Equal(t, "Cleared /work\n", out)

	entries, err := afero.ReadDir(app.Fs(), workDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, constants.MarkerFileName, entries[0].Name())
}

func TestClearUnmarked(t *testing.T) {
	app := newApp(t, "table")
	require.NoError(t, afero.WriteFile(app.Fs(), filepath.Join(workDir, "keep"), []byte("x"), constants.FilePermissions))

	_, err := run(t, app, "clear")
	assert.True(t, errors.IsUnsafe(err))

	exists, err := afero.Exists(app.Fs(), filepath.Join(workDir, "keep"))
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestCreateOnFile(t *testing.T) {
	app := newApp(t, "table")
	file := filepath.Join(workDir, "file.txt")
	require.NoError(t, afero.WriteFile(app.Fs(), file, []byte("x"), constants.FilePermissions))

	_, err := run(t, app, "create", file)
	assert.True(t, errors.IsNotDirectory(err))
}
