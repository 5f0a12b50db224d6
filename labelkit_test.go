package labelkit

import (
	"context"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/labelkit/pkg/fixtures"
	"github.com/agentstation/labelkit/pkg/labels"
	"github.com/agentstation/labelkit/pkg/logging"
)

func TestCorrect(t *testing.T) {
	got := Correct([]string{"tEste", "abilidebob"}, []string{"Teste", "abilidebob"})
	assert.Equal(t, labels.KindList, got.Kind())
	assert.Equal(t, []string{"Teste", "abilidebob"}, got.List())
}

func TestCorrectTable(t *testing.T) {
	tbl := labels.MustTable(
		labels.Column{Label: "tEste", Values: []any{1, 2, 3}},
		labels.Column{Label: "abilidebob", Values: []any{4, 5, 6}},
	)

	got := Correct(tbl, []any{"TestE", "AbiliDEbob"})
	require.Equal(t, labels.KindTable, got.Kind())
	assert.Equal(t, []string{"TestE", "AbiliDEbob"}, got.Table().Columns())

	values, ok := got.Table().Column("TestE")
	require.True(t, ok)
	assert.Equal(t, []any{1, 2, 3}, values)
}

func TestCorrectUnsupportedTarget(t *testing.T) {
	assert.True(t, Correct(42, []string{"a"}).IsNone())
}

func TestCorrectContextUsesLogger(t *testing.T) {
	tl := logging.NewTestLogger(t)
	ctx := logging.WithLogger(context.Background(), tl.Logger)

	got := CorrectContext(ctx, []string{"name"}, []string{"NAME"}, labels.WithFolding(labels.FoldUnicode))
	assert.Equal(t, []string{"NAME"}, got.List())
}

func TestBuildMapping(t *testing.T) {
	m := BuildMapping([]string{"tEste", "x"}, []string{"TestE", "nfnfuewinfw", "wedwqe"})
	assert.Equal(t, labels.Mapping{"tEste": "TestE"}, m)
}

func TestFixtures(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/area", 0o755))
	require.NoError(t, fixtures.Mark(fs, "/area"))

	m := Fixtures("/area", fixtures.WithFs(fs), fixtures.WithLogger(logging.NewNopLogger()))
	assert.True(t, m.Create())

	c := CSVFixtures("/area", fixtures.WithManagerOptions(fixtures.WithFs(fs), fixtures.WithLogger(logging.NewNopLogger())))
	assert.True(t, c.CreateCSV())
	assert.True(t, c.Clear())
}
