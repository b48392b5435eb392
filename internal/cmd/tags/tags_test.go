package tags

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/open-cli-collective/ubb-cli/internal/cmd/cmdutil"
)

func newTestOptions(t *testing.T, output string) (*tagsOptions, *bytes.Buffer) {
	t.Helper()
	stdout := &bytes.Buffer{}
	return &tagsOptions{Options: &cmdutil.Options{
		ConfigPath: filepath.Join(t.TempDir(), "config.yml"),
		Output:     output,
		NoColor:    true,
		Stdout:     stdout,
		Stderr:     &bytes.Buffer{},
	}}, stdout
}

func TestRunTags_Plain(t *testing.T) {
	opts, stdout := newTestOptions(t, "plain")

	err := runTags(opts, nil)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(stdout.String(), "\n"), "\n")
	require.Len(t, lines, 11)
	assert.Equal(t, "bold\t-\tno\tno\tno\tbold, italic, color, link, image", lines[0])
	assert.Contains(t, lines, "link\turl\tyes\tno\tno\tbold, italic, color, link, image")
	assert.Contains(t, lines, "blockquote\t-\tno\tyes\tyes\tany tag")
	assert.Contains(t, lines, "ref\t-\tno\tyes\tno\ttext only")
}

func TestRunTags_Table(t *testing.T) {
	opts, stdout := newTestOptions(t, "table")

	err := runTags(opts, nil)
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "TAG")
	assert.Contains(t, stdout.String(), "LINE BREAKS")
	assert.Contains(t, stdout.String(), "blockquote")
}

func TestRunTags_ByAlias(t *testing.T) {
	opts, stdout := newTestOptions(t, "json")

	err := runTags(opts, []string{"URL"})
	require.NoError(t, err)

	var got []map[string]string
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "link", got[0]["tag"])
	assert.Equal(t, "url", got[0]["aliases"])
	assert.Equal(t, "yes", got[0]["attribute"])
}

func TestRunTags_Unknown(t *testing.T) {
	opts, _ := newTestOptions(t, "plain")

	err := runTags(opts, []string{"marquee"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown tag "marquee"`)
}
