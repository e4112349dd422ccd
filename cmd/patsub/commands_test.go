package patsub

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleTable = "Pattern\tReplacement\tFlags\nfoo\tbar\tg\na.b\t[$&]\n"

// isolate keeps config and log files inside the test's temp dir.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(dir, "state"))
	t.Setenv("PATSUB_LOG_FILE", "-")
	return dir
}

func writeTable(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "rules.tsv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

type result struct {
	code   int
	stdout string
	stderr string
}

func run(t *testing.T, stdin io.Reader, args ...string) result {
	t.Helper()
	if stdin == nil {
		stdin = strings.NewReader("")
	}
	var stdout, stderr bytes.Buffer
	code := Run(args, stdin, &stdout, &stderr)
	return result{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

func TestRootCommandStructure(t *testing.T) {
	cmd := NewRootCmd()
	cmd.InitDefaultHelpCmd()

	names := map[string]*cobra.Command{}
	for _, c := range cmd.Commands() {
		names[c.Name()] = c
	}

	for _, name := range []string{"check", "list", "apply", "escape"} {
		require.Contains(t, names, name)
		assert.Equal(t, "core", names[name].GroupID, name)
	}
	for _, name := range []string{"config", "version", "completion", "man", "help"} {
		require.Contains(t, names, name)
		assert.Equal(t, "misc", names[name].GroupID, name)
	}
	assert.True(t, names["man"].Hidden)
}

func TestCheck(t *testing.T) {
	dir := isolate(t)
	path := writeTable(t, dir, sampleTable)

	t.Run("valid table", func(t *testing.T) {
		res := run(t, nil, "check", path, "--format", "text")
		assert.Equal(t, 0, res.code, res.stderr)
		assert.Equal(t, "ok: "+path+": 2 rules\n", res.stdout)
	})

	t.Run("table from stdin as json", func(t *testing.T) {
		res := run(t, strings.NewReader(sampleTable), "check", "-", "--format", "json")
		require.Equal(t, 0, res.code, res.stderr)

		var summary struct {
			Source string `json:"source"`
			Rules  int    `json:"rules"`
		}
		require.NoError(t, json.Unmarshal([]byte(res.stdout), &summary))
		assert.Equal(t, "-", summary.Source)
		assert.Equal(t, 2, summary.Rules)
	})

	t.Run("bad row", func(t *testing.T) {
		bad := writeTable(t, t.TempDir(), "header\nfoo\tbar\nbaz\n")
		res := run(t, nil, "check", bad, "--format", "text")
		assert.Equal(t, 1, res.code)
		assert.Empty(t, res.stdout)
		assert.Equal(t,
			"error: pattern table format error\n[FORMAT] pattern line requires: Pattern  Replacement (Flags)\n\n line 3:\nbaz\n",
			res.stderr)
	})

	t.Run("bad flags", func(t *testing.T) {
		bad := writeTable(t, t.TempDir(), "header\nfoo\tbar\tq\n")
		res := run(t, nil, "check", bad, "--format", "text")
		assert.Equal(t, 1, res.code)
		assert.Contains(t, res.stderr, "invalid flags supplied to pattern")
		assert.Contains(t, res.stderr, " line 2:\nfoo\tbar\tq\n")
	})

	t.Run("missing file", func(t *testing.T) {
		res := run(t, nil, "check", filepath.Join(dir, "nope.tsv"), "--format", "text")
		assert.Equal(t, 1, res.code)
		assert.Contains(t, res.stderr, "cannot open pattern table")
	})

	t.Run("no table", func(t *testing.T) {
		res := run(t, nil, "check", "--format", "text")
		assert.Equal(t, 1, res.code)
		assert.Equal(t, "error: [INVALID_INPUT] "+MsgErrNoTable+"\n", res.stderr)
	})

	t.Run("error as json", func(t *testing.T) {
		bad := writeTable(t, t.TempDir(), "header\nbaz\n")
		res := run(t, nil, "check", bad, "--format", "json")
		assert.Equal(t, 1, res.code)

		var doc struct {
			Error struct {
				Code string `json:"code"`
				Line int    `json:"line"`
				Raw  string `json:"raw"`
			} `json:"error"`
		}
		require.NoError(t, json.Unmarshal([]byte(res.stderr), &doc))
		assert.Equal(t, "TABLE_FORMAT", doc.Error.Code)
		assert.Equal(t, 2, doc.Error.Line)
		assert.Equal(t, "baz", doc.Error.Raw)
	})
}

func TestTableFromConfig(t *testing.T) {
	dir := isolate(t)
	path := writeTable(t, dir, sampleTable)
	t.Setenv("PATSUB_TABLE_PATH", path)

	res := run(t, nil, "check", "--format", "text")
	assert.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, "ok: "+path+": 2 rules\n", res.stdout)
}

func TestList(t *testing.T) {
	dir := isolate(t)
	path := writeTable(t, dir, sampleTable)

	t.Run("text", func(t *testing.T) {
		res := run(t, nil, "list", path, "--format", "text")
		require.Equal(t, 0, res.code, res.stderr)
		assert.Equal(t, "1\tfoo\tbar\tg\n2\ta.b\t[$&]\t\n", res.stdout)
	})

	t.Run("json", func(t *testing.T) {
		res := run(t, nil, "list", "--table", path, "--format", "json")
		require.Equal(t, 0, res.code, res.stderr)

		var doc struct {
			Rules []struct {
				Index   int    `json:"index"`
				Pattern string `json:"pattern"`
				Escaped string `json:"escaped"`
			} `json:"rules"`
		}
		require.NoError(t, json.Unmarshal([]byte(res.stdout), &doc))
		require.Len(t, doc.Rules, 2)
		assert.Equal(t, 2, doc.Rules[1].Index)
		assert.Equal(t, "a.b", doc.Rules[1].Pattern)
		assert.Equal(t, `a\.b`, doc.Rules[1].Escaped)
	})

	t.Run("yaml", func(t *testing.T) {
		res := run(t, nil, "list", path, "--format", "yaml")
		require.Equal(t, 0, res.code, res.stderr)
		assert.Contains(t, res.stdout, "rules:")
		assert.Contains(t, res.stdout, "pattern: foo")
	})

	t.Run("unknown format", func(t *testing.T) {
		res := run(t, nil, "list", path, "--format", "xml")
		assert.Equal(t, 1, res.code)
		assert.Contains(t, res.stderr, "xml")
	})
}

func TestApply(t *testing.T) {
	dir := isolate(t)
	path := writeTable(t, dir, sampleTable)

	t.Run("arguments", func(t *testing.T) {
		res := run(t, nil, "apply", "-t", path, "--rule", "1", "foo foo", "nofoo")
		require.Equal(t, 0, res.code, res.stderr)
		assert.Equal(t, "bar bar\nnobar\n", res.stdout)
	})

	t.Run("literal pattern", func(t *testing.T) {
		res := run(t, nil, "apply", "-t", path, "--rule", "2", "a.b axb a.b")
		require.Equal(t, 0, res.code, res.stderr)
		assert.Equal(t, "[a.b] axb a.b\n", res.stdout)
	})

	t.Run("stdin lines", func(t *testing.T) {
		res := run(t, strings.NewReader("foo\nbaz foo\n"), "apply", "-t", path)
		require.Equal(t, 0, res.code, res.stderr)
		assert.Equal(t, "bar\nbaz bar\n", res.stdout)
	})

	t.Run("rule out of range", func(t *testing.T) {
		res := run(t, nil, "apply", "-t", path, "--rule", "3", "foo")
		assert.Equal(t, 1, res.code)
		assert.Contains(t, res.stderr, "no rule 3")
	})

	t.Run("table and text both on stdin", func(t *testing.T) {
		res := run(t, strings.NewReader(sampleTable), "apply", "-t", "-")
		assert.Equal(t, 1, res.code)
		assert.Contains(t, res.stderr, MsgErrStdinConflict)
	})

	t.Run("table on stdin with text arguments", func(t *testing.T) {
		res := run(t, strings.NewReader(sampleTable), "apply", "-t", "-", "foo")
		require.Equal(t, 0, res.code, res.stderr)
		assert.Equal(t, "bar\n", res.stdout)
	})
}

func TestEscape(t *testing.T) {
	isolate(t)

	res := run(t, nil, "escape", "a.b", "(x)", "plain")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, "a\\.b\n\\(x\\)\nplain\n", res.stdout)
}

func TestConfigCommand(t *testing.T) {
	isolate(t)

	t.Run("defaults", func(t *testing.T) {
		res := run(t, nil, "config", "--defaults")
		require.Equal(t, 0, res.code, res.stderr)
		assert.Contains(t, res.stdout, "[output]")
	})

	t.Run("effective with env override", func(t *testing.T) {
		t.Setenv("PATSUB_OUTPUT_WIDTH", "72")
		res := run(t, nil, "config")
		require.Equal(t, 0, res.code, res.stderr)
		assert.Contains(t, res.stdout, "width = 72")
	})

	t.Run("unknown format in env", func(t *testing.T) {
		t.Setenv("PATSUB_OUTPUT_FORMAT", "xml")
		res := run(t, nil, "config")
		assert.Equal(t, 1, res.code)
		assert.Contains(t, res.stderr, "CONFIG_INVALID")
		assert.Empty(t, res.stdout)
	})

	t.Run("explicit missing config", func(t *testing.T) {
		res := run(t, nil, "config", "--config", "/nonexistent/patsub.toml")
		assert.Equal(t, 1, res.code)
	})
}

func TestHelpTopics(t *testing.T) {
	isolate(t)

	t.Run("topic list", func(t *testing.T) {
		res := run(t, nil, "help", "topics")
		require.Equal(t, 0, res.code, res.stderr)
		assert.Contains(t, res.stdout, "format")
		assert.Contains(t, res.stdout, "flags")
	})

	t.Run("topic", func(t *testing.T) {
		res := run(t, nil, "help", "format")
		require.Equal(t, 0, res.code, res.stderr)
		assert.Contains(t, res.stdout, "Pattern table format")
	})

	t.Run("command help", func(t *testing.T) {
		res := run(t, nil, "help", "apply")
		require.Equal(t, 0, res.code, res.stderr)
		assert.Contains(t, res.stdout, "--rule")
	})
}

func TestVersion(t *testing.T) {
	isolate(t)

	res := run(t, nil, "version")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, "patsub version")
}
