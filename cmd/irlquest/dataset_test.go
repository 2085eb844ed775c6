package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/wekeepgrowing/irlquest-backend/internal/domain/questgen"
)

func writeTodoFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "todos.txt")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func runCLI(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestReadLinesSkipsBlank(t *testing.T) {
	lines, err := readLines(strings.NewReader("  Buy groceries \n\n\t\nFinish the final exam\r\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"Buy groceries", "Finish the final exam"}, lines)
}

func TestWriteDatasetRejectsUnknownFormat(t *testing.T) {
	err := writeDataset(&bytes.Buffer{}, "xml", []string{"a"})
	assert.Error(t, err)
}

func TestDatasetTagsJSON(t *testing.T) {
	path := writeTodoFile(t, "Buy groceries\nFinish the final exam\n")

	out := runCLI(t, "dataset", "tags", path, "--format", "json")

	var records []questgen.TagRecord
	require.NoError(t, json.Unmarshal([]byte(out), &records))
	require.Len(t, records, 2)
	assert.Equal(t, questgen.TagTasks([]string{"Buy groceries", "Finish the final exam"}), records)
}

func TestDatasetQuestsYAML(t *testing.T) {
	path := writeTodoFile(t, "Buy groceries\nDeploy the new server\n")

	out := runCLI(t, "dataset", "quests", path, "--format", "yaml", "--difficulty", "4", "--context", "batch")

	var pairs []struct {
		TodoText string `yaml:"todo_text"`
		Quest    struct {
			Title      string `yaml:"title"`
			Theme      string `yaml:"theme"`
			Difficulty int    `yaml:"difficulty"`
		} `yaml:"quest"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &pairs))
	require.Len(t, pairs, 2)

	d := 4
	expected := questgen.GenerateQuests([]string{"Buy groceries", "Deploy the new server"}, "batch", &d)
	for i, pair := range pairs {
		assert.Equal(t, expected[i].TodoText, pair.TodoText)
		assert.Equal(t, expected[i].Quest.Title, pair.Quest.Title)
		assert.Equal(t, expected[i].Quest.Theme.String(), pair.Quest.Theme)
		assert.Equal(t, 4, pair.Quest.Difficulty)
	}
}

func TestVersionCommand(t *testing.T) {
	out := runCLI(t, "version")
	assert.Equal(t, "irlquest version dev\n", out)
}
