package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "batches.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestGetYaml(t *testing.T) {
	path := writeConfig(t, `- input: a.csv
  output: a.out.csv
- input: b.csv
  output: b.out.csv
`)

	configs, err := getYaml(path)
	require.NoError(t, err)
	require.Equal(t, []Config{
		{Input: "a.csv", Output: "a.out.csv"},
		{Input: "b.csv", Output: "b.out.csv"},
	}, configs)
}

func TestGetYamlSingleBatchMayUseStdout(t *testing.T) {
	path := writeConfig(t, "- input: a.csv\n")

	configs, err := getYaml(path)
	require.NoError(t, err)
	require.Equal(t, []Config{{Input: "a.csv"}}, configs)
}

func TestGetYamlRejectsSharedStdout(t *testing.T) {
	path := writeConfig(t, `- input: a.csv
  output: a.out.csv
- input: b.csv
`)

	_, err := getYaml(path)
	require.Error(t, err)
}

func TestGetYamlRejectsMissingInput(t *testing.T) {
	path := writeConfig(t, "- output: a.out.csv\n")

	_, err := getYaml(path)
	require.Error(t, err)
}

func TestGetYamlMissingFile(t *testing.T) {
	_, err := getYaml(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
