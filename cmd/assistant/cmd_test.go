package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"assistant-bot/internal/model"
	"assistant-bot/internal/repository/file"
	"assistant-bot/internal/repository/memory"
)

func writeConfig(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yml")
	content := fmt.Sprintf(`logger:
  level: error
storage:
  dir: %s
  address_book_file: my_book.json
  notebook_file: notebook.json
`, dir)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestVersionCommand(t *testing.T) {
	out := &bytes.Buffer{}
	app := newApp()
	app.Writer = out

	require.NoError(t, app.Run([]string{appName, "version"}))
	assert.Contains(t, out.String(), version+"-")
}

func TestSearchCommand(t *testing.T) {
	dir := t.TempDir()
	configFile := writeConfig(t, dir)

	book := memory.NewAddressBook()
	_, err := book.Create(model.ContactInput{Name: "Alice", Phones: []string{"0671234567"}})
	require.NoError(t, err)
	saved, err := file.NewContactStore(filepath.Join(dir, "my_book.json"), zap.NewNop()).Save(context.Background(), book)
	require.NoError(t, err)
	require.True(t, saved)

	out := &bytes.Buffer{}
	app := newApp()
	app.Writer = out

	require.NoError(t, app.Run([]string{appName, "--config", configFile, "search", "067"}))
	assert.Contains(t, out.String(), "Contact name: Alice")

	out.Reset()
	require.NoError(t, app.Run([]string{appName, "--config", configFile, "search", "nobody"}))
	assert.Contains(t, out.String(), "No match found.")
}

func TestBirthdaysCommand_RejectsNegativeWindow(t *testing.T) {
	configFile := writeConfig(t, t.TempDir())

	app := newApp()
	app.Writer = &bytes.Buffer{}

	err := app.Run([]string{appName, "--config", configFile, "birthdays", "--days", "-1"})
	assert.Error(t, err)
}
