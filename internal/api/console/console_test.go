package console

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"assistant-bot/internal/model"
	"assistant-bot/internal/repository/file"
	svc "assistant-bot/internal/service"
	"assistant-bot/internal/service/contacts"
	"assistant-bot/internal/service/notes"
)

type fixture struct {
	console  *Console
	out      *bytes.Buffer
	contacts svc.ContactService
	notes    svc.NoteService
}

func newFixture(t *testing.T, input string, options Options) *fixture {
	t.Helper()
	dir := t.TempDir()
	logger := zap.NewNop()

	clk := clock.NewMock()
	clk.Set(time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC))

	contactService := contacts.NewContactService(file.NewContactStore(filepath.Join(dir, "book.json"), logger), clk, logger)
	noteService := notes.NewNoteService(file.NewNoteStore(filepath.Join(dir, "notes.json"), logger), logger)

	out := &bytes.Buffer{}
	return &fixture{
		console:  New(contactService, noteService, strings.NewReader(input), out, options, logger),
		out:      out,
		contacts: contactService,
		notes:    noteService,
	}
}

func lines(input ...string) string {
	return strings.Join(input, "\n") + "\n"
}

func TestConsole_AddContactAndFind(t *testing.T) {
	f := newFixture(t, lines(
		"add_contact", "Alice", "067 123 45 67", "", "",
		"find_record", "alice",
		"exit",
	), Options{})

	require.NoError(t, f.console.Run(context.Background()))

	record, err := f.contacts.Get(context.Background(), "Alice")
	require.NoError(t, err)
	assert.Equal(t, []model.Phone{"+380671234567"}, record.Phones())

	output := f.out.String()
	assert.Contains(t, output, "Contact Alice saved.")
	assert.Contains(t, output, "Phones: +380671234567")
	assert.Contains(t, output, "Bye-Bye!")
}

func TestConsole_ErrorsAreReported(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "unknown command", input: lines("dance", "exit"), want: "Wrong command"},
		{name: "missing contact", input: lines("add_phone", "Bob", "exit"), want: "Contact Bob not found."},
		{name: "short name", input: lines("add_contact", "A", "exit"), want: "Invalid name"},
		{name: "cancel", input: lines("add_contact", "cancel", "exit"), want: "Command has been canceled"},
		{name: "bad days", input: lines("show_birthdays", "soon", "exit"), want: "Incorrect value of days count"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, tt.input, Options{})
			require.NoError(t, f.console.Run(context.Background()))
			assert.Contains(t, f.out.String(), tt.want)
		})
	}
}

func TestConsole_InvalidPhoneLeavesRecord(t *testing.T) {
	f := newFixture(t, lines(
		"add_contact", "Alice", "0671234567", "", "",
		"edit_phone", "Alice", "0671234567", "123",
		"exit",
	), Options{})

	require.NoError(t, f.console.Run(context.Background()))

	record, err := f.contacts.Get(context.Background(), "Alice")
	require.NoError(t, err)
	assert.Equal(t, []model.Phone{"+380671234567"}, record.Phones())
	assert.Contains(t, f.out.String(), "Invalid phone")
}

func TestConsole_EndOfInputStopsLoop(t *testing.T) {
	f := newFixture(t, "add_contact\nAlice\n", Options{})
	require.NoError(t, f.console.Run(context.Background()))
	assert.Empty(t, f.contacts.List(context.Background()))
}

func TestConsole_ShowBirthdays(t *testing.T) {
	f := newFixture(t, lines(
		"add_contact", "Alice", "", "", "1990-10-20",
		"add_contact", "Bob", "", "", "1990-12-01",
		"show_birthdays", "",
		"exit",
	), Options{BirthdayWindowDays: 7})

	require.NoError(t, f.console.Run(context.Background()))

	output := f.out.String()
	assert.Contains(t, output, "Alice: 1990-10-20 (in 2 days)")
	assert.NotContains(t, output, "Bob: ")
}

func TestConsole_ShowBookPaged(t *testing.T) {
	f := newFixture(t, lines(
		"add_contact", "Alice", "", "", "",
		"add_contact", "Bob", "", "", "",
		"show_book", "cancel",
		"exit",
	), Options{PageSize: 1})

	require.NoError(t, f.console.Run(context.Background()))

	output := f.out.String()
	assert.Contains(t, output, "Contact name: Alice")
	assert.NotContains(t, output, "Contact name: Bob")
	assert.Contains(t, output, "Press Enter for the next page")
}

func TestConsole_NotesScenario(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, lines(
		"notes",
		"add", "shopping", "milk", "urgent",
		"change", "shopping", "status", "done",
		"search", "status", "done",
		"change", "shopping", "name", "groceries",
		"back",
		"exit",
	), Options{})

	require.NoError(t, f.console.Run(ctx))

	done, err := f.notes.Search(ctx, svc.SearchByStatus, "done")
	require.NoError(t, err)
	require.Len(t, done, 1)
	assert.Equal(t, model.NoteName("groceries"), done[0].Name)
	assert.False(t, f.notes.Exists(ctx, "shopping"))

	output := f.out.String()
	assert.Contains(t, output, "Note shopping has been added")
	assert.Contains(t, output, "Status for note shopping changed to done")
	assert.Contains(t, output, "Name for note shopping changed to groceries")
}

func TestConsole_NoteRewriteConfirmation(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, lines(
		"notes",
		"add", "shopping", "milk", "",
		"add", "shopping", "maybe", "y", "bread", "",
		"back",
		"exit",
	), Options{})

	require.NoError(t, f.console.Run(ctx))

	note, err := f.notes.Get(ctx, "shopping")
	require.NoError(t, err)
	assert.Equal(t, model.NoteBody("bread"), note.Note)
	assert.Contains(t, f.out.String(), "Wrong command")
}

func TestConsole_NoteTagsAndDelete(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, lines(
		"notes",
		"add", "a1", "x", "home",
		"add", "b2", "y", "",
		"change", "a1", "tag", "change", "home", "work",
		"change", "a1", "tag", "del", "missing",
		"change", "b2", "status", "done",
		"del", "n", "y",
		"shownote", "b2",
		"back",
		"exit",
	), Options{})

	require.NoError(t, f.console.Run(ctx))

	tags, err := f.notes.Tags(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, []model.Tag{"work"}, tags)
	assert.False(t, f.notes.Exists(ctx, "b2"))

	output := f.out.String()
	assert.Contains(t, output, "Tag home has been changed to work")
	assert.Contains(t, output, "Tag missing not found.")
	assert.Contains(t, output, "1 notes with status 'done' have been deleted")
	assert.Contains(t, output, "Nothing match")
}

func TestConsole_ShowNotesTable(t *testing.T) {
	f := newFixture(t, lines(
		"notes",
		"add", "shopping", strings.Repeat("long text ", 10), "urgent",
		"show",
		"back",
		"exit",
	), Options{})

	require.NoError(t, f.console.Run(context.Background()))

	output := f.out.String()
	assert.Contains(t, output, "Name")
	assert.Contains(t, output, "shopping")
	assert.Contains(t, output, "...")
	assert.Contains(t, output, "in progress")
}

func TestPages(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	assert.Equal(t, [][]int{{1, 2}, {3, 4}, {5}}, pages(items, 2))
	assert.Equal(t, [][]int{{1, 2, 3, 4, 5}}, pages(items, 0))
	assert.Equal(t, [][]int{{1, 2, 3, 4, 5}}, pages(items, 10))
	assert.Nil(t, pages([]int{}, 3))
}

func TestEllipsis(t *testing.T) {
	assert.Equal(t, "short", ellipsis("short", 10))
	assert.Equal(t, "abcdef...", ellipsis("abcdefghijklmn", 10))
	assert.Equal(t, "привет...", ellipsis("приветствие мира", 10))
}
