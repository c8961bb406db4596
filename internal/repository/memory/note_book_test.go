package memory

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"assistant-bot/internal/model"
)

func noteNames(notes []*model.RecordNote) []string {
	out := make([]string, 0, len(notes))
	for _, n := range notes {
		out = append(out, n.Name.String())
	}
	return out
}

func newShoppingBook(t *testing.T) *NoteBook {
	t.Helper()
	book := NewNoteBook()
	book.AddNote(model.NewRecordNote("shopping", "milk, bread", "urgent"))
	book.AddNote(model.NewRecordNote("work", "finish report", "office"))
	return book
}

func TestNoteBook_StatusScenario(t *testing.T) {
	book := newShoppingBook(t)

	assert.Equal(t, []string{"shopping", "work"}, noteNames(book.FindInfoByStatus("in progress")))

	require.NoError(t, book.ChangeStatus("shopping", "Done"))
	assert.Equal(t, []string{"shopping"}, noteNames(book.FindInfoByStatus("done")))
	assert.Equal(t, []string{"work"}, noteNames(book.FindInfoByStatus("IN PROGRESS")))
}

func TestNoteBook_ChangeStatus_Invalid(t *testing.T) {
	book := newShoppingBook(t)

	err := book.ChangeStatus("shopping", "someday")
	assert.ErrorIs(t, err, model.ErrValidation)
	assert.Equal(t, model.StatusInProgress, book.ShowRecord("shopping").Status)

	err = book.ChangeStatus("missing", "done")
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestNoteBook_ChangeName(t *testing.T) {
	book := newShoppingBook(t)
	original := book.ShowRecord("shopping")
	id := original.ID

	require.NoError(t, book.ChangeName("shopping", "groceries"))

	assert.Nil(t, book.ShowRecord("shopping"))
	renamed := book.ShowRecord("groceries")
	require.NotNil(t, renamed)
	assert.Equal(t, model.NoteName("groceries"), renamed.Name)
	assert.Equal(t, model.NoteBody("milk, bread"), renamed.Note)
	assert.Equal(t, []model.Tag{"urgent"}, renamed.Tags)
	assert.Equal(t, id, renamed.ID)
	assert.NotSame(t, original, renamed, "renamed note is a deep copy")
	assert.Equal(t, []string{"groceries", "work"}, noteNames(book.All()))
}

func TestNoteBook_ChangeName_OverwritesExisting(t *testing.T) {
	book := newShoppingBook(t)

	require.NoError(t, book.ChangeName("shopping", "work"))
	assert.Equal(t, 1, book.Len())
	assert.Equal(t, model.NoteBody("milk, bread"), book.ShowRecord("work").Note)
}

func TestNoteBook_ChangeName_Failures(t *testing.T) {
	book := newShoppingBook(t)

	err := book.ChangeName("missing", "other")
	assert.ErrorIs(t, err, model.ErrNotFound)

	err = book.ChangeName("shopping", "   ")
	assert.ErrorIs(t, err, model.ErrValidation)
	assert.NotNil(t, book.ShowRecord("shopping"))
	assert.Equal(t, 2, book.Len())
}

func TestNoteBook_ChangeName_Truncates(t *testing.T) {
	book := newShoppingBook(t)
	long := strings.Repeat("n", 45)

	require.NoError(t, book.ChangeName("shopping", long))
	assert.NotNil(t, book.ShowRecord(long[:model.MaxNoteNameLength]))
}

func TestNoteBook_FindInfoByName_Exact(t *testing.T) {
	book := newShoppingBook(t)

	assert.Equal(t, []string{"shopping"}, noteNames(book.FindInfoByName("SHOPPING")))
	assert.Empty(t, book.FindInfoByName("shop"))
}

func TestNoteBook_Tags(t *testing.T) {
	book := newShoppingBook(t)

	require.NoError(t, book.AddTag("shopping", "home"))
	require.NoError(t, book.AddTag("shopping", "home"))
	tags, err := book.Tags("shopping")
	require.NoError(t, err)
	assert.Equal(t, []model.Tag{"urgent", "home"}, tags)

	assert.Equal(t, []string{"shopping"}, noteNames(book.FindInfoByTag("Urgent")))

	require.NoError(t, book.ChangeTag("shopping", "urgent", "later"))
	assert.Empty(t, book.FindInfoByTag("urgent"))

	err = book.ChangeTag("shopping", "absent", "x")
	assert.ErrorIs(t, err, model.ErrNotFound)

	require.NoError(t, book.DeleteTag("shopping", "absent"))
	require.NoError(t, book.DeleteTag("shopping", "home"))
	tags, err = book.Tags("shopping")
	require.NoError(t, err)
	assert.Equal(t, []model.Tag{"later"}, tags)

	err = book.AddTag("shopping", " ")
	assert.ErrorIs(t, err, model.ErrValidation)

	err = book.AddTag("missing", "x")
	assert.ErrorIs(t, err, model.ErrNotFound)

	_, err = book.Tags("missing")
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestNoteBook_ChangeNote(t *testing.T) {
	book := newShoppingBook(t)

	require.NoError(t, book.ChangeNote("work", strings.Repeat("x", 260)))
	assert.Len(t, book.ShowRecord("work").Note.String(), model.MaxNoteBodyLength)

	assert.ErrorIs(t, book.ChangeNote("missing", "x"), model.ErrNotFound)
}

func TestNoteBook_DeleteNotesByStatus(t *testing.T) {
	book := newShoppingBook(t)
	book.AddNote(model.NewRecordNote("call", "call mom"))
	require.NoError(t, book.ChangeStatus("shopping", "done"))
	require.NoError(t, book.ChangeStatus("call", "done"))

	removed := book.DeleteNotesByStatus(model.StatusDone)
	assert.Equal(t, 2, removed)
	assert.Equal(t, []string{"work"}, noteNames(book.All()))

	assert.Equal(t, 0, book.DeleteNotesByStatus(model.StatusDone))
}

func TestNoteBook_AddUniqueAndDelete(t *testing.T) {
	book := newShoppingBook(t)

	err := book.AddUnique(model.NewRecordNote("shopping", "other"))
	assert.ErrorIs(t, err, ErrAlreadyExists)
	assert.Equal(t, model.NoteBody("milk, bread"), book.ShowRecord("shopping").Note)

	book.AddNote(model.NewRecordNote("shopping", "other"))
	assert.Equal(t, model.NoteBody("other"), book.ShowRecord("shopping").Note)

	book.Delete("shopping")
	book.Delete("shopping")
	assert.Nil(t, book.ShowRecord("shopping"))
	assert.Equal(t, 1, book.Len())
}

func TestNoteBook_ChangesDoNotTouchHeldNote(t *testing.T) {
	book := newShoppingBook(t)
	held := book.ShowRecord("shopping")

	require.NoError(t, book.ChangeStatus("shopping", "done"))
	require.NoError(t, book.AddTag("shopping", "home"))

	assert.Equal(t, model.StatusInProgress, held.Status)
	assert.Equal(t, []model.Tag{"urgent"}, held.Tags)

	current := book.ShowRecord("shopping")
	assert.Equal(t, model.StatusDone, current.Status)
	assert.Equal(t, held.ID, current.ID)
	assert.Equal(t, []string{"shopping", "work"}, noteNames(book.All()), "update keeps position")
}
