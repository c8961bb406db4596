package converter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"assistant-bot/internal/model"
	"assistant-bot/internal/repository/memory"
)

func ptr(s string) *string { return &s }

func TestRecordToDTO_AbsentFields(t *testing.T) {
	record := model.NewRecord("Alice")

	dto := RecordToDTO(record)
	assert.Equal(t, record.ID(), dto.ID)
	assert.Equal(t, "Alice", dto.Name)
	assert.NotNil(t, dto.Phones)
	assert.Empty(t, dto.Phones)
	assert.NotNil(t, dto.Emails)
	assert.Nil(t, dto.Address)
	assert.Nil(t, dto.Birthday)
}

func TestDTOToRecord(t *testing.T) {
	tests := []struct {
		name    string
		dto     ContactDTO
		wantErr bool
	}{
		{
			name: "valid",
			dto: ContactDTO{ID: "id-1", Name: "Alice", Phones: []string{"+380671234567"},
				Emails: []string{"a@b.com"}, Address: ptr("Kyiv"), Birthday: ptr("1990-10-20")},
		},
		{name: "empty address kept", dto: ContactDTO{Name: "Alice", Address: ptr("")}},
		{name: "short name", dto: ContactDTO{Name: "A"}, wantErr: true},
		{name: "bad phone", dto: ContactDTO{Name: "Alice", Phones: []string{"12"}}, wantErr: true},
		{name: "bad email", dto: ContactDTO{Name: "Alice", Emails: []string{"nope"}}, wantErr: true},
		{name: "bad birthday", dto: ContactDTO{Name: "Alice", Birthday: ptr("20.10.1990")}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record, err := DTOToRecord(tt.dto)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			got := RecordToDTO(record)
			if tt.dto.ID == "" {
				assert.NotEmpty(t, got.ID)
			} else {
				assert.Equal(t, tt.dto.ID, got.ID)
			}
			assert.Equal(t, tt.dto.Name, got.Name)
			assert.ElementsMatch(t, tt.dto.Phones, got.Phones)
			assert.ElementsMatch(t, tt.dto.Emails, got.Emails)
			assert.Equal(t, tt.dto.Address, got.Address)
			assert.Equal(t, tt.dto.Birthday, got.Birthday)
		})
	}
}

func TestNoteDTO(t *testing.T) {
	note := model.NewRecordNote("shopping", "milk", "urgent")
	note.Status = model.StatusDone

	dto := NoteToDTO(note)
	assert.Equal(t, []string{"urgent"}, dto.Tags)
	assert.Equal(t, "done", dto.Status)

	restored, err := DTOToNote(dto)
	require.NoError(t, err)
	assert.Equal(t, note, restored)

	untagged := NoteToDTO(model.NewRecordNote("plain", "text"))
	assert.Nil(t, untagged.Tags)

	_, err = DTOToNote(NoteDTO{Name: "x", Status: "someday"})
	assert.ErrorIs(t, err, model.ErrValidation)
	_, err = DTOToNote(NoteDTO{Name: "x", Tags: []string{" "}})
	assert.ErrorIs(t, err, model.ErrValidation)
}

func TestBooks(t *testing.T) {
	book := memory.NewAddressBook()
	_, err := book.Create(model.ContactInput{Name: "Bob"})
	require.NoError(t, err)
	_, err = book.Create(model.ContactInput{Name: "Alice"})
	require.NoError(t, err)

	dtos := AddressBookToDTO(book)
	require.Len(t, dtos, 2)
	assert.Equal(t, "Bob", dtos[0].Name)

	restored, err := DTOToAddressBook(dtos)
	require.NoError(t, err)
	assert.Equal(t, 2, restored.Len())
	assert.Equal(t, book.Find("Alice").ID(), restored.Find("Alice").ID())

	_, err = DTOToAddressBook(append(dtos, ContactDTO{Name: "?"}))
	assert.Error(t, err)
}
