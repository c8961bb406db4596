package converter

import (
	"fmt"

	"assistant-bot/internal/model"
	"assistant-bot/internal/repository"
	"assistant-bot/internal/repository/memory"
)

// NoteDTO заметка в формате хранения. Пустой набор тегов сохраняется как null.
type NoteDTO struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Note   string   `json:"note"`
	Tags   []string `json:"tags"`
	Status string   `json:"status"`
}

// NoteToDTO конвертирует заметку в формат хранения
func NoteToDTO(note *model.RecordNote) NoteDTO {
	dto := NoteDTO{
		ID:     note.ID,
		Name:   note.Name.String(),
		Note:   note.Note.String(),
		Status: note.Status.String(),
	}
	if len(note.Tags) > 0 {
		dto.Tags = stringsOf(note.Tags)
	}
	return dto
}

// DTOToNote восстанавливает заметку с повторной валидацией полей
func DTOToNote(dto NoteDTO) (*model.RecordNote, error) {
	name, err := model.NewNoteName(dto.Name)
	if err != nil {
		return nil, err
	}
	status, err := model.ParseStatus(dto.Status)
	if err != nil {
		return nil, fmt.Errorf("note %q: %w", dto.Name, err)
	}

	note := model.NewRecordNote(name, model.NewNoteBody(dto.Note))
	if dto.ID != "" {
		note.ID = dto.ID
	}
	note.Status = status
	for _, raw := range dto.Tags {
		tag, err := model.NewTag(raw)
		if err != nil {
			return nil, fmt.Errorf("note %q: %w", dto.Name, err)
		}
		note.AddTag(tag)
	}
	return note, nil
}

// NoteBookToDTO конвертирует книгу заметок в слайс в порядке отображения
func NoteBookToDTO(book repository.NoteRepository) []NoteDTO {
	notes := book.All()
	dtos := make([]NoteDTO, len(notes))
	for i, note := range notes {
		dtos[i] = NoteToDTO(note)
	}
	return dtos
}

// DTOToNoteBook собирает книгу заметок из слайса
func DTOToNoteBook(dtos []NoteDTO) (*memory.NoteBook, error) {
	book := memory.NewNoteBook()
	for _, dto := range dtos {
		note, err := DTOToNote(dto)
		if err != nil {
			return nil, err
		}
		book.AddNote(note)
	}
	return book, nil
}
