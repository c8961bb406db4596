package memory

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"assistant-bot/internal/model"
	"assistant-bot/internal/repository"
)

var _ repository.NoteRepository = (*NoteBook)(nil)

// NoteBook книга заметок: заметки по имени
type NoteBook struct {
	mu    sync.RWMutex
	notes store[*model.RecordNote]
}

// NewNoteBook создает пустую книгу заметок
func NewNoteBook() *NoteBook {
	return &NoteBook{notes: newStore[*model.RecordNote]()}
}

// AddNote сохраняет заметку под ее именем (last-write-wins)
func (b *NoteBook) AddNote(note *model.RecordNote) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.notes.set(note.Name.String(), note)
}

// AddUnique сохраняет заметку только если имя свободно
func (b *NoteBook) AddUnique(note *model.RecordNote) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	key := note.Name.String()
	if _, exists := b.notes.get(key); exists {
		return fmt.Errorf("note %q: %w", key, ErrAlreadyExists)
	}
	b.notes.set(key, note)
	return nil
}

// ShowRecord возвращает заметку по точному имени или nil
func (b *NoteBook) ShowRecord(name string) *model.RecordNote {
	b.mu.RLock()
	defer b.mu.RUnlock()

	note, _ := b.notes.get(name)
	return note
}

// Delete удаляет заметку, отсутствие заметки не ошибка
func (b *NoteBook) Delete(name string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.notes.remove(name)
}

// DeleteNotesByStatus удаляет все заметки с указанным статусом
func (b *NoteBook) DeleteNotesByStatus(status model.Status) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.notes.filter(func(n *model.RecordNote) bool {
		return n.Status != status
	})
}

// FindInfoByName ищет заметку по имени: точное совпадение без учета регистра, первая найденная
func (b *NoteBook) FindInfoByName(keyword string) []*model.RecordNote {
	return b.find(func(n *model.RecordNote) bool {
		return strings.EqualFold(n.Name.String(), keyword)
	}, true)
}

// FindInfoByTag ищет заметки, у которых есть тег keyword (без учета регистра)
func (b *NoteBook) FindInfoByTag(keyword string) []*model.RecordNote {
	return b.find(func(n *model.RecordNote) bool {
		return n.HasTag(keyword)
	}, false)
}

// FindInfoByStatus ищет заметки по статусу (без учета регистра)
func (b *NoteBook) FindInfoByStatus(keyword string) []*model.RecordNote {
	keyword = strings.TrimSpace(keyword)
	return b.find(func(n *model.RecordNote) bool {
		return strings.EqualFold(n.Status.String(), keyword)
	}, false)
}

// ChangeName переносит заметку под новое имя.
// Под новым именем сохраняется глубокая копия, старый ключ удаляется в той же операции.
func (b *NoteBook) ChangeName(oldName, newName string) error {
	name, err := model.NewNoteName(newName)
	if err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	note, exists := b.notes.get(oldName)
	if !exists {
		return model.NotFound("note", oldName)
	}
	renamed := note.Clone()
	renamed.Name = name
	b.notes.rekey(oldName, name.String(), renamed)
	return nil
}

// ChangeNote заменяет текст заметки
func (b *NoteBook) ChangeNote(name, note string) error {
	body := model.NewNoteBody(note)
	return b.update(name, func(n *model.RecordNote) error {
		n.Note = body
		return nil
	})
}

// ChangeStatus меняет статус заметки, допустимы только "in progress" и "done"
func (b *NoteBook) ChangeStatus(name, status string) error {
	parsed, err := model.ParseStatus(status)
	if err != nil {
		return err
	}
	return b.update(name, func(n *model.RecordNote) error {
		n.Status = parsed
		return nil
	})
}

// AddTag добавляет тег, повторный тег игнорируется
func (b *NoteBook) AddTag(name, tag string) error {
	parsed, err := model.NewTag(tag)
	if err != nil {
		return err
	}
	return b.update(name, func(n *model.RecordNote) error {
		n.AddTag(parsed)
		return nil
	})
}

// DeleteTag удаляет тег, отсутствие тега не ошибка
func (b *NoteBook) DeleteTag(name, tag string) error {
	return b.update(name, func(n *model.RecordNote) error {
		n.DeleteTag(model.Tag(strings.TrimSpace(tag)))
		return nil
	})
}

// ChangeTag заменяет первый тег со значением oldTag на newTag
func (b *NoteBook) ChangeTag(name, oldTag, newTag string) error {
	parsed, err := model.NewTag(newTag)
	if err != nil {
		return err
	}
	return b.update(name, func(n *model.RecordNote) error {
		return n.ChangeTag(model.Tag(strings.TrimSpace(oldTag)), parsed)
	})
}

// Tags возвращает копию тегов заметки
func (b *NoteBook) Tags(name string) ([]model.Tag, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	note, exists := b.notes.get(name)
	if !exists {
		return nil, model.NotFound("note", name)
	}
	return slices.Clone(note.Tags), nil
}

// All возвращает все заметки в порядке добавления
func (b *NoteBook) All() []*model.RecordNote {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.notes.values()
}

// Len возвращает число заметок
func (b *NoteBook) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.notes.len()
}

// update применяет изменение к копии заметки и заменяет заметку копией только при успехе
func (b *NoteBook) update(name string, apply func(n *model.RecordNote) error) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	note, exists := b.notes.get(name)
	if !exists {
		return model.NotFound("note", name)
	}
	changed := note.Clone()
	if err := apply(changed); err != nil {
		return err
	}
	b.notes.set(name, changed)
	return nil
}

func (b *NoteBook) find(match func(n *model.RecordNote) bool, first bool) []*model.RecordNote {
	b.mu.RLock()
	defer b.mu.RUnlock()

	result := make([]*model.RecordNote, 0)
	for _, note := range b.notes.values() {
		if !match(note) {
			continue
		}
		result = append(result, note)
		if first {
			break
		}
	}
	return result
}
