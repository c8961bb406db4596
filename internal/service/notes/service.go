package notes

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"assistant-bot/internal/model"
	"assistant-bot/internal/repository"
	"assistant-bot/internal/repository/memory"
	svc "assistant-bot/internal/service"
)

var _ svc.NoteService = (*service)(nil)

type service struct {
	storage svc.NoteStorage
	book    repository.NoteRepository
	logger  *zap.Logger

	search map[svc.NoteSearchField]func(keyword string) []*model.RecordNote
}

// NewNoteService создает новый экземпляр сервиса для работы с заметками
func NewNoteService(storage svc.NoteStorage, logger *zap.Logger) svc.NoteService {
	s := &service{
		storage: storage,
		logger:  logger.Named("notes"),
	}
	s.setBook(memory.NewNoteBook())
	return s
}

func (s *service) setBook(book repository.NoteRepository) {
	s.book = book
	s.search = map[svc.NoteSearchField]func(string) []*model.RecordNote{
		svc.SearchByName:   book.FindInfoByName,
		svc.SearchByTag:    book.FindInfoByTag,
		svc.SearchByStatus: book.FindInfoByStatus,
	}
}

// Load заменяет книгу в памяти сохраненной книгой
func (s *service) Load(ctx context.Context) {
	s.setBook(s.storage.Load(ctx))
}

// Save записывает книгу на диск
func (s *service) Save(ctx context.Context) (bool, error) {
	return s.storage.Save(ctx, s.book)
}

// noteKey приводит введенное имя к ключу книги так же, как при создании заметки
func noteKey(name string) string {
	noteName, err := model.NewNoteName(name)
	if err != nil {
		return name
	}
	return noteName.String()
}

// Exists проверяет, есть ли заметка с таким именем (после нормализации имени)
func (s *service) Exists(ctx context.Context, name string) bool {
	return s.book.ShowRecord(noteKey(name)) != nil
}

// Create создает заметку с необязательным первым тегом
func (s *service) Create(ctx context.Context, name, note, tag string, overwrite bool) (*model.RecordNote, error) {
	noteName, err := model.NewNoteName(name)
	if err != nil {
		return nil, err
	}

	var tags []model.Tag
	if strings.TrimSpace(tag) != "" {
		parsed, err := model.NewTag(tag)
		if err != nil {
			return nil, err
		}
		tags = append(tags, parsed)
	}

	record := model.NewRecordNote(noteName, model.NewNoteBody(note), tags...)
	if overwrite {
		s.book.AddNote(record)
	} else if err := s.book.AddUnique(record); err != nil {
		return nil, err
	}

	s.logger.Debug("note saved", zap.String("name", noteName.String()), zap.String("id", record.ID))
	return record, nil
}

// Get возвращает заметку по имени
func (s *service) Get(ctx context.Context, name string) (*model.RecordNote, error) {
	key := noteKey(name)
	note := s.book.ShowRecord(key)
	if note == nil {
		return nil, model.NotFound("note", key)
	}
	return note, nil
}

// List возвращает все заметки
func (s *service) List(ctx context.Context) []*model.RecordNote {
	return s.book.All()
}

// Search ищет заметки по выбранному полю
func (s *service) Search(ctx context.Context, field svc.NoteSearchField, keyword string) ([]*model.RecordNote, error) {
	find, ok := s.search[svc.NoteSearchField(strings.ToLower(strings.TrimSpace(string(field))))]
	if !ok {
		return nil, fmt.Errorf("unknown search field %q", field)
	}
	return find(keyword), nil
}

// ChangeName переименовывает заметку
func (s *service) ChangeName(ctx context.Context, oldName, newName string) error {
	if err := s.book.ChangeName(noteKey(oldName), newName); err != nil {
		return err
	}
	s.logger.Debug("note renamed", zap.String("from", oldName), zap.String("to", newName))
	return nil
}

// ChangeNote заменяет текст заметки
func (s *service) ChangeNote(ctx context.Context, name, note string) error {
	return s.book.ChangeNote(noteKey(name), note)
}

// ChangeStatus меняет статус заметки
func (s *service) ChangeStatus(ctx context.Context, name, status string) error {
	return s.book.ChangeStatus(noteKey(name), status)
}

// AddTag добавляет тег
func (s *service) AddTag(ctx context.Context, name, tag string) error {
	return s.book.AddTag(noteKey(name), tag)
}

// DeleteTag удаляет тег, отсутствующий тег - ошибка NotFound для сообщения пользователю
func (s *service) DeleteTag(ctx context.Context, name, tag string) error {
	key := noteKey(name)
	tags, err := s.book.Tags(key)
	if err != nil {
		return err
	}
	for _, t := range tags {
		if t.String() == strings.TrimSpace(tag) {
			return s.book.DeleteTag(key, tag)
		}
	}
	return model.NotFound("tag", tag)
}

// ChangeTag заменяет тег
func (s *service) ChangeTag(ctx context.Context, name, oldTag, newTag string) error {
	return s.book.ChangeTag(noteKey(name), oldTag, newTag)
}

// Tags возвращает теги заметки
func (s *service) Tags(ctx context.Context, name string) ([]model.Tag, error) {
	return s.book.Tags(noteKey(name))
}

// Delete удаляет заметку по имени
func (s *service) Delete(ctx context.Context, name string) error {
	key := noteKey(name)
	if s.book.ShowRecord(key) == nil {
		return model.NotFound("note", key)
	}
	s.book.Delete(key)
	s.logger.Debug("note deleted", zap.String("name", key))
	return nil
}

// DeleteDone удаляет все выполненные заметки
func (s *service) DeleteDone(ctx context.Context) int {
	removed := s.book.DeleteNotesByStatus(model.StatusDone)
	s.logger.Debug("done notes deleted", zap.Int("count", removed))
	return removed
}
