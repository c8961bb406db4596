package file

import (
	"context"
	"errors"
	"io/fs"

	"go.uber.org/zap"

	"assistant-bot/internal/converter"
	"assistant-bot/internal/repository"
	"assistant-bot/internal/repository/memory"
)

// ContactStore сохраняет адресную книгу в один файл
type ContactStore struct {
	store  jsonStore[converter.ContactDTO]
	logger *zap.Logger
}

// NewContactStore создает хранилище адресной книги по пути path
func NewContactStore(path string, logger *zap.Logger) *ContactStore {
	return &ContactStore{
		store:  jsonStore[converter.ContactDTO]{path: path},
		logger: logger.With(zap.String("book", "contacts"), zap.String("path", path)),
	}
}

// Save записывает книгу целиком. Пустая книга не записывается, чтобы не затереть существующий файл.
// Возвращает true, если файл был записан.
func (s *ContactStore) Save(ctx context.Context, book repository.ContactRepository) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if book.Len() == 0 {
		s.logger.Debug("address book is empty, skip save")
		return false, nil
	}
	if err := s.store.write(converter.AddressBookToDTO(book)); err != nil {
		s.logger.Error("failed to save address book", zap.Error(err))
		return false, err
	}
	s.logger.Info("address book saved", zap.Int("records", book.Len()))
	return true, nil
}

// Load читает книгу с диска. Отсутствующий или поврежденный файл дает пустую книгу.
func (s *ContactStore) Load(ctx context.Context) *memory.AddressBook {
	if ctx.Err() != nil {
		return memory.NewAddressBook()
	}
	dtos, err := s.store.read()
	if err != nil {
		logLoadFailure(s.logger, err)
		return memory.NewAddressBook()
	}
	book, err := converter.DTOToAddressBook(dtos)
	if err != nil {
		s.logger.Warn("address book file is corrupt, starting with an empty book", zap.Error(err))
		return memory.NewAddressBook()
	}
	s.logger.Info("address book loaded", zap.Int("records", book.Len()))
	return book
}

// NoteStore сохраняет книгу заметок в один файл
type NoteStore struct {
	store  jsonStore[converter.NoteDTO]
	logger *zap.Logger
}

// NewNoteStore создает хранилище книги заметок по пути path
func NewNoteStore(path string, logger *zap.Logger) *NoteStore {
	return &NoteStore{
		store:  jsonStore[converter.NoteDTO]{path: path},
		logger: logger.With(zap.String("book", "notes"), zap.String("path", path)),
	}
}

// Save записывает книгу заметок целиком, пустая книга не записывается
func (s *NoteStore) Save(ctx context.Context, book repository.NoteRepository) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if book.Len() == 0 {
		s.logger.Debug("notebook is empty, skip save")
		return false, nil
	}
	if err := s.store.write(converter.NoteBookToDTO(book)); err != nil {
		s.logger.Error("failed to save notebook", zap.Error(err))
		return false, err
	}
	s.logger.Info("notebook saved", zap.Int("records", book.Len()))
	return true, nil
}

// Load читает книгу заметок. Отсутствующий или поврежденный файл дает пустую книгу.
func (s *NoteStore) Load(ctx context.Context) *memory.NoteBook {
	if ctx.Err() != nil {
		return memory.NewNoteBook()
	}
	dtos, err := s.store.read()
	if err != nil {
		logLoadFailure(s.logger, err)
		return memory.NewNoteBook()
	}
	book, err := converter.DTOToNoteBook(dtos)
	if err != nil {
		s.logger.Warn("notebook file is corrupt, starting with an empty book", zap.Error(err))
		return memory.NewNoteBook()
	}
	s.logger.Info("notebook loaded", zap.Int("records", book.Len()))
	return book
}

func logLoadFailure(logger *zap.Logger, err error) {
	if errors.Is(err, fs.ErrNotExist) {
		logger.Info("no saved book found, starting with an empty book")
		return
	}
	logger.Warn("failed to load book, starting with an empty book", zap.Error(err))
}
