package service

import (
	"context"

	"assistant-bot/internal/model"
	"assistant-bot/internal/repository"
	"assistant-bot/internal/repository/memory"
)

// ContactStorage сохраняет и загружает адресную книгу целиком
type ContactStorage interface {
	Save(ctx context.Context, book repository.ContactRepository) (bool, error)
	Load(ctx context.Context) *memory.AddressBook
}

// NoteStorage сохраняет и загружает книгу заметок целиком
type NoteStorage interface {
	Save(ctx context.Context, book repository.NoteRepository) (bool, error)
	Load(ctx context.Context) *memory.NoteBook
}

// ContactService интерфейс для бизнес-логики работы с контактами
type ContactService interface {
	// Load заменяет книгу в памяти сохраненной книгой (или пустой)
	Load(ctx context.Context)

	// Save записывает книгу на диск, возвращает true если файл записан
	Save(ctx context.Context) (bool, error)

	// Create создает контакт (существующий контакт с тем же именем перезаписывается)
	Create(ctx context.Context, input model.ContactInput) (*model.Record, error)

	// Get возвращает контакт по имени
	Get(ctx context.Context, name string) (*model.Record, error)

	// Delete удаляет контакт по имени
	Delete(ctx context.Context, name string) error

	// Rename переименовывает контакт
	Rename(ctx context.Context, oldName, newName string) error

	// SetAddress устанавливает адрес контакта
	SetAddress(ctx context.Context, name, address string) error

	// SetBirthday устанавливает дату рождения, false если дата не распознана
	SetBirthday(ctx context.Context, name, birthday string) (bool, error)

	// AddPhone добавляет телефон контакту
	AddPhone(ctx context.Context, name, phone string) (model.Phone, error)

	// EditPhone заменяет телефон контакта
	EditPhone(ctx context.Context, name, oldPhone, newPhone string) error

	// RemovePhone удаляет телефон контакта
	RemovePhone(ctx context.Context, name, phone string) error

	// AddEmail добавляет адрес контакту
	AddEmail(ctx context.Context, name, email string) (model.Email, error)

	// EditEmail заменяет адрес контакта
	EditEmail(ctx context.Context, name, oldEmail, newEmail string) error

	// RemoveEmail удаляет адрес контакта
	RemoveEmail(ctx context.Context, name, email string) error

	// DaysToBirthday возвращает число дней до дня рождения, false если дата не задана
	DaysToBirthday(ctx context.Context, name string) (int, bool, error)

	// Search ищет контакты по подстроке
	Search(ctx context.Context, part string) []*model.Record

	// UpcomingBirthdays возвращает контакты с днем рождения в ближайшие days дней
	UpcomingBirthdays(ctx context.Context, days int) []*model.Record

	// List возвращает все контакты
	List(ctx context.Context) []*model.Record
}

// NoteSearchField поле для поиска заметок
type NoteSearchField string

const (
	SearchByName   NoteSearchField = "name"
	SearchByTag    NoteSearchField = "tag"
	SearchByStatus NoteSearchField = "status"
)

// NoteService интерфейс для бизнес-логики работы с заметками
type NoteService interface {
	// Load заменяет книгу в памяти сохраненной книгой (или пустой)
	Load(ctx context.Context)

	// Save записывает книгу на диск, возвращает true если файл записан
	Save(ctx context.Context) (bool, error)

	// Exists проверяет, есть ли заметка с таким именем
	Exists(ctx context.Context, name string) bool

	// Create создает заметку. Если overwrite=false и имя занято, возвращается ErrAlreadyExists.
	Create(ctx context.Context, name, note, tag string, overwrite bool) (*model.RecordNote, error)

	// Get возвращает заметку по имени
	Get(ctx context.Context, name string) (*model.RecordNote, error)

	// List возвращает все заметки
	List(ctx context.Context) []*model.RecordNote

	// Search ищет заметки по имени, тегу или статусу
	Search(ctx context.Context, field NoteSearchField, keyword string) ([]*model.RecordNote, error)

	// ChangeName переименовывает заметку
	ChangeName(ctx context.Context, oldName, newName string) error

	// ChangeNote заменяет текст заметки
	ChangeNote(ctx context.Context, name, note string) error

	// ChangeStatus меняет статус заметки
	ChangeStatus(ctx context.Context, name, status string) error

	// AddTag добавляет тег
	AddTag(ctx context.Context, name, tag string) error

	// DeleteTag удаляет тег
	DeleteTag(ctx context.Context, name, tag string) error

	// ChangeTag заменяет тег
	ChangeTag(ctx context.Context, name, oldTag, newTag string) error

	// Tags возвращает теги заметки
	Tags(ctx context.Context, name string) ([]model.Tag, error)

	// Delete удаляет заметку по имени
	Delete(ctx context.Context, name string) error

	// DeleteDone удаляет все выполненные заметки и возвращает их число
	DeleteDone(ctx context.Context) int
}
