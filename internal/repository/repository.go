package repository

import (
	"time"

	"assistant-bot/internal/model"
)

// ContactRepository интерфейс адресной книги: контакты по ключу-имени
type ContactRepository interface {
	// Add сохраняет контакт под его именем, существующий контакт перезаписывается
	Add(record *model.Record)

	// AddUnique сохраняет контакт только если имя свободно
	AddUnique(record *model.Record) error

	// Create валидирует все поля и сохраняет новый контакт (с перезаписью)
	Create(input model.ContactInput) (*model.Record, error)

	// Find возвращает контакт по точному имени или nil
	Find(name string) *model.Record

	// Delete удаляет контакт, отсутствие контакта не ошибка
	Delete(name string)

	// Rename переносит контакт под новое имя
	Rename(oldName, newName string) error

	// Update меняет копию контакта под блокировкой книги и сохраняет ее при успехе
	Update(name string, apply func(r *model.Record) error) (*model.Record, error)

	// Search ищет подстроку в имени, телефонах и адресах без учета регистра
	Search(part string) []*model.Record

	// UpcomingBirthdays возвращает контакты, у которых до дня рождения меньше days дней
	UpcomingBirthdays(today time.Time, days int) []*model.Record

	// All возвращает все контакты в порядке добавления
	All() []*model.Record

	// Len возвращает число контактов
	Len() int
}

// NoteRepository интерфейс книги заметок
type NoteRepository interface {
	// AddNote сохраняет заметку под ее именем, существующая заметка перезаписывается
	AddNote(note *model.RecordNote)

	// AddUnique сохраняет заметку только если имя свободно
	AddUnique(note *model.RecordNote) error

	// ShowRecord возвращает заметку по точному имени или nil
	ShowRecord(name string) *model.RecordNote

	// Delete удаляет заметку, отсутствие заметки не ошибка
	Delete(name string)

	// DeleteNotesByStatus удаляет все заметки с указанным статусом и возвращает их число
	DeleteNotesByStatus(status model.Status) int

	// FindInfoByName ищет заметку по имени (точное совпадение без учета регистра)
	FindInfoByName(keyword string) []*model.RecordNote

	// FindInfoByTag ищет заметки по тегу (точное совпадение без учета регистра)
	FindInfoByTag(keyword string) []*model.RecordNote

	// FindInfoByStatus ищет заметки по статусу (точное совпадение без учета регистра)
	FindInfoByStatus(keyword string) []*model.RecordNote

	// ChangeName переименовывает заметку
	ChangeName(oldName, newName string) error

	// ChangeNote заменяет текст заметки
	ChangeNote(name, note string) error

	// ChangeStatus меняет статус заметки
	ChangeStatus(name, status string) error

	// AddTag добавляет тег к заметке
	AddTag(name, tag string) error

	// DeleteTag удаляет тег у заметки
	DeleteTag(name, tag string) error

	// ChangeTag заменяет тег у заметки
	ChangeTag(name, oldTag, newTag string) error

	// Tags возвращает теги заметки
	Tags(name string) ([]model.Tag, error)

	// All возвращает все заметки в порядке добавления
	All() []*model.RecordNote

	// Len возвращает число заметок
	Len() int
}
