package model

import (
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"
)

// RecordNote представляет заметку (доменная модель)
type RecordNote struct {
	ID     string   // UUID заметки
	Name   NoteName // Имя заметки, ключ в книге
	Note   NoteBody // Текст заметки
	Tags   []Tag    // Теги без повторов
	Status Status   // Статус выполнения
}

// NewRecordNote создает заметку со статусом "in progress" и необязательным первым тегом
func NewRecordNote(name NoteName, note NoteBody, tags ...Tag) *RecordNote {
	n := &RecordNote{
		ID:     uuid.New().String(),
		Name:   name,
		Note:   note,
		Status: StatusInProgress,
	}
	for _, tag := range tags {
		n.AddTag(tag)
	}
	return n
}

// AddTag добавляет тег, если тега с таким значением еще нет
func (n *RecordNote) AddTag(tag Tag) {
	if tag == "" || slices.Contains(n.Tags, tag) {
		return
	}
	n.Tags = append(n.Tags, tag)
}

// DeleteTag удаляет тег, отсутствие тега не ошибка
func (n *RecordNote) DeleteTag(tag Tag) {
	n.Tags = slices.DeleteFunc(n.Tags, func(t Tag) bool { return t == tag })
}

// ChangeTag заменяет первый тег со значением oldTag на newTag
func (n *RecordNote) ChangeTag(oldTag, newTag Tag) error {
	i := slices.Index(n.Tags, oldTag)
	if i < 0 {
		return NotFound("tag", oldTag.String())
	}
	n.Tags = replaceAt(n.Tags, i, newTag)
	return nil
}

// HasTag проверяет наличие тега без учета регистра
func (n *RecordNote) HasTag(keyword string) bool {
	for _, tag := range n.Tags {
		if strings.EqualFold(tag.String(), keyword) {
			return true
		}
	}
	return false
}

// Clone возвращает глубокую копию заметки
func (n *RecordNote) Clone() *RecordNote {
	c := *n
	c.Tags = slices.Clone(n.Tags)
	return &c
}

func (n *RecordNote) String() string {
	return fmt.Sprintf("Name: %s\nNote: %s\nTags: %s\nStatus: %s",
		n.Name, n.Note, joinValues(n.Tags), n.Status)
}
