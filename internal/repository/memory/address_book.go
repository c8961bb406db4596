package memory

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"assistant-bot/internal/model"
	"assistant-bot/internal/repository"
)

var _ repository.ContactRepository = (*AddressBook)(nil)

// AddressBook адресная книга: контакты по имени
type AddressBook struct {
	mu      sync.RWMutex
	records store[*model.Record]
}

// NewAddressBook создает пустую адресную книгу
func NewAddressBook() *AddressBook {
	return &AddressBook{records: newStore[*model.Record]()}
}

// Add сохраняет контакт под его именем (last-write-wins)
func (b *AddressBook) Add(record *model.Record) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.records.set(record.Name().String(), record)
}

// AddUnique сохраняет контакт только если имя свободно
func (b *AddressBook) AddUnique(record *model.Record) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	key := record.Name().String()
	if _, exists := b.records.get(key); exists {
		return fmt.Errorf("contact %q: %w", key, ErrAlreadyExists)
	}
	b.records.set(key, record)
	return nil
}

// Create валидирует все поля и сохраняет контакт (last-write-wins)
func (b *AddressBook) Create(input model.ContactInput) (*model.Record, error) {
	record, err := input.Build()
	if err != nil {
		return nil, err
	}
	b.Add(record)
	return record, nil
}

// Find возвращает контакт по точному имени или nil
func (b *AddressBook) Find(name string) *model.Record {
	b.mu.RLock()
	defer b.mu.RUnlock()

	record, _ := b.records.get(name)
	return record
}

// Delete удаляет контакт, отсутствие контакта не ошибка
func (b *AddressBook) Delete(name string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.records.remove(name)
}

// Rename переносит контакт под новое имя, контакт под новым именем перезаписывается.
// Новое имя валидируется до изменения книги.
func (b *AddressBook) Rename(oldName, newName string) error {
	name, err := model.NewName(newName)
	if err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	record, exists := b.records.get(oldName)
	if !exists {
		return model.NotFound("contact", oldName)
	}
	b.records.rekey(oldName, name.String(), record.Rename(name))
	return nil
}

// Update применяет изменение к копии контакта и заменяет контакт копией только при успехе.
// Сохраненные контакты не меняются на месте, поэтому ранее полученные указатели можно читать без блокировки.
func (b *AddressBook) Update(name string, apply func(r *model.Record) error) (*model.Record, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	record, exists := b.records.get(name)
	if !exists {
		return nil, model.NotFound("contact", name)
	}
	changed := record.Clone()
	if err := apply(changed); err != nil {
		return nil, err
	}
	b.records.set(name, changed)
	return changed, nil
}

// Search ищет подстроку в имени, телефонах и адресах без учета регистра
func (b *AddressBook) Search(part string) []*model.Record {
	b.mu.RLock()
	defer b.mu.RUnlock()

	result := make([]*model.Record, 0)
	for _, record := range b.records.values() {
		if record.Matches(part) {
			result = append(result, record)
		}
	}
	return result
}

// UpcomingBirthdays возвращает контакты, у которых до дня рождения меньше days дней,
// отсортированные по числу дней, затем по имени
func (b *AddressBook) UpcomingBirthdays(today time.Time, days int) []*model.Record {
	b.mu.RLock()
	defer b.mu.RUnlock()

	type upcoming struct {
		record *model.Record
		days   int
	}
	matched := make([]upcoming, 0)
	for _, record := range b.records.values() {
		left, ok := record.DaysToBirthday(today)
		if ok && left < days {
			matched = append(matched, upcoming{record: record, days: left})
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		if matched[i].days != matched[j].days {
			return matched[i].days < matched[j].days
		}
		return strings.ToLower(matched[i].record.Name().String()) < strings.ToLower(matched[j].record.Name().String())
	})

	result := make([]*model.Record, 0, len(matched))
	for _, m := range matched {
		result = append(result, m.record)
	}
	return result
}

// All возвращает все контакты в порядке добавления
func (b *AddressBook) All() []*model.Record {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.records.values()
}

// Len возвращает число контактов
func (b *AddressBook) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.records.len()
}
