package model

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Record представляет контакт адресной книги.
// Имя является ключом в книге и меняется только через переименование в книге.
type Record struct {
	id       string
	name     Name
	phones   []Phone
	emails   []Email
	address  *string
	birthday Birthday
}

// NewRecord создает пустой контакт с новым UUID
func NewRecord(name Name) *Record {
	return RestoreRecord(uuid.New().String(), name)
}

// RestoreRecord создает контакт с уже известным ID (например, при загрузке из файла)
func RestoreRecord(id string, name Name) *Record {
	if id == "" {
		id = uuid.New().String()
	}
	return &Record{id: id, name: name}
}

// ID возвращает стабильный идентификатор контакта
func (r *Record) ID() string { return r.id }

// Name возвращает имя контакта (ключ в книге)
func (r *Record) Name() Name { return r.name }

// Phones возвращает копию списка телефонов
func (r *Record) Phones() []Phone { return slices.Clone(r.phones) }

// Emails возвращает копию списка адресов
func (r *Record) Emails() []Email { return slices.Clone(r.emails) }

// Address возвращает адрес и признак его наличия
func (r *Record) Address() (string, bool) {
	if r.address == nil {
		return "", false
	}
	return *r.address, true
}

// SetAddress устанавливает адрес
func (r *Record) SetAddress(address string) {
	address = strings.TrimSpace(address)
	r.address = &address
}

// Birthday возвращает дату рождения (нулевое значение, если не задана)
func (r *Record) Birthday() Birthday { return r.birthday }

// SetBirthday устанавливает дату рождения из сырого ввода.
// Некорректный ввод сбрасывает дату, результат сообщает, распознана ли дата.
func (r *Record) SetBirthday(raw string) bool {
	r.birthday = ParseBirthday(raw)
	return !r.birthday.IsZero()
}

// AddPhone валидирует телефон и добавляет его, если такого еще нет
func (r *Record) AddPhone(raw string) (Phone, error) {
	phone, err := NewPhone(raw)
	if err != nil {
		return "", err
	}
	if !slices.Contains(r.phones, phone) {
		r.phones = append(r.phones, phone)
	}
	return phone, nil
}

// FindPhone ищет телефон по сырому вводу
func (r *Record) FindPhone(raw string) (Phone, bool) {
	phone, err := NewPhone(raw)
	if err != nil {
		return "", false
	}
	return phone, slices.Contains(r.phones, phone)
}

// RemovePhone удаляет первое точное совпадение, отсутствие телефона не ошибка
func (r *Record) RemovePhone(phone Phone) {
	if i := slices.Index(r.phones, phone); i >= 0 {
		r.phones = slices.Delete(r.phones, i, i+1)
	}
}

// EditPhone заменяет старый телефон новым на той же позиции.
// Оба значения валидируются до изменения, при ошибке список не меняется.
func (r *Record) EditPhone(oldRaw, newRaw string) error {
	oldPhone, err := NewPhone(oldRaw)
	if err != nil {
		return err
	}
	newPhone, err := NewPhone(newRaw)
	if err != nil {
		return err
	}
	i := slices.Index(r.phones, oldPhone)
	if i < 0 {
		return NotFound("phone", oldPhone.String())
	}
	r.phones = replaceAt(r.phones, i, newPhone)
	return nil
}

// AddEmail валидирует адрес и добавляет его, если такого еще нет
func (r *Record) AddEmail(raw string) (Email, error) {
	email, err := NewEmail(raw)
	if err != nil {
		return "", err
	}
	if !slices.Contains(r.emails, email) {
		r.emails = append(r.emails, email)
	}
	return email, nil
}

// FindEmail ищет адрес по точному совпадению
func (r *Record) FindEmail(raw string) (Email, bool) {
	email := Email(strings.TrimSpace(raw))
	return email, slices.Contains(r.emails, email)
}

// RemoveEmail удаляет адрес, отсутствие адреса не ошибка
func (r *Record) RemoveEmail(raw string) {
	email := Email(strings.TrimSpace(raw))
	if i := slices.Index(r.emails, email); i >= 0 {
		r.emails = slices.Delete(r.emails, i, i+1)
	}
}

// EditEmail заменяет старый адрес новым на той же позиции.
// Оба значения валидируются до изменения, при ошибке список не меняется.
func (r *Record) EditEmail(oldRaw, newRaw string) error {
	oldEmail, err := NewEmail(oldRaw)
	if err != nil {
		return err
	}
	newEmail, err := NewEmail(newRaw)
	if err != nil {
		return err
	}
	i := slices.Index(r.emails, oldEmail)
	if i < 0 {
		return NotFound("email", oldEmail.String())
	}
	r.emails = replaceAt(r.emails, i, newEmail)
	return nil
}

// DaysToBirthday возвращает число дней до ближайшего дня рождения относительно today.
// Если дата не задана, второй результат false.
// День рождения 29 февраля в невисокосный год отмечается 1 марта.
func (r *Record) DaysToBirthday(today time.Time) (int, bool) {
	if r.birthday.IsZero() {
		return 0, false
	}
	return daysUntil(r.birthday.Time(), today), true
}

// Matches проверяет вхождение подстроки (без учета регистра) в имя, телефоны или адреса
func (r *Record) Matches(part string) bool {
	part = strings.ToLower(part)
	if strings.Contains(strings.ToLower(r.name.String()), part) {
		return true
	}
	for _, p := range r.phones {
		if strings.Contains(p.String(), part) {
			return true
		}
	}
	for _, e := range r.emails {
		if strings.Contains(strings.ToLower(e.String()), part) {
			return true
		}
	}
	return false
}

// Clone возвращает глубокую копию контакта
func (r *Record) Clone() *Record {
	c := *r
	c.phones = slices.Clone(r.phones)
	c.emails = slices.Clone(r.emails)
	if r.address != nil {
		address := *r.address
		c.address = &address
	}
	return &c
}

// Rename возвращает копию контакта с новым именем, ID сохраняется
func (r *Record) Rename(name Name) *Record {
	c := r.Clone()
	c.name = name
	return c
}

func (r *Record) String() string {
	address, _ := r.Address()
	return fmt.Sprintf("Contact name: %s\nPhones: %s\nE-mails: %s\nAddress: %s\nBirthday: %s",
		r.name,
		joinValues(r.phones),
		joinValues(r.emails),
		address,
		r.birthday,
	)
}

// daysUntil считает дни от today до следующего наступления месяца и дня даты
func daysUntil(date, today time.Time) int {
	start := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	// time.Date нормализует 29 февраля невисокосного года в 1 марта
	next := time.Date(start.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	if next.Before(start) {
		next = time.Date(start.Year()+1, date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	}
	return int(next.Sub(start).Hours() / 24)
}

func replaceAt[T comparable](items []T, i int, v T) []T {
	if j := slices.Index(items, v); j >= 0 && j != i {
		return slices.Delete(items, i, i+1)
	}
	items[i] = v
	return items
}

func joinValues[T fmt.Stringer](items []T) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		parts = append(parts, item.String())
	}
	return strings.Join(parts, "; ")
}
