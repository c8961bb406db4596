package converter

import (
	"fmt"

	"assistant-bot/internal/model"
	"assistant-bot/internal/repository"
	"assistant-bot/internal/repository/memory"
)

// ContactDTO контакт в формате хранения.
// Отсутствующие адрес и дата рождения сохраняются как null, а не как пустая строка.
type ContactDTO struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Phones   []string `json:"phones"`
	Emails   []string `json:"emails"`
	Address  *string  `json:"address"`
	Birthday *string  `json:"birthday"`
}

// RecordToDTO конвертирует контакт в формат хранения
func RecordToDTO(record *model.Record) ContactDTO {
	dto := ContactDTO{
		ID:     record.ID(),
		Name:   record.Name().String(),
		Phones: stringsOf(record.Phones()),
		Emails: stringsOf(record.Emails()),
	}
	if address, ok := record.Address(); ok {
		dto.Address = &address
	}
	if birthday := record.Birthday(); !birthday.IsZero() {
		s := birthday.String()
		dto.Birthday = &s
	}
	return dto
}

// DTOToRecord восстанавливает контакт, все поля проходят повторную валидацию
func DTOToRecord(dto ContactDTO) (*model.Record, error) {
	name, err := model.NewName(dto.Name)
	if err != nil {
		return nil, err
	}

	record := model.RestoreRecord(dto.ID, name)
	for _, phone := range dto.Phones {
		if _, err := record.AddPhone(phone); err != nil {
			return nil, fmt.Errorf("contact %q: %w", dto.Name, err)
		}
	}
	for _, email := range dto.Emails {
		if _, err := record.AddEmail(email); err != nil {
			return nil, fmt.Errorf("contact %q: %w", dto.Name, err)
		}
	}
	if dto.Address != nil {
		record.SetAddress(*dto.Address)
	}
	if dto.Birthday != nil && !record.SetBirthday(*dto.Birthday) {
		return nil, fmt.Errorf("contact %q: birthday %q is not a date", dto.Name, *dto.Birthday)
	}
	return record, nil
}

// AddressBookToDTO конвертирует книгу в слайс контактов в порядке отображения
func AddressBookToDTO(book repository.ContactRepository) []ContactDTO {
	records := book.All()
	dtos := make([]ContactDTO, len(records))
	for i, record := range records {
		dtos[i] = RecordToDTO(record)
	}
	return dtos
}

// DTOToAddressBook собирает книгу из слайса контактов
func DTOToAddressBook(dtos []ContactDTO) (*memory.AddressBook, error) {
	book := memory.NewAddressBook()
	for _, dto := range dtos {
		record, err := DTOToRecord(dto)
		if err != nil {
			return nil, err
		}
		book.Add(record)
	}
	return book, nil
}

func stringsOf[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}
