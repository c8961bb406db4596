package model

// ContactInput сырые данные для создания контакта
type ContactInput struct {
	Name     string
	Phones   []string
	Emails   []string
	Address  *string
	Birthday string
}

// Build валидирует все поля и собирает контакт.
// Ошибка любого строгого поля отменяет создание целиком, дата рождения разбирается мягко.
func (in ContactInput) Build() (*Record, error) {
	name, err := NewName(in.Name)
	if err != nil {
		return nil, err
	}

	record := NewRecord(name)
	for _, raw := range in.Phones {
		if _, err := record.AddPhone(raw); err != nil {
			return nil, err
		}
	}
	for _, raw := range in.Emails {
		if _, err := record.AddEmail(raw); err != nil {
			return nil, err
		}
	}
	if in.Address != nil {
		record.SetAddress(*in.Address)
	}
	if in.Birthday != "" {
		record.SetBirthday(in.Birthday)
	}

	return record, nil
}
