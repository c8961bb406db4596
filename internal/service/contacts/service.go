package contacts

import (
	"context"
	"strings"

	"github.com/benbjohnson/clock"
	"go.uber.org/zap"

	"assistant-bot/internal/model"
	"assistant-bot/internal/repository"
	"assistant-bot/internal/repository/memory"
	svc "assistant-bot/internal/service"
)

var _ svc.ContactService = (*service)(nil)

type service struct {
	storage svc.ContactStorage
	book    repository.ContactRepository
	clock   clock.Clock
	logger  *zap.Logger
}

// NewContactService создает сервис контактов с пустой книгой.
// Книгу с диска подгружает Load.
func NewContactService(storage svc.ContactStorage, clk clock.Clock, logger *zap.Logger) svc.ContactService {
	return &service{
		storage: storage,
		book:    memory.NewAddressBook(),
		clock:   clk,
		logger:  logger.Named("contacts"),
	}
}

// Load заменяет книгу в памяти сохраненной книгой
func (s *service) Load(ctx context.Context) {
	s.book = s.storage.Load(ctx)
}

// Save записывает книгу на диск
func (s *service) Save(ctx context.Context) (bool, error) {
	return s.storage.Save(ctx, s.book)
}

// Create создает контакт, существующий контакт с тем же именем перезаписывается
func (s *service) Create(ctx context.Context, input model.ContactInput) (*model.Record, error) {
	record, err := s.book.Create(input)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("contact saved", zap.String("name", record.Name().String()), zap.String("id", record.ID()))
	return record, nil
}

// Get возвращает контакт по имени
func (s *service) Get(ctx context.Context, name string) (*model.Record, error) {
	name = strings.TrimSpace(name)
	record := s.book.Find(name)
	if record == nil {
		return nil, model.NotFound("contact", name)
	}
	return record, nil
}

// Delete удаляет контакт по имени
func (s *service) Delete(ctx context.Context, name string) error {
	if _, err := s.Get(ctx, name); err != nil {
		return err
	}
	s.book.Delete(strings.TrimSpace(name))
	s.logger.Debug("contact deleted", zap.String("name", name))
	return nil
}

// Rename переименовывает контакт
func (s *service) Rename(ctx context.Context, oldName, newName string) error {
	if err := s.book.Rename(strings.TrimSpace(oldName), newName); err != nil {
		return err
	}
	s.logger.Debug("contact renamed", zap.String("from", oldName), zap.String("to", newName))
	return nil
}

// update меняет контакт через книгу: изменение применяется к копии под блокировкой книги
func (s *service) update(name string, apply func(r *model.Record) error) error {
	_, err := s.book.Update(strings.TrimSpace(name), apply)
	return err
}

// SetAddress устанавливает адрес контакта
func (s *service) SetAddress(ctx context.Context, name, address string) error {
	return s.update(name, func(r *model.Record) error {
		r.SetAddress(address)
		return nil
	})
}

// SetBirthday устанавливает дату рождения
func (s *service) SetBirthday(ctx context.Context, name, birthday string) (bool, error) {
	var recognized bool
	err := s.update(name, func(r *model.Record) error {
		recognized = r.SetBirthday(birthday)
		return nil
	})
	return recognized, err
}

// AddPhone добавляет телефон контакту
func (s *service) AddPhone(ctx context.Context, name, phone string) (model.Phone, error) {
	var added model.Phone
	err := s.update(name, func(r *model.Record) error {
		var err error
		added, err = r.AddPhone(phone)
		return err
	})
	if err != nil {
		return "", err
	}
	return added, nil
}

// EditPhone заменяет телефон контакта
func (s *service) EditPhone(ctx context.Context, name, oldPhone, newPhone string) error {
	return s.update(name, func(r *model.Record) error {
		return r.EditPhone(oldPhone, newPhone)
	})
}

// RemovePhone удаляет телефон контакта
func (s *service) RemovePhone(ctx context.Context, name, phone string) error {
	return s.update(name, func(r *model.Record) error {
		found, ok := r.FindPhone(phone)
		if !ok {
			return model.NotFound("phone", phone)
		}
		r.RemovePhone(found)
		return nil
	})
}

// AddEmail добавляет адрес контакту
func (s *service) AddEmail(ctx context.Context, name, email string) (model.Email, error) {
	var added model.Email
	err := s.update(name, func(r *model.Record) error {
		var err error
		added, err = r.AddEmail(email)
		return err
	})
	if err != nil {
		return "", err
	}
	return added, nil
}

// EditEmail заменяет адрес контакта
func (s *service) EditEmail(ctx context.Context, name, oldEmail, newEmail string) error {
	return s.update(name, func(r *model.Record) error {
		return r.EditEmail(oldEmail, newEmail)
	})
}

// RemoveEmail удаляет адрес контакта
func (s *service) RemoveEmail(ctx context.Context, name, email string) error {
	return s.update(name, func(r *model.Record) error {
		found, ok := r.FindEmail(email)
		if !ok {
			return model.NotFound("email", email)
		}
		r.RemoveEmail(found.String())
		return nil
	})
}

// DaysToBirthday возвращает число дней до дня рождения контакта
func (s *service) DaysToBirthday(ctx context.Context, name string) (int, bool, error) {
	record, err := s.Get(ctx, name)
	if err != nil {
		return 0, false, err
	}
	days, ok := record.DaysToBirthday(s.clock.Now())
	return days, ok, nil
}

// Search ищет контакты по подстроке
func (s *service) Search(ctx context.Context, part string) []*model.Record {
	return s.book.Search(part)
}

// UpcomingBirthdays возвращает контакты с днем рождения в ближайшие days дней
func (s *service) UpcomingBirthdays(ctx context.Context, days int) []*model.Record {
	return s.book.UpcomingBirthdays(s.clock.Now(), days)
}

// List возвращает все контакты
func (s *service) List(ctx context.Context) []*model.Record {
	return s.book.All()
}
