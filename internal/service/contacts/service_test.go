package contacts

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"assistant-bot/internal/model"
	"assistant-bot/internal/repository"
	"assistant-bot/internal/repository/memory"
	svc "assistant-bot/internal/service"
)

// mockStorage - mock хранилища адресной книги
type mockStorage struct {
	loadFunc func(ctx context.Context) *memory.AddressBook
	saveFunc func(ctx context.Context, book repository.ContactRepository) (bool, error)
}

func (m *mockStorage) Save(ctx context.Context, book repository.ContactRepository) (bool, error) {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, book)
	}
	return book.Len() > 0, nil
}

func (m *mockStorage) Load(ctx context.Context) *memory.AddressBook {
	if m.loadFunc != nil {
		return m.loadFunc(ctx)
	}
	return memory.NewAddressBook()
}

var _ svc.ContactStorage = (*mockStorage)(nil)

func newTestService(t *testing.T) (svc.ContactService, *clock.Mock) {
	t.Helper()
	clk := clock.NewMock()
	clk.Set(time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC))
	return NewContactService(&mockStorage{}, clk, zap.NewNop()), clk
}

func TestContactService_AliceScenario(t *testing.T) {
	ctx := context.Background()
	service, _ := newTestService(t)

	_, err := service.Create(ctx, model.ContactInput{Name: "Alice", Phones: []string{"067 123 45 67"}})
	require.NoError(t, err)

	record, err := service.Get(ctx, "Alice")
	require.NoError(t, err)
	assert.Equal(t, []model.Phone{"+380671234567"}, record.Phones())
}

func TestContactService_GetMissing(t *testing.T) {
	ctx := context.Background()
	service, _ := newTestService(t)

	_, err := service.Get(ctx, "Nobody")
	require.Error(t, err)

	var notFound *model.NotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "contact", notFound.Entity)
	assert.Equal(t, "Nobody", notFound.Key)
}

func TestContactService_DeleteThenFind(t *testing.T) {
	ctx := context.Background()
	service, _ := newTestService(t)
	_, err := service.Create(ctx, model.ContactInput{Name: "Alice"})
	require.NoError(t, err)

	require.NoError(t, service.Delete(ctx, "Alice"))
	_, err = service.Get(ctx, "Alice")
	assert.ErrorIs(t, err, model.ErrNotFound)

	assert.ErrorIs(t, service.Delete(ctx, "Alice"), model.ErrNotFound)
}

func TestContactService_PhonesAndEmails(t *testing.T) {
	ctx := context.Background()
	service, _ := newTestService(t)
	_, err := service.Create(ctx, model.ContactInput{Name: "Alice"})
	require.NoError(t, err)

	phone, err := service.AddPhone(ctx, "Alice", "0671234567")
	require.NoError(t, err)
	assert.Equal(t, model.Phone("+380671234567"), phone)

	require.NoError(t, service.EditPhone(ctx, "Alice", "0671234567", "0501234567"))
	assert.ErrorIs(t, service.EditPhone(ctx, "Alice", "0501234567", "x"), model.ErrValidation)
	assert.ErrorIs(t, service.RemovePhone(ctx, "Alice", "0671234567"), model.ErrNotFound)
	require.NoError(t, service.RemovePhone(ctx, "Alice", "+38 050 123 45 67"))

	_, err = service.AddEmail(ctx, "Alice", "alice@example.com")
	require.NoError(t, err)
	require.NoError(t, service.EditEmail(ctx, "Alice", "alice@example.com", "alice@mail.org"))

	record, err := service.Get(ctx, "Alice")
	require.NoError(t, err)
	assert.Empty(t, record.Phones())
	assert.Equal(t, []model.Email{"alice@mail.org"}, record.Emails())

	_, err = service.AddPhone(ctx, "Bob", "0671234567")
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestContactService_AddressAndBirthday(t *testing.T) {
	ctx := context.Background()
	service, clk := newTestService(t)
	_, err := service.Create(ctx, model.ContactInput{Name: "Alice"})
	require.NoError(t, err)

	require.NoError(t, service.SetAddress(ctx, "Alice", " Kyiv "))
	ok, err := service.SetBirthday(ctx, "Alice", "1990-10-25")
	require.NoError(t, err)
	assert.True(t, ok)

	days, ok, err := service.DaysToBirthday(ctx, "Alice")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 7, days)

	clk.Add(24 * time.Hour)
	days, _, _ = service.DaysToBirthday(ctx, "Alice")
	assert.Equal(t, 6, days)

	ok, err = service.SetBirthday(ctx, "Alice", "25/10/1990")
	require.NoError(t, err)
	assert.False(t, ok)
	_, ok, err = service.DaysToBirthday(ctx, "Alice")
	require.NoError(t, err)
	assert.False(t, ok)

	record, _ := service.Get(ctx, "Alice")
	address, present := record.Address()
	assert.True(t, present)
	assert.Equal(t, "Kyiv", address)
}

func TestContactService_UpcomingBirthdaysUsesClock(t *testing.T) {
	ctx := context.Background()
	service, clk := newTestService(t)
	_, err := service.Create(ctx, model.ContactInput{Name: "Alice", Birthday: "1990-10-20"})
	require.NoError(t, err)
	_, err = service.Create(ctx, model.ContactInput{Name: "Bob", Birthday: "1990-11-30"})
	require.NoError(t, err)

	got := service.UpcomingBirthdays(ctx, 7)
	require.Len(t, got, 1)
	assert.Equal(t, model.Name("Alice"), got[0].Name())

	clk.Add(40 * 24 * time.Hour)
	got = service.UpcomingBirthdays(ctx, 7)
	require.Len(t, got, 1)
	assert.Equal(t, model.Name("Bob"), got[0].Name())
}

func TestContactService_RenameAndSearch(t *testing.T) {
	ctx := context.Background()
	service, _ := newTestService(t)
	_, err := service.Create(ctx, model.ContactInput{Name: "Alice", Emails: []string{"alice@example.com"}})
	require.NoError(t, err)

	require.NoError(t, service.Rename(ctx, "Alice", "Alicia"))
	assert.Len(t, service.Search(ctx, "licia"), 1)
	assert.Len(t, service.Search(ctx, "EXAMPLE"), 1)
	assert.Empty(t, service.Search(ctx, "bob"))
	assert.Len(t, service.List(ctx), 1)
}

func TestContactService_LoadAndSave(t *testing.T) {
	ctx := context.Background()
	stored := memory.NewAddressBook()
	_, err := stored.Create(model.ContactInput{Name: "Stored"})
	require.NoError(t, err)

	saveErr := errors.New("disk full")
	storage := &mockStorage{
		loadFunc: func(ctx context.Context) *memory.AddressBook { return stored },
		saveFunc: func(ctx context.Context, book repository.ContactRepository) (bool, error) {
			return false, saveErr
		},
	}
	service := NewContactService(storage, clock.NewMock(), zap.NewNop())

	service.Load(ctx)
	_, err = service.Get(ctx, "Stored")
	require.NoError(t, err)

	saved, err := service.Save(ctx)
	assert.False(t, saved)
	assert.ErrorIs(t, err, saveErr)
}
