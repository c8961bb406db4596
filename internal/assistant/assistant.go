package assistant

import (
	"context"
	"fmt"
	"io"

	"github.com/benbjohnson/clock"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"assistant-bot/internal/api/console"
	"assistant-bot/internal/config"
	"assistant-bot/internal/repository/file"
	svc "assistant-bot/internal/service"
	"assistant-bot/internal/service/contacts"
	"assistant-bot/internal/service/notes"
)

// Assistant собирает приложение: хранилища, сервисы и консоль
type Assistant struct {
	// Конфигурация
	Config *config.Config

	Logger *zap.Logger
	Clock  clock.Clock

	// Потоки консоли
	In  io.Reader
	Out io.Writer

	// Сервисы, доступны после Initialize
	Contacts svc.ContactService
	Notes    svc.NoteService
	Console  *console.Console
}

// New создает приложение. Компоненты создаются в Initialize.
func New(cfg *config.Config, logger *zap.Logger, clk clock.Clock, in io.Reader, out io.Writer) *Assistant {
	return &Assistant{
		Config: cfg,
		Logger: logger,
		Clock:  clk,
		In:     in,
		Out:    out,
	}
}

// Initialize инициализирует компоненты (Storage → Service → Console) и загружает книги с диска
func (a *Assistant) Initialize(ctx context.Context) error {
	if a.Config == nil {
		return fmt.Errorf("assistant: config is nil")
	}
	storage := a.Config.Storage

	contactStore := file.NewContactStore(storage.AddressBookPath(), a.Logger)
	noteStore := file.NewNoteStore(storage.NotebookPath(), a.Logger)
	a.Logger.Debug("initialized file storage",
		zap.String("address_book", storage.AddressBookPath()),
		zap.String("notebook", storage.NotebookPath()),
	)

	a.Contacts = contacts.NewContactService(contactStore, a.Clock, a.Logger)
	a.Notes = notes.NewNoteService(noteStore, a.Logger)
	a.Contacts.Load(ctx)
	a.Notes.Load(ctx)
	a.Logger.Info("books loaded",
		zap.Int("contacts", len(a.Contacts.List(ctx))),
		zap.Int("notes", len(a.Notes.List(ctx))),
	)

	a.Console = console.New(a.Contacts, a.Notes, a.In, a.Out, console.Options{
		PageSize:           a.Config.Assistant.PageSize,
		BirthdayWindowDays: a.Config.Assistant.BirthdayWindowDays,
	}, a.Logger)

	return nil
}

// Start запускает консоль в горутине.
// Возвращает канал, который получает результат работы консоли и закрывается.
func (a *Assistant) Start(ctx context.Context) <-chan error {
	done := make(chan error, 1)
	go func() {
		defer close(done)
		if err := a.Console.Run(ctx); err != nil {
			done <- fmt.Errorf("console error: %w", err)
		}
	}()
	return done
}

// Run обслуживает консоль до exit, конца ввода или отмены ctx
func (a *Assistant) Run(ctx context.Context) error {
	select {
	case err := <-a.Start(ctx):
		if ctx.Err() != nil {
			return nil
		}
		return err
	case <-ctx.Done():
		a.Logger.Info("interrupted, stopping console")
		return nil
	}
}

// Shutdown сохраняет обе книги. Ошибки записи не теряются: они объединяются и возвращаются.
func (a *Assistant) Shutdown(ctx context.Context) error {
	a.Logger.Debug("starting shutdown")

	var err error
	if a.Contacts != nil {
		err = multierr.Append(err, a.save(ctx, "address book", a.Contacts.Save))
	}
	if a.Notes != nil {
		err = multierr.Append(err, a.save(ctx, "notebook", a.Notes.Save))
	}
	return err
}

func (a *Assistant) save(ctx context.Context, book string, save func(context.Context) (bool, error)) error {
	saved, err := save(ctx)
	if err != nil {
		a.Logger.Error("failed to save book", zap.String("book", book), zap.Error(err))
		fmt.Fprintf(a.Out, "Failed to save %s: %v\n", book, err)
		return fmt.Errorf("save %s: %w", book, err)
	}
	if !saved {
		a.Logger.Debug("book not written", zap.String("book", book))
	}
	return nil
}
