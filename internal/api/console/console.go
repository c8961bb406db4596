package console

import (
	"context"
	"errors"
	"io"
	"slices"
	"strings"

	"go.uber.org/zap"

	svc "assistant-bot/internal/service"
)

// Options настройки консоли
type Options struct {
	// PageSize число записей на страницу при выводе книги, 0 выводит все сразу
	PageSize int
	// BirthdayWindowDays окно по умолчанию для show_birthdays
	BirthdayWindowDays int
}

// Console интерактивный цикл команд поверх сервисов контактов и заметок
type Console struct {
	contacts svc.ContactService
	notes    svc.NoteService
	prompter *Prompter
	options  Options
	wrap     Middleware
}

// New создает консоль. Каждая команда оборачивается LoggingMiddleware.
func New(contacts svc.ContactService, notes svc.NoteService, in io.Reader, out io.Writer, options Options, logger *zap.Logger) *Console {
	logger = logger.Named("console")
	return &Console{
		contacts: contacts,
		notes:    notes,
		prompter: NewPrompter(in, out),
		options:  options,
		wrap:     Chain(LoggingMiddleware(logger)),
	}
}

// command одна команда меню
type command struct {
	name    string
	aliases []string
	help    string
	run     HandlerFunc
}

// menu набор команд с собственным приглашением и словами выхода
type menu struct {
	title    string
	prompt   string
	exit     []string
	farewell string
	commands []command
}

func (m *menu) lookup(name string) (command, bool) {
	for _, cmd := range m.commands {
		if cmd.name == name || slices.Contains(cmd.aliases, name) {
			return cmd, true
		}
	}
	return command{}, false
}

// Run выводит приветствие и обслуживает главное меню до exit или конца ввода
func (c *Console) Run(ctx context.Context) error {
	c.prompter.Println(strings.Repeat("*", 50))
	c.prompter.Println("Welcome to Assistant-bot")
	c.prompter.Println(strings.Repeat("-", 50))

	return c.serve(ctx, c.contactMenu())
}

func (c *Console) serve(ctx context.Context, m *menu) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		line, err := c.prompter.Line(m.prompt)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		line = strings.ToLower(line)
		if line == "" {
			continue
		}

		if slices.Contains(m.exit, line) {
			c.prompter.Println(m.farewell)
			return nil
		}

		name := strings.Fields(line)[0]
		cmd, ok := m.lookup(name)
		if !ok {
			c.prompter.Println("Wrong command")
			continue
		}

		result, err := c.wrap(m.title+"."+cmd.name, cmd.run)(ctx, c.prompter)
		switch {
		case errors.Is(err, io.EOF):
			return nil
		case err != nil:
			c.prompter.Println(userMessage(err))
		case result != "":
			c.prompter.Println(result)
		}
	}
}

func (c *Console) helpFor(m *menu) HandlerFunc {
	return func(ctx context.Context, p *Prompter) (string, error) {
		for _, cmd := range m.commands {
			p.Printf("- [%s] %s\n", cmd.name, cmd.help)
		}
		p.Printf("- [%s] leave this menu\n", strings.Join(m.exit, "] or ["))
		p.Println("- [cancel] abort the current command at any prompt")
		return "", nil
	}
}

// pages делит список на страницы по size элементов
func pages[T any](items []T, size int) [][]T {
	if size <= 0 || size >= len(items) {
		if len(items) == 0 {
			return nil
		}
		return [][]T{items}
	}
	return slices.Collect(slices.Chunk(items, size))
}

// showPaged выводит страницы по очереди, между страницами ждет Enter (cancel прерывает)
func showPaged[T any](p *Prompter, items []T, size int, render func(page []T, offset int)) error {
	offset := 0
	all := pages(items, size)
	for i, page := range all {
		render(page, offset)
		offset += len(page)
		if i < len(all)-1 {
			if _, err := p.Ask("Press Enter for the next page or type cancel: "); err != nil {
				return err
			}
		}
	}
	return nil
}
