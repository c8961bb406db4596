package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/benbjohnson/clock"
	"github.com/urfave/cli/v2"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"assistant-bot/internal/assistant"
	"assistant-bot/internal/config"
	"assistant-bot/internal/logger"
)

const (
	appName           = "assistant-bot"
	defaultConfigFile = "config.yml"
)

func newApp() *cli.App {
	return &cli.App{
		Name:    appName,
		Usage:   "Contact and note book assistant",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Configuration file path",
				Value:   defaultConfigFile,
				EnvVars: []string{"ASSISTANT_CONFIG"},
			},
		},
		Action: runAction,
		Commands: []*cli.Command{
			{
				Name:   "run",
				Usage:  "Start the interactive assistant (default)",
				Action: runAction,
			},
			{
				Name:  "birthdays",
				Usage: "Print contacts with a birthday in the next N days & exit",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "days",
						Usage: "Window in days, defaults to assistant.birthday_window_days",
					},
				},
				Action: birthdaysAction,
			},
			{
				Name:      "search",
				Usage:     "Print contacts matching a substring & exit",
				ArgsUsage: "<substring>",
				Action:    searchAction,
			},
			versionCommand(),
		},
	}
}

// bootstrap загружает конфигурацию, создает логгер и инициализирует приложение
func bootstrap(c *cli.Context) (*assistant.Assistant, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, fmt.Errorf("error initializing config: %w", err)
	}

	log, err := logger.New(cfg.Logger.Level)
	if err != nil {
		return nil, fmt.Errorf("error initializing logger: %w", err)
	}

	app := assistant.New(cfg, log, clock.New(), os.Stdin, c.App.Writer)
	if err := app.Initialize(c.Context); err != nil {
		return nil, err
	}
	return app, nil
}

func runAction(c *cli.Context) error {
	app, err := bootstrap(c)
	if err != nil {
		return err
	}
	defer func() { _ = app.Logger.Sync() }()

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	runErr := app.Run(ctx)
	if ctx.Err() != nil {
		app.Logger.Info("received signal, saving books")
	}

	// Книги сохраняются и после ошибки консоли
	return multierr.Combine(runErr, app.Shutdown(context.Background()))
}

func birthdaysAction(c *cli.Context) error {
	app, err := bootstrap(c)
	if err != nil {
		return err
	}
	defer func() { _ = app.Logger.Sync() }()

	days := app.Config.Assistant.BirthdayWindowDays
	if c.IsSet("days") {
		days = c.Int("days")
	}
	if days < 0 {
		return fmt.Errorf("days must not be negative, got %d", days)
	}

	for _, record := range app.Contacts.UpcomingBirthdays(c.Context, days) {
		left, _, err := app.Contacts.DaysToBirthday(c.Context, record.Name().String())
		if err != nil {
			return err
		}
		fmt.Fprintf(c.App.Writer, "%s: %s (in %d days)\n", record.Name(), record.Birthday(), left)
	}
	return nil
}

func searchAction(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.ShowSubcommandHelp(c)
	}

	app, err := bootstrap(c)
	if err != nil {
		return err
	}
	defer func() { _ = app.Logger.Sync() }()

	records := app.Contacts.Search(c.Context, c.Args().First())
	if len(records) == 0 {
		fmt.Fprintln(c.App.Writer, "No match found.")
		return nil
	}
	for _, record := range records {
		fmt.Fprintf(c.App.Writer, "%s\n\n", record)
	}
	app.Logger.Debug("search finished", zap.Int("matches", len(records)))
	return nil
}
