package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/terraincognita07/cyclenote/internal/api"
	"github.com/terraincognita07/cyclenote/internal/cli"
	"github.com/terraincognita07/cyclenote/internal/config"
	"github.com/terraincognita07/cyclenote/internal/db"
	"github.com/terraincognita07/cyclenote/internal/i18n"
	"github.com/terraincognita07/cyclenote/internal/logger"
	"github.com/terraincognita07/cyclenote/internal/services"
	"go.uber.org/zap"
)

const usage = `usage: cyclenote [command] [-config path]

commands:
  serve            run the HTTP API and reminder poller (default)
  hash-password    hash the owner password and generate a signing secret
  import <file>    replace stored records with a days or legacy periods document`

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	command, rest := splitCommand(args)

	flags := flag.NewFlagSet(command, flag.ContinueOnError)
	configPath := flags.String("config", os.Getenv("CYCLENOTE_CONFIG"), "path to a config file")
	flags.Usage = func() { fmt.Fprintln(flags.Output(), usage) }
	if err := flags.Parse(rest); err != nil {
		return err
	}

	switch command {
	case "serve":
		return serve(*configPath)
	case "hash-password":
		return cli.RunHashPasswordCommand(os.Stdout, cli.TerminalPasswordReader(os.Stdin, os.Stderr))
	case "import":
		if flags.NArg() != 1 {
			return errors.New("import requires exactly one file argument")
		}
		cfg, log, err := loadRuntime(*configPath)
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()
		return cli.RunImportCommand(context.Background(), cfg, flags.Arg(0), os.Stdout, log)
	default:
		return fmt.Errorf("unknown command %q\n%s", command, usage)
	}
}

func splitCommand(args []string) (string, []string) {
	if len(args) == 0 || len(args[0]) == 0 || args[0][0] == '-' {
		return "serve", args
	}
	return args[0], args[1:]
}

func loadRuntime(configPath string) (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}
	log, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return nil, nil, err
	}
	return cfg, log, nil
}

func serve(configPath string) error {
	cfg, log, err := loadRuntime(configPath)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	database, err := db.OpenSQLite(cfg.Database.Path, log)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}

	lifecycleCtx, cancelLifecycle := context.WithCancel(context.Background())
	defer cancelLifecycle()

	store := services.OpenDayStore(lifecycleCtx, db.NewKVRepository(database), cfg.Cycle.PeriodLength, log.Named("store"))
	tracker, err := services.NewTracker(store, cfg.CycleSettings(), log.Named("tracker"))
	if err != nil {
		return fmt.Errorf("tracker init failed: %w", err)
	}

	i18nManager, err := i18n.NewManager(cfg.I18n.DefaultLanguage)
	if err != nil {
		return fmt.Errorf("i18n init failed: %w", err)
	}

	handler, err := api.NewHandler(api.Options{
		Tracker:           tracker,
		I18n:              i18nManager,
		SecretKey:         cfg.Auth.SecretKey,
		OwnerPasswordHash: cfg.Auth.OwnerPasswordHash,
		TokenTTL:          cfg.Auth.TokenTTL,
		CookieSecure:      cfg.Server.CookieSecure,
		Logger:            log.Named("api"),
	})
	if err != nil {
		return fmt.Errorf("handler init failed: %w", err)
	}

	app := newApp(handler)

	reminderLanguage := cfg.Reminders.Language
	if reminderLanguage == "" {
		reminderLanguage = i18nManager.DefaultLanguage()
	}
	reminders := services.NewReminderService(
		tracker,
		reminderSender(cfg.Reminders),
		i18nManager.Translator(reminderLanguage),
		cfg.Reminders.Interval,
		log.Named("reminders"),
	)
	reminders.Start(lifecycleCtx)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		cancelLifecycle()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Error("server shutdown failed", zap.Error(err))
		}
	}()

	address := ":" + strconv.Itoa(cfg.Server.Port)
	log.Info("cyclenote listening",
		zap.String("address", address),
		zap.String("db", cfg.Database.Path),
		zap.Int("stored_days", store.Len()),
	)
	if err := app.Listen(address); err != nil {
		return fmt.Errorf("server exited: %w", err)
	}
	return nil
}

func newApp(handler *api.Handler) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "CycleNote",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "${time} ${locals:requestid} ${status} ${method} ${path} ${latency}\n",
	}))
	app.Use(compress.New())

	api.RegisterRoutes(app, handler)
	return app
}

// reminderSender returns nil unless Telegram is configured. The explicit nil
// keeps the interface value nil for ReminderService.
func reminderSender(cfg config.RemindersConfig) services.ReminderSender {
	telegram := services.NewTelegramSender(cfg.TelegramBotToken, cfg.TelegramChatID)
	if telegram == nil {
		return nil
	}
	return telegram
}
