package main

import (
	"context"
	"os"
	"os/signal"
	"time"
	"tunebot/internal/adapters/generator"
	"tunebot/internal/adapters/handler"
	"tunebot/internal/adapters/i18n"
	"tunebot/internal/adapters/player"
	"tunebot/internal/adapters/sender"
	"tunebot/internal/adapters/store"
	"tunebot/internal/core/domain"
	"tunebot/internal/core/domain/command"
	"tunebot/internal/core/domain/commands"
	"tunebot/internal/core/service"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

func main() {
	log.Info().Msg("starting tunebot...")

	viper.AddConfigPath(".")
	viper.SetConfigType("toml")
	viper.SetDefault("bot.prefix", "/")
	viper.SetDefault("bot.locale", i18n.BaseLocale)
	viper.SetDefault("handler.timeout", "30s")
	viper.SetDefault("storage.path", "tunebot.db")

	log.Info().Msg("reading config file...")
	err := viper.ReadInConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("could not read config file")
	}

	if viper.GetBool("bot.pretty_log") {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.DateTime})
	}

	var logLevel zerolog.Level

	switch viper.GetString("bot.log_level") {
	case "info":
		logLevel = zerolog.InfoLevel
	case "debug":
		logLevel = zerolog.DebugLevel
	default:
		logLevel = zerolog.InfoLevel
	}

	zerolog.SetGlobalLevel(logLevel)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	token := viper.GetString("telegram.bot_token")
	opts := []bot.Option{
		bot.WithDefaultHandler(noOpHandler),
	}

	b, err := bot.New(token, opts...)
	if err != nil {
		log.Panic().Err(err).Msg("failed initializing telegram bot")
	}

	s := sender.NewTelegram(b)

	translator, err := i18n.NewTranslator(viper.GetString("bot.locale"))
	if err != nil {
		log.Panic().Err(err).Msg("failed loading translations")
	}

	moduleStore, err := store.OpenBolt(viper.GetString("storage.path"))
	if err != nil {
		log.Panic().Err(err).Msg("failed opening module store")
	}
	defer moduleStore.Close()

	permissions, err := service.NewPermissionGate()
	if err != nil {
		log.Panic().Err(err).Msg("invalid permissions in config")
	}

	players := player.NewRegistry()

	orGenerator := generator.NewOpenRouter(viper.GetString("openrouter.api_key"),
		viper.GetString("chat.system_prompt"), viper.GetString("openrouter.model"))

	tracker := service.NewUsageTracker(ctx)

	directory := command.NewDirectory()

	info := directory.NewModule(domain.ModuleInfo)
	info.RegisterCommand(commands.NewHelp(directory, "commands", "help"))
	info.RegisterCommand(commands.NewCommands(directory, moduleStore, "commands", "cmds"))

	config := directory.NewModule(domain.ModuleConfig)
	config.RegisterCommand(commands.NewModules(moduleStore, "modules"))
	config.RegisterCommand(commands.NewEnableModule(moduleStore, "enable"))
	config.RegisterCommand(commands.NewDisableModule(moduleStore, "disable"))

	music := directory.NewModule(domain.ModuleMusic)
	music.RegisterCommand(commands.NewPlay(players, "play", "p"))
	music.RegisterCommand(commands.NewSkip(players, "skip", "s"))
	music.RegisterCommand(commands.NewSeek(players, "seek"))
	music.RegisterCommand(commands.NewForward(players, "forward", "fwd"))
	music.RegisterCommand(commands.NewRewind(players, "rewind", "rew"))
	music.RegisterCommand(commands.NewRestart(players, "restart", "replay"))
	music.RegisterCommand(commands.NewNowPlaying(players, "nowplaying", "np"))

	utility := directory.NewModule(domain.ModuleUtility)
	utility.RegisterCommand(commands.NewDebug(directory, "debug"))

	fun := directory.NewModule(domain.ModuleFun)
	fun.RegisterCommand(commands.NewAsk(orGenerator, s, tracker, "ask"))

	for key, modules := range directory.Collisions() {
		log.Warn().Str("key", key).Stringer("reachable", modules[0]).
			Msg("command key registered in several modules")
	}

	handlerTimeout, err := time.ParseDuration(viper.GetString("handler.timeout"))
	if err != nil {
		log.Panic().Err(err).Msg("invalid timeout for handler in config")
	}

	prefix := viper.GetString("bot.prefix")

	dispatcher := service.NewDispatcher(service.DispatcherParams{
		Directory:  directory,
		Store:      moduleStore,
		Auth:       permissions,
		Sender:     s,
		Translator: translator,
		Prefix:     prefix,
		Timeout:    handlerTimeout,
	})

	commandHandler := handler.NewCommand(dispatcher)

	b.RegisterHandler(bot.HandlerTypeMessageText, prefix, bot.MatchTypePrefix, commandHandler.Handle)
	b.RegisterHandler(bot.HandlerTypePhotoCaption, prefix, bot.MatchTypePrefix, commandHandler.Handle)

	log.Info().Int("commands", directory.TotalSize()).Strs("modules", moduleNames(directory)).
		Msg("bot listening")
	b.Start(ctx)
}

func moduleNames(directory *command.Directory) []string {
	var names []string
	for _, m := range directory.Modules() {
		names = append(names, m.String())
	}

	return names
}

func noOpHandler(_ context.Context, _ *bot.Bot, _ *models.Update) {}
