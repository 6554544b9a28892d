package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/they4kman/remotesweep/client"
	"github.com/they4kman/remotesweep/config"
	"github.com/they4kman/remotesweep/controller"
	"github.com/they4kman/remotesweep/director/random"
	"github.com/they4kman/remotesweep/game"
	"github.com/they4kman/remotesweep/ui"
)

const envFile = ".env"

var (
	flagConfig = config.New()
	configPath string
	seed       int64
)

var rootCmd = &cobra.Command{
	Use:   "remotesweep",
	Short: "Play Minesweeper against a remote game service",
	Long: `remotesweep is a terminal Minesweeper client. The board, the rules and
the outcome all live on the game service; this program only shows the
board it is sent and forwards your clicks.

Run with no arguments to play with the mouse
	remotesweep

Use line mode where the terminal has no mouse support
	remotesweep --plain

Use the director flag to make the computer play for you
	remotesweep -d
`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd.Flags())
		if err != nil {
			return err
		}
		glyphs, err := cfg.GlyphSet()
		if err != nil {
			return err
		}

		log, closeLog, err := newLogger(cfg)
		if err != nil {
			return err
		}
		defer closeLog()

		store := game.NewStore(log)
		ctrl := controller.New(store, client.New(cfg.Client(), log), log)

		if !cmd.Flags().Changed("seed") {
			seed = time.Now().UnixNano()
		}
		options := ui.Options{
			Glyphs:           glyphs,
			Difficulty:       cfg.Difficulty,
			Director:         random.New(seed),
			DirectorInterval: cfg.DirectorInterval,
			Autoplay:         cfg.Director,
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		log.WithFields(logrus.Fields{
			"url":        cfg.BaseURL,
			"difficulty": cfg.Difficulty,
			"plain":      cfg.Plain,
		}).Info("Starting")

		if err := run(ctx, cmd, cfg, store, ctrl, log, options); err != nil {
			return err
		}

		if cfg.Dump {
			out, err := game.NewSessionSnapshot(store.Snapshot()).Serialize()
			if err != nil {
				return errors.Wrap(err, "dump session")
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
		}
		return nil
	},
}

func run(ctx context.Context, cmd *cobra.Command, cfg config.Config, store *game.Store, ctrl *controller.Controller, log logrus.FieldLogger, options ui.Options) error {
	if cfg.Plain {
		return ui.NewPlain(cmd.InOrStdin(), cmd.OutOrStdout(), store, ctrl, log, options).Run(ctx)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "open terminal")
	}
	return ui.NewTerminal(screen, store, ctrl, log, options).Run(ctx)
}

// loadConfig layers defaults, .env, the config file and finally any flags
// given on the command line.
func loadConfig(flags *pflag.FlagSet) (config.Config, error) {
	cfg := config.New()
	if err := cfg.LoadEnv(envFile); err != nil {
		return cfg, err
	}
	if configPath != "" {
		if err := cfg.LoadFile(configPath); err != nil {
			return cfg, err
		}
	}

	flags.Visit(func(flag *pflag.Flag) {
		if apply, ok := flagOverrides[flag.Name]; ok {
			apply(&cfg, flagConfig)
		}
	})
	return cfg, nil
}

var flagOverrides = map[string]func(cfg *config.Config, flags config.Config){
	"url":               func(cfg *config.Config, flags config.Config) { cfg.BaseURL = flags.BaseURL },
	"difficulty":        func(cfg *config.Config, flags config.Config) { cfg.Difficulty = flags.Difficulty },
	"glyphs":            func(cfg *config.Config, flags config.Config) { cfg.Glyphs = flags.Glyphs },
	"plain":             func(cfg *config.Config, flags config.Config) { cfg.Plain = flags.Plain },
	"timeout":           func(cfg *config.Config, flags config.Config) { cfg.Timeout = flags.Timeout },
	"log-level":         func(cfg *config.Config, flags config.Config) { cfg.LogLevel = flags.LogLevel },
	"log-file":          func(cfg *config.Config, flags config.Config) { cfg.LogFile = flags.LogFile },
	"dump":              func(cfg *config.Config, flags config.Config) { cfg.Dump = flags.Dump },
	"director":          func(cfg *config.Config, flags config.Config) { cfg.Director = flags.Director },
	"director-interval": func(cfg *config.Config, flags config.Config) { cfg.DirectorInterval = flags.DirectorInterval },
}

// newLogger writes to the log file when one is given. Otherwise the
// terminal UI owns the screen, so logs are dropped; plain mode logs to stderr.
func newLogger(cfg config.Config) (*logrus.Logger, func(), error) {
	log := logrus.New()
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, nil, errors.Wrap(err, "log level")
	}
	log.SetLevel(level)

	switch {
	case cfg.LogFile != "":
		file, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, errors.Wrap(err, "open log file")
		}
		log.SetOutput(file)
		return log, func() { file.Close() }, nil
	case cfg.Plain:
		log.SetOutput(os.Stderr)
	default:
		log.SetOutput(io.Discard)
	}
	return log, func() {}, nil
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

type difficultyValue game.Difficulty

func newDifficultyValue(val game.Difficulty, p *game.Difficulty) *difficultyValue {
	*p = val
	return (*difficultyValue)(p)
}

func (difficultyVal *difficultyValue) String() string {
	return game.Difficulty(*difficultyVal).String()
}

func (difficultyVal *difficultyValue) Set(value string) error {
	difficulty, err := game.ParseDifficulty(value)
	if err != nil {
		return err
	}
	*difficultyVal = difficultyValue(difficulty)
	return nil
}

func (difficultyVal *difficultyValue) Type() string {
	return "game.Difficulty"
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVarP(&configPath, "config", "c", "", "YAML config file; flags override its values")
	flags.StringVar(&flagConfig.BaseURL, "url", client.DefaultBaseURL, "Base URL of the game service (also $"+config.BaseURLEnv+")")
	flags.Var(newDifficultyValue(game.DifficultyUnset, &flagConfig.Difficulty), "difficulty", `Difficulty of new games: easy, medium or hard.
When unset the service picks its default.`)
	flags.StringVar(&flagConfig.Glyphs, "glyphs", game.EmojiGlyphs.Name, fmt.Sprintf("Glyph set for flags and mines, one of %v", game.GlyphSetNames()))
	flags.BoolVar(&flagConfig.Plain, "plain", false, "Line mode: type commands instead of clicking")
	flags.DurationVar(&flagConfig.Timeout, "timeout", 0, "Timeout of each request to the service (0 waits until interrupted)")
	flags.StringVar(&flagConfig.LogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flags.StringVar(&flagConfig.LogFile, "log-file", "", "Append logs to this file")
	flags.BoolVar(&flagConfig.Dump, "dump", false, "Print the final session as YAML on exit")
	flags.BoolVarP(&flagConfig.Director, "director", "d", false, "Make the computer play")
	flags.DurationVar(&flagConfig.DirectorInterval, "director-interval", flagConfig.DirectorInterval, "Pause between director moves")
	flags.Int64Var(&seed, "seed", 0, "Seed for the director's choices (default: current time)")
}
