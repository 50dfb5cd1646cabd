package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/battlesnakeio/classic/config"
	"github.com/battlesnakeio/classic/rules"
	"github.com/battlesnakeio/classic/scores"
	"github.com/battlesnakeio/classic/scores/backend"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "snake plays the classic snake game in the terminal",
	Run: func(c *cobra.Command, args []string) {
		playCmd.Run(c, args)
	},
}

var (
	width       = config.Width
	height      = config.Height
	difficulty  = config.Difficulty
	backendName = config.ScoreBackend
	backendArgs = config.ScoreArgs
	apiAddr     = "http://localhost:3005"
	logLevel    = "info"
)

// Execute runs the root command
func Execute() {
	rootCmd.PersistentFlags().IntVar(&width, "width", width, "board width in cells")
	rootCmd.PersistentFlags().IntVar(&height, "height", height, "board height in cells")
	rootCmd.PersistentFlags().StringVarP(&difficulty, "difficulty", "d", difficulty, "difficulty, as one of: [easy, medium, hard]")
	rootCmd.PersistentFlags().StringVarP(&backendName, "backend", "b", backendName,
		fmt.Sprintf("high score backend, as one of: [%s]", strings.Join(backend.Names, ", ")))
	rootCmd.PersistentFlags().StringVarP(&backendArgs, "backend-args", "a", backendArgs, "options to pass to the backend being used")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", logLevel, "log level")
	rootCmd.PersistentPreRun = func(*cobra.Command, []string) { setupLogging() }
	rootCmd.Flags().AddFlagSet(playCmd.Flags())

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(statusCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func setupLogging() {
	lvl, err := log.ParseLevel(logLevel)
	if err != nil {
		log.WithField("level", logLevel).Warn("unknown log level, using info")
		lvl = log.InfoLevel
	}
	log.SetLevel(lvl)
}

// roundConfig builds the round configuration from the flags.
func roundConfig(mode rules.GameMode) (rules.Config, error) {
	d, err := rules.ParseDifficulty(difficulty)
	if err != nil {
		return rules.Config{}, err
	}
	cfg := rules.Config{
		Width:      width,
		Height:     height,
		Mode:       mode,
		Difficulty: d,
	}
	return cfg, cfg.Validate()
}

// openKeeper opens the configured high score backend and loads the table.
// The returned func closes the backend.
func openKeeper() (*scores.Keeper, func(), error) {
	store, err := backend.Open(backendName, backendArgs)
	if err != nil {
		return nil, nil, err
	}
	closer := func() {
		if c, ok := store.(io.Closer); ok {
			if err := c.Close(); err != nil {
				log.WithError(err).Error("unable to close store")
			}
		}
	}

	k := scores.NewKeeper(store)
	if err := k.Load(context.Background()); err != nil {
		closer()
		return nil, nil, err
	}
	return k, closer, nil
}
