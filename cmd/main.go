package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"tidbyt.dev/diagram/parse"
)

var rootCmd = &cobra.Command{
	Use:               "diagram",
	Short:             "Train diagram tool",
	Long:              "Reconstructs station order and train diagrams from timetable tables",
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupLogging,
}

var (
	profilePath string
	debug       bool
	logFormat   string
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&profilePath, "profile", "", "", "YAML file with table labels and marks")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&logFormat, "log-format", "", "console", "Log format (console or json)")
}

func main() {
	os.Exit(execute(os.Stderr))
}

// Runs the root command. Errors go to stderr, stdout is left to
// command output.
func execute(stderr io.Writer) int {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}

func setupLogging(cmd *cobra.Command, args []string) error {
	switch logFormat {
	case "console":
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	case "json":
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	default:
		return fmt.Errorf("unknown log format '%s'", logFormat)
	}

	if debug {
		log.Logger = log.Logger.Level(zerolog.DebugLevel)
	} else {
		log.Logger = log.Logger.Level(zerolog.InfoLevel)
	}

	return nil
}

func loadProfile() (parse.Profile, error) {
	if profilePath == "" {
		return parse.DefaultProfile(), nil
	}

	f, err := os.Open(profilePath)
	if err != nil {
		return parse.Profile{}, fmt.Errorf("opening profile: %w", err)
	}
	defer f.Close()

	p, err := parse.LoadProfile(f)
	if err != nil {
		return parse.Profile{}, fmt.Errorf("loading profile: %w", err)
	}

	return p, nil
}

// Parses the table at path, or stdin for "-".
func LoadTable(path string) (*parse.Table, error) {
	p, err := loadProfile()
	if err != nil {
		return nil, err
	}

	var r io.Reader
	if path == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening table: %w", err)
		}
		defer f.Close()
		r = f
	}

	table, err := parse.Parse(p, r)
	if err != nil {
		return nil, err
	}

	log.Debug().
		Str("path", path).
		Int("columns", len(table.Columns)).
		Int("trains", len(table.Statuses)).
		Msg("parsed table")

	return table, nil
}
