// Package cmd provides the root command and CLI setup for shotdiff.
package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"shotdiff.dev/pkg/shotdiff/internal/adapter"
	"shotdiff.dev/pkg/shotdiff/internal/controller"
	"shotdiff.dev/pkg/shotdiff/internal/domain"
)

// Shared dependencies. Commands open them lazily from configuration; tests
// replace them with mocks.
var store adapter.Store
var comparator domain.Comparator
var recorder domain.Recorder

// ownsStore is set when the store was opened by this process and must be closed.
var ownsStore bool

var databasePathFlag string
var workersFlag int
var verboseFlag bool

const rootLongDescription = `shotdiff records screenshot runs of UI test suites and compares them.

Each run holds named test cases made of trees of screenshot steps. Two runs are
compared test case by test case: step trees are rendered as indented text and
diffed, and individual steps are compared pixel by pixel with optional ignore
rectangles.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "shotdiff",
		Short:         "Screenshot run comparison tool",
		Long:          rootLongDescription,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&databasePathFlag, databaseFlagName, viper.GetString(databasePathKey), "path of the SQLite database")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(databaseFlagName), databasePathKey)

	cmd.PersistentFlags().IntVarP(&workersFlag, workersFlagName, "w", viper.GetInt(compareWorkersKey), "maximum concurrent image comparisons")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(workersFlagName), compareWorkersKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// ensureServices opens the store and builds the services that are still unset.
func ensureServices() error {
	if store == nil {
		path := viper.GetString(databasePathKey)

		opened, err := adapter.OpenSQLiteStore(path, adapter.WithMkdirAll())
		if err != nil {
			slog.Error("Failed to open store", "path", path, "error", err)
			return fmt.Errorf("failed to open database %s: %w", path, err)
		}

		store = opened
		ownsStore = true
	}

	if comparator == nil {
		comparator = domain.NewComparator(store, viper.GetInt(compareWorkersKey))
	}

	if recorder == nil {
		recorder = domain.NewRecorder(store)
	}

	return nil
}

// withServices runs fn with the shared services available and closes what it opened.
func withServices(fn func() error) (err error) {
	if err := ensureServices(); err != nil {
		return err
	}

	defer func() { err = errors.Join(err, closeServices()) }()

	return fn()
}

// closeServices closes a store opened by ensureServices and resets the services.
func closeServices() error {
	if !ownsStore {
		return nil
	}

	err := store.Close()

	store, comparator, recorder = nil, nil, nil
	ownsStore = false

	if err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}

	return nil
}

func newUI(cmd *cobra.Command, formatValue string) (controller.UI, error) {
	format, err := controller.ParseFormat(formatValue)
	if err != nil {
		return nil, err
	}

	return controller.NewUI(cmd, format, controller.IsTTY(cmd.OutOrStdout())), nil
}

func parseIDs(args []string) ([]int64, error) {
	ids := make([]int64, 0, len(args))

	for _, arg := range args {
		id, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid id %q: %w", arg, errors.Unwrap(err))
		}

		ids = append(ids, id)
	}

	return ids, nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
