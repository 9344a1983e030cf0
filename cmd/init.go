package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// initCmd represents the init command.
var initCmd = newInitCmd()

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Generate a default shotdiff.yaml configuration file",
		Long: `Create a shotdiff.yaml in the current working directory populated with the
current CLI defaults so it can be edited manually. The database path, listen
address and comparison workers written to the file are echoed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			targetPath := filepath.Join(configFolderPath, configFileName)

			err := viper.SafeWriteConfigAs(targetPath)
			if err != nil {
				return fmt.Errorf("failed to write config file: %w", err)
			}

			cmd.Printf("Wrote %s\n", targetPath)
			cmd.Printf("  database: %s\n", viper.GetString(databasePathKey))
			cmd.Printf("  address:  %s\n", viper.GetString(serverAddressKey))
			cmd.Printf("  workers:  %d\n", viper.GetInt(compareWorkersKey))

			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(initCmd)
}
