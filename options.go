package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tagfold/server/config"
	"github.com/tagfold/server/vault"
)

var optionsJSON bool

var optionsCmd = &cobra.Command{
	Use:   "options",
	Short: "List the distinct tags and privacy levels present in the vault",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(logger)
		if err != nil {
			return err
		}

		opts, err := vault.New(cfg.NotesDir, logger).Scan()
		if err != nil {
			return err
		}

		if optionsJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(opts)
		}

		fmt.Println("Tags:")
		for _, tag := range opts.Tags {
			fmt.Printf("  %s\n", tag)
		}
		fmt.Println("Privacy levels:")
		for _, p := range opts.PrivacyLevels {
			fmt.Printf("  %s\n", p)
		}
		return nil
	},
}

func init() {
	optionsCmd.Flags().BoolVar(&optionsJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(optionsCmd)
}
