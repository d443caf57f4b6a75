package main

import (
	"github.com/spf13/cobra"

	"github.com/tagfold/server/config"
	"github.com/tagfold/server/httpapi"
)

var servePort string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(logger)
		if err != nil {
			return err
		}
		if servePort != "" {
			cfg.Port = servePort
		}
		return httpapi.New(cfg, logger).Listen()
	},
}

func init() {
	serveCmd.Flags().StringVarP(&servePort, "port", "p", "", "port to listen on (overrides TAGFOLD_PORT)")
	rootCmd.AddCommand(serveCmd)
}
