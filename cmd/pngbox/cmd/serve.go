package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/avekoi/pngbox/pkg/api"
	"github.com/avekoi/pngbox/pkg/config"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the inspection REST API server",
	Long: `Start the pngbox REST API server. Images are uploaded in the
request body and inspected or edited in memory; nothing is persisted.

On first run with no config file, one is bootstrapped with a generated
client API key.

Examples:
  pngbox serve
  pngbox serve --config ./pngbox.yaml`,
	Run: func(cmd *cobra.Command, args []string) {
		configPath, _ := cmd.Flags().GetString("config")
		if configPath == "" {
			configPath = config.GetDefaultConfigPath()
		}

		var cfg *config.Config
		var err error
		if config.ConfigExists(configPath) {
			cfg, err = config.LoadConfig(configPath)
			if err != nil {
				fmt.Printf("Error loading config: %v\n", err)
				return
			}
		} else {
			cfg, err = config.BootstrapConfig(configPath)
			if err != nil {
				fmt.Printf("Error bootstrapping config: %v\n", err)
				return
			}
			fmt.Printf("Bootstrapped config at %s\n", configPath)
			fmt.Printf("Client API key: %s\n", cfg.Security.ClientAPIKey)
		}

		serverConfig := api.ServerConfig{
			Port:         cfg.Port,
			Bind:         cfg.Bind,
			APIKey:       cfg.Security.ClientAPIKey,
			MaxBodyBytes: cfg.MaxBodyBytes,
		}
		if err := api.StartServer(serverConfig); err != nil {
			fmt.Printf("Error: server stopped: %v\n", err)
		}
	},
}

func init() {
	serveCmd.Flags().String("config", "", "Path to the YAML config file")

	rootCmd.AddCommand(serveCmd)
}
