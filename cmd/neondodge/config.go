package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-dodge/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game config",
	Long: `Print the configuration a run would use, as YAML.

The config is looked up in this order:
  --config path
  ~/.neondodge/config.yaml or config.toml
  ./configs/neondodge.yaml or neondodge.toml
  built-in defaults

--difficulty is applied on top. Use --defaults to print the built-in file,
a good starting point for your own config.

Examples:
  neondodge config
  neondodge config --difficulty hard
  neondodge config --defaults > ~/.neondodge/config.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in default config")
}

func runConfig(_ *cobra.Command, _ []string) {
	if flagDefaults {
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	logger := newLogger(os.Stderr)
	cfg, err := loadConfig(logger)
	if err != nil {
		fatal("%v", err)
	}

	out, err := config.Marshal(cfg)
	if err != nil {
		fatal("encoding config: %v", err)
	}
	os.Stdout.Write(out)
}
