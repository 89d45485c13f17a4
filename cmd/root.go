package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"pptxswap/internal/config"
)

var (
	flagVerbose bool
	flagConfig  string
)

var rootCmd = &cobra.Command{
	Use:   "pptxswap",
	Short: "pptxswap - swap embedded images inside PowerPoint decks",
	Long: "pptxswap replaces embedded images in .pptx archives by matching on content hash,\n" +
		"filename, or byte size, across single files or whole directory trees, with\n" +
		"optional backups of the originals.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Load .env if present (ignore errors)
		_ = godotenv.Load()
	},
}

// Root exposes the root command to the fang entry point.
func Root() *cobra.Command {
	return rootCmd
}

func init() {
	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "structured diagnostics on stderr (disables the progress UI)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "defaults file (default "+config.DefaultFile+" if present)")
}

func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagVerbose {
		cfg.Verbose = true
	}
	return cfg, nil
}
