package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"pptxswap/internal/log"
	"pptxswap/internal/processor"
	"pptxswap/internal/pptx"
	"pptxswap/internal/tui"
)

var (
	replaceDir         string
	replaceTarget      string
	replaceImage       string
	replaceMatchBy     string
	replaceOutputDir   string
	replaceNoBackup    bool
	replaceNoRecursive bool
)

var replaceCmd = &cobra.Command{
	Use:   "replace",
	Short: "Replace matching embedded images across a directory of presentations",
	Long: "Replace overwrites every embedded image that matches the target identifier\n" +
		"with the replacement image's bytes. Hash matching is exact; filename matching\n" +
		"is byte-exact and case-sensitive on the stored name; size matching is exact\n" +
		"integer equality. Filename and size matching can over-match when distinct\n" +
		"images share a name or byte size.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		if !cmd.Flags().Changed("match-by") && cfg.MatchBy != "" {
			replaceMatchBy = cfg.MatchBy
		}
		by, err := pptx.ParseMatchBy(replaceMatchBy)
		if err != nil {
			return err
		}
		criterion, err := pptx.NewCriterion(by, replaceTarget)
		if err != nil {
			return err
		}

		replacement, err := os.ReadFile(replaceImage)
		if err != nil {
			if os.IsNotExist(err) {
				return fmt.Errorf("replacement image %w: %s", pptx.ErrNotFound, replaceImage)
			}
			return err
		}

		opts := processor.Options{
			Criterion:    criterion,
			Replacement:  replacement,
			OutputDir:    replaceOutputDir,
			Backup:       !replaceNoBackup,
			BackupSuffix: cfg.BackupSuffix,
			Recursive:    cfg.Recursive && !replaceNoRecursive,
		}

		logger := log.New(cfg.Verbose).With("command", "replace", "match_by", string(by))

		var summary processor.Summary
		var results []processor.FileResult
		if cfg.Verbose {
			// Structured logs and the progress UI would fight over the
			// terminal; verbose runs skip the UI.
			summary, results, err = processor.Run(cmd.Context(), replaceDir, opts, logger, nil)
		} else {
			updates := make(chan processor.ProgressUpdate, 64)
			model := tui.NewModel(updates)
			program := tea.NewProgram(model)

			uiDone := make(chan struct{})
			go func() {
				_, _ = program.Run()
				// The program can return early on a non-TTY stdout;
				// keep draining so the driver never blocks on a full
				// buffer.
				for range updates {
				}
				close(uiDone)
			}()

			summary, results, err = processor.Run(cmd.Context(), replaceDir, opts, logger, updates)
			close(updates)
			<-uiDone
		}
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, res := range results {
			fmt.Fprintln(out, tui.RenderStatusLine(res))
			for _, part := range res.FormatMismatches {
				fmt.Fprintf(out, "    note: %s keeps its extension but now holds a different image format\n", part)
			}
		}

		rows := []tui.SummaryRow{
			{Label: "Archives processed", Value: fmt.Sprintf("%d", summary.Archives)},
			{Label: "Replaced", Value: fmt.Sprintf("%d file(s), %d image(s)", summary.ReplacedFiles, summary.ReplacedImages)},
			{Label: "No match", Value: fmt.Sprintf("%d", summary.NoMatch)},
			{Label: "Failures", Value: fmt.Sprintf("%d", summary.Failures)},
		}
		fmt.Fprintln(out, tui.RenderSummary(rows))

		if replaceOutputDir == "" && !replaceNoBackup && summary.ReplacedFiles > 0 {
			fmt.Fprintf(out, "Originals backed up beside each file with the %s suffix.\n", cfg.BackupSuffix)
		}
		return nil
	},
}

func init() {
	replaceCmd.Flags().StringVarP(&replaceDir, "directory", "d", "", "directory containing .pptx files")
	replaceCmd.Flags().StringVarP(&replaceTarget, "target", "t", "", "target identifier: hash, filename, or byte size")
	replaceCmd.Flags().StringVarP(&replaceImage, "replacement", "r", "", "replacement image file")
	replaceCmd.Flags().StringVarP(&replaceMatchBy, "match-by", "m", "hash", "match method: hash, filename, or size")
	replaceCmd.Flags().StringVarP(&replaceOutputDir, "output-dir", "o", "", "write modified files here instead of overwriting in place")
	replaceCmd.Flags().BoolVar(&replaceNoBackup, "no-backup", false, "skip backup copies on in-place overwrites")
	replaceCmd.Flags().BoolVar(&replaceNoRecursive, "no-recursive", false, "do not descend into subdirectories")

	_ = replaceCmd.MarkFlagRequired("directory")
	_ = replaceCmd.MarkFlagRequired("target")
	_ = replaceCmd.MarkFlagRequired("replacement")

	rootCmd.AddCommand(replaceCmd)
}
