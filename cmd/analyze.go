package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"pptxswap/internal/pptx"
	"pptxswap/internal/tui"
	"pptxswap/pkg/imgutil"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <image>",
	Short: "Fingerprint a reference image and print its replace identifiers",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		fp, err := pptx.FingerprintFile(path)
		if err != nil {
			return err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s\n", analyzeFileStyle.Render(path))
		fmt.Fprintf(out, "  %s %s\n", analyzeKeyStyle.Render("Filename:"), fp.Filename)
		fmt.Fprintf(out, "  %s %d bytes\n", analyzeKeyStyle.Render("Size:"), fp.Size)
		fmt.Fprintf(out, "  %s %s\n", analyzeKeyStyle.Render("MD5:"), fp.Hash)
		fmt.Fprintf(out, "  %s %s\n", analyzeKeyStyle.Render("Format:"), imgutil.DetectBytes(data))

		fmt.Fprintf(out, "\n%s\n", analyzeKeyStyle.Render("Use with replace:"))
		fmt.Fprintf(out, "  --match-by hash --target %s\n", fp.Hash)
		fmt.Fprintf(out, "  --match-by filename --target %s\n", fp.Filename)
		fmt.Fprintf(out, "  --match-by size --target %d\n", fp.Size)

		if notes := pptx.MetadataNotes(data); len(notes) > 0 {
			fmt.Fprintf(out, "\n%s\n", analyzeWarnStyle.Render("Embedded metadata (carried into every matched presentation):"))
			for _, note := range notes {
				fmt.Fprintf(out, "  %s %s: %s\n", analyzeDimStyle.Render("-"), note.Kind, note.Value)
			}
		}
		return nil
	},
}

var (
	analyzeFileStyle = lipgloss.NewStyle().Bold(true).Foreground(tui.ColorAccent)
	analyzeKeyStyle  = lipgloss.NewStyle().Foreground(tui.ColorAccentAlt)
	analyzeWarnStyle = lipgloss.NewStyle().Foreground(tui.ColorWarn)
	analyzeDimStyle  = lipgloss.NewStyle().Foreground(tui.ColorDim)
)

func init() {
	rootCmd.AddCommand(analyzeCmd)
}
