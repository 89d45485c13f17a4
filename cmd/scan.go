package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"pptxswap/internal/log"
	"pptxswap/internal/processor"
	"pptxswap/internal/pptx"
	"pptxswap/internal/tui"
)

var scanCmd = &cobra.Command{
	Use:   "scan <pptx>",
	Short: "List the embedded images of one presentation",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := pptx.Open(args[0])
		if err != nil {
			return err
		}
		defer a.Close()

		entries, err := a.Images()
		if err != nil {
			return err
		}
		usage := a.SlideUsage()

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s\n", scanFileStyle.Render(args[0]))
		fmt.Fprintf(out, "%-4s %-25s %-12s %-34s %s\n", "No.", "Filename", "Size", "MD5", "Slides")
		for i, entry := range entries {
			fmt.Fprintf(out, "%-4d %-25s %-12d %-34s %s\n",
				i+1,
				entry.Fingerprint.Filename,
				entry.Fingerprint.Size,
				entry.Fingerprint.Hash,
				slideList(usage[entry.Path]),
			)
		}
		fmt.Fprintf(out, "%s\n", scanDimStyle.Render(fmt.Sprintf("Total: %d image(s)", len(entries))))
		return nil
	},
}

var scanDirNoRecursive bool

var scanDirCmd = &cobra.Command{
	Use:   "scan-dir <directory>",
	Short: "Aggregate unique images across every presentation under a directory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		recursive := cfg.Recursive && !scanDirNoRecursive
		logger := log.New(cfg.Verbose).With("command", "scan-dir")

		images, scanned, err := processor.ScanDir(args[0], recursive, logger)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s\n", scanFileStyle.Render(fmt.Sprintf("Unique images across %d presentation(s)", scanned)))
		fmt.Fprintf(out, "%-34s %-25s %-12s %s\n", "MD5", "Filename", "Size", "Used by")
		for _, img := range images {
			fmt.Fprintf(out, "%-34s %-25s %-12d %d file(s)\n",
				img.Fingerprint.Hash,
				img.Fingerprint.Filename,
				img.Fingerprint.Size,
				len(img.Files),
			)
		}
		fmt.Fprintf(out, "%s\n", scanDimStyle.Render(fmt.Sprintf("Unique images: %d", len(images))))

		shared := sharedImages(images)
		if len(shared) > 0 {
			fmt.Fprintf(out, "\n%s\n", scanCategoryStyle.Render(fmt.Sprintf("Shared across presentations: %d image(s)", len(shared))))
			for _, img := range shared {
				fmt.Fprintf(out, "  %s (%s)\n", img.Fingerprint.Hash, img.Fingerprint.Filename)
				for _, file := range img.Files {
					fmt.Fprintf(out, "    %s %s\n", scanDimStyle.Render("-"), file)
				}
			}
		}
		return nil
	},
}

func sharedImages(images []processor.UniqueImage) []processor.UniqueImage {
	var shared []processor.UniqueImage
	for _, img := range images {
		if len(img.Files) > 1 {
			shared = append(shared, img)
		}
	}
	return shared
}

func slideList(nums []int) string {
	if len(nums) == 0 {
		return "-"
	}
	parts := make([]string, len(nums))
	for i, n := range nums {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ",")
}

var (
	scanFileStyle     = lipgloss.NewStyle().Bold(true).Foreground(tui.ColorAccent)
	scanCategoryStyle = lipgloss.NewStyle().Foreground(tui.ColorAccentAlt)
	scanDimStyle      = lipgloss.NewStyle().Foreground(tui.ColorDim)
)

func init() {
	scanDirCmd.Flags().BoolVar(&scanDirNoRecursive, "no-recursive", false, "do not descend into subdirectories")

	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(scanDirCmd)
}
