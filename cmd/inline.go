// Package cmd implements the command-line interface for vidsan.
package cmd

import (
	"io"
	"os"
	"strings"

	"github.com/vidsan-cli/vidsan/filesystem"
	"github.com/vidsan-cli/vidsan/inline"
	"github.com/vidsan-cli/vidsan/query"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(inlineCmd)

	inlineCmd.Flags().StringP("query", "q", "", "The search query to execute for video discovery")
	inlineCmd.Flags().StringP("video", "V", "", "Criteria for selecting a single video from the search results")
	inlineCmd.Flags().BoolP("json", "j", false, "Format the command output as a JSON object")
	inlineCmd.Flags().BoolP("thumbnails", "t", false, "Print thumbnail URLs instead of watch URLs")
	inlineCmd.Flags().StringP("output", "o", "", "Specify a file path to write the command output")

	lo.Must0(inlineCmd.MarkFlagRequired("query"))

	_ = inlineCmd.RegisterFlagCompletionFunc("query", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return query.SuggestMany(toComplete), cobra.ShellCompDirectiveNoFileComp
	})
}

// parseVideoSelector translates the --video flag into a picker function.
func parseVideoSelector(raw string) (inline.VideoPicker, error) {
	switch {
	case raw == "first" || raw == "last":
		return inline.ParseVideoPicker(raw, "")
	case strings.HasPrefix(raw, "@") && strings.HasSuffix(raw, "@") && len(raw) > 2:
		return inline.ParseVideoPicker("exact", strings.Trim(raw, "@"))
	default:
		return inline.ParseVideoPicker("index", raw)
	}
}

// inlineCmd executes the application in non-interactive, scriptable inline mode.
var inlineCmd = &cobra.Command{
	Use:   "inline",
	Short: "Execute the application in non-interactive, scriptable inline mode",
	Long: `Initialize the application for automated execution and data extraction using inline mode.

Video selectors:
  first - first video in the list
  last - last video in the list
  [number] - select video by index (starting from 0)
  @[title]@ - select video by exact title

When the selector is omitted, all found videos are printed.`,
	Example: "  vidsan inline -q 'lofi beats' -V first\n  vidsan inline -q 'lofi beats' --json",
	Run: func(cmd *cobra.Command, args []string) {
		searchQuery := lo.Must(cmd.Flags().GetString("query"))

		output := lo.Must(cmd.Flags().GetString("output"))
		var writer io.Writer
		if output != "" {
			file, err := filesystem.API().Create(output)
			handleErr(err)
			defer func() {
				_ = file.Close()
			}()
			writer = file
		} else {
			writer = os.Stdout
		}

		videoFlag := lo.Must(cmd.Flags().GetString("video"))
		picker := mo.None[inline.VideoPicker]()
		if videoFlag != "" {
			fn, err := parseVideoSelector(videoFlag)
			handleErr(err)
			picker = mo.Some(fn)
		}

		options := &inline.Options{
			Out:        writer,
			Searcher:   newSearcher(),
			Json:       lo.Must(cmd.Flags().GetBool("json")),
			Query:      searchQuery,
			Picker:     picker,
			Thumbnails: lo.Must(cmd.Flags().GetBool("thumbnails")),
		}

		handleErr(inline.Run(options))
	},
}
