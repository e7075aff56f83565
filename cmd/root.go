// Package cmd implements the command-line interface for vidsan.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/vidsan-cli/vidsan/auth"
	"github.com/vidsan-cli/vidsan/color"
	"github.com/vidsan-cli/vidsan/constant"
	"github.com/vidsan-cli/vidsan/icon"
	"github.com/vidsan-cli/vidsan/key"
	"github.com/vidsan-cli/vidsan/log"
	"github.com/vidsan-cli/vidsan/search"
	"github.com/vidsan-cli/vidsan/style"
	"github.com/vidsan-cli/vidsan/tui"
	"github.com/vidsan-cli/vidsan/util"
	"github.com/vidsan-cli/vidsan/version"
	"github.com/vidsan-cli/vidsan/video"
	"github.com/vidsan-cli/vidsan/where"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, square)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().BoolP("write-history", "H", true, "Persist watched videos to the localized watch history")
	lo.Must0(viper.BindPFlag(key.HistorySaveOnWatch, rootCmd.PersistentFlags().Lookup("write-history")))

	rootCmd.PersistentFlags().StringP("model", "m", "", "Override the completion model used for search")
	lo.Must0(viper.BindPFlag(key.SearchModel, rootCmd.PersistentFlags().Lookup("model")))

	rootCmd.Flags().BoolP("continue", "c", false, "Resume from the watch history instead of the search prompt")

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify()
	})

	// Initialize cleanup of localized temporary files on application startup.
	go func() {
		_ = util.Delete(where.Temp())
	}()
}

// rootCmd defines the entry point for the vidsan application.
var rootCmd = &cobra.Command{
	Use:   constant.Vidsan + " [query]",
	Short: "A minimalist command-line interface for video discovery and playback",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.HiRed).Render("    - A minimalist command-line interface for video discovery and playback"),
	Args: cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		if viper.GetString(key.Player) != "browser" {
			CheckDependencies()
		}

		options := tui.Options{
			Searcher: newSearcher(),
			Query:    strings.Join(args, " "),
			Continue: lo.Must(cmd.Flags().GetBool("continue")),
		}
		handleErr(tui.Run(&options))
	},
}

// newSearcher constructs the completion-backed searcher from the stored credentials.
func newSearcher() video.Searcher {
	apiKey, err := auth.GetAPIKey()
	handleErr(err)
	return search.New(apiKey)
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
