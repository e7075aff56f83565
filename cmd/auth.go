// Package cmd implements the command-line interface for vidsan.
package cmd

import (
	"errors"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/vidsan-cli/vidsan/auth"
	"github.com/vidsan-cli/vidsan/color"
	"github.com/vidsan-cli/vidsan/icon"
	"github.com/vidsan-cli/vidsan/style"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(authCmd)
}

// authCmd manages the search service credentials stored in the system keyring.
var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage the search service API key",
	Long: `Manage the API key used to authenticate against the completion service.

The key is stored in the system keyring. The ` + auth.EnvAPIKey + `
environment variable takes precedence over the stored key when set.`,
}

func init() {
	authCmd.AddCommand(authSetCmd)
}

// authSetCmd stores the API key in the system keyring.
var authSetCmd = &cobra.Command{
	Use:   "set [key]",
	Short: "Store the search service API key in the system keyring",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var apiKey string

		if len(args) == 1 {
			apiKey = args[0]
		} else {
			prompt := survey.Password{Message: "API key:"}
			handleErr(survey.AskOne(&prompt, &apiKey, survey.WithValidator(survey.Required)))
		}

		if apiKey == "" {
			handleErr(errors.New("api key must not be empty"))
		}

		handleErr(auth.SetAPIKey(apiKey))
		fmt.Printf("%s api key stored\n", style.Fg(color.Green)(icon.Get(icon.Success)))
	},
}

func init() {
	authCmd.AddCommand(authStatusCmd)
}

// authStatusCmd reports whether a usable API key is available.
var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Report whether a search service API key is available",
	Run: func(cmd *cobra.Command, args []string) {
		if _, err := auth.GetAPIKey(); err != nil {
			fmt.Printf("%s no api key found, run %s to store one\n",
				icon.Get(icon.Fail),
				style.Fg(color.Yellow)("vidsan auth set"),
			)
			return
		}

		fmt.Printf("%s api key is available\n", style.Fg(color.Green)(icon.Get(icon.Success)))
	},
}

func init() {
	authCmd.AddCommand(authDeleteCmd)
}

// authDeleteCmd removes the API key from the system keyring.
var authDeleteCmd = &cobra.Command{
	Use:     "delete",
	Short:   "Remove the search service API key from the system keyring",
	Aliases: []string{"remove"},
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(auth.DeleteAPIKey())
		fmt.Printf("%s api key deleted\n", style.Fg(color.Green)(icon.Get(icon.Success)))
	},
}
