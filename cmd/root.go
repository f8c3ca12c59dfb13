// Package cmd implements the command-line interface for hikari.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/FEAR939/Hikari-DoodStream/color"
	"github.com/FEAR939/Hikari-DoodStream/constant"
	"github.com/FEAR939/Hikari-DoodStream/key"
	"github.com/FEAR939/Hikari-DoodStream/log"
	"github.com/FEAR939/Hikari-DoodStream/style"
	"github.com/FEAR939/Hikari-DoodStream/util"
	"github.com/FEAR939/Hikari-DoodStream/version"
	"github.com/FEAR939/Hikari-DoodStream/where"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

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

// rootCmd defines the entry point for the hikari application.
var rootCmd = &cobra.Command{
	Use:   constant.Hikari,
	Short: "Resolve Doodstream embed pages into playable direct links",
	Long: style.Bold("hikari") + " turns a Doodstream embed URL into a time-limited direct\n" +
		"media link, plus light metadata for downstream tooling.",
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		_ = cmd.Help()
	},
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
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", style.Fg(color.Red)("✗"), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
