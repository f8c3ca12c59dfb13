// Package cmd implements the command-line interface for hikari.
package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/FEAR939/Hikari-DoodStream/color"
	"github.com/FEAR939/Hikari-DoodStream/dood"
	"github.com/FEAR939/Hikari-DoodStream/key"
	"github.com/FEAR939/Hikari-DoodStream/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(resolveCmd)

	resolveCmd.Flags().BoolP("metadata", "m", false, "Display the full metadata object instead of the bare link")
	resolveCmd.Flags().BoolP("json", "j", false, "Format the metadata output as a JSON string")
	resolveCmd.Flags().BoolP("probe-size", "p", false, "Probe the resolved link with a HEAD request to determine the file size")
	lo.Must0(viper.BindPFlag(key.ResolverProbeSize, resolveCmd.Flags().Lookup("probe-size")))

	resolveCmd.SetOut(os.Stdout)
}

// resolveCmd performs the embed-to-direct-link resolution for a single URL.
var resolveCmd = &cobra.Command{
	Use:     "resolve [embed-url]",
	Short:   "Resolve a Doodstream embed URL into a direct media link",
	Args:    cobra.ExactArgs(1),
	Example: "  hikari resolve https://dood.li/e/abc123",
	Run: func(cmd *cobra.Command, args []string) {
		embedURL := args[0]

		if !dood.SupportedURL(embedURL) {
			fmt.Fprintf(os.Stderr, "%s host is not a known Doodstream mirror, attempting anyway\n",
				style.Fg(color.Yellow)("!"))
		}

		var (
			asJson   = lo.Must(cmd.Flags().GetBool("json"))
			withMeta = lo.Must(cmd.Flags().GetBool("metadata"))
		)

		if !asJson && !withMeta {
			link, err := dood.GetDirectLink(cmd.Context(), embedURL)
			handleErr(err)
			cmd.Println(link)
			return
		}

		meta, err := dood.GetMetadata(cmd.Context(), embedURL)
		handleErr(err)

		if asJson {
			encoder := json.NewEncoder(cmd.OutOrStdout())
			lo.Must0(encoder.Encode(meta))
			return
		}

		faint := style.Faint
		cmd.Printf("%s %s\n", faint("Link   "), meta.MP4)
		cmd.Printf("%s %s\n", faint("Name   "), meta.Name)
		cmd.Printf("%s %s\n", faint("Quality"), meta.Quality)
		if meta.Size != nil {
			cmd.Printf("%s %d\n", faint("Size   "), *meta.Size)
		} else {
			cmd.Printf("%s %s\n", faint("Size   "), "unknown")
		}
		for k, v := range meta.Headers {
			cmd.Printf("%s %s: %s\n", faint("Header "), style.Fg(color.Purple)(k), v)
		}
	},
}
