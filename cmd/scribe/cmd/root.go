package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"groq-scribe/cmd/scribe/cmd/serve"
	"groq-scribe/cmd/scribe/cmd/version"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "scribe",
	Short: "A browser-based audio transcription utility",
	Long: `Scribe serves a small web UI for transcribing audio clips.
Upload a file, drop one onto the page, or record from the microphone;
the clip is relayed to a hosted whisper model and the transcript comes
back as plain text.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serve.Cmd)
	rootCmd.AddCommand(version.Cmd)
}
