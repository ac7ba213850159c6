// Command camtool builds, decodes and checks CAM payloads offline.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "camtool",
		Short:         "Build and inspect CAM payloads",
		Long:          "camtool encodes sample CAMs from plain vehicle values and decodes or validates\npayloads captured from the wire. Payloads are read and written as hex.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(
		newSampleCmd(),
		newDecodeCmd(),
		newValidateCmd(),
	)
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "camtool:", err)
		os.Exit(1)
	}
}
