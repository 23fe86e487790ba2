// SPDX-License-Identifier: MIT
package commands

import (
	"encoding/json"
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// Version is set at build time: -ldflags "-X github.com/katalvlaran/coda/cmd/coda/commands.Version=v1.2.3".
var Version = "dev"

// versionInfo is the machine-readable version payload.
type versionInfo struct {
	Version   string `json:"version"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

func newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show coda version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			info := versionInfo{
				Version:   Version,
				GoVersion: runtime.Version(),
				Platform:  runtime.GOOS + "/" + runtime.GOARCH,
			}
			out := cmd.OutOrStdout()
			if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(info)
			}
			fmt.Fprintf(out, "coda %s\nPlatform: %s\nGo: %s\n", info.Version, info.Platform, info.GoVersion)
			return nil
		},
	}
	cmd.Flags().BoolP("json", "j", false, "output version info as JSON")

	return cmd
}
