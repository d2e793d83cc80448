// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command guildctl is the operator CLI of the catalog: it previews a data file
// in the terminal and mints operator tokens for the reload endpoint.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/taibuivan/guildboard/internal/platform/constants"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "guildctl",
		Short:         "Operate the guildboard community catalog",
		SilenceUsage: true,
	}
	root.Version = constants.AppVersion
	root.SetVersionTemplate("{{.Version}}\n")
	root.AddCommand(renderCmd())
	root.AddCommand(tokenCmd())
	root.AddCommand(publishCmd())
	return root
}
