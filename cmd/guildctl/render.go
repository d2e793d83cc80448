// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/taibuivan/guildboard/internal/catalog"
	"github.com/taibuivan/guildboard/internal/render"
)

type renderOptions struct {
	file     string
	search   string
	category string
	asJSON   bool
	timeout  time.Duration
}

func renderCmd() *cobra.Command {
	options := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print the catalog view of a local data file",
		Example: `  guildctl render --file data/data.json
  guildctl render --filter players -q shadow`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRender(cmd, options)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&options.file, "file", "f", "./data/data.json", "catalog data file (.json, .yaml or .yml)")
	flags.StringVarP(&options.search, "search", "q", "", "search term")
	flags.StringVar(&options.category, "filter", catalog.AllCategories, "category tag, or \"all\"")
	flags.BoolVar(&options.asJSON, "json", false, "print the view model as JSON")
	flags.DurationVar(&options.timeout, "timeout", 10*time.Second, "load timeout")
	return cmd
}

func runRender(cmd *cobra.Command, options *renderOptions) error {
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelWarn}))

	service := catalog.NewService(catalog.NewFileSource(options.file), catalog.NewStore(), options.timeout, logger)
	loadErr := service.Load(cmd.Context())

	view, err := service.View(catalog.NewFilterState(options.search, options.category))
	if err != nil {
		return err
	}

	if options.asJSON {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(view); err != nil {
			return err
		}
	} else if err := (render.Terminal{}).Render(cmd.OutOrStdout(), view); err != nil {
		return err
	}

	return loadErr
}
