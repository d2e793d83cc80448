// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/taibuivan/guildboard/internal/platform/constants"
	"github.com/taibuivan/guildboard/internal/platform/sec"
)

func tokenCmd() *cobra.Command {
	var (
		keyPath string
		subject string
		role    string
		ttl     time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint an operator token signed with the RS256 private key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			userRole := sec.UserRole(role)
			if userRole != sec.RoleAdmin && userRole != sec.RoleViewer {
				return fmt.Errorf("unknown role %q (want %s or %s)", role, sec.RoleAdmin, sec.RoleViewer)
			}

			tokens, err := sec.NewTokenService(keyPath, "", constants.AuthIssuer)
			if err != nil {
				return err
			}

			token, err := tokens.GenerateAccessToken(subject, userRole, ttl)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
			return err
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&keyPath, "key", "", "path to the PEM private key")
	flags.StringVar(&subject, "subject", "operator", "token subject")
	flags.StringVar(&role, "role", string(sec.RoleAdmin), "token role (admin or viewer)")
	flags.DurationVar(&ttl, "ttl", time.Hour, "token lifetime")
	_ = cmd.MarkFlagRequired("key")
	return cmd
}
