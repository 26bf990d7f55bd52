package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/expense_approval_app/internal/platform/config"
	"github.com/SscSPs/expense_approval_app/internal/utils"
	"github.com/spf13/cobra"
)

func tokenCmd() *cobra.Command {
	var (
		userID string
		expiry time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a development JWT",
		Long: `Signs a bearer token for an existing user with the configured secret and issuer.
Login is handled by the identity provider in production; this is for local testing.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if userID == "" {
				return errors.New("--user is required")
			}
			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if expiry == 0 {
				expiry = cfg.JWTExpiryDuration
			}

			token, err := utils.GenerateJWT(userID, cfg.JWTSecret, expiry, cfg.JWTIssuer)
			if err != nil {
				return fmt.Errorf("failed to sign token: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().StringVar(&userID, "user", "", "user ID placed in the token subject")
	cmd.Flags().DurationVar(&expiry, "expiry", 0, "token lifetime (defaults to JWT_EXPIRY_DURATION)")

	return cmd
}
