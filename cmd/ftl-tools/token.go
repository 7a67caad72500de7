package main

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/cobra"
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Generate a signed test token",
	Long: `token prints an HS256-signed JWT for exercising tool deployments that
sit behind the authorizer gateway. The gateway must be configured with the
same shared secret. Test use only.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		now := time.Now()
		claims := jwt.MapClaims{
			"sub": tokenSubject,
			"iss": tokenIssuer,
			"iat": now.Unix(),
			"exp": now.Add(tokenTTL).Unix(),
		}
		if tokenAudience != "" {
			claims["aud"] = tokenAudience
		}
		if tokenScope != "" {
			claims["scope"] = tokenScope
		}

		signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(tokenSecret))
		if err != nil {
			return fmt.Errorf("error signing token: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), signed)
		return nil
	},
}

var (
	tokenSecret   string
	tokenSubject  string
	tokenIssuer   string
	tokenAudience string
	tokenScope    string
	tokenTTL      time.Duration
)

func init() {
	tokenCmd.Flags().StringVar(&tokenSecret, "secret", "", "Shared HS256 signing secret (required)")
	tokenCmd.Flags().StringVar(&tokenSubject, "sub", "test-user", "Subject claim")
	tokenCmd.Flags().StringVar(&tokenIssuer, "iss", "ftl-tools", "Issuer claim")
	tokenCmd.Flags().StringVar(&tokenAudience, "aud", "", "Audience claim")
	tokenCmd.Flags().StringVar(&tokenScope, "scope", "", "Scope claim")
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", time.Hour, "Token lifetime")
	_ = tokenCmd.MarkFlagRequired("secret")

	rootCmd.AddCommand(tokenCmd)
}
