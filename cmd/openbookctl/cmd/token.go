package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openbook-core/openbook/internal/http/auth"
)

var tokenSubject string

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Issue an API bearer token",
	Long: `Sign a bearer token with the configured secret, valid for the
configured TTL. Fails when no secret is set, since the API then runs
without authentication anyway.`,
	Run: runToken,
}

func init() {
	tokenCmd.Flags().StringVar(&tokenSubject, "subject", "openbookctl", "token subject")
}

func runToken(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	exitOnError(err, "failed to load config")

	if cfg.Auth.Secret == "" {
		exitOnError(fmt.Errorf("AUTH_SECRET is not set"), "cannot issue token")
	}

	token, err := auth.IssueToken(cfg.Auth.Secret, tokenSubject, cfg.Auth.TokenTTL)
	exitOnError(err, "failed to sign token")

	fmt.Println(token)
}
