package cli

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/opsdesk/backend/internal/config"
	"github.com/opsdesk/backend/internal/service"
)

var tokenTTL time.Duration

var tokenCmd = &cobra.Command{
	Use:   "token <user-uuid>",
	Short: "Mint a development API token",
	Long: `Signs a bearer token for the given user with JWT_SECRET, for calling
the picker and filter endpoints of a local server.

Examples:
  rangectl token 3f0c9d4e-6f1a-4a53-9c36-2b1f0f7c2d11
  rangectl token $(uuidgen) --ttl 1h`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid user id %q: %w", args[0], err)
		}
		service.SetJWTSecret(config.Load().JWTSecret)
		token, err := service.GenerateToken(userID, tokenTTL)
		if err != nil {
			return fmt.Errorf("failed to sign token: %w", err)
		}

		if jsonOutput {
			return outputSuccess(cmd.OutOrStdout(), map[string]string{
				"token":     token,
				"userId":    userID.String(),
				"expiresAt": time.Now().Add(tokenTTL).UTC().Format(time.RFC3339),
			})
		}
		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

func init() {
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", 24*time.Hour, "Token lifetime")
	rootCmd.AddCommand(tokenCmd)
}
