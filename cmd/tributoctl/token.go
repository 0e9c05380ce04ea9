package main

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"tributo/internal/domain"
	"tributo/internal/service"
)

func newTokenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue an access token signed with the configured JWT secret",
		Long: `Issue a short-lived access token for calling the API in development and
support sessions. The token is signed with TRIBUTO_JWT_SECRET and expires after
TRIBUTO_JWT_ACCESS_EXPIRY.`,
		RunE: runToken,
	}

	cmd.Flags().String("tenant", "", "Tenant ID (required)")
	cmd.Flags().String("user", "", "User ID (default: random)")
	cmd.Flags().String("email", "", "Email claim")
	cmd.Flags().String("role", string(domain.RoleViewer), "Role: admin, member or viewer")
	_ = cmd.MarkFlagRequired("tenant")
	return cmd
}

func runToken(cmd *cobra.Command, args []string) error {
	tenantFlag, _ := cmd.Flags().GetString("tenant")
	userFlag, _ := cmd.Flags().GetString("user")
	email, _ := cmd.Flags().GetString("email")
	roleFlag, _ := cmd.Flags().GetString("role")

	tenantID, err := uuid.Parse(tenantFlag)
	if err != nil {
		return fmt.Errorf("invalid --tenant: %w", err)
	}
	userID := uuid.New()
	if userFlag != "" {
		if userID, err = uuid.Parse(userFlag); err != nil {
			return fmt.Errorf("invalid --user: %w", err)
		}
	}

	role := domain.UserRole(roleFlag)
	switch role {
	case domain.RoleAdmin, domain.RoleMember, domain.RoleViewer:
	default:
		return fmt.Errorf("invalid --role %q", roleFlag)
	}

	token, expiresAt, err := service.NewAuthService(cfg.JWT).IssueAccessToken(service.Principal{
		TenantID: tenantID,
		UserID:   userID,
		Email:    email,
		Role:     role,
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), token)
	fmt.Fprintf(cmd.ErrOrStderr(), "expires at %s\n", expiresAt.Format(time.RFC3339))
	return nil
}
