package system

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/fundacionaurora/clinica_backend/config"
	"github.com/fundacionaurora/clinica_backend/internal/service/user"
	"github.com/fundacionaurora/clinica_backend/pkg/authorize"
	"github.com/fundacionaurora/clinica_backend/pkg/crypto"
	"github.com/fundacionaurora/clinica_backend/pkg/database"
)

// NewCreateAdminCommand bootstraps the first administrator account. After
// that, staff accounts are created through the API.
func NewCreateAdminCommand() *cobra.Command {
	var name, email, password string

	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create an administrator account",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, err := cmd.Root().PersistentFlags().GetString("config")
			if err != nil {
				return fmt.Errorf("failed to get config flag: %w", err)
			}
			cfg, err := config.ReadConfig(filepath.Dir(cfgPath))
			if err != nil {
				return fmt.Errorf("failed to read config: %w", err)
			}

			client, err := database.NewEntClient(cfg.Database)
			if err != nil {
				return fmt.Errorf("failed to create ent client: %w", err)
			}
			defer client.Close()

			dsn := database.NewDSN(cfg.CasbinDatabase)
			enforcer, cleanup, err := authorize.NewEnforcer(cfg.Authorization.CasbinModelPath, dsn)
			if err != nil {
				return fmt.Errorf("failed to create enforcer: %w", err)
			}
			defer cleanup(context.Background())

			auth, err := authorize.NewAuthorization(enforcer)
			if err != nil {
				return fmt.Errorf("failed to create authorization: %w", err)
			}

			aesKey, err := crypto.KeyFromHex(cfg.Authentication.EncryptionKey)
			if err != nil {
				return fmt.Errorf("invalid encryption key: %w", err)
			}

			svc := user.New(client, auth, aesKey, nil)
			u, err := svc.CreateStaff(context.Background(), user.CreateStaffRequest{
				Name:     name,
				Email:    email,
				Role:     authorize.UserRoleAdmin,
				Password: password,
			})
			if err != nil {
				return fmt.Errorf("failed to create admin: %w", err)
			}

			fmt.Printf("Administrator %s created with id %s\n", u.Email, u.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Full name")
	cmd.Flags().StringVar(&email, "email", "", "Email address")
	cmd.Flags().StringVar(&password, "password", "", "Initial password")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}
