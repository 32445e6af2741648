package main

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"yamdb-backend/internal/config"
	"yamdb-backend/internal/database"
	"yamdb-backend/internal/errs"
	"yamdb-backend/internal/repository"
	"yamdb-backend/internal/services"

	"github.com/spf13/cobra"
)

var (
	superuserName  string
	superuserEmail string
)

var createSuperuserCmd = &cobra.Command{
	Use:   "createsuperuser",
	Short: "Create an admin account that passes every permission check",
	Long: `Create a superuser. The account signs in like any other user:
request a confirmation code at /auth/signup/ and exchange it at /auth/token/.

Example:
  yamdb createsuperuser --username root --email root@example.com`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCreateSuperuser(cmd)
	},
}

func init() {
	createSuperuserCmd.Flags().StringVar(&superuserName, "username", "", "Username of the new superuser")
	createSuperuserCmd.Flags().StringVar(&superuserEmail, "email", "", "Email of the new superuser")
	_ = createSuperuserCmd.MarkFlagRequired("username")
	_ = createSuperuserCmd.MarkFlagRequired("email")
}

func runCreateSuperuser(cmd *cobra.Command) error {
	cfg := config.Load()
	log := setupLogger()

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
	defer cancel()

	svc := services.NewUserService(repository.NewUserRepository(db), log)
	user, err := svc.CreateSuperuser(ctx, services.UserInput{
		Username: superuserName,
		Email:    superuserEmail,
	})
	if err != nil {
		return describeInputError(err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Superuser %q created.\n", user.Username)
	return nil
}

// describeInputError flattens field errors into one line for the terminal.
func describeInputError(err error) error {
	var verr *errs.ValidationError
	if !errors.As(err, &verr) {
		return err
	}

	fields := make([]string, 0, len(verr.Fields))
	for field := range verr.Fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, strings.Join(verr.Fields[field], " ")))
	}
	return fmt.Errorf("invalid input: %s", strings.Join(parts, "; "))
}
