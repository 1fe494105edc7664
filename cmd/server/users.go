package main

import (
	"errors"
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/spf13/cobra"

	"github.com/nikol804/dotapost/internal/config"
	"github.com/nikol804/dotapost/internal/domain"
	"github.com/nikol804/dotapost/internal/service"
	"github.com/nikol804/dotapost/internal/token"
	"github.com/nikol804/dotapost/internal/validator"
)

var createUserInput domain.AccountInput

var createUserCmd = &cobra.Command{
	Use:   "create-user",
	Short: "Provision an account with its profile",
	Long: `Create a user together with its empty profile and print the user id.

Credentials live with the identity provider; this only registers the account
the provider's tokens refer to.`,
	Args: cobra.NoArgs,
	RunE: runCreateUser,
}

var (
	tokenUserID    string
	tokenSessionID string
)

var issueTokenCmd = &cobra.Command{
	Use:   "issue-token",
	Short: "Sign a development bearer token",
	Args:  cobra.NoArgs,
	RunE:  runIssueToken,
}

func init() {
	createUserCmd.Flags().StringVar(&createUserInput.Username, "username", "", "account username")
	createUserCmd.Flags().StringVar(&createUserInput.Email, "email", "", "account email")
	createUserCmd.Flags().BoolVar(&createUserInput.IsStaff, "staff", false, "mark the account as staff")
	createUserCmd.Flags().BoolVar(&createUserInput.IsSuperuser, "superuser", false, "mark the account as superuser")
	_ = createUserCmd.MarkFlagRequired("username")

	issueTokenCmd.Flags().StringVar(&tokenUserID, "user-id", "", "user id to sign for")
	issueTokenCmd.Flags().StringVar(&tokenSessionID, "session", "", "session id (sid claim)")
	_ = issueTokenCmd.MarkFlagRequired("user-id")

	rootCmd.AddCommand(createUserCmd, issueTokenCmd)
}

func runCreateUser(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.StorageBackend == config.StorageMemory {
		return errors.New("create-user needs the postgres storage backend")
	}

	b, err := openBackend(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer b.Close()

	accounts := service.NewAccountService(b.users, b.posts, validator.NewValidator())
	user, err := accounts.CreateAccount(cmd.Context(), createUserInput)
	if err != nil {
		var verrs validation.Errors
		if errors.As(err, &verrs) {
			for _, fe := range validator.ConvertValidationErrors(verrs) {
				fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", fe.Field, fe.Message)
			}
		}
		return fmt.Errorf("create user: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), user.ID)
	return nil
}

func runIssueToken(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	signer := token.NewSigner(cfg.JWTSecret, cfg.JWTIssuer, cfg.TokenTTL)
	raw, err := signer.Issue(tokenUserID, tokenSessionID, time.Now())
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), raw)
	return nil
}
