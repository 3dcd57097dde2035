package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"marketplace-wallet/config"
	"marketplace-wallet/internal/app"
	"marketplace-wallet/internal/core/domain"
	"marketplace-wallet/internal/core/ports"
	"marketplace-wallet/internal/service"
	"marketplace-wallet/pkg/logger"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

type loadFunc func(path string) (*config.Config, error)

// cli carries what every subcommand needs.
type cli struct {
	load       loadFunc
	out        io.Writer
	configPath string
}

func newRootCmd(load loadFunc, out io.Writer) *cobra.Command {
	c := &cli{load: load, out: out}

	rootCmd := &cobra.Command{
		Use:           "walletctl",
		Short:         "Operator tool for the marketplace wallet",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetOut(out)
	rootCmd.PersistentFlags().StringVarP(&c.configPath, "config", "c", "", "Path to config file")

	rootCmd.AddCommand(c.tokenCmd())
	rootCmd.AddCommand(c.hashKeyCmd())
	rootCmd.AddCommand(c.reconcileCmd())
	rootCmd.AddCommand(c.confirmDepositCmd())
	rootCmd.AddCommand(c.confirmPaymentCmd())

	return rootCmd
}

// withApp loads configuration, builds the application and runs fn.
func (c *cli) withApp(cmd *cobra.Command, fn func(ctx context.Context, a *app.App) error) error {
	cfg, err := c.load(c.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
	defer cancel()

	a, err := app.New(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer a.Close()

	return fn(ctx, a)
}

func (c *cli) printJSON(v interface{}) error {
	enc := json.NewEncoder(c.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (c *cli) tokenCmd() *cobra.Command {
	var role string

	cmd := &cobra.Command{
		Use:   "token [owner-id]",
		Short: "Issue a bearer token for an owner",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ownerID, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid owner id: %w", err)
			}
			if role != ports.RoleUser && role != ports.RoleAdmin {
				return fmt.Errorf("role must be %q or %q", ports.RoleUser, ports.RoleAdmin)
			}

			cfg, err := c.load(c.configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			tokens := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)
			token, expiresAt, err := tokens.Generate(ownerID, role)
			if err != nil {
				return err
			}
			return c.printJSON(map[string]string{
				"token":      token,
				"expires_at": expiresAt.UTC().Format(time.RFC3339),
			})
		},
	}

	cmd.Flags().StringVarP(&role, "role", "r", ports.RoleUser, "Token role (user, admin)")
	return cmd
}

func (c *cli) hashKeyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-api-key [key]",
		Short: "Hash a bank webhook API key for webhook.api_key_hash",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hash, err := service.NewArgon2HashService().Hash(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(c.out, hash)
			return nil
		},
	}
}

func (c *cli) reconcileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reconcile [owner-id...]",
		Short: "Compare wallet balances with the sum of completed transactions",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			owners := make([]uuid.UUID, 0, len(args))
			for _, arg := range args {
				id, err := uuid.Parse(arg)
				if err != nil {
					return fmt.Errorf("invalid owner id %q: %w", arg, err)
				}
				owners = append(owners, id)
			}

			return c.withApp(cmd, func(ctx context.Context, a *app.App) error {
				var drifted []string
				for _, id := range owners {
					report, err := a.Wallets.Reconcile(ctx, id)
					if err != nil {
						return fmt.Errorf("reconcile %s: %w", id, err)
					}
					if err := c.printJSON(report); err != nil {
						return err
					}
					if !report.Consistent {
						drifted = append(drifted, id.String())
					}
				}
				if len(drifted) > 0 {
					return fmt.Errorf("balance drift detected for %s", strings.Join(drifted, ", "))
				}
				return nil
			})
		},
	}
}

func (c *cli) confirmDepositCmd() *cobra.Command {
	var (
		amount      int64
		externalRef string
	)

	cmd := &cobra.Command{
		Use:   "confirm-deposit [transaction-id]",
		Short: "Confirm a pending deposit seen on the bank statement",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			txID, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid transaction id: %w", err)
			}
			if amount <= 0 {
				return fmt.Errorf("--amount must be the transferred amount")
			}

			return c.withApp(cmd, func(ctx context.Context, a *app.App) error {
				res, err := a.Deposits.ConfirmDeposit(ctx, ports.ConfirmDepositRequest{
					TransactionID:  txID,
					ExternalRef:    externalRef,
					ObservedAmount: amount,
					Source:         domain.SourceManual,
				})
				if err != nil {
					return err
				}
				return c.printJSON(map[string]interface{}{
					"applied":     res.Applied,
					"transaction": res.Transaction,
				})
			})
		},
	}

	cmd.Flags().Int64VarP(&amount, "amount", "a", 0, "Amount observed on the statement (VND)")
	cmd.Flags().StringVar(&externalRef, "ref", "", "Bank reference of the transfer")
	return cmd
}

func (c *cli) confirmPaymentCmd() *cobra.Command {
	var operator string

	cmd := &cobra.Command{
		Use:   "confirm-payment [payment-id]",
		Short: "Manually confirm a pending order payment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			paymentID, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid payment id: %w", err)
			}
			operatorID, err := uuid.Parse(operator)
			if err != nil {
				return fmt.Errorf("--operator must be the admin owner id: %w", err)
			}

			return c.withApp(cmd, func(ctx context.Context, a *app.App) error {
				res, err := a.Checkout.ConfirmPayment(ctx, paymentID, ports.Principal{
					OwnerID: operatorID,
					Role:    ports.RoleAdmin,
				})
				if err != nil {
					return err
				}
				return c.printJSON(map[string]interface{}{
					"applied": res.Applied,
					"payment": res.Payment,
				})
			})
		},
	}

	cmd.Flags().StringVar(&operator, "operator", "", "Owner id of the confirming admin")
	return cmd
}
