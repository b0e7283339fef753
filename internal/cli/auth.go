package cli

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/leggettc18/devmarks/pkg/devmarks"
)

func (a *App) loginCommand() *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Obtain an access token and remember it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if password == "" {
				p, err := readPassword(cmd)
				if err != nil {
					return err
				}
				password = p
			}
			res, err := a.client.Login(cmd.Context(), devmarks.LoginRequest{Email: email, Password: password})
			return handle(cmd, res, err, func(tok devmarks.Token) error {
				if err := a.store.SetToken(cmd.Context(), tok.AccessToken); err != nil {
					return fmt.Errorf("save token: %w", err)
				}
				a.log.Debug("token stored", zap.Int64("expires_in", tok.ExpiresIn))
				fmt.Fprintf(cmd.OutOrStdout(), "logged in as %s\n", email)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password (read from stdin when omitted)")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func (a *App) logoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored access token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.store.Clear(cmd.Context()); err != nil {
				return fmt.Errorf("clear token: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "logged out")
			return nil
		},
	}
}

func (a *App) registerCommand() *cobra.Command {
	var in devmarks.RegisterRequest
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if in.Password == "" {
				p, err := readPassword(cmd)
				if err != nil {
					return err
				}
				in.Password = p
			}
			res, err := a.client.Register(cmd.Context(), in)
			return render(cmd, res, err)
		},
	}
	cmd.Flags().StringVar(&in.Email, "email", "", "account email")
	cmd.Flags().StringVar(&in.Password, "password", "", "account password (read from stdin when omitted)")
	cmd.Flags().StringVar(&in.Name, "name", "", "display name")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func (a *App) meCommand() *cobra.Command {
	var embed []string
	cmd := &cobra.Command{
		Use:   "me",
		Short: "Show the signed-in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := a.client.Me(cmd.Context(), embed...)
			return render(cmd, res, err)
		},
	}
	cmd.Flags().StringSliceVar(&embed, "embed", nil, "related resources to include")
	return cmd
}

func readPassword(cmd *cobra.Command) (string, error) {
	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		if err != nil {
			return "", fmt.Errorf("read password: %w", err)
		}
		return "", errors.New("password is required")
	}
	return line, nil
}
