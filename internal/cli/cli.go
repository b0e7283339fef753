// Package cli implements the devmarks command line, a thin consumer of the
// devmarks SDK facade.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/leggettc18/devmarks/pkg/devmarks"
	"github.com/leggettc18/devmarks/pkg/tokenstore"
)

// FailureError is returned by a command when the server answered with a
// non-2xx status. The message has already been printed.
type FailureError struct {
	Status  int
	Message string
}

func (e *FailureError) Error() string {
	return fmt.Sprintf("error (%d): %s", e.Status, e.Message)
}

// ExitCode maps a command error to a process exit status.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var fe *FailureError
	if errors.As(err, &fe) {
		return 1
	}
	return 2
}

// App holds what every command needs. It is built once in main.
type App struct {
	client *devmarks.Client
	store  tokenstore.Store
	log    *zap.Logger
}

func NewApp(client *devmarks.Client, store tokenstore.Store, log *zap.Logger) *App {
	if log == nil {
		log = zap.NewNop()
	}
	return &App{client: client, store: store, log: log}
}

// RootCommand assembles the command tree.
func (a *App) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "devmarks",
		Short:         "Manage your devmarks bookmarks and folders",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		a.loginCommand(),
		a.logoutCommand(),
		a.registerCommand(),
		a.meCommand(),
		a.bookmarksCommand(),
		a.foldersCommand(),
	)
	return root
}

// handle dispatches on the result of a facade call. Transport faults come
// back as errors and abort the command.
func handle[T any](cmd *cobra.Command, res devmarks.Result[T], err error, onSuccess func(T) error) error {
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	switch r := res.(type) {
	case devmarks.Success[T]:
		return onSuccess(r.Data)
	case devmarks.Failure[T]:
		fmt.Fprintf(cmd.ErrOrStderr(), "error (%d): %s\n", r.StatusCode, r.Message)
		return &FailureError{Status: r.StatusCode, Message: r.Message}
	default:
		return fmt.Errorf("unexpected result %T", res)
	}
}

// render prints the payload of a successful call as indented JSON.
func render[T any](cmd *cobra.Command, res devmarks.Result[T], err error) error {
	return handle(cmd, res, err, func(data T) error {
		return printJSON(cmd, data)
	})
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}

// optional returns a pointer to the flag value when the flag was set.
func optional(cmd *cobra.Command, name string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetString(name)
	return &v
}
