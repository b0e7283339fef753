package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leggettc18/devmarks/pkg/devmarks"
)

func (a *App) bookmarksCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "bookmarks",
		Aliases: []string{"bm"},
		Short:   "Work with bookmarks",
	}
	cmd.AddCommand(
		a.bookmarksList(),
		a.bookmarksGet(),
		a.bookmarksAdd(),
		a.bookmarksUpdate(),
		a.bookmarksRemove(),
	)
	return cmd
}

func (a *App) bookmarksList() *cobra.Command {
	var embed []string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List your bookmarks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := a.client.ListBookmarks(cmd.Context(), embed...)
			return render(cmd, res, err)
		},
	}
	cmd.Flags().StringSliceVar(&embed, "embed", nil, "related resources to include (owner, folders)")
	return cmd
}

func (a *App) bookmarksGet() *cobra.Command {
	var embed []string
	cmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Show a bookmark",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.client.GetBookmark(cmd.Context(), args[0], embed...)
			return render(cmd, res, err)
		},
	}
	cmd.Flags().StringSliceVar(&embed, "embed", nil, "related resources to include (owner, folders)")
	return cmd
}

func (a *App) bookmarksAdd() *cobra.Command {
	var in devmarks.BookmarkCreate
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a bookmark",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in.Color = optional(cmd, "color")
			res, err := a.client.CreateBookmark(cmd.Context(), in)
			return render(cmd, res, err)
		},
	}
	cmd.Flags().StringVar(&in.Name, "name", "", "bookmark name")
	cmd.Flags().StringVar(&in.URL, "url", "", "bookmark URL")
	cmd.Flags().String("color", "", "display color")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("url")
	return cmd
}

func (a *App) bookmarksUpdate() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change a bookmark; only the given flags are sent",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := devmarks.BookmarkUpdate{
				ID:    args[0],
				Name:  optional(cmd, "name"),
				URL:   optional(cmd, "url"),
				Color: optional(cmd, "color"),
			}
			if in.Name == nil && in.URL == nil && in.Color == nil {
				return fmt.Errorf("nothing to update: set --name, --url or --color")
			}
			res, err := a.client.UpdateBookmark(cmd.Context(), in)
			return render(cmd, res, err)
		},
	}
	cmd.Flags().String("name", "", "new name")
	cmd.Flags().String("url", "", "new URL")
	cmd.Flags().String("color", "", "new color")
	return cmd
}

func (a *App) bookmarksRemove() *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Delete a bookmark",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.client.DeleteBookmark(cmd.Context(), args[0])
			return handle(cmd, res, err, func(struct{}) error {
				fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
				return nil
			})
		},
	}
}
