package cli

import (
	"github.com/spf13/cobra"

	"github.com/leggettc18/devmarks/pkg/devmarks"
)

func (a *App) foldersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "folders",
		Short: "Work with folders",
	}
	cmd.AddCommand(
		a.foldersList(),
		a.foldersGet(),
		a.foldersAdd(),
		a.foldersAttach(),
	)
	return cmd
}

func (a *App) foldersList() *cobra.Command {
	var embed []string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List your folders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := a.client.ListFolders(cmd.Context(), embed...)
			return render(cmd, res, err)
		},
	}
	cmd.Flags().StringSliceVar(&embed, "embed", nil, "related resources to include (owner, parent, bookmarks)")
	return cmd
}

func (a *App) foldersGet() *cobra.Command {
	var embed []string
	cmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Show a folder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.client.GetFolder(cmd.Context(), args[0], embed...)
			return render(cmd, res, err)
		},
	}
	cmd.Flags().StringSliceVar(&embed, "embed", nil, "related resources to include (owner, parent, bookmarks)")
	return cmd
}

func (a *App) foldersAdd() *cobra.Command {
	var in devmarks.FolderCreate
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a folder",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in.ParentID = optional(cmd, "parent")
			res, err := a.client.CreateFolder(cmd.Context(), in)
			return render(cmd, res, err)
		},
	}
	cmd.Flags().StringVar(&in.Name, "name", "", "folder name")
	cmd.Flags().StringVar(&in.Color, "color", "", "display color")
	cmd.Flags().String("parent", "", "parent folder id")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func (a *App) foldersAttach() *cobra.Command {
	return &cobra.Command{
		Use:   "attach <folder-id> <bookmark-id>",
		Short: "Put a bookmark into a folder",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.client.AddBookmarkToFolder(cmd.Context(), args[0], args[1])
			return render(cmd, res, err)
		},
	}
}
