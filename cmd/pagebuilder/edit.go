package main

import (
	"fmt"

	"github.com/npillmayer/pagebuilder/builder"
	"github.com/npillmayer/pagebuilder/store"
	"github.com/spf13/cobra"
)

// session opens an editing session for a page of the store directory.
// Pages not yet stored start empty.
func (a *app) session(cmd *cobra.Command, name string) (*builder.Controller, error) {
	reg, err := registry()
	if err != nil {
		return nil, err
	}
	opts := append(a.config.ControllerOptions(),
		builder.WithStore(store.NewFiles(a.config.StoreDir)),
		builder.WithRegistry(reg),
	)
	ctrl := builder.New(name, opts...)
	if err = ctrl.Load(cmd.Context(), name); err != nil {
		return nil, err
	}
	return ctrl, nil
}

// edit runs op within an editing session and saves the result.
func (a *app) edit(cmd *cobra.Command, name string, op func(*builder.Controller) (string, error)) error {
	ctrl, err := a.session(cmd, name)
	if err != nil {
		return err
	}
	id, err := op(ctrl)
	if err != nil {
		_ = ctrl.Close(cmd.Context())
		return err
	}
	if err = ctrl.Close(cmd.Context()); err != nil {
		return err
	}
	if id != "" {
		fmt.Fprintln(cmd.OutOrStdout(), id)
	}
	return nil
}

func (a *app) newEditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit a page of the store directory",
		Long: `Edit a page of the store directory. Each edit loads the page, applies the
change and saves it. Ids of new nodes are printed.

Examples:
  pagebuilder edit section home --columns 2
  pagebuilder edit widget home heading --into col-1234
  pagebuilder edit remove home widget-5678`,
	}
	cmd.AddCommand(a.newEditSectionCmd(), a.newEditWidgetCmd(), a.newEditRemoveCmd())
	return cmd
}

func (a *app) newEditSectionCmd() *cobra.Command {
	var columns, index int
	cmd := &cobra.Command{
		Use:   "section <page>",
		Short: "Add a section with empty columns",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if columns < 1 {
				return fmt.Errorf("a section needs at least one column, got %d", columns)
			}
			return a.edit(cmd, args[0], func(ctrl *builder.Controller) (string, error) {
				id := ctrl.AddSection(columns, index)
				if id == "" {
					return "", fmt.Errorf("section not added to %s", args[0])
				}
				return id, nil
			})
		},
	}
	cmd.Flags().IntVar(&columns, "columns", 1, "number of columns")
	cmd.Flags().IntVar(&index, "index", -1, "position among the sections, -1 appends")
	return cmd
}

func (a *app) newEditWidgetCmd() *cobra.Command {
	var into string
	var index int
	cmd := &cobra.Command{
		Use:   "widget <page> <type>",
		Short: "Insert a widget with default content into a column",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.edit(cmd, args[0], func(ctrl *builder.Controller) (string, error) {
				id := ctrl.Drop(into, args[1], index)
				if id == "" {
					return "", fmt.Errorf("no column %q in %s", into, args[0])
				}
				return id, nil
			})
		},
	}
	cmd.Flags().StringVar(&into, "into", "", "id of the target column")
	cmd.Flags().IntVar(&index, "index", -1, "position within the column, -1 appends")
	cmd.MarkFlagRequired("into")
	return cmd
}

func (a *app) newEditRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <page> <id>",
		Short: "Remove a node and its sub-tree",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.edit(cmd, args[0], func(ctrl *builder.Controller) (string, error) {
				if !ctrl.Remove(args[1]) {
					return "", fmt.Errorf("no node %q in %s", args[1], args[0])
				}
				return "", nil
			})
		},
	}
}
