package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/npillmayer/pagebuilder/page"
	"github.com/npillmayer/pagebuilder/page/legacy"
	"github.com/npillmayer/pagebuilder/pagedbg"
	"github.com/npillmayer/pagebuilder/render"
	"github.com/npillmayer/pagebuilder/store"
	"github.com/npillmayer/pagebuilder/widget"
	"github.com/npillmayer/pagebuilder/widget/builtin"
	"github.com/spf13/cobra"
)

func registry() (*widget.Registry, error) {
	reg := widget.NewRegistry()
	if err := builtin.Register(reg); err != nil {
		return nil, err
	}
	return reg, nil
}

// --- render ----------------------------------------------------------------

func (a *app) newRenderCmd() *cobra.Command {
	var device, mode, selected string
	var document bool
	cmd := &cobra.Command{
		Use:   "render <file|page>",
		Short: "Render a page to HTML",
		Long: `Render a page to HTML for a device.

Editor mode decorates nodes with their ids and shows hidden nodes dimmed,
published mode leaves hidden nodes out.

Examples:
  pagebuilder render home.json
  pagebuilder render home --device mobile --mode published --document`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := page.ParseDevice(device)
			if err != nil {
				return err
			}
			m, err := render.ParseMode(mode)
			if err != nil {
				return err
			}
			root, meta, err := a.readPage(cmd, args[0])
			if err != nil {
				return err
			}
			reg, err := registry()
			if err != nil {
				return err
			}
			c := &render.Canvas{
				Registry:   reg,
				Lowerer:    a.config.Lowerer(),
				Device:     d,
				Mode:       m,
				Selected:   selected,
				BoxedWidth: a.config.BoxedWidth,
			}
			if document {
				return c.WriteDocument(cmd.OutOrStdout(), root, meta.Title, meta.Description)
			}
			if err = c.RenderHTML(cmd.OutOrStdout(), root); err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout())
			return err
		},
	}
	cmd.Flags().StringVarP(&device, "device", "d", "desktop", "device to render for (desktop, tablet, mobile)")
	cmd.Flags().StringVarP(&mode, "mode", "m", "editor", "render mode (editor, published)")
	cmd.Flags().StringVar(&selected, "selected", "", "id of the selected node (editor mode)")
	cmd.Flags().BoolVar(&document, "document", false, "output a complete HTML document")
	return cmd
}

// --- validate --------------------------------------------------------------

func (a *app) newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file|page>",
		Short: "Check a page for structural errors",
		Long: `Check a page for structural errors: missing ids or kinds, duplicate ids
and misplaced roots. Widgets of unknown type are reported, but do not fail
the check.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, _, err := a.readPage(cmd, args[0])
			if err != nil {
				return err
			}
			if err = page.Validate(root); err != nil {
				var verr *page.ValidationError
				if errors.As(err, &verr) {
					tracer().Errorf("invalid page %s: node %q", args[0], verr.NodeID)
				}
				return err
			}
			reg, err := registry()
			if err != nil {
				return err
			}
			unknown := map[string]bool{}
			nodes := page.Flatten(root)
			for _, n := range nodes {
				if _, ok := reg.Lookup(n.WidgetType); n.Kind == page.KindWidget && !ok {
					unknown[n.WidgetType] = true
				}
			}
			out := cmd.OutOrStdout()
			if len(unknown) > 0 {
				types := make([]string, 0, len(unknown))
				for t := range unknown {
					types = append(types, t)
				}
				sort.Strings(types)
				fmt.Fprintf(out, "warning: unknown widget types %v\n", types)
			}
			fmt.Fprintf(out, "ok: %d nodes\n", len(nodes))
			return nil
		},
	}
}

// --- migrate ---------------------------------------------------------------

func (a *app) newMigrateCmd() *cobra.Command {
	var toLegacy, write bool
	cmd := &cobra.Command{
		Use:   "migrate <file|page>",
		Short: "Convert a page to the tree format",
		Long: `Convert a page document to the tree format and print it as JSON.
Documents already in tree format pass unchanged. With --legacy the page is
converted to the section/column format instead, which fails for trees not of
that shape. With --write the result is saved to the store directory under
the page's name.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, meta, err := a.readPage(cmd, args[0])
			if err != nil {
				return err
			}
			var rec *store.Record
			if toLegacy {
				sections, err := legacy.FromTree(root)
				if err != nil {
					return err
				}
				raw, err := json.Marshal(sections)
				if err != nil {
					return err
				}
				rec = &store.Record{Sections: raw, Meta: meta}
			} else if rec, err = store.Encode(root, meta); err != nil {
				return err
			}
			if write {
				return store.NewFiles(a.config.StoreDir).Save(cmd.Context(), pageName(args[0]), rec)
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(rec)
		},
	}
	cmd.Flags().BoolVar(&toLegacy, "legacy", false, "convert to the section/column format")
	cmd.Flags().BoolVarP(&write, "write", "w", false, "save to the store instead of printing")
	return cmd
}

// --- tree / pages ----------------------------------------------------------

func (a *app) newTreeCmd() *cobra.Command {
	var dot bool
	var device string
	var groups []string
	cmd := &cobra.Command{
		Use:   "tree <file|page>",
		Short: "Print the node tree of a page",
		Long: `Print the node tree of a page. With --dot a GraphViz diagram is printed
instead, including styles of the property groups given with --groups.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, _, err := a.readPage(cmd, args[0])
			if err != nil {
				return err
			}
			if !dot {
				_, err = fmt.Fprint(cmd.OutOrStdout(), pagedbg.Print(root))
				return err
			}
			d, err := page.ParseDevice(device)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("groups") {
				groups = nil
			}
			return pagedbg.ToGraphViz(root, cmd.OutOrStdout(), d, groups)
		},
	}
	cmd.Flags().BoolVar(&dot, "dot", false, "output GraphViz DOT format")
	cmd.Flags().StringVarP(&device, "device", "d", "desktop", "device to resolve styles for")
	cmd.Flags().StringSliceVar(&groups, "groups", nil, "property groups to show with --dot")
	return cmd
}

func (a *app) newPagesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pages",
		Short: "List the pages of the store directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := store.NewFiles(a.config.StoreDir).Names()
			if err != nil {
				return err
			}
			for _, name := range names {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}
