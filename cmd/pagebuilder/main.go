/*
Command pagebuilder renders, checks and converts page documents.

A document is given either as a path to a JSON file holding a page record
({"sections": [...], "meta": {...}}) or a bare list of sections, or as the
name of a page in the store directory of the configuration.

	pagebuilder render home.json --device mobile --mode published
	pagebuilder validate home
	pagebuilder migrate old.json > new.json
	pagebuilder tree home.json
	pagebuilder edit section home --columns 2

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/pagebuilder/config"
	"github.com/npillmayer/schuko/tracing"
	"github.com/spf13/cobra"
)

// version is set during build with -ldflags
var version = "dev"

func tracer() tracing.Trace {
	return tracing.Select("pb.cli")
}

// app carries the state shared by all commands.
type app struct {
	configPath string
	config     *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "pagebuilder",
		Short: "Render, validate and migrate page documents",
		Long: `pagebuilder works on page documents as produced by the page editor.
Documents are given as JSON files or as names of pages in the store directory.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			c, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			a.config = c
			return nil
		},
	}
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "configuration file (YAML)")
	root.AddCommand(
		a.newRenderCmd(),
		a.newValidateCmd(),
		a.newMigrateCmd(),
		a.newTreeCmd(),
		a.newPagesCmd(),
		a.newEditCmd(),
		newVersionCmd(),
	)
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of pagebuilder",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "pagebuilder version %s\n", version)
		},
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
