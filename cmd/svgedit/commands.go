// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"cogentcore.org/svgedit/base/errors"
	"cogentcore.org/svgedit/base/fsx"
	"cogentcore.org/svgedit/base/iox/yamlx"
	"cogentcore.org/svgedit/logx"
	"cogentcore.org/svgedit/svg"
	"github.com/spf13/cobra"
)

func infoCmd(o *options) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "info <file|dir>",
		Short: "Print a summary of the drawing, or of every drawing in a directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fname := fsx.ExpandHome(args[0])
			fi, err := os.Stat(fname)
			if err != nil {
				return err
			}
			if !fi.IsDir() {
				doc, err := o.open(fname)
				if err != nil {
					return err
				}
				return writeInfo(cmd.OutOrStdout(), doc.Summary(), format)
			}
			var errs []error
			for _, fn := range fsx.Filenames(fname, ".svg") {
				doc, err := o.open(filepath.Join(fname, fn))
				if err != nil {
					errs = append(errs, err)
					continue
				}
				if err := writeInfo(cmd.OutOrStdout(), doc.Summary(), format); err != nil {
					return err
				}
			}
			return errors.Join(errs...)
		},
	}
	cmd.Flags().StringVar(&format, "format", "text", "output format: text or yaml")
	return cmd
}

// writeInfo writes the summary in the given format.
func writeInfo(w io.Writer, s svg.Summary, format string) error {
	switch format {
	case "yaml":
		return yamlx.Write(s, w)
	case "text", "":
	default:
		return fmt.Errorf("info: unknown format %q", format)
	}
	fmt.Fprintf(w, "file: %s\n", s.File)
	if s.Title != "" {
		fmt.Fprintf(w, "title: %s\n", s.Title)
	}
	fmt.Fprintf(w, "elements: %d (hidden %d, selected %d)\n", s.Elements, s.Hidden, s.Selected)
	for _, k := range slices.Sorted(maps.Keys(s.Kinds)) {
		fmt.Fprintf(w, "  %s: %d\n", k, s.Kinds[k])
	}
	fmt.Fprintf(w, "vertices: %d\n", s.Vertices)
	fmt.Fprintf(w, "extents: %g %g %g %g\n", s.Extents[0], s.Extents[1], s.Extents[2], s.Extents[3])
	return nil
}

func mergeCmd(o *options) *cobra.Command {
	var epsilon float32
	cmd := &cobra.Command{
		Use:   "merge <file>",
		Short: "Remove path segments duplicated by other paths",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("epsilon") {
				epsilon = o.cfg.MergeEpsilon
			}
			doc, err := o.open(args[0])
			if err != nil {
				return err
			}
			logx.PrintlnInfo("removed ", doc.MergePaths(epsilon), " duplicate segments")
			return o.save(doc)
		},
	}
	cmd.Flags().Float32Var(&epsilon, "epsilon", 0.01, "how close endpoints must be to match")
	return cmd
}

func exportCmd(o *options) *cobra.Command {
	var visibleOnly bool
	cmd := &cobra.Command{
		Use:   "export <out> <file>",
		Short: "Write only the paths of the drawing to another file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("visible-only") {
				visibleOnly = o.cfg.VisibleOnly
			}
			doc, err := o.open(args[1])
			if err != nil {
				return err
			}
			out := fsx.ExpandHome(args[0])
			if err := doc.Export(out, visibleOnly); err != nil {
				return err
			}
			logx.PrintlnInfo("exported ", out)
			return nil
		},
	}
	cmd.Flags().BoolVar(&visibleOnly, "visible-only", false, "only export visible paths")
	return cmd
}

func initConfigCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "init-config <file>",
		Short: "Write the current settings to a TOML or YAML config file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.cfg.Save(args[0]); err != nil {
				return err
			}
			logx.PrintlnInfo("wrote ", args[0])
			return nil
		},
	}
}
