// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"cogentcore.org/svgedit/base/errors"
	"cogentcore.org/svgedit/base/fsx"
	"cogentcore.org/svgedit/config"
	"cogentcore.org/svgedit/logx"
	"cogentcore.org/svgedit/math32"
	"cogentcore.org/svgedit/svg"
	"github.com/spf13/cobra"
)

// options are the global flags and the config they select.
type options struct {
	configFile  string
	out         string
	veryVerbose bool
	verbose     bool
	quiet       bool

	cfg *config.Config
}

func newRootCmd() *cobra.Command {
	o := &options{cfg: config.Defaults()}
	root := &cobra.Command{
		Use:           "svgedit",
		Short:         "Edit polyline and path SVG drawings",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return o.setup()
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&o.configFile, "config", "", "TOML or YAML config file")
	pf.StringVarP(&o.out, "out", "o", "", "write the result to this file instead of the input")
	pf.BoolVar(&o.veryVerbose, "vv", false, "debug output")
	pf.BoolVarP(&o.verbose, "verbose", "v", false, "verbose output")
	pf.BoolVarP(&o.quiet, "quiet", "q", false, "only print errors")

	root.AddCommand(
		infoCmd(o),
		watchCmd(o),
		editCmd(o, "center <file>", "Center the drawing on the origin", 0, func(doc *svg.Document, args []string) error {
			doc.Center()
			return nil
		}),
		editCmd(o, "rotate90 left|right <file>", "Rotate the drawing by 90 degrees", 1, rotate90),
		editCmd(o, "flip vert|horz <file>", "Mirror the drawing", 1, flip),
		editCmd(o, "scale <s> <file>", "Scale the drawing uniformly", 1, func(doc *svg.Document, args []string) error {
			s, err := parseFloats(args)
			if err != nil {
				return err
			}
			doc.Scale(s[0])
			return nil
		}),
		editCmd(o, "move <dx> <dy> <file>", "Translate the drawing; use -- before negative values", 2, func(doc *svg.Document, args []string) error {
			d, err := parseFloats(args)
			if err != nil {
				return err
			}
			doc.Move(d[0], d[1])
			return nil
		}),
		editCmd(o, "transform <transform> <file>", "Apply an SVG transform string", 1, func(doc *svg.Document, args []string) error {
			doc.ApplyMatrix(svg.ParseTransform(args[0]))
			return nil
		}),
		editCmd(o, "delete-in-rect <x0> <y0> <x1> <y1> <file>", "Delete the elements touching a rectangle", 4, func(doc *svg.Document, args []string) error {
			r, err := parseFloats(args)
			if err != nil {
				return err
			}
			doc.SelectInRect(r[0], r[1], r[2], r[3], true)
			logx.PrintlnInfo("deleted ", doc.DeleteSelected(), " elements")
			return nil
		}),
		mergeCmd(o),
		exportCmd(o),
		initConfigCmd(o),
	)
	return root
}

// setup loads the config file and sets the log level, with
// the verbosity flags taking precedence over the config.
func (o *options) setup() error {
	if o.configFile != "" {
		if err := o.cfg.Open(o.configFile); err != nil {
			return err
		}
	}
	if o.veryVerbose || o.verbose || o.quiet {
		logx.UserLevel = logx.LevelFromFlags(o.veryVerbose, o.verbose, o.quiet)
	} else {
		logx.UserLevel = o.cfg.Level()
	}
	logx.SetDefaultLogger()
	return nil
}

// open loads the given file with the config settings applied.
func (o *options) open(fname string) (*svg.Document, error) {
	doc := svg.NewDocument()
	o.cfg.Apply(doc)
	if err := doc.Open(fsx.ExpandHome(fname)); err != nil {
		return nil, err
	}
	return doc, nil
}

// save writes the document to --out, or back to its own file.
func (o *options) save(doc *svg.Document) error {
	fname := doc.Filename
	if o.out != "" {
		fname = fsx.ExpandHome(o.out)
	} else if !doc.Dirty {
		logx.PrintlnInfo("no changes to ", fname)
		return nil
	}
	if err := doc.Save(fname); err != nil {
		return err
	}
	logx.PrintlnInfo("saved ", fname)
	return nil
}

// editCmd returns a command that opens the file given as its last
// argument, applies fn with the nargs arguments before it, and saves.
func editCmd(o *options, use, short string, nargs int, fn func(doc *svg.Document, args []string) error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(nargs + 1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := o.open(args[nargs])
			if err != nil {
				return err
			}
			if err := fn(doc, args[:nargs]); err != nil {
				return err
			}
			return o.save(doc)
		},
	}
}

func rotate90(doc *svg.Document, args []string) error {
	switch args[0] {
	case "left":
		doc.Rotate90L()
	case "right":
		doc.Rotate90R()
	default:
		return fmt.Errorf("rotate90: direction must be left or right, not %q", args[0])
	}
	return nil
}

func flip(doc *svg.Document, args []string) error {
	switch args[0] {
	case "vert":
		doc.FlipVert()
	case "horz":
		doc.FlipHorz()
	default:
		return fmt.Errorf("flip: axis must be vert or horz, not %q", args[0])
	}
	return nil
}

// parseFloats parses each argument as a single number.
func parseFloats(args []string) ([]float32, error) {
	vals := make([]float32, len(args))
	var errs []error
	for i, a := range args {
		v, n := math32.ParseFloat32([]byte(a))
		if n == 0 || n != len(a) {
			errs = append(errs, fmt.Errorf("%w: %q", math32.ErrNumberSyntax, a))
			continue
		}
		vals[i] = v
	}
	return vals, errors.Join(errs...)
}
