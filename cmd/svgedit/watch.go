// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"log/slog"
	"path/filepath"

	"cogentcore.org/svgedit/base/fsx"
	"cogentcore.org/svgedit/logx"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

func watchCmd(o *options) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "watch <file>",
		Short: "Print the summary of the drawing each time it changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fname := fsx.ExpandHome(args[0])
			w, err := newWatcher(fname)
			if err != nil {
				return err
			}
			defer w.Close()
			info := func() {
				doc, err := o.open(fname)
				if err != nil {
					logx.PrintlnError(err)
					return
				}
				if err := writeInfo(cmd.OutOrStdout(), doc.Summary(), format); err != nil {
					logx.PrintlnError(err)
				}
			}
			info()
			watchLoop(cmd.Context(), w, fname, info)
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", "text", "output format: text or yaml")
	return cmd
}

// newWatcher watches the directory of the given file, so that
// editors that replace the file are still seen.
func newWatcher(fname string) (*fsnotify.Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(fname)); err != nil {
		w.Close()
		return nil, err
	}
	return w, nil
}

// watchLoop calls changed for every write or create of the given file
// until ctx is done or the watcher is closed.
func watchLoop(ctx context.Context, w *fsnotify.Watcher, fname string, changed func()) {
	fname = filepath.Clean(fname)
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != fname {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				slog.Debug("watch: file changed", "file", fname, "op", event.Op)
				changed()
			}
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			slog.Error("watch: watcher error", "err", err)
		}
	}
}
