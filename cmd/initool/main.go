// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

// initool reads and edits INI files from the command line.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/yourbase/inifile/envvar"
	"github.com/yourbase/inifile/ini"
	"zombiezen.com/go/log"
)

// globalOptions are the flags shared by every subcommand.
type globalOptions struct {
	separator string
	comment   string
	debug     bool
}

func (g *globalOptions) addFlags(fs *pflag.FlagSet) {
	fs.StringVar(&g.separator, "separator", "", "field separator character (default $INITOOL_SEPARATOR or '=')")
	fs.StringVar(&g.comment, "comment", "", "comment marker character (default $INITOOL_COMMENT or ';')")
	fs.BoolVar(&g.debug, "debug", envvar.Bool("INITOOL_DEBUG"), "show debug logs (INITOOL_DEBUG)")
}

// iniOptions resolves the punctuation from flags and the environment.
func (g *globalOptions) iniOptions() (*ini.Options, error) {
	sep, err := punctuation("separator", g.separator, "INITOOL_SEPARATOR", ini.DefaultFieldSeparator)
	if err != nil {
		return nil, err
	}
	marker, err := punctuation("comment", g.comment, "INITOOL_COMMENT", ini.DefaultCommentMarker)
	if err != nil {
		return nil, err
	}
	if sep == marker {
		return nil, errors.New("separator and comment marker must differ")
	}
	return &ini.Options{
		FieldSeparator: sep,
		CommentMarker:  marker,
	}, nil
}

func punctuation(flagName, flagValue, envKey string, defaultValue byte) (byte, error) {
	if flagValue == "" {
		return envvar.Char(envKey, defaultValue)
	}
	if len(flagValue) != 1 || !ini.IsValidPunctuation(flagValue[0]) {
		return 0, fmt.Errorf("--%s=%q: must be a single printable ASCII character other than space, '[' or ']'", flagName, flagValue)
	}
	return flagValue[0], nil
}

func (g *globalOptions) load(ctx context.Context, path string) (*ini.File, error) {
	opts, err := g.iniOptions()
	if err != nil {
		return nil, err
	}
	return ini.Load(ctx, path, opts)
}

// initLogging installs the default logger, honoring --debug.
func (g *globalOptions) initLogging(w io.Writer) {
	minLevel := log.Info
	if g.debug {
		minLevel = log.Debug
	}
	log.SetDefault(&log.LevelFilter{
		Min:    minLevel,
		Output: log.New(w, "initool: ", log.StdFlags, nil),
	})
}

func newRootCommand(g *globalOptions) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "initool",
		Short:         "Read and edit INI files",
		Long:          "Read and edit INI files, preserving comments and the order of sections and fields.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	g.addFlags(rootCmd.PersistentFlags())
	rootCmd.AddCommand(
		newFmtCommand(g),
		newGetCommand(g),
		newSetCommand(g),
		newSectionsCommand(g),
		newKeysCommand(g),
	)
	return rootCmd
}

func main() {
	g := new(globalOptions)
	rootCmd := newRootCommand(g)
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		g.initLogging(cmd.ErrOrStderr())
	}
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "initool: %v\n", err)
		os.Exit(1)
	}
}
