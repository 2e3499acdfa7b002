// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/yourbase/inifile/ini"
	"zombiezen.com/go/log"
)

func newFmtCommand(g *globalOptions) *cobra.Command {
	var write bool
	c := &cobra.Command{
		Use:     "fmt [options] FILE",
		Short:   "Rewrite a file in canonical form",
		Long:    "Parse FILE and print it in canonical form. Comments and order are kept.",
		Args:    cobra.ExactArgs(1),
		Example: "initool fmt -w settings.ini",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			f, err := g.load(ctx, args[0])
			if err != nil {
				return err
			}
			if write {
				return f.Save(ctx, args[0])
			}
			return f.Encode(cmd.OutOrStdout())
		},
	}
	c.Flags().BoolVarP(&write, "write", "w", false, "write result to FILE instead of stdout")
	return c
}

func newGetCommand(g *globalOptions) *cobra.Command {
	var typ string
	c := &cobra.Command{
		Use:   "get [options] FILE SECTION KEY",
		Short: "Print a field's value",
		Long: "Print the value of KEY in SECTION. Use an empty SECTION for fields " +
			"outside any section. With --type, the value is checked and printed in canonical form.",
		Args:    cobra.ExactArgs(3),
		Example: `initool get --type=int settings.ini server port`,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := g.load(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			section, key := args[1], args[2]
			s, ok := f.LookupSection(section)
			if !ok {
				return fmt.Errorf("%s: no section %q", args[0], section)
			}
			field, ok := s.LookupField(key)
			if !ok {
				return fmt.Errorf("%s: no field %q in section %q", args[0], key, section)
			}
			var out string
			switch typ {
			case "string":
				out = field.String()
			case "int":
				i, err := field.Int64()
				if err != nil {
					return err
				}
				out = strconv.FormatInt(i, 10)
			case "float":
				x, err := field.Float64()
				if err != nil {
					return err
				}
				out = strconv.FormatFloat(x, 'g', -1, 64)
			case "bool":
				b, err := field.Bool()
				if err != nil {
					return err
				}
				out = strconv.FormatBool(b)
			default:
				return fmt.Errorf("--type=%q: must be one of string, int, float, bool", typ)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}
	c.Flags().StringVar(&typ, "type", "string", "interpret the value as string, int, float or bool")
	return c
}

func newSetCommand(g *globalOptions) *cobra.Command {
	var comment string
	c := &cobra.Command{
		Use:   "set [options] FILE SECTION KEY VALUE",
		Short: "Set a field's value",
		Long: "Set KEY in SECTION to VALUE and save FILE. The section and field are " +
			"appended if they do not exist. Existing comments are kept unless --comment-text is given.",
		Args:    cobra.ExactArgs(4),
		Example: `initool set settings.ini server port 8080`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			path, section, key, value := args[0], args[1], args[2], args[3]
			opts, err := g.iniOptions()
			if err != nil {
				return err
			}
			switch {
			case !ini.IsValidSection(section):
				return fmt.Errorf("invalid section name %q", section)
			case !ini.IsValidKey(key, opts):
				return fmt.Errorf("invalid key %q", key)
			case !ini.IsValidValue(value):
				return fmt.Errorf("invalid value %q: must not contain line breaks or start or end with spaces", value)
			}
			f, err := ini.Load(ctx, path, opts)
			if err != nil {
				return err
			}
			field := f.Section(section).Field(key)
			field.SetString(value)
			if cmd.Flags().Changed("comment-text") {
				field.SetComment(comment)
			}
			log.Debugf(ctx, "Setting [%s] %s in %s", section, key, path)
			return f.Save(ctx, path)
		},
	}
	c.Flags().StringVar(&comment, "comment-text", "", "replace the comment attached to the field")
	return c
}

func newSectionsCommand(g *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "sections FILE",
		Short: "List section names",
		Long:  "Print the section names in FILE in order, one per line. Fields outside any section are listed under an empty line.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := g.load(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			for _, name := range f.SectionNames() {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), name); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newKeysCommand(g *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "keys FILE SECTION",
		Short: "List field names in a section",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := g.load(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			s, ok := f.LookupSection(args[1])
			if !ok {
				return fmt.Errorf("%s: no section %q", args[0], args[1])
			}
			for _, name := range s.FieldNames() {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), name); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
