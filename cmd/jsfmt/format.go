package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	udiff "github.com/aymanbagabas/go-udiff"

	"github.com/prettyjs/jsfmt/format"
	"github.com/prettyjs/jsfmt/internal/diff"
	"github.com/prettyjs/jsfmt/internal/filepaths"
	"github.com/prettyjs/jsfmt/jsparser"
	"github.com/prettyjs/jsfmt/options"
)

// formatCmd is the root command: format one or more files (or stdin),
// printing the result to stdout unless --write or --check is given.
func formatCmd() *cobra.Command {
	var (
		write     bool
		check     bool
		showDiff  bool
		configRef string
	)

	cmd := &cobra.Command{
		Use:   "jsfmt [file...]",
		Short: "Format JS-like source files, preserving structure and comments",
		Long: "Format JS-like source files, preserving structure and comments.\n" +
			"Reads stdin and writes to stdout when no files are given.\n" +
			"Supports glob patterns like *.js and **/*.js.",
		Args: cobra.ArbitraryArgs,
		RunE: func(_ *cobra.Command, args []string) error {
			if len(args) == 0 {
				return formatStdin(configRef)
			}

			paths, err := filepaths.Expand(args...)
			if err != nil {
				return err
			}

			var errs []error

			for _, path := range paths {
				if err := formatFile(path, configRef, write, check, showDiff); err != nil {
					errs = append(errs, err)
				}
			}

			return errors.Join(errs...)
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, "write the formatted result back to each file")
	cmd.Flags().BoolVarP(&check, "check", "c", false, "exit non-zero if any file is not already formatted, without writing")
	cmd.Flags().BoolVarP(&showDiff, "diff", "d", false, "print a diff between the original and formatted output")
	cmd.Flags().StringVar(&configRef, "config", "", "path to a .jsfmtrc file (overrides config discovery)")

	return cmd
}

func formatStdin(configRef string) error {
	src, err := readAll(os.Stdin)
	if err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}

	opts, err := resolveConfig("", configRef)
	if err != nil {
		return err
	}

	out, err := format.New(jsparser.New(), opts).Format(src, "")
	if err != nil {
		return err
	}

	_, err = os.Stdout.WriteString(out)

	return err
}

func formatFile(path, configRef string, write, check, showDiff bool) error {
	src, err := os.ReadFile(path) //nolint:gosec // User-provided file paths are intentional.
	if err != nil {
		return fmt.Errorf("read file %s: %w", path, err)
	}

	opts, err := resolveConfig(path, configRef)
	if err != nil {
		return err
	}

	out, err := format.New(jsparser.New(), opts).Format(string(src), path)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	changed := out != string(src)

	switch {
	case check:
		if changed {
			fmt.Printf("%s: not formatted\n", path)

			return errNotFormatted
		}

		fmt.Printf("%s: formatted\n", path)

	case write:
		if !changed {
			return nil
		}

		if err := os.WriteFile(path, []byte(out), 0o644); err != nil { //nolint:gosec // Matches source file's existing permissions intent.
			return fmt.Errorf("write file %s: %w", path, err)
		}

		fmt.Printf("%s: formatted\n", path)

	case showDiff:
		printDiff(path, string(src), out)

	default:
		fmt.Print(out)
	}

	return nil
}

// errNotFormatted signals --check found an unformatted file; callers join it
// into the command's combined error without printing it again.
var errNotFormatted = errors.New("not formatted")

func resolveConfig(path, configRef string) (options.Options, error) {
	if configRef != "" {
		data, err := os.ReadFile(configRef) //nolint:gosec // User-provided config path is intentional.
		if err != nil {
			return options.Options{}, fmt.Errorf("read config %s: %w", configRef, err)
		}

		o, err := options.LoadBytes(data, filepath.Ext(configRef))
		if err != nil {
			return options.Options{}, fmt.Errorf("%s: %w", configRef, err)
		}

		return o, nil
	}

	return loadConfigFor(path)
}

// printDiff prints a line-level diff of before vs. after. udiff.Strings
// is consulted first purely as a cheap "did anything change" check (the
// byte-level edits it returns aren't otherwise used here); the actual
// line-level operations come from [diff.Hirschberg], since this command
// wants a diff described in terms of rendered lines, not byte ranges.
func printDiff(path, before, after string) {
	if len(udiff.Strings(before, after)) == 0 {
		return
	}

	lines := splitLines(before)
	afterLines := splitLines(after)

	h := diff.NewHirschberg(max(len(lines), len(afterLines)) + 1)
	ops := h.Compute(lines, afterLines)

	fmt.Printf("--- %s\n", path)

	for _, op := range ops {
		switch op.Kind {
		case diff.OpDelete:
			fmt.Printf("- %s\n", lines[op.Index])
		case diff.OpInsert:
			fmt.Printf("+ %s\n", afterLines[op.Index])
		case diff.OpEqual:
			fmt.Printf("  %s\n", afterLines[op.Index])
		}
	}
}

func splitLines(s string) []string {
	return strings.Split(s, "\n")
}

func readAll(r io.Reader) (string, error) {
	b, err := io.ReadAll(r)

	return string(b), err
}
