package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	tea "charm.land/bubbletea/v2"
)

func viewCmd() *cobra.Command {
	var (
		diffAgainst string
		configRef   string
	)

	cmd := &cobra.Command{
		Use:   "view file",
		Short: "View a source file with syntax highlighting",
		Long: "View a source file with syntax highlighting, formatted through jsfmt.\n" +
			"Pass --diff to show a line-level diff against another file (e.g. the\n" +
			"file's pre-formatting version).",
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			path := args[0]

			src, err := readFile(path)
			if err != nil {
				return err
			}

			m, err := newModel(&modelOptions{
				path:    path,
				source:  src,
				diffRef: diffAgainst,
				opts:    formatOptions{configRef: configRef},
			})
			if err != nil {
				return err
			}

			p := tea.NewProgram(m)

			_, err = p.Run()
			if err != nil {
				return fmt.Errorf("run program: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&diffAgainst, "diff", "", "show a diff against another file")
	cmd.Flags().StringVar(&configRef, "config", "", "path to a .jsfmtrc file (overrides config discovery)")

	return cmd
}

func readFile(path string) (string, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided file paths are intentional.
	if err != nil {
		return "", fmt.Errorf("read file %s: %w", path, err)
	}

	return string(data), nil
}
