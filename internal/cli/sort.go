package cli

import (
	"bufio"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/NutshellEngineering/uuid"
)

// newSortCommand constructs the `sort` command.
func newSortCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sort [UUID...]",
		Short: "Print UUIDs in unsigned byte order",
		Long:  "Sort the UUIDs given as arguments, or one per line on standard input, in unsigned\nbyte order. This is the order MySQL BINARY(16) keys sort in.",
		RunE: func(cmd *cobra.Command, args []string) error {
			reverse, _ := cmd.Flags().GetBool("reverse")

			var ids []uuid.UUID
			var err error
			if len(args) > 0 {
				ids, err = parseAll(args)
			} else {
				ids, err = readAll(cmd.InOrStdin())
			}
			if err != nil {
				return err
			}

			uuid.Sort(ids)
			if reverse {
				slices.Reverse(ids)
			}
			a.logger.Debug("Sorted UUIDs", "count", len(ids), "reverse", reverse)
			return writeIDs(cmd.OutOrStdout(), ids, "canonical", false)
		},
	}
	cmd.Flags().BoolP("reverse", "r", false, "Greatest first")
	return cmd
}

// newCompareCommand constructs the `compare` command.
func newCompareCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "compare A B",
		Short: "Print -1, 0 or 1 as A sorts before, equal to or after B",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := parseAll(args)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), uuid.Compare(ids[0], ids[1]))
			return err
		},
	}
}

func parseAll(args []string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(args))
	for _, arg := range args {
		id, err := uuid.ParseLenient(arg)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", arg, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// readAll parses one UUID per line, skipping blank lines.
func readAll(r io.Reader) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		s := strings.TrimSpace(sc.Text())
		if s == "" {
			continue
		}
		id, err := uuid.ParseLenient(s)
		if err != nil {
			return nil, fmt.Errorf("line %d: %q: %w", line, s, err)
		}
		ids = append(ids, id)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return ids, nil
}
