package cli

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/NutshellEngineering/uuid"
)

// details is what `inspect` reports about one UUID.
type details struct {
	UUID    string     `json:"uuid"`
	URN     string     `json:"urn"`
	Version uint8      `json:"version"`
	Kind    string     `json:"kind"`
	Variant string     `json:"variant"`
	Time    *time.Time `json:"time,omitempty"`
	Ticks   *uint64    `json:"ticks,omitempty"`
	Hex     string     `json:"hex"`
	Base64  string     `json:"base64"`
	Binary  string     `json:"binary"`
}

func describe(id uuid.UUID) details {
	d := details{
		UUID:    id.String(),
		URN:     id.URN(),
		Version: uint8(id.Version()),
		Kind:    id.Version().String(),
		Variant: id.Variant().String(),
		Hex:     id.EncodeToHex(),
		Base64:  id.EncodeToBase64(),
		Binary:  id.BinaryString(),
	}
	if t, err := id.Time(); err == nil {
		d.Time = &t
	}
	if ticks, err := id.Ticks(); err == nil {
		d.Ticks = &ticks
	}
	return d
}

// newInspectCommand constructs the `inspect` command.
func newInspectCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect UUID...",
		Short: "Show the fields of UUIDs",
		Long:  "Show the version, variant, embedded time and encodings of each UUID. Braced, URN and\nunhyphenated forms are accepted.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			asJSON, _ := cmd.Flags().GetBool("json")

			all := make([]details, 0, len(args))
			for _, arg := range args {
				id, err := uuid.ParseLenient(arg)
				if err != nil {
					return fmt.Errorf("%q: %w", arg, err)
				}
				all = append(all, describe(id))
			}
			a.logger.Debug("Inspected UUIDs", "count", len(all))

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(all)
			}
			return writeDetails(cmd.OutOrStdout(), all)
		},
	}
	cmd.Flags().Bool("json", false, "Print a JSON array")
	return cmd
}

func writeDetails(w io.Writer, all []details) error {
	tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', 0)
	for i, d := range all {
		if i > 0 {
			fmt.Fprintln(tw)
		}
		fmt.Fprintf(tw, "uuid:\t%s\n", d.UUID)
		fmt.Fprintf(tw, "urn:\t%s\n", d.URN)
		fmt.Fprintf(tw, "version:\t%d (%s)\n", d.Version, d.Kind)
		fmt.Fprintf(tw, "variant:\t%s\n", d.Variant)
		if d.Time != nil {
			fmt.Fprintf(tw, "time:\t%s\n", d.Time.Format(time.RFC3339Nano))
		}
		if d.Ticks != nil {
			fmt.Fprintf(tw, "ticks:\t%d\n", *d.Ticks)
		}
		fmt.Fprintf(tw, "hex:\t%s\n", d.Hex)
		fmt.Fprintf(tw, "base64:\t%s\n", d.Base64)
		fmt.Fprintf(tw, "binary:\t%s\n", d.Binary)
	}
	return tw.Flush()
}
