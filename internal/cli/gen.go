package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/NutshellEngineering/uuid"
	"github.com/NutshellEngineering/uuid/internal/config"
)

// newGenCommand constructs the `gen` command.
func newGenCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate UUIDs",
		Long: "Generate UUIDs of any version. Name-based versions 3 and 5 need --namespace and --name;\n" +
			"version 0 prints the nil UUID and version 15 the max UUID.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ids, err := a.generate(cmd.Context())
			if err != nil {
				return err
			}
			return writeIDs(cmd.OutOrStdout(), ids, a.cfg.Format, a.cfg.JSON)
		},
	}
	addGenFlags(cmd)
	cmd.Flags().String("format", "canonical", "Output format: "+strings.Join(config.Formats, "|"))
	cmd.Flags().Int("workers", 1, "Goroutines generating concurrently")
	cmd.Flags().Bool("json", false, "Print a JSON array")
	return cmd
}

// addGenFlags registers the flags shared by `gen` and `store`.
func addGenFlags(cmd *cobra.Command) {
	cmd.Flags().IntP("version", "v", int(uuid.VersionTimeSorted), "UUID version (0-8, 15)")
	cmd.Flags().IntP("count", "n", 1, "Number of UUIDs")
	cmd.Flags().String("namespace", "", "Namespace for v3/v5: dns|url|oid|x500 or a UUID")
	cmd.Flags().String("name", "", "Name for v3/v5")
	cmd.Flags().String("node", "", "48-bit node for v1/v6, e.g. 02:00:5e:10:00:01")
}

// generate produces cfg.Count UUIDs of cfg.Version. With more than one worker
// the slots are filled concurrently; slot i is always written by the same
// worker, so ids generated by one worker keep their relative order.
func (a *app) generate(ctx context.Context) ([]uuid.UUID, error) {
	next, err := a.source()
	if err != nil {
		return nil, err
	}

	count, workers := a.cfg.Count, min(a.cfg.Workers, a.cfg.Count)
	ids := make([]uuid.UUID, count)

	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for i := w; i < count; i += workers {
				if err := ctx.Err(); err != nil {
					return err
				}
				id, err := next()
				if err != nil {
					return fmt.Errorf("generate %s: %w", a.cfg.UUIDVersion(), err)
				}
				ids[i] = id
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	a.logger.Debug("Generated UUIDs", "version", a.cfg.UUIDVersion().String(), "count", count, "workers", workers)
	return ids, nil
}

// source returns the function producing one UUID of the configured version.
func (a *app) source() (func() (uuid.UUID, error), error) {
	v := a.cfg.UUIDVersion()
	if !a.cfg.NameBased() {
		return func() (uuid.UUID, error) { return a.gen.NewVersion(v) }, nil
	}
	ns, err := a.cfg.ResolveNamespace()
	if err != nil {
		return nil, err
	}
	name := []byte(a.cfg.Name)
	return func() (uuid.UUID, error) { return a.gen.NewNameBased(v, ns, name) }, nil
}

// render formats id in one of config.Formats.
func render(id uuid.UUID, format string) (string, error) {
	switch format {
	case "canonical", "":
		return id.String(), nil
	case "urn":
		return id.URN(), nil
	case "binary":
		return id.BinaryString(), nil
	case "hex":
		return id.EncodeToHex(), nil
	case "base64":
		return id.EncodeToBase64(), nil
	default:
		return "", fmt.Errorf("unknown format %q", format)
	}
}

// writeIDs prints ids one per line, or as one JSON array of strings.
func writeIDs(w io.Writer, ids []uuid.UUID, format string, asJSON bool) error {
	out := make([]string, len(ids))
	for i, id := range ids {
		s, err := render(id, format)
		if err != nil {
			return err
		}
		out[i] = s
	}

	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}
	for _, s := range out {
		if _, err := fmt.Fprintln(w, s); err != nil {
			return err
		}
	}
	return nil
}
