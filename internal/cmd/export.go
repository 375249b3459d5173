package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/harshakreox/ghostqa-cli/internal/api"
	"github.com/harshakreox/ghostqa-cli/internal/category"
	"github.com/harshakreox/ghostqa-cli/internal/config"
)

// RunExport fetches one item and writes it to disk in the requested
// format. The filename is derived from the item name.
func RunExport(client *api.Client, out io.Writer, catTag, itemID, formatTag string) error {
	cat, err := category.Parse(catTag)
	if err != nil {
		return fmt.Errorf("category %q: %w (want one of %s)", catTag, err, categoryTags())
	}

	format := category.Format(formatTag)
	item, err := client.GetItem(cat, itemID)
	if err != nil {
		return fmt.Errorf("fetch item: %w", err)
	}

	data, err := client.ExportItem(cat, itemID, format)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}

	filename := category.ExportFilename(item.Name, format)
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", filename, err)
	}

	fmt.Fprintf(out, "exported %s\n", filename)
	return nil
}

// ExportCmd returns the `ghostqa export` command for scripted exports
// without the TUI.
func ExportCmd() *cobra.Command {
	var formatTag string
	cmd := &cobra.Command{
		Use:   "export <category> <item-id>",
		Short: "Export a test item to a file",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			client := api.NewClient(cfg.ServerURL, cfg.Token)
			return RunExport(client, os.Stdout, args[0], args[1], formatTag)
		},
	}
	cmd.Flags().StringVar(&formatTag, "format", "json", "export format (json, csv, zip, feature)")
	return cmd
}

func categoryTags() string {
	tags := make([]string, 0, len(category.All()))
	for _, c := range category.All() {
		tags = append(tags, string(c))
	}
	return strings.Join(tags, ", ")
}
