package command

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/EddieTunji/tv-series-tracker/internal/catalog/models"
)

func newExportCommand(s *session) *cobra.Command {
	var output string

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Write the catalog and your watchlist as YAML",
		Args:  cobra.NoArgs,
		RunE: s.withUser(func(cmd *cobra.Command, args []string, user *models.User) error {
			snapshot, err := s.svc.ExportCatalog(cmd.Context(), user)
			if err != nil {
				return fmt.Errorf("failed to export catalog: %w", err)
			}
			data, err := yaml.Marshal(snapshot)
			if err != nil {
				return fmt.Errorf("encode export: %w", err)
			}

			if output == "" || output == "-" {
				_, err = out(cmd).Write(data)
				return err
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			fmt.Fprintf(out(cmd), "✓ Exported %d series to %s\n", len(snapshot.Series), output)
			return nil
		}),
	}
	exportCmd.Flags().StringVarP(&output, "output", "o", "", "file to write (stdout when empty)")

	return exportCmd
}
