package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ryanrauch/restaurant-ai-landing/internal/build"
	"github.com/ryanrauch/restaurant-ai-landing/internal/config"
	"github.com/ryanrauch/restaurant-ai-landing/internal/logger"
	"github.com/ryanrauch/restaurant-ai-landing/internal/page"
	"github.com/ryanrauch/restaurant-ai-landing/web"
)

const defaultOutDir = "dist"

func newExportCommand() *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Render the site to a directory",
		Long:  "Render index.html and copy the static assets into a directory that any static host can serve.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger.NewLogger()

			exporter, err := newExporter(log)
			if err != nil {
				return err
			}

			files, err := exporter.Export(cmd.Context(), outDir)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, f := range files {
				fmt.Fprintf(out, "%8d  %s\n", f.Size, f.Path)
			}
			fmt.Fprintf(out, "exported %d files to %s\n", len(files), outDir)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", defaultOutDir, "output directory")
	return cmd
}

// newExporter loads config and content the same way serve does.
func newExporter(log *slog.Logger) (*build.Exporter, error) {
	cfg, err := config.NewConfig(log)
	if err != nil {
		return nil, err
	}

	site, err := page.LoadSite(cfg, log)
	if err != nil {
		return nil, err
	}

	return build.NewExporter(page.NewApp(site, log), web.Static(), log), nil
}
