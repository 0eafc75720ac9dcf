package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ryanrauch/restaurant-ai-landing/internal/build"
	"github.com/ryanrauch/restaurant-ai-landing/internal/config"
	"github.com/ryanrauch/restaurant-ai-landing/internal/logger"
	"github.com/ryanrauch/restaurant-ai-landing/internal/storage"
)

func newPublishCommand() *cobra.Command {
	var (
		dir         string
		prefix      string
		concurrency int
		skipExport  bool
	)

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Export the site and upload it to the site bucket",
		Long: `Export the site into --dir and upload every file to STORAGE_BUCKET_SITE.

Object keys are the file paths relative to --dir, under --prefix when set.
Use --skip-export to upload an existing export unchanged.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger.NewLogger()

			cfg, err := config.NewConfig(log)
			if err != nil {
				return err
			}
			svc, err := storage.NewService(cfg, log)
			if err != nil {
				return err
			}
			if !svc.Enabled() {
				return fmt.Errorf("publish: %w (set STORAGE_BUCKET_SITE, STORAGE_ACCESS_KEY and STORAGE_SECRET_KEY)", storage.ErrDisabled)
			}

			if !skipExport {
				exporter, err := newExporter(log)
				if err != nil {
					return err
				}
				if _, err := exporter.Export(cmd.Context(), dir); err != nil {
					return err
				}
			}

			results, err := build.NewPublisher(svc, log).
				WithConcurrency(concurrency).
				Publish(cmd.Context(), dir, prefix)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, r := range results {
				fmt.Fprintf(out, "%8d  s3://%s/%s\n", r.Size, r.Bucket, r.Key)
			}
			fmt.Fprintf(out, "published %d objects to %s\n", len(results), svc.Bucket())
			return nil
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", defaultOutDir, "export directory to upload")
	cmd.Flags().StringVarP(&prefix, "prefix", "p", "", "object key prefix")
	cmd.Flags().IntVar(&concurrency, "concurrency", build.DefaultConcurrency, "parallel uploads")
	cmd.Flags().BoolVar(&skipExport, "skip-export", false, "upload --dir as is without re-rendering")
	return cmd
}
