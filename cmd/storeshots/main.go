// Command storeshots renders the App Store marketing images: each app
// screenshot is framed in a device mockup on a soft gradient under a
// headline.
//
// Run without arguments it regenerates the default batch under
// ./Screenshots.
package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/leona-app/storeshots/internal/cli"
	"github.com/leona-app/storeshots/marketing"
)

func main() {
	var opts cli.Options

	cmd := &cobra.Command{
		Use:   "storeshots [flags]",
		Short: "Render App Store marketing images",
		Long: `storeshots composes marketing images from app screenshots: a device
mockup with a drop shadow, tilted over a gradient backdrop, under a
headline and subtitle.`,
		Example: `  # Regenerate the default batch under ./Screenshots
  storeshots

  # Use another screenshot tree and four workers
  storeshots --base-dir ~/Shots -j 4

  # Override screens and sizes from a file
  storeshots --config storeshots.toml --debug`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.Setup(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			sum, err := marketing.Run(cmd.Context(), cfg.MarketingBatch(), cfg.MarketingOptions()...)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d images written (%s), %d skipped\n",
				sum.Written, humanize.Bytes(uint64(sum.Bytes)), sum.Skipped)
			return nil
		},
	}
	opts.Bind(cmd.Flags())

	os.Exit(cli.Execute(cmd))
}
