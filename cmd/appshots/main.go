// Command appshots renders synthetic full-bleed app screenshots with mock
// data at iPhone and iPad sizes.
//
// Run without arguments it regenerates every screen into ./Screenshots/iPhone
// and ./Screenshots/iPad.
package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/leona-app/storeshots/appscreens"
	"github.com/leona-app/storeshots/internal/cli"
)

func main() {
	var (
		opts  cli.Options
		shots []string
	)

	cmd := &cobra.Command{
		Use:   "appshots [flags]",
		Short: "Render synthetic app screenshots",
		Example: `  # Regenerate every screen
  appshots

  # Only the growth and night screens
  appshots --shot growth --shot nightmode`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.Setup(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			selected := cfg.AppScreens.Shots
			if len(shots) > 0 {
				selected = selected[:0:0]
				for _, name := range shots {
					s, err := appscreens.ParseShot(name)
					if err != nil {
						return err
					}
					selected = append(selected, s)
				}
			}
			sum, err := appscreens.Run(cmd.Context(), cfg.AppTargets(), selected, cfg.AppOptions()...)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d screens written (%s)\n",
				sum.Written, humanize.Bytes(uint64(sum.Bytes)))
			return nil
		},
	}
	opts.Bind(cmd.Flags())
	cmd.Flags().StringSliceVar(&shots, "shot", nil, "render only these screens (repeatable)")

	os.Exit(cli.Execute(cmd))
}
