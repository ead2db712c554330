package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/steviee/mclookup/internal/lookup"
	"github.com/steviee/mclookup/internal/render"
)

// NewLookupCommand creates the lookup command
func NewLookupCommand() *cobra.Command {
	var (
		download  bool
		outputDir string
	)

	cmd := &cobra.Command{
		Use:   "lookup <username>",
		Short: "Look up a player profile",
		Long: `Look up a Minecraft player by username.

The username is trimmed and sent to PlayerDB as typed; the canonical
spelling comes back with the UUID. The profile is then fetched from
Ashcon. A player without a custom skin falls back to the Crafatar skin.

With --download the skin is saved as <username>_skin.png into the
downloads directory (downloads.directory in the config file).`,
		Example: `  # Look up a player
  mclookup lookup Notch

  # Download the skin into the current directory
  mclookup lookup Notch --download --output-dir .

  # Output in JSON format
  mclookup lookup Notch --json`,
		Aliases: []string{"get", "player"},
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLookup(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), args[0], download, outputDir)
		},
	}

	cmd.Flags().BoolVarP(&download, "download", "d", false, "save the skin as <username>_skin.png")
	cmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", "directory for downloaded skins (default: downloads.directory)")

	return cmd
}

func runLookup(ctx context.Context, out, errOut io.Writer, username string, download bool, outputDir string) error {
	cfg, err := loadSettings(ctx)
	if err != nil {
		return err
	}

	dir, err := downloadDir(cfg, outputDir)
	if err != nil {
		return err
	}

	var presenter lookup.Presenter
	if IsJSONOutput() {
		presenter = render.NewJSON(out)
	} else {
		presenter = render.NewText(out, errOut)
	}

	flow := newFlow(cfg, presenter, dir)

	if _, err := flow.Lookup(ctx, username); err != nil {
		return &reportedError{err: err}
	}

	if !download {
		return nil
	}

	if err := flow.Download(ctx); err != nil {
		return &reportedError{err: fmt.Errorf("download skin: %w", err)}
	}

	return nil
}
