package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jlrickert/usercfg/pkg/usercfg"
)

// NewWatchCmd returns the `watch` cobra command, which reports new version
// directories appearing under an assembly directory until interrupted.
func NewWatchCmd(deps *Deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch ASSEMBLY_DIR",
		Short: "watch an assembly directory for newly written version settings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			err := usercfg.WatchAssemblyDir(cmd.Context(), args[0],
				func(f usercfg.ResolvedSettingsFile) {
					fmt.Fprintf(out, "%s\t%s\n", f.Version, f.Path)
				})
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}
	return cmd
}
