package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jlrickert/usercfg/pkg/usercfg"
)

// NewVersionsCmd returns the `versions` cobra command, which lists every
// candidate version directory for an identity without acceptance filtering.
func NewVersionsCmd(deps *Deps) *cobra.Command {
	var opts identityOptions

	cmd := &cobra.Command{
		Use:   "versions",
		Short: "list candidate version directories for an identity",
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := opts.resolveInputs()
			if err != nil {
				return err
			}

			candidates, err := usercfg.ListCandidates(cmd.Context(),
				in.AppDataRoot, in.Identity)
			if err != nil {
				return err
			}
			if len(candidates) == 0 {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), "no candidates found")
				return err
			}

			out := cmd.OutOrStdout()
			for _, c := range candidates {
				state := "no settings file"
				if c.HasSettings {
					state = c.CreatedAt.Format(time.RFC3339)
				}
				fmt.Fprintf(out, "%s\t%s\t%s\n", c.Version, c.AssemblyDir, state)
			}
			return nil
		},
	}

	bindIdentityFlags(cmd, &opts)
	return cmd
}
