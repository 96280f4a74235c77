package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jlrickert/usercfg/pkg/usercfg"
)

// NewResolveCmd returns the `resolve` cobra command.
//
// Usage examples:
//
//	usercfg resolve --current-config ~/.config/Acme/App.exe_Url_abc/2.0.0.0/user.config
//	usercfg resolve --root ~/.config --group Acme --name App --version 2.0.0.0
func NewResolveCmd(deps *Deps) *cobra.Command {
	var opts identityOptions

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "find the most appropriate prior settings file",
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := opts.resolveInputs()
			if err != nil {
				return err
			}

			found, err := usercfg.Resolve(cmd.Context(), usercfg.ResolveOptions{
				AppDataRoot:        in.AppDataRoot,
				Current:            in.Current,
				Identity:           in.Identity,
				AcceptHigher:       in.AcceptHigher,
				PreviousIdentities: in.Previous,
				Debugging:          in.Debugging,
			})
			if err != nil {
				return err
			}
			if found == nil {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), "nothing to migrate")
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n",
				found.Version, found.Path)
			return err
		},
	}

	bindIdentityFlags(cmd, &opts)
	return cmd
}
