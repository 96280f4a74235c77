package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jlrickert/usercfg/pkg/usercfg"
)

// NewMigrateCmd returns the `migrate` cobra command. It resolves a prior
// settings file and applies its fields to a YAML settings store on disk.
//
// Usage examples:
//
//	usercfg migrate --store app.yaml --current-config .../2.0.0.0/user.config
//	usercfg migrate --store app.yaml --root ~/.config --group Acme --name App --version 2.0.0.0
func NewMigrateCmd(deps *Deps) *cobra.Command {
	var opts identityOptions
	var storePath string
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "find a prior settings file and apply its fields to a store",
		RunE: func(cmd *cobra.Command, args []string) error {
			if storePath == "" {
				return fmt.Errorf("--store is required")
			}
			in, err := opts.resolveInputs()
			if err != nil {
				return err
			}
			store, err := usercfg.LoadStore(storePath)
			if err != nil {
				return err
			}

			result, err := usercfg.Migrate(cmd.Context(), usercfg.MigrateOptions{
				AppDataRoot:        in.AppDataRoot,
				Current:            in.Current,
				Identity:           in.Identity,
				Schema:             store,
				AcceptHigher:       in.AcceptHigher,
				PreviousIdentities: in.Previous,
				Debugging:          in.Debugging,
			})
			if err != nil {
				return err
			}
			if !result.Found {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), "nothing to migrate")
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "migrated from %s (version %s)\n",
				result.Source.Path, result.Source.Version)
			for _, w := range result.Warnings {
				fmt.Fprintf(out, "skipped %s: %s\n", w.Name, w.Reason)
			}

			if dryRun {
				return nil
			}
			return store.Save(storePath)
		},
	}

	bindIdentityFlags(cmd, &opts)
	cmd.Flags().StringVar(&storePath, "store", "",
		"YAML settings store to migrate into")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false,
		"report what would be migrated without writing the store")
	return cmd
}
