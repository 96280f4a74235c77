package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jlrickert/usercfg/pkg/internal"
	"github.com/jlrickert/usercfg/pkg/usercfg"
)

// identityOptions describes how a command should locate the settings tree and
// the application identity. Either --current-config (four-level ancestry of
// the live settings file) or the explicit --root/--group/--name/--version
// quartet must be supplied.
type identityOptions struct {
	CurrentConfig string
	Root          string
	Group         string
	Name          string
	Hint          string
	Version       string
	Manifest      string
	AcceptHigher  bool
	Debugging     bool
}

func bindIdentityFlags(cmd *cobra.Command, opts *identityOptions) {
	cmd.Flags().StringVar(&opts.CurrentConfig, "current-config", "",
		"path of the live settings file; root, identity, and version are derived from it")
	cmd.Flags().StringVar(&opts.Root, "root", "",
		"app data root containing the root-group directories (default: platform per-user config root)")
	cmd.Flags().StringVar(&opts.Group, "group", "",
		"root group (company or namespace directory)")
	cmd.Flags().StringVar(&opts.Name, "name", "",
		"bare assembly name without extension or hash")
	cmd.Flags().StringVar(&opts.Hint, "hint", "",
		"exact observed assembly directory name for direct matching")
	cmd.Flags().StringVar(&opts.Version, "version", "",
		"current version (major.minor.build.revision)")
	cmd.Flags().StringVar(&opts.Manifest, "manifest", "",
		"YAML manifest listing previous identities")
	cmd.Flags().BoolVar(&opts.AcceptHigher, "accept-higher", false,
		"accept candidate versions above the current one")
	cmd.Flags().BoolVar(&opts.Debugging, "debugging", false,
		"scan legacy debug-host directory variants")
}

// resolvedInputs is the fully validated form of identityOptions.
type resolvedInputs struct {
	AppDataRoot  string
	Current      usercfg.Version
	Identity     usercfg.Identity
	Previous     []usercfg.Identity
	AcceptHigher bool
	Debugging    bool
}

func (opts *identityOptions) resolveInputs() (resolvedInputs, error) {
	var in resolvedInputs
	in.AcceptHigher = opts.AcceptHigher
	in.Debugging = opts.Debugging

	switch {
	case opts.CurrentConfig != "":
		loc, err := usercfg.LocateCurrent(opts.CurrentConfig)
		if err != nil {
			return in, err
		}
		id, err := loc.Identity(opts.Debugging)
		if err != nil {
			return in, err
		}
		in.AppDataRoot = loc.AppDataRoot
		in.Current = loc.Version
		in.Identity = id
	case opts.Group != "" && opts.Name != "" && opts.Version != "":
		root := opts.Root
		if root == "" {
			var err error
			root, err = internal.DefaultAppDataRoot()
			if err != nil {
				return in, err
			}
		}
		version, err := usercfg.ParseVersion(opts.Version)
		if err != nil {
			return in, err
		}
		id, err := usercfg.NewIdentity(opts.Group, opts.Name)
		if err != nil {
			return in, err
		}
		if opts.Hint != "" {
			id = id.WithHint(opts.Hint)
		}
		in.AppDataRoot = root
		in.Current = version
		in.Identity = id
	default:
		return in, fmt.Errorf(
			"either --current-config or all of --group, --name, and --version are required")
	}

	if opts.Manifest != "" {
		manifest, err := usercfg.LoadManifest(opts.Manifest)
		if err != nil {
			return in, err
		}
		previous, err := manifest.Identities()
		if err != nil {
			return in, err
		}
		in.Previous = previous
		if manifest.AcceptHigher {
			in.AcceptHigher = true
		}
	}

	return in, nil
}
