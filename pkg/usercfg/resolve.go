package usercfg

import (
	"context"

	"github.com/jlrickert/usercfg/pkg/log"
)

// ResolveOptions carries everything the resolution policy needs. The optional
// behaviors of the historical API map to explicit named fields here.
type ResolveOptions struct {
	// AppDataRoot is the per-user settings root containing root-group
	// subdirectories.
	AppDataRoot string

	// Current is the running application's version. Candidates above it are
	// only accepted when AcceptHigher is set; candidates equal to it are only
	// accepted by the final relaxation tier.
	Current Version

	// Identity names the running application. When its DirHint is set the
	// policy first scans using only that identity, the most precise signal
	// available.
	Identity Identity

	// AcceptHigher admits candidate versions strictly greater than Current,
	// which recovers settings after a downgrade.
	AcceptHigher bool

	// PreviousIdentities are explicitly supplied historical identities
	// (renames, company changes) searched after the current identity.
	PreviousIdentities []Identity

	// Debugging marks the process as running under an attached debugger.
	// Only then are legacy debug-host directory variants scanned. Injected
	// rather than probed so resolution stays deterministic and testable.
	Debugging bool
}

// Resolve runs the tiered search for the most appropriate prior settings
// file. It returns nil (and no error) when nothing qualifies; callers must
// treat that as "nothing to migrate", not as a failure.
//
// Tier 1 scans only the exact directory hint when one is present and returns
// immediately on a match. Tier 2 scans debug-host variants (debugging only)
// and then extensionless variants of the current and previous identities,
// rejecting same-version candidates. Tier 3 repeats tier 2 accepting
// same-version candidates, which recovers settings for a relocated install
// whose directory hash changed while the version did not. The hint identity
// is deliberately never retried in tiers 2 and 3: a hint miss implies a
// genuinely different install.
func Resolve(ctx context.Context, opts ResolveOptions) (*ResolvedSettingsFile, error) {
	lg := log.FromContext(ctx)

	if opts.Identity.DirHint != "" {
		hinted := []Identity{opts.Identity}
		found, err := Scan(ctx, opts.AppDataRoot, hinted, opts.Current,
			opts.AcceptHigher, false)
		if err != nil {
			return nil, err
		}
		if found != nil {
			lg.Debug("resolved settings via directory hint",
				"hint", opts.Identity.DirHint, "path", found.Path)
			return found, nil
		}
	}

	debugSet := variantIdentities(opts, ExtensionDebugHost)
	plainSet := variantIdentities(opts, ExtensionNone)

	for _, acceptSame := range []bool{false, true} {
		if opts.Debugging {
			found, err := Scan(ctx, opts.AppDataRoot, debugSet, opts.Current,
				opts.AcceptHigher, acceptSame)
			if err != nil {
				return nil, err
			}
			if found != nil {
				return found, nil
			}
		}
		found, err := Scan(ctx, opts.AppDataRoot, plainSet, opts.Current,
			opts.AcceptHigher, acceptSame)
		if err != nil {
			return nil, err
		}
		if found != nil {
			return found, nil
		}
	}

	lg.Debug("no prior settings file found",
		"rootGroup", opts.Identity.RootGroup, "bareName", opts.Identity.BareName)
	return nil, nil
}

// variantIdentities builds the tier-2 candidate list: the current identity
// followed by every supplied previous identity, each decorated with the given
// extension variant and stripped of any directory hint so matching falls back
// to prefix semantics.
func variantIdentities(opts ResolveOptions, variant ExtensionVariant) []Identity {
	out := make([]Identity, 0, len(opts.PreviousIdentities)+1)
	for _, id := range append([]Identity{opts.Identity}, opts.PreviousIdentities...) {
		out = append(out, Identity{
			RootGroup: id.RootGroup,
			BareName:  CandidateDirPrefix(id, variant),
		})
	}
	return out
}
