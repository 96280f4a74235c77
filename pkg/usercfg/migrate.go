package usercfg

import (
	"context"

	"github.com/jlrickert/usercfg/pkg/log"
)

// MigrateOptions configures one find-export-apply run.
type MigrateOptions struct {
	// AppDataRoot is the per-user settings root.
	AppDataRoot string
	// Current is the running application's version.
	Current Version
	// Identity names the running application, optionally with a DirHint.
	Identity Identity
	// Schema is the target settings store. It is mutated in place by the
	// apply step; there is no rollback.
	Schema Schema
	// AcceptHigher admits candidates above Current (downgrade recovery).
	AcceptHigher bool
	// PreviousIdentities are historical identities searched after the
	// current one.
	PreviousIdentities []Identity
	// Debugging enables scanning of legacy debug-host directory variants.
	Debugging bool
}

// MigrateResult reports what a migration run did.
type MigrateResult struct {
	// Found is false when no prior settings file qualified; the schema is
	// untouched in that case.
	Found bool
	// Source is the settings file the values came from, nil when not Found.
	Source *ResolvedSettingsFile
	// Warnings collects every per-field skip from export and apply.
	Warnings []FieldWarning
}

// Migrate resolves the most appropriate prior settings file, exports its
// fields through the target schema, and applies them to the store. It is the
// only operation in this package that mutates the caller's settings store.
//
// A nil resolution is not an error: Migrate returns Found=false and leaves
// the schema untouched. When a file is found the export and apply both run,
// even when the export yields an empty field map.
func Migrate(ctx context.Context, opts MigrateOptions) (MigrateResult, error) {
	if opts.Schema == nil {
		return MigrateResult{}, NewInvalidIdentityError("nil target schema")
	}
	lg := log.FromContext(ctx)

	found, err := Resolve(ctx, ResolveOptions{
		AppDataRoot:        opts.AppDataRoot,
		Current:            opts.Current,
		Identity:           opts.Identity,
		AcceptHigher:       opts.AcceptHigher,
		PreviousIdentities: opts.PreviousIdentities,
		Debugging:          opts.Debugging,
	})
	if err != nil {
		return MigrateResult{}, err
	}
	if found == nil {
		return MigrateResult{Found: false}, nil
	}

	fields, exportWarnings, err := Export(ctx, found.Path, opts.Schema)
	if err != nil {
		return MigrateResult{}, err
	}
	applyWarnings, err := Apply(ctx, fields, opts.Schema)
	if err != nil {
		return MigrateResult{}, err
	}

	lg.Info("migrated prior settings",
		"path", found.Path,
		"version", found.Version.String(),
		"fields", len(fields),
		"skipped", len(exportWarnings)+len(applyWarnings))

	return MigrateResult{
		Found:    true,
		Source:   found,
		Warnings: append(exportWarnings, applyWarnings...),
	}, nil
}
