package usercfg

import (
	"strconv"
	"strings"
)

// reservedNameChars are characters that can never appear in a root group or
// bare assembly name: path separators plus the filesystem-reserved set.
const reservedNameChars = `/\<>:"|?*` + "\x00"

// Identity names one installed application inside the settings tree.
//
// RootGroup is the per-user root grouping directory, historically derived
// from a company or namespace string. BareName is the logical program name
// without naming-convention decoration (no extension, separator, or hash).
// DirHint, when non-empty, is the exact observed assembly-subdirectory name
// and enables direct rather than fuzzy matching.
//
// Identity values are immutable; derive variants with WithHint or the naming
// helpers rather than mutating fields.
type Identity struct {
	RootGroup string
	BareName  string
	DirHint   string
}

// NewIdentity validates and constructs an Identity without a directory hint.
func NewIdentity(rootGroup, bareName string) (Identity, error) {
	if rootGroup == "" {
		return Identity{}, NewInvalidIdentityError("empty root group")
	}
	if bareName == "" {
		return Identity{}, NewInvalidIdentityError("empty bare name")
	}
	if i := strings.IndexAny(rootGroup, reservedNameChars); i >= 0 {
		return Identity{}, NewInvalidIdentityError(
			"root group contains reserved character " + strconv.Quote(string(rootGroup[i])))
	}
	if i := strings.IndexAny(bareName, reservedNameChars); i >= 0 {
		return Identity{}, NewInvalidIdentityError(
			"bare name contains reserved character " + strconv.Quote(string(bareName[i])))
	}
	return Identity{RootGroup: rootGroup, BareName: bareName}, nil
}

// WithHint returns a copy of the identity carrying the exact observed
// assembly-subdirectory name.
func (id Identity) WithHint(dir string) Identity {
	id.DirHint = dir
	return id
}

// EffectiveName is the string the scanner prefix-matches assembly
// subdirectories against: the exact directory hint when present, the bare
// name otherwise.
func (id Identity) EffectiveName() string {
	if id.DirHint != "" {
		return id.DirHint
	}
	return id.BareName
}

// Equals reports whether two identities are identical in all fields.
func (id Identity) Equals(other Identity) bool {
	return id.RootGroup == other.RootGroup &&
		id.BareName == other.BareName &&
		id.DirHint == other.DirHint
}
