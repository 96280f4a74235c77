package usercfg

import (
	"fmt"
	"strconv"
	"strings"
)

// Package usercfg locates and transfers per-version user settings saved by a
// previously installed release of an application.

// Version is a 4-component dotted numeric version (major.minor.build.revision)
// as used by version subdirectory names in the settings tree. Versions are
// totally ordered by component from left to right.
type Version struct {
	Major    int
	Minor    int
	Build    int
	Revision int
}

// ParseVersion converts a string such as "1.9.0.0" into a Version.
//
// Accepted form: exactly four dot-separated non-negative integer components.
// Leading zeros are allowed ("1.09.0.0" parses like "1.9.0.0") since the
// directory names are written by a variety of historical installers.
//
// Examples:
//
//	"2.0.0.0"  -> Version{2, 0, 0, 0}, nil
//	"1.9"      -> zero, error (too few components)
//	"1.9.0.0b" -> zero, error (non-digit)
func ParseVersion(s string) (Version, error) {
	var v Version
	if s == "" {
		return v, fmt.Errorf("parse version: empty: %w", ErrParse)
	}

	parts := strings.Split(s, ".")
	if len(parts) != 4 {
		return v, fmt.Errorf("parse version %q: want 4 components, got %d: %w",
			s, len(parts), ErrParse)
	}

	nums := [4]int{}
	for i, part := range parts {
		if part == "" {
			return v, fmt.Errorf("parse version %q: empty component: %w", s, ErrParse)
		}
		for j := 0; j < len(part); j++ {
			c := part[j]
			if c < '0' || c > '9' {
				return v, fmt.Errorf("parse version %q: non-digit in component %d: %w",
					s, i, ErrParse)
			}
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return v, fmt.Errorf("parse version %q: %w", s, err)
		}
		nums[i] = n
	}

	return Version{Major: nums[0], Minor: nums[1], Build: nums[2], Revision: nums[3]}, nil
}

// String renders the canonical dotted form.
func (v Version) String() string {
	return strconv.Itoa(v.Major) + "." + strconv.Itoa(v.Minor) + "." +
		strconv.Itoa(v.Build) + "." + strconv.Itoa(v.Revision)
}

// Compare returns -1 if v < other, 1 if v > other, and 0 if they are equal.
func (v Version) Compare(other Version) int {
	if v.Major != other.Major {
		if v.Major < other.Major {
			return -1
		}
		return 1
	}
	if v.Minor != other.Minor {
		if v.Minor < other.Minor {
			return -1
		}
		return 1
	}
	if v.Build != other.Build {
		if v.Build < other.Build {
			return -1
		}
		return 1
	}
	if v.Revision != other.Revision {
		if v.Revision < other.Revision {
			return -1
		}
		return 1
	}
	return 0
}

// Equals reports whether two versions are identical in all four components.
func (v Version) Equals(other Version) bool { return v.Compare(other) == 0 }

// Lt reports whether v is strictly less than other.
func (v Version) Lt(other Version) bool { return v.Compare(other) < 0 }

// Gt reports whether v is strictly greater than other.
func (v Version) Gt(other Version) bool { return v.Compare(other) > 0 }
