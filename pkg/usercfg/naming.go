package usercfg

import "strings"

// On-disk naming contract. An assembly subdirectory is named
//
//	{bareName}[{extension}]_Url_{hash}
//
// and each of its version subdirectories holds one settings file. The
// separator token and the legacy extensions are fixed external constants and
// must be reproduced bit-for-bit for compatibility with existing trees.
const (
	// URLSeparator splits the decorated assembly name from the per-install hash.
	URLSeparator = "_Url_"

	// SettingsFileName is the single settings file inside a version directory.
	SettingsFileName = "user.config"

	releaseExtension   = ".exe"
	libraryExtension   = ".dll"
	debugHostExtension = ".vshost.exe"
)

// ExtensionVariant selects one of the historical assembly-name decorations.
type ExtensionVariant int

const (
	// ExtensionNone matches extensionless assembly directories.
	ExtensionNone ExtensionVariant = iota
	// ExtensionRelease matches release executable directories ({name}.exe_Url_...).
	ExtensionRelease
	// ExtensionDebugHost matches legacy debug host directories ({name}.vshost.exe_Url_...).
	ExtensionDebugHost
)

func (v ExtensionVariant) suffix() string {
	switch v {
	case ExtensionRelease:
		return releaseExtension
	case ExtensionDebugHost:
		return debugHostExtension
	default:
		return ""
	}
}

// ExtractBareName derives the logical program name from an assembly
// subdirectory name.
//
// It locates the rightmost URLSeparator occurrence; when the separator is
// absent and requireSeparator is true the name is malformed, otherwise the
// whole string is treated as the decorated name. The separator may not sit at
// index 0 (empty name) and must leave at least one character for the trailing
// hash segment. Known legacy extensions (.exe, .dll, and the debug host
// extension when debugging is set) are stripped from the tail. An empty
// result is an InvalidIdentityError.
func ExtractBareName(dirName string, requireSeparator, debugging bool) (string, error) {
	if dirName == "" {
		return "", NewMalformedDirectoryNameError(dirName, "empty directory name")
	}

	name := dirName
	if idx := strings.LastIndex(dirName, URLSeparator); idx >= 0 {
		if idx == 0 {
			return "", NewMalformedDirectoryNameError(dirName, "separator leaves empty name")
		}
		if idx+len(URLSeparator) >= len(dirName) {
			return "", NewMalformedDirectoryNameError(dirName, "separator leaves empty hash")
		}
		name = dirName[:idx]
	} else if requireSeparator {
		return "", NewMalformedDirectoryNameError(dirName, "missing "+URLSeparator+" separator")
	}

	if debugging {
		name = trimSuffixFold(name, debugHostExtension)
	}
	name = trimSuffixFold(name, releaseExtension)
	name = trimSuffixFold(name, libraryExtension)

	if name == "" {
		return "", NewInvalidIdentityError("derived bare name is empty for " + dirName)
	}
	return name, nil
}

// CandidateDirPrefix produces the directory-name prefix used for matching the
// given identity under one extension variant. Matching is case-insensitive
// and prefix-only; the scanner appends the separator and hash implicitly by
// using starts-with semantics.
func CandidateDirPrefix(id Identity, variant ExtensionVariant) string {
	return id.BareName + variant.suffix()
}

// trimSuffixFold removes suffix from s when it matches case-insensitively.
func trimSuffixFold(s, suffix string) string {
	if len(s) >= len(suffix) && strings.EqualFold(s[len(s)-len(suffix):], suffix) {
		return s[:len(s)-len(suffix)]
	}
	return s
}
