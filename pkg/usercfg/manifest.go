package usercfg

// A migration manifest names the historical identities an application has
// shipped under, so the CLI and embedding programs can hand the resolution
// policy its previous-identity list without hardcoding it.

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const ManifestV1VersionString = "2026-08"

// ManifestV1 is the initial version of the migration manifest specification.
type ManifestV1 struct {
	// Usercfgv is the version of the specification.
	Usercfgv string `yaml:"usercfgv"`

	// RootGroup is the default root group applied to entries that omit one.
	RootGroup string `yaml:"rootGroup,omitempty"`

	// AcceptHigher admits candidate versions above the current one.
	AcceptHigher bool `yaml:"acceptHigher,omitempty"`

	// Previous lists historical identities in search priority order.
	Previous []ManifestIdentity `yaml:"previous,omitempty"`
}

// ManifestIdentity is one historical identity entry.
type ManifestIdentity struct {
	RootGroup string `yaml:"rootGroup,omitempty"`
	BareName  string `yaml:"bareName"`
	DirHint   string `yaml:"dirHint,omitempty"`
}

// Since there is no version 2 yet, ManifestV1 is the latest version.
type Manifest = ManifestV1

// ParseManifestData parses raw YAML manifest data into the latest Manifest
// version.
func ParseManifestData(data []byte) (Manifest, error) {
	var manifest Manifest

	// Detect version by unmarshaling into a generic map
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return manifest, err
	}

	version, ok := raw["usercfgv"].(string)
	if !ok {
		return manifest, fmt.Errorf("missing or invalid usercfgv version field")
	}

	switch version {
	case ManifestV1VersionString:
		if err := yaml.Unmarshal(data, &manifest); err != nil {
			return manifest, err
		}
	default:
		return manifest, fmt.Errorf("unsupported manifest version: %s", version)
	}

	return manifest, nil
}

// LoadManifest reads and parses a manifest file.
func LoadManifest(path string) (Manifest, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, fmt.Errorf("load manifest %s: %w", path, err)
	}
	return ParseManifestData(raw)
}

// Identities validates the manifest entries and returns them as Identity
// values, filling in the manifest-level root group where an entry omits one.
func (m Manifest) Identities() ([]Identity, error) {
	out := make([]Identity, 0, len(m.Previous))
	for _, entry := range m.Previous {
		group := entry.RootGroup
		if group == "" {
			group = m.RootGroup
		}
		id, err := NewIdentity(group, entry.BareName)
		if err != nil {
			return nil, fmt.Errorf("manifest entry %q: %w", entry.BareName, err)
		}
		if entry.DirHint != "" {
			id = id.WithHint(entry.DirHint)
		}
		out = append(out, id)
	}
	return out, nil
}
