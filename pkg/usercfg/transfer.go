package usercfg

import (
	"context"
	"encoding/xml"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/jlrickert/usercfg/pkg/log"
)

// FieldType is the declared value type of one settings field.
type FieldType string

const (
	FieldString FieldType = "string"
	FieldBool   FieldType = "bool"
	FieldInt    FieldType = "int"
	FieldInt64  FieldType = "int64"
	FieldFloat  FieldType = "float"
	FieldTime   FieldType = "time"
)

// ParseFieldType converts a type name into a FieldType.
func ParseFieldType(s string) (FieldType, error) {
	switch FieldType(strings.ToLower(strings.TrimSpace(s))) {
	case FieldString, FieldBool, FieldInt, FieldInt64, FieldFloat, FieldTime:
		return FieldType(strings.ToLower(strings.TrimSpace(s))), nil
	}
	return "", fmt.Errorf("unknown field type %q: %w", s, ErrParse)
}

// Schema is the capability the target settings store exposes: a declared type
// per field name plus get/set accessors. The core never enumerates store
// fields; it only looks up names found in the settings file being imported.
type Schema interface {
	// FieldType returns the declared type of name, reporting false when the
	// field is not part of the store.
	FieldType(name string) (FieldType, bool)
	// Get returns the current value of name.
	Get(name string) (any, bool)
	// Set assigns value to name. Implementations reject values whose dynamic
	// type does not match the declared type.
	Set(name string, value any) error
}

// ExportedFieldMap maps field names to coerced values read from a settings
// file. Order is irrelevant; the map exists only between export and apply.
type ExportedFieldMap map[string]any

// FieldWarning records one per-field skip during export or apply. Warnings
// are a side channel for diagnostics and tests; they never fail an operation.
type FieldWarning struct {
	Name   string
	Reason string
}

// settingsDocument mirrors the markup layout of a settings file:
// a <configuration> root, a <userSettings> collection, any number of named
// sections, each holding <setting name="..."><value>...</value></setting>
// entries.
type settingsDocument struct {
	XMLName      xml.Name            `xml:"configuration"`
	UserSettings userSettingsSection `xml:"userSettings"`
}

type userSettingsSection struct {
	Sections []settingsSection `xml:",any"`
}

type settingsSection struct {
	Settings []settingEntry `xml:"setting"`
}

type settingEntry struct {
	Name  string `xml:"name,attr"`
	Value string `xml:"value"`
}

// Export reads the settings file at path and returns every field that exists
// in schema with its raw value coerced to the declared type.
//
// Structural problems abort the whole export: a missing file, an unparsable
// document, or a nil schema. Per-entry problems never do: names absent from
// the schema and values that cannot be coerced are logged, recorded as
// warnings, and dropped.
func Export(ctx context.Context, path string, schema Schema) (ExportedFieldMap, []FieldWarning, error) {
	if schema == nil {
		return nil, nil, fmt.Errorf("export %s: nil schema: %w", path, ErrInvalid)
	}
	lg := log.FromContext(ctx)

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, NewSettingsFileNotFoundError(path)
		}
		return nil, nil, fmt.Errorf("export %s: %w", path, err)
	}

	var doc settingsDocument
	if err := xml.Unmarshal(raw, &doc); err != nil {
		return nil, nil, NewMalformedDocumentError(path, err)
	}

	fields := ExportedFieldMap{}
	var warnings []FieldWarning
	for _, section := range doc.UserSettings.Sections {
		for _, entry := range section.Settings {
			if entry.Name == "" {
				continue
			}
			declared, ok := schema.FieldType(entry.Name)
			if !ok {
				lg.Debug("skipping field unknown to schema", "field", entry.Name)
				warnings = append(warnings, FieldWarning{
					Name:   entry.Name,
					Reason: "not declared by target schema",
				})
				continue
			}
			value, err := CoerceValue(entry.Value, declared)
			if err != nil {
				lg.Warn("skipping non-coercible field value",
					"field", entry.Name, "type", string(declared), "error", err)
				warnings = append(warnings, FieldWarning{
					Name:   entry.Name,
					Reason: err.Error(),
				})
				continue
			}
			fields[entry.Name] = value
		}
	}
	return fields, warnings, nil
}

// Apply copies every exported field into the schema by name. Unmatched names
// and assignment failures are logged, recorded as warnings, and skipped so a
// single bad field never blocks the rest. Apply fails only when fields or
// schema is nil.
func Apply(ctx context.Context, fields ExportedFieldMap, schema Schema) ([]FieldWarning, error) {
	if fields == nil {
		return nil, fmt.Errorf("apply: nil field map: %w", ErrInvalid)
	}
	if schema == nil {
		return nil, fmt.Errorf("apply: nil schema: %w", ErrInvalid)
	}
	lg := log.FromContext(ctx)

	var warnings []FieldWarning
	for name, value := range fields {
		if _, ok := schema.FieldType(name); !ok {
			lg.Debug("skipping field unknown to schema", "field", name)
			warnings = append(warnings, FieldWarning{
				Name:   name,
				Reason: "not declared by target schema",
			})
			continue
		}
		if err := schema.Set(name, value); err != nil {
			lg.Warn("skipping field that failed assignment",
				"field", name, "error", err)
			warnings = append(warnings, FieldWarning{
				Name:   name,
				Reason: err.Error(),
			})
		}
	}
	return warnings, nil
}

// CoerceValue converts a raw serialized value into the declared field type.
func CoerceValue(raw string, declared FieldType) (any, error) {
	switch declared {
	case FieldString:
		return raw, nil
	case FieldBool:
		v, err := strconv.ParseBool(strings.TrimSpace(raw))
		if err != nil {
			return nil, fmt.Errorf("coerce %q to bool: %w", raw, ErrParse)
		}
		return v, nil
	case FieldInt:
		v, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return nil, fmt.Errorf("coerce %q to int: %w", raw, ErrParse)
		}
		return v, nil
	case FieldInt64:
		v, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("coerce %q to int64: %w", raw, ErrParse)
		}
		return v, nil
	case FieldFloat:
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return nil, fmt.Errorf("coerce %q to float: %w", raw, ErrParse)
		}
		return v, nil
	case FieldTime:
		v, err := time.Parse(time.RFC3339, strings.TrimSpace(raw))
		if err != nil {
			return nil, fmt.Errorf("coerce %q to time: %w", raw, ErrParse)
		}
		return v, nil
	}
	return nil, fmt.Errorf("unknown declared type %q: %w", declared, ErrInvalid)
}
