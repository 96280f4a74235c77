package usercfg

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// StoreField is one declared field of a Store: its type and current value.
type StoreField struct {
	Type  string `yaml:"type"`
	Value any    `yaml:"value,omitempty"`
}

// Store is a concrete settings store backed by a YAML document. It satisfies
// Schema so the CLI and tests have a real collaborator; library callers with
// their own store only need to implement Schema.
type Store struct {
	Fields map[string]StoreField `yaml:"fields"`
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{Fields: map[string]StoreField{}}
}

// Declare registers a field with its declared type, replacing any previous
// declaration and clearing the value.
func (s *Store) Declare(name string, t FieldType) {
	if s.Fields == nil {
		s.Fields = map[string]StoreField{}
	}
	s.Fields[name] = StoreField{Type: string(t)}
}

// FieldType implements Schema.
func (s *Store) FieldType(name string) (FieldType, bool) {
	f, ok := s.Fields[name]
	if !ok {
		return "", false
	}
	t, err := ParseFieldType(f.Type)
	if err != nil {
		return "", false
	}
	return t, true
}

// Get implements Schema.
func (s *Store) Get(name string) (any, bool) {
	f, ok := s.Fields[name]
	if !ok {
		return nil, false
	}
	return f.Value, true
}

// Set implements Schema. The value's dynamic type must match the field's
// declared type; mismatches are rejected so the transfer step can skip them.
func (s *Store) Set(name string, value any) error {
	f, ok := s.Fields[name]
	if !ok {
		return fmt.Errorf("set %q: field not declared: %w", name, ErrInvalid)
	}
	declared, err := ParseFieldType(f.Type)
	if err != nil {
		return fmt.Errorf("set %q: %w", name, err)
	}
	if !assignable(value, declared) {
		return fmt.Errorf("set %q: value %T does not match declared type %s: %w",
			name, value, declared, ErrInvalid)
	}
	f.Value = value
	s.Fields[name] = f
	return nil
}

func assignable(value any, declared FieldType) bool {
	switch declared {
	case FieldString:
		_, ok := value.(string)
		return ok
	case FieldBool:
		_, ok := value.(bool)
		return ok
	case FieldInt:
		_, ok := value.(int)
		return ok
	case FieldInt64:
		switch value.(type) {
		case int64, int:
			return true
		}
		return false
	case FieldFloat:
		switch value.(type) {
		case float64, int:
			return true
		}
		return false
	case FieldTime:
		_, ok := value.(time.Time)
		return ok
	}
	return false
}

// LoadStore reads a YAML store document from path.
func LoadStore(path string) (*Store, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load store %s: %w", path, err)
	}
	var s Store
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("load store %s: %w", path, err)
	}
	if s.Fields == nil {
		s.Fields = map[string]StoreField{}
	}
	for name, f := range s.Fields {
		if _, err := ParseFieldType(f.Type); err != nil {
			return nil, fmt.Errorf("load store %s: field %q: %w", path, name, err)
		}
	}
	return &s, nil
}

// Save writes the store as a YAML document at path.
func (s *Store) Save(path string) error {
	raw, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("save store %s: %w", path, err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("save store %s: %w", path, err)
	}
	return nil
}

var _ Schema = (*Store)(nil)
