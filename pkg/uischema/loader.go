package uischema

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-riskform/pkg/model"
)

// LoadFS walks the provided filesystem and merges every JSON/YAML overlay in
// lexical order. A field configured by two files is an error; form settings
// from later files replace earlier non-empty values. When fsys is nil the
// returned store is empty.
func LoadFS(fsys fs.FS) (*Store, error) {
	store := &Store{fields: make(map[model.FieldID]FieldConfig)}
	if fsys == nil {
		return store, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isSchemaFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("uischema: read %s: %w", path, err)
		}
		doc, err := parseDocument(data, path)
		if err != nil {
			return err
		}
		return store.merge(doc, path)
	})
	if err != nil {
		return nil, err
	}
	return store, nil
}

// Parse builds a store from a single document.
func Parse(data []byte, source string) (*Store, error) {
	doc, err := parseDocument(data, source)
	if err != nil {
		return nil, err
	}
	store := &Store{fields: make(map[model.FieldID]FieldConfig)}
	if err := store.merge(doc, source); err != nil {
		return nil, err
	}
	return store, nil
}

// Form returns the form-level settings.
func (s *Store) Form() FormConfig {
	if s == nil {
		return FormConfig{}
	}
	out := s.form
	out.Actions = append([]ActionConfig(nil), s.form.Actions...)
	return out
}

// Field returns the overlay for id. Missing labels fall back to the wire name.
func (s *Store) Field(id model.FieldID) FieldConfig {
	var cfg FieldConfig
	if s != nil {
		cfg = s.fields[id]
	}
	if strings.TrimSpace(cfg.Label) == "" {
		cfg.Label = id.String()
	}
	return cfg
}

// Action returns the label of the action of the given kind, or fallback.
func (s *Store) Action(kind, fallback string) string {
	if s != nil {
		for _, action := range s.form.Actions {
			if action.Kind == kind && strings.TrimSpace(action.Label) != "" {
				return action.Label
			}
		}
	}
	return fallback
}

// Empty reports whether the store holds any configuration.
func (s *Store) Empty() bool {
	return s == nil || (len(s.fields) == 0 && s.form.Title == "" && s.form.Subtitle == "" && len(s.form.Actions) == 0)
}

type documentFile struct {
	Form   FormConfig             `json:"form" yaml:"form"`
	Fields map[string]FieldConfig `json:"fields" yaml:"fields"`
}

func parseDocument(data []byte, source string) (documentFile, error) {
	var doc documentFile
	if len(strings.TrimSpace(string(data))) == 0 {
		return documentFile{}, fmt.Errorf("uischema: file %s is empty", source)
	}

	if err := json.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	doc = documentFile{}
	if err := yaml.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	return documentFile{}, fmt.Errorf("uischema: parse %s: invalid JSON or YAML", source)
}

func (s *Store) merge(doc documentFile, source string) error {
	for key, cfg := range doc.Fields {
		id, err := model.ParseFieldID(key)
		if err != nil {
			return fmt.Errorf("uischema: file %s: %w", source, err)
		}
		if existing, exists := s.fields[id]; exists {
			return fmt.Errorf("uischema: field %s configured twice (%s and %s)", id, existing.Source, source)
		}
		cfg.Source = source
		s.fields[id] = cfg
	}

	for idx, action := range doc.Form.Actions {
		switch action.Kind {
		case ActionSubmit, ActionReset:
		default:
			return fmt.Errorf("uischema: file %s action %d has unsupported kind %q", source, idx, action.Kind)
		}
	}

	if doc.Form.Title != "" {
		s.form.Title = doc.Form.Title
	}
	if doc.Form.Subtitle != "" {
		s.form.Subtitle = doc.Form.Subtitle
	}
	if len(doc.Form.Actions) > 0 {
		s.form.Actions = append([]ActionConfig(nil), doc.Form.Actions...)
	}
	return nil
}

func isSchemaFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
