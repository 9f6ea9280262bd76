package schema

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
)

var (
	// ErrNoDocumentation is returned when the documentation source is absent.
	ErrNoDocumentation = errors.New("no documentation source")
	// ErrUnknownComponent is returned by callers that require a component to exist.
	ErrUnknownComponent = errors.New("unknown component")
)

const optionsSeparator = ".options."

// RawEntry is one node of the flat documentation extracted from the
// component sources.
type RawEntry struct {
	Name              string            `json:"name"`
	Comment           string            `json:"comment"`
	Type              string            `json:"type,omitempty"`
	ConstrainedValues []string          `json:"constrainedValues,omitempty"`
	MiscAttributes    map[string]string `json:"miscAttributes,omitempty"`
}

// UnmarshalJSON accepts scalar misc attributes of any JSON type.
func (r *RawEntry) UnmarshalJSON(data []byte) error {
	var raw struct {
		Name              string         `json:"name"`
		Comment           string         `json:"comment"`
		Type              string         `json:"type"`
		ConstrainedValues []string       `json:"constrainedValues"`
		MiscAttributes    map[string]any `json:"miscAttributes"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	r.Name = raw.Name
	r.Comment = raw.Comment
	r.Type = raw.Type
	r.ConstrainedValues = raw.ConstrainedValues
	r.MiscAttributes = nil
	if len(raw.MiscAttributes) > 0 {
		r.MiscAttributes = make(map[string]string, len(raw.MiscAttributes))
		for k, v := range raw.MiscAttributes {
			switch val := v.(type) {
			case nil:
				continue
			case string:
				r.MiscAttributes[k] = val
			case bool, float64:
				r.MiscAttributes[k] = fmt.Sprint(val)
			}
		}
	}
	return nil
}

// Build partitions flat documentation entries into top-level entities keyed
// by name, attaching "<Component>.options.<option>" entries to their owning
// component. Options of non-component entities are dropped.
// Entries without a name are skipped.
func Build(entries []RawEntry, logger *zap.Logger) map[string]*Entity {
	if logger == nil {
		logger = zap.NewNop()
	}

	docs := make(map[string]*Entity)
	byLowerName := make(map[string]*Entity)

	for _, entry := range entries {
		if entry.Name == "" {
			logger.Warn("skipping documentation entry without a name")
			continue
		}
		if strings.Contains(entry.Name, ".") {
			continue
		}
		entity := newEntity(entry)
		entity.IsComponent = isComponentName(entry.Name)
		docs[entity.Name] = entity
		byLowerName[strings.ToLower(entity.Name)] = entity
	}

	for _, entry := range entries {
		idx := strings.Index(strings.ToLower(entry.Name), optionsSeparator)
		if idx <= 0 {
			continue
		}
		optionName := entry.Name[idx+len(optionsSeparator):]
		if !optionNamePattern.MatchString(optionName) {
			continue
		}
		owner, ok := byLowerName[strings.ToLower(entry.Name[:idx])]
		if !ok || !owner.IsComponent {
			logger.Debug("option without documented component", zap.String("name", entry.Name))
			continue
		}
		option := newEntity(entry)
		option.Name = optionName
		owner.Options = append(owner.Options, option)
	}

	return docs
}

func newEntity(entry RawEntry) *Entity {
	return &Entity{
		Name:              entry.Name,
		Comment:           entry.Comment,
		Type:              entry.Type,
		ConstrainedValues: entry.ConstrainedValues,
		MiscAttributes:    entry.MiscAttributes,
		Options:           []*Entity{},
	}
}

// Decode reads documentation JSON into a documentation map. A top-level
// array is read as flat raw entries and built, a top-level object as a
// prebuilt map written by WriteFile.
func Decode(data []byte, logger *zap.Logger) (map[string]*Entity, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, ErrNoDocumentation
	}

	switch trimmed[0] {
	case '[':
		var entries []RawEntry
		if err := json.Unmarshal(trimmed, &entries); err != nil {
			return nil, fmt.Errorf("failed to parse documentation entries: %w", err)
		}
		return Build(entries, logger), nil
	case '{':
		var docs map[string]*Entity
		if err := json.Unmarshal(trimmed, &docs); err != nil {
			return nil, fmt.Errorf("failed to parse documentation map: %w", err)
		}
		if docs == nil {
			docs = map[string]*Entity{}
		}
		return docs, nil
	default:
		return nil, fmt.Errorf("failed to parse documentation: unexpected %q", trimmed[0])
	}
}

// Parse decodes documentation JSON into a new store.
func Parse(data []byte, logger *zap.Logger) (*Store, error) {
	docs, err := Decode(data, logger)
	if err != nil {
		return nil, err
	}
	return FromMap(docs, logger)
}

// ReadFile reads and decodes a documentation file.
func ReadFile(path string, logger *zap.Logger) (map[string]*Entity, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNoDocumentation, path)
		}
		return nil, fmt.Errorf("failed to read documentation: %w", err)
	}
	return Decode(data, logger)
}

// LoadFile reads a documentation file into a new store.
func LoadFile(path string, logger *zap.Logger) (*Store, error) {
	docs, err := ReadFile(path, logger)
	if err != nil {
		return nil, err
	}
	return FromMap(docs, logger)
}

// WriteFile writes a prebuilt documentation map as JSON.
func WriteFile(path string, docs map[string]*Entity) error {
	data, err := json.MarshalIndent(docs, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal documentation: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write documentation: %w", err)
	}
	return nil
}
