package schema

import (
	"sort"
	"strings"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
)

// Store answers documentation lookups from an immutable snapshot.
//
// The symbol-name memo cache belongs to the snapshot: Reload swaps snapshot
// and cache together, so no lookup observes an entry from a previous load.
type Store struct {
	current atomic.Pointer[snapshot]
	logger  *zap.Logger
}

type snapshot struct {
	docs      map[string]*Entity
	byClass   map[string]*Entity
	symbolMem sync.Map // raw symbol name -> *Entity, nil when not found
}

// New builds a store from flat documentation entries.
func New(entries []RawEntry, logger *zap.Logger) (*Store, error) {
	if entries == nil {
		return nil, ErrNoDocumentation
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return FromMap(Build(entries, logger), logger)
}

// FromMap builds a store from a prebuilt documentation map.
func FromMap(docs map[string]*Entity, logger *zap.Logger) (*Store, error) {
	if docs == nil {
		return nil, ErrNoDocumentation
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Store{logger: logger}
	s.current.Store(newSnapshot(docs, logger))
	return s, nil
}

func newSnapshot(docs map[string]*Entity, logger *zap.Logger) *snapshot {
	snap := &snapshot{
		docs:    make(map[string]*Entity, len(docs)),
		byClass: make(map[string]*Entity, len(docs)),
	}
	for key, entity := range docs {
		if entity == nil || entity.Name == "" {
			logger.Warn("skipping documentation entity without a name", zap.String("key", key))
			continue
		}
		if entity.Options == nil {
			entity.Options = []*Entity{}
		}
		snap.docs[entity.Name] = entity
		snap.byClass[MarkupClass(entity.Name)] = entity
	}
	logger.Debug("documentation loaded", zap.Int("entities", len(snap.docs)))
	return snap
}

// Reload replaces the snapshot with one holding docs. Lookups already in
// flight finish against the previous snapshot.
func (s *Store) Reload(docs map[string]*Entity) error {
	if docs == nil {
		return ErrNoDocumentation
	}
	s.current.Store(newSnapshot(docs, s.logger))
	return nil
}

// ReloadFile reads a documentation file, raw entries or prebuilt map, and
// swaps it in. On error the current snapshot is kept.
func (s *Store) ReloadFile(path string) error {
	docs, err := ReadFile(path, s.logger)
	if err != nil {
		return err
	}
	return s.Reload(docs)
}

// Len returns the number of documented top-level entities.
func (s *Store) Len() int {
	return len(s.current.Load().docs)
}

// GetByComponentName returns the entity documented under name.
func (s *Store) GetByComponentName(name string) (*Entity, bool) {
	entity, ok := s.current.Load().docs[name]
	return entity, ok
}

// FindComponent looks a component up by name, case-insensitively, with or
// without the markup class prefix.
func (s *Store) FindComponent(name string) (*Entity, bool) {
	snap := s.current.Load()
	if entity, ok := snap.docs[name]; ok {
		return entity, true
	}
	if entity, ok := snap.byClass[name]; ok {
		return entity, true
	}
	lower := strings.ToLower(strings.TrimPrefix(name, ComponentPrefix))
	for key, entity := range snap.docs {
		if strings.ToLower(key) == lower {
			return entity, true
		}
	}
	return nil, false
}

// GetBySymbolName returns the entity named by the first class of a symbol
// name such as "div.CoveoSearchbox". Results are memoized per raw name.
func (s *Store) GetBySymbolName(symbolName string) (*Entity, bool) {
	if symbolName == "" {
		return nil, false
	}
	snap := s.current.Load()
	if cached, ok := snap.symbolMem.Load(symbolName); ok {
		entity := cached.(*Entity)
		return entity, entity != nil
	}

	var entity *Entity
	if class, ok := ComponentFromSymbolName(symbolName); ok {
		entity = snap.byClass[class]
	}
	snap.symbolMem.Store(symbolName, entity)
	return entity, entity != nil
}

// ListComponents returns every component entity sorted by name.
func (s *Store) ListComponents() []*Entity {
	snap := s.current.Load()
	var components []*Entity
	for _, entity := range snap.docs {
		if entity.IsComponent {
			components = append(components, entity)
		}
	}
	sort.Slice(components, func(i, j int) bool {
		return components[i].Name < components[j].Name
	})
	return components
}

// Entities returns a copy of the top-level documentation map, keyed by name.
func (s *Store) Entities() map[string]*Entity {
	snap := s.current.Load()
	docs := make(map[string]*Entity, len(snap.docs))
	for name, entity := range snap.docs {
		docs[name] = entity
	}
	return docs
}
