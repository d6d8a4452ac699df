package subsystems

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrSubsystemExists = errors.New("subsystem already exists")
	ErrSubsystemNil    = errors.New("subsystem is nil")
	ErrInvalidMetadata = errors.New("invalid subsystem metadata")
)

// Registry stores subsystems by stable identifier.
type Registry struct {
	items map[string]Subsystem
}

// Descriptor pairs metadata with the operation catalog.
type Descriptor struct {
	Metadata
	Operations []OperationSpec `json:"operations"`
}

func NewRegistry() *Registry {
	return &Registry{items: make(map[string]Subsystem)}
}

// ValidateMetadata checks required metadata fields and id format.
func ValidateMetadata(meta Metadata) error {
	id := strings.TrimSpace(meta.ID)
	name := strings.TrimSpace(meta.Name)
	desc := strings.TrimSpace(meta.Description)
	if id == "" || name == "" || desc == "" {
		return fmt.Errorf("%w: id, name, and description are required", ErrInvalidMetadata)
	}
	if !isValidID(id) {
		return fmt.Errorf("%w: invalid id format %q", ErrInvalidMetadata, id)
	}
	return nil
}

func (r *Registry) Register(s Subsystem) error {
	if s == nil {
		return ErrSubsystemNil
	}
	meta := s.Metadata()
	if err := ValidateMetadata(meta); err != nil {
		return err
	}
	if _, ok := r.items[meta.ID]; ok {
		return fmt.Errorf("%w: %s", ErrSubsystemExists, meta.ID)
	}
	r.items[meta.ID] = s
	return nil
}

func (r *Registry) Resolve(id string) (Subsystem, bool) {
	s, ok := r.items[id]
	return s, ok
}

// Execute resolves id and runs one operation on it.
func (r *Registry) Execute(id, action string, args map[string]string) error {
	s, ok := r.Resolve(id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownSubsystem, id)
	}
	return s.Execute(action, args)
}

// ListMetadata returns metadata ordered by id.
func (r *Registry) ListMetadata() []Metadata {
	list := make([]Metadata, 0, len(r.items))
	for _, s := range r.items {
		list = append(list, s.Metadata())
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].ID < list[j].ID
	})
	return list
}

// Describe returns descriptors ordered by id.
func (r *Registry) Describe() []Descriptor {
	metas := r.ListMetadata()
	out := make([]Descriptor, 0, len(metas))
	for _, meta := range metas {
		out = append(out, Descriptor{Metadata: meta, Operations: r.items[meta.ID].Operations()})
	}
	return out
}

func isValidID(id string) bool {
	if id == "" {
		return false
	}
	lastSep := false
	for i := 0; i < len(id); i++ {
		c := id[i]
		isLower := c >= 'a' && c <= 'z'
		isDigit := c >= '0' && c <= '9'
		isSep := c == '.' || c == '-' || c == '_'
		if !isLower && !isDigit && !isSep {
			return false
		}
		if (i == 0 || i == len(id)-1) && isSep {
			return false
		}
		if isSep && lastSep {
			return false
		}
		lastSep = isSep
	}
	return true
}
