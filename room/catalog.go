package room

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Catalogue errors.
var (
	ErrRoomNotFound  = errors.New("room not found")
	ErrDuplicateRoom = errors.New("duplicate room name")
	ErrUnnamedRoom   = errors.New("room name cannot be empty")
)

// Definition is the serialized form of a named room.
type Definition struct {
	Name   string    `yaml:"name" json:"name"`
	Layout Layout    `yaml:"layout" json:"layout"`
	Start  *Position `yaml:"start" json:"start"`
}

type catalogFile struct {
	Rooms []Definition `yaml:"rooms"`
}

// Catalog is a read-only set of named rooms.
type Catalog struct {
	rooms map[string]*Room
}

// LoadCatalog reads a YAML room catalogue from filePath.
func LoadCatalog(filePath string) (*Catalog, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read room catalogue: %w", err)
	}
	return ParseCatalog(data)
}

// ParseCatalog builds a catalogue from YAML bytes of the form:
//
//	rooms:
//	  - name: hall
//	    layout: [[0, 0], [0, 1]]
//	    start: {x: 0, y: 0}
func ParseCatalog(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse room catalogue YAML: %w", err)
	}

	catalog := &Catalog{rooms: make(map[string]*Room, len(file.Rooms))}
	for i, def := range file.Rooms {
		if def.Name == "" {
			return nil, fmt.Errorf("room #%d: %w", i, ErrUnnamedRoom)
		}
		if _, exists := catalog.rooms[def.Name]; exists {
			return nil, fmt.Errorf("%s: %w", def.Name, ErrDuplicateRoom)
		}
		r, err := New(def.Layout, def.Start)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", def.Name, err)
		}
		catalog.rooms[def.Name] = r
	}

	return catalog, nil
}

// ByName returns the room registered under name.
func (c *Catalog) ByName(name string) (*Room, error) {
	r, ok := c.rooms[name]
	if !ok {
		return nil, ErrRoomNotFound
	}
	return r, nil
}

// Names lists the catalogue's room names in sorted order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.rooms))
	for name := range c.rooms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
