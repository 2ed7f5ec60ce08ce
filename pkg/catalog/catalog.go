// Package catalog loads the register catalog that drives a concentrator
// register scan. The catalog is an external, versioned document holding one
// "registers" array; its order defines the scan order and the order of the
// rendered report.
package catalog

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Descriptor identifies one readable register.
type Descriptor struct {
	// Index identifies the register to the hardware read primitive.
	// Unique within the catalog, not required to be contiguous.
	Index int

	// AddressGroup groups registers by logical subsystem, display only.
	AddressGroup string

	// Name is the human-readable identifier, unique within the catalog.
	Name string

	// BitOffset and BitLength describe where the value sits in the wider
	// hardware word. Carried through to the report untouched.
	BitOffset int
	BitLength int
}

// rawRecord mirrors one register record as it appears in the document.
// Pointer fields distinguish an absent field from a zero value, and numeric
// fields decode as floats so the integer coercion is explicit and checked.
type rawRecord struct {
	Index   *float64 `json:"index" yaml:"index"`
	Address *string  `json:"address" yaml:"address"`
	Name    *string  `json:"name" yaml:"name"`
	Offset  *float64 `json:"offset" yaml:"offset"`
	Length  *float64 `json:"length" yaml:"length"`
}

type rawDocument struct {
	Registers []rawRecord `json:"registers" yaml:"registers"`
}

// Load reads and validates a register catalog document. JSON is the default
// encoding; files ending in .yaml or .yml decode the same shape via YAML.
// Entries are returned in document order, which is the authoritative scan
// order. Any record missing a required field fails the whole load: a partial
// catalog would silently under-report registers.
func Load(path string) ([]Descriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrNotFound, path, err)
	}

	var doc rawDocument
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &doc)
	default:
		err = json.Unmarshal(data, &doc)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrNotFound, path, err)
	}

	if doc.Registers == nil {
		return nil, fmt.Errorf("%w: %s: no \"registers\" array", ErrMissingField, path)
	}

	descriptors := make([]Descriptor, 0, len(doc.Registers))
	for i, record := range doc.Registers {
		descriptor, err := record.validate()
		if err != nil {
			return nil, fmt.Errorf("register record %d: %w", i, err)
		}
		descriptors = append(descriptors, descriptor)
	}

	return descriptors, nil
}

func (r rawRecord) validate() (Descriptor, error) {
	if r.Index == nil {
		return Descriptor{}, fmt.Errorf("%w: \"index\"", ErrMissingField)
	}
	if r.Address == nil {
		return Descriptor{}, fmt.Errorf("%w: \"address\"", ErrMissingField)
	}
	if r.Name == nil {
		return Descriptor{}, fmt.Errorf("%w: \"name\"", ErrMissingField)
	}
	if r.Offset == nil {
		return Descriptor{}, fmt.Errorf("%w: \"offset\"", ErrMissingField)
	}
	if r.Length == nil {
		return Descriptor{}, fmt.Errorf("%w: \"length\"", ErrMissingField)
	}

	index, err := coerceInt("index", *r.Index)
	if err != nil {
		return Descriptor{}, err
	}
	offset, err := coerceInt("offset", *r.Offset)
	if err != nil {
		return Descriptor{}, err
	}
	length, err := coerceInt("length", *r.Length)
	if err != nil {
		return Descriptor{}, err
	}

	if index < 0 {
		return Descriptor{}, fmt.Errorf("%w: \"index\" is negative (%d)", ErrBadValue, index)
	}
	if length <= 0 {
		return Descriptor{}, fmt.Errorf("%w: \"length\" must be positive (%d)", ErrBadValue, length)
	}

	return Descriptor{
		Index:        index,
		AddressGroup: *r.Address,
		Name:         *r.Name,
		BitOffset:    offset,
		BitLength:    length,
	}, nil
}

// coerceInt converts a document number to an integer, rejecting fractional
// values at load time instead of truncating them silently at render time.
func coerceInt(field string, value float64) (int, error) {
	if value != math.Trunc(value) {
		return 0, fmt.Errorf("%w: \"%s\" is not an integer (%v)", ErrBadValue, field, value)
	}
	return int(value), nil
}
