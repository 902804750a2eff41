// SPDX-License-Identifier: MIT
// Package: valo/schema
//
// schema.go — YAML document parsing into vo.Type declarations.
//
// Contract (strict):
//   • Document order is declaration order; a base may only reference a type
//     declared earlier in the same document (no forward references, no
//     cycles by construction).
//   • All vo/voexpr validation applies unchanged; this package adds only
//     the document-level concerns.

package schema

import (
	"errors"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"

	"github.com/katalvlaran/valo/vo"
	"github.com/katalvlaran/valo/voexpr"
)

// ErrSyntax indicates the input failed to parse as a schema document.
var ErrSyntax = errors.New("schema: invalid document")

// ErrNoTypes indicates a well-formed document declaring no types.
var ErrNoTypes = errors.New("schema: no types declared")

// ErrUnknownBase indicates a base reference to a type not declared earlier
// in the same document.
var ErrUnknownBase = errors.New("schema: unknown base type")

// document is the YAML root.
type document struct {
	Types []typeDef `yaml:"types"`
}

// typeDef declares one value-object type.
type typeDef struct {
	Name       string     `yaml:"name"`
	Base       string     `yaml:"base"`
	Fields     []fieldDef `yaml:"fields"`
	Invariants []string   `yaml:"invariants"`
}

// fieldDef declares one field. A non-null Default makes the field optional.
type fieldDef struct {
	Name    string `yaml:"name"`
	Default any    `yaml:"default"`
}

// Parse builds the declared types from a YAML document, in document order.
//
// Fails with ErrSyntax on malformed YAML, ErrNoTypes on an empty type list,
// ErrUnknownBase on a dangling base reference; vo declaration errors and
// voexpr compile errors pass through unwrapped-compatible (errors.Is).
//
// Complexity: O(total fields + total invariants) plus YAML decoding.
func Parse(data []byte) ([]*vo.Type, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
	}
	if len(doc.Types) == 0 {
		return nil, fmt.Errorf("Parse: %w", ErrNoTypes)
	}

	declared := make(map[string]*vo.Type, len(doc.Types))
	out := make([]*vo.Type, 0, len(doc.Types))
	for _, def := range doc.Types {
		typ, err := buildType(def, declared)
		if err != nil {
			return nil, err
		}
		declared[typ.Name()] = typ
		out = append(out, typ)
	}

	return out, nil
}

// Load reads the whole document from r and delegates to Parse.
func Load(r io.Reader) ([]*vo.Type, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("Load: %w", err)
	}

	return Parse(data)
}

// buildType assembles one vo.Type from its definition and the types declared
// before it.
func buildType(def typeDef, declared map[string]*vo.Type) (*vo.Type, error) {
	opts := make([]vo.TypeOption, 0, 1+len(def.Fields)+len(def.Invariants))

	if def.Base != "" {
		parent, ok := declared[def.Base]
		if !ok {
			return nil, fmt.Errorf("type %q: base %q: %w", def.Name, def.Base, ErrUnknownBase)
		}
		opts = append(opts, vo.WithBase(parent))
	}

	for _, f := range def.Fields {
		if f.Name == "" {
			// WithField("") panics by contract; surface the document
			// mistake as a declaration error instead.
			return nil, fmt.Errorf("type %q: unnamed field: %w", def.Name, ErrSyntax)
		}
		if f.Default != nil {
			opts = append(opts, vo.WithDefault(f.Name, f.Default))
		} else {
			opts = append(opts, vo.WithField(f.Name))
		}
	}

	for _, src := range def.Invariants {
		inv, err := voexpr.Invariant(src)
		if err != nil {
			return nil, fmt.Errorf("type %q: %w", def.Name, err)
		}
		opts = append(opts, vo.WithInvariant(inv))
	}

	return vo.NewType(def.Name, opts...)
}
