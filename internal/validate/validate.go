// Package validate compiles the embedded entity JSON Schemas and checks
// create payloads against them when the store runs with strict refs.
package validate

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/qri-io/jsonschema"
)

//go:embed schemas/*.json
var schemaFS embed.FS

// Entity names with an embedded schema.
const (
	EntityShip      = "ship"
	EntityComponent = "component"
	EntityJob       = "job"
)

// Validator holds the compiled schemas, one per entity name.
type Validator struct {
	schemas map[string]*jsonschema.Schema
}

func New() (*Validator, error) {
	entries, err := fs.ReadDir(schemaFS, "schemas")
	if err != nil {
		return nil, fmt.Errorf("read schemas dir: %w", err)
	}

	v := &Validator{schemas: make(map[string]*jsonschema.Schema)}
	for _, e := range entries {
		name := strings.TrimSuffix(e.Name(), path.Ext(e.Name()))
		b, err := fs.ReadFile(schemaFS, path.Join("schemas", e.Name()))
		if err != nil {
			return nil, fmt.Errorf("read schema %s: %w", name, err)
		}

		rs := &jsonschema.Schema{}
		if err := json.Unmarshal(b, rs); err != nil {
			return nil, fmt.Errorf("compile schema %s: %w", name, err)
		}
		v.schemas[name] = rs
	}

	return v, nil
}

// Check validates doc against the named entity schema and returns one message
// per violation. An unknown entity name is an error, not a pass.
func (v *Validator) Check(ctx context.Context, entity string, doc any) ([]string, error) {
	rs, ok := v.schemas[entity]
	if !ok {
		return nil, fmt.Errorf("no schema for entity %q", entity)
	}

	b, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", entity, err)
	}

	verrs, err := rs.ValidateBytes(ctx, b)
	if err != nil {
		return nil, fmt.Errorf("validate %s: %w", entity, err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, ve := range verrs {
		msgs = append(msgs, ve.Error())
	}
	return msgs, nil
}
