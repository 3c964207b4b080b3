package service

import (
	"bytes"
	"embed"
	"errors"
	"fmt"

	"github.com/aussiebroadwan/ngxblog/internal/blog/domain"
	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed schemas/*.json
var schemaFS embed.FS

// Schemas holds one compiled JSON Schema per collection.
type Schemas struct {
	byCollection map[domain.Collection]*jsonschema.Schema
}

// LoadSchemas compiles the embedded collection schemas.
func LoadSchemas() (*Schemas, error) {
	c := jsonschema.NewCompiler()
	s := &Schemas{byCollection: make(map[domain.Collection]*jsonschema.Schema, len(domain.Collections))}

	for _, coll := range domain.Collections {
		name := coll.String() + ".json"
		raw, err := schemaFS.ReadFile("schemas/" + name)
		if err != nil {
			return nil, fmt.Errorf("read schema %s: %w", name, err)
		}
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
		if err != nil {
			return nil, fmt.Errorf("parse schema %s: %w", name, err)
		}
		if err := c.AddResource(name, doc); err != nil {
			return nil, fmt.Errorf("add schema %s: %w", name, err)
		}
		sch, err := c.Compile(name)
		if err != nil {
			return nil, fmt.Errorf("compile schema %s: %w", name, err)
		}
		s.byCollection[coll] = sch
	}
	return s, nil
}

// Validate checks data against the schema of c and converts failures to a
// *ValidationError keyed by top-level field.
func (s *Schemas) Validate(c domain.Collection, data map[string]any) error {
	sch, ok := s.byCollection[c]
	if !ok {
		return fmt.Errorf("no schema for collection %q", c)
	}

	err := sch.Validate(map[string]any(data))
	if err == nil {
		return nil
	}

	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return err
	}

	fields := map[string]string{}
	collectLeaves(ve, fields)
	if len(fields) == 0 {
		fields["document"] = "is invalid"
	}
	return &ValidationError{Fields: fields}
}

func collectLeaves(ve *jsonschema.ValidationError, into map[string]string) {
	if len(ve.Causes) == 0 {
		field := "document"
		if len(ve.InstanceLocation) > 0 {
			field = ve.InstanceLocation[0]
		}
		if _, seen := into[field]; !seen {
			into[field] = "is invalid"
		}
		return
	}
	for _, c := range ve.Causes {
		collectLeaves(c, into)
	}
}
