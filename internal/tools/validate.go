package tools

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// compileInputSchema compiles a descriptor's input shape into a validator
func compileInputSchema(d Descriptor) (*jsonschema.Schema, error) {
	b, err := json.Marshal(d.InputSchema())
	if err != nil {
		return nil, fmt.Errorf("marshal %s schema: %w", d.Name, err)
	}

	url := d.Name + ".json"
	c := jsonschema.NewCompiler()
	if err := c.AddResource(url, bytes.NewReader(b)); err != nil {
		return nil, fmt.Errorf("add %s schema: %w", d.Name, err)
	}

	schema, err := c.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile %s schema: %w", d.Name, err)
	}
	return schema, nil
}

// describeValidation flattens a validation error to its leaf messages,
// e.g. "missing properties: 'id'; /updates: expected object, but got string".
func describeValidation(err error) string {
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return err.Error()
	}

	var msgs []string
	var walk func(e *jsonschema.ValidationError)
	walk = func(e *jsonschema.ValidationError) {
		if len(e.Causes) == 0 {
			if e.InstanceLocation == "" {
				msgs = append(msgs, e.Message)
			} else {
				msgs = append(msgs, e.InstanceLocation+": "+e.Message)
			}
			return
		}
		for _, c := range e.Causes {
			walk(c)
		}
	}
	walk(ve)

	return strings.Join(msgs, "; ")
}
