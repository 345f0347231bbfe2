package tools

import (
	"context"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/cortexai/cosmosdb-mcp/internal/models"
	"github.com/cortexai/cosmosdb-mcp/internal/security"
	"github.com/rs/zerolog/log"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Dispatcher routes named tool calls to their handlers. Call never panics
// and never returns an error; every outcome is a models.CallResult.
type Dispatcher struct {
	tools      []Tool
	byName     map[string]Tool
	validators map[string]*jsonschema.Schema
	audit      *security.AuditLogger
}

// NewDispatcher indexes tools by name and compiles their input shapes.
// Duplicate names are rejected.
func NewDispatcher(audit *security.AuditLogger, tools ...Tool) (*Dispatcher, error) {
	d := &Dispatcher{
		tools:      tools,
		byName:     make(map[string]Tool, len(tools)),
		validators: make(map[string]*jsonschema.Schema, len(tools)),
		audit:      audit,
	}

	for _, t := range tools {
		if _, exists := d.byName[t.Name]; exists {
			return nil, fmt.Errorf("tool %s registered twice", t.Name)
		}
		schema, err := compileInputSchema(t.Descriptor)
		if err != nil {
			return nil, err
		}
		d.byName[t.Name] = t
		d.validators[t.Name] = schema
	}
	return d, nil
}

// Tools returns the registered tools in registration order
func (d *Dispatcher) Tools() []Tool {
	out := make([]Tool, len(d.tools))
	copy(out, d.tools)
	return out
}

// Call invokes the named tool with args.
func (d *Dispatcher) Call(ctx context.Context, name string, args map[string]any) (res models.CallResult) {
	tool, ok := d.byName[name]
	if !ok {
		log.Warn().Str("tool", name).Msg("unknown tool")
		return models.CallResult{Text: fmt.Sprintf("Unknown tool: %s", name), IsError: true}
	}

	start := time.Now()
	defer func() {
		if rec := recover(); rec != nil {
			log.Error().
				Interface("panic", rec).
				Str("stack", string(debug.Stack())).
				Str("tool", name).
				Msg("panic recovered")
			d.audit.LogToolCall(name, args, false, time.Since(start))
			res = models.CallResult{Text: fmt.Sprintf("Error occurred: %v", rec), IsError: true}
		}
	}()

	result := d.execute(ctx, tool, args)
	d.audit.LogToolCall(name, args, result.Success, time.Since(start))

	text, err := result.Text()
	if err != nil {
		log.Error().Err(err).Str("tool", name).Msg("failed to encode result")
		return models.CallResult{Text: fmt.Sprintf("Error occurred: %v", err), IsError: true}
	}
	return models.CallResult{Text: text}
}

func (d *Dispatcher) execute(ctx context.Context, tool Tool, args map[string]any) models.Result {
	input, err := normalizeArguments(args)
	if err != nil {
		return models.Failed(fmt.Sprintf("Invalid arguments for %s: %v", tool.Name, err))
	}

	if err := d.validators[tool.Name].Validate(input); err != nil {
		detail := describeValidation(err)
		log.Warn().Str("tool", tool.Name).Str("detail", detail).Msg("invalid arguments")
		return models.Failed(fmt.Sprintf("Invalid arguments for %s: %s", tool.Name, detail))
	}

	return tool.Execute(ctx, input)
}
