package models

import "encoding/json"

// PayloadKind names the envelope field that carries a tool's payload.
type PayloadKind string

const (
	PayloadNone         PayloadKind = ""
	PayloadItem         PayloadKind = "item"
	PayloadItems        PayloadKind = "items"
	PayloadSecret       PayloadKind = "secret"
	PayloadDaysToExpiry PayloadKind = "daysToExpiry"
)

// Result is the envelope every tool handler returns. A failed Result never
// carries a payload.
type Result struct {
	Success bool
	Message string
	Kind    PayloadKind
	Payload any
}

// Succeeded builds a successful envelope carrying payload under kind.
func Succeeded(message string, kind PayloadKind, payload any) Result {
	return Result{Success: true, Message: message, Kind: kind, Payload: payload}
}

// Failed builds a failure envelope.
func Failed(message string) Result {
	return Result{Success: false, Message: message}
}

type wireResult struct {
	Success      bool    `json:"success"`
	Message      string  `json:"message"`
	Item         any     `json:"item,omitempty"`
	Items        *[]any  `json:"items,omitempty"`
	Secret       *string `json:"secret,omitempty"`
	DaysToExpiry *int    `json:"daysToExpiry,omitempty"`
}

func (r Result) MarshalJSON() ([]byte, error) {
	w := wireResult{Success: r.Success, Message: r.Message}
	if !r.Success {
		return json.Marshal(w)
	}

	switch r.Kind {
	case PayloadItem:
		w.Item = r.Payload
	case PayloadItems:
		items, _ := r.Payload.([]any)
		if items == nil {
			items = []any{}
		}
		w.Items = &items
	case PayloadSecret:
		if s, ok := r.Payload.(string); ok {
			w.Secret = &s
		}
	case PayloadDaysToExpiry:
		if d, ok := r.Payload.(int); ok {
			w.DaysToExpiry = &d
		}
	}
	return json.Marshal(w)
}

// Text renders the envelope the way it is returned to MCP clients.
func (r Result) Text() (string, error) {
	b, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// CallResult is what the dispatcher hands to the transport: a single text
// block, flagged when the call could not be routed or blew up.
type CallResult struct {
	Text    string
	IsError bool
}
