// Package execution exposes workflow node parameters and input items to operations.
package execution

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"evolution-connector/internal/domain/dto"
)

// ParameterError is returned when a node parameter cannot be resolved.
type ParameterError struct {
	Name   string
	Reason string
}

// Missing reports whether the parameter was simply not set.
func (e *ParameterError) Missing() bool {
	return e.Reason == ""
}

func (e *ParameterError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("Could not get parameter %q", e.Name)
	}
	return fmt.Sprintf("Could not get parameter %q: %s", e.Name, e.Reason)
}

// Context is a single node execution: its resolved parameters, the items
// flowing into it and the host's continue-on-fail setting.
type Context struct {
	parameters     map[string]any
	items          []dto.Item
	continueOnFail bool
}

func NewContext(parameters map[string]any, items []dto.Item, continueOnFail bool) *Context {
	if parameters == nil {
		parameters = map[string]any{}
	}
	if len(items) == 0 {
		items = []dto.Item{{}}
	}
	return &Context{parameters: parameters, items: items, continueOnFail: continueOnFail}
}

func (c *Context) InputData() []dto.Item {
	return c.items
}

func (c *Context) ContinueOnFail() bool {
	return c.continueOnFail
}

// StringParameter returns a required scalar parameter as a string.
func (c *Context) StringParameter(name string, itemIndex int) (string, error) {
	value, found, err := c.lookup(name, itemIndex)
	if err != nil {
		return "", err
	}
	if !found || value == nil {
		return "", &ParameterError{Name: name}
	}

	switch v := value.(type) {
	case string:
		return v, nil
	case json.Number:
		return v.String(), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case bool:
		return strconv.FormatBool(v), nil
	default:
		return "", &ParameterError{Name: name, Reason: fmt.Sprintf("expected a string, got %T", value)}
	}
}

// BoolParameter returns fallback when the parameter is absent.
func (c *Context) BoolParameter(name string, itemIndex int, fallback bool) (bool, error) {
	value, found, err := c.lookup(name, itemIndex)
	if err != nil {
		return fallback, err
	}
	if !found || value == nil {
		return fallback, nil
	}

	v, ok := value.(bool)
	if !ok {
		return fallback, &ParameterError{Name: name, Reason: fmt.Sprintf("expected a boolean, got %T", value)}
	}
	return v, nil
}

// DecodeParameter decodes an object or collection parameter into out.
// out is left untouched when the parameter is absent, so callers seed it
// with their fallback value.
func (c *Context) DecodeParameter(name string, itemIndex int, out any) error {
	value, found, err := c.lookup(name, itemIndex)
	if err != nil {
		return err
	}
	if !found || value == nil {
		return nil
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return &ParameterError{Name: name, Reason: err.Error()}
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &ParameterError{Name: name, Reason: err.Error()}
	}
	return nil
}

// lookup resolves a dotted name such as "sectionsAuto.sectionValuesAuto".
func (c *Context) lookup(name string, itemIndex int) (any, bool, error) {
	if itemIndex < 0 || itemIndex >= len(c.items) {
		return nil, false, &ParameterError{Name: name, Reason: fmt.Sprintf("item index %d out of range", itemIndex)}
	}

	var current any = c.parameters
	for _, key := range strings.Split(name, ".") {
		object, ok := current.(map[string]any)
		if !ok {
			return nil, false, nil
		}
		current, ok = object[key]
		if !ok {
			return nil, false, nil
		}
	}
	return current, true, nil
}
