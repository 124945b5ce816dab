package fairflow

import (
	"fmt"
	"strings"
)

// MissingInputError reports a required field absent from a stage's control
// sub-record. It is fatal to the stage invocation and never retried; the
// engine is not invoked.
type MissingInputError struct {
	Stage string
	Field string
}

func (e *MissingInputError) Error() string {
	return fmt.Sprintf("%s stage: missing required input %q", e.Stage, e.Field)
}

// ConfigurationError reports a requested data variant or format that is
// not available. Data-selection configuration errors propagate; export
// format mismatches are downgraded to a failure envelope by the publish
// wrapper.
type ConfigurationError struct {
	Stage  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s stage: %s", e.Stage, e.Reason)
}

// ValidationError reports a domain invariant violation, listing the
// offending fields. Fatal to the stage invocation.
type ValidationError struct {
	Stage  string
	Fields []string
	Reason string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return fmt.Sprintf("%s stage: %s", e.Stage, e.Reason)
	}

	return fmt.Sprintf("%s stage: invalid fields [%s]: %s", e.Stage, strings.Join(e.Fields, ", "), e.Reason)
}

// EngineError wraps a computational or I/O failure raised inside an engine
// invocation, keeping the stage and engine alias it happened in.
type EngineError struct {
	Stage  string
	Engine string
	Err    error
}

func (e *EngineError) Error() string {
	return fmt.Sprintf("%s stage: engine %q failed: %v", e.Stage, e.Engine, e.Err)
}

func (e *EngineError) Unwrap() error {
	return e.Err
}
