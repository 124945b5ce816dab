package fairflow

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMessages(t *testing.T) {
	testCases := map[string]struct {
		err      error
		expected string
	}{
		"missing input": {
			err:      &MissingInputError{Stage: "train", Field: "formula"},
			expected: `train stage: missing required input "formula"`,
		},
		"configuration": {
			err:      &ConfigurationError{Stage: "train", Reason: "normalized training data requested but not supplied"},
			expected: "train stage: normalized training data requested but not supplied",
		},
		"validation without fields": {
			err:      &ValidationError{Stage: "eval", Reason: "no observations"},
			expected: "eval stage: no observations",
		},
		"validation with fields": {
			err:      &ValidationError{Stage: "eval", Fields: []string{"gender", "age"}, Reason: "protected attributes must hold exactly two distinct values"},
			expected: "eval stage: invalid fields [gender, age]: protected attributes must hold exactly two distinct values",
		},
		"engine": {
			err:      &EngineError{Stage: "train", Engine: "leastsquares", Err: errors.New("singular matrix")},
			expected: `train stage: engine "leastsquares" failed: singular matrix`,
		},
	}

	for name, tc := range testCases {
		tc := tc
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.err.Error())
		})
	}
}

func TestEngineErrorUnwrap(t *testing.T) {
	cause := errors.New("singular matrix")
	err := &EngineError{Stage: "train", Engine: "leastsquares", Err: cause}

	require.ErrorIs(t, err, cause)

	var engErr *EngineError
	require.ErrorAs(t, error(err), &engErr)
	assert.Equal(t, "leastsquares", engErr.Engine)
}
