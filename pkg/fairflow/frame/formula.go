package frame

import (
	"strings"

	"github.com/pkg/errors"
)

var ErrMalformedFormula = errors.New("formula must look like \"response ~ term [+ term ...]\"")

// Formula is a parsed R-style model formula.
type Formula struct {
	Response string
	Terms    []string
}

// ParseFormula parses expressions such as "y ~ x1 + x2". Whitespace around
// the response and terms is ignored. Interaction and transformation syntax
// is not supported.
func ParseFormula(raw string) (*Formula, error) {
	parts := strings.Split(raw, "~")
	if len(parts) != 2 {
		return nil, errors.Wrapf(ErrMalformedFormula, "%q", raw)
	}

	response := strings.TrimSpace(parts[0])
	if response == "" {
		return nil, errors.Wrapf(ErrMalformedFormula, "%q has no response", raw)
	}

	var terms []string
	for _, term := range strings.Split(parts[1], "+") {
		term = strings.TrimSpace(term)
		if term == "" {
			return nil, errors.Wrapf(ErrMalformedFormula, "%q has an empty term", raw)
		}
		terms = append(terms, term)
	}

	return &Formula{Response: response, Terms: terms}, nil
}

// String renders the formula back to its R-style form.
func (f *Formula) String() string {
	return f.Response + " ~ " + strings.Join(f.Terms, " + ")
}
