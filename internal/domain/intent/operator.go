package intent

import (
	"fmt"
	"strings"

	"github.com/Paurakh977/HomeStay-MCP/internal/domain"
)

// Operator selects how feature tokens combine in the final predicate.
type Operator string

const (
	// OperatorAnd requires every MUST token to match.
	OperatorAnd Operator = "AND"
	// OperatorOr turns every token into an independent OR branch.
	OperatorOr Operator = "OR"
	// OperatorMixed forces the cross-category grouping strategy even when
	// only one category is populated.
	OperatorMixed Operator = "MIXED"
)

// ParseOperator parses a caller-supplied operator string. The empty string
// returns a nil operator, meaning "no preference".
func ParseOperator(s string) (*Operator, error) {
	if s == "" {
		return nil, nil
	}
	op := Operator(strings.ToUpper(strings.TrimSpace(s)))
	switch op {
	case OperatorAnd, OperatorOr, OperatorMixed:
		return &op, nil
	}
	return nil, fmt.Errorf("%w: unknown logical operator %q", domain.ErrValidation, s)
}
