package placeholder

import (
	"errors"
	"fmt"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

var errEmptyExpr = errors.New("placeholder expression is empty")

// ExprPredicate evaluates a compiled boolean expression with the span bound
// to the variable `text`, e.g.
//
//	text startsWith "{{" && text endsWith "}}"
type ExprPredicate struct {
	source  string
	program *vm.Program
}

func Expr(source string) (*ExprPredicate, error) {
	source = strings.TrimSpace(source)
	if source == "" {
		return nil, errEmptyExpr
	}

	program, err := expr.Compile(source, expr.Env(exprEnv("")), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("compile placeholder expression: %w", err)
	}

	return &ExprPredicate{source: source, program: program}, nil
}

// IsPlaceholder treats an evaluation error as "not a placeholder" so a bad
// span is tracked rather than silently lost.
func (p *ExprPredicate) IsPlaceholder(span string) bool {
	out, err := expr.Run(p.program, exprEnv(span))
	if err != nil {
		return false
	}

	matched, ok := out.(bool)
	return ok && matched
}

func (p *ExprPredicate) String() string {
	return p.source
}

func exprEnv(span string) map[string]any {
	return map[string]any{"text": span}
}
