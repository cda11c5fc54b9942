// Package filter compiles boolean expressions and applies them to the items
// of a clan-search or ranking response. Items are generic JSON objects; the
// expression language is expr (https://expr-lang.org), so filters like
//
//	clanLevel >= 10 && members > 30
//	lower(name) contains "war"
//
// work against whatever fields the API returned. Filtering happens entirely
// on the caller's side, after the response has been received.
package filter

import (
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Item is one element of a response's items array.
type Item = map[string]any

// Filter is a compiled boolean expression.
type Filter struct {
	expression string
	program    *vm.Program
}

// Compile compiles an expression into a reusable Filter. The expression must
// evaluate to a boolean; unknown identifiers resolve against the item at
// evaluation time.
func Compile(expression string) (*Filter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "empty expression",
		}
	}

	program, err := expr.Compile(expression,
		expr.Env(helperFunctions()),
		expr.AllowUndefinedVariables(), // item fields are not known statically
		expr.AsBool(),
	)
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "failed to compile expression",
			Err:        err,
		}
	}

	return &Filter{
		expression: expression,
		program:    program,
	}, nil
}

// Expression returns the source expression.
func (f *Filter) Expression() string {
	return f.expression
}

// Match evaluates the filter against a single item.
func (f *Filter) Match(item Item) (bool, error) {
	env := make(map[string]any, len(item)+4)
	for k, v := range helperFunctions() {
		env[k] = v
	}
	for k, v := range item {
		env[k] = v
	}

	result, err := expr.Run(f.program, env)
	if err != nil {
		return false, &EvaluationError{
			Expression: f.expression,
			Reason:     "failed to evaluate expression",
			Err:        err,
		}
	}

	matched, ok := result.(bool)
	if !ok {
		return false, &EvaluationError{
			Expression: f.expression,
			Reason:     "expression did not return a boolean",
		}
	}

	return matched, nil
}

// Apply returns the items the filter matches, preserving order.
func (f *Filter) Apply(items []Item) ([]Item, error) {
	var matched []Item
	for _, item := range items {
		ok, err := f.Match(item)
		if err != nil {
			return nil, err
		}
		if ok {
			matched = append(matched, item)
		}
	}
	return matched, nil
}

// helperFunctions returns convenience functions available inside expressions.
func helperFunctions() map[string]any {
	return map[string]any{
		"lower": strings.ToLower,
		"upper": strings.ToUpper,
		"has": func(item map[string]any, key string) bool {
			_, ok := item[key]
			return ok
		},
	}
}
