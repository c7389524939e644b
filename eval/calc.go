package eval

import (
	"fmt"
	"os"

	"github.com/signadot/foamdict/gomap"
	"github.com/signadot/foamdict/ir"

	"github.com/expr-lang/expr"
)

// Env holds the variables of an expression by key name.
type Env = map[string]any

// Calc evaluates expression in the scope of n. The keys of n and of its
// enclosing dictionaries are variables, inner ones shadowing outer
// ones; getpath, whereami and getenv are available as functions.
func Calc(n *ir.Node, expression string) (any, error) {
	env := ScopeEnv(n)
	prg, err := expr.Compile(expression, append(exprOpts(n), expr.Env(env))...)
	if err != nil {
		return nil, err
	}
	return expr.Run(prg, env)
}

// ScopeEnv collects the keys visible from n as expression variables.
func ScopeEnv(n *ir.Node) Env {
	env := Env{}
	for s := n; s != nil; s = Enclosing(s) {
		for _, k := range s.Keys() {
			if _, ok := env[k.Name()]; ok {
				continue
			}
			env[k.Name()] = gomap.KeyAny(k)
		}
	}
	return env
}

func exprOpts(n *ir.Node) []expr.Option {
	return []expr.Option{
		expr.Function("whereami", func(params ...any) (any, error) {
			return ir.ItemPath(n), nil
		},
			new(func() string)),
		expr.Function("getpath", func(params ...any) (any, error) {
			path := params[0].(string)
			res, err := ir.GetPath(root(n), path)
			if err != nil {
				return nil, err
			}
			k, ok := res.(*ir.Key)
			if !ok {
				return nil, fmt.Errorf("%w: %s is not a key", ErrUndefined, path)
			}
			return gomap.KeyAny(k), nil
		},
			new(func(string) any)),
		expr.Function("getenv", func(params ...any) (any, error) {
			return os.Getenv(params[0].(string)), nil
		},
			new(func(string) string)),
	}
}

func root(n *ir.Node) *ir.Node {
	for p := Enclosing(n); p != nil; p = Enclosing(p) {
		n = p
	}
	return n
}
