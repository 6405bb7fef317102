package eval

import (
	"errors"
	"fmt"

	"github.com/plum-lang/plum/pkg/diag"
	"github.com/plum-lang/plum/pkg/eval/errs"
	"github.com/plum-lang/plum/pkg/eval/vals"
	"github.com/plum-lang/plum/pkg/parse"
)

// Op is the compiled form of a node. It evaluates the node in an Env.
type Op func(*Env) (any, error)

// errBreak is returned by the op of a break and stops the innermost loop.
var errBreak = errors.New("break outside of a loop")

// compiler holds the state of one compilation.
type compiler struct {
	src parse.Source
}

// Compile compiles the nodes of a tree into an Op that evaluates them in
// order and returns the last value. It returns an *Exception if some node
// cannot be compiled.
func Compile(tree parse.Tree) (op Op, err error) {
	cp := &compiler{tree.Source}
	defer func() {
		r := recover()
		if r == nil {
			return
		} else if exc, ok := r.(*Exception); ok {
			err = exc
		} else {
			panic(r)
		}
	}()
	return cp.seq(tree.Nodes), nil
}

func (cp *compiler) errorf(r diag.Ranger, reason error) {
	panic(&Exception{reason, diag.NewContext(cp.src.Name, cp.src.Code, r)})
}

// exc attaches the range of r to an error returned during evaluation. Errors
// that already have a range, and the break signal, are returned as is.
func (cp *compiler) exc(r diag.Ranger, err error) error {
	if err == nil || errors.Is(err, errBreak) {
		return err
	}
	var exc *Exception
	if errors.As(err, &exc) {
		return err
	}
	return &Exception{err, diag.NewContext(cp.src.Name, cp.src.Code, r)}
}

func (cp *compiler) seq(nodes []parse.Node) Op {
	ops := cp.compileAll(nodes)
	return func(env *Env) (any, error) {
		var last any
		for _, op := range ops {
			v, err := op(env)
			if err != nil {
				return nil, err
			}
			last = v
		}
		return last, nil
	}
}

func (cp *compiler) compileAll(nodes []parse.Node) []Op {
	ops := make([]Op, len(nodes))
	for i, n := range nodes {
		ops[i] = cp.compile(n)
	}
	return ops
}

func (cp *compiler) compile(n parse.Node) Op {
	switch n := n.(type) {
	case *parse.Variable:
		return cp.variable(n)
	case *parse.Property:
		name := n.Name
		return func(env *Env) (any, error) {
			return vals.GetProperty(env.Receiver(), name), nil
		}
	case *parse.PropertyAccess:
		return cp.propertyAccess(n)
	case *parse.Assign:
		return cp.assign(n)
	case *parse.Call:
		return cp.call(n)
	case *parse.Binary:
		return cp.binary(n)
	case *parse.Flow:
		return cp.flow(n)
	case *parse.Function:
		params, body := n.Params, cp.compile(n.Body)
		return func(env *Env) (any, error) {
			return &Closure{params, body, env}, nil
		}
	case *parse.Index:
		return cp.index(n)
	case *parse.Block:
		return cp.seq(n.Body)
	case *parse.Group:
		return cp.compile(n.Inner)
	case *parse.IntLit:
		return literal(n.Value)
	case *parse.FloatLit:
		return literal(n.Value)
	case *parse.StringLit:
		return literal(n.Value)
	case *parse.BoolLit:
		return literal(n.Value)
	case *parse.List:
		ops := cp.compileAll(n.Values)
		return func(env *Env) (any, error) {
			return evalAll(env, ops)
		}
	case *parse.Tuple:
		ops := cp.compileAll(n.Values)
		return func(env *Env) (any, error) {
			values, err := evalAll(env, ops)
			return vals.Tuple(values), err
		}
	case *parse.If:
		return cp.ifOp(n)
	case *parse.For:
		return cp.forOp(n)
	case *parse.Break:
		return func(*Env) (any, error) { return nil, errBreak }
	}
	cp.errorf(n, errs.NoCompiler{NodeType: fmt.Sprintf("%T", n)})
	return nil
}

func literal(v any) Op {
	return func(*Env) (any, error) { return v, nil }
}

func evalAll(env *Env, ops []Op) ([]any, error) {
	values := make([]any, len(ops))
	for i, op := range ops {
		v, err := op(env)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}

func (cp *compiler) variable(n *parse.Variable) Op {
	name := n.Name
	return func(env *Env) (any, error) {
		if v, ok := env.Get(name); ok {
			return v, nil
		}
		return nil, cp.exc(n, errs.UnboundVariable{Name: name})
	}
}

func (cp *compiler) propertyAccess(n *parse.PropertyAccess) Op {
	target, name := cp.compile(n.Target), n.Name
	return func(env *Env) (any, error) {
		v, err := target(env)
		if err != nil {
			return nil, err
		}
		return vals.GetProperty(v, name), nil
	}
}

func (cp *compiler) assign(n *parse.Assign) Op {
	value := cp.compile(n.Value)
	set := cp.setter(n.Location, func(env *Env) *Env { return env })
	return func(env *Env) (any, error) {
		v, err := value(env)
		if err != nil {
			return nil, err
		}
		if err := set(env, v); err != nil {
			return nil, cp.exc(n, err)
		}
		return v, nil
	}
}

// setter compiles an assignment target. The scope function picks the Env that
// variables are bound in and targets of property accesses are evaluated in.
func (cp *compiler) setter(n parse.Node, scope func(*Env) *Env) func(*Env, any) error {
	switch n := n.(type) {
	case *parse.Variable:
		name := n.Name
		return func(env *Env, v any) error {
			scope(env).Set(name, v)
			return nil
		}
	case *parse.Property:
		name := n.Name
		return func(env *Env, v any) error {
			return vals.SetProperty(env.Receiver(), name, v)
		}
	case *parse.PropertyAccess:
		target, name := cp.compile(n.Target), n.Name
		return func(env *Env, v any) error {
			t, err := target(scope(env))
			if err != nil {
				return err
			}
			return vals.SetProperty(t, name, v)
		}
	}
	cp.errorf(n, errs.NotAssignable{What: nodeDescription(n)})
	return nil
}

func nodeDescription(n parse.Node) string {
	switch n.(type) {
	case *parse.IntLit, *parse.FloatLit, *parse.StringLit, *parse.BoolLit:
		return "a literal"
	case *parse.Call:
		return "a call"
	case *parse.Tuple, *parse.Group:
		return "a tuple or group"
	case *parse.List:
		return "a list"
	case *parse.Index:
		return "an index expression"
	}
	return "this expression"
}

func (cp *compiler) call(n *parse.Call) Op {
	target, args := cp.compile(n.Target), cp.compile(n.Args)
	return func(env *Env) (any, error) {
		f, err := target(env)
		if err != nil {
			return nil, err
		}
		a, err := args(env)
		if err != nil {
			return nil, err
		}
		v, err := CallSpread(f, a)
		return v, cp.exc(n, err)
	}
}

func (cp *compiler) index(n *parse.Index) Op {
	target, index := cp.compile(n.Target), cp.compile(n.Index)
	return func(env *Env) (any, error) {
		t, err := target(env)
		if err != nil {
			return nil, err
		}
		i, err := index(env)
		if err != nil {
			return nil, err
		}
		v, err := vals.Index(t, i)
		return v, cp.exc(n, err)
	}
}

type clauseOp struct{ cond, body Op }

func (cp *compiler) ifOp(n *parse.If) Op {
	clauses := []clauseOp{{cp.compile(n.If.Cond), cp.compile(n.If.Body)}}
	for _, c := range n.Elifs {
		clauses = append(clauses, clauseOp{cp.compile(c.Cond), cp.compile(c.Body)})
	}
	var elseOp Op
	if n.Else != nil {
		elseOp = cp.compile(n.Else)
	}
	return func(env *Env) (any, error) {
		for _, c := range clauses {
			cond, err := c.cond(env)
			if err != nil {
				return nil, err
			}
			if vals.Bool(cond) {
				return c.body(env)
			}
		}
		if elseOp != nil {
			return elseOp(env)
		}
		return nil, nil
	}
}

func (cp *compiler) forOp(n *parse.For) Op {
	name, iterable, body := n.Variable, cp.compile(n.Iterable), cp.compile(n.Body)
	return func(env *Env) (any, error) {
		it, err := iterable(env)
		if err != nil {
			return nil, err
		}
		var last any
		err = vals.Iterate(it, func(v any) error {
			env.Set(name, v)
			v, err := body(env)
			if err != nil {
				return err
			}
			last = v
			return nil
		})
		if errors.Is(err, errBreak) {
			return last, nil
		}
		return last, cp.exc(n, err)
	}
}
