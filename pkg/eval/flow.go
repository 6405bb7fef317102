package eval

import (
	"github.com/plum-lang/plum/pkg/eval/errs"
	"github.com/plum-lang/plum/pkg/eval/vals"
	"github.com/plum-lang/plum/pkg/parse"
	"github.com/plum-lang/plum/pkg/stream"
)

func (cp *compiler) flow(n *parse.Flow) Op {
	from := cp.compile(n.From)
	switch n.Kind {
	case parse.Pipe:
		return cp.receiverFlow(n, from, func(up *stream.Stream, to any) (any, error) {
			step, err := stepOf(to)
			if err != nil {
				return nil, err
			}
			return stream.New(up, step, nil), nil
		})
	case parse.Map:
		return cp.receiverFlow(n, from, func(up *stream.Stream, f any) (any, error) {
			return stream.New(up, func(src stream.Source, _ stream.State) (any, error) {
				v, err := src.Next()
				if err != nil {
					return nil, err
				}
				return endOnBreak(CallSpread(f, v))
			}, nil), nil
		})
	case parse.Read:
		return cp.receiverFlow(n, from, func(up *stream.Stream, f any) (any, error) {
			var results []any
			err := stream.ForEach(up, func(v any) error {
				r, err := CallSpread(f, v)
				results = append(results, r)
				return err
			})
			if err != nil {
				return nil, err
			}
			return stream.FromSlice(results), nil
		})
	case parse.Write:
		return cp.write(n, from)
	case parse.Pop:
		return func(env *Env) (any, error) {
			v, err := from(env)
			if err != nil {
				return nil, err
			}
			v, err = toStream(v).Next()
			return v, cp.exc(n, err)
		}
	}
	cp.errorf(n, errs.NoCompiler{NodeType: n.Kind.String() + " flow"})
	return nil
}

// receiverFlow compiles a flow whose right side is evaluated with the left
// stream as the implicit receiver, in a scope whose assignments do not leak.
func (cp *compiler) receiverFlow(n *parse.Flow, from Op, build func(up *stream.Stream, to any) (any, error)) Op {
	to := cp.compile(n.To)
	return func(env *Env) (any, error) {
		v, err := from(env)
		if err != nil {
			return nil, err
		}
		up := toStream(v)
		inner := env.Outer().Branch(true)
		inner.This = up
		t, err := to(inner)
		if err != nil {
			return nil, err
		}
		result, err := build(up, t)
		return result, cp.exc(n, err)
	}
}

// write drains the left stream into a list and stores it in the target. A
// variable target is bound in the outer scope.
func (cp *compiler) write(n *parse.Flow, from Op) Op {
	set := cp.setter(n.To, (*Env).Outer)
	return func(env *Env) (any, error) {
		v, err := from(env)
		if err != nil {
			return nil, err
		}
		values, err := stream.Collect(toStream(v))
		if err != nil {
			return nil, cp.exc(n, err)
		}
		if values == nil {
			values = []any{}
		}
		return nil, cp.exc(n, set(env, values))
	}
}

// toStream coerces the left side of a flow to a stream. Tuples are streams of
// their elements.
func toStream(v any) *stream.Stream {
	if t, ok := v.(vals.Tuple); ok {
		return stream.FromSlice(t)
	}
	return stream.From(v)
}
