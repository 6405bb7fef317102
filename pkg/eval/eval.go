// Package eval compiles and evaluates Plum code.
//
// Each node of a parsed tree is compiled once into an Op, a closure that takes
// an Env and returns a value. Evaluation failures are returned as *Exception
// values carrying the source range of the failing node.
package eval

import (
	"errors"

	"github.com/dgraph-io/ristretto/v2"
	"github.com/zeebo/blake3"

	"github.com/plum-lang/plum/pkg/logutil"
	"github.com/plum-lang/plum/pkg/parse"
)

var logger = logutil.GetLogger("[eval] ")

// Module is a named set of bindings installed in the root Env of an Evaler.
type Module struct {
	Name     string
	Bindings map[string]any
}

// Evaler holds the state of an interpreter: a root Env with the bindings of
// modules, a global Env for user code, and a cache of compiled code.
type Evaler struct {
	root    *Env
	global  *Env
	modules []string
	cache   *ristretto.Cache[string, *compiled]
}

type compiled struct {
	op        Op
	syntaxErr error
}

// NewEvaler creates an Evaler with the given modules. Bindings of later
// modules replace bindings of the same name from earlier ones.
func NewEvaler(mods ...Module) *Evaler {
	root := NewEnv()
	var names []string
	for _, mod := range mods {
		for name, v := range mod.Bindings {
			root.Set(name, v)
		}
		names = append(names, mod.Name)
	}
	cache, err := ristretto.NewCache(&ristretto.Config[string, *compiled]{
		NumCounters: 1 << 12,
		MaxCost:     1 << 8,
		BufferItems: 64,
	})
	if err != nil {
		// Only possible with an invalid config.
		panic(err)
	}
	return &Evaler{root, root.Branch(false), names, cache}
}

// Global returns the Env that top-level code is evaluated in.
func (ev *Evaler) Global() *Env { return ev.global }

// Modules returns the names of the modules installed in the Evaler.
func (ev *Evaler) Modules() []string { return ev.modules }

// Close releases the resources of the Evaler.
func (ev *Evaler) Close() { ev.cache.Close() }

// Eval parses, compiles and evaluates code in the global Env, and returns the
// value of the last top-level expression.
//
// Parsing stops at the first syntax error; the nodes before it are still
// evaluated, and the syntax error is returned along with their value after
// evaluation succeeds.
func (ev *Evaler) Eval(src parse.Source) (any, error) {
	c, err := ev.compile(src)
	if err != nil {
		return nil, err
	}
	v, err := c.op(ev.global)
	if err != nil {
		if errors.Is(err, errBreak) {
			return nil, &Exception{Reason: errBreak}
		}
		return nil, err
	}
	return v, c.syntaxErr
}

func (ev *Evaler) compile(src parse.Source) (*compiled, error) {
	sum := blake3.Sum256([]byte(src.Name + "\x00" + src.Code))
	key := string(sum[:])
	if c, ok := ev.cache.Get(key); ok {
		logger.Debugf("compile cache hit for %s", src.Name)
		return c, nil
	}
	tree, syntaxErr := parse.Parse(src)
	op, err := Compile(tree)
	if err != nil {
		return nil, err
	}
	c := &compiled{op, syntaxErr}
	ev.cache.Set(key, c, 1)
	return c, nil
}
