// Released under an MIT license. See LICENSE.

package executor

import (
	"github.com/michaelmacinnis/lisa/internal/common/interface/cell"
	"github.com/michaelmacinnis/lisa/internal/common/interface/literal"
	"github.com/michaelmacinnis/lisa/internal/common/struct/fault"
	"github.com/michaelmacinnis/lisa/internal/common/type/env"
	"github.com/michaelmacinnis/lisa/internal/common/type/lazy"
	"github.com/michaelmacinnis/lisa/internal/common/type/list"
	"github.com/michaelmacinnis/lisa/internal/common/type/sym"
	"github.com/michaelmacinnis/lisa/internal/common/validate"
)

// Applicative is the operation behind a closure. It receives forced values.
type Applicative func(x *T, args []cell.I) cell.I

// Fexpr is the operation behind an operative. It receives unevaluated forms.
type Fexpr func(x *T, forms []cell.I) cell.I

// Routine underlies the closure and operative types.
type Routine struct {
	Body   cell.I   // Body of a user-defined routine. Nil for builtins.
	Label  string   // Name of a builtin.
	Params cell.I   // Parameter list as written.
	Scope  *env.T   // Frame captured at definition.
	names  []string // Parameter names.
}

// Builtin returns true if r is implemented in Go.
func (r *Routine) Builtin() bool {
	return r.Body == nil
}

func (r *Routine) arity(args []cell.I) {
	if r.Builtin() || len(args) == len(r.names) {
		return
	}

	fault.Raise(
		fault.ArityError, "expected %s, passed %d",
		validate.Count(len(r.names), "argument", "s"), len(args),
	)
}

// bind creates a fresh copy of r's captured frame holding args.
func (r *Routine) bind(args []cell.I) *env.T {
	frame := r.Scope.Clone()

	for i, k := range r.names {
		frame.Push(k, args[i])
	}

	return frame
}

func (r *Routine) literal(kind string) string {
	if r.Builtin() {
		return "(builtin " + r.Label + ")"
	}

	return "(" + kind + " " + literal.String(r.Params) + " " + literal.String(r.Body) + ")"
}

// Closure is lisa's arguments-evaluated callable type.
type Closure struct {
	Routine
	Op Applicative
}

// NewBuiltin creates a closure implemented by op.
func NewBuiltin(label string, op Applicative) *Closure {
	return &Closure{Routine: Routine{Label: label}, Op: op}
}

// Lambda creates a closure over scope. Each application binds params in a
// fresh frame that descends from scope and evaluates body there.
func Lambda(scope *env.T, params, body cell.I) *Closure {
	c := &Closure{Routine: routine("lambda", scope.Descendant("lambda"), params, body)}

	c.Op = func(_ *T, args []cell.I) cell.I {
		return New(c.bind(args)).Evaluate(body)
	}

	c.Scope.SetOwner(c)

	return c
}

// Apply calls c with the already evaluated args.
func (c *Closure) Apply(x *T, args []cell.I) cell.I {
	c.arity(args)

	return c.Op(x, args)
}

// Equal returns true if d is the same closure as c.
func (c *Closure) Equal(d cell.I) bool {
	p, ok := d.(*Closure)

	return ok && p == c
}

// Kind returns cell.Closure.
func (c *Closure) Kind() cell.Kind {
	return cell.Closure
}

// Literal returns the literal representation of the closure c.
func (c *Closure) Literal() string {
	return c.literal("lambda")
}

// Name returns the name of the closure type.
func (c *Closure) Name() string {
	return "closure"
}

// String returns the text representation of the closure c.
func (c *Closure) String() string {
	return c.Literal()
}

// Operative is lisa's arguments-not-evaluated callable type.
type Operative struct {
	Routine
	Op Fexpr
}

// NewSyntax creates an operative implemented by op.
func NewSyntax(label string, op Fexpr) *Operative {
	return &Operative{Routine: Routine{Label: label}, Op: op}
}

// Macro creates an operative whose frame descends from the root above
// scope. Each argument is evaluated in the caller's frame and bound in a
// fresh copy of the macro's frame before body is evaluated there.
func Macro(scope *env.T, params, body cell.I) *Operative {
	o := &Operative{
		Routine: routine("macro", scope.TopmostAncestor().Descendant("macro"), params, body),
	}

	o.Op = func(x *T, forms []cell.I) cell.I {
		args := make([]cell.I, len(forms))
		for i, f := range forms {
			args[i] = lazy.Force(x.Evaluate(f))
		}

		return New(o.bind(args)).Evaluate(body)
	}

	o.Scope.SetOwner(o)

	return o
}

// Apply calls o with unevaluated forms.
func (o *Operative) Apply(x *T, forms []cell.I) cell.I {
	o.arity(forms)

	return o.Op(x, forms)
}

// Equal returns true if c is the same operative as o.
func (o *Operative) Equal(c cell.I) bool {
	p, ok := c.(*Operative)

	return ok && p == o
}

// Kind returns cell.Operative.
func (o *Operative) Kind() cell.Kind {
	return cell.Operative
}

// Literal returns the literal representation of the operative o.
func (o *Operative) Literal() string {
	return o.literal("macro")
}

// Name returns the name of the operative type.
func (o *Operative) Name() string {
	return "operative"
}

// String returns the text representation of the operative o.
func (o *Operative) String() string {
	return o.Literal()
}

// Parameters returns the names in params, a sequence of symbols.
func Parameters(params cell.I) []string {
	validate.Kind(params, "parameter list", cell.Sequence)

	elements := list.To(params).Elements()

	names := make([]string, len(elements))
	for i, p := range elements {
		names[i] = sym.To(validate.Kind(p, "parameter name", cell.Symbol)).String()
	}

	return names
}

func routine(label string, scope *env.T, params, body cell.I) Routine {
	return Routine{
		Body:   body,
		Label:  label,
		Params: params,
		Scope:  scope,
		names:  Parameters(params),
	}
}

// A compiler-checked list of interfaces these types satisfy. Never called.
func implements() { //nolint:deadcode,unused
	var c Closure

	// The closure type is a cell.
	_ = cell.I(&c)

	// The closure type has a literal representation.
	_ = literal.I(&c)

	var o Operative

	// The operative type is a cell.
	_ = cell.I(&o)

	// The operative type has a literal representation.
	_ = literal.I(&o)
}
