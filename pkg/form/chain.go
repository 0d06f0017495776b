package form

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/dshills/formflow/pkg/focus"
	"github.com/dshills/formflow/pkg/widget"
)

// member pairs a widget with its compiled skip condition.
type member struct {
	input *widget.Input
	skip  *vm.Program // nil when the field has no skip_if
}

// Chain is a focus.ChainProvider over a definition's field order.
//
// Membership is decided at traversal time: a field whose skip_if
// expression evaluates true against the current form values is not a
// chain member. Traversal is positional over a fixed slice, so it is
// finite by construction.
type Chain struct {
	members []member
}

// NewChain binds a definition to its instantiated widgets, positionally.
// skip_if expressions are compiled once, here.
func NewChain(def *Definition, inputs []*widget.Input) (*Chain, error) {
	if len(inputs) != len(def.Fields) {
		return nil, fmt.Errorf("definition has %d fields but %d widgets were supplied", len(def.Fields), len(inputs))
	}

	ch := &Chain{members: make([]member, 0, len(inputs))}
	for i, f := range def.Fields {
		m := member{input: inputs[i]}
		if f.SkipIf != "" {
			prog, err := expr.Compile(f.SkipIf, expr.AsBool(), expr.AllowUndefinedVariables())
			if err != nil {
				return nil, fmt.Errorf("field %q: invalid skip_if expression: %w", f.ID, err)
			}
			m.skip = prog
		}
		ch.members = append(ch.members, m)
	}
	return ch, nil
}

// Build instantiates widgets for every field of the definition and
// binds them into a chain. Secret fields become masked inputs.
func Build(def *Definition) ([]*widget.Input, *Chain, error) {
	inputs := make([]*widget.Input, 0, len(def.Fields))
	for _, f := range def.Fields {
		var in *widget.Input
		if f.Secret() {
			in = widget.NewMaskedInput(f.Label)
		} else {
			in = widget.NewInput(f.Label)
		}
		in.SetID(f.ID)
		inputs = append(inputs, in)
	}
	ch, err := NewChain(def, inputs)
	if err != nil {
		return nil, nil, err
	}
	return inputs, ch, nil
}

// Widgets returns the bound widgets in definition order, including
// ones currently skipped.
func (ch *Chain) Widgets() []*widget.Input {
	ws := make([]*widget.Input, len(ch.members))
	for i, m := range ch.members {
		ws[i] = m.input
	}
	return ws
}

// First implements focus.ChainProvider.
func (ch *Chain) First(*focus.Controller) focus.Widget {
	env := ch.values()
	for _, m := range ch.members {
		if !ch.skipped(m, env) {
			return m.input
		}
	}
	return nil
}

// Next implements focus.ChainProvider. A widget that is not a chain
// member resolves to nil, which the controller treats as "is last".
func (ch *Chain) Next(_ *focus.Controller, current focus.Widget) focus.Widget {
	env := ch.values()
	for i, m := range ch.members {
		if focus.Widget(m.input) != current {
			continue
		}
		for _, after := range ch.members[i+1:] {
			if !ch.skipped(after, env) {
				return after.input
			}
		}
		return nil
	}
	return nil
}

// values snapshots the current form values, field id → string value,
// as the environment for skip_if evaluation.
func (ch *Chain) values() map[string]interface{} {
	env := make(map[string]interface{}, len(ch.members))
	for _, m := range ch.members {
		env[m.input.ID()] = m.input.Value()
	}
	return env
}

// skipped evaluates a member's skip condition. Evaluation failures
// count as "not skipped": a broken condition must not silently remove
// a field from the chain.
func (ch *Chain) skipped(m member, env map[string]interface{}) bool {
	if m.skip == nil {
		return false
	}
	out, err := expr.Run(m.skip, env)
	if err != nil {
		return false
	}
	b, ok := out.(bool)
	return ok && b
}
