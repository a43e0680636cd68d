// Package layers is a small example of autoreg-managed fields: a Sequential
// model whose encoder and head layers register themselves as submodules
// whenever they are set.
package layers

//go:generate go run goa.design/autoreg/cmd/autoreg generate .

import (
	"errors"
	"fmt"

	"goa.design/autoreg/runtime/registry"
)

type (
	// Dense is a fully connected layer.
	Dense struct {
		registry.Module
		In, Out int
	}

	// Sequential chains an encoder and a head.
	Sequential struct {
		registry.Module
		encoder *Dense `autoreg:""`
		head    *Dense `autoreg:""`
	}
)

// NewDense returns a layer mapping in inputs to out outputs.
func NewDense(in, out int) *Dense {
	return &Dense{In: in, Out: out}
}

func (d *Dense) String() string {
	return fmt.Sprintf("Dense(%d, %d)", d.In, d.Out)
}

// NewSequential returns a model made of encoder followed by head.
func NewSequential(encoder, head *Dense) *Sequential {
	s := &Sequential{}
	s.SetEncoder(encoder)
	s.SetHead(head)
	return s
}

// Validate checks that the output of the encoder feeds the head.
func (s *Sequential) Validate() error {
	if s.encoder == nil || s.head == nil {
		return errors.New("sequential: missing layer")
	}
	if s.encoder.Out != s.head.In {
		return fmt.Errorf("sequential: encoder outputs %d values, head expects %d", s.encoder.Out, s.head.In)
	}
	return nil
}
