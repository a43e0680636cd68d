package shapes

import (
	"time"

	autil "example.com/basic/a/util"
	butil "example.com/basic/b/util"
	"example.com/basic/reg"
)

type Widget struct {
	reg.Module
}

type Container struct {
	reg.Module

	widget  *Widget                   `autoreg:""`
	x1      int                       `autoreg:""`
	Already int                       `autoreg:""`
	lookup  map[autil.Key]butil.Value `autoreg:""`
	a, b    time.Duration             `autoreg:""`
	plain   int
}

func (ct *Container) Describe() string { return "container" }

// Raw has no registry.
type Raw struct {
	child int `autoreg:""`
}

// Fielded reaches its registry through a field.
type Fielded struct {
	children reg.Registry
	child    *Widget `autoreg:""`
}

func (f *Fielded) RegisterModule(name string, v any) { f.children.Add(name, v) }

type Box[T any] struct {
	reg.Module
	item T `autoreg:""`
}

type Taken struct {
	reg.Module
	thing int `autoreg:""`
}

func (t *Taken) SetThing(int) {}

var anon = struct {
	inner int `autoreg:""`
}{}

func local() {
	type L struct {
		x int `autoreg:""`
	}
	_ = L{}
}
