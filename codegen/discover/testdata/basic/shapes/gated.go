//go:build extra

package shapes

import "example.com/basic/reg"

type Gated struct {
	reg.Module

	child *Widget `autoreg:""`
}
