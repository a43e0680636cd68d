package annotation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"goa.design/autoreg/annotation"
)

func TestMarked(t *testing.T) {
	cases := []struct {
		name string
		tag  string
		want bool
	}{
		{"empty value", `autoreg:""`, true},
		{"value ignored", `autoreg:"anything"`, true},
		{"among other keys", `json:"head" autoreg:"" yaml:"head"`, true},
		{"no tag", ``, false},
		{"other keys only", `json:"autoreg"`, false},
		{"prefix key", `autoregister:""`, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, annotation.Marked(c.tag))
		})
	}
}
