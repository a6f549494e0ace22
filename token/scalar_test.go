package token

import (
	"errors"
	"testing"

	"github.com/signadot/jsondoc/ir"
)

func TestScalarFallback(t *testing.T) {
	tests := []struct {
		tok  string
		want *ir.Value
	}{
		// the first matching alternative wins
		{`"5"`, ir.FromString("5")},
		{`5`, ir.FromInt32(5)},
		{`-17`, ir.FromInt32(-17)},
		{`5000000000`, ir.FromInt64(5000000000)},
		{`5.5`, ir.FromFloat(5.5)},
		{`1e14`, ir.FromFloat(1e14)},
		{`-0.25`, ir.FromFloat(-0.25)},
		{`true`, ir.FromBool(true)},
		{`TRUE`, ir.FromBool(true)},
		{`True`, ir.FromBool(true)},
		{`false`, ir.FromBool(false)},
		{`null`, ir.Null()},
		{`NULL`, ir.Null()},
		{`"true"`, ir.FromString("true")},
		{`"say \"hi\""`, ir.FromString(`say "hi"`)},
		{`""`, ir.FromString("")},
	}
	for _, tt := range tests {
		got, err := Scalar(tt.tok)
		if err != nil {
			t.Errorf("Scalar(%q): %v", tt.tok, err)
			continue
		}
		if !ir.Equal(got, tt.want) {
			t.Errorf("Scalar(%q) = %+v, want %+v", tt.tok, got, tt.want)
		}
	}
}

func TestScalarErrors(t *testing.T) {
	tests := []string{
		``,
		`tru`,
		`nul`,
		`bare`,
		`"unterminated`,
		`"`,
	}
	for _, tok := range tests {
		if _, err := Scalar(tok); !errors.Is(err, ir.ErrMalformed) {
			t.Errorf("Scalar(%q) = %v, want ErrMalformed", tok, err)
		}
	}
}
