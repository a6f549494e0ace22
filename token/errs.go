package token

import (
	"fmt"

	"github.com/signadot/jsondoc/ir"
)

var (
	ErrUnterminated = fmt.Errorf("%w: unterminated string", ir.ErrMalformed)
	ErrBadEscape    = fmt.Errorf("%w: bad escape", ir.ErrMalformed)
	ErrBadUnicode   = fmt.Errorf("%w: bad unicode escape", ir.ErrMalformed)
)
