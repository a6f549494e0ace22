// Package token provides scalar token parsing and JSON string escaping.
package token

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/signadot/jsondoc/ir"
)

// Scalar converts a trimmed bare token into a typed value. The fallback
// is ordered and the first match wins: quoted string, 32-bit integer,
// 64-bit integer, double, single, then the case-insensitive literals
// TRUE, FALSE and NULL. An unquoted token matching none of these is
// malformed, never a string.
func Scalar(tok string) (*ir.Value, error) {
	if tok == "" {
		return nil, fmt.Errorf("%w: empty token", ir.ErrMalformed)
	}
	if tok[0] == '"' {
		if len(tok) < 2 || tok[len(tok)-1] != '"' {
			return nil, fmt.Errorf("%w: %s", ErrUnterminated, tok)
		}
		s, err := Unescape(tok[1 : len(tok)-1])
		if err != nil {
			return nil, err
		}
		return ir.FromString(s), nil
	}
	if i, err := strconv.ParseInt(tok, 10, 32); err == nil {
		return ir.FromInt32(int32(i)), nil
	}
	if i, err := strconv.ParseInt(tok, 10, 64); err == nil {
		return ir.FromInt64(i), nil
	}
	if f, err := strconv.ParseFloat(tok, 64); err == nil {
		return ir.FromFloat(f), nil
	}
	if f, err := strconv.ParseFloat(tok, 32); err == nil {
		return ir.FromFloat32(float32(f)), nil
	}
	switch strings.ToUpper(tok) {
	case "TRUE":
		return ir.FromBool(true), nil
	case "FALSE":
		return ir.FromBool(false), nil
	case "NULL":
		return ir.Null(), nil
	}
	return nil, fmt.Errorf("%w: bad token %q", ir.ErrMalformed, tok)
}
