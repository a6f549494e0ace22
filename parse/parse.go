package parse

import (
	"bytes"
	"fmt"
	"os"

	"github.com/signadot/jsondoc/ir"
	"github.com/signadot/jsondoc/registry"
	"github.com/signadot/jsondoc/token"
)

// Parse scans a complete JSON object and returns its document. The input
// must start with '{' and end with '}' after trimming surrounding
// whitespace.
func Parse(d []byte, opts ...Option) (*ir.Document, error) {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	d = bytes.TrimSpace(d)
	if len(d) < 2 || d[0] != '{' || d[len(d)-1] != '}' {
		return nil, fmt.Errorf("%w: document must be brace-delimited", ir.ErrMalformed)
	}
	s := &scanner{reg: pOpts.reg}
	return s.object(d)
}

func ParseString(s string, opts ...Option) (*ir.Document, error) {
	return Parse([]byte(s), opts...)
}

// ParseFile reads path entirely and parses it. The parser itself never
// does I/O; this is the file-source convenience around Parse.
func ParseFile(path string, opts ...Option) (*ir.Document, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(d, opts...)
}

type scanner struct {
	reg *registry.Registry
}

// object scans a brace-delimited span into a document. The opening brace
// is skipped by starting at offset 1; the closing brace falls out as a
// lone-brace buffer or is consumed by the final key/value flush.
func (s *scanner) object(d []byte) (*ir.Document, error) {
	doc := ir.New()
	var (
		buf      bytes.Buffer
		inQuotes bool
		inArray  bool
		inObj    bool
		skipNext bool

		objDepth int
		arrDepth int

		arrKey  string
		arrVals []*ir.Value
	)
	n := len(d)
	for i := 1; i < n; i++ {
		if skipNext {
			skipNext = false
			continue
		}
		c := d[i]
		switch c {
		case '"':
			if inQuotes && !token.IsEscaped(i, d) {
				inQuotes = false
			} else if !inQuotes {
				inQuotes = true
			}
			buf.WriteByte(c)

		case ':':
			if !inQuotes && !inObj && inArray {
				return nil, fmt.Errorf("%w: ':' inside array at offset %d", ir.ErrMalformed, i)
			}
			buf.WriteByte(c)

		case ',':
			switch {
			case inQuotes:
				buf.WriteByte(c)
			case i < 3:
				// earliest legal separator follows `{"",`
				return nil, fmt.Errorf("%w: ',' at offset %d", ir.ErrMalformed, i)
			case inArray:
				if inObj || arrDepth > 0 {
					buf.WriteByte(c)
					break
				}
				if buf.Len() > 0 {
					elt, err := s.element(bytes.Clone(buf.Bytes()))
					if err != nil {
						return nil, err
					}
					arrVals = append(arrVals, elt)
					buf.Reset()
				}
			case inObj:
				buf.WriteByte(c)
			default:
				if buf.Len() > 0 {
					key, val, err := s.pair(buf.Bytes())
					if err != nil {
						return nil, err
					}
					doc.Set(key, val)
					buf.Reset()
				}
			}

		case '[':
			if inQuotes || inObj {
				buf.WriteByte(c)
				break
			}
			if inArray {
				arrDepth++
				buf.WriteByte(c)
				break
			}
			key, err := arrayKey(buf.Bytes())
			if err != nil {
				return nil, err
			}
			inArray = true
			arrKey = key
			arrVals = nil
			buf.Reset()

		case ']':
			if inQuotes || inObj {
				buf.WriteByte(c)
				break
			}
			if !inArray {
				return nil, fmt.Errorf("%w: stray ']' at offset %d", ir.ErrMalformed, i)
			}
			if arrDepth > 0 {
				arrDepth--
				buf.WriteByte(c)
				break
			}
			if buf.Len() > 0 {
				elt, err := s.element(bytes.Clone(buf.Bytes()))
				if err != nil {
					return nil, err
				}
				arrVals = append(arrVals, elt)
			}
			doc.Set(arrKey, ir.FromSlice(arrVals))
			inArray = false
			arrKey = ""
			arrVals = nil
			buf.Reset()
			// the character after ']' is the outer separator or the
			// closing brace; both are structurally redundant here
			skipNext = true

		case '{':
			buf.WriteByte(c)
			if !inQuotes {
				inObj = true
				objDepth++
			}

		case '}':
			buf.WriteByte(c)
			if inQuotes {
				break
			}
			if inObj {
				objDepth--
				if objDepth > 0 {
					break
				}
				inObj = false
				if inArray && arrDepth > 0 {
					// part of a nested array's text, parsed on its close
					break
				}
				raw := bytes.Clone(buf.Bytes())
				buf.Reset()
				if inArray {
					sub, err := s.object(raw)
					if err != nil {
						return nil, err
					}
					elt, err := s.resolve(sub)
					if err != nil {
						return nil, err
					}
					arrVals = append(arrVals, elt)
					break
				}
				key, body, err := splitKey(raw)
				if err != nil {
					return nil, err
				}
				if len(body) < 2 || body[0] != '{' {
					return nil, fmt.Errorf("%w: bad nested object under key %q", ir.ErrMalformed, key)
				}
				sub, err := s.object(body)
				if err != nil {
					return nil, err
				}
				val, err := s.resolve(sub)
				if err != nil {
					return nil, err
				}
				doc.Set(key, val)
				skipNext = true
				break
			}
			if buf.Len() > 1 {
				if i != n-1 {
					return nil, fmt.Errorf("%w: '}' before end of document at offset %d", ir.ErrMalformed, i)
				}
				key, val, err := s.pair(buf.Bytes()[:buf.Len()-1])
				if err != nil {
					return nil, err
				}
				doc.Set(key, val)
				buf.Reset()
			}

		case ' ', '\t', '\r', '\n':
			if inQuotes {
				buf.WriteByte(c)
			}

		default:
			buf.WriteByte(c)
		}
	}
	if inQuotes {
		return nil, fmt.Errorf("%w: %s", token.ErrUnterminated, buf.String())
	}
	if inArray {
		return nil, fmt.Errorf("%w: unterminated array %q", ir.ErrMalformed, arrKey)
	}
	if inObj {
		return nil, fmt.Errorf("%w: unbalanced braces", ir.ErrMalformed)
	}
	return doc, nil
}

// array scans a bracket-delimited span into an array value. Nested
// arrays recurse; nested objects are handed to object.
func (s *scanner) array(d []byte) (*ir.Value, error) {
	var (
		vals     []*ir.Value
		buf      bytes.Buffer
		inQuotes bool
		objDepth int
		arrDepth int
	)
	flush := func() error {
		if buf.Len() == 0 {
			return nil
		}
		elt, err := s.element(bytes.Clone(buf.Bytes()))
		if err != nil {
			return err
		}
		vals = append(vals, elt)
		buf.Reset()
		return nil
	}
	for i := 1; i < len(d)-1; i++ {
		c := d[i]
		switch c {
		case '"':
			if inQuotes && !token.IsEscaped(i, d) {
				inQuotes = false
			} else if !inQuotes {
				inQuotes = true
			}
			buf.WriteByte(c)
		case ':':
			if !inQuotes && objDepth == 0 {
				return nil, fmt.Errorf("%w: ':' inside array at offset %d", ir.ErrMalformed, i)
			}
			buf.WriteByte(c)
		case ',':
			if inQuotes || objDepth > 0 || arrDepth > 0 {
				buf.WriteByte(c)
				break
			}
			if err := flush(); err != nil {
				return nil, err
			}
		case '[':
			if !inQuotes {
				arrDepth++
			}
			buf.WriteByte(c)
		case ']':
			if !inQuotes {
				arrDepth--
				if arrDepth < 0 {
					return nil, fmt.Errorf("%w: stray ']' at offset %d", ir.ErrMalformed, i)
				}
			}
			buf.WriteByte(c)
		case '{':
			if !inQuotes {
				objDepth++
			}
			buf.WriteByte(c)
		case '}':
			if !inQuotes {
				objDepth--
				if objDepth < 0 {
					return nil, fmt.Errorf("%w: stray '}' at offset %d", ir.ErrMalformed, i)
				}
			}
			buf.WriteByte(c)
		case ' ', '\t', '\r', '\n':
			if inQuotes {
				buf.WriteByte(c)
			}
		default:
			buf.WriteByte(c)
		}
	}
	if inQuotes {
		return nil, fmt.Errorf("%w: %s", token.ErrUnterminated, buf.String())
	}
	if objDepth != 0 || arrDepth != 0 {
		return nil, fmt.Errorf("%w: unbalanced array", ir.ErrMalformed)
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return ir.FromSlice(vals), nil
}

// element parses one buffered array element: a nested array, a nested
// object, or a scalar token.
func (s *scanner) element(b []byte) (*ir.Value, error) {
	switch b[0] {
	case '[':
		if b[len(b)-1] != ']' {
			return nil, fmt.Errorf("%w: unterminated array element %q", ir.ErrMalformed, b)
		}
		return s.array(b)
	case '{':
		if b[len(b)-1] != '}' {
			return nil, fmt.Errorf("%w: unterminated object element %q", ir.ErrMalformed, b)
		}
		sub, err := s.object(b)
		if err != nil {
			return nil, err
		}
		return s.resolve(sub)
	default:
		return token.Scalar(string(b))
	}
}

// pair parses a buffered `"key":value` span with a scalar value.
func (s *scanner) pair(b []byte) (string, *ir.Value, error) {
	key, rest, err := splitKey(b)
	if err != nil {
		return "", nil, err
	}
	if len(rest) == 0 {
		return "", nil, fmt.Errorf("%w: missing value for key %q", ir.ErrMalformed, key)
	}
	val, err := token.Scalar(string(rest))
	if err != nil {
		return "", nil, err
	}
	return key, val, nil
}

// resolve consults the registry when a completed object carries the
// discriminator key. An unregistered identifier, or the absence of a
// registry, degrades silently to the plain object.
func (s *scanner) resolve(doc *ir.Document) (*ir.Value, error) {
	if s.reg == nil {
		return ir.FromDocument(doc), nil
	}
	idv := doc.Get(registry.Discriminator)
	if idv == nil || idv.Type != ir.StringType {
		return ir.FromDocument(doc), nil
	}
	codec, ok := s.reg.Lookup(idv.String)
	if !ok {
		return ir.FromDocument(doc), nil
	}
	rest := doc.Clone()
	rest.Delete(registry.Discriminator)
	app, err := codec.Decode(rest)
	if err != nil {
		return nil, fmt.Errorf("decoding %q: %w", idv.String, err)
	}
	return ir.FromTyped(idv.String, app), nil
}

// splitKey splits a `"key":...` span into the unescaped key and the
// remainder after the colon.
func splitKey(b []byte) (string, []byte, error) {
	if len(b) == 0 || b[0] != '"' {
		return "", nil, fmt.Errorf("%w: key must be quoted in %q", ir.ErrMalformed, b)
	}
	end := closingQuote(b)
	if end < 0 {
		return "", nil, fmt.Errorf("%w: %s", token.ErrUnterminated, b)
	}
	if end+1 >= len(b) || b[end+1] != ':' {
		return "", nil, fmt.Errorf("%w: missing ':' after key in %q", ir.ErrMalformed, b)
	}
	key, err := token.Unescape(string(b[1:end]))
	if err != nil {
		return "", nil, err
	}
	return key, b[end+2:], nil
}

// arrayKey matches the `"key":` prefix buffered before an array opens.
func arrayKey(b []byte) (string, error) {
	key, rest, err := splitKey(b)
	if err != nil {
		return "", err
	}
	if len(rest) != 0 {
		return "", fmt.Errorf("%w: unexpected %q before '['", ir.ErrMalformed, rest)
	}
	return key, nil
}

func closingQuote(b []byte) int {
	for i := 1; i < len(b); i++ {
		if b[i] == '"' && !token.IsEscaped(i, b) {
			return i
		}
	}
	return -1
}
