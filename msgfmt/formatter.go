// Package msgfmt substitutes #{name} placeholders in assertion messages.
package msgfmt

import (
	"strings"

	"github.com/uptrace/bigassert/internal"
	"github.com/uptrace/bigassert/internal/parser"
)

// Placeholders understood by assertion messages.
const (
	This     = "this"
	Actual   = "act"
	Expected = "exp"
)

// Formatter replaces #{name} with the display form of the named argument.
// Unknown placeholders are kept verbatim and `\#` escapes a hash.
type Formatter struct {
	threshold int
	namedArgs map[string]any
}

func NewFormatter() Formatter {
	return Formatter{}
}

func (f Formatter) clone() Formatter {
	clone := f

	if len(f.namedArgs) > 0 {
		clone.namedArgs = make(map[string]any, len(f.namedArgs))
	}
	for name, value := range f.namedArgs {
		clone.namedArgs[name] = value
	}

	return clone
}

func (f *Formatter) setArg(arg string, value any) {
	if f.namedArgs == nil {
		f.namedArgs = make(map[string]any)
	}
	f.namedArgs[arg] = value
}

// WithTruncateThreshold limits the display length of composite values.
func (f Formatter) WithTruncateThreshold(n int) Formatter {
	clone := f.clone()
	clone.threshold = n
	return clone
}

func (f Formatter) WithArg(arg string, value any) Formatter {
	clone := f.clone()
	clone.setArg(arg, value)
	return clone
}

func (f Formatter) Inspect(v any) string {
	return internal.Inspect(v, f.threshold)
}

func (f Formatter) Format(msg string) string {
	if strings.IndexByte(msg, '#') == -1 {
		return msg
	}
	return string(f.append(nil, parser.NewString(msg)))
}

func (f Formatter) append(dst []byte, p *parser.Parser) []byte {
	for p.Valid() {
		b, ok := p.ReadSep('#')
		if !ok {
			dst = append(dst, b...)
			continue
		}
		if len(b) > 0 && b[len(b)-1] == '\\' {
			dst = append(dst, b[:len(b)-1]...)
			dst = append(dst, '#')
			continue
		}
		dst = append(dst, b...)

		if p.Peek() != '{' {
			dst = append(dst, '#')
			continue
		}

		name := p.ReadIdentifier()
		if name == "" {
			dst = append(dst, '#')
			continue
		}

		if arg, ok := f.namedArgs[name]; ok {
			dst = append(dst, f.Inspect(arg)...)
			continue
		}

		dst = append(dst, "#{"...)
		dst = append(dst, name...)
		dst = append(dst, '}')
	}

	return dst
}
