package parser

import (
	"bytes"
)

type Parser struct {
	b []byte
	i int
}

func New(b []byte) *Parser {
	return &Parser{
		b: b,
	}
}

func NewString(s string) *Parser {
	return New([]byte(s))
}

func (p *Parser) Valid() bool {
	return p.i < len(p.b)
}

func (p *Parser) Peek() byte {
	if p.Valid() {
		return p.b[p.i]
	}
	return 0
}

// ReadSep reads until sep and consumes it. ok reports whether sep was found.
func (p *Parser) ReadSep(sep byte) ([]byte, bool) {
	ind := bytes.IndexByte(p.b[p.i:], sep)
	if ind == -1 {
		b := p.b[p.i:]
		p.i = len(p.b)
		return b, false
	}

	b := p.b[p.i : p.i+ind]
	p.i += ind + 1
	return b, true
}

// ReadIdentifier reads a name wrapped in braces, as in "{act}", and returns
// it without the braces. It returns "" and leaves the parser untouched when
// there is no opening brace, the braces are empty or never closed.
func (p *Parser) ReadIdentifier() string {
	if p.Peek() != '{' {
		return ""
	}
	s := p.i + 1
	ind := bytes.IndexByte(p.b[s:], '}')
	if ind <= 0 {
		return ""
	}
	p.i = s + ind + 1
	return string(p.b[s : s+ind])
}
