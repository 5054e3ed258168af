// Package fixture loads assertion cases from YAML or MessagePack files and
// evaluates them against a bigassert.Framework.
//
//	- name: ten equals ten
//	  keyword: bignumber
//	  subject: "10"
//	  verb: equal
//	  args: ["10"]
//	- name: native subject is rejected
//	  keyword: bignumber
//	  subject: 10
//	  verb: equal
//	  args: ["10"]
//	  error: instance of big.Int
package fixture

import (
	"fmt"
	"io"
	"io/fs"
	"path"
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	"github.com/uptrace/bigassert"
	"github.com/uptrace/bigassert/bnassert"
	"github.com/uptrace/bigassert/decimalassert"
	"github.com/uptrace/bigassert/internal"
)

// Case is a single assertion chain.
type Case struct {
	Name    string `yaml:"name" msgpack:"name"`
	Keyword string `yaml:"keyword" msgpack:"keyword"`
	Subject any    `yaml:"subject" msgpack:"subject"`
	Not     bool   `yaml:"not" msgpack:"not"`
	// Verb may be written as "closeTo", "close_to" or "close-to".
	Verb    string `yaml:"verb" msgpack:"verb"`
	Args    []any  `yaml:"args" msgpack:"args"`
	Message string `yaml:"message" msgpack:"message"`
	// Error is a regexp the failure message must match.
	// An empty Error means the chain must pass.
	Error string `yaml:"error" msgpack:"error"`
}

type SubjectParser func(s string) (any, error)

type LoaderOption func(l *Loader)

// WithSubjectParser parses string subjects of cases using keyword.
func WithSubjectParser(keyword string, fn SubjectParser) LoaderOption {
	return func(l *Loader) {
		l.parsers[keyword] = fn
	}
}

type Loader struct {
	fw *bigassert.Framework

	parsers map[string]SubjectParser
	cases   []Case
}

func NewLoader(fw *bigassert.Framework, opts ...LoaderOption) *Loader {
	l := &Loader{
		fw: fw,
		parsers: map[string]SubjectParser{
			bnassert.Keyword: func(s string) (any, error) {
				return bnassert.Parse(s)
			},
			decimalassert.Keyword: func(s string) (any, error) {
				return decimalassert.Parse(s)
			},
		},
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *Loader) Cases() []Case {
	return l.cases
}

// Load decodes .yaml/.yml files with YAML and .msgpack/.mp files with
// MessagePack. Each file holds a list of cases.
func (l *Loader) Load(fsys fs.FS, names ...string) error {
	for _, name := range names {
		if err := l.load(fsys, name); err != nil {
			return err
		}
	}
	return nil
}

func (l *Loader) load(fsys fs.FS, name string) error {
	fh, err := fsys.Open(name)
	if err != nil {
		return err
	}
	defer fh.Close()

	cases, err := decode(fh, path.Ext(name))
	if err != nil {
		return fmt.Errorf("fixture: decoding %s failed: %w", name, err)
	}

	for i := range cases {
		if cases[i].Verb == "" {
			return fmt.Errorf("fixture: %s: case %q has no verb", name, cases[i].Name)
		}
		if cases[i].Name == "" {
			cases[i].Name = fmt.Sprintf("%s#%d", name, i)
		}
	}

	l.cases = append(l.cases, cases...)
	return nil
}

func decode(r io.Reader, ext string) ([]Case, error) {
	var cases []Case

	switch ext {
	case ".yaml", ".yml":
		if err := yaml.NewDecoder(r).Decode(&cases); err != nil {
			return nil, err
		}
	case ".msgpack", ".mp":
		dec := msgpack.NewDecoder(r)
		dec.UseLooseInterfaceDecoding(true)
		if err := dec.Decode(&cases); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported file extension %q", ext)
	}

	return cases, nil
}

// Eval runs the case and reports whether the outcome is the expected one.
func (l *Loader) Eval(c Case) error {
	subject, err := l.subject(c)
	if err != nil {
		return err
	}

	verb := internal.VerbName(c.Verb)

	a := l.fw.Expect(nopT{}, subject, c.Message)
	if c.Keyword != "" {
		a.Prop(c.Keyword)
	}
	if c.Not {
		a.Not()
	}
	if len(c.Args) == 0 && l.fw.HasProperty(verb) {
		a.Prop(verb)
	} else {
		a.Call(verb, c.Args...)
	}

	got := a.Err()
	if c.Error == "" {
		if got != nil {
			return fmt.Errorf("fixture: case %q: unexpected failure: %w", c.Name, got)
		}
		return nil
	}

	re, err := regexp.Compile(c.Error)
	if err != nil {
		return fmt.Errorf("fixture: case %q: %w", c.Name, err)
	}
	if got == nil {
		return fmt.Errorf("fixture: case %q: passed, wanted failure matching %q", c.Name, c.Error)
	}
	if !re.MatchString(got.Error()) {
		return fmt.Errorf("fixture: case %q: failure %q does not match %q", c.Name, got, c.Error)
	}
	return nil
}

func (l *Loader) subject(c Case) (any, error) {
	s, ok := c.Subject.(string)
	if !ok {
		return c.Subject, nil
	}
	parse, ok := l.parsers[c.Keyword]
	if !ok {
		return c.Subject, nil
	}
	v, err := parse(s)
	if err != nil {
		return nil, fmt.Errorf("fixture: case %q: invalid subject %q: %w", c.Name, s, err)
	}
	return v, nil
}

// Run evaluates every loaded case as a subtest.
func (l *Loader) Run(t *testing.T) {
	t.Helper()
	for _, c := range l.cases {
		c := c
		t.Run(c.Name, func(t *testing.T) {
			require.NoError(t, l.Eval(c))
		})
	}
}

type nopT struct{}

func (nopT) Errorf(string, ...any) {}

func (nopT) FailNow() {}
