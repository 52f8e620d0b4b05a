// Package notation parses and formats item lists in a compact textual notation, eg.
//
//	# a word, a space, and the end of the paragraph
//	box(30, "word") glue(10, 5, 3, 10)
//	glue(0, 100000, 0, inf) penalty(0, -inf, flagged)
//
// Arguments are positional or named, eg. penalty(width=5, penalty=10, flagged, text="-").
package notation

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/tdewolff/linebreak/text"
)

var (
	notationLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
		{Name: "Comment", Pattern: `#[^\n]*`},
		{Name: "Number", Pattern: `[-+]?(?:\d+\.\d*|\.\d+|\d+)(?:[eE][-+]?\d+)?`},
		{Name: "String", Pattern: `"(?:\\.|[^"])*"`},
		{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_]*`},
		{Name: "Symbol", Pattern: `[(),;=+-]`},
	})

	notationParser = participle.MustBuild[List](
		participle.Lexer(notationLexer),
		participle.Elide("Whitespace", "Comment"),
		participle.UseLookahead(2),
	)
)

// List is the root AST node of an item list.
type List struct {
	Calls []*Call `parser:"( @@ ( ';' | ',' )? )*"`
}

// Call is a single item, eg. box(10, "a").
type Call struct {
	Pos  lexer.Position `parser:""`
	Kind string         `parser:"@( 'box' | 'glue' | 'penalty' )"`
	Args []*Arg         `parser:"'(' ( @@ ( ',' @@ )* )? ')'"`
}

// Arg is a positional or named argument.
type Arg struct {
	Pos   lexer.Position `parser:""`
	Name  string         `parser:"( @Ident '=' )?"`
	Value *Value         `parser:"@@"`
}

// Value is a number, infinity, string, or boolean.
type Value struct {
	Number *float64       `parser:"  @Number"`
	Inf    *string        `parser:"| @( ( '-' | '+' )? 'inf' )"`
	String *StringLiteral `parser:"| @String"`
	Bool   *string        `parser:"| @( 'flagged' | 'true' | 'false' )"`
}

// StringLiteral unquotes Go-style strings on capture.
type StringLiteral string

// Capture implements participle.Capture.
func (s *StringLiteral) Capture(values []string) error {
	if len(values) == 0 {
		return fmt.Errorf("string literal capture requires value")
	}
	val, err := strconv.Unquote(values[0])
	if err != nil {
		return err
	}
	*s = StringLiteral(val)
	return nil
}

// parameters of every item kind in positional order
var parameters = map[string][]string{
	"box":     {"width", "text"},
	"glue":    {"width", "stretch", "shrink", "penalty"},
	"penalty": {"width", "penalty", "flagged", "text"},
}

// Parse parses an item list from an io.Reader.
func Parse(r io.Reader) (text.Items, error) {
	list, err := notationParser.Parse("", r)
	if err != nil {
		return nil, err
	}
	return list.Items()
}

// ParseString parses an item list from a string.
func ParseString(input string) (text.Items, error) {
	list, err := notationParser.ParseString("", input)
	if err != nil {
		return nil, err
	}
	return list.Items()
}

// Items converts the AST to items.
func (l *List) Items() (text.Items, error) {
	items := make(text.Items, 0, len(l.Calls))
	for _, call := range l.Calls {
		item, err := call.Item()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// Item converts the call to an item. Omitted arguments are zero.
func (c *Call) Item() (text.Item, error) {
	args, err := c.arguments()
	if err != nil {
		return text.Item{}, err
	}

	item := text.Item{}
	switch c.Kind {
	case "box":
		item.Type = text.BoxType
	case "glue":
		item.Type = text.GlueType
	case "penalty":
		item.Type = text.PenaltyType
	}
	for name, arg := range args {
		switch name {
		case "width":
			item.Width, err = arg.Value.asFloat()
		case "stretch":
			item.Stretch, err = arg.Value.asFloat()
		case "shrink":
			item.Shrink, err = arg.Value.asFloat()
		case "penalty":
			item.Penalty, err = arg.Value.asFloat()
		case "flagged":
			item.Flagged, err = arg.Value.asBool()
		case "text":
			item.Text, err = arg.Value.asString()
		}
		if err != nil {
			return text.Item{}, fmt.Errorf("%v: %s: %w", arg.Pos, name, err)
		}
	}
	return item, nil
}

// arguments maps the arguments to parameter names
func (c *Call) arguments() (map[string]*Arg, error) {
	params := parameters[c.Kind]
	args := map[string]*Arg{}
	named := false
	for i, arg := range c.Args {
		name := arg.Name
		if name == "" && arg.Value.Bool != nil && *arg.Value.Bool == "flagged" {
			name = "flagged" // bare flag
		} else if name == "" {
			if named {
				return nil, fmt.Errorf("%v: positional argument after named argument", arg.Pos)
			} else if len(params) <= i {
				return nil, fmt.Errorf("%v: too many arguments for %s", arg.Pos, c.Kind)
			}
			name = params[i]
		} else {
			named = true
		}

		known := false
		for _, param := range params {
			known = known || param == name
		}
		if !known {
			return nil, fmt.Errorf("%v: unknown argument %s for %s", arg.Pos, name, c.Kind)
		} else if _, ok := args[name]; ok {
			return nil, fmt.Errorf("%v: duplicate argument %s", arg.Pos, name)
		}
		args[name] = arg
	}
	return args, nil
}

func (v *Value) asFloat() (float64, error) {
	if v.Number != nil {
		return *v.Number, nil
	} else if v.Inf != nil {
		if strings.HasPrefix(*v.Inf, "-") {
			return math.Inf(-1.0), nil
		}
		return math.Inf(1.0), nil
	}
	return 0.0, fmt.Errorf("expected number")
}

func (v *Value) asBool() (bool, error) {
	if v.Bool != nil {
		return *v.Bool != "false", nil
	}
	return false, fmt.Errorf("expected boolean")
}

func (v *Value) asString() (string, error) {
	if v.String != nil {
		return string(*v.String), nil
	}
	return "", fmt.Errorf("expected string")
}

// Format returns the notation of items, one item per line. Measurers are not represented.
func Format(items text.Items) string {
	sb := strings.Builder{}
	for _, item := range items {
		switch item.Type {
		case text.BoxType:
			fmt.Fprintf(&sb, "box(%s", formatFloat(item.Width))
			if item.Text != "" {
				fmt.Fprintf(&sb, ", %s", strconv.Quote(item.Text))
			}
		case text.GlueType:
			fmt.Fprintf(&sb, "glue(%s, %s, %s, %s", formatFloat(item.Width), formatFloat(item.Stretch), formatFloat(item.Shrink), formatFloat(item.Penalty))
		case text.PenaltyType:
			fmt.Fprintf(&sb, "penalty(%s, %s", formatFloat(item.Width), formatFloat(item.Penalty))
			if item.Flagged {
				sb.WriteString(", flagged")
			}
			if item.Text != "" {
				fmt.Fprintf(&sb, ", text=%s", strconv.Quote(item.Text))
			}
		}
		sb.WriteString(")\n")
	}
	return sb.String()
}

func formatFloat(f float64) string {
	if math.IsInf(f, 1) {
		return "inf"
	} else if math.IsInf(f, -1) {
		return "-inf"
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}
