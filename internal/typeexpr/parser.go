// Package typeexpr parses textual type expressions into type
// descriptors against a declared universe.
//
// The expression language mirrors the shapes the resolver understands:
//
//	Int
//	[]Int
//	List<Int>
//	List<?>
//	List<? extends Number>
//	Map<String, ? super Int>
package typeexpr

import (
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	perrors "github.com/toyz/propgen/internal/errors"
	"github.com/toyz/propgen/internal/typesys"
)

// Parser parses type expressions against a universe
type Parser struct {
	parser   *participle.Parser[typeExpr]
	universe *typesys.Universe
}

// typeExpr is the root of a parsed type expression
type typeExpr struct {
	Arrays []string     `parser:"@ArrayPrefix*"`
	Name   string       `parser:"@Ident"`
	Params []*paramExpr `parser:"('<' @@ (',' @@)* '>')?"`
}

// paramExpr is a single type argument: a wildcard or a nested type
type paramExpr struct {
	Wildcard *wildcardExpr `parser:"  @@"`
	Type     *typeExpr     `parser:"| @@"`
}

// wildcardExpr is '?' with an optional extends/super bound
type wildcardExpr struct {
	Mark  string    `parser:"@'?'"`
	Kind  string    `parser:"(@'extends' | @'super')?"`
	Bound *typeExpr `parser:"@@?"`
}

// NewParser creates a parser resolving names against the given universe
func NewParser(universe *typesys.Universe) *Parser {
	// Define the lexer
	lex := lexer.MustSimple([]lexer.SimpleRule{
		{Name: "ArrayPrefix", Pattern: `\[\]`},
		{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
		{Name: "Punct", Pattern: `[<>,?]`},
		{Name: "Whitespace", Pattern: `\s+`},
	})

	parser := participle.MustBuild[typeExpr](
		participle.Lexer(lex),
		participle.Elide("Whitespace"),
		participle.UseLookahead(2),
	)

	return &Parser{
		parser:   parser,
		universe: universe,
	}
}

// Parse converts a type expression into a descriptor
func (p *Parser) Parse(expression string) (*typesys.Descriptor, error) {
	ast, err := p.parser.ParseString("", expression)
	if err != nil {
		return nil, perrors.NewParseError(expression, err)
	}

	return p.convertType(ast, expression)
}

func (p *Parser) convertType(t *typeExpr, expression string) (*typesys.Descriptor, error) {
	raw, ok := p.universe.Lookup(typesys.ID(t.Name))
	if !ok {
		return nil, perrors.NewUnknownTypeError(t.Name, expression)
	}

	params := make([]typesys.Parameter, 0, len(t.Params))
	for _, param := range t.Params {
		converted, err := p.convertParam(param, expression)
		if err != nil {
			return nil, err
		}
		params = append(params, converted)
	}

	descriptor := typesys.DescriptorOf(raw, params...)

	// Each array prefix wraps the descriptor once, outermost first
	for range t.Arrays {
		descriptor = typesys.ArrayOf(descriptor)
	}

	return descriptor, nil
}

func (p *Parser) convertParam(param *paramExpr, expression string) (typesys.Parameter, error) {
	if param.Type != nil {
		bound, err := p.convertType(param.Type, expression)
		if err != nil {
			return typesys.Parameter{}, err
		}
		return typesys.ExactParam(bound), nil
	}

	w := param.Wildcard
	switch {
	case w.Kind == "" && w.Bound == nil:
		return typesys.WildcardParam(), nil
	case w.Kind == "" && w.Bound != nil:
		return typesys.Parameter{}, perrors.NewParseError(expression,
			fmt.Errorf("wildcard bound requires 'extends' or 'super'"))
	case w.Bound == nil:
		return typesys.Parameter{}, perrors.NewParseError(expression,
			fmt.Errorf("wildcard '%s' requires a bound type", w.Kind))
	}

	bound, err := p.convertType(w.Bound, expression)
	if err != nil {
		return typesys.Parameter{}, err
	}

	if w.Kind == "extends" {
		return typesys.ExtendsParam(bound), nil
	}
	return typesys.SuperParam(bound), nil
}
