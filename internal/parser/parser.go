// Package parser implements the recursive-descent grammar of spec.md §4.B:
// literals, identifiers, arrays, and nested function calls, with one-token
// lookahead used to decide whether a bare identifier is itself the whole
// value or the head of a call.
package parser

import (
	"strconv"
	"strings"

	"github.com/cwbudde/exprscript/internal/ast"
	"github.com/cwbudde/exprscript/internal/lexer"
)

// Parser turns source text into an unbound ast.Node tree.
type Parser struct {
	l *lexer.Lexer

	curToken  lexer.Token
	peekToken lexer.Token
}

// New creates a Parser over the given source text.
func New(input string) *Parser {
	p := &Parser{l: lexer.New(input)}
	p.nextToken()
	p.nextToken()
	return p
}

// Parse parses a full expression and reports a *ParseError on any
// structural mismatch or unconsumed trailing input (§4.B's failure mode).
func Parse(input string) (ast.Node, error) {
	p := New(input)
	node, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	if p.curToken.Type != lexer.EOF {
		return nil, newParseError(p.curToken.Pos, describe(p.curToken), "end of input")
	}
	return node, nil
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

func describe(t lexer.Token) string {
	if t.Type == lexer.EOF {
		return "end of input"
	}
	if t.Literal == "" {
		return t.Type.String()
	}
	return t.Type.String() + " " + strconv.Quote(t.Literal)
}

// parseValue implements the `value` production: it dispatches on the
// current token, applying spec.md's disambiguation rule for identifiers
// versus calls via one token of lookahead (peekToken).
func (p *Parser) parseValue() (ast.Node, error) {
	switch p.curToken.Type {
	case lexer.NUMBER:
		n, err := strconv.ParseFloat(p.curToken.Literal, 64)
		if err != nil {
			return nil, newParseError(p.curToken.Pos, describe(p.curToken), "number")
		}
		p.nextToken()
		return &ast.NumLit{Value: n}, nil

	case lexer.TRUE:
		p.nextToken()
		return &ast.BoolLit{Value: true}, nil

	case lexer.FALSE:
		p.nextToken()
		return &ast.BoolLit{Value: false}, nil

	case lexer.STRING:
		decoded, err := decodeEscapes(p.curToken.Literal)
		if err != nil {
			return nil, newParseError(p.curToken.Pos, err.Error())
		}
		p.nextToken()
		return &ast.StrLit{Value: decoded}, nil

	case lexer.LBRACKET:
		return p.parseArray()

	case lexer.IDENT:
		if p.peekToken.Type == lexer.LPAREN {
			return p.parseCall()
		}
		name := p.curToken.Literal
		p.nextToken()
		return &ast.Identifier{Name: name}, nil

	default:
		return nil, newParseError(p.curToken.Pos, describe(p.curToken),
			"number", "boolean", "string", "identifier", "array", "function call")
	}
}

// parseArray implements `array := '[' (value (',' value)*)? ']'`.
func (p *Parser) parseArray() (ast.Node, error) {
	p.nextToken() // consume '['

	elems := []ast.Node{}
	if p.curToken.Type == lexer.RBRACKET {
		p.nextToken()
		return &ast.ArrayLit{Elements: elems}, nil
	}

	for {
		v, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		elems = append(elems, v)

		if p.curToken.Type == lexer.COMMA {
			p.nextToken()
			continue
		}
		break
	}

	if p.curToken.Type != lexer.RBRACKET {
		return nil, newParseError(p.curToken.Pos, describe(p.curToken), "','", "']'")
	}
	p.nextToken()
	return &ast.ArrayLit{Elements: elems}, nil
}

// parseCall implements `call := identifier '(' (value (',' value)*)? ')'`.
// The caller has already confirmed peekToken is '('.
func (p *Parser) parseCall() (ast.Node, error) {
	name := p.curToken.Literal
	p.nextToken() // move onto '('
	p.nextToken() // consume '('

	args := []ast.Node{}
	if p.curToken.Type == lexer.RPAREN {
		p.nextToken()
		return &ast.FunctionCall{Name: name, Args: args}, nil
	}

	for {
		v, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		args = append(args, v)

		if p.curToken.Type == lexer.COMMA {
			p.nextToken()
			continue
		}
		break
	}

	if p.curToken.Type != lexer.RPAREN {
		return nil, newParseError(p.curToken.Pos, describe(p.curToken), "','", "')'")
	}
	p.nextToken()
	return &ast.FunctionCall{Name: name, Args: args}, nil
}

// decodeEscapes converts the escape sequences `\\`, `\"`, `\r`, `\n`, `\t`
// inside a lexed string's interior to their literal characters (§4.B). An
// unrecognized escape is a parse error.
func decodeEscapes(raw string) (string, error) {
	var b strings.Builder
	b.Grow(len(raw))
	runes := []rune(raw)
	for i := 0; i < len(runes); i++ {
		ch := runes[i]
		if ch != '\\' {
			b.WriteRune(ch)
			continue
		}
		if i+1 >= len(runes) {
			return "", &escapeError{seq: `\`}
		}
		i++
		switch runes[i] {
		case '\\':
			b.WriteByte('\\')
		case '"':
			b.WriteByte('"')
		case 'r':
			b.WriteByte('\r')
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		default:
			return "", &escapeError{seq: `\` + string(runes[i])}
		}
	}
	return b.String(), nil
}

type escapeError struct {
	seq string
}

func (e *escapeError) Error() string {
	return "unrecognized escape sequence " + strconv.Quote(e.seq)
}
