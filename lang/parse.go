package lang

import (
	"context"
	"log/slog"
	"slices"
)

// Parse parses src into a [Program]. Any lexical or syntax error aborts the
// whole parse; no partial tree is returned.
func Parse(ctx context.Context, src string, opts ...Option) (*Program, error) {
	cfg := makeConfig(opts...)

	cfg.logger.TraceContext(ctx, "parse start",
		slog.Int("source_bytes", len(src)))

	p, err := newParser(src)
	if err != nil {
		return nil, err
	}

	prog, err := p.program(ctx)
	if err != nil {
		return nil, err
	}

	cfg.logger.TraceContext(ctx, "parse complete",
		slog.Int("statements", len(prog.Statements)))

	return prog, nil
}

// parser is a recursive-descent parser over a lazily scanned token stream
// with one token of lookahead.
type parser struct {
	lex  *Lexer
	cur  Token
	peek Token
}

func newParser(src string) (*parser, error) {
	p := &parser{lex: NewLexer(src)}

	tok, err := p.lex.Next()
	if err != nil {
		return nil, err
	}

	p.peek = tok

	if err := p.advance(); err != nil {
		return nil, err
	}

	return p, nil
}

// advance shifts the lookahead into cur and scans a new lookahead.
func (p *parser) advance() error {
	p.cur = p.peek

	if p.cur.Kind == EOF {
		return nil
	}

	tok, err := p.lex.Next()
	if err != nil {
		return err
	}

	p.peek = tok

	return nil
}

// expect consumes and returns cur if it has the given kind.
func (p *parser) expect(kind Kind) (Token, error) {
	tok := p.cur

	if tok.Kind != kind {
		return Token{}, ErrExpectedToken.At(tok.Pos).
			Detailf("expected %s, got %s", kind.quote(), tok).
			With(slog.String("expected", kind.String()),
				slog.String("got", tok.Kind.String()))
	}

	return tok, p.advance()
}

// program := statement* EOF
func (p *parser) program(ctx context.Context) (*Program, error) {
	prog := &Program{Statements: make([]Stmt, 0)}

	for p.cur.Kind != EOF {
		if ctx.Err() != nil {
			return nil, context.Cause(ctx)
		}

		stmt, err := p.statement()
		if err != nil {
			return nil, err
		}

		prog.Statements = append(prog.Statements, stmt)
	}

	return prog, nil
}

func (p *parser) statement() (Stmt, error) {
	switch p.cur.Kind {
	case If:
		return p.ifStatement()
	case While:
		return p.whileStatement()
	case Fun:
		return p.functionDeclaration()
	case Return:
		return p.returnStatement()
	case LeftBrace:
		return p.block()
	case Var:
		return p.variableDeclaration()
	case Ident:
		if p.peek.Kind == Assign {
			return p.assignment()
		}
	}

	return p.expressionStatement()
}

// ifStmt := 'if' '(' expression ')' statement [ 'else' statement ]
func (p *parser) ifStatement() (Stmt, error) {
	pos := p.cur.Pos

	if err := p.advance(); err != nil {
		return nil, err
	}

	cond, err := p.condition()
	if err != nil {
		return nil, err
	}

	then, err := p.statement()
	if err != nil {
		return nil, err
	}

	stmt := &IfStatement{Condition: cond, Then: then, Pos: pos}

	if p.cur.Kind == Else {
		if err := p.advance(); err != nil {
			return nil, err
		}

		if stmt.Else, err = p.statement(); err != nil {
			return nil, err
		}
	}

	return stmt, nil
}

// whileStmt := 'while' '(' expression ')' statement
func (p *parser) whileStatement() (Stmt, error) {
	pos := p.cur.Pos

	if err := p.advance(); err != nil {
		return nil, err
	}

	cond, err := p.condition()
	if err != nil {
		return nil, err
	}

	body, err := p.statement()
	if err != nil {
		return nil, err
	}

	return &WhileStatement{Condition: cond, Body: body, Pos: pos}, nil
}

// condition parses a parenthesized expression.
func (p *parser) condition() (Expr, error) {
	if _, err := p.expect(LeftParen); err != nil {
		return nil, err
	}

	cond, err := p.expression()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(RightParen); err != nil {
		return nil, err
	}

	return cond, nil
}

// funDecl := 'fun' IDENTIFIER '(' [ IDENTIFIER ( ',' IDENTIFIER )* ] ')' block
func (p *parser) functionDeclaration() (Stmt, error) {
	pos := p.cur.Pos

	if err := p.advance(); err != nil {
		return nil, err
	}

	name, err := p.expect(Ident)
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(LeftParen); err != nil {
		return nil, err
	}

	params := make([]string, 0)

	if p.cur.Kind != RightParen {
		for {
			param, err := p.expect(Ident)
			if err != nil {
				return nil, err
			}

			params = append(params, param.Text)

			if p.cur.Kind != Comma {
				break
			}

			if err := p.advance(); err != nil {
				return nil, err
			}
		}
	}

	if _, err := p.expect(RightParen); err != nil {
		return nil, err
	}

	body, err := p.block()
	if err != nil {
		return nil, err
	}

	return &FunctionDeclaration{
		Name:   name.Text,
		Params: params,
		Body:   body,
		Pos:    pos,
	}, nil
}

// returnStmt := 'return' [ expression ] ';'
func (p *parser) returnStatement() (Stmt, error) {
	stmt := &ReturnStatement{Pos: p.cur.Pos}

	if err := p.advance(); err != nil {
		return nil, err
	}

	if p.cur.Kind != Semicolon {
		var err error
		if stmt.Value, err = p.expression(); err != nil {
			return nil, err
		}
	}

	if _, err := p.expect(Semicolon); err != nil {
		return nil, err
	}

	return stmt, nil
}

// block := '{' statement* '}'
func (p *parser) block() (*Block, error) {
	open, err := p.expect(LeftBrace)
	if err != nil {
		return nil, err
	}

	block := &Block{Statements: make([]Stmt, 0), Pos: open.Pos}

	for p.cur.Kind != RightBrace && p.cur.Kind != EOF {
		stmt, err := p.statement()
		if err != nil {
			return nil, err
		}

		block.Statements = append(block.Statements, stmt)
	}

	if _, err := p.expect(RightBrace); err != nil {
		return nil, err
	}

	return block, nil
}

// varDecl := 'var' IDENTIFIER [ '=' expression ] ';'
func (p *parser) variableDeclaration() (Stmt, error) {
	pos := p.cur.Pos

	if err := p.advance(); err != nil {
		return nil, err
	}

	name, err := p.expect(Ident)
	if err != nil {
		return nil, err
	}

	stmt := &VariableDeclaration{Name: name.Text, Pos: pos}

	if p.cur.Kind == Assign {
		if err := p.advance(); err != nil {
			return nil, err
		}

		if stmt.Initializer, err = p.expression(); err != nil {
			return nil, err
		}
	}

	if _, err := p.expect(Semicolon); err != nil {
		return nil, err
	}

	return stmt, nil
}

// assignment := IDENTIFIER '=' expression ';'
func (p *parser) assignment() (Stmt, error) {
	name := p.cur

	// Identifier, then '='.
	for range 2 {
		if err := p.advance(); err != nil {
			return nil, err
		}
	}

	value, err := p.expression()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(Semicolon); err != nil {
		return nil, err
	}

	return &Assignment{Name: name.Text, Value: value, Pos: name.Pos}, nil
}

func (p *parser) expressionStatement() (Stmt, error) {
	pos := p.cur.Pos

	expr, err := p.expression()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(Semicolon); err != nil {
		return nil, err
	}

	return &ExpressionStatement{Expr: expr, Pos: pos}, nil
}

// precedence lists the binary operators from loosest to tightest binding.
// All of them are left-associative.
var precedence = [][]Kind{
	{Or},
	{And},
	{EqualEqual, NotEqual},
	{Less, Greater, LessEqual, GreaterEqual},
	{Plus, Minus},
	{Star, Slash},
}

func (p *parser) expression() (Expr, error) { return p.binary(0) }

// binary parses the operators of precedence level and tighter.
func (p *parser) binary(level int) (Expr, error) {
	if level == len(precedence) {
		return p.unary()
	}

	left, err := p.binary(level + 1)
	if err != nil {
		return nil, err
	}

	for slices.Contains(precedence[level], p.cur.Kind) {
		op := p.cur

		if err := p.advance(); err != nil {
			return nil, err
		}

		right, err := p.binary(level + 1)
		if err != nil {
			return nil, err
		}

		left = &BinaryOp{Left: left, Op: op.Kind, Right: right, Pos: op.Pos}
	}

	return left, nil
}

// unary := ( '-' | '!' | 'not' ) unary | primary
func (p *parser) unary() (Expr, error) {
	if p.cur.Kind != Minus && p.cur.Kind != Not {
		return p.primary()
	}

	op := p.cur

	if err := p.advance(); err != nil {
		return nil, err
	}

	operand, err := p.unary()
	if err != nil {
		return nil, err
	}

	return &UnaryOp{Op: op.Kind, Operand: operand, Pos: op.Pos}, nil
}

func (p *parser) primary() (Expr, error) {
	tok := p.cur

	var expr Expr

	switch tok.Kind {
	case Number:
		expr = &NumberLiteral{Value: tok.Value, Text: tok.Text, Pos: tok.Pos}
	case String:
		s, _ := tok.Value.(string)
		expr = &StringLiteral{Value: s, Pos: tok.Pos}
	case True, False:
		expr = &BooleanLiteral{Value: tok.Kind == True, Pos: tok.Pos}
	case Nil:
		expr = &NilLiteral{Pos: tok.Pos}
	case Ident:
		if p.peek.Kind == LeftParen {
			return p.call()
		}

		expr = &Identifier{Name: tok.Text, Pos: tok.Pos}
	case LeftParen:
		return p.group()
	default:
		return nil, ErrUnexpectedToken.At(tok.Pos).
			Detailf("unexpected token %s", tok).
			With(slog.String("kind", tok.Kind.String()))
	}

	return expr, p.advance()
}

// group := '(' expression ')'
func (p *parser) group() (Expr, error) {
	if err := p.advance(); err != nil {
		return nil, err
	}

	expr, err := p.expression()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(RightParen); err != nil {
		return nil, err
	}

	return expr, nil
}

// call := IDENTIFIER '(' [ expression ( ',' expression )* ] ')'
func (p *parser) call() (Expr, error) {
	name := p.cur

	// Identifier, then '('.
	for range 2 {
		if err := p.advance(); err != nil {
			return nil, err
		}
	}

	call := &FunctionCall{
		Callee:    &Identifier{Name: name.Text, Pos: name.Pos},
		Arguments: make([]Expr, 0),
		Pos:       name.Pos,
	}

	if p.cur.Kind != RightParen {
		for {
			arg, err := p.expression()
			if err != nil {
				return nil, err
			}

			call.Arguments = append(call.Arguments, arg)

			if p.cur.Kind != Comma {
				break
			}

			if err := p.advance(); err != nil {
				return nil, err
			}
		}
	}

	if _, err := p.expect(RightParen); err != nil {
		return nil, err
	}

	return call, nil
}
