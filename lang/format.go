package lang

import (
	"context"
	"encoding/json"
	"io"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"
)

// Format writes the program as canonical Jan source. Nested blocks are
// indented by indent spaces; an indent of zero writes everything on one
// line. Parentheses are emitted only where precedence requires them.
func (p *Program) Format(_ context.Context, w io.Writer, indent int) error {
	pr := &printer{indent: indent}

	for i, stmt := range p.Statements {
		if i > 0 {
			pr.newline()
		}

		pr.stmt(stmt)
	}

	pr.b.WriteByte('\n')

	_, err := io.WriteString(w, pr.b.String())

	return err
}

// FormatJSON writes the program tree as JSON.
func (p *Program) FormatJSON(_ context.Context, w io.Writer, indent int) error {
	var (
		data []byte
		err  error
	)

	if indent > 0 {
		data, err = json.MarshalIndent(p.ToMap(), "", strings.Repeat(" ", indent))
	} else {
		data, err = json.Marshal(p.ToMap())
	}

	if err != nil {
		return err
	}

	_, err = w.Write(append(data, '\n'))

	return err
}

// FormatYAML writes the program tree as YAML. An indent of zero selects
// flow style.
func (p *Program) FormatYAML(ctx context.Context, w io.Writer, indent int) error {
	var opts []yaml.EncodeOption
	if indent > 0 {
		opts = append(opts, yaml.Indent(indent))
	} else {
		opts = append(opts, yaml.Flow(true))
	}

	data, err := yaml.MarshalContext(ctx, p.ToMap(), opts...)
	if err != nil {
		return err
	}

	_, err = w.Write(data)

	return err
}

// FormatTree writes an outline of the program tree, one node per line,
// with children indented by indent spaces under their parent.
func (p *Program) FormatTree(_ context.Context, w io.Writer, indent int) error {
	var b strings.Builder

	var walk func(n Node, depth int)

	walk = func(n Node, depth int) {
		b.WriteString(strings.Repeat(" ", depth*indent))
		b.WriteString(describe(n))
		b.WriteByte('\n')

		for _, c := range children(n) {
			walk(c, depth+1)
		}
	}

	walk(p, 0)

	_, err := io.WriteString(w, b.String())

	return err
}

// printer renders syntax trees as source text.
type printer struct {
	b      strings.Builder
	indent int
	depth  int
}

func (p *printer) newline() {
	if p.indent == 0 {
		p.b.WriteByte(' ')

		return
	}

	p.b.WriteByte('\n')
	p.b.WriteString(strings.Repeat(" ", p.depth*p.indent))
}

func (p *printer) stmt(s Stmt) {
	switch s := s.(type) {
	case *ExpressionStatement:
		p.expr(s.Expr, 0)
		p.b.WriteByte(';')

	case *Assignment:
		p.b.WriteString(s.Name + " = ")
		p.expr(s.Value, 0)
		p.b.WriteByte(';')

	case *VariableDeclaration:
		p.b.WriteString("var " + s.Name)

		if s.Initializer != nil {
			p.b.WriteString(" = ")
			p.expr(s.Initializer, 0)
		}

		p.b.WriteByte(';')

	case *IfStatement:
		p.b.WriteString("if (")
		p.expr(s.Condition, 0)
		p.b.WriteString(") ")
		p.stmt(s.Then)

		if s.Else != nil {
			p.b.WriteString(" else ")
			p.stmt(s.Else)
		}

	case *WhileStatement:
		p.b.WriteString("while (")
		p.expr(s.Condition, 0)
		p.b.WriteString(") ")
		p.stmt(s.Body)

	case *Block:
		p.block(s)

	case *FunctionDeclaration:
		p.b.WriteString("fun " + s.Name + "(" + strings.Join(s.Params, ", ") + ") ")
		p.block(s.Body)

	case *ReturnStatement:
		p.b.WriteString("return")

		if s.Value != nil {
			p.b.WriteByte(' ')
			p.expr(s.Value, 0)
		}

		p.b.WriteByte(';')
	}
}

func (p *printer) block(b *Block) {
	if len(b.Statements) == 0 {
		p.b.WriteString("{}")

		return
	}

	p.b.WriteByte('{')
	p.depth++

	for _, s := range b.Statements {
		p.newline()
		p.stmt(s)
	}

	p.depth--
	p.newline()
	p.b.WriteByte('}')
}

// Binding strength of expression forms, loosest first.
const (
	precOr = iota + 1
	precAnd
	precEquality
	precComparison
	precTerm
	precFactor
	precUnary
	precPrimary
)

func binaryPrec(op Kind) int {
	switch op {
	case Or:
		return precOr
	case And:
		return precAnd
	case EqualEqual, NotEqual:
		return precEquality
	case Less, Greater, LessEqual, GreaterEqual:
		return precComparison
	case Plus, Minus:
		return precTerm
	default:
		return precFactor
	}
}

// expr writes e, parenthesized if it binds more loosely than floor.
func (p *printer) expr(e Expr, floor int) {
	switch e := e.(type) {
	case *BinaryOp:
		prec := binaryPrec(e.Op)
		if prec < floor {
			p.b.WriteByte('(')
			defer p.b.WriteByte(')')
		}

		// Left-associative: a right operand of equal strength needs
		// parentheses.
		p.expr(e.Left, prec)
		p.b.WriteString(" " + e.Op.String() + " ")
		p.expr(e.Right, prec+1)

	case *UnaryOp:
		p.b.WriteString(e.Op.String())
		p.expr(e.Operand, precUnary)

	case *NumberLiteral:
		p.b.WriteString(numberText(e))

	case *StringLiteral:
		p.b.WriteString(quote(e.Value))

	case *BooleanLiteral:
		p.b.WriteString(strconv.FormatBool(e.Value))

	case *NilLiteral:
		p.b.WriteString("nil")

	case *Identifier:
		p.b.WriteString(e.Name)

	case *FunctionCall:
		p.expr(e.Callee, precPrimary)
		p.b.WriteByte('(')

		for i, arg := range e.Arguments {
			if i > 0 {
				p.b.WriteString(", ")
			}

			p.expr(arg, 0)
		}

		p.b.WriteByte(')')
	}
}

// numberText returns the source text of n, or a lexable rendering of its
// value for synthesized literals.
func numberText(n *NumberLiteral) string {
	if n.Text != "" {
		return n.Text
	}

	switch v := n.Value.(type) {
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		s := strconv.FormatFloat(v, 'f', -1, 64)
		if !strings.ContainsRune(s, '.') {
			s += ".0"
		}

		return s
	default:
		return "0"
	}
}

// quote renders s as a string literal using only escapes the lexer
// understands.
func quote(s string) string {
	var b strings.Builder

	b.WriteByte('"')

	for _, r := range s {
		switch r {
		case '"', '\\':
			b.WriteByte('\\')
			b.WriteRune(r)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		default:
			b.WriteRune(r)
		}
	}

	b.WriteByte('"')

	return b.String()
}
