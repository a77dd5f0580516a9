package lang

import (
	"encoding/json"
	"strings"
)

// MarshalJSON implements json.Marshaler for Program.
func (p *Program) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.ToMap())
}

// ToMap converts the program to nested native Go maps and slices. Every
// node becomes a map with a "kind" key naming its type.
func (p *Program) ToMap() map[string]any {
	return nodeMap(p)
}

// NodeKind names the concrete type of n, for example "BinaryOp".
func NodeKind(n Node) string {
	switch n.(type) {
	case *Program:
		return "Program"
	case *BinaryOp:
		return "BinaryOp"
	case *UnaryOp:
		return "UnaryOp"
	case *NumberLiteral:
		return "NumberLiteral"
	case *StringLiteral:
		return "StringLiteral"
	case *BooleanLiteral:
		return "BooleanLiteral"
	case *NilLiteral:
		return "NilLiteral"
	case *Identifier:
		return "Identifier"
	case *FunctionCall:
		return "FunctionCall"
	case *ExpressionStatement:
		return "ExpressionStatement"
	case *Assignment:
		return "Assignment"
	case *VariableDeclaration:
		return "VariableDeclaration"
	case *IfStatement:
		return "IfStatement"
	case *WhileStatement:
		return "WhileStatement"
	case *Block:
		return "Block"
	case *FunctionDeclaration:
		return "FunctionDeclaration"
	case *ReturnStatement:
		return "ReturnStatement"
	default:
		return "Unknown"
	}
}

func nodeMap(n Node) map[string]any {
	m := map[string]any{"kind": NodeKind(n)}

	if pos := n.Position(); pos.IsValid() {
		m["line"] = pos.Line
		m["column"] = pos.Column
	}

	switch n := n.(type) {
	case *Program:
		m["statements"] = stmtMaps(n.Statements)

	case *BinaryOp:
		m["op"] = n.Op.String()
		m["left"] = nodeMap(n.Left)
		m["right"] = nodeMap(n.Right)

	case *UnaryOp:
		m["op"] = n.Op.String()
		m["operand"] = nodeMap(n.Operand)

	case *NumberLiteral:
		m["value"] = n.Value

	case *StringLiteral:
		m["value"] = n.Value

	case *BooleanLiteral:
		m["value"] = n.Value

	case *Identifier:
		m["name"] = n.Name

	case *FunctionCall:
		m["callee"] = nodeMap(n.Callee)

		args := make([]any, len(n.Arguments))
		for i, arg := range n.Arguments {
			args[i] = nodeMap(arg)
		}

		m["arguments"] = args

	case *ExpressionStatement:
		m["expr"] = nodeMap(n.Expr)

	case *Assignment:
		m["name"] = n.Name
		m["value"] = nodeMap(n.Value)

	case *VariableDeclaration:
		m["name"] = n.Name
		if n.Initializer != nil {
			m["initializer"] = nodeMap(n.Initializer)
		}

	case *IfStatement:
		m["condition"] = nodeMap(n.Condition)
		m["then"] = nodeMap(n.Then)
		if n.Else != nil {
			m["else"] = nodeMap(n.Else)
		}

	case *WhileStatement:
		m["condition"] = nodeMap(n.Condition)
		m["body"] = nodeMap(n.Body)

	case *Block:
		m["statements"] = stmtMaps(n.Statements)

	case *FunctionDeclaration:
		m["name"] = n.Name
		m["params"] = append([]string{}, n.Params...)
		m["body"] = nodeMap(n.Body)

	case *ReturnStatement:
		if n.Value != nil {
			m["value"] = nodeMap(n.Value)
		}
	}

	return m
}

func stmtMaps(stmts []Stmt) []any {
	out := make([]any, len(stmts))
	for i, stmt := range stmts {
		out[i] = nodeMap(stmt)
	}

	return out
}

// describe labels n for tree dumps: its kind followed by its scalar fields.
func describe(n Node) string {
	var b strings.Builder

	b.WriteString(NodeKind(n))

	switch n := n.(type) {
	case *BinaryOp:
		b.WriteString(" " + n.Op.String())
	case *UnaryOp:
		b.WriteString(" " + n.Op.String())
	case *NumberLiteral:
		b.WriteString(" " + Stringify(n.Value))
	case *StringLiteral:
		b.WriteString(" " + quote(n.Value))
	case *BooleanLiteral:
		b.WriteString(" " + Stringify(n.Value))
	case *Identifier:
		b.WriteString(" " + n.Name)
	case *Assignment:
		b.WriteString(" " + n.Name)
	case *VariableDeclaration:
		b.WriteString(" " + n.Name)
	case *FunctionDeclaration:
		b.WriteString(" " + n.Name + "(" + strings.Join(n.Params, ", ") + ")")
	}

	return b.String()
}

// children returns the direct child nodes of n in source order.
func children(n Node) []Node {
	switch n := n.(type) {
	case *Program:
		return stmtNodes(n.Statements)
	case *BinaryOp:
		return []Node{n.Left, n.Right}
	case *UnaryOp:
		return []Node{n.Operand}
	case *FunctionCall:
		out := []Node{n.Callee}
		for _, arg := range n.Arguments {
			out = append(out, arg)
		}

		return out
	case *ExpressionStatement:
		return []Node{n.Expr}
	case *Assignment:
		return []Node{n.Value}
	case *VariableDeclaration:
		if n.Initializer != nil {
			return []Node{n.Initializer}
		}
	case *IfStatement:
		if n.Else != nil {
			return []Node{n.Condition, n.Then, n.Else}
		}

		return []Node{n.Condition, n.Then}
	case *WhileStatement:
		return []Node{n.Condition, n.Body}
	case *Block:
		return stmtNodes(n.Statements)
	case *FunctionDeclaration:
		return []Node{n.Body}
	case *ReturnStatement:
		if n.Value != nil {
			return []Node{n.Value}
		}
	}

	return nil
}

func stmtNodes(stmts []Stmt) []Node {
	out := make([]Node, len(stmts))
	for i, stmt := range stmts {
		out[i] = stmt
	}

	return out
}
