package lang

// Node is implemented by every syntax tree node.
type Node interface {
	// Position returns the location of the node in source text.
	Position() Pos
}

// Expr is an expression node. The set of implementations is closed:
// [BinaryOp], [UnaryOp], [NumberLiteral], [StringLiteral], [BooleanLiteral],
// [NilLiteral], [Identifier] and [FunctionCall].
type Expr interface {
	Node
	exprNode()
}

// Stmt is a statement node. The set of implementations is closed:
// [ExpressionStatement], [Assignment], [VariableDeclaration], [IfStatement],
// [WhileStatement], [Block], [FunctionDeclaration] and [ReturnStatement].
type Stmt interface {
	Node
	stmtNode()
}

// Program is the root of a parsed source.
type Program struct {
	Statements []Stmt
}

// Position returns the position of the first statement.
func (p *Program) Position() Pos {
	if len(p.Statements) == 0 {
		return Pos{}
	}

	return p.Statements[0].Position()
}

// Expressions.
type (
	// BinaryOp is a binary operation. Pos is the operator's position.
	BinaryOp struct {
		Left  Expr
		Right Expr
		Pos   Pos
		Op    Kind
	}

	// UnaryOp is a prefix operation: negation or logical not.
	UnaryOp struct {
		Operand Expr
		Pos     Pos
		Op      Kind
	}

	// NumberLiteral holds an int64 or float64 constant.
	NumberLiteral struct {
		Value any
		Text  string
		Pos   Pos
	}

	StringLiteral struct {
		Value string
		Pos   Pos
	}

	BooleanLiteral struct {
		Pos   Pos
		Value bool
	}

	NilLiteral struct {
		Pos Pos
	}

	// Identifier is a reference to a variable.
	Identifier struct {
		Name string
		Pos  Pos
	}

	// FunctionCall applies Callee to Arguments.
	FunctionCall struct {
		Callee    Expr
		Arguments []Expr
		Pos       Pos
	}
)

// Statements.
type (
	// ExpressionStatement evaluates Expr and prints any non-nil result.
	ExpressionStatement struct {
		Expr Expr
		Pos  Pos
	}

	// Assignment binds Value to the nearest existing Name, or declares it in
	// the current scope if none exists.
	Assignment struct {
		Value Expr
		Name  string
		Pos   Pos
	}

	// VariableDeclaration binds Name in the current scope. A nil Initializer
	// binds nil.
	VariableDeclaration struct {
		Initializer Expr
		Name        string
		Pos         Pos
	}

	// IfStatement runs Then if Condition is truthy, otherwise Else if present.
	IfStatement struct {
		Condition Expr
		Then      Stmt
		Else      Stmt
		Pos       Pos
	}

	WhileStatement struct {
		Condition Expr
		Body      Stmt
		Pos       Pos
	}

	// Block runs Statements in a child scope.
	Block struct {
		Statements []Stmt
		Pos        Pos
	}

	// FunctionDeclaration binds Name to a closure over the declaring scope.
	FunctionDeclaration struct {
		Body   *Block
		Name   string
		Params []string
		Pos    Pos
	}

	// ReturnStatement leaves the enclosing function. A nil Value returns nil.
	ReturnStatement struct {
		Value Expr
		Pos   Pos
	}
)

func (n *BinaryOp) Position() Pos       { return n.Pos }
func (n *UnaryOp) Position() Pos        { return n.Pos }
func (n *NumberLiteral) Position() Pos  { return n.Pos }
func (n *StringLiteral) Position() Pos  { return n.Pos }
func (n *BooleanLiteral) Position() Pos { return n.Pos }
func (n *NilLiteral) Position() Pos     { return n.Pos }
func (n *Identifier) Position() Pos     { return n.Pos }
func (n *FunctionCall) Position() Pos   { return n.Pos }

func (n *ExpressionStatement) Position() Pos { return n.Pos }
func (n *Assignment) Position() Pos          { return n.Pos }
func (n *VariableDeclaration) Position() Pos { return n.Pos }
func (n *IfStatement) Position() Pos         { return n.Pos }
func (n *WhileStatement) Position() Pos      { return n.Pos }
func (n *Block) Position() Pos               { return n.Pos }
func (n *FunctionDeclaration) Position() Pos { return n.Pos }
func (n *ReturnStatement) Position() Pos     { return n.Pos }

func (*BinaryOp) exprNode()       {}
func (*UnaryOp) exprNode()        {}
func (*NumberLiteral) exprNode()  {}
func (*StringLiteral) exprNode()  {}
func (*BooleanLiteral) exprNode() {}
func (*NilLiteral) exprNode()     {}
func (*Identifier) exprNode()     {}
func (*FunctionCall) exprNode()   {}

func (*ExpressionStatement) stmtNode() {}
func (*Assignment) stmtNode()          {}
func (*VariableDeclaration) stmtNode() {}
func (*IfStatement) stmtNode()         {}
func (*WhileStatement) stmtNode()      {}
func (*Block) stmtNode()               {}
func (*FunctionDeclaration) stmtNode() {}
func (*ReturnStatement) stmtNode()     {}
