// Package lang implements Jan, a small dynamically-typed imperative
// scripting language, as a tree-walking interpreter.
//
// Source text is scanned by a [Lexer], parsed by [Parse] into a [Program]
// and executed by an [Interpreter] session. Observable behavior is printed
// output and variable state.
//
// # Grammar
//
// Informal EBNF:
//
//	program    → statement* EOF
//	statement  → ifStmt | whileStmt | funDecl | returnStmt | block | varDecl
//	           | IDENTIFIER '=' expression ';'
//	           | expression ';'
//	ifStmt     → 'if' '(' expression ')' statement ( 'else' statement )?
//	whileStmt  → 'while' '(' expression ')' statement
//	funDecl    → 'fun' IDENTIFIER '(' ( IDENTIFIER ( ',' IDENTIFIER )* )? ')' block
//	returnStmt → 'return' expression? ';'
//	block      → '{' statement* '}'
//	varDecl    → 'var' IDENTIFIER ( '=' expression )? ';'
//	expression → or
//	or         → and ( 'or' and )*
//	and        → equality ( 'and' equality )*
//	equality   → comparison ( ( '==' | '!=' ) comparison )*
//	comparison → term ( ( '<' | '>' | '<=' | '>=' ) term )*
//	term       → factor ( ( '+' | '-' ) factor )*
//	factor     → unary ( ( '*' | '/' ) unary )*
//	unary      → ( '-' | '!' | 'not' ) unary | primary
//	primary    → NUMBER | STRING | 'true' | 'false' | 'nil'
//	           | IDENTIFIER ( '(' ( expression ( ',' expression )* )? ')' )?
//	           | '(' expression ')'
//
// Comments run from // to the end of the line.
//
// # Example
//
//	fun fib(n) {
//	  if (n < 2) return n;
//	  return fib(n - 1) + fib(n - 2);
//	}
//
//	i = 0;
//	while (i < 10) {
//	  fib(i);      // prints each result
//	  i = i + 1;
//	}
//
// # Semantics
//
// Values are nil, booleans, 64-bit integers, 64-bit floats, strings and
// functions. Division always produces a float. "+" concatenates when either
// operand is a string. Only nil and false are falsy. The operators "and"
// and "or" evaluate both operands and produce a boolean.
//
// Assigning to a name that is not bound anywhere declares it in the current
// scope; "var" always declares in the current scope. Blocks and function
// calls open new scopes, and functions close over the scope they were
// declared in.
//
// An expression statement whose value is not nil prints that value.
//
// # Errors
//
// Every failure is an [*Error] derived from one of the sentinels in this
// package and matches its category ([ErrLex], [ErrParse] or [ErrRuntime])
// with [errors.Is].
package lang
