package interpreter

import (
	"fmt"
	"strconv"
)

// An Expression interprets itself to an integer.
type Expression interface {
	Interpret() int
	String() string
}

// NumberExpression is the terminal expression.
type NumberExpression int

func (e NumberExpression) Interpret() int {
	return int(e)
}

func (e NumberExpression) String() string {
	return strconv.Itoa(int(e))
}

// PlusExpression is a nonterminal expression over two subexpressions.
type PlusExpression struct {
	Left, Right Expression
}

func (e PlusExpression) Interpret() int {
	return e.Left.Interpret() + e.Right.Interpret()
}

func (e PlusExpression) String() string {
	return fmt.Sprintf("(%s + %s)", e.Left, e.Right)
}

// MinusExpression is a nonterminal expression over two subexpressions.
type MinusExpression struct {
	Left, Right Expression
}

func (e MinusExpression) Interpret() int {
	return e.Left.Interpret() - e.Right.Interpret()
}

func (e MinusExpression) String() string {
	return fmt.Sprintf("(%s - %s)", e.Left, e.Right)
}
