package interpreter

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformedExpression the token stream does not form one expression
var ErrMalformedExpression = errors.New("malformed expression")

// Parse builds an expression tree from a space-separated postfix token
// stream, e.g. "4 3 2 - +".
func Parse(input string) (Expression, error) {
	var stack []Expression
	pop2 := func() (Expression, Expression, error) {
		if len(stack) < 2 {
			return nil, nil, ErrMalformedExpression
		}
		left, right := stack[len(stack)-2], stack[len(stack)-1]
		stack = stack[:len(stack)-2]
		return left, right, nil
	}
	for _, token := range strings.Fields(input) {
		switch token {
		case "+":
			left, right, err := pop2()
			if err != nil {
				return nil, err
			}
			stack = append(stack, PlusExpression{Left: left, Right: right})
		case "-":
			left, right, err := pop2()
			if err != nil {
				return nil, err
			}
			stack = append(stack, MinusExpression{Left: left, Right: right})
		default:
			n, err := strconv.Atoi(token)
			if err != nil {
				return nil, fmt.Errorf("%w: bad token %q", ErrMalformedExpression, token)
			}
			stack = append(stack, NumberExpression(n))
		}
	}
	if len(stack) != 1 {
		return nil, ErrMalformedExpression
	}
	return stack[0], nil
}
