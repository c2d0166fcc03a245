package interpreter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAndInterpret(t *testing.T) {
	tests := []struct {
		input string
		tree  string
		value int
	}{
		{"7", "7", 7},
		{"4 3 +", "(4 + 3)", 7},
		{"4 3 2 - +", "(4 + (3 - 2))", 5},
		{"4 3 2 - 1 + +", "(4 + ((3 - 2) + 1))", 6},
	}
	for _, tt := range tests {
		expression, err := Parse(tt.input)
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.tree, expression.String())
		assert.Equal(t, tt.value, expression.Interpret())
	}
}

func TestParseMalformed(t *testing.T) {
	for _, input := range []string{"", "+", "1 +", "1 2", "1 x +"} {
		_, err := Parse(input)
		assert.ErrorIs(t, err, ErrMalformedExpression, input)
	}
}
