package textutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeName(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{input: "Chun-Li", expected: "chun-li"},
		{input: "  Dee Jay\n", expected: "deejay"},
		{input: "E.Honda", expected: "e.honda"},
		{input: "", expected: ""},
	}
	for _, test := range testCases {
		require.Equal(t, test.expected, NormalizeName(test.input))
	}
}
