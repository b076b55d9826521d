package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsOnlyNumbers(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"1104007890", true},
		{"0", true},
		{"", false},
		{"12 34", false},
		{"12a", false},
		{"-12", false},
		{"Апсны", false},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, IsOnlyNumbers(test.input), "IsOnlyNumbers(%q)", test.input)
	}
}

func TestSanitize(t *testing.T) {
	req := struct {
		Name  string
		Tags  []string
		Count int
	}{
		Name:  "  Апсны ",
		Tags:  []string{" a", "b "},
		Count: 3,
	}

	Sanitize(&req)

	assert.Equal(t, "Апсны", req.Name)
	assert.Equal(t, []string{"a", "b"}, req.Tags)
	assert.Equal(t, 3, req.Count)
}

func TestSanitize_PanicsOnNonPointer(t *testing.T) {
	assert.Panics(t, func() { Sanitize(struct{ Name string }{}) })
}

func TestRequestID(t *testing.T) {
	assert.Empty(t, RequestIDFrom(context.Background()))

	ctx := WithRequestID(context.Background(), "abc")
	assert.Equal(t, "abc", RequestIDFrom(ctx))
}
