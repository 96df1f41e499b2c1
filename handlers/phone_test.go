package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"9999999999", "9999999999"},
		{"+91 99999 99999", "+919999999999"},
		{"+91-99999-99999", "+919999999999"},
		{"(987) 654-3210", "9876543210"},
		{"  98765\t43210 ", "9876543210"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, normalizePhone(tt.in), "input %q", tt.in)
	}
}
