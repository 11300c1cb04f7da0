package cmd

import (
	"testing"

	"github.com/google/uuid"
)

func TestAddressFromUUID(t *testing.T) {
	u := uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")

	tests := []struct {
		name  string
		width int
		want  string
	}{
		{name: "single digit", width: 1, want: "1"},
		{name: "default width", width: 4, want: "123e"},
		{name: "crosses dash boundary", width: 10, want: "123e4567e8"},
		{name: "full uuid", width: 32, want: "123e4567e89b12d3a456426614174000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := addressFromUUID(u, tt.width); got != tt.want {
				t.Errorf("addressFromUUID(width %d) = %q, want %q", tt.width, got, tt.want)
			}
		})
	}
}
