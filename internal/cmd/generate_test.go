package cmd

import (
	"testing"
)

func TestURLPrefix(t *testing.T) {
	tests := []struct {
		name string
		dir  string
		want string
	}{
		{name: "bare name", dir: "data", want: "/data/"},
		{name: "relative path", dir: "out/data", want: "/data/"},
		{name: "trailing slash", dir: "out/categories/", want: "/categories/"},
		{name: "absolute path", dir: "/srv/site/data", want: "/data/"},
		{name: "dot segments collapsed", dir: "./data", want: "/data/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := urlPrefix(tt.dir); got != tt.want {
				t.Errorf("urlPrefix(%q) = %q, want %q", tt.dir, got, tt.want)
			}
		})
	}
}
