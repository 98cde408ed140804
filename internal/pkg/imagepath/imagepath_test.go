package imagepath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"whitespace only", "   ", ""},
		{"relative path gets slash", "uploads/a.png", "/uploads/a.png"},
		{"already rooted", "/uploads/a.png", "/uploads/a.png"},
		{"protocol relative", "//cdn.example.com/a.png", "//cdn.example.com/a.png"},
		{"https url", "https://cdn.example.com/a.png", "https://cdn.example.com/a.png"},
		{"http url", "http://example.com/x.jpg", "http://example.com/x.jpg"},
		{"data uri", "data:image/png;base64,AAAA", "data:image/png;base64,AAAA"},
		{"trims whitespace", "  uploads/b.jpg ", "/uploads/b.jpg"},
		{"bare filename", "logo.svg", "/logo.svg"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Normalize(tc.input))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"", "uploads/a.png", "/rooted.png", "https://x.test/a", "weird:scheme-thing"}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "input %q", in)
	}
}
