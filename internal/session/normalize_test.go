package session

import "testing"

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Olá", "ola"},
		{"  ola  ", "ola"},
		{"OBRIGADO", "obrigado"},
		{"até logo", "ate logo"},
		{"ção", "cao"},
		{"", ""},
		{"   ", ""},
	}

	for _, tt := range tests {
		if got := normalizeText(tt.in); got != tt.want {
			t.Errorf("normalizeText(%q) = %q; want %q", tt.in, got, tt.want)
		}
	}
}
