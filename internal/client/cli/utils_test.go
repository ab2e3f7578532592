package cli

import "testing"

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "Rp 0"},
		{500, "Rp 500"},
		{45000, "Rp 45.000"},
		{1250000, "Rp 1.250.000"},
		{-45000, "-Rp 45.000"},
	}
	for _, tc := range tests {
		if got := formatPrice(tc.in); got != tc.want {
			t.Errorf("formatPrice(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatBadge(t *testing.T) {
	if got := formatBadge(3); got != "cart:3" {
		t.Fatalf("got %q", got)
	}
}

func TestShorten(t *testing.T) {
	if got := shorten("short", 10); got != "short" {
		t.Fatalf("got %q", got)
	}
	if got := shorten("a very long food name", 10); len([]rune(got)) != 10 {
		t.Fatalf("got %q", got)
	}
}
