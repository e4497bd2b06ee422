package latex

import "testing"

func TestStrip(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"accent bare form", `G\'omez`, "Gomez"},
		{"accent braced form", `M\"{o}bius strip`, "Mobius strip"},
		{"caron accent", `Private\v{s}`, "Privates"},
		{"command with argument removed", `\textbf{Bold} rest`, "rest"},
		{"command with empty argument", `\mbox{} x`, "x"},
		{"plain braces removed", `{Navier}-{Stokes} equations`, "Navier-Stokes equations"},
		{"escaped ampersand survives", `Johnson \& Sons`, `Johnson \& Sons`},
		{"apostrophe between letters collapsed", `d'Alembert operator`, "dAlembert operator"},
		{"whitespace collapsed", "A \t\n  B", "A B"},
		{"empty input", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Strip(tt.in); got != tt.want {
				t.Errorf("Strip(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeTitle(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"A {Nested} Title!", "a nested title"},
		{`\textbf{Strong} Results`, "strong results"},
		{"Flow--based; Methods (2nd)", "flow based methods 2nd"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := NormalizeTitle(tt.in); got != tt.want {
			t.Errorf("NormalizeTitle(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeTitle_EquivalentForms(t *testing.T) {
	a := NormalizeTitle("The {SPH} Method")
	b := NormalizeTitle("The SPH method")
	if a != b {
		t.Errorf("normalized forms differ: %q vs %q", a, b)
	}
}
