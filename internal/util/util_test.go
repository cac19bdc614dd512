package util

import "testing"

func TestSanitizeEmailKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		email    string
		expected string
	}{
		{name: "plain email", email: "joao@empresa.com", expected: "joao@empresa_com"},
		{name: "uppercase is lowered", email: "Maria.Silva@Empresa.COM", expected: "maria_silva@empresa_com"},
		{name: "all illegal characters", email: "a.b#c$d[e]f/g h@x.y", expected: "a_b_c_d_e_f_g_h@x_y"},
		{name: "surrounding whitespace trimmed", email: "  ana@empresa.com ", expected: "ana@empresa_com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := SanitizeEmailKey(tt.email); got != tt.expected {
				t.Fatalf("SanitizeEmailKey(%q) = %q, want %q", tt.email, got, tt.expected)
			}
		})
	}
}

func TestSanitizeEmailKeyIsStable(t *testing.T) {
	t.Parallel()

	// The transform applied twice must equal the transform applied once.
	once := SanitizeEmailKey("Joao.Souza@Empresa.com")
	twice := SanitizeEmailKey(once)
	if once != twice {
		t.Fatalf("sanitization is not idempotent: %q != %q", once, twice)
	}
}

func TestParseCurrency(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		raw      string
		expected float64
		ok       bool
	}{
		{name: "full pt-BR form", raw: "R$ 1.234,56", expected: 1234.56, ok: true},
		{name: "no currency prefix", raw: "1.234,56", expected: 1234.56, ok: true},
		{name: "no thousands separator", raw: "130,00", expected: 130, ok: true},
		{name: "millions", raw: "R$ 1.234.567,89", expected: 1234567.89, ok: true},
		{name: "bare integer", raw: "42", expected: 42, ok: true},
		{name: "empty is absent", raw: "", expected: 0, ok: false},
		{name: "whitespace is absent", raw: "   ", expected: 0, ok: false},
		{name: "garbage is absent", raw: "a combinar", expected: 0, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := ParseCurrency(tt.raw)
			if ok != tt.ok || got != tt.expected {
				t.Fatalf("ParseCurrency(%q) = (%v, %v), want (%v, %v)", tt.raw, got, ok, tt.expected, tt.ok)
			}
		})
	}
}

func TestFormatCurrency(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		value    float64
		expected string
	}{
		{name: "cents only", value: 0.5, expected: "R$ 0,50"},
		{name: "hundreds", value: 130, expected: "R$ 130,00"},
		{name: "thousands grouped", value: 1234.56, expected: "R$ 1.234,56"},
		{name: "millions grouped", value: 1234567.89, expected: "R$ 1.234.567,89"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatCurrency(tt.value); got != tt.expected {
				t.Fatalf("FormatCurrency(%v) = %q, want %q", tt.value, got, tt.expected)
			}
		})
	}
}

func TestDisplayValor(t *testing.T) {
	t.Parallel()

	if got := DisplayValor(""); got != "não informado" {
		t.Fatalf("DisplayValor(empty) = %q, want %q", got, "não informado")
	}
	if got := DisplayValor("nada"); got != "não informado" {
		t.Fatalf("DisplayValor(unparseable) = %q, want %q", got, "não informado")
	}
	if got := DisplayValor("R$ 1.234,56"); got != "R$ 1.234,56" {
		t.Fatalf("DisplayValor round-trip = %q", got)
	}
}
