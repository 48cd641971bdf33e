package money

import (
	"encoding/json"
	"testing"

	"github.com/khaldoun-digital/baytkum-backend/pkg/i18n"
)

func TestFromDecimalString(t *testing.T) {
	t.Parallel()

	cases := map[string]Fils{
		"12.500": 12500,
		"0.001":  1,
		"5":      5000,
		"2.5":    2500,
		"0":      0,
	}
	for input, want := range cases {
		got, err := FromDecimalString(input)
		if err != nil {
			t.Fatalf("FromDecimalString(%q): %v", input, err)
		}
		if got != want {
			t.Fatalf("FromDecimalString(%q) = %d, want %d", input, got, want)
		}
	}
}

func TestFromDecimalStringRejectsSubFilsPrecision(t *testing.T) {
	t.Parallel()

	if _, err := FromDecimalString("1.0005"); err == nil {
		t.Fatal("expected error for four fractional digits")
	}
	if _, err := FromDecimalString("abc"); err == nil {
		t.Fatal("expected error for non-numeric input")
	}
}

func TestParsePriceRejectsNegative(t *testing.T) {
	t.Parallel()

	if _, err := ParsePrice("-1.000"); err == nil {
		t.Fatal("expected error for negative price")
	}
	if got, err := ParsePrice("3.250"); err != nil || got != 3250 {
		t.Fatalf("ParsePrice = %d, %v", got, err)
	}
}

func TestStringAlwaysThreeDecimals(t *testing.T) {
	t.Parallel()

	if got := Fils(15000).String(); got != "15.000" {
		t.Fatalf("got %q", got)
	}
	if got := Fils(2500).String(); got != "2.500" {
		t.Fatalf("got %q", got)
	}
	if got := Fils(1).String(); got != "0.001" {
		t.Fatalf("got %q", got)
	}
}

func TestMul(t *testing.T) {
	t.Parallel()

	if got := Fils(5000).Mul(3); got != 15000 {
		t.Fatalf("5.000 * 3 = %s", got)
	}
}

func TestLocalizeArabicDigits(t *testing.T) {
	t.Parallel()

	latin := Fils(12500).Localize(i18n.LangEN)
	if latin != "12.500" {
		t.Fatalf("unexpected english rendering: %q", latin)
	}

	arabic := Fils(12500).Localize(i18n.LangAR)
	if arabic == latin {
		t.Fatalf("arabic rendering should differ from latin, got %q", arabic)
	}
	for _, r := range arabic {
		// Arabic-Indic digit block.
		if r >= '0' && r <= '9' {
			t.Fatalf("arabic rendering contains latin digit: %q", arabic)
		}
	}
}

func TestJSONRoundTrip(t *testing.T) {
	t.Parallel()

	raw, err := json.Marshal(Fils(7250))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(raw) != `"7.250"` {
		t.Fatalf("unexpected json: %s", raw)
	}

	var decoded Fils
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded != 7250 {
		t.Fatalf("round trip mismatch: %d", decoded)
	}

	if err := json.Unmarshal([]byte("3.125"), &decoded); err != nil {
		t.Fatalf("bare number unmarshal: %v", err)
	}
	if decoded != 3125 {
		t.Fatalf("bare number mismatch: %d", decoded)
	}
}
