package lifesim

import "testing"

func TestMoney(t *testing.T) {
	testCases := []struct {
		m    Money
		want string
	}{
		{M(1234.567, "EUR"), "€1,234.57"},
		{M(1234.5, "USD"), "$1,234.50"},
		{M(-3, "USD"), "-$3.00"},
		{M(10, "JPY"), "¥10"},
	}
	for _, tc := range testCases {
		if got := tc.m.String(); got != tc.want {
			t.Errorf("%v.String() = %q, want %q", tc.m.value, got, tc.want)
		}
	}
	if !M(1.004, "EUR").Round().Equal(M(1, "EUR")) {
		t.Errorf("M(1.004, EUR).Round() = %v, want 1", M(1.004, "EUR").Round().value)
	}
}

func TestGrams(t *testing.T) {
	if got := Grams(12.34567); got != "12.346 g" {
		t.Errorf("Grams() = %q, want %q", got, "12.346 g")
	}
}
