package format

import "testing"

func TestRound2(t *testing.T) {
	cases := map[float64]float64{
		10.006:  10.01,
		10.004:  10.0,
		0:       0,
		-1.556:  -1.56,
		99.9999: 100,
	}
	for in, want := range cases {
		if got := Round2(in); got != want {
			t.Errorf("Round2(%v) = %v, want %v", in, got, want)
		}
	}
}

func TestFormatCurrencyIndianGrouping(t *testing.T) {
	cases := map[float64]string{
		0:          "Rs.0.00",
		40:         "Rs.40.00",
		999:        "Rs.999.00",
		1000:       "Rs.1,000.00",
		123456:     "Rs.1,23,456.00",
		1234567.5:  "Rs.12,34,567.50",
		-1234567.5: "-Rs.12,34,567.50",
	}
	for in, want := range cases {
		if got := FormatCurrency(in); got != want {
			t.Errorf("FormatCurrency(%v) = %q, want %q", in, got, want)
		}
	}
}
