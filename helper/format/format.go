package format

import (
	"math"
	"strconv"
	"strings"
)

// Round2 membulatkan nilai uang ke 2 desimal.
func Round2(value float64) float64 {
	return math.Round(value*100) / 100
}

// FormatCurrency memformat angka menjadi rupee dengan pemisah ribuan India
// (pola 2-2-3), contoh: 1234567.5 -> "Rs.12,34,567.50"
func FormatCurrency(value float64) string {
	strValue := strconv.FormatFloat(Round2(value), 'f', 2, 64)

	parts := strings.Split(strValue, ".")
	intPart := parts[0]
	decimalPart := parts[1]

	negative := strings.HasPrefix(intPart, "-")
	if negative {
		intPart = intPart[1:]
	}

	var result []string
	if len(intPart) > 3 {
		// tiga digit terakhir, sisanya dikelompokkan per dua digit
		result = append(result, intPart[len(intPart)-3:])
		intPart = intPart[:len(intPart)-3]
		for len(intPart) > 2 {
			result = append([]string{intPart[len(intPart)-2:]}, result...)
			intPart = intPart[:len(intPart)-2]
		}
	}
	result = append([]string{intPart}, result...)

	formatted := "Rs." + strings.Join(result, ",") + "." + decimalPart
	if negative {
		formatted = "-" + formatted
	}
	return formatted
}
