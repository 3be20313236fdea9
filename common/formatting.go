package common

import (
	"math"
	"strconv"
	"strings"
)

// FormatNumber format number to short format (e.g. 5000 > 5k). d parameter determines number of digits after the decimal point.
func FormatNumber(n float64, d int) string {
	abs := math.Abs(n)

	precision := math.Pow10(d)
	if d < 1 {
		precision = 1
	}

	switch {
	case abs >= 1e18:
		return formatFloatToMinPrecisionString(abs/1e18, precision) + "E"
	case abs >= 1e15:
		return formatFloatToMinPrecisionString(abs/1e15, precision) + "P"
	case abs >= 1e12:
		return formatFloatToMinPrecisionString(abs/1e12, precision) + "T"
	case abs >= 1e9:
		return formatFloatToMinPrecisionString(abs/1e9, precision) + "G"
	case abs >= 1e6:
		return formatFloatToMinPrecisionString(abs/1e6, precision) + "M"
	case abs >= 1e3:
		return formatFloatToMinPrecisionString(abs/1e3, precision) + "K"
	}

	return formatFloatToMinPrecisionString(abs, precision)
}

// FormatMebiBytes renders a byte count as mebibytes with two decimals.
func FormatMebiBytes(b int64) string {
	return strconv.FormatFloat(float64(b)/float64(MebiByte), 'f', 2, 64) + " MB"
}

func formatFloatToMinPrecisionString(n float64, p float64) string {
	rounded := math.Round(n*p) / p
	return strconv.FormatFloat(rounded, 'f', -1, 64)
}

func RemoveLeadingAndTrailingSlashes(str string) string {
	return strings.Trim(str, "/")
}
