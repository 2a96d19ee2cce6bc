package utils

import (
	"strconv"
	"strings"
)

const sizeUnitStep = 1024

var sizeUnits = []string{"b", "kb", "mb", "gb", "tb"}

// FormatFileSize renders a byte count as a short lower-case size such as "512b", "1.5kb" or "12mb".
func FormatFileSize(byteCount int64) string {
	if byteCount <= 0 {
		return "0" + sizeUnits[0]
	}
	if byteCount < sizeUnitStep {
		return strconv.FormatInt(byteCount, 10) + sizeUnits[0]
	}
	scaled := float64(byteCount)
	unitIndex := 0
	for scaled >= sizeUnitStep && unitIndex < len(sizeUnits)-1 {
		scaled /= sizeUnitStep
		unitIndex++
	}
	if scaled < 10 {
		rendered := strings.TrimSuffix(strconv.FormatFloat(scaled, 'f', 1, 64), ".0")
		return rendered + sizeUnits[unitIndex]
	}
	return strconv.FormatFloat(scaled, 'f', 0, 64) + sizeUnits[unitIndex]
}
