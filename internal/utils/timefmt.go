package utils

import (
	"strconv"
	"time"
)

const (
	sortableTimestampLayout = "20060102_150405"
	dateLayout              = "2006-01-02"
	bundleFileExtension     = ".txt"
	bundleNameSeparator     = "_"
)

// FormatSortableTimestamp renders value in local time so that lexical order matches chronological order.
func FormatSortableTimestamp(value time.Time) string {
	return value.In(time.Local).Format(sortableTimestampLayout)
}

// FormatDate renders the local calendar date of value.
func FormatDate(value time.Time) string {
	return value.In(time.Local).Format(dateLayout)
}

// BundleFileName builds "{timestamp}_{label}_{date}.txt" for a bundle created at value.
// The label is sanitized so the name never contains path separators.
func BundleFileName(value time.Time, label string) string {
	return NumberedBundleFileName(value, label, 0)
}

// NumberedBundleFileName is BundleFileName with "_{sequence}" before the extension when
// sequence is positive, for bundles created within the same second.
func NumberedBundleFileName(value time.Time, label string, sequence int) string {
	name := FormatSortableTimestamp(value) + bundleNameSeparator + SanitizeTagName(label) + bundleNameSeparator + FormatDate(value)
	if sequence > 0 {
		name += bundleNameSeparator + strconv.Itoa(sequence)
	}
	return name + bundleFileExtension
}
