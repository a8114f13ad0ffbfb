package cleaner

import "fmt"

// FormatSize renders a byte count using IEC binary prefixes with two
// decimals, e.g. "2.00 KiB". Counts below one KiB are rendered plain.
func FormatSize(bytes int64) string {
	const (
		kib = 1 << 10
		mib = 1 << 20
		gib = 1 << 30
		tib = 1 << 40
	)

	size := float64(bytes)
	switch {
	case size >= tib:
		return fmt.Sprintf("%.2f TiB", size/tib)
	case size >= gib:
		return fmt.Sprintf("%.2f GiB", size/gib)
	case size >= mib:
		return fmt.Sprintf("%.2f MiB", size/mib)
	case size >= kib:
		return fmt.Sprintf("%.2f KiB", size/kib)
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}
