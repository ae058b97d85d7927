package fir

// SignedMin returns the smallest value representable in the given
// signed bit width.
func SignedMin(width int) int64 {
	if width >= 64 {
		return -1 << 63
	}
	return -1 << (width - 1)
}

// SignedMax returns the largest value representable in the given signed
// bit width.
func SignedMax(width int) int64 {
	if width >= 64 {
		return 1<<63 - 1
	}
	return 1<<(width-1) - 1
}

// FitsSigned reports whether v is representable in the given signed bit
// width.
func FitsSigned(v int64, width int) bool {
	return v >= SignedMin(width) && v <= SignedMax(width)
}
