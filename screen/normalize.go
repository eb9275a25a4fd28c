package screen

// normalizeBGRX copies n pixels of a B,G,R,X surface into a new B,G,R,A buffer.
// The fourth byte of the source is undefined, so alpha is always 255.
// It returns nil when raw holds fewer than n pixels.
func normalizeBGRX(raw []byte, n int) []byte {
	total := n * 4
	if n <= 0 || len(raw) < total {
		return nil
	}

	dst := make([]byte, total)
	for i := 0; i < total; i += 4 {
		dst[i] = raw[i]
		dst[i+1] = raw[i+1]
		dst[i+2] = raw[i+2]
		dst[i+3] = 255
	}
	return dst
}
