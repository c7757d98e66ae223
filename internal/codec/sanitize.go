package codec

// alphabet marks the bytes of the standard base64 alphabet, padding included.
var alphabet = func() (set [256]bool) { //nolint:gochecknoglobals // lookup table
	for _, c := range []byte("ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/=") {
		set[c] = true
	}

	return set
}()

// Sanitize keeps only base64 alphabet bytes from raw, in their original order.
// Line breaks, whitespace and any other artifacts are dropped.
// Every retained byte is ASCII, so the result is always valid UTF-8.
func Sanitize(raw []byte) string {
	clean := make([]byte, 0, len(raw))

	for _, b := range raw {
		if alphabet[b] {
			clean = append(clean, b)
		}
	}

	return string(clean)
}
