package buffer

// IsWordByte reports whether c is considered part of a word.
// Words consist of ASCII letters, digits, or underscore characters.
func IsWordByte(c byte) bool {
	return c == '_' || ('0' <= c && c <= '9') || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

// WordStart returns the index of the beginning of the word that ends at or before pos.
// It behaves similar to Vim's 'b' motion.
func WordStart(l Reader, pos int) int {
	if l == nil || l.Len() == 0 {
		return 0
	}
	if pos > l.Len() {
		pos = l.Len()
	}
	if pos > 0 {
		pos--
	}
	for pos > 0 && !IsWordByte(l.ByteAt(pos)) {
		pos--
	}
	for pos > 0 && IsWordByte(l.ByteAt(pos-1)) {
		pos--
	}
	return pos
}

// WordEnd returns the index one past the end of the word that begins at or
// after pos.
func WordEnd(l Reader, pos int) int {
	if l == nil || l.Len() == 0 {
		return 0
	}
	if pos < 0 {
		pos = 0
	}
	for pos < l.Len() && !IsWordByte(l.ByteAt(pos)) {
		pos++
	}
	for pos < l.Len() && IsWordByte(l.ByteAt(pos)) {
		pos++
	}
	return pos
}
