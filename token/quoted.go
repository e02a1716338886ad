package token

// bsEscQuoted scans a quoted string at the start of data. The opening
// byte must be a single or double quote; the body runs until the
// matching unescaped closing quote and may span newlines. Returns the
// number of bytes consumed including both quotes.
func bsEscQuoted(data []byte) (int, error) {
	q := data[0]
	i := 1
	n := len(data)
	for i < n {
		c := data[i]
		if c == '\\' {
			if i+1 >= n {
				return 0, ErrUnterminated
			}
			i += 2
			continue
		}
		if c == q {
			return i + 1, nil
		}
		i++
	}
	return 0, ErrUnterminated
}

// Unquote strips the surrounding quotes from a quoted string token body
// and unescapes any backslash-escaped quote characters. Input that is
// not quoted is returned unchanged.
func Unquote(s string) string {
	if len(s) < 2 {
		return s
	}
	q := s[0]
	if q != '\'' && q != '"' {
		return s
	}
	if s[len(s)-1] != q {
		return s
	}
	body := s[1 : len(s)-1]
	res := make([]byte, 0, len(body))
	for i := 0; i < len(body); i++ {
		if body[i] == '\\' && i+1 < len(body) && (body[i+1] == q || body[i+1] == '\\') {
			i++
		}
		res = append(res, body[i])
	}
	return string(res)
}

// NeedsQuote reports whether s must be quoted to survive re-lexing as
// a single field value token.
func NeedsQuote(s string) bool {
	if s == "" {
		return true
	}
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case ' ', '\t', '\n', '\r', '\v', '\f', '#', '[', '\'', '"':
			return true
		}
	}
	return false
}

// Quote wraps s in single quotes, escaping embedded single quotes and
// backslashes.
func Quote(s string) string {
	res := make([]byte, 0, len(s)+2)
	res = append(res, '\'')
	for i := 0; i < len(s); i++ {
		if s[i] == '\'' || s[i] == '\\' {
			res = append(res, '\\')
		}
		res = append(res, s[i])
	}
	return string(append(res, '\''))
}
