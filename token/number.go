package token

// number scans a NUMBER terminal at the start of data:
//
//	[+-]?[0-9]*(\.[0-9]*)?([eE][+-]?[0-9]+)?
//
// It returns the number of bytes consumed and whether the literal has a
// fractional or exponent part. A literal with no digits at all is not a
// number.
func number(data []byte) (int, bool, error) {
	i := 0
	n := len(data)
	isFloat := false
	if i < n && (data[i] == '+' || data[i] == '-') {
		i++
	}
	digits := 0
	for i < n && isDigit(data[i]) {
		i++
		digits++
	}
	if i < n && data[i] == '.' {
		isFloat = true
		i++
		for i < n && isDigit(data[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return 0, false, ErrNumber
	}
	if i < n && (data[i] == 'e' || data[i] == 'E') {
		j := i + 1
		if j < n && (data[j] == '+' || data[j] == '-') {
			j++
		}
		expDigits := 0
		for j < n && isDigit(data[j]) {
			j++
			expDigits++
		}
		if expDigits == 0 {
			return 0, false, ErrNumber
		}
		isFloat = true
		i = j
	}
	return i, isFloat, nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
