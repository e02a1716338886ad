package token

// pathByte reports membership in the PATH terminal character class.
func pathByte(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z':
		return true
	case c >= 'A' && c <= 'Z':
		return true
	case c >= '0' && c <= '9':
		return true
	}
	switch c {
	case '_', '.', '/', ':', '<', '>', '+', '-':
		return true
	}
	return false
}

// valueBodyByte reports membership in the unquoted value body class,
// which is everything except whitespace, '[' and the comment marker.
func valueBodyByte(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f', '[', '#':
		return false
	}
	return true
}

// tkState tracks the line-local context the tokenizer needs: whether
// anything precedes the cursor on the current line (inline vs block
// comments) and whether the next non-structural token is a field value
// (value bodies are lexed with a wider character class than paths).
type tkState struct {
	lineContent bool
	inValue     bool
}

// Tokenize scans a HIT document into its token sequence. The document
// is copied; token byte slices alias the copy. A trailing newline is
// appended so comments and values at end of input terminate cleanly.
func Tokenize(doc []byte) ([]Token, error) {
	posDoc := &PosDoc{d: make([]byte, len(doc), len(doc)+1)}
	copy(posDoc.d, doc)
	posDoc.d = append(posDoc.d, '\n')
	d := posDoc.d
	n := len(d)

	var (
		toks []Token
		ts   tkState
	)
	i := 0
	for i < n {
		c := d[i]
		switch {
		case c == '\n':
			posDoc.nl(i)
			ts.lineContent = false
			// a field value must start on the same line as its '='
			ts.inValue = false
			i++

		case c == ' ' || c == '\t' || c == '\r' || c == '\v' || c == '\f':
			i++

		case c == '#':
			end := i
			for end < n && d[end] != '\n' {
				end++
			}
			typ := TComment
			if ts.lineContent {
				typ = TInlineComment
			}
			toks = append(toks, Token{
				Type:  typ,
				Pos:   posDoc.Pos(i),
				Bytes: d[i:end],
			})
			i = end

		case c == '[':
			toks = append(toks, Token{
				Type:  TLeftBracket,
				Pos:   posDoc.Pos(i),
				Bytes: d[i : i+1],
			})
			ts.lineContent = true
			ts.inValue = false
			i++

		case ts.inValue:
			tok, sz, err := value(d[i:], posDoc, i)
			if err != nil {
				return nil, err
			}
			toks = append(toks, *tok)
			ts.lineContent = true
			ts.inValue = false
			i += sz

		case c == ']':
			toks = append(toks, Token{
				Type:  TRightBracket,
				Pos:   posDoc.Pos(i),
				Bytes: d[i : i+1],
			})
			ts.lineContent = true
			i++

		case c == '=':
			toks = append(toks, Token{
				Type:  TEquals,
				Pos:   posDoc.Pos(i),
				Bytes: d[i : i+1],
			})
			ts.lineContent = true
			ts.inValue = true
			i++

		case pathByte(c):
			end := i
			for end < n && pathByte(d[end]) {
				end++
			}
			toks = append(toks, Token{
				Type:  TPath,
				Pos:   posDoc.Pos(i),
				Bytes: d[i:end],
			})
			ts.lineContent = true
			i = end

		default:
			return nil, unexpectedErr(string(d[i:i+1]), posDoc.Pos(i))
		}
	}
	return toks, nil
}

// value lexes a field value: a quoted string, or an unquoted body that
// is classified as bool, number, or string.
func value(data []byte, posDoc *PosDoc, off int) (*Token, int, error) {
	c := data[0]
	if c == '\'' || c == '"' {
		sz, err := bsEscQuoted(data)
		if err != nil {
			return nil, 0, NewScanError(err, posDoc.Pos(off))
		}
		// quoted strings may span lines
		for k := 0; k < sz; k++ {
			if data[k] == '\n' {
				posDoc.nl(off + k)
			}
		}
		return &Token{
			Type:  TString,
			Pos:   posDoc.Pos(off),
			Bytes: data[:sz],
		}, sz, nil
	}
	end := 0
	for end < len(data) && valueBodyByte(data[end]) {
		end++
	}
	body := data[:end]
	tok := &Token{
		Type:  TString,
		Pos:   posDoc.Pos(off),
		Bytes: body,
	}
	if _, ok := BoolValue(string(body)); ok {
		tok.Type = TBool
	} else if sz, _, err := number(body); err == nil && sz == len(body) {
		tok.Type = TNumber
	}
	return tok, end, nil
}
