package cgrammar

import "strconv"

// scanNumber scans either an integer or a floating constant starting
// at the cursor, per spec.md §4.B "Integer constants" / "Floating
// constants". Both share a scan because they cannot be told apart
// until a `.` or exponent marker is seen (or not), which is exactly
// the maximal-munch hazard the "preprocessing number" token shape in
// C exists to paper over.
func (l *Lexer) scanNumber(start int) {
	base := 10
	digitsStart := l.cursor

	if l.peekByte() == '0' && (l.byteAt(1) == 'x' || l.byteAt(1) == 'X') {
		base = 16
		l.cursor += 2
		digitsStart = l.cursor
	} else if l.peekByte() == '0' && (l.byteAt(1) == 'b' || l.byteAt(1) == 'B') {
		base = 2
		l.cursor += 2
		digitsStart = l.cursor
	} else if l.peekByte() == '0' && isOctalDigit(l.byteAt(1)) {
		base = 8
	}

	l.consumeDigitRun(base)

	isFloat := false
	hasDot := false
	if l.peekByte() == '.' {
		isFloat = true
		hasDot = true
		l.cursor++
		l.consumeDigitRun(base)
	}

	if base == 16 {
		if l.peekByte() == 'p' || l.peekByte() == 'P' {
			isFloat = true
			l.cursor++
			l.scanExponentSign()
			l.consumeDigitRun(10)
		} else if isFloat {
			l.sink.Error(l.span(start, l.cursor), "hexadecimal floating constant requires a binary exponent")
		}
	} else {
		if l.peekByte() == 'e' || l.peekByte() == 'E' {
			isFloat = true
			l.cursor++
			l.scanExponentSign()
			l.consumeDigitRun(10)
		}
	}
	_ = hasDot

	digitsEnd := l.digitsEndBeforeSuffix(isFloat)
	suffixStart := digitsEnd

	if isFloat {
		l.scanFloatSuffix()
	} else {
		l.scanIntSuffix()
	}

	text := string(l.input[start:l.cursor])
	sp := l.span(start, l.cursor)

	if isFloat {
		value, _ := strconv.ParseFloat(stripSeparators(string(l.input[start:suffixStart])), 64)
		c := &Constant{
			Kind:        ConstantFloating,
			FloatValue:  value,
			FloatSuffix: string(l.input[suffixStart:l.cursor]),
		}
		l.emit(Token{Kind: TokenConstant, Text: text, Payload: c, Span: sp})
		return
	}

	val := parseInt128(stripSeparators(string(l.input[digitsStart:digitsEnd])), base)
	suffix := string(l.input[suffixStart:l.cursor])
	c := &Constant{
		Kind:        ConstantInteger,
		IntValue:    val,
		IntUnsigned: hasFold(suffix, "u") || hasFold(suffix, "U"),
		IntWidth:    suffixWidth(suffix),
		IntSuffix:   suffix,
	}
	l.emit(Token{Kind: TokenConstant, Text: text, Payload: c, Span: sp})
}

// digitsEndBeforeSuffix returns where the numeric part ends and the
// suffix begins: the cursor already sits right after the last digit of
// the mantissa/exponent at this point in the scan.
func (l *Lexer) digitsEndBeforeSuffix(isFloat bool) int {
	return l.cursor
}

func (l *Lexer) consumeDigitRun(base int) {
	for !l.atEOF() {
		c := l.peekByte()
		if c == '\'' && l.cursor > 0 && isBaseDigit(l.byteAt(-1), base) && isBaseDigit(l.byteAt(1), base) {
			l.cursor++ // C23 digit separator
			continue
		}
		if !isBaseDigit(c, base) {
			break
		}
		l.cursor++
	}
}

func (l *Lexer) scanExponentSign() {
	if l.peekByte() == '+' || l.peekByte() == '-' {
		l.cursor++
	}
}

func (l *Lexer) scanIntSuffix() {
	for !l.atEOF() {
		switch l.peekByte() {
		case 'u', 'U', 'l', 'L':
			l.cursor++
		case 'w', 'W':
			if (l.byteAt(1) == 'b' || l.byteAt(1) == 'B') {
				l.cursor += 2
			} else {
				return
			}
		default:
			return
		}
	}
}

func (l *Lexer) scanFloatSuffix() {
	switch {
	case l.peekByte() == 'f' || l.peekByte() == 'F' || l.peekByte() == 'l' || l.peekByte() == 'L':
		l.cursor++
	case hasAt(l.input, l.cursor, "df"), hasAt(l.input, l.cursor, "dd"), hasAt(l.input, l.cursor, "dl"),
		hasAt(l.input, l.cursor, "DF"), hasAt(l.input, l.cursor, "DD"), hasAt(l.input, l.cursor, "DL"):
		l.cursor += 2
	}
}

func isOctalDigit(b byte) bool { return b >= '0' && b <= '7' }

func isBaseDigit(b byte, base int) bool {
	switch base {
	case 2:
		return b == '0' || b == '1'
	case 8:
		return isOctalDigit(b)
	case 16:
		_, ok := hexDigitValue(b)
		return ok
	default:
		return b >= '0' && b <= '9'
	}
}

func stripSeparators(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '\'' {
			out = append(out, s[i])
		}
	}
	return string(out)
}

func hasFold(s, sub string) bool {
	for i := 0; i+len(sub) <= len(s); i++ {
		if equalFold1(s[i], sub[0]) && (len(sub) == 1 || equalFold1(s[i+1], sub[1])) {
			return true
		}
	}
	return false
}

func equalFold1(a, b byte) bool {
	if a >= 'A' && a <= 'Z' {
		a += 'a' - 'A'
	}
	if b >= 'A' && b <= 'Z' {
		b += 'a' - 'A'
	}
	return a == b
}

// suffixWidth extracts the _BitInt-style `wb`/`WB` width marker
// presence; actual bit width for _BitInt(N) declarations is carried
// on the type, not the literal, so this only records that the literal
// was written with a bit-precise suffix (width 0 otherwise, meaning
// "ordinary int family").
func suffixWidth(suffix string) int {
	if hasFold(suffix, "wb") {
		return -1 // sentinel: bit-precise, width determined by context
	}
	return 0
}

// parseInt128 accumulates digit by digit in the given base, retaining
// every bit for literals up to 2^128-1 (spec.md boundary behavior:
// "Maximum integer constant (2^128 - 1 literal) parses into an integer
// constant node that retains all bits").
func parseInt128(digits string, base int) Int128 {
	var v Int128
	b := uint64(base)
	for i := 0; i < len(digits); i++ {
		d, ok := hexDigitValue(digits[i])
		if !ok {
			continue
		}
		v = v.AddDigit(b, uint64(d))
	}
	return v
}
