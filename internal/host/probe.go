package host

import (
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

var (
	urlPattern   = regexp.MustCompile(`(?:https?|ftp|file)://[^\s<>"'` + "`" + `]+|www\.[A-Za-z0-9][^\s<>"'` + "`" + `]*`)
	emailPattern = regexp.MustCompile(`(?:mailto:)?[A-Za-z0-9._%+\-]+@[A-Za-z0-9\-]+(?:\.[A-Za-z0-9\-]+)*\.[A-Za-z]{2,}`)
	numPattern   = regexp.MustCompile(`-?(?:0[xX][0-9a-fA-F]+|[0-9]+)`)
	datePattern  = regexp.MustCompile(`([<\[])?(\d{4}-\d{2}-\d{2})(?: +(Mon|Tue|Wed|Thu|Fri|Sat|Sun)\b)?(?: +(\d{1,2}:\d{2}))?([>\]])?`)
	fileExt      = regexp.MustCompile(`^[\w.\-]*[\w\-]\.[A-Za-z][A-Za-z0-9]{0,5}$`)
)

// LineAt returns the span of the line containing offset, without its
// newline, and the line text.
func LineAt(text string, offset int) (Span, string) {
	if offset > len(text) {
		offset = len(text)
	}
	start := strings.LastIndexByte(text[:offset], '\n') + 1
	end := strings.IndexByte(text[offset:], '\n')
	if end < 0 {
		end = len(text)
	} else {
		end += offset
	}
	return Span{Start: start, End: end}, text[start:end]
}

// matchAt returns the first match of re on point's line that contains
// point.
func matchAt(env Env, re *regexp.Regexp) (Span, bool) {
	text, point := env.Text(), env.Point()
	line, s := LineAt(text, point)
	for _, m := range re.FindAllStringIndex(s, -1) {
		sp := Span{Start: line.Start + m[0], End: line.Start + m[1]}
		if sp.Contains(point) {
			return sp, true
		}
	}
	return Span{}, false
}

func isSymbolRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// SymbolAt returns the identifier at or just before point.
func SymbolAt(env Env) (string, Span, bool) {
	text, point := env.Text(), env.Point()

	start := point
	for start > 0 {
		r, size := utf8.DecodeLastRuneInString(text[:start])
		if !isSymbolRune(r) {
			break
		}
		start -= size
	}
	end := point
	for end < len(text) {
		r, size := utf8.DecodeRuneInString(text[end:])
		if !isSymbolRune(r) {
			break
		}
		end += size
	}
	if start == end {
		return "", Span{}, false
	}

	first, _ := utf8.DecodeRuneInString(text[start:])
	if unicode.IsDigit(first) {
		return "", Span{}, false
	}
	return text[start:end], Span{Start: start, End: end}, true
}

// URLAt returns the URL under point. Trailing sentence punctuation is not
// part of the URL.
func URLAt(env Env) (string, Span, bool) {
	sp, ok := matchAt(env, urlPattern)
	if !ok {
		return "", Span{}, false
	}
	url := trimURL(sp.In(env.Text()))
	sp.End = sp.Start + len(url)
	if !sp.Contains(env.Point()) {
		return "", Span{}, false
	}
	return url, sp, true
}

func trimURL(u string) string {
	for len(u) > 0 {
		last := u[len(u)-1]
		switch {
		case strings.IndexByte(".,;:!?", last) >= 0:
			u = u[:len(u)-1]
		case last == ')' && strings.Count(u, "(") < strings.Count(u, ")"):
			u = u[:len(u)-1]
		default:
			return u
		}
	}
	return u
}

// EmailAt returns the address under point, without any mailto: prefix.
func EmailAt(env Env) (string, Span, bool) {
	sp, ok := matchAt(env, emailPattern)
	if !ok {
		return "", Span{}, false
	}
	addr := sp.In(env.Text())
	if strings.HasPrefix(addr, "mailto:") {
		addr = addr[len("mailto:"):]
		sp.Start += len("mailto:")
	}
	return addr, sp, true
}

func isPathByte(c byte) bool {
	return c == '/' || c == '.' || c == '~' || c == '-' || c == '_' ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

// FileAt returns a path-like token under point: one containing a slash,
// starting with ~, or ending in a file extension. URLs and mail addresses
// are not paths.
func FileAt(env Env) (string, Span, bool) {
	if _, _, ok := URLAt(env); ok {
		return "", Span{}, false
	}
	if _, _, ok := EmailAt(env); ok {
		return "", Span{}, false
	}

	text, point := env.Text(), env.Point()
	start, end := point, point
	for start > 0 && isPathByte(text[start-1]) {
		start--
	}
	for end < len(text) && isPathByte(text[end]) {
		end++
	}
	tok := strings.TrimRight(text[start:end], ".")
	end = start + len(tok)
	if tok == "" || point > end {
		return "", Span{}, false
	}

	looksLikePath := strings.Contains(tok, "/") && strings.Trim(tok, "/.") != "" ||
		strings.HasPrefix(tok, "~") ||
		fileExt.MatchString(tok)
	if !looksLikePath {
		return "", Span{}, false
	}
	return tok, Span{Start: start, End: end}, true
}

// NumberAt returns the integer literal under point. Digits that are part
// of an identifier or a decimal fraction do not count.
func NumberAt(env Env) (Number, bool) {
	text, point := env.Text(), env.Point()
	line, s := LineAt(text, point)

	for _, m := range numPattern.FindAllStringIndex(s, -1) {
		start, end := m[0], m[1]
		if s[start] == '-' && start > 0 && isSymbolByte(s[start-1]) {
			start++
		}
		if start > 0 && (isSymbolByte(s[start-1]) || s[start-1] == '.') {
			continue
		}
		if end < len(s) && (isSymbolByte(s[end]) || (s[end] == '.' && end+1 < len(s) && isDigit(s[end+1]))) {
			continue
		}

		sp := Span{Start: line.Start + start, End: line.Start + end}
		if !sp.Contains(point) {
			continue
		}
		n, ok := parseNumber(s[start:end])
		if !ok {
			continue
		}
		n.Span = sp
		return n, true
	}
	return Number{}, false
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isSymbolByte(c byte) bool {
	return c == '_' || isDigit(c) || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func parseNumber(lit string) (Number, bool) {
	neg := strings.HasPrefix(lit, "-")
	body := strings.TrimPrefix(lit, "-")
	base := 10
	if strings.HasPrefix(body, "0x") || strings.HasPrefix(body, "0X") {
		base, body = 16, body[2:]
	}
	v, err := strconv.ParseInt(body, base, 64)
	if err != nil {
		return Number{}, false
	}
	if neg {
		v = -v
	}
	return Number{Value: v, Base: base}, true
}

// TimestampAt returns the date under point. Org-style active (<...>) and
// inactive ([...]) timestamps with an optional weekday and time are
// recognized, as are bare ISO dates.
func TimestampAt(env Env) (Timestamp, bool) {
	text, point := env.Text(), env.Point()
	line, s := LineAt(text, point)

	for _, m := range datePattern.FindAllStringSubmatchIndex(s, -1) {
		ts := Timestamp{Span: Span{Start: line.Start + m[0], End: line.Start + m[1]}}
		if !ts.Span.Contains(point) {
			continue
		}

		open, closing := group(s, m, 1), group(s, m, 5)
		switch {
		case open == "<" && closing == ">", open == "[" && closing == "]":
			ts.Open = open[0]
		default:
			// Unbalanced brackets are not part of the timestamp.
			if open != "" {
				ts.Span.Start++
			}
			if closing != "" {
				ts.Span.End--
			}
		}

		layout, value := "2006-01-02", group(s, m, 2)
		if clock := group(s, m, 4); clock != "" {
			if len(clock) == 4 {
				clock = "0" + clock
			}
			layout, value = layout+" 15:04", value+" "+clock
			ts.HasTime = true
		}
		t, err := time.ParseInLocation(layout, value, time.Local)
		if err != nil {
			continue
		}
		ts.Time = t
		ts.Weekday = group(s, m, 3) != ""
		if ts.Span.Contains(point) {
			return ts, true
		}
	}
	return Timestamp{}, false
}

func group(s string, m []int, i int) string {
	if m[2*i] < 0 {
		return ""
	}
	return s[m[2*i]:m[2*i+1]]
}
