package api

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"strconv"
	"strings"
	"unicode"

	"github.com/goccy/go-json"
)

// DefaultHours is used when a roadmap request does not say how many hours.
const DefaultHours = 2

const maxBodyBytes = 1 << 20

// decodeObject reads the request body as a single JSON object. It returns
// the HTTP status to answer with when the body cannot be used: 400 for empty
// or malformed JSON (including trailing content), 413 for oversized bodies,
// 500 for any other JSON value. Member values stay raw until a field is read.
func decodeObject(w http.ResponseWriter, r *http.Request) (map[string]json.RawMessage, int, error) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, http.StatusRequestEntityTooLarge, fmt.Errorf("request body too large")
		}
		return nil, http.StatusBadRequest, fmt.Errorf("read request body: %w", err)
	}

	doc := bytes.TrimSpace(data)
	if len(doc) == 0 {
		return nil, http.StatusBadRequest, fmt.Errorf("request body is empty")
	}

	var raw json.RawMessage
	if err := json.Unmarshal(doc, &raw); err != nil {
		return nil, http.StatusBadRequest, fmt.Errorf("invalid JSON body: %w", err)
	}
	if doc[0] != '{' {
		return nil, http.StatusInternalServerError, fmt.Errorf("request body must be a JSON object")
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(doc, &obj); err != nil {
		return nil, http.StatusBadRequest, fmt.Errorf("invalid JSON body: %w", err)
	}
	return obj, 0, nil
}

// rawValue decodes one member value. Numbers are kept as json.Number so that
// no precision or range is lost before conversion.
func rawValue(raw json.RawMessage) (interface{}, error) {
	t := bytes.TrimSpace(raw)
	if len(t) > 0 && (t[0] == '-' || (t[0] >= '0' && t[0] <= '9')) {
		return json.Number(string(t)), nil
	}
	var v interface{}
	if err := json.Unmarshal(t, &v); err != nil {
		return nil, err
	}
	return v, nil
}

// stringField returns body[key], or fallback when the key is absent.
// Present values must be strings.
func stringField(body map[string]json.RawMessage, key, fallback string) (string, error) {
	raw, ok := body[key]
	if !ok {
		return fallback, nil
	}
	v, err := rawValue(raw)
	if err != nil {
		return "", fmt.Errorf("decode %s: %w", key, err)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%s must be a string, got %s", key, jsonKind(v))
	}
	return s, nil
}

// hoursField returns body["hours"] converted to an int, or DefaultHours
// when absent.
func hoursField(body map[string]json.RawMessage) (int, error) {
	raw, ok := body["hours"]
	if !ok {
		return DefaultHours, nil
	}
	v, err := rawValue(raw)
	if err != nil {
		return 0, fmt.Errorf("decode hours: %w", err)
	}
	h, err := coerceHours(v)
	if err != nil {
		return 0, fmt.Errorf("invalid hours: %w", err)
	}
	return h, nil
}

// coerceHours converts a decoded JSON value to a whole number the way an
// integer conversion would: numbers truncate toward zero, booleans are 0 or
// 1, and strings must be base-10 integer literals. Integers too large for
// an int saturate; numbers beyond float64 range fail.
func coerceHours(v interface{}) (int, error) {
	switch h := v.(type) {
	case json.Number:
		return numberToInt(h.String())
	case bool:
		if h {
			return 1, nil
		}
		return 0, nil
	case string:
		return parseIntLiteral(h)
	default:
		return 0, fmt.Errorf("cannot convert %s to an integer", jsonKind(v))
	}
}

func numberToInt(s string) (int, error) {
	i, err := strconv.ParseInt(s, 10, 64)
	if err == nil || errors.Is(err, strconv.ErrRange) {
		return clampInt(i), nil
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("cannot convert %s to an integer", s)
	}
	f = math.Trunc(f)
	switch {
	case f >= math.MaxInt64:
		return clampInt(math.MaxInt64), nil
	case f <= math.MinInt64:
		return clampInt(math.MinInt64), nil
	}
	return clampInt(int64(f)), nil
}

// parseIntLiteral accepts surrounding whitespace, one leading sign, single
// underscores between digits and decimal digits from any script.
func parseIntLiteral(s string) (int, error) {
	t := strings.TrimSpace(s)
	sign, digits := "", t
	if digits != "" && (digits[0] == '+' || digits[0] == '-') {
		sign, digits = digits[:1], digits[1:]
	}

	invalid := fmt.Errorf("invalid integer literal %q", s)
	if digits == "" || digits[0] == '_' || digits[len(digits)-1] == '_' || strings.Contains(digits, "__") {
		return 0, invalid
	}

	var b strings.Builder
	b.WriteString(sign)
	for _, c := range digits {
		if c == '_' {
			continue
		}
		d, ok := digitValue(c)
		if !ok {
			return 0, invalid
		}
		b.WriteByte(byte('0' + d))
	}

	i, err := strconv.ParseInt(b.String(), 10, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, invalid
	}
	return clampInt(i), nil
}

// digitValue returns the value of a decimal digit rune (Unicode Nd).
// Nd digits are encoded in contiguous runs of ten starting at zero.
func digitValue(r rune) (int, bool) {
	if r >= '0' && r <= '9' {
		return int(r - '0'), true
	}
	if !unicode.IsDigit(r) {
		return 0, false
	}
	n := 0
	for unicode.IsDigit(r - rune(n+1)) {
		n++
	}
	return n % 10, true
}

func clampInt(i int64) int {
	if i > math.MaxInt {
		return math.MaxInt
	}
	if i < math.MinInt {
		return math.MinInt
	}
	return int(i)
}

func jsonKind(v interface{}) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case json.Number:
		return "number"
	case string:
		return "string"
	case []interface{}:
		return "array"
	case map[string]interface{}:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}
