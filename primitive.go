package hl7

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/oarkflow/date"
	"github.com/shopspring/decimal"
)

// Kind is the declared semantic type of a primitive slot
type Kind int

// Primitive kinds. Date and time kinds fix the precision used when formatting.
const (
	KindString Kind = iota
	KindInteger
	KindDecimal
	KindYear
	KindMonth
	KindDate
	KindDateTimeMinute
	KindDateTime
	KindTime
)

var kindNames = [...]string{
	KindString:         "string",
	KindInteger:        "integer",
	KindDecimal:        "decimal",
	KindYear:           "year",
	KindMonth:          "month",
	KindDate:           "date",
	KindDateTimeMinute: "datetime-minute",
	KindDateTime:       "datetime",
	KindTime:           "time",
}

// wire layouts per date/time kind
var kindLayouts = map[Kind]string{
	KindYear:           "2006",
	KindMonth:          "200601",
	KindDate:           "20060102",
	KindDateTimeMinute: "200601021504",
	KindDateTime:       "20060102150405",
	KindTime:           "150405",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// IsTemporal reports whether the kind holds a date or time
func (k Kind) IsTemporal() bool {
	_, ok := kindLayouts[k]
	return ok
}

// ParseKind resolves a kind by name or by HL7 data type code (ST, NM, DTM, ...)
func ParseKind(name string) (Kind, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "", "STRING", "ST", "ID", "IS", "TX", "FT", "GTS", "TN":
		return KindString, nil
	case "INTEGER", "INT", "SI":
		return KindInteger, nil
	case "DECIMAL", "NM":
		return KindDecimal, nil
	case "YEAR":
		return KindYear, nil
	case "MONTH":
		return KindMonth, nil
	case "DATE", "DT":
		return KindDate, nil
	case "DATETIME-MINUTE":
		return KindDateTimeMinute, nil
	case "DATETIME", "DTM":
		return KindDateTime, nil
	case "TIME", "TM":
		return KindTime, nil
	}
	return KindString, fmt.Errorf("unknown primitive kind %q", name)
}

var errBadTimestamp = errors.New("not an HL7 timestamp")

// ParsePrimitive converts a wire token to a typed value. The empty token is
// absent and yields a nil Value. Conversion failures are returned as
// *FormatError; string tokens never fail. Escape sequences are not touched.
func ParsePrimitive(token string, kind Kind) (Value, error) {
	if token == "" {
		return nil, nil
	}
	switch kind {
	case KindInteger:
		n, err := strconv.ParseInt(strings.TrimSpace(token), 10, 64)
		if err != nil {
			return nil, &FormatError{Kind: kind, Token: token, Err: err}
		}
		return Integer(n), nil
	case KindDecimal:
		d, err := decimal.NewFromString(strings.TrimSpace(token))
		if err != nil {
			return nil, &FormatError{Kind: kind, Token: token, Err: err}
		}
		return Decimal{d}, nil
	case KindTime:
		t, err := parseTimeOfDay(token)
		if err != nil {
			return nil, &FormatError{Kind: kind, Token: token, Err: err}
		}
		return Time{t}, nil
	default:
		if kind.IsTemporal() {
			t, err := parseTimestamp(token)
			if err != nil {
				return nil, &FormatError{Kind: kind, Token: token, Err: err}
			}
			return Time{t}, nil
		}
	}
	return String(token), nil
}

// parseLenient is ParsePrimitive for feeds that do not follow the DTM layouts:
// free-form dates are tried before the token is given up on.
func parseLenient(token string, kind Kind) (Value, error) {
	v, err := ParsePrimitive(token, kind)
	if err == nil || !kind.IsTemporal() {
		return v, err
	}
	if t, derr := date.Parse(token); derr == nil {
		return Time{t}, nil
	}
	return nil, err
}

// FormatPrimitive converts a typed value to its wire token. A nil value is the
// empty token. Strings are returned unescaped.
func FormatPrimitive(v Value, kind Kind) string {
	switch v := v.(type) {
	case nil:
		return ""
	case String:
		return string(v)
	case Raw:
		return string(v)
	case Integer:
		return strconv.FormatInt(int64(v), 10)
	case Decimal:
		return v.Round(29).String()
	case Time:
		if v.IsZero() {
			return ""
		}
		layout, ok := kindLayouts[kind]
		if !ok {
			layout = kindLayouts[KindDateTime]
		}
		return v.Format(layout)
	}
	return ""
}

// parseTimestamp reads YYYY[MM[DD[HH[MM[SS[.S[S[S[S]]]]]]]]][+/-ZZZZ]
func parseTimestamp(token string) (time.Time, error) {
	s, loc, err := splitZone(token)
	if err != nil {
		return time.Time{}, err
	}
	s, nanos, err := splitFraction(s)
	if err != nil {
		return time.Time{}, err
	}
	var layout string
	switch len(s) {
	case 4:
		layout = "2006"
	case 6:
		layout = "200601"
	case 8:
		layout = "20060102"
	case 10:
		layout = "2006010215"
	case 12:
		layout = "200601021504"
	case 14:
		layout = "20060102150405"
	default:
		return time.Time{}, errBadTimestamp
	}
	if nanos != 0 && len(s) != 14 {
		return time.Time{}, errBadTimestamp
	}
	t, err := time.ParseInLocation(layout, s, loc)
	if err != nil {
		return time.Time{}, err
	}
	return t.Add(time.Duration(nanos)), nil
}

// parseTimeOfDay reads HH[MM[SS[.S[S[S[S]]]]]][+/-ZZZZ]
func parseTimeOfDay(token string) (time.Time, error) {
	s, loc, err := splitZone(token)
	if err != nil {
		return time.Time{}, err
	}
	s, nanos, err := splitFraction(s)
	if err != nil {
		return time.Time{}, err
	}
	var layout string
	switch len(s) {
	case 2:
		layout = "15"
	case 4:
		layout = "1504"
	case 6:
		layout = "150405"
	default:
		return time.Time{}, errBadTimestamp
	}
	t, err := time.ParseInLocation(layout, s, loc)
	if err != nil {
		return time.Time{}, err
	}
	return t.Add(time.Duration(nanos)), nil
}

func splitZone(s string) (string, *time.Location, error) {
	i := strings.LastIndexAny(s, "+-")
	if i <= 0 {
		return s, time.UTC, nil
	}
	zone := s[i:]
	if len(zone) != 5 {
		return "", nil, errBadTimestamp
	}
	hh, err := strconv.Atoi(zone[1:3])
	if err != nil {
		return "", nil, errBadTimestamp
	}
	mm, err := strconv.Atoi(zone[3:5])
	if err != nil {
		return "", nil, errBadTimestamp
	}
	offset := hh*3600 + mm*60
	if zone[0] == '-' {
		offset = -offset
	}
	return s[:i], time.FixedZone("", offset), nil
}

func splitFraction(s string) (string, int, error) {
	i := strings.IndexByte(s, '.')
	if i < 0 {
		return s, 0, nil
	}
	frac := s[i+1:]
	if len(frac) == 0 || len(frac) > 4 {
		return "", 0, errBadTimestamp
	}
	n, err := strconv.Atoi(frac)
	if err != nil || n < 0 {
		return "", 0, errBadTimestamp
	}
	for p := len(frac); p < 9; p++ {
		n *= 10
	}
	return s[:i], n, nil
}
