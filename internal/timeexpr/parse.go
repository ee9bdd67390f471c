// Package timeexpr parses free-form human time input into a duration in
// seconds. Two grammars are supported: durations ("25", "1h30m", "90s",
// "1 30 15") and target times-of-day marked by a trailing t ("17 30t"),
// which resolve to the next wall-clock occurrence of that time.
package timeexpr

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"time"
	"unicode"
)

var (
	// ErrInvalidFormat marks input that fails validation or tokenizing.
	ErrInvalidFormat = errors.New("invalid time expression")
	// ErrOutOfRange marks results that are zero, negative, or overflow int32.
	ErrOutOfRange = errors.New("time expression out of range")
)

type segment struct {
	value int64
	unit  rune // 'h', 'm', 's', or 0 for a bare number
}

// Parse converts input into a positive duration in seconds. Target-time
// expressions are resolved relative to now.
func Parse(input string, now time.Time) (int, error) {
	s := strings.TrimSpace(input)
	if err := validate(s); err != nil {
		return 0, err
	}

	last := rune(s[len(s)-1])
	if last == 't' || last == 'T' {
		return parseTargetTime(strings.TrimSpace(s[:len(s)-1]), now)
	}
	return parseDuration(s)
}

// validate accepts digits, spaces, unit letters directly after a digit,
// and t/T solely as the final character. At least one digit is required.
func validate(s string) error {
	if s == "" {
		return ErrInvalidFormat
	}
	hasDigit := false
	prev := rune(0)
	for i, r := range s {
		switch {
		case unicode.IsDigit(r):
			hasDigit = true
		case r == ' ':
		case r == 'h' || r == 'H' || r == 'm' || r == 'M' || r == 's' || r == 'S':
			if !unicode.IsDigit(prev) {
				return ErrInvalidFormat
			}
		case r == 't' || r == 'T':
			if i != len(s)-1 || !unicode.IsDigit(prev) {
				return ErrInvalidFormat
			}
		default:
			return ErrInvalidFormat
		}
		prev = r
	}
	if !hasDigit {
		return ErrInvalidFormat
	}
	return nil
}

// parseTargetTime reads up to three space-separated tokens as hour,
// minute, second of the next wall-clock occurrence of that time.
func parseTargetTime(rest string, now time.Time) (int, error) {
	fields := strings.Fields(rest)
	if len(fields) == 0 || len(fields) > 3 {
		return 0, ErrInvalidFormat
	}
	parts := [3]int64{}
	for i, f := range fields {
		v, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			// validation guarantees digits, so failure means overflow
			return 0, ErrOutOfRange
		}
		parts[i] = v
	}
	if parts[0] > 23 || parts[1] > 59 || parts[2] > 59 {
		return 0, ErrOutOfRange
	}
	target := time.Date(now.Year(), now.Month(), now.Day(),
		int(parts[0]), int(parts[1]), int(parts[2]), 0, now.Location())
	if !target.After(now) {
		target = target.AddDate(0, 0, 1)
	}
	return checkRange(int64(target.Sub(now) / time.Second))
}

func parseDuration(s string) (int, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return 0, ErrInvalidFormat
	}

	tokens := make([][]segment, 0, len(fields))
	hasUnits := false
	for _, f := range fields {
		segs, err := splitSegments(f)
		if err != nil {
			return 0, err
		}
		for _, seg := range segs {
			if seg.unit != 0 {
				hasUnits = true
			}
		}
		tokens = append(tokens, segs)
	}

	if !hasUnits {
		return parsePositional(tokens)
	}
	return parseUnits(tokens)
}

// splitSegments breaks a token like "1h30m" into value/unit pairs. At
// most the final segment may lack a unit.
func splitSegments(token string) ([]segment, error) {
	var segs []segment
	start := 0
	for i, r := range token {
		if unicode.IsDigit(r) {
			continue
		}
		v, err := strconv.ParseInt(token[start:i], 10, 64)
		if err != nil {
			return nil, ErrOutOfRange
		}
		segs = append(segs, segment{value: v, unit: unicode.ToLower(r)})
		start = i + 1
	}
	if start < len(token) {
		v, err := strconv.ParseInt(token[start:], 10, 64)
		if err != nil {
			return nil, ErrOutOfRange
		}
		segs = append(segs, segment{value: v})
	}
	if len(segs) == 0 {
		return nil, ErrInvalidFormat
	}
	return segs, nil
}

// parsePositional applies the unit-less rule: one token means minutes,
// two mean minutes+seconds, three mean hours+minutes+seconds.
func parsePositional(tokens [][]segment) (int, error) {
	values := make([]int64, 0, len(tokens))
	for _, segs := range tokens {
		values = append(values, segs[0].value)
	}
	var total int64
	switch len(values) {
	case 1:
		total = values[0] * 60
	case 2:
		total = values[0]*60 + values[1]
	case 3:
		total = values[0]*3600 + values[1]*60 + values[2]
	default:
		return 0, ErrInvalidFormat
	}
	return checkRange(total)
}

// parseUnits sums unit-bearing segments. A bare segment inherits the
// scale one step below the nearest preceding explicit unit; with no
// preceding unit it takes one step above the nearest following one.
func parseUnits(tokens [][]segment) (int, error) {
	flat := make([]segment, 0, len(tokens))
	for _, segs := range tokens {
		flat = append(flat, segs...)
	}
	for i := range flat {
		if flat[i].unit != 0 {
			continue
		}
		if u := precedingUnit(flat, i); u != 0 {
			flat[i].unit = stepBelow(u)
		} else if u := followingUnit(flat, i); u != 0 {
			flat[i].unit = stepAbove(u)
		} else {
			return 0, ErrInvalidFormat
		}
	}
	var total int64
	for _, seg := range flat {
		total += seg.value * unitSeconds(seg.unit)
		if total > math.MaxInt32 {
			return 0, ErrOutOfRange
		}
	}
	return checkRange(total)
}

func precedingUnit(segs []segment, i int) rune {
	for j := i - 1; j >= 0; j-- {
		if segs[j].unit != 0 {
			return segs[j].unit
		}
	}
	return 0
}

func followingUnit(segs []segment, i int) rune {
	for j := i + 1; j < len(segs); j++ {
		if segs[j].unit != 0 {
			return segs[j].unit
		}
	}
	return 0
}

func stepBelow(u rune) rune {
	switch u {
	case 'h':
		return 'm'
	default:
		return 's'
	}
}

func stepAbove(u rune) rune {
	switch u {
	case 's':
		return 'm'
	default:
		return 'h'
	}
}

func unitSeconds(u rune) int64 {
	switch u {
	case 'h':
		return 3600
	case 'm':
		return 60
	default:
		return 1
	}
}

func checkRange(total int64) (int, error) {
	if total <= 0 || total > math.MaxInt32 {
		return 0, ErrOutOfRange
	}
	return int(total), nil
}
