package easing

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnknownCurve is returned when a curve description cannot be parsed.
var ErrUnknownCurve = errors.New("unknown easing curve")

// Parse builds a curve from a textual description. Accepted forms are the
// name of a built-in Kind, "steps(n)", "steps(n, start)", "steps(n, end)" and
// "cubic-bezier(x1, y1, x2, y2)". An empty string yields EaseInOut.
func Parse(s string) (Function, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return EaseInOut, nil
	}

	name, args, ok := splitCall(s)
	if !ok {
		k, err := ParseKind(s)
		if err != nil {
			return nil, err
		}
		return k, nil
	}

	switch strings.ToLower(name) {
	case "steps":
		return parseSteps(s, args)
	case "cubic-bezier", "bezier":
		return parseBezier(s, args)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownCurve, s)
}

func splitCall(s string) (name string, args []string, ok bool) {
	open := strings.IndexByte(s, '(')
	if open < 0 || !strings.HasSuffix(s, ")") {
		return "", nil, false
	}
	name = strings.TrimSpace(s[:open])
	inner := strings.TrimSpace(s[open+1 : len(s)-1])
	if inner == "" {
		return name, nil, true
	}
	for _, a := range strings.Split(inner, ",") {
		args = append(args, strings.TrimSpace(a))
	}
	return name, args, true
}

func parseSteps(s string, args []string) (Function, error) {
	if len(args) < 1 || len(args) > 2 {
		return nil, fmt.Errorf("%w: %q: steps takes 1 or 2 arguments", ErrUnknownCurve, s)
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 {
		return nil, fmt.Errorf("%w: %q: step count must be a positive integer", ErrUnknownCurve, s)
	}
	st := Steps{N: n}
	if len(args) == 2 {
		switch strings.ToLower(args[1]) {
		case "start", "jump-start":
			st.Start = true
		case "end", "jump-end":
		default:
			return nil, fmt.Errorf("%w: %q: unknown step position %q", ErrUnknownCurve, s, args[1])
		}
	}
	return st, nil
}

func parseBezier(s string, args []string) (Function, error) {
	if len(args) != 4 {
		return nil, fmt.Errorf("%w: %q: cubic-bezier takes 4 arguments", ErrUnknownCurve, s)
	}
	var p [4]float64
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrUnknownCurve, s, err)
		}
		p[i] = v
	}
	return NewBezier(p[0], p[1], p[2], p[3]), nil
}
