package service

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"
)

// ParseStrategy names the step of the parser chain that produced a value.
type ParseStrategy string

const (
	StrategyDirect   ParseStrategy = "direct"
	StrategyFenced   ParseStrategy = "fenced"
	StrategyFallback ParseStrategy = "fallback"
	StrategyNone     ParseStrategy = ""
)

var (
	fencedJSONPattern = regexp.MustCompile("(?s)```json\\s*\\n(.*?)\\n?\\s*```")
	fencedAnyPattern  = regexp.MustCompile("(?s)```[a-zA-Z]*\\s*\\n(.*?)\\n?\\s*```")

	errNoJSON = errors.New("no parseable json in model response")
)

// ParseModelJSON decodes a model reply into T. It tries the whole reply, then the first
// fenced code block (```json preferred), then fallback if one is given. A decoded value
// only counts when accept is nil or returns true for it.
func ParseModelJSON[T any](raw string, accept func(T) bool, fallback func(raw string) (T, bool)) (T, ParseStrategy, error) {
	var value T
	trimmed := strings.TrimSpace(raw)

	if err := json.Unmarshal([]byte(trimmed), &value); err == nil && (accept == nil || accept(value)) {
		return value, StrategyDirect, nil
	}

	for _, pattern := range []*regexp.Regexp{fencedJSONPattern, fencedAnyPattern} {
		match := pattern.FindStringSubmatch(trimmed)
		if len(match) < 2 {
			continue
		}
		var fenced T
		if err := json.Unmarshal([]byte(strings.TrimSpace(match[1])), &fenced); err == nil && (accept == nil || accept(fenced)) {
			return fenced, StrategyFenced, nil
		}
	}

	if fallback != nil {
		if v, ok := fallback(raw); ok {
			return v, StrategyFallback, nil
		}
	}

	var zero T
	return zero, StrategyNone, errNoJSON
}
