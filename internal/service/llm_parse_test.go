package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type parsedThing struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestParseModelJSON_Direct(t *testing.T) {
	v, strategy, err := ParseModelJSON[parsedThing](`  {"name":"a","count":2}  `, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, StrategyDirect, strategy)
	assert.Equal(t, parsedThing{Name: "a", Count: 2}, v)
}

func TestParseModelJSON_FencedMatchesRaw(t *testing.T) {
	raw := `{"name":"a","count":2}`
	fenced := "Here you go:\n```json\n" + raw + "\n```\nGood luck!"

	direct, _, err := ParseModelJSON[parsedThing](raw, nil, nil)
	require.NoError(t, err)
	fromFence, strategy, err := ParseModelJSON[parsedThing](fenced, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, StrategyFenced, strategy)
	assert.Equal(t, direct, fromFence)
}

func TestParseModelJSON_UnlabelledFence(t *testing.T) {
	v, strategy, err := ParseModelJSON[parsedThing]("```\n{\"name\":\"b\",\"count\":1}\n```", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, StrategyFenced, strategy)
	assert.Equal(t, "b", v.Name)
}

func TestParseModelJSON_Fallback(t *testing.T) {
	v, strategy, err := ParseModelJSON("not json at all", nil, func(raw string) (parsedThing, bool) {
		return parsedThing{Name: raw}, true
	})
	require.NoError(t, err)
	assert.Equal(t, StrategyFallback, strategy)
	assert.Equal(t, "not json at all", v.Name)
}

func TestParseModelJSON_NothingParses(t *testing.T) {
	v, strategy, err := ParseModelJSON[parsedThing]("```json\n{broken\n```", nil, nil)
	assert.Error(t, err)
	assert.Equal(t, StrategyNone, strategy)
	assert.Equal(t, parsedThing{}, v)
}

func TestParseModelJSON_RejectedValueFallsThrough(t *testing.T) {
	named := func(v parsedThing) bool { return v.Name != "" }

	v, strategy, err := ParseModelJSON("Sure:\n```json\n{\"name\":\"c\"}\n```", named, nil)
	require.NoError(t, err)
	assert.Equal(t, StrategyFenced, strategy)
	assert.Equal(t, "c", v.Name)

	_, strategy, err = ParseModelJSON(`{"count":3}`, named, nil)
	assert.Error(t, err)
	assert.Equal(t, StrategyNone, strategy)
}
