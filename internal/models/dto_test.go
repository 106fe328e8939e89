package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestionDTOHidesCorrectOption(t *testing.T) {
	q := Question{
		ID:            7,
		QuizID:        1,
		Position:      2,
		Text:          "Which keyword starts a goroutine?",
		Options:       StringArray{"go", "run", "async", "spawn"},
		CorrectOption: 0,
	}

	data, err := json.Marshal(q.ToDTO())
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.NotContains(t, decoded, "correct_option")
	assert.Equal(t, "Which keyword starts a goroutine?", decoded["question"])
}

func TestQuizDetailDTOKeepsQuestionOrder(t *testing.T) {
	quiz := Quiz{
		ID:    1,
		Title: "Go Fundamentals",
		Questions: []Question{
			{ID: 10, Position: 0, Text: "first", Options: StringArray{"a", "b"}},
			{ID: 11, Position: 1, Text: "second", Options: StringArray{"a", "b"}},
			{ID: 12, Position: 2, Text: "third", Options: StringArray{"a", "b"}},
		},
	}

	dto := quiz.ToDetailDTO()
	require.Len(t, dto.Questions, 3)
	assert.Equal(t, "first", dto.Questions[0].Question)
	assert.Equal(t, "third", dto.Questions[2].Question)
}

func TestStringArrayRoundTrip(t *testing.T) {
	in := StringArray{"Perfectionist", "Speed Demon"}

	value, err := in.Value()
	require.NoError(t, err)

	var out StringArray
	require.NoError(t, out.Scan(value))
	assert.Equal(t, in, out)
}

func TestStringArrayScanNilYieldsEmpty(t *testing.T) {
	var out StringArray
	require.NoError(t, out.Scan(nil))
	assert.Empty(t, out)
}
