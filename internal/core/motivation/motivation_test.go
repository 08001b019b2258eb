package motivation

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderSubstitutesGoal(t *testing.T) {
	assert.Equal(t, "Finish essay now", Render("Finish {goal} now", "essay"))
	assert.Equal(t, "Finish your goal now", Render("Finish {goal} now", ""))
	assert.Equal(t, "a b {goal}", Render("a {goal} {goal}", "b"))
	assert.Equal(t, "no placeholder", Render("no placeholder", "x"))
}

func TestDefaultTemplatesCarryPlaceholder(t *testing.T) {
	require.Len(t, DefaultTemplates, 10)
	for _, template := range DefaultTemplates {
		assert.Contains(t, template, GoalPlaceholder)
	}
}

func TestPickerNoRepeatWithinCycle(t *testing.T) {
	picker, err := NewPicker(DefaultTemplates, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	require.Equal(t, 10, picker.size())

	seen := make(map[string]bool)
	for i := 0; i < 10; i++ {
		message := picker.Pick("the report")
		assert.False(t, seen[message], "repeat before cycle end: %q", message)
		assert.Contains(t, message, "the report")
		seen[message] = true
	}

	eleventh := picker.Pick("the report")
	assert.True(t, seen[eleventh])
}

func TestNewPickerRejectsEmpty(t *testing.T) {
	_, err := NewPicker(nil, nil)
	require.ErrorIs(t, err, ErrNoTemplates)

	_, err = NewPicker([]string{"  ", ""}, nil)
	require.ErrorIs(t, err, ErrNoTemplates)
}

func TestNewPickerSkipsBlank(t *testing.T) {
	picker, err := NewPicker([]string{"", "Go {goal}"}, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, picker.size())
	assert.True(t, strings.HasPrefix(picker.Pick(""), "Go your goal"))
}
