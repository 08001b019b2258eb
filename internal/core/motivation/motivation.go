// Package motivation renders the per-session encouragement shown when a
// focus phase starts.
package motivation

import (
	"errors"
	"math/rand"
	"strings"

	"focustimer/internal/core/shuffle"
)

// GoalPlaceholder is substituted with the user's goal.
const GoalPlaceholder = "{goal}"

// FallbackGoal is used when no goal has been entered.
const FallbackGoal = "your goal"

// ErrNoTemplates is returned when a picker is built from an empty list.
var ErrNoTemplates = errors.New("no motivational templates")

// DefaultTemplates is the built-in message rotation.
var DefaultTemplates = []string{
	"Stay locked in. Completing {goal} moves you closer to placement day.",
	"Every minute on {goal} is an investment in your future career.",
	"Champions don't quit. Keep pushing through {goal}.",
	"Your competitors are resting. You're crushing {goal}.",
	"Deep focus on {goal}: this is what separates the top 1%.",
	"The case won't crack itself. Stay sharp on {goal}.",
	"Focus is your superpower. Channel it into {goal}.",
	"One session at a time. {goal} is getting done.",
	"This is your edge. Finish {goal} and own the room.",
	"Discipline beats talent. Stay with {goal}, you've got this.",
}

// Render fills the first goal placeholder in template.
func Render(template, goal string) string {
	if goal == "" {
		goal = FallbackGoal
	}
	return strings.Replace(template, GoalPlaceholder, goal, 1)
}

// Picker selects templates without repeats until the list has cycled.
type Picker struct {
	bag *shuffle.Bag[string]
}

// NewPicker builds a picker over templates. Blank templates are skipped.
func NewPicker(templates []string, rng *rand.Rand) (*Picker, error) {
	cleaned := make([]string, 0, len(templates))
	for _, template := range templates {
		if strings.TrimSpace(template) == "" {
			continue
		}
		cleaned = append(cleaned, template)
	}
	if len(cleaned) == 0 {
		return nil, ErrNoTemplates
	}
	return &Picker{bag: shuffle.New(cleaned, rng)}, nil
}

// Pick returns the next rendered message for goal.
func (picker *Picker) Pick(goal string) string {
	template, _ := picker.bag.Next()
	return Render(template, goal)
}

// size returns the number of templates in rotation.
func (picker *Picker) size() int {
	return picker.bag.Len()
}
