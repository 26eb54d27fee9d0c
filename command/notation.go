package command

import (
	"fmt"
	"strings"
)

// Parse reads numpad notation into steps. Steps are separated by ",",
// keys held together by "+", and substitute directions follow "/":
//
//	2,3,6+A      quarter circle forward with A
//	2,3/6,6      the diagonal may be skipped by going straight to forward
//	6,5,6        forward, release, forward
func Parse(notation string) ([]Step, error) {
	notation = strings.TrimSpace(notation)
	if notation == "" {
		return nil, ErrEmptyDefinition
	}

	fields := strings.Split(notation, ",")
	steps := make([]Step, 0, len(fields))
	for i, field := range fields {
		step, err := parseStep(field)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
		steps = append(steps, step)
	}
	return steps, nil
}

func parseStep(field string) (Step, error) {
	alts := strings.Split(field, "/")

	var step Step
	for _, tok := range strings.Split(alts[0], "+") {
		if strings.TrimSpace(tok) == "" {
			return Step{}, ErrEmptyStep
		}
		k, err := parseToken(tok)
		if err != nil {
			return Step{}, err
		}
		step.Required |= k
	}
	for _, tok := range alts[1:] {
		k, err := parseToken(tok)
		if err != nil {
			return Step{}, err
		}
		step.Substitutes |= k
	}
	return step, nil
}

// Compile parses notation and validates the resulting definition.
func Compile(notation string, slack, window int) (Definition, error) {
	steps, err := Parse(notation)
	if err != nil {
		return Definition{}, err
	}
	def := Definition{Steps: steps, Slack: slack, Window: window}
	if err := def.Validate(); err != nil {
		return Definition{}, err
	}
	return def, nil
}
