package questiongen

import (
	"strings"
	"testing"

	"github.com/Rupesh023/Question-gen/internal/question"
)

func validQuestion() *question.GeneratedQuestion {
	return &question.GeneratedQuestion{
		Stem:         "A box holds 3 red and 5 blue marbles. How many marbles are there in total?",
		Instruction:  "Add the counts.",
		Options:      [5]string{"6", "7", "8", "9", "15"},
		CorrectLabel: "C",
		Explanation:  "3 + 5 = 8 marbles.",
		Difficulty:   question.DifficultyEasy,
	}
}

func TestStructural_Passes(t *testing.T) {
	v := &StructuralValidator{}
	if err := v.Validate(validQuestion(), fractionsBase()); err != nil {
		t.Fatalf("valid question rejected: %v", err)
	}
}

func TestStructural_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*question.GeneratedQuestion)
		reason string
	}{
		{
			name:   "bad correct label",
			mutate: func(q *question.GeneratedQuestion) { q.CorrectLabel = "F" },
			reason: "not one of A-E",
		},
		{
			name:   "duplicate options",
			mutate: func(q *question.GeneratedQuestion) { q.Options[3] = " 8 " },
			reason: "identical",
		},
		{
			name: "verbatim seed copy",
			mutate: func(q *question.GeneratedQuestion) {
				q.Stem = fractionsBase().SeedText
			},
			reason: "verbatim copy",
		},
		{
			name: "oversized stem",
			mutate: func(q *question.GeneratedQuestion) {
				q.Stem = strings.Repeat("x", 2001)
			},
			reason: "exceeds 2000",
		},
	}

	v := &StructuralValidator{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := validQuestion()
			tt.mutate(q)
			err := v.Validate(q, fractionsBase())
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Message, tt.reason) {
				t.Errorf("message %q does not mention %q", err.Message, tt.reason)
			}
		})
	}
}
