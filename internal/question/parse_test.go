package question

import (
	"errors"
	"strings"
	"testing"
)

func baseFractions() BaseQuestion {
	return BaseQuestion{
		Topic:      "Fractions",
		Subject:    "Quantitative Math",
		Unit:       "Numbers and Operations",
		Difficulty: DifficultyEasy,
		SeedText:   "1/2 + 1/3 = ?",
	}
}

func validResponse() string {
	return `{
		"question_text": "A recipe uses 1/4 cup of sugar and 2/3 cup of flour. How many cups of dry ingredients are used in total?",
		"instruction": "Add the fractions and select the answer.",
		"options": ["7/12", "3/7", "11/12", "1/2", "5/6"],
		"correct_answer_index": 2,
		"explanation": "Find a common denominator: 1/4 = 3/12 and 2/3 = 8/12. Then 3/12 + 8/12 = 11/12.",
		"difficulty": "easy"
	}`
}

func TestParse_Valid(t *testing.T) {
	q, err := Parse(validResponse(), baseFractions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(q.Options) != OptionCount {
		t.Fatalf("expected %d options, got %d", OptionCount, len(q.Options))
	}
	if q.CorrectLabel != "C" {
		t.Errorf("expected correct label C, got %q", q.CorrectLabel)
	}
	if q.CorrectIndex() != 2 {
		t.Errorf("expected correct index 2, got %d", q.CorrectIndex())
	}
	if q.Explanation == "" {
		t.Error("expected non-empty explanation")
	}
	if q.Topic != "Fractions" || q.Subject != "Quantitative Math" {
		t.Errorf("curriculum tags not carried over: %q / %q", q.Topic, q.Subject)
	}
	if q.Difficulty != DifficultyEasy {
		t.Errorf("expected easy difficulty, got %q", q.Difficulty)
	}
}

func TestParse_FencedJSON(t *testing.T) {
	raw := "Here is your question:\n```json\n" + validResponse() + "\n```\nLet me know if you need another."
	q, err := Parse(raw, baseFractions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.CorrectLabel != "C" {
		t.Errorf("expected correct label C, got %q", q.CorrectLabel)
	}
}

func TestParse_Malformed(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		reason string
	}{
		{
			name:   "no JSON",
			raw:    "Sorry, I cannot help with that.",
			reason: "no JSON object",
		},
		{
			name:   "invalid JSON",
			raw:    `{"question_text": "What is`,
			reason: "invalid JSON",
		},
		{
			name: "three options",
			raw: `{"question_text": "Pick one.", "options": ["1", "2", "3"],
				"correct_answer_index": 0, "explanation": "Because."}`,
			reason: "expected 5 options, got 3",
		},
		{
			name: "missing correct index",
			raw: `{"question_text": "Pick one.", "options": ["1", "2", "3", "4", "5"],
				"explanation": "Because."}`,
			reason: "correct_answer_index is missing",
		},
		{
			name: "index out of range",
			raw: `{"question_text": "Pick one.", "options": ["1", "2", "3", "4", "5"],
				"correct_answer_index": 5, "explanation": "Because."}`,
			reason: "out of range",
		},
		{
			name: "empty stem",
			raw: `{"question_text": "", "options": ["1", "2", "3", "4", "5"],
				"correct_answer_index": 0, "explanation": "Because."}`,
			reason: "question_text is empty",
		},
		{
			name: "empty explanation",
			raw: `{"question_text": "Pick one.", "options": ["1", "2", "3", "4", "5"],
				"correct_answer_index": 0, "explanation": ""}`,
			reason: "explanation is empty",
		},
		{
			name: "blank option",
			raw: `{"question_text": "Pick one.", "options": ["1", "2", " ", "4", "5"],
				"correct_answer_index": 0, "explanation": "Because."}`,
			reason: "option C is empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := Parse(tt.raw, baseFractions())
			if err == nil {
				t.Fatalf("expected ParseError, got question %+v", q)
			}
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("expected *ParseError, got %T: %v", err, err)
			}
			if !strings.Contains(err.Error(), tt.reason) {
				t.Errorf("error %q does not mention %q", err.Error(), tt.reason)
			}
			if q != nil {
				t.Error("malformed response must never produce a question")
			}
		})
	}
}

func TestParse_DifficultyNormalization(t *testing.T) {
	tests := []struct {
		model string
		want  Difficulty
	}{
		{"easy", DifficultyEasy},
		{"moderate", DifficultyMedium},
		{"medium", DifficultyMedium},
		{"Hard", DifficultyHard},
		{"tricky", DifficultyEasy}, // falls back to base difficulty
		{"", DifficultyEasy},
	}
	for _, tt := range tests {
		raw := strings.Replace(validResponse(), `"difficulty": "easy"`, `"difficulty": "`+tt.model+`"`, 1)
		q, err := Parse(raw, baseFractions())
		if err != nil {
			t.Fatalf("difficulty %q: unexpected error: %v", tt.model, err)
		}
		if q.Difficulty != tt.want {
			t.Errorf("difficulty %q: got %q, want %q", tt.model, q.Difficulty, tt.want)
		}
	}
}

func TestBaseQuestionValidate(t *testing.T) {
	b := baseFractions()
	if err := b.Validate(); err != nil {
		t.Fatalf("valid question rejected: %v", err)
	}

	b.SeedText = ""
	var verr *ValidationError
	if err := b.Validate(); !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError for empty seed, got %v", err)
	}

	b = baseFractions()
	b.Difficulty = "impossible"
	if err := b.Validate(); !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError for bad difficulty, got %v", err)
	}

	b.Difficulty = ""
	if err := b.Validate(); !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError for missing difficulty, got %v", err)
	}
}
