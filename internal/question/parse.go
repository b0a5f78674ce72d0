package question

import (
	"encoding/json"
	"fmt"
	"strings"
)

// variationOutput is the raw model response before shape checks.
type variationOutput struct {
	QuestionText  string   `json:"question_text"`
	Instruction   string   `json:"instruction"`
	Options       []string `json:"options"`
	CorrectAnswer *int     `json:"correct_answer_index"`
	Explanation   string   `json:"explanation"`
	Difficulty    string   `json:"difficulty"`
}

// Parse extracts a GeneratedQuestion from raw model output.
//
// The prompt requests a JSON object, but models sometimes wrap it in prose
// or a markdown fence, so the outermost {...} is located first. The decoded
// object is then checked against the required shape: exactly five options,
// a correct index within range, and non-empty stem and explanation. Any
// violation returns a ParseError; missing fields are never guessed.
func Parse(raw string, base BaseQuestion) (*GeneratedQuestion, error) {
	body, err := extractJSON(raw)
	if err != nil {
		return nil, err
	}

	var out variationOutput
	if err := json.Unmarshal([]byte(body), &out); err != nil {
		return nil, &ParseError{Reason: "invalid JSON", Err: err}
	}

	if strings.TrimSpace(out.QuestionText) == "" {
		return nil, &ParseError{Reason: "question_text is empty"}
	}
	if len(out.Options) != OptionCount {
		return nil, &ParseError{
			Reason: fmt.Sprintf("expected %d options, got %d", OptionCount, len(out.Options)),
		}
	}
	for i, opt := range out.Options {
		if strings.TrimSpace(opt) == "" {
			return nil, &ParseError{Reason: fmt.Sprintf("option %s is empty", Labels[i])}
		}
	}
	if out.CorrectAnswer == nil {
		return nil, &ParseError{Reason: "correct_answer_index is missing"}
	}
	if *out.CorrectAnswer < 0 || *out.CorrectAnswer >= OptionCount {
		return nil, &ParseError{
			Reason: fmt.Sprintf("correct_answer_index %d out of range [0,%d]", *out.CorrectAnswer, OptionCount-1),
		}
	}
	if strings.TrimSpace(out.Explanation) == "" {
		return nil, &ParseError{Reason: "explanation is empty"}
	}

	q := &GeneratedQuestion{
		Stem:         strings.TrimSpace(out.QuestionText),
		Instruction:  strings.TrimSpace(out.Instruction),
		CorrectLabel: Labels[*out.CorrectAnswer],
		Explanation:  strings.TrimSpace(out.Explanation),
		Difficulty:   normalizeDifficulty(out.Difficulty, base.Difficulty),
		Topic:        base.Topic,
		Subject:      base.Subject,
		Unit:         base.Unit,
	}
	copy(q.Options[:], out.Options)

	return q, nil
}

// extractJSON returns the outermost JSON object in raw.
func extractJSON(raw string) (string, error) {
	start := strings.IndexByte(raw, '{')
	end := strings.LastIndexByte(raw, '}')
	if start == -1 || end == -1 || end < start {
		return "", &ParseError{Reason: "no JSON object found in model output"}
	}
	return raw[start : end+1], nil
}

// normalizeDifficulty maps the model's difficulty wording onto the enum,
// falling back to the base question's difficulty when unrecognized. The
// base difficulty is what the prompt asked the model to preserve, so it is
// the authoritative value, not a guess.
func normalizeDifficulty(s string, base Difficulty) Difficulty {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return DifficultyEasy
	case "medium", "moderate":
		return DifficultyMedium
	case "hard":
		return DifficultyHard
	default:
		return base
	}
}
