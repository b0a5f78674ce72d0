package question

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// questionSetFile is the on-disk shape of a question set.
type questionSetFile struct {
	Title     string         `yaml:"title"`
	Questions []BaseQuestion `yaml:"questions"`
}

// Set is a named collection of base questions.
type Set struct {
	// Title is the worksheet title, e.g. "Grade 6 Practice Set".
	Title string

	// Questions in worksheet order.
	Questions []BaseQuestion
}

// LoadSet reads and validates a question set from a YAML file.
//
// Expected shape:
//
//	title: Grade 6 Practice Set
//	questions:
//	  - topic: Counting & Arrangement Problems
//	    subject: Quantitative Math
//	    unit: Data Analysis & Probability
//	    difficulty: easy
//	    seed: |
//	      Each student wears a uniform of 1 shirt and 1 pair of pants. ...
func LoadSet(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read question set: %w", err)
	}
	return ParseSet(data)
}

// ParseSet parses and validates question set YAML.
func ParseSet(data []byte) (*Set, error) {
	var file questionSetFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse question set: %w", err)
	}

	if len(file.Questions) == 0 {
		return nil, &ValidationError{Field: "questions", Message: "question set is empty"}
	}

	for i, q := range file.Questions {
		if err := q.Validate(); err != nil {
			return nil, fmt.Errorf("question %d: %w", i+1, err)
		}
	}

	return &Set{
		Title:     file.Title,
		Questions: file.Questions,
	}, nil
}
