package airspace

import (
	"errors"
	"fmt"
)

// ErrDanglingQuestion is returned when a permit decision tree references a
// question that does not exist, or when following answers never reaches a
// terminal state. Both are data integrity errors in the upstream tree.
var ErrDanglingQuestion = errors.New("permit decision question reference does not resolve")

var errFlowTerminal = errors.New("decision flow has already terminated")

type DecisionQuestion struct {
	ID      string           `json:"id"`
	Text    string           `json:"text"`
	Answers []DecisionAnswer `json:"answers"`
}

// DecisionAnswer leads to exactly one of: another question, a concrete permit
// or an informational message.
type DecisionAnswer struct {
	ID             string `json:"id"`
	Text           string `json:"text"`
	NextQuestionID string `json:"next_question_id,omitempty"`
	PermitID       string `json:"permit_id,omitempty"`
	Message        string `json:"message,omitempty"`
}

// DecisionFlow walks an advisory's permit decision tree as the pilot answers.
// The flow terminates at a permit recommendation or an informational message;
// terminal flows accept no further answers.
type DecisionFlow struct {
	questions map[string]DecisionQuestion

	current  string
	permitID string
	message  string
	terminal bool
	steps    int
}

func NewDecisionFlow(firstQuestionID string, questions []DecisionQuestion) (*DecisionFlow, error) {
	byID := make(map[string]DecisionQuestion, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}

	if _, ok := byID[firstQuestionID]; !ok {
		return nil, fmt.Errorf("%w: first question %q", ErrDanglingQuestion, firstQuestionID)
	}

	return &DecisionFlow{
		questions: byID,
		current:   firstQuestionID,
	}, nil
}

// Current returns the question awaiting an answer, or false when the flow has
// terminated.
func (f *DecisionFlow) Current() (DecisionQuestion, bool) {
	if f.terminal {
		return DecisionQuestion{}, false
	}
	return f.questions[f.current], true
}

// Resolved returns the recommended permit id when the flow terminated with a
// permit recommendation.
func (f *DecisionFlow) Resolved() (string, bool) {
	return f.permitID, f.terminal && f.permitID != ""
}

// Message returns the informational message when the flow terminated without
// a permit.
func (f *DecisionFlow) Message() (string, bool) {
	return f.message, f.terminal && f.permitID == ""
}

func (f *DecisionFlow) Terminal() bool {
	return f.terminal
}

// Answer applies the answer with the given id to the current question. A next
// question reference that does not resolve, or a walk longer than the number
// of questions in the tree, reports ErrDanglingQuestion.
func (f *DecisionFlow) Answer(answerID string) error {
	if f.terminal {
		return errFlowTerminal
	}

	q := f.questions[f.current]

	i := -1
	for n, a := range q.Answers {
		if a.ID == answerID {
			i = n
			break
		}
	}
	if i < 0 {
		return fmt.Errorf("question %q has no answer %q", q.ID, answerID)
	}

	answer := q.Answers[i]

	if answer.NextQuestionID != "" {
		if _, ok := f.questions[answer.NextQuestionID]; !ok {
			return fmt.Errorf("%w: next question %q", ErrDanglingQuestion, answer.NextQuestionID)
		}

		f.steps++
		if f.steps >= len(f.questions) {
			// a walk longer than the tree itself can only mean a cycle
			return fmt.Errorf("%w: cycle detected at question %q", ErrDanglingQuestion, answer.NextQuestionID)
		}

		f.current = answer.NextQuestionID
		return nil
	}

	f.terminal = true

	if answer.PermitID != "" {
		f.permitID = answer.PermitID
		return nil
	}

	f.message = answer.Message
	return nil
}
