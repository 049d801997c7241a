// Package questionnaire implements the assessment wizard as pure
// transitions over an immutable state value. The hosting code owns the
// latest state and replaces it after every transition, which makes
// undo/redo and concurrent sessions trivial: there is no in-place
// mutation to race on.
package questionnaire

import (
	"github.com/complykit/complykit/internal/schema"
)

// Engine presents a fixed, ordered question list one step at a time.
// Question order never depends on answer content.
type Engine struct {
	questions []schema.Question
}

// New returns an engine over the given ordered question list.
func New(questions []schema.Question) *Engine {
	return &Engine{questions: questions}
}

// Questions returns the engine's ordered question list.
func (e *Engine) Questions() []schema.Question {
	return e.questions
}

// Len returns the number of questions.
func (e *Engine) Len() int {
	return len(e.questions)
}

// WizardState is the wizard cursor plus the answers collected so far.
// StepIndex ranges over [0, Len()]; Len() itself is the terminal
// "ready to score" state, not a presentable step.
type WizardState struct {
	StepIndex int
	Answers   schema.AnswerSet
}

// Start returns a fresh state at the first step with no answers.
func (e *Engine) Start() WizardState {
	return WizardState{StepIndex: 0, Answers: schema.AnswerSet{}}
}

// CurrentQuestion returns the question at the state's step index.
// Callers must check IsComplete first: once the wizard has passed the
// last step there is no current question.
func (e *Engine) CurrentQuestion(s WizardState) (schema.Question, error) {
	if s.StepIndex < 0 || s.StepIndex >= len(e.questions) {
		return schema.Question{}, &OutOfRangeError{Step: s.StepIndex, Count: len(e.questions)}
	}
	return e.questions[s.StepIndex], nil
}

// SelectAnswer records value for questionID and returns the new state.
// Answers may only be recorded for the step currently presented, which
// keeps every intermediate step validated in order.
func (e *Engine) SelectAnswer(s WizardState, questionID, value string) (WizardState, error) {
	q, err := e.CurrentQuestion(s)
	if err != nil {
		return s, err
	}
	if q.ID != questionID {
		return s, &UnknownQuestionError{QuestionID: questionID, CurrentID: q.ID}
	}
	if !q.HasOption(value) {
		return s, &InvalidOptionError{QuestionID: questionID, Value: value}
	}
	next := WizardState{StepIndex: s.StepIndex, Answers: s.Answers.Clone()}
	next.Answers[questionID] = value
	return next, nil
}

// Advance moves to the next step. The current step must already have a
// recorded answer; this is the sole gate preventing progression.
func (e *Engine) Advance(s WizardState) (WizardState, error) {
	q, err := e.CurrentQuestion(s)
	if err != nil {
		return s, err
	}
	if _, ok := s.Answers[q.ID]; !ok {
		return s, &IncompleteStepError{QuestionID: q.ID, Step: s.StepIndex}
	}
	return WizardState{StepIndex: s.StepIndex + 1, Answers: s.Answers}, nil
}

// Retreat moves to the previous step, floored at 0. The answer recorded
// for the step being left is kept, so re-entering a step pre-fills the
// prior choice.
func (e *Engine) Retreat(s WizardState) WizardState {
	if s.StepIndex <= 0 {
		return WizardState{StepIndex: 0, Answers: s.Answers}
	}
	return WizardState{StepIndex: s.StepIndex - 1, Answers: s.Answers}
}

// IsComplete reports whether the wizard has passed the last step.
func (e *Engine) IsComplete(s WizardState) bool {
	return s.StepIndex == len(e.questions)
}

// Finalize returns the collected answers for scoring. It fails unless
// the wizard has reached the terminal step.
func (e *Engine) Finalize(s WizardState) (schema.AnswerSet, error) {
	if !e.IsComplete(s) {
		return nil, &IncompleteAssessmentError{Step: s.StepIndex, Count: len(e.questions)}
	}
	return s.Answers.Clone(), nil
}
