package questionnaire

import "fmt"

// Every error in this package reports a precondition the caller could
// have checked in advance (e.g. via IsComplete). None are transient and
// none are retried internally.

// OutOfRangeError reports a request for the current question after the
// wizard completed.
type OutOfRangeError struct {
	Step  int
	Count int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("step %d out of range: wizard has %d questions", e.Step, e.Count)
}

// InvalidOptionError reports a selected value that is not among the
// declared options for the question.
type InvalidOptionError struct {
	QuestionID string
	Value      string
}

func (e *InvalidOptionError) Error() string {
	return fmt.Sprintf("value %q is not an option of question %q", e.Value, e.QuestionID)
}

// UnknownQuestionError reports an answer for a question other than the
// one currently presented.
type UnknownQuestionError struct {
	QuestionID string
	CurrentID  string
}

func (e *UnknownQuestionError) Error() string {
	return fmt.Sprintf("question %q is not the current step (expected %q)", e.QuestionID, e.CurrentID)
}

// IncompleteStepError reports an advance without an answer for the
// current step.
type IncompleteStepError struct {
	QuestionID string
	Step       int
}

func (e *IncompleteStepError) Error() string {
	return fmt.Sprintf("step %d (question %q) has no recorded answer", e.Step, e.QuestionID)
}

// IncompleteAssessmentError reports a finalize before the terminal step.
type IncompleteAssessmentError struct {
	Step  int
	Count int
}

func (e *IncompleteAssessmentError) Error() string {
	return fmt.Sprintf("assessment incomplete: at step %d of %d", e.Step, e.Count)
}
