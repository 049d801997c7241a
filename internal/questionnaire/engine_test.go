package questionnaire

import (
	"errors"
	"testing"

	"github.com/complykit/complykit/internal/schema"
)

func testEngine() *Engine {
	return New([]schema.Question{
		{
			ID:     "transparency",
			Prompt: "How transparent are you?",
			Options: []schema.Option{
				{Value: "full", Label: "Fully"},
				{Value: "none", Label: "Not at all"},
			},
		},
		{
			ID:     "human_oversight",
			Prompt: "What oversight is in place?",
			Options: []schema.Option{
				{Value: "continuous", Label: "Continuous"},
				{Value: "none", Label: "None"},
			},
		},
		{
			ID:     "emotion_recognition",
			Prompt: "Does the system infer emotions?",
			Options: []schema.Option{
				{Value: "yes", Label: "Yes"},
				{Value: "no", Label: "No"},
			},
		},
	})
}

// answerAndAdvance selects value for the current question and advances.
func answerAndAdvance(t *testing.T, e *Engine, s WizardState, value string) WizardState {
	t.Helper()
	q, err := e.CurrentQuestion(s)
	if err != nil {
		t.Fatalf("CurrentQuestion: %v", err)
	}
	s, err = e.SelectAnswer(s, q.ID, value)
	if err != nil {
		t.Fatalf("SelectAnswer(%s, %s): %v", q.ID, value, err)
	}
	s, err = e.Advance(s)
	if err != nil {
		t.Fatalf("Advance from step %d: %v", s.StepIndex, err)
	}
	return s
}

func TestStart_FreshState(t *testing.T) {
	e := testEngine()
	s := e.Start()
	if s.StepIndex != 0 {
		t.Errorf("StepIndex = %d, want 0", s.StepIndex)
	}
	if len(s.Answers) != 0 {
		t.Errorf("Answers = %v, want empty", s.Answers)
	}
}

func TestCurrentQuestion_FollowsStepOrder(t *testing.T) {
	e := testEngine()
	s := e.Start()
	want := []string{"transparency", "human_oversight", "emotion_recognition"}
	values := []string{"full", "continuous", "no"}
	for i, id := range want {
		q, err := e.CurrentQuestion(s)
		if err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
		if q.ID != id {
			t.Errorf("step %d question = %q, want %q", i, q.ID, id)
		}
		s = answerAndAdvance(t, e, s, values[i])
	}
}

func TestCurrentQuestion_AfterCompletion_OutOfRange(t *testing.T) {
	e := testEngine()
	s := e.Start()
	s = answerAndAdvance(t, e, s, "full")
	s = answerAndAdvance(t, e, s, "continuous")
	s = answerAndAdvance(t, e, s, "no")

	_, err := e.CurrentQuestion(s)
	var oor *OutOfRangeError
	if !errors.As(err, &oor) {
		t.Fatalf("CurrentQuestion after completion = %v, want OutOfRangeError", err)
	}
}

func TestSelectAnswer_InvalidOption(t *testing.T) {
	e := testEngine()
	s := e.Start()
	_, err := e.SelectAnswer(s, "transparency", "opaque")
	var invalid *InvalidOptionError
	if !errors.As(err, &invalid) {
		t.Fatalf("err = %v, want InvalidOptionError", err)
	}
}

func TestSelectAnswer_WrongStep_UnknownQuestion(t *testing.T) {
	e := testEngine()
	s := e.Start()
	// human_oversight is step 1, not the current step 0.
	_, err := e.SelectAnswer(s, "human_oversight", "none")
	var unknown *UnknownQuestionError
	if !errors.As(err, &unknown) {
		t.Fatalf("err = %v, want UnknownQuestionError", err)
	}
}

func TestSelectAnswer_DoesNotMutateInput(t *testing.T) {
	e := testEngine()
	s := e.Start()
	next, err := e.SelectAnswer(s, "transparency", "full")
	if err != nil {
		t.Fatalf("SelectAnswer: %v", err)
	}
	if len(s.Answers) != 0 {
		t.Errorf("original state mutated: %v", s.Answers)
	}
	if next.Answers["transparency"] != "full" {
		t.Errorf("new state missing answer: %v", next.Answers)
	}
}

func TestAdvance_WithoutAnswer_IncompleteStep(t *testing.T) {
	e := testEngine()
	s := e.Start()
	_, err := e.Advance(s)
	var incomplete *IncompleteStepError
	if !errors.As(err, &incomplete) {
		t.Fatalf("err = %v, want IncompleteStepError", err)
	}
	if incomplete.QuestionID != "transparency" {
		t.Errorf("QuestionID = %q, want transparency", incomplete.QuestionID)
	}
}

func TestAdvance_WithAnswer_Succeeds(t *testing.T) {
	e := testEngine()
	s := e.Start()
	s, err := e.SelectAnswer(s, "transparency", "none")
	if err != nil {
		t.Fatalf("SelectAnswer: %v", err)
	}
	s, err = e.Advance(s)
	if err != nil {
		t.Fatalf("Advance: %v", err)
	}
	if s.StepIndex != 1 {
		t.Errorf("StepIndex = %d, want 1", s.StepIndex)
	}
}

func TestRetreat_FlooredAtZero(t *testing.T) {
	e := testEngine()
	s := e.Start()
	s = e.Retreat(s)
	if s.StepIndex != 0 {
		t.Errorf("StepIndex = %d, want 0 after retreat at first step", s.StepIndex)
	}
}

func TestRetreat_PreservesAnswer_RoundTrip(t *testing.T) {
	e := testEngine()
	s := e.Start()
	s = answerAndAdvance(t, e, s, "full")

	// Going back must keep the recorded answer so the step re-enters
	// pre-filled, and advancing again must not require re-selection.
	s = e.Retreat(s)
	if s.Answers["transparency"] != "full" {
		t.Fatalf("answer lost on retreat: %v", s.Answers)
	}
	s, err := e.Advance(s)
	if err != nil {
		t.Fatalf("Advance after retreat: %v", err)
	}
	if s.StepIndex != 1 {
		t.Errorf("StepIndex = %d, want 1", s.StepIndex)
	}
}

func TestIsComplete_OnlyAtTerminalStep(t *testing.T) {
	e := testEngine()
	s := e.Start()
	values := []string{"none", "none", "yes"}
	for i, v := range values {
		if e.IsComplete(s) {
			t.Fatalf("IsComplete true at step %d", i)
		}
		s = answerAndAdvance(t, e, s, v)
	}
	if !e.IsComplete(s) {
		t.Error("IsComplete false at terminal step")
	}
}

func TestFinalize_BeforeComplete_Fails(t *testing.T) {
	e := testEngine()
	s := e.Start()
	for i := 0; i < e.Len(); i++ {
		if _, err := e.Finalize(s); err == nil {
			t.Fatalf("Finalize succeeded at step %d", i)
		} else {
			var incomplete *IncompleteAssessmentError
			if !errors.As(err, &incomplete) {
				t.Fatalf("step %d: err = %v, want IncompleteAssessmentError", i, err)
			}
		}
		q, err := e.CurrentQuestion(s)
		if err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
		s = answerAndAdvance(t, e, s, q.Options[0].Value)
	}
}

func TestFinalize_Complete_ReturnsAllAnswers(t *testing.T) {
	e := testEngine()
	s := e.Start()
	s = answerAndAdvance(t, e, s, "full")
	s = answerAndAdvance(t, e, s, "none")
	s = answerAndAdvance(t, e, s, "yes")

	set, err := e.Finalize(s)
	if err != nil {
		t.Fatalf("Finalize: %v", err)
	}
	want := schema.AnswerSet{
		"transparency":        "full",
		"human_oversight":     "none",
		"emotion_recognition": "yes",
	}
	if len(set) != len(want) {
		t.Fatalf("answer set = %v, want %v", set, want)
	}
	for id, v := range want {
		if set[id] != v {
			t.Errorf("answer[%s] = %q, want %q", id, set[id], v)
		}
	}
}

func TestWizard_StepIndexAlwaysInRange(t *testing.T) {
	e := testEngine()
	s := e.Start()
	check := func() {
		if s.StepIndex < 0 || s.StepIndex > e.Len() {
			t.Fatalf("StepIndex %d outside [0, %d]", s.StepIndex, e.Len())
		}
	}
	check()
	s = answerAndAdvance(t, e, s, "full")
	check()
	s = e.Retreat(s)
	check()
	s, _ = e.Advance(s)
	check()
	s = answerAndAdvance(t, e, s, "continuous")
	check()
	s = answerAndAdvance(t, e, s, "no")
	check()
}
