package nal

import "testing"

func TestNewSentenceRequiresTruthIffJudgmentOrGoal(t *testing.T) {
	content := Inheritance(Atom("robin"), Atom("bird"))
	stamp := NewInputStamp(1, 0, Eternal)
	truth := TruthValue{Frequency: 0.9, Confidence: 0.9}

	if s := NewSentence(content, Judgment, nil, stamp); s != nil {
		t.Error("expected a judgment with no truth to be rejected")
	}
	if s := NewSentence(content, Goal, nil, stamp); s != nil {
		t.Error("expected a goal with no truth to be rejected")
	}
	if s := NewSentence(content, Question, &truth, stamp); s != nil {
		t.Error("expected a question with truth attached to be rejected")
	}
	if s := NewSentence(content, Quest, &truth, stamp); s != nil {
		t.Error("expected a quest with truth attached to be rejected")
	}
	if s := NewSentence(content, Judgment, &truth, stamp); s == nil {
		t.Error("expected a judgment with truth to be accepted")
	}
	if s := NewSentence(content, Question, nil, stamp); s == nil {
		t.Error("expected a question with no truth to be accepted")
	}
}

func TestNewSentenceRejectsNilContentOrStamp(t *testing.T) {
	content := Inheritance(Atom("robin"), Atom("bird"))
	stamp := NewInputStamp(1, 0, Eternal)

	if s := NewSentence(nil, Question, nil, stamp); s != nil {
		t.Error("expected nil content to be rejected")
	}
	if s := NewSentence(content, Question, nil, nil); s != nil {
		t.Error("expected nil stamp to be rejected")
	}
}

func TestSentencePunctuationPredicates(t *testing.T) {
	content := Inheritance(Atom("robin"), Atom("bird"))
	stamp := NewInputStamp(1, 0, Eternal)
	truth := TruthValue{Frequency: 0.9, Confidence: 0.9}

	j := NewSentence(content, Judgment, &truth, stamp)
	if !j.IsJudgment() || j.IsGoal() || j.IsQuestion() || j.IsQuest() {
		t.Error("expected only IsJudgment to be true for a judgment")
	}

	q := NewSentence(content, Quest, nil, stamp)
	if !q.IsQuest() || q.IsJudgment() {
		t.Error("expected only IsQuest to be true for a quest")
	}
}
