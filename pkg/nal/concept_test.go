package nal

import "testing"

func beliefSentence(content *Term, freq, conf float64) *Sentence {
	truth := TruthValue{Frequency: freq, Confidence: conf}
	stamp := NewInputStamp(1, 0, Eternal)
	return NewSentence(content, Judgment, &truth, stamp)
}

func TestConceptAddBeliefRanksByExpectation(t *testing.T) {
	c := NewConcept(Atom("bird"), Budget{Priority: 0.5, Durability: 0.5, Quality: 0.5}, 10, 10, 3, 3, 3)

	c.AddBelief(beliefSentence(Inheritance(Atom("robin"), Atom("bird")), 0.9, 0.5))
	c.AddBelief(beliefSentence(Inheritance(Atom("sparrow"), Atom("bird")), 0.99, 0.99))
	c.AddBelief(beliefSentence(Inheritance(Atom("penguin"), Atom("bird")), 0.6, 0.3))

	beliefs := c.Beliefs()
	if len(beliefs) != 3 {
		t.Fatalf("expected 3 beliefs, got %d", len(beliefs))
	}
	for i := 1; i < len(beliefs); i++ {
		if beliefs[i-1].Truth.Expectation() < beliefs[i].Truth.Expectation() {
			t.Errorf("expected beliefs ranked by descending expectation, got %v then %v",
				beliefs[i-1].Truth.Expectation(), beliefs[i].Truth.Expectation())
		}
	}
}

func TestConceptAddBeliefTruncatesToMax(t *testing.T) {
	c := NewConcept(Atom("bird"), Budget{Priority: 0.5, Durability: 0.5, Quality: 0.5}, 10, 10, 2, 2, 2)
	for i := 0; i < 5; i++ {
		c.AddBelief(beliefSentence(Inheritance(Atom(string(rune('a'+i))), Atom("bird")), 0.5+float64(i)*0.05, 0.5))
	}
	if len(c.Beliefs()) != 2 {
		t.Errorf("expected beliefs truncated to maxBeliefs=2, got %d", len(c.Beliefs()))
	}
}

func TestConceptAddQuestionEvictsOldest(t *testing.T) {
	c := NewConcept(Atom("bird"), Budget{Priority: 0.5, Durability: 0.5, Quality: 0.5}, 10, 10, 5, 2, 5)
	stamp := NewInputStamp(1, 0, Eternal)
	q1 := NewInputTask(NewSentence(Inheritance(Atom("a"), Atom("bird")), Question, nil, stamp), Budget{})
	q2 := NewInputTask(NewSentence(Inheritance(Atom("b"), Atom("bird")), Question, nil, stamp), Budget{})
	q3 := NewInputTask(NewSentence(Inheritance(Atom("c"), Atom("bird")), Question, nil, stamp), Budget{})

	c.AddQuestion(q1)
	c.AddQuestion(q2)
	c.AddQuestion(q3)

	questions := c.Questions()
	if len(questions) != 2 {
		t.Fatalf("expected maxQuestions=2 to bound the list, got %d", len(questions))
	}
	if questions[0] != q2 || questions[1] != q3 {
		t.Errorf("expected the oldest question to be evicted, got %v", questions)
	}
}
