package nal

import "testing"

func TestExtractConjunctionMemberRequiresConstantComponent(t *testing.T) {
	a, b := Atom("a"), Atom("b")
	conj := Compound(OpConjunction, a, b)

	if m := extractConjunctionMember(conj, 0); m != a {
		t.Errorf("expected to extract a at index 0, got %v", m)
	}
	if m := extractConjunctionMember(conj, 5); m != nil {
		t.Error("expected an out-of-range index to return nil")
	}
	if m := extractConjunctionMember(nil, 0); m != nil {
		t.Error("expected a nil compound to return nil")
	}
}

func TestExtractConjunctionMemberRejectsOutOfOrderForwardExtraction(t *testing.T) {
	a, b := Atom("a"), Atom("b")
	conj := BuildOrderedJunction(OpConjunction, TemporalForward, a, b)
	if conj == nil {
		t.Fatal("expected forward-ordered conjunction to build")
	}

	if m := extractConjunctionMember(conj, 1); m != nil {
		t.Error("expected temporal forward order to forbid extracting a later component out of sequence")
	}
	if m := extractConjunctionMember(conj, 0); m != a {
		t.Errorf("expected index 0 to still extract fine under forward order, got %v", m)
	}
}

func TestStructuralCompoundTruthGoalsTakeStraightDeduction(t *testing.T) {
	premise := TruthValue{Frequency: 0.9, Confidence: 0.9}
	want := Deduction(premise, 0.9)

	got := structuralCompoundTruth(premise, true, true, false, 0.9)
	if got != want {
		t.Errorf("expected a goal extraction to use plain deduction regardless of junction/member shape, got %v want %v", got, want)
	}

	got2 := structuralCompoundTruth(premise, true, false, true, 0.9)
	if got2 != want {
		t.Errorf("expected goals to ignore the De Morgan sign flip entirely, got %v want %v", got2, want)
	}
}

func TestStructuralCompoundTruthJudgmentDeMorganSignFlip(t *testing.T) {
	premise := TruthValue{Frequency: 0.9, Confidence: 0.8}
	reliance := 0.9
	base := Deduction(premise, reliance)
	negated := Negation(base)

	cases := []struct {
		name                string
		isConjunction       bool
		extractedIsCompound bool
		want                TruthValue
	}{
		{"conjunction, leaf member: straight deduction", true, false, base},
		{"disjunction, leaf member: De Morgan sign flip", false, false, negated},
		{"conjunction, compound member: De Morgan sign flip", true, true, negated},
		{"disjunction, compound member: straight deduction", false, true, base},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := structuralCompoundTruth(premise, false, c.isConjunction, c.extractedIsCompound, reliance)
			if got != c.want {
				t.Errorf("got %v, want %v", got, c.want)
			}
		})
	}
}

func TestApplyStructuralCompoundEmitsOneConclusionPerExtractableMember(t *testing.T) {
	m := NewMemory(DefaultConfig())
	a, b := Atom("a"), Atom("b")
	content := Compound(OpConjunction, a, b)
	stamp := NewInputStamp(m.NewStampSerial(), m.GetTime(), Eternal)
	truth := TruthValue{Frequency: 0.9, Confidence: 0.9}
	sentence := NewSentence(content, Judgment, &truth, stamp)
	task := NewInputTask(sentence, Budget{Priority: 0.9, Durability: 0.9, Quality: 0.9})

	m.currentTask = task
	before := len(m.inputQueue)
	m.applyStructuralCompound(task)

	if len(m.inputQueue)-before != 2 {
		t.Fatalf("expected one derived conclusion per conjunction member, got %d", len(m.inputQueue)-before)
	}
}

func TestApplyStructuralCompoundIgnoresNonJunctionContent(t *testing.T) {
	m := NewMemory(DefaultConfig())
	content := Inheritance(Atom("robin"), Atom("bird"))
	stamp := NewInputStamp(m.NewStampSerial(), m.GetTime(), Eternal)
	truth := TruthValue{Frequency: 0.9, Confidence: 0.9}
	sentence := NewSentence(content, Judgment, &truth, stamp)
	task := NewInputTask(sentence, Budget{Priority: 0.9, Durability: 0.9, Quality: 0.9})

	m.currentTask = task
	before := len(m.inputQueue)
	m.applyStructuralCompound(task)

	if len(m.inputQueue) != before {
		t.Error("expected non-junction content to produce no derivations")
	}
}
