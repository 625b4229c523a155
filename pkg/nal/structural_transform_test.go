package nal

import "testing"

func TestTransformInheritanceRoundTrip(t *testing.T) {
	a, b, r := Atom("a"), Atom("b"), Atom("R")
	product := Compound(OpProduct, a, b)
	original := Inheritance(product, r)

	t.Run("product to image at index 0 then back recovers the original", func(t *testing.T) {
		toImage := TransformInheritance(original, 0)
		if toImage == nil {
			t.Fatal("expected product->image transform to succeed")
		}
		back := TransformInheritance(toImage, 0)
		if back != original {
			t.Errorf("expected round trip to recover the original statement, got %v", back)
		}
	})

	t.Run("transform at index 1 targets the other argument", func(t *testing.T) {
		toImage := TransformInheritance(original, 1)
		if toImage == nil {
			t.Fatal("expected product->image transform at index 1 to succeed")
		}
		if toImage.Subject() != b {
			t.Errorf("expected new subject to be b, got %v", toImage.Subject())
		}
	})

	t.Run("out of range index fails construction", func(t *testing.T) {
		if got := TransformInheritance(original, 5); got != nil {
			t.Errorf("expected nil for an out-of-range index, got %v", got)
		}
	})
}

func TestComposeDecomposeTwo(t *testing.T) {
	s, p, other := Atom("s"), Atom("p"), Atom("t")
	stmt := Inheritance(s, p)

	t.Run("compose then decompose recovers the original", func(t *testing.T) {
		composed := ComposeTwo(stmt, OpDifferenceExt, other)
		if composed == nil {
			t.Fatal("expected ComposeTwo to succeed")
		}
		decomposed := DecomposeTwo(composed)
		if decomposed != stmt {
			t.Errorf("expected decompose to recover %v, got %v", stmt, decomposed)
		}
	})

	t.Run("degenerate companion equal to a side is rejected", func(t *testing.T) {
		if got := ComposeTwo(stmt, OpProduct, s); got != nil {
			t.Errorf("expected nil when the companion equals the subject, got %v", got)
		}
	})
}

func TestSetRelationTransform(t *testing.T) {
	m := NewMemory(DefaultConfig())
	robin := Atom("robin")
	birdSet := Compound(OpSetExt, Atom("bird"))
	content := Inheritance(robin, birdSet)
	stamp := NewInputStamp(m.NewStampSerial(), m.GetTime(), Eternal)
	truth := TruthValue{Frequency: 0.9, Confidence: 0.9}
	sentence := NewSentence(content, Judgment, &truth, stamp)
	task := NewInputTask(sentence, Budget{Priority: 0.9, Durability: 0.9, Quality: 0.9})

	m.currentTask = task
	before := len(m.inputQueue)
	m.applySetRelationTransform(task)

	t.Run("singleton set on the predicate side yields a similarity", func(t *testing.T) {
		if len(m.inputQueue) <= before {
			t.Fatal("expected applySetRelationTransform to admit a derived task")
		}
		derived := m.inputQueue[len(m.inputQueue)-1]
		if derived.Sentence.Content.Copula() != CopSimilarity {
			t.Errorf("expected a similarity conclusion, got copula %v", derived.Sentence.Content.Copula())
		}
		want := Deduction(truth, m.config.Reliance)
		got := *derived.Sentence.Truth
		if !almostEqual(got.Frequency, want.Frequency) || !almostEqual(got.Confidence, want.Confidence) {
			t.Errorf("expected deduction-discounted truth %+v, got %+v", want, got)
		}
	})
}

func TestContrapositionOnQuestion(t *testing.T) {
	m := NewMemory(DefaultConfig())
	a, b := Atom("a"), Atom("b")
	content := Implication(a, b)
	stamp := NewInputStamp(m.NewStampSerial(), m.GetTime(), Eternal)
	sentence := NewSentence(content, Question, nil, stamp)
	task := NewInputTask(sentence, Budget{Priority: 0.9, Durability: 0.9, Quality: 0.9})

	m.currentTask = task
	before := len(m.inputQueue)
	m.applyContraposition(task)

	t.Run("contraposing a question yields a question about the contrapositive", func(t *testing.T) {
		if len(m.inputQueue) <= before {
			t.Fatal("expected applyContraposition to admit a derived question")
		}
		derived := m.inputQueue[len(m.inputQueue)-1]
		if !derived.Sentence.IsQuestion() {
			t.Errorf("expected the conclusion to stay a question, got punctuation %v", derived.Sentence.Punctuation)
		}
		if derived.Sentence.Content.Subject().Op() != OpNegation || derived.Sentence.Content.Predicate().Op() != OpNegation {
			t.Errorf("expected <(--,b) ==> (--,a)>, got %v", derived.Sentence.Content)
		}
	})
}

func TestNegationDoubleApplicationIdentity(t *testing.T) {
	t.Run("double negation collapses to the original term", func(t *testing.T) {
		a := Atom("a")
		negated := Compound(OpNegation, a)
		doubleNegated := Compound(OpNegation, negated)
		if doubleNegated != a {
			t.Errorf("expected --(--,a) to collapse to a, got %v", doubleNegated)
		}
	})
}
