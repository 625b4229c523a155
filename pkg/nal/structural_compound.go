package nal

// extractConjunctionMember implements the structural compound-extraction
// rule:
//
//	{(&&, A, B), A ∈ (&&, A, B)} ⊢ A
//
// (the same extraction applies to disjunction). Gated on A.IsConstant()
// (the term algebra has no variables of its own, so this always holds
// here — kept as an explicit guard to mirror the source rule's shape) and,
// for a forward-ordered conjunction, on index == 0: temporal ordering
// forbids picking a later component out of sequence.
func extractConjunctionMember(compound *Term, index int) *Term {
	if compound == nil || (compound.op != OpConjunction && compound.op != OpDisjunction) {
		return nil
	}
	if index < 0 || index >= compound.Arity() {
		return nil
	}
	if compound.op == OpConjunction && compound.temporal == TemporalForward && index != 0 {
		return nil
	}
	member := compound.components[index]
	if !member.IsConstant() {
		return nil
	}
	return member
}

// structuralCompoundTruth computes the truth sub-case table for
// conjunction/disjunction extraction. Goals always take the straight
// deduction form. For judgments, the De Morgan duality between conjunction and
// disjunction ((||,A,B) ≡ --(&&,--A,--B)) means extracting from a
// disjunction, or extracting a compound (itself a nested junction) member,
// flips the sign relative to the "plain" case of extracting a leaf from a
// conjunction — hence the isConjunction XOR extractedIsCompound condition
// below; see DESIGN.md for the worked-through rationale and the four
// cases under test.
func structuralCompoundTruth(premise TruthValue, isGoal bool, isConjunction, extractedIsCompound bool, reliance float64) TruthValue {
	base := Deduction(premise, reliance)
	if isGoal {
		return base
	}
	if isConjunction != extractedIsCompound {
		return base
	}
	return Negation(base)
}

// applyStructuralCompound is cycle.go's dispatcher entry point: it tries
// extracting every member of a top-level conjunction/disjunction content
// and emits one derived task per admissible extraction.
func (m *Memory) applyStructuralCompound(task *Task) {
	content := task.Sentence.Content
	if !content.IsCompound() || (content.op != OpConjunction && content.op != OpDisjunction) {
		return
	}
	sentence := task.Sentence
	for i := range content.components {
		member := extractConjunctionMember(content, i)
		if member == nil {
			continue
		}
		if sentence.Truth == nil {
			budget := CompoundBackward(task.Budget, member)
			m.emitSinglePremise(member, nil, nil, budget)
			continue
		}
		truth := structuralCompoundTruth(*sentence.Truth, sentence.IsGoal(), content.op == OpConjunction, member.IsCompound(), m.config.Reliance)
		budget := CompoundForward(&truth, task.Budget, member)
		m.emitSinglePremise(member, nil, &truth, budget)
	}
}
