package nal

// substituteAt rebuilds root with the subterm at path (a sequence of child
// indices) replaced by replacement, rebuilding every ancestor along the
// way via Make so operator/copula/temporal are preserved. Returns nil if
// any step is out of bounds or any intermediate Make fails (construction
// failure). An empty path means root itself is replaced.
func substituteAt(root *Term, path []int, replacement *Term) *Term {
	if len(path) == 0 {
		return replacement
	}
	idx := path[0]
	if idx < 0 || idx >= root.Arity() {
		return nil
	}
	childReplacement := substituteAt(root.components[idx], path[1:], replacement)
	if childReplacement == nil {
		return nil
	}
	newChildren := append([]*Term(nil), root.components...)
	newChildren[idx] = childReplacement
	return Make(root, newChildren)
}

// termAt walks path down from root, returning nil if any step is out of
// bounds.
func termAt(root *Term, path []int) *Term {
	t := root
	for _, idx := range path {
		if idx < 0 || idx >= t.Arity() {
			return nil
		}
		t = t.components[idx]
	}
	return t
}

// runProductImageTransform implements the product<->image structural
// transform: whole is the premise content, path locates an
// inheritance/similarity statement embedded in it (possibly whole itself,
// path == nil), and argIndex is the argument position to transform at.
// Truth carries through unchanged for judgments/goals; questions/quests
// get no truth (their budget comes from CompoundBackward, applied by the
// caller).
func runProductImageTransform(whole *Term, path []int, argIndex int) *Term {
	inner := termAt(whole, path)
	if inner == nil || !inner.IsStatement() {
		return nil
	}
	transformed := TransformInheritance(inner, argIndex)
	if transformed == nil {
		return nil
	}
	return substituteAt(whole, path, transformed)
}

// applyProductImageTransforms tries the product<->image rule at every
// embedded inheritance/similarity statement and every valid argument
// index, emitting one derived task per admissible result. This is the
// entry point cycle.go's structural dispatcher calls for a given task.
func (m *Memory) applyProductImageTransforms(task *Task) {
	content := task.Sentence.Content
	paths := findInheritancePaths(content, nil)
	for _, path := range paths {
		inner := termAt(content, path)
		for _, idx := range candidateIndices(inner) {
			transformed := runProductImageTransform(content, path, idx)
			if transformed == nil {
				continue
			}
			m.emitStructural(task, transformed)
		}
	}
}

// candidateIndices lists the argument positions worth trying the product
// image transform at for a given statement: the arity of whichever side is
// a product or image.
func candidateIndices(stmt *Term) []int {
	subject, predicate := stmt.Subject(), stmt.Predicate()
	var n int
	switch {
	case subject.Op() == OpProduct:
		n = subject.Arity()
	case predicate.Op() == OpProduct:
		n = predicate.Arity()
	case predicate.Op() == OpImageExt:
		n = len(predicate.components) - 1
	case subject.Op() == OpImageInt:
		n = len(subject.components) - 1
	default:
		return nil
	}
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

// findInheritancePaths collects paths (from content's root) to every
// embedded inheritance/similarity statement reachable by descending
// through statements, conjunctions, implications, and equivalences — the
// nesting contexts the product<->image transform is allowed to reach
// into. path accumulates the indices taken so far.
func findInheritancePaths(t *Term, path []int) [][]int {
	if t == nil {
		return nil
	}
	var out [][]int
	if t.IsStatement() && (t.copula == CopInheritance || t.copula == CopSimilarity) {
		out = append(out, append([]int(nil), path...))
	}
	if t.IsStatement() || (t.IsCompound() && t.op == OpConjunction) {
		for i, c := range t.components {
			out = append(out, findInheritancePaths(c, append(append([]int(nil), path...), i))...)
		}
	}
	return out
}

// emitStructural is the common emission path for structural rules whose
// truth carries through unchanged for judgments/goals and whose budget
// uses CompoundForward (judgments/goals) or CompoundBackward (questions/
// quests); most single-premise structural rules fit this shape.
func (m *Memory) emitStructural(task *Task, content *Term) (*Task, bool) {
	sentence := task.Sentence
	if sentence.Punctuation.hasTruth() {
		budget := CompoundForward(sentence.Truth, task.Budget, content)
		return m.emitSinglePremise(content, nil, sentence.Truth, budget)
	}
	budget := CompoundBackward(task.Budget, content)
	return m.emitSinglePremise(content, nil, nil, budget)
}

// emitStructuralDeduced is the emission path for structural rules whose
// judgment/goal truth is the reliance-discounted deduction of the premise
// truth, optionally negated, rather than a copy-through: Compose-2, every
// branch of the Compose-1/Decompose-1 table, and the singleton
// set-relation transform all go through here.
func (m *Memory) emitStructuralDeduced(task *Task, content *Term, negate bool) (*Task, bool) {
	sentence := task.Sentence
	if !sentence.Punctuation.hasTruth() {
		budget := CompoundBackward(task.Budget, content)
		return m.emitSinglePremise(content, nil, nil, budget)
	}
	truth := Deduction(*sentence.Truth, m.config.Reliance)
	if negate {
		truth = Negation(truth)
	}
	budget := CompoundForward(&truth, task.Budget, content)
	return m.emitSinglePremise(content, nil, &truth, budget)
}

func (p Punctuation) String() string {
	switch p {
	case Judgment:
		return "judgment"
	case Goal:
		return "goal"
	case Question:
		return "question"
	case Quest:
		return "quest"
	default:
		return "?"
	}
}
