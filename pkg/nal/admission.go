package nal

// admit is the derivation admission gate: the only
// place any derived task is let into the new-task FIFO. singlePremise
// distinguishes a structural-rule derivation (current task only) from a
// double-premise one (current task plus current belief, e.g. a merged-
// stamp derivation produced by an external syllogistic rule that calls
// back into this gate).
//
// Every rejection is silent and terminal: nothing is retried, nothing
// propagates to the driver.
func (m *Memory) admit(task *Task, singlePremise bool) (*Task, bool) {
	// 1. Budget threshold.
	if !task.Budget.AboveThreshold(m.config.AdmissionThreshold) {
		m.reject(task, "Ignored")
		return nil, false
	}

	// 2. Zero-confidence.
	if task.Sentence.Truth != nil && task.Sentence.Truth.Confidence == 0 {
		m.reject(task, "Ignored")
		return nil, false
	}

	// 3. Chain update.
	chain := task.Sentence.Stamp
	if m.currentBelief != nil && m.currentBelief.IsJudgment() {
		chain = chain.AddToChain(m.currentBelief.Content, m.config.MaxDerivationChain)
	}
	if singlePremise {
		if m.currentTask != nil && m.currentTask.Sentence.IsJudgment() {
			chain = chain.AddToChain(m.currentTask.Sentence.Content, m.config.MaxDerivationChain)
		}
	} else if m.currentTask != nil {
		chain = chain.AddToChain(m.currentTask.Sentence.Content, m.config.MaxDerivationChain)
	}
	task.Sentence = task.Sentence.withStamp(chain)

	// 4. Cycle check (non-revision structural derivations).
	if singlePremise && task.Sentence.IsJudgment() {
		for _, c := range chain.Chain() {
			if !c.Equal(task.Sentence.Content) {
				continue
			}
			if m.parentEscapesCycleCheck(task) {
				continue
			}
			m.reject(task, "Cyclic Reasoning")
			return nil, false
		}
	}

	// 5. Evidence-overlap check (double-premise/revision only).
	if !singlePremise && chain.HasOverlap() {
		m.reject(task, "Overlapping Evidence")
		return nil, false
	}

	// 6. Emit.
	if task.Budget.Summary() > m.config.NoiseLevel {
		m.output.Emit(task)
	}
	if m.recorder.IsActive() {
		m.recorder.OnTaskAdd(task, "Derived")
	}
	m.inputQueue = append(m.inputQueue, task)
	return task, true
}

// parentEscapesCycleCheck implements an exemption to the cycle check
// above: a content reappearing in the chain is not cyclic if the task's parent
// content is the literal negation of the new content, or its double-
// negation partner (since negation/double-negation are expected to
// revisit related content without being a reasoning loop).
func (m *Memory) parentEscapesCycleCheck(task *Task) bool {
	parent := task.Parent()
	if parent == nil {
		return false
	}
	parentContent := parent.Sentence.Content
	newContent := task.Sentence.Content

	negated := Compound(OpNegation, newContent)
	if negated != nil && parentContent.Equal(negated) {
		return true
	}
	doubleNegated := Compound(OpNegation, negated)
	if doubleNegated != nil && parentContent.Equal(doubleNegated) {
		return true
	}
	return false
}

func (m *Memory) reject(task *Task, reason string) {
	if m.recorder.IsActive() {
		m.recorder.OnTaskRemove(task, reason)
	}
}

// withStamp rebuilds a sentence with a different stamp (same content,
// punctuation, and truth) — used internally by admit to install the
// chain-updated stamp without mutating the caller's original sentence.
func (s *Sentence) withStamp(stamp *Stamp) *Sentence {
	return &Sentence{Content: s.Content, Punctuation: s.Punctuation, Truth: s.Truth, Stamp: stamp}
}

// emitSinglePremise is the structural rules' only path back into the
// admission gate. content is
// the derived term; punctuation, when nil, inherits from the current
// task's sentence (contraposition and a few other rules pass an explicit
// override). truth may be nil for question/quest conclusions.
//
// Returns false without enqueueing anything if:
//   - there is no current task (nothing to derive from),
//   - content equals the grandparent task's content (circular single-
//     premise structural inference — an extra guard beyond admit's own
//     cycle check), or
//   - admission rejects it (budget threshold, zero confidence, cyclic
//     reasoning, or overlapping evidence).
func (m *Memory) emitSinglePremise(content *Term, punctuation *Punctuation, truth *TruthValue, budget Budget) (*Task, bool) {
	if m.currentTask == nil || content == nil {
		return nil, false
	}
	// The derived task's parent is the current task, so its grandparent is
	// the current task's parent.
	if gp := m.currentTask.Parent(); gp != nil && gp.Sentence.Content.Equal(content) {
		return nil, false
	}

	punct := m.currentTask.Sentence.Punctuation
	if punctuation != nil {
		punct = *punctuation
	}

	stampSource := m.currentTask.Sentence.Stamp
	if !m.currentTask.Sentence.IsJudgment() && m.currentBelief != nil {
		stampSource = m.currentBelief.Stamp
	}
	stamp := stampSource.DeriveSinglePremise(m.clock)

	sentence := NewSentence(content, punct, truth, stamp)
	if sentence == nil {
		return nil, false
	}

	derived := NewDerivedTask(sentence, budget, m.currentTask, m.currentBelief)
	return m.admit(derived, true)
}
