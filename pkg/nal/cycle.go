package nal

// Cycle runs one attention-loop iteration. It is a no-op when the memory
// is not working. Nothing here blocks or suspends — a cycle always
// returns having done a bounded, deterministic amount of work.
func (m *Memory) Cycle() {
	if !m.working {
		return
	}
	m.recorder.OnCycleStart(m.clock)

	produced, newEvent := m.processNewTasks()

	if !produced {
		if task, ok := m.novelTasks.TakeOut(m.rng); ok {
			m.immediateProcess(task)
			produced = true
		}
	}
	if !produced {
		m.processConcept()
	}

	m.runTemporalInduction(newEvent)

	if m.stepsQueued > 0 {
		m.stepsQueued--
	}
	m.clock++
	m.recorder.OnCycleEnd(m.clock)
}

// processNewTasks implements step 2: snapshot-and-drain the new-task FIFO
// exactly once, so tasks enqueued mid-drain wait for the next cycle. It
// returns whether any drained task was immediately processed, and the
// best-ranked time-bound judgment seen in the drain (the new event used
// by temporal induction below), if any.
func (m *Memory) processNewTasks() (produced bool, newEvent *Task) {
	n := len(m.inputQueue)
	drained := m.inputQueue[:n:n]
	m.inputQueue = m.inputQueue[n:]

	for _, task := range drained {
		_, exists := m.conceptFor(task.Sentence.Content)
		switch {
		case task.IsInput() || exists:
			m.immediateProcess(task)
			produced = true
			if isTimeBoundJudgment(task) {
				if newEvent == nil || task.Sentence.Truth.Expectation() > newEvent.Sentence.Truth.Expectation() {
					newEvent = task
				}
			}
		case task.Sentence.IsJudgment() && task.Sentence.Truth.Expectation() > m.config.NovelTaskCreationThreshold:
			m.novelTasks.PutIn(task)
		default:
			m.reject(task, "Neglected")
		}
	}
	return produced, newEvent
}

// isTimeBoundJudgment reports whether a task's sentence is a judgment
// whose occurrence time is not eternal — a "new event" candidate for
// temporal induction.
func isTimeBoundJudgment(t *Task) bool {
	return t.Sentence.IsJudgment() && t.Sentence.Stamp.OccurrenceTime() != Eternal
}

// runTemporalInduction builds a merged stamp from the previous and newly
// identified time-bound events and gates the pluggable hook on it not
// being absent (construction failure from overlapping evidence). Temporal
// induction itself is a higher-level syllogistic rule out of this core's
// scope; a driver wires its own implementation into the TemporalInduction
// hook.
func (m *Memory) runTemporalInduction(newEvent *Task) {
	if newEvent == nil {
		return
	}
	defer func() { m.lastEvent = newEvent }()
	if m.lastEvent == nil || m.TemporalInduction == nil {
		return
	}
	stamp := MergeStamps(m.lastEvent.Sentence.Stamp, newEvent.Sentence.Stamp, m.clock, m.config.MaxEvidentialBase, m.config.MaxDerivationChain)
	if stamp == nil {
		return
	}
	m.currentBelief = m.lastEvent.Sentence
	derived := m.TemporalInduction(m, m.clock, m.lastEvent, newEvent)
	if derived != nil {
		m.admit(derived, false)
	}
}

// immediateProcess implements the direct-processing routine: set current
// task and term, look up or create the concept for
// the task's content, activate it (pickOut → budget update → putBack),
// and invoke direct processing.
func (m *Memory) immediateProcess(task *Task) {
	m.currentTask = task
	concept := m.activateConcept(task.Sentence.Content, task.Budget)
	m.currentConcept = concept
	m.directProcess(task, concept)
}

// activateConcept returns the concept for term (creating it if needed),
// having folded budget into its own via pickOut → budget update → putBack
// (the "activation" step).
func (m *Memory) activateConcept(term *Term, budget Budget) *Concept {
	concept := m.conceptOrCreate(term)
	if picked, ok := m.concepts.PickOut(concept.Key()); ok {
		concept = picked
	}
	concept.SetBudget(mergeBudget(concept.GetBudget(), budget))
	m.concepts.PutBack(concept, m.config.ForgettingRate)
	return concept
}

// directProcess indexes task into concept (belief/question/goal store),
// links it in, and runs every structural rule against it.
func (m *Memory) directProcess(task *Task, concept *Concept) {
	sentence := task.Sentence
	switch sentence.Punctuation {
	case Judgment:
		concept.AddBelief(sentence)
	case Question:
		concept.AddQuestion(task)
		if best := concept.BestBelief(); best != nil {
			task.SetBestSolution(best)
		}
	case Goal:
		concept.AddGoal(task)
	case Quest:
		// No belief-store analog for a quest; structural rules below are
		// the only processing it gets.
	}
	m.linkTask(task, concept)
	m.currentBelief = concept.BestBelief()
	m.applyStructuralRules(task)
}

// linkTask creates a task-link for task and a term-link for each of its
// content's direct components, all seeded from task's own budget.
func (m *Memory) linkTask(task *Task, concept *Concept) {
	concept.TaskLinks().PutIn(NewTaskLink(task, task.Budget))
	for _, sub := range task.Sentence.Content.Components() {
		concept.TermLinks().PutIn(NewTermLink(sub, task.Budget))
	}
}

// processConcept takes out a concept by
// the bag's priority-weighted policy, fire it, then putBack (decaying its
// priority) regardless of what firing produced.
func (m *Memory) processConcept() {
	concept, ok := m.concepts.TakeOut(m.rng)
	if !ok {
		return
	}
	m.currentConcept = concept
	m.fireConcept(concept)
	m.concepts.PutBack(concept, m.config.ForgettingRate)
}

// fireConcept selects one of the concept's own task-links and (if any)
// term-links, reinstates the corresponding scratch slots, and re-runs the
// structural rules against the linked task — giving existing tasks
// further chances at derivation beyond their original immediateProcess
// call.
func (m *Memory) fireConcept(concept *Concept) {
	taskLink, ok := concept.TaskLinks().TakeOut(m.rng)
	if !ok {
		return
	}
	defer concept.TaskLinks().PutBack(taskLink, m.config.ForgettingRate)

	task := taskLink.Task()
	m.currentTask = task
	m.currentTaskLink = taskLink

	if termLink, ok := concept.TermLinks().TakeOut(m.rng); ok {
		m.currentTermLink = termLink
		concept.TermLinks().PutBack(termLink, m.config.ForgettingRate)
	} else {
		m.currentTermLink = nil
	}

	m.currentBelief = concept.BestBelief()
	m.applyStructuralRules(task)
}

// applyStructuralRules is the single dispatch point cycle.go uses to run
// every structural rule against task. Each rule
// function independently checks whether task's content has the shape it
// applies to and is a no-op otherwise, so trying all of them unconditionally
// is always safe.
func (m *Memory) applyStructuralRules(task *Task) {
	m.applyProductImageTransforms(task)
	m.applyStructuralCompound(task)
	m.applySetRelationTransform(task)
	m.applyNegation(task)
	m.applyContraposition(task)
	m.applyComposeDecompose(task)
}

// applyComposeDecompose wires Compose-2/Decompose-2 and the Compose-1/
// Decompose-1 table into the dispatcher. Compose-2 needs a companion term,
// supplied by the current term-link: the rule fires against whatever
// term the firing concept linked to. Compose-2's judgment/goal truth is
// the reliance-discounted deduction of the premise truth (negated for the
// minuend-side difference case); Decompose-2 copies the premise truth
// through unchanged.
func (m *Memory) applyComposeDecompose(task *Task) {
	content := task.Sentence.Content
	if !content.IsStatement() {
		return
	}

	if m.currentTermLink != nil {
		other := m.currentTermLink.Term()
		for _, op := range composeOps {
			if derived := ComposeTwo(content, op, other); derived != nil {
				m.emitStructuralDeduced(task, derived, false)
			}
			if op == OpDifferenceExt || op == OpDifferenceInt {
				if derived := composeDifferenceMinuend(content, op, other); derived != nil {
					m.emitStructuralDeduced(task, derived, true)
				}
			}
		}
	}
	if derived := DecomposeTwo(content); derived != nil {
		m.emitStructural(task, derived)
	}
	m.applyDecompose1(task)
}

var composeOps = []CompoundOp{OpIntersectionExt, OpIntersectionInt, OpDifferenceExt, OpDifferenceInt, OpProduct}

// applyDecompose1 tries every member of whichever side (subject or
// predicate) is a compound against the Compose-1/Decompose-1 table in
// structural_compose.go, applying the table's switch/negate instructions
// before emitting. Judgment/goal truth is always the reliance-discounted
// deduction of the premise truth, negated where the table calls for it.
func (m *Memory) applyDecompose1(task *Task) {
	content := task.Sentence.Content
	if !content.IsStatement() {
		return
	}
	for _, onPredicate := range [2]bool{true, false} {
		compound := content.Predicate()
		if !onPredicate {
			compound = content.Subject()
		}
		if compound == nil || !compound.IsCompound() {
			continue
		}
		for i := 0; i < compound.Arity(); i++ {
			result, ok := structuralDecompose1(content, onPredicate, i)
			if !ok {
				continue
			}
			derived := applySwitch(result)
			if derived == nil {
				continue
			}
			m.emitStructuralDeduced(task, derived, result.negate)
		}
	}
}
