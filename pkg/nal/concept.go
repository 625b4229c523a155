package nal

// Concept is the persistent indexing unit keyed by a constant term. It
// owns a task-link bag and a term-link bag, and holds bounded, ranked
// lists of beliefs, open questions, and open goals.
type Concept struct {
	term   *Term
	budget Budget

	taskLinks *Bag[*TaskLink]
	termLinks *Bag[*TermLink]

	beliefs   []*Sentence
	questions []*Task
	goals     []*Task

	maxBeliefs, maxQuestions, maxGoals int
}

// NewConcept creates a concept for term with empty link bags and belief/
// question/goal lists bounded by the given sizes.
func NewConcept(term *Term, budget Budget, linkBagCapacity, linkBagLevels, maxBeliefs, maxQuestions, maxGoals int) *Concept {
	return &Concept{
		term:         term,
		budget:       budget,
		taskLinks:    NewBag[*TaskLink](linkBagCapacity, linkBagLevels),
		termLinks:    NewBag[*TermLink](linkBagCapacity, linkBagLevels),
		maxBeliefs:   maxBeliefs,
		maxQuestions: maxQuestions,
		maxGoals:     maxGoals,
	}
}

func (c *Concept) Term() *Term { return c.term }

// BagItem contract, so Concept can sit in the memory-wide concepts bag.
func (c *Concept) Key() string          { return c.term.key }
func (c *Concept) GetBudget() Budget    { return c.budget }
func (c *Concept) SetBudget(b Budget)   { c.budget = b }

func (c *Concept) TaskLinks() *Bag[*TaskLink] { return c.taskLinks }
func (c *Concept) TermLinks() *Bag[*TermLink] { return c.termLinks }

// Beliefs returns the concept's ranked belief list; callers must not
// mutate it.
func (c *Concept) Beliefs() []*Sentence { return c.beliefs }

// AddBelief inserts a judgment into the ranked belief list (ranked by
// truth expectation, highest first), then truncates to maxBeliefs —
// weakest-evidence beliefs are the ones dropped under pressure, matching
// AIKR's "most valuable work" principle applied to storage, not just CPU.
func (c *Concept) AddBelief(s *Sentence) {
	if s == nil || !s.IsJudgment() {
		return
	}
	c.beliefs = insertRanked(c.beliefs, s)
	if len(c.beliefs) > c.maxBeliefs {
		c.beliefs = c.beliefs[:c.maxBeliefs]
	}
}

func insertRanked(list []*Sentence, s *Sentence) []*Sentence {
	i := 0
	for i < len(list) && list[i].Truth.Expectation() >= s.Truth.Expectation() {
		i++
	}
	list = append(list, nil)
	copy(list[i+1:], list[i:])
	list[i] = s
	return list
}

// Questions/Goals return the bounded open lists of question/goal tasks
// still awaiting an answer.
func (c *Concept) Questions() []*Task { return c.questions }
func (c *Concept) Goals() []*Task     { return c.goals }

// AddQuestion appends a question task, evicting the oldest if at capacity.
func (c *Concept) AddQuestion(t *Task) {
	c.questions = append(c.questions, t)
	if len(c.questions) > c.maxQuestions {
		c.questions = c.questions[len(c.questions)-c.maxQuestions:]
	}
}

// AddGoal appends a goal task, evicting the oldest if at capacity.
func (c *Concept) AddGoal(t *Task) {
	c.goals = append(c.goals, t)
	if len(c.goals) > c.maxGoals {
		c.goals = c.goals[len(c.goals)-c.maxGoals:]
	}
}

// BestBelief returns the highest-expectation belief, or nil.
func (c *Concept) BestBelief() *Sentence {
	if len(c.beliefs) == 0 {
		return nil
	}
	return c.beliefs[0]
}
