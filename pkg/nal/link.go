package nal

// TaskLink connects a Concept to one of the Tasks relevant to it, carrying
// its own budget independent of the Task's own (a task can be linked from
// several concepts at different priorities). TermLink connects a Concept
// to a structurally related Term (a component, or a compound it appears
// in), likewise budgeted independently.
//
// Both are thin budgeted wrappers so the priority bag (bag.go) can hold
// them uniformly via the BagItem contract.
type TaskLink struct {
	task   *Task
	budget Budget
}

func NewTaskLink(task *Task, budget Budget) *TaskLink {
	return &TaskLink{task: task, budget: budget}
}

func (l *TaskLink) Task() *Task      { return l.task }
func (l *TaskLink) GetBudget() Budget { return l.budget }
func (l *TaskLink) SetBudget(b Budget) { l.budget = b }
func (l *TaskLink) Key() string      { return "task:" + l.task.Key() }

type TermLink struct {
	term   *Term
	budget Budget
}

func NewTermLink(term *Term, budget Budget) *TermLink {
	return &TermLink{term: term, budget: budget}
}

func (l *TermLink) Term() *Term       { return l.term }
func (l *TermLink) GetBudget() Budget  { return l.budget }
func (l *TermLink) SetBudget(b Budget) { l.budget = b }
func (l *TermLink) Key() string       { return "term:" + l.term.key }
