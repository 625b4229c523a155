package nal

// Memory is the process-wide reasoning state: the concepts bag, the
// novel-tasks bag, the input FIFO, the clock, the stamp serial counter, the
// registered-operator table, the per-cycle scratch slots, and the
// deterministic RNG. One Memory is owned by at most one driver at a time;
// nothing here is safe for
// concurrent use by multiple goroutines against the same instance — for
// running several independent reasoners concurrently, construct one
// Memory per goroutine (see internal/reasonerpool, which does exactly
// that).
type Memory struct {
	config Config

	concepts   *Bag[*Concept]
	novelTasks *Bag[*Task]
	inputQueue []*Task

	clock       int64
	stampSerial int64
	operators   operatorTable

	// Per-cycle scratch slots.
	currentTask     *Task
	currentBelief   *Sentence
	currentTermLink *TermLink
	currentTaskLink *TaskLink
	currentConcept  *Concept
	newStamp        *Stamp

	lastEvent *Task

	working     bool
	stepsQueued int

	rng *RNG

	recorder Recorder
	output   Output

	// TemporalInduction is an optional hook invoked by the attention loop
	// between the previous and newly identified time-bound events.
	// Temporal induction is one of the higher-level syllogistic rules left
	// out of scope for this core; a driver that wants it wires in its own
	// implementation here. The default is nil, making this step a no-op.
	TemporalInduction func(m *Memory, now int64, lastEvent, newEvent *Task) *Task
}

// NewMemory constructs a Memory with the given configuration, applying
// defaults for any zero-valued field.
func NewMemory(cfg Config) *Memory {
	cfg = cfg.applyDefaults()
	m := &Memory{
		config:    cfg,
		operators: newOperatorTable(),
		rng:       NewRNG(cfg.Seed),
		recorder:  NullRecorder{},
		output:    NullOutput{},
		working:   true,
	}
	m.concepts = NewBag[*Concept](cfg.ConceptBagCapacity, cfg.ConceptBagLevels)
	m.novelTasks = NewBag[*Task](cfg.NovelTaskBagCapacity, cfg.NovelTaskBagLevels)
	return m
}

// Config returns the engine constants this Memory was constructed with.
func (m *Memory) Config() Config { return m.config }

// Concepts and NovelTasks expose the bags for diagnostics and tests; the
// attention loop is the only code that should drive them during normal
// operation.
func (m *Memory) Concepts() *Bag[*Concept] { return m.concepts }
func (m *Memory) NovelTasks() *Bag[*Task]  { return m.novelTasks }

// --- Driver contract ---

// InputTask enqueues an externally constructed task. It is rejected
// silently (not even enqueued) if its budget is below the admission
// threshold.
func (m *Memory) InputTask(task *Task) {
	if !task.Budget.AboveThreshold(m.config.AdmissionThreshold) {
		if m.recorder.IsActive() {
			m.recorder.OnTaskRemove(task, "Neglected")
		}
		return
	}
	m.inputQueue = append(m.inputQueue, task)
}

// StepLater requests n additional cycles; advisory, read by the driver.
func (m *Memory) StepLater(n int) { m.stepsQueued += n }

// StepsQueued returns the advisory counter set by StepLater.
func (m *Memory) StepsQueued() int { return m.stepsQueued }

func (m *Memory) SetWorking(b bool) { m.working = b }
func (m *Memory) IsWorking() bool   { return m.working }

// GetTime returns the current logical clock.
func (m *Memory) GetTime() int64 { return m.clock }

// NewStampSerial returns a fresh, monotonically increasing evidence id.
func (m *Memory) NewStampSerial() int64 {
	m.stampSerial++
	return m.stampSerial
}

func (m *Memory) AddOperator(op Operator)             { m.operators.add(op) }
func (m *Memory) GetOperator(name string) (Operator, bool) { return m.operators.get(name) }
func (m *Memory) IsRegisteredOperator(name string) bool     { return m.operators.isRegistered(name) }

func (m *Memory) SetRecorder(r Recorder) {
	if r == nil {
		r = NullRecorder{}
	}
	m.recorder = r
}

func (m *Memory) SetOutput(o Output) {
	if o == nil {
		o = NullOutput{}
	}
	m.output = o
}

// Reset clears all state: bags, queues, scratch slots, and clock, and
// re-seeds the RNG. Registered operators are driver configuration, not
// reasoning state, and are left in place across a reset.
func (m *Memory) Reset() {
	m.concepts = NewBag[*Concept](m.config.ConceptBagCapacity, m.config.ConceptBagLevels)
	m.novelTasks = NewBag[*Task](m.config.NovelTaskBagCapacity, m.config.NovelTaskBagLevels)
	m.inputQueue = nil
	m.clock = 0
	m.stampSerial = 0
	m.currentTask = nil
	m.currentBelief = nil
	m.currentTermLink = nil
	m.currentTaskLink = nil
	m.currentConcept = nil
	m.newStamp = nil
	m.lastEvent = nil
	m.stepsQueued = 0
	m.rng.Reseed(m.config.Seed)
}

// conceptFor looks up the concept for a constant term, or nil.
func (m *Memory) conceptFor(term *Term) (*Concept, bool) {
	c, ok := m.concepts.Peek(term.key)
	return c, ok
}

// conceptOrCreate returns the concept for term, creating and inserting one
// (firing OnConceptNew) if none exists yet.
func (m *Memory) conceptOrCreate(term *Term) *Concept {
	if c, ok := m.conceptFor(term); ok {
		return c
	}
	budget := Budget{Priority: 0.5, Durability: 0.5, Quality: 0.5}
	c := NewConcept(term, budget, m.config.LinkBagCapacity, m.config.LinkBagLevels, m.config.MaxBeliefs, m.config.MaxQuestions, m.config.MaxGoals)
	// A concept evicted here by bag.PutIn is simply dropped: bag eviction
	// is itself the concept-pruning mechanism.
	m.concepts.PutIn(c)
	if m.recorder.IsActive() {
		m.recorder.OnConceptNew(term)
	}
	return c
}
