package nal

// Config is the value supplied at Memory construction time, gathering the
// engine constants the core depends on. Field names carry yaml tags so a
// driver can load one from a file (see pkg/nal/narconfig) without the core
// itself depending on any serialization library.
type Config struct {
	// Reliance is the fixed weight structural deduction applies to
	// confidence applies to structural derivations.
	Reliance float64 `yaml:"reliance"`

	// ConceptBagCapacity/ConceptBagLevels size the concepts bag.
	ConceptBagCapacity int `yaml:"concept_bag_capacity"`
	ConceptBagLevels   int `yaml:"concept_bag_levels"`

	// NovelTaskBagCapacity/NovelTaskBagLevels size the novel-tasks bag.
	NovelTaskBagCapacity int `yaml:"novel_task_bag_capacity"`
	NovelTaskBagLevels   int `yaml:"novel_task_bag_levels"`

	// LinkBagCapacity/LinkBagLevels size each concept's task-link and
	// term-link bags.
	LinkBagCapacity int `yaml:"link_bag_capacity"`
	LinkBagLevels   int `yaml:"link_bag_levels"`

	// MaxBeliefs/MaxQuestions/MaxGoals bound each concept's ranked lists.
	MaxBeliefs   int `yaml:"max_beliefs"`
	MaxQuestions int `yaml:"max_questions"`
	MaxGoals     int `yaml:"max_goals"`

	// ForgettingRate scales priority on bag.PutBack.
	ForgettingRate float64 `yaml:"forgetting_rate"`

	// NovelTaskCreationThreshold gates whether a non-input judgment is
	// interesting enough to enter the novel-tasks bag (
	// step 2).
	NovelTaskCreationThreshold float64 `yaml:"novel_task_creation_threshold"`

	// AdmissionThreshold gates every derived task at the first admission
	// check.
	AdmissionThreshold float64 `yaml:"admission_threshold"`

	// MaxEvidentialBase/MaxDerivationChain are the evidential-base and
	// chain-length bounds.
	MaxEvidentialBase  int `yaml:"max_evidential_base"`
	MaxDerivationChain int `yaml:"max_derivation_chain"`

	// NoiseLevel filters emitted output below this budget summary.
	NoiseLevel float64 `yaml:"noise_level"`

	// Seed is the deterministic RNG seed.
	Seed uint64 `yaml:"seed"`
}

// DefaultConfig returns the engine constants used when a driver does not
// override them; the values are the conventional NAL-engine defaults.
func DefaultConfig() Config {
	return Config{
		Reliance:                   0.9,
		ConceptBagCapacity:         1000,
		ConceptBagLevels:           100,
		NovelTaskBagCapacity:       100,
		NovelTaskBagLevels:         100,
		LinkBagCapacity:            100,
		LinkBagLevels:              100,
		MaxBeliefs:                 7,
		MaxQuestions:               5,
		MaxGoals:                   5,
		ForgettingRate:             0.9,
		NovelTaskCreationThreshold: 0.3,
		AdmissionThreshold:         0.01,
		MaxEvidentialBase:          20,
		MaxDerivationChain:         8,
		NoiseLevel:                 0.0,
		Seed:                      1,
	}
}

// applyDefaults fills any zero-valued field with DefaultConfig's value,
// so a driver loading a partial YAML file only needs to specify overrides.
func (c Config) applyDefaults() Config {
	d := DefaultConfig()
	if c.Reliance == 0 {
		c.Reliance = d.Reliance
	}
	if c.ConceptBagCapacity == 0 {
		c.ConceptBagCapacity = d.ConceptBagCapacity
	}
	if c.ConceptBagLevels == 0 {
		c.ConceptBagLevels = d.ConceptBagLevels
	}
	if c.NovelTaskBagCapacity == 0 {
		c.NovelTaskBagCapacity = d.NovelTaskBagCapacity
	}
	if c.NovelTaskBagLevels == 0 {
		c.NovelTaskBagLevels = d.NovelTaskBagLevels
	}
	if c.LinkBagCapacity == 0 {
		c.LinkBagCapacity = d.LinkBagCapacity
	}
	if c.LinkBagLevels == 0 {
		c.LinkBagLevels = d.LinkBagLevels
	}
	if c.MaxBeliefs == 0 {
		c.MaxBeliefs = d.MaxBeliefs
	}
	if c.MaxQuestions == 0 {
		c.MaxQuestions = d.MaxQuestions
	}
	if c.MaxGoals == 0 {
		c.MaxGoals = d.MaxGoals
	}
	if c.ForgettingRate == 0 {
		c.ForgettingRate = d.ForgettingRate
	}
	if c.NovelTaskCreationThreshold == 0 {
		c.NovelTaskCreationThreshold = d.NovelTaskCreationThreshold
	}
	if c.AdmissionThreshold == 0 {
		c.AdmissionThreshold = d.AdmissionThreshold
	}
	if c.MaxEvidentialBase == 0 {
		c.MaxEvidentialBase = d.MaxEvidentialBase
	}
	if c.MaxDerivationChain == 0 {
		c.MaxDerivationChain = d.MaxDerivationChain
	}
	if c.Seed == 0 {
		c.Seed = d.Seed
	}
	return c
}
