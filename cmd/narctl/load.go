package main

import (
	"os"

	"github.com/gitrdm/nal-go/internal/fixture"
	"github.com/gitrdm/nal-go/pkg/nal"
)

// defaultInputBudget is the budget narctl assigns to every task it loads
// from a fixture file; a real driver would let the caller tune this per
// sentence, but the fixture format (internal/fixture) carries no budget
// column of its own.
var defaultInputBudget = nal.Budget{Priority: 0.8, Durability: 0.8, Quality: 0.8}

// loadFixtures reads path and feeds every sentence into m as an input
// task.
func loadFixtures(m *nal.Memory, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	sentences, err := fixture.ReadAll(f)
	if err != nil {
		return 0, err
	}
	for _, s := range sentences {
		stamp := nal.NewInputStamp(m.NewStampSerial(), m.GetTime(), nal.Eternal)
		sentence := nal.NewSentence(s.Content, s.Punctuation, s.Truth, stamp)
		if sentence == nil {
			continue
		}
		m.InputTask(nal.NewInputTask(sentence, defaultInputBudget))
	}
	return len(sentences), nil
}
