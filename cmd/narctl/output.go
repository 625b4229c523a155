package main

import (
	"fmt"
	"io"

	"github.com/gitrdm/nal-go/pkg/nal"
)

// writerOutput implements nal.Output by printing one line per emitted
// task to w; it's the CLI's stand-in for a real Narsese printer (out of
// scope for the core).
type writerOutput struct {
	w io.Writer
}

func (o writerOutput) Emit(task *nal.Task) {
	content := task.Sentence.Content.String()
	if t := task.Sentence.Truth; t != nil {
		fmt.Fprintf(o.w, "%s %s %%%.2f;%.2f%%\n", content, puncToken(task.Sentence.Punctuation), t.Frequency, t.Confidence)
		return
	}
	fmt.Fprintf(o.w, "%s %s\n", content, puncToken(task.Sentence.Punctuation))
}

func puncToken(p nal.Punctuation) string {
	switch p {
	case nal.Judgment:
		return "."
	case nal.Goal:
		return "!"
	case nal.Question:
		return "?"
	case nal.Quest:
		return "@"
	default:
		return "?"
	}
}
