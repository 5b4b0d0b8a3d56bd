// Package resolver maps a normalized title fragment onto a concrete task
// from a candidate snapshot. Matching is tiered: exact equality, then
// substring containment in either direction, then word overlap. The first
// tier with a hit wins, and within a tier the first candidate in store
// order is chosen.
package resolver

import (
	"strings"

	"todo-chat-api/internal/model"
)

// overlapThresholdNum/Den encode the word-overlap acceptance ratio: at least
// ceil(1/2) of the fragment's words must overlap a title word.
const (
	overlapThresholdNum = 1
	overlapThresholdDen = 2
)

// minFragmentLen is the shortest fragment worth matching at all.
const minFragmentLen = 2

// Resolve finds the task best matching the fragment. The boolean is false
// when the fragment is absent, too short, or no tier produces a match; the
// caller is expected to report the miss and list the candidates instead of
// guessing.
func Resolve(fragment string, candidates []model.Task) (model.Task, bool) {
	fragment = strings.ToLower(strings.TrimSpace(fragment))
	if len(fragment) < minFragmentLen {
		return model.Task{}, false
	}

	// Tier 1: exact match.
	for _, t := range candidates {
		if strings.ToLower(strings.TrimSpace(t.Title)) == fragment {
			return t, true
		}
	}

	// Tier 2: substring match, either direction.
	for _, t := range candidates {
		title := strings.ToLower(t.Title)
		if strings.Contains(title, fragment) || strings.Contains(fragment, title) {
			return t, true
		}
	}

	// Tier 3: word overlap.
	words := fragmentWords(fragment)
	if len(words) == 0 {
		return model.Task{}, false
	}
	need := ceilDiv(len(words)*overlapThresholdNum, overlapThresholdDen)
	for _, t := range candidates {
		if overlapCount(words, strings.Fields(strings.ToLower(t.Title))) >= need {
			return t, true
		}
	}

	return model.Task{}, false
}

// fragmentWords splits the fragment, keeping only words longer than one
// character.
func fragmentWords(fragment string) []string {
	all := strings.Fields(fragment)
	words := make([]string, 0, len(all))
	for _, w := range all {
		if len(w) > 1 {
			words = append(words, w)
		}
	}
	return words
}

// overlapCount reports how many fragment words overlap some title word,
// where overlap means either contains the other.
func overlapCount(fragmentWords, titleWords []string) int {
	count := 0
	for _, fw := range fragmentWords {
		for _, tw := range titleWords {
			if strings.Contains(tw, fw) || strings.Contains(fw, tw) {
				count++
				break
			}
		}
	}
	return count
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
