package detect

import (
	"math"
	"strings"
)

// Composite scoring weights for holder-name candidates. Priority dominates;
// the penalties sink candidates that cannot plausibly be full names.
const (
	priorityWeight      = 90.0
	frequencyWeight     = 50.0
	patternTypeWeight   = 20.0
	allCapsBonus        = 100.0
	contextualBonus     = 50.0
	singleWordPenalty   = -5000.0
	allLowercasePenalty = -3000.0
)

// Holder-name pattern priorities. Direct labels beat contextual inference.
const (
	priorityDirect           = 100
	priorityThreeLineAddress = 90
	priorityMemberSince      = 85
	priorityAddress          = 80
	priorityNumberNextLine   = 75
	prioritySameLine         = 70
)

// nameCandidate accumulates evidence for one holder-name spelling across
// every extraction pass.
type nameCandidate struct {
	name         string
	priority     int
	frequency    int
	patternTypes map[string]bool
	allCaps      bool
	contextual   bool
	order        int
}

// candidateSet merges candidates by lowercased name, keeping the highest
// priority and the union of flags. Insertion order breaks score ties.
type candidateSet struct {
	byName map[string]*nameCandidate
}

func newCandidateSet() *candidateSet {
	return &candidateSet{byName: map[string]*nameCandidate{}}
}

func (s *candidateSet) add(name string, priority int, patternType string, allCaps, contextual bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	if c, ok := s.byName[key]; ok {
		c.frequency++
		c.patternTypes[patternType] = true
		if priority > c.priority {
			c.priority = priority
		}
		c.allCaps = c.allCaps || allCaps
		c.contextual = c.contextual || contextual
		return
	}
	s.byName[key] = &nameCandidate{
		name:         name,
		priority:     priority,
		frequency:    1,
		patternTypes: map[string]bool{patternType: true},
		allCaps:      allCaps,
		contextual:   contextual,
		order:        len(s.byName),
	}
}

func (c *nameCandidate) compositeScore() float64 {
	score := float64(c.priority)*priorityWeight +
		math.Log1p(float64(c.frequency))*frequencyWeight +
		float64(len(c.patternTypes))*patternTypeWeight
	if c.allCaps {
		score += allCapsBonus
	}
	if c.contextual {
		score += contextualBonus
	}
	if len(strings.Fields(c.name)) == 1 {
		score += singleWordPenalty
	}
	lower := strings.ToLower(c.name)
	if c.name == lower && strings.ContainsFunc(c.name, isASCIILower) {
		score += allLowercasePenalty
	}
	return score
}

func isASCIILower(r rune) bool { return r >= 'a' && r <= 'z' }

// best returns the highest-scoring candidate, resolving exact score ties by
// insertion order.
func (s *candidateSet) best() *nameCandidate {
	var best *nameCandidate
	var bestScore float64
	for _, c := range s.byName {
		score := c.compositeScore()
		if best == nil || score > bestScore || (score == bestScore && c.order < best.order) {
			best = c
			bestScore = score
		}
	}
	return best
}
