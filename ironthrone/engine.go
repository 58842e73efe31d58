// Package ironthrone wires the tokeniser, pretenders, constraints, and
// solver into a single entry point: a batch, single-shot function
// mapping an utterance to the Claims that best explain it, with a
// combined confidence score.
package ironthrone

import (
	"sync"

	"github.com/lightninglabs/ironthrone/claim"
	"github.com/lightninglabs/ironthrone/constraints"
	"github.com/lightninglabs/ironthrone/pretenders"
	"github.com/lightninglabs/ironthrone/solver"
	"github.com/lightninglabs/ironthrone/words"
)

// Engine ties together the Pretenders that populate Claims/Proofs and
// the Constraints that score candidate assignments. It is safe for
// concurrent use: GetEntities only reads Engine's fields, and each call
// builds its own Words, Claims, and Proofs. The Pretenders
// list may be swapped at runtime via ReplacePretenders, e.g. when
// catalogio.Watcher picks up a catalog edit; a mutex guards that one
// mutable field since nothing else about an Engine ever changes after
// construction.
type Engine struct {
	mu         sync.RWMutex
	pretenders []pretenders.Pretender

	constraints []constraints.Constraint
	steps       int
	rng         solver.RNG
}

// Option configures an Engine at construction.
type Option func(*Engine)

// WithSteps overrides the solver's annealing step count.
func WithSteps(steps int) Option {
	return func(e *Engine) { e.steps = steps }
}

// WithRNG overrides the solver's source of randomness; intended for
// tests that need deterministic runs.
func WithRNG(rng solver.RNG) Option {
	return func(e *Engine) { e.rng = rng }
}

// New builds an Engine from the given Pretenders and Constraints, in
// the order they should run / contribute energy.
func New(ps []pretenders.Pretender, cs []constraints.Constraint, opts ...Option) *Engine {
	e := &Engine{
		pretenders:  ps,
		constraints: cs,
		steps:       solver.DefaultSteps,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// ReplacePretenders atomically swaps the Engine's Pretender list,
// leaving its Constraints, Steps, and RNG untouched. Safe to call
// concurrently with GetEntities.
func (e *Engine) ReplacePretenders(ps []pretenders.Pretender) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.pretenders = ps
}

// GetEntities runs the full pipeline over text: tokenise, let every
// Pretender attach Proofs, run each Constraint's Cleanup, anneal to a
// low-energy Assignment, and assemble the result.
func (e *Engine) GetEntities(text string) ([]*claim.Claim, float64) {
	tokens := words.Tokenize(text)
	ws := claim.NewWords(tokens)

	e.mu.RLock()
	ps := e.pretenders
	e.mu.RUnlock()

	for _, p := range ps {
		p.Claim(ws)
	}

	for _, c := range e.constraints {
		c.Cleanup(ws)
	}

	sv := &solver.Solver{
		Words:       ws,
		Constraints: e.constraints,
		Steps:       e.steps,
		RNG:         e.rng,
	}
	if sv.RNG == nil {
		sv.RNG = solver.NewCSPRNG()
	}

	assignment := sv.Run()

	return assignment.Claims(), combinedScore(e.constraints, assignment)
}

// combinedScore is the minimum Score reported by any constraint over
// the final assignment, or 0 if there are no constraints.
func combinedScore(cs []constraints.Constraint, assignment claim.Assignment) float64 {
	if len(cs) == 0 {
		return 0
	}

	min := cs[0].Score(assignment)
	checkScoreConsistency(cs[0], assignment, min)

	for _, c := range cs[1:] {
		s := c.Score(assignment)
		checkScoreConsistency(c, assignment, s)

		if s < min {
			min = s
		}
	}

	return min
}

// checkScoreConsistency only recomputes Energy (otherwise unneeded here)
// when constraints.Debug is enabled, so the consistency check costs
// nothing in production.
func checkScoreConsistency(c constraints.Constraint, assignment claim.Assignment, score float64) {
	if !constraints.Debug {
		return
	}

	constraints.CheckScore(c, c.Energy(assignment), score)
}
