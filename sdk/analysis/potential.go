package analysis

import (
	"time"

	"github.com/lox/holdemeval/poker"
)

const (
	ahead = iota
	tied
	behind
)

// potential counts how showdowns move between ahead, tied and behind from
// the current board to the river.
type potential struct {
	hp    [3][3]float64
	total [3]float64
}

func (p *potential) add(before, after int) {
	p.hp[before][after]++
	p.total[before]++
}

// result returns the positive and negative potential. Ties count half on
// both sides; an empty denominator gives zero.
func (p *potential) result() (ppot, npot float64) {
	if d := p.total[behind] + p.total[tied]/2; d > 0 {
		ppot = (p.hp[behind][ahead] + p.hp[behind][tied]/2 + p.hp[tied][ahead]/2) / d
	}
	if d := p.total[ahead] + p.total[tied]/2; d > 0 {
		npot = (p.hp[ahead][behind] + p.hp[ahead][tied]/2 + p.hp[tied][behind]/2) / d
	}
	return ppot, npot
}

func compare(ours, theirs poker.HandValue) int {
	switch {
	case ours > theirs:
		return ahead
	case ours == theirs:
		return tied
	}
	return behind
}

// standing maps an outcome score from outcome to ahead, tied or behind.
func standing(score float64) int {
	switch score {
	case 1:
		return ahead
	case 0.5:
		return tied
	}
	return behind
}

// HandPotential returns the chance of moving from behind to ahead (ppot) and
// from ahead to behind (npot) by the river against one opponent, enumerating
// every opponent pocket and every board completion. The board must be a flop
// or a turn.
func HandPotential(pocket, board poker.Mask) (ppot, npot float64, err error) {
	if err := validateHand(pocket, board, 0, 3, 4); err != nil {
		return 0, 0, err
	}

	opponents, err := poker.Hands(0, pocket|board, 2)
	if err != nil {
		return 0, 0, err
	}

	ours := poker.EvaluateUnchecked(pocket | board)
	var p potential
	for opp := range opponents {
		before := compare(ours, poker.EvaluateUnchecked(opp|board))
		boards, err := poker.Hands(board, pocket|opp, 5)
		if err != nil {
			return 0, 0, err
		}
		for b := range boards {
			p.add(before, compare(poker.EvaluateUnchecked(pocket|b), poker.EvaluateUnchecked(opp|b)))
		}
	}

	ppot, npot = p.result()
	return ppot, npot, nil
}

// HandPotential estimates ppot and npot against numOpponents random pockets.
// The player counts as ahead only when strictly ahead of every opponent and
// as tied when level with the best of them.
func (e *Estimator) HandPotential(pocket, board poker.Mask, numOpponents int, d time.Duration) (ppot, npot float64, err error) {
	if err := validateHand(pocket, board, 0, 3, 4); err != nil {
		return 0, 0, err
	}
	if err := validateOpponents(pocket|board, 5-board.CountCards(), numOpponents); err != nil {
		return 0, 0, err
	}

	trials, err := e.trials(board, pocket, 5, d)
	if err != nil {
		return 0, 0, err
	}

	start := e.clock.Now()
	ours := poker.EvaluateUnchecked(pocket | board)
	opps := make([]poker.Mask, numOpponents)

	var p potential
	count := 0
	for b := range trials {
		e.opponents(pocket|b, opps)
		before := standing(outcome(ours, board, opps))
		after := standing(outcome(poker.EvaluateUnchecked(pocket|b), b, opps))
		p.add(before, after)
		count++
	}
	e.logRun("HandPotential", count, start)

	ppot, npot = p.result()
	return ppot, npot, nil
}
