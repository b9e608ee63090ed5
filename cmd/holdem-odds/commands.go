package main

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"

	"github.com/lox/holdemeval/poker"
	"github.com/lox/holdemeval/sdk/analysis"
	"github.com/lox/holdemeval/sdk/classification"
)

// parseCards parses a card list such as "AcKd" or "Ac Kd"; empty is no cards.
func parseCards(what, s string) (poker.Mask, error) {
	m, _, err := poker.ParseHand(s, "")
	if err != nil {
		return 0, fmt.Errorf("%s: %w", what, err)
	}
	return m, nil
}

// parseSpot parses the pocket, board and dead cards shared by most commands
// and checks that no card is used twice.
func parseSpot(pocketStr, boardStr, deadStr string) (pocket, board, dead poker.Mask, err error) {
	if pocket, err = parseCards("pocket", pocketStr); err != nil {
		return 0, 0, 0, err
	}
	if err = poker.ValidatePocket(pocket); err != nil {
		return 0, 0, 0, fmt.Errorf("pocket: %w", err)
	}
	if board, err = parseCards("board", boardStr); err != nil {
		return 0, 0, 0, err
	}
	if dead, err = parseCards("dead", deadStr); err != nil {
		return 0, 0, 0, err
	}
	if err = poker.ValidateDisjoint(pocket, board, dead); err != nil {
		return 0, 0, 0, err
	}
	return pocket, board, dead, nil
}

type EvalCmd struct {
	Pocket string `arg:"" help:"Pocket cards, e.g. 'AcKd'"`
	Board  string `short:"b" help:"Community cards, e.g. 'Td7s8h'"`
}

func (c *EvalCmd) Run(app *App) error {
	pocket, board, _, err := parseSpot(c.Pocket, c.Board, "")
	if err != nil {
		return err
	}
	if err := poker.ValidateBoard(board, 0, 3, 4, 5); err != nil {
		return err
	}

	s := app.Styles
	w := newTable(app.Out)

	class, err := poker.PocketHand169Type(pocket)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%s\t%s\n", s.header.Render("pocket"), s.hand.Render(pocket.String()))
	fmt.Fprintf(w, "%s\t%s (%s)\n", s.header.Render("class"), class, poker.Categorize(class))

	value, err := poker.Evaluate(pocket | board)
	if err != nil {
		return err
	}
	if board != 0 {
		fmt.Fprintf(w, "%s\t%s\n", s.header.Render("board"), board)
		fmt.Fprintf(w, "%s\t%s\n", s.header.Render("texture"), classification.AnalyzeBoardTexture(board))
	}
	fmt.Fprintf(w, "%s\t%s\n", s.header.Render("hand"), s.win.Render(value.Describe()))
	fmt.Fprintf(w, "%s\t%#08x\n", s.header.Render("value"), uint32(value))

	if n := board.CountCards(); n == 3 || n == 4 {
		info := classification.DetectDraws(pocket, board)
		fmt.Fprintf(w, "%s\t%s\n", s.header.Render("draws"), drawNames(info.Draws))
		fmt.Fprintf(w, "%s\t%d (%d to the nuts)\n", s.header.Render("draw outs"), info.Outs, info.NutOuts)
	}
	if board.CountCards() >= 3 {
		distance, err := classification.HandDistance(pocket, board)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%d\n", s.header.Render("distance"), distance)
	}
	return w.Flush()
}

func drawNames(draws []classification.DrawType) string {
	return strings.Join(lo.Map(draws, func(d classification.DrawType, _ int) string {
		return d.String()
	}), ", ")
}

type OddsCmd struct {
	Pocket        string `arg:"" help:"Pocket cards, e.g. 'AcKd'"`
	Board         string `short:"b" help:"Community cards"`
	Dead          string `short:"d" help:"Cards known to be out of play"`
	Opponents     int    `short:"n" help:"Number of random opponents (default from config)"`
	Vs            string `help:"Exact odds against this opponent pocket"`
	Range         string `short:"r" help:"Opponents' range, e.g. 'TT+,AQs+'"`
	Exact         bool   `help:"Enumerate every opponent pocket and board (heads-up)"`
	Possibilities bool   `short:"p" help:"Show the winning hand type breakdown"`
}

func (c *OddsCmd) Run(app *App) error {
	pocket, board, dead, err := parseSpot(c.Pocket, c.Board, c.Dead)
	if err != nil {
		return err
	}

	switch {
	case c.Vs != "":
		opp, err := parseCards("vs", c.Vs)
		if err != nil {
			return err
		}
		odds, err := analysis.HandWinOddsVs(pocket, opp, board, dead)
		if err != nil {
			return err
		}
		return app.renderOdds("exact vs "+opp.String(), odds, c.Possibilities)

	case c.Exact:
		if dead != 0 {
			return errors.New("exact odds against a random hand do not take dead cards")
		}
		odds, err := analysis.HandWinOdds(pocket, board)
		if err != nil {
			return err
		}
		label := "exact heads-up"
		if board == 0 {
			label = "preflop table"
		}
		return app.renderOdds(label, odds, c.Possibilities)
	}

	n, err := app.opponents(c.Opponents)
	if err != nil {
		return err
	}

	if c.Range != "" {
		r, err := analysis.ParseRange(c.Range)
		if err != nil {
			return err
		}
		result, err := app.Estimator.EquityVsRange(pocket, board, dead, r, n, app.budget())
		if err != nil {
			return err
		}
		return app.renderEquity(fmt.Sprintf("monte carlo vs %d from %s", n, r), result)
	}

	result, err := app.Estimator.Equity(pocket, board, dead, n, app.budget())
	if err != nil {
		return err
	}
	if err := app.renderEquity(fmt.Sprintf("monte carlo vs %d random", n), result); err != nil {
		return err
	}
	if !c.Possibilities {
		return nil
	}

	fmt.Fprintln(app.Out)
	odds, err := app.Estimator.HandWinOdds(pocket, board, dead, n, app.budget())
	if err != nil {
		return err
	}
	return app.renderOdds(fmt.Sprintf("monte carlo vs %d random", n), odds, true)
}

type OutsCmd struct {
	Pocket     string   `arg:"" help:"Pocket cards, e.g. 'AcKd'"`
	Board      string   `short:"b" required:"" help:"Flop or turn"`
	Opponent   []string `short:"o" help:"Known opponent pocket (repeatable)"`
	Dead       string   `short:"d" help:"Cards known to be out of play"`
	Discounted bool     `help:"Drop outs likely to help an opponent as well"`
}

func (c *OutsCmd) Run(app *App) error {
	pocket, board, dead, err := parseSpot(c.Pocket, c.Board, c.Dead)
	if err != nil {
		return err
	}
	if n := board.CountCards(); n != 3 && n != 4 {
		return errNoBoard
	}

	opponents := make([]poker.Mask, 0, len(c.Opponent))
	for _, o := range c.Opponent {
		m, err := parseCards("opponent", o)
		if err != nil {
			return err
		}
		opponents = append(opponents, m)
	}
	if len(opponents) > 0 && dead != 0 {
		return errors.New("--dead cannot be combined with --opponent")
	}

	var outs poker.Mask
	switch {
	case c.Discounted:
		outs, err = classification.OutsMaskDiscounted(pocket, board, opponents...)
	case len(opponents) > 0:
		outs, err = classification.OutsMask(pocket, board, opponents...)
	default:
		outs, err = classification.OutsMaskEx(pocket, board, dead)
	}
	if err != nil {
		return err
	}
	app.Logger.Debug("outs computed", "pocket", pocket, "board", board, "opponents", len(opponents))

	s := app.Styles
	w := newTable(app.Out)
	fmt.Fprintf(w, "%s\t%s\n", s.header.Render("outs"), s.win.Render(fmt.Sprint(outs.CountCards())))
	if outs != 0 {
		fmt.Fprintf(w, "%s\t%s\n", s.header.Render("cards"), s.hand.Render(outs.String()))
	}
	info := classification.DetectDraws(pocket, board)
	fmt.Fprintf(w, "%s\t%s\n", s.header.Render("draws"), drawNames(info.Draws))
	return w.Flush()
}

type PotentialCmd struct {
	Pocket    string `arg:"" help:"Pocket cards, e.g. 'AcKd'"`
	Board     string `short:"b" required:"" help:"Flop or turn"`
	Opponents int    `short:"n" help:"Number of random opponents (default from config)"`
	Exact     bool   `help:"Enumerate every opponent pocket and board (heads-up only)"`
}

func (c *PotentialCmd) Run(app *App) error {
	pocket, board, _, err := parseSpot(c.Pocket, c.Board, "")
	if err != nil {
		return err
	}
	if n := board.CountCards(); n != 3 && n != 4 {
		return errNoBoard
	}

	var (
		hs, ppot, npot float64
		label          string
	)
	if c.Exact {
		if c.Opponents > 1 {
			return errors.New("exact potential is heads-up only")
		}
		label = "exact heads-up"
		if hs, err = analysis.HandStrength(pocket, board); err != nil {
			return err
		}
		if ppot, npot, err = analysis.HandPotential(pocket, board); err != nil {
			return err
		}
	} else {
		n, err := app.opponents(c.Opponents)
		if err != nil {
			return err
		}
		label = fmt.Sprintf("monte carlo vs %d random", n)
		if hs, err = app.Estimator.HandStrength(pocket, board, n, app.budget()); err != nil {
			return err
		}
		if ppot, npot, err = app.Estimator.HandPotential(pocket, board, n, app.budget()); err != nil {
			return err
		}
	}

	s := app.Styles
	w := newTable(app.Out)
	fmt.Fprintf(w, "%s\t%s\n", s.header.Render("mode"), label)
	fmt.Fprintf(w, "%s\t%s\n", s.header.Render("strength"), s.win.Render(pct(hs)))
	fmt.Fprintf(w, "%s\t%s\n", s.header.Render("ppot"), s.win.Render(pct(ppot)))
	fmt.Fprintf(w, "%s\t%s\n", s.header.Render("npot"), s.percent.Render(pct(npot)))
	fmt.Fprintf(w, "%s\t%s\n", s.header.Render("effective"), s.hand.Render(pct(effectiveStrength(hs, ppot, npot))))
	return w.Flush()
}

// effectiveStrength is the chance of being ahead at the river: currently
// ahead and not outdrawn, or behind and drawing out.
func effectiveStrength(hs, ppot, npot float64) float64 {
	return hs*(1-npot) + (1-hs)*ppot
}

type PreflopCmd struct {
	Hands []string `arg:"" optional:"" help:"Starting hands such as AKs, QQ, 72o or AsKd; all 169 when omitted"`
	Top   int      `help:"Only show the strongest N"`
}

func (c *PreflopCmd) Run(app *App) error {
	var classes []poker.PocketHand169
	for _, h := range c.Hands {
		class, err := parseClass(h)
		if err != nil {
			return err
		}
		classes = append(classes, class)
	}
	if len(classes) == 0 {
		for i := range poker.NumPocketHands169 {
			classes = append(classes, poker.PocketHand169(i))
		}
	}
	classes = lo.Uniq(classes)

	slices.SortStableFunc(classes, func(a, b poker.PocketHand169) int {
		ea, eb := analysis.PreflopEquity(a), analysis.PreflopEquity(b)
		switch {
		case ea > eb:
			return -1
		case ea < eb:
			return 1
		}
		return 0
	})
	if c.Top > 0 && c.Top < len(classes) {
		classes = classes[:c.Top]
	}

	s := app.Styles
	w := newTable(app.Out)
	fmt.Fprintf(w, "%s\t%s\t%s\n", s.header.Render("hand"), s.header.Render("equity"), s.header.Render("category"))
	for _, class := range classes {
		fmt.Fprintf(w, "%s\t%s\t%s\n",
			s.hand.Render(class.String()),
			s.win.Render(pct(analysis.PreflopEquity(class))),
			s.category.Render(string(poker.Categorize(class))))
	}
	return w.Flush()
}

// parseClass accepts class notation ("AKs") or two concrete cards ("AsKd").
func parseClass(s string) (poker.PocketHand169, error) {
	if class, err := poker.ParsePocketHand169(s); err == nil {
		return class, nil
	}
	pocket, err := parseCards("hand", s)
	if err != nil {
		return 0, err
	}
	return poker.PocketHand169Type(pocket)
}
