package domain

import (
	"fmt"
	"sort"
)

// ValidMode reports whether m is a known scoring mode.
func ValidMode(m Mode) bool {
	switch m {
	case ModeSimplified, ModeAudace, ModeSecurite:
		return true
	}
	return false
}

// Outcome is the score of one player for one round.
type Outcome struct {
	Points      int    `json:"points"`
	Success     bool   `json:"success"`
	Description string `json:"description"`
}

// ScoringResult is an Outcome tied to a player.
type ScoringResult struct {
	PlayerID  string `json:"playerId"`
	Bet       int    `json:"bet"`
	TricksWon int    `json:"tricksWon"`
	Outcome
}

// Score converts a bet and the tricks actually won into points for the given mode.
func Score(bet, tricksWon int, mode Mode) Outcome {
	diff := bet - tricksWon
	if diff < 0 {
		diff = -diff
	}
	success := diff == 0

	switch mode {
	case ModeSimplified, ModeSecurite:
		if success {
			return Outcome{Points: 1, Success: true, Description: fmt.Sprintf("bet made: %d tricks", bet)}
		}
	case ModeAudace:
		if success {
			points := 1 + bet
			if bet >= 10 {
				points *= 2
				return Outcome{Points: points, Success: true, Description: fmt.Sprintf("bet made (x2): %d tricks = %d points", bet, points)}
			}
			return Outcome{Points: points, Success: true, Description: fmt.Sprintf("bet made: %d tricks + 1 = %d points", bet, points)}
		}
	default:
		return Outcome{Description: "invalid mode"}
	}

	side := "short"
	if tricksWon > bet {
		side = "over"
	}
	return Outcome{
		Points:      -diff,
		Description: fmt.Sprintf("bet missed: %d bet, %d won (%d %s)", bet, tricksWon, diff, side),
	}
}

// RoundScores scores every player of a round. Players without a bet count as having bet 0.
func RoundScores(players []*Player, bets map[string]int, mode Mode) []ScoringResult {
	results := make([]ScoringResult, 0, len(players))
	for _, p := range players {
		bet := bets[p.ID]
		results = append(results, ScoringResult{
			PlayerID:  p.ID,
			Bet:       bet,
			TricksWon: p.TricksWon,
			Outcome:   Score(bet, p.TricksWon, mode),
		})
	}
	return results
}

// ApplyRoundScores adds each result to its player's score and clears round counters.
// Players are modified in place; callers pass cloned players.
func ApplyRoundScores(players []*Player, results []ScoringResult) {
	points := make(map[string]int, len(results))
	for _, r := range results {
		points[r.PlayerID] = r.Points
	}
	for _, p := range players {
		p.Score += points[p.ID]
		p.TricksWon = 0
		p.Bet = nil
	}
}

// FinalRanking returns the players ordered by score, highest first. Ties keep seat order.
func FinalRanking(players []*Player) []*Player {
	out := append([]*Player(nil), players...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	return out
}

// Sanction is a fixed penalty applied outside normal scoring.
type Sanction string

const (
	SanctionLeonVergeite      Sanction = "leon_es_vergeite"
	SanctionMaldonne          Sanction = "maldonne"
	SanctionFlave             Sanction = "flave"
	SanctionSmokeleirRepenti  Sanction = "smokeleir_repenti"
	SanctionSmokeleirDemasque Sanction = "smokeleir_demasque"
)

var sanctionPenalties = map[Sanction]int{
	SanctionLeonVergeite:      -5,
	SanctionMaldonne:          -8,
	SanctionFlave:             -2,
	SanctionSmokeleirRepenti:  -2,
	SanctionSmokeleirDemasque: -5,
}

// SanctionPenalty returns the (negative) points of a sanction.
func SanctionPenalty(s Sanction) (int, bool) {
	p, ok := sanctionPenalties[s]
	return p, ok
}
