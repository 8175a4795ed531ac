package domain

// Clone returns a deep copy of the game so callers can derive a new state without touching the old one.
func (g *Game) Clone() *Game {
	if g == nil {
		return nil
	}
	out := *g
	out.Players = make([]*Player, len(g.Players))
	for i, p := range g.Players {
		out.Players[i] = p.Clone()
	}
	if g.Round != nil {
		out.Round = g.Round.Clone()
	}
	out.LastResults = append([]ScoringResult(nil), g.LastResults...)
	return &out
}

// Clone returns a deep copy of the player.
func (p *Player) Clone() *Player {
	out := *p
	out.Hand = append([]Card(nil), p.Hand...)
	if p.Bet != nil {
		b := *p.Bet
		out.Bet = &b
	}
	return &out
}

// Clone returns a deep copy of the round.
func (r *Round) Clone() *Round {
	out := *r
	if r.Trump != nil {
		s := *r.Trump
		out.Trump = &s
	}
	if r.TrumpCard != nil {
		c := *r.TrumpCard
		out.TrumpCard = &c
	}
	out.CurrentTrick = r.CurrentTrick.Clone()
	out.Tricks = make([]Trick, len(r.Tricks))
	for i, t := range r.Tricks {
		out.Tricks[i] = t.Clone()
	}
	out.Bets = make(map[string]int, len(r.Bets))
	for k, v := range r.Bets {
		out.Bets[k] = v
	}
	return &out
}

// Clone returns a deep copy of the trick.
func (t Trick) Clone() Trick {
	out := t
	out.Plays = make([]Play, len(t.Plays))
	for i, pl := range t.Plays {
		out.Plays[i] = pl
		if pl.Card.LeonedAs != nil {
			id := *pl.Card.LeonedAs
			out.Plays[i].Card.LeonedAs = &id
		}
	}
	return out
}

// FindPlayer returns the seat index and player with the given id.
func (g *Game) FindPlayer(id string) (int, *Player) {
	for i, p := range g.Players {
		if p.ID == id {
			return i, p
		}
	}
	return -1, nil
}

// CurrentPlayer returns the player whose turn it is, or nil between turns.
func (g *Game) CurrentPlayer() *Player {
	for _, p := range g.Players {
		if p.IsCurrent {
			return p
		}
	}
	return nil
}

// Dealer returns the seat index of the dealer, or -1 when no dealer is flagged.
func (g *Game) Dealer() int {
	for i, p := range g.Players {
		if p.IsDealer {
			return i
		}
	}
	return -1
}

// SetCurrent gives the turn to seat idx and clears it everywhere else. A negative idx clears all.
func (g *Game) SetCurrent(idx int) {
	for i, p := range g.Players {
		p.IsCurrent = i == idx
	}
}

// NextSeat returns the seat after idx, wrapping around n seats.
func NextSeat(idx, n int) int {
	return (idx + 1) % n
}

// HasPlayed reports whether the player already laid a card on the trick.
func (t Trick) HasPlayed(playerID string) bool {
	for _, pl := range t.Plays {
		if pl.PlayerID == playerID {
			return true
		}
	}
	return false
}

// IndexOfCard returns the position of the card with id in hand, or -1.
func IndexOfCard(hand []Card, id string) int {
	for i, c := range hand {
		if c.ID == id {
			return i
		}
	}
	return -1
}

// RemoveCard returns a copy of hand without the card with the given id.
func RemoveCard(hand []Card, id string) []Card {
	out := make([]Card, 0, len(hand))
	for _, c := range hand {
		if c.ID != id {
			out = append(out, c)
		}
	}
	return out
}

// HasLeon reports whether hand holds the wildcard.
func HasLeon(hand []Card) bool {
	for _, c := range hand {
		if c.IsLeon() {
			return true
		}
	}
	return false
}
