package app

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"leleon/internal/bot"
	"leleon/internal/domain"

	"github.com/google/uuid"
)

// Service contains Le Léon use-cases operating on domain state.
// Every operation returns a new Game and leaves its input untouched.
type Service struct {
	rng             *sharedRand
	names           *bot.NamePool
	automationLimit int
	now             func() time.Time
}

// NewService constructs a Service with provided rng or a time-seeded default.
// names may be nil to use the default bot name pool.
func NewService(rng *rand.Rand, names *bot.NamePool) *Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if names == nil {
		names = bot.NewNamePool(nil)
	}
	return &Service{
		rng:             &sharedRand{rng: rng},
		names:           names,
		automationLimit: DefaultAutomationLimit,
		now:             time.Now,
	}
}

// SetAutomationLimit overrides DefaultAutomationLimit. Non-positive values are ignored.
func (s *Service) SetAutomationLimit(n int) {
	if n > 0 {
		s.automationLimit = n
	}
}

var (
	ErrInvalidMode        = errors.New("invalid game mode")
	ErrInvalidMaxPlayers  = errors.New("max players must be between 2 and 10")
	ErrNameRequired       = errors.New("player name is required")
	ErrNotWaiting         = errors.New("game already started")
	ErrGameFull           = errors.New("game is full")
	ErrAlreadySeated      = errors.New("player already seated")
	ErrTooFewPlayers      = errors.New("not enough players to start")
	ErrNotStarted         = errors.New("game not started")
	ErrNotBetting         = errors.New("round not in betting phase")
	ErrNotPlaying         = errors.New("round not in playing phase")
	ErrUnknownPlayer      = errors.New("player not found")
	ErrNotYourTurn        = errors.New("not this player's turn")
	ErrAlreadyBet         = errors.New("player already bet this round")
	ErrInvalidBet         = errors.New("bet out of range")
	ErrCardNotInHand      = errors.New("card not in hand")
	ErrInvalidDeclaration = errors.New("only the leon may be declared, as a regular suit and rank")
	ErrIllegalCard        = errors.New("illegal card")
	ErrUnknownSanction    = errors.New("unknown sanction")
	ErrAutomationStalled  = errors.New("bot turns did not settle")
)

// CreateGame returns a new empty table in waiting status.
func (s *Service) CreateGame(code string, mode domain.Mode, maxPlayers int) (*domain.Game, error) {
	if !domain.ValidMode(mode) {
		return nil, ErrInvalidMode
	}
	if maxPlayers < MinPlayersToStartGame || maxPlayers > MaxPlayersPerGame {
		return nil, ErrInvalidMaxPlayers
	}
	now := s.now().UTC()
	return &domain.Game{
		ID:         uuid.NewString(),
		Code:       code,
		Mode:       mode,
		Status:     domain.StatusWaiting,
		MaxPlayers: maxPlayers,
		Players:    []*domain.Player{},
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

// AddPlayer seats a human at the next free position. An empty playerID gets a generated one.
func (s *Service) AddPlayer(game *domain.Game, playerID, name string) (*domain.Game, []Event, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, nil, ErrNameRequired
	}
	if playerID == "" {
		playerID = uuid.NewString()
	}
	return s.seat(game, &domain.Player{ID: playerID, Name: name, Connected: true})
}

// AddBot seats an automated player with a pooled name and a random personality.
func (s *Service) AddBot(game *domain.Game) (*domain.Game, []Event, error) {
	return s.seat(game, &domain.Player{
		ID:          uuid.NewString(),
		Name:        s.names.Next(s.rng),
		Connected:   true,
		IsBot:       true,
		Personality: bot.RandomPersonality(s.rng),
	})
}

func (s *Service) seat(game *domain.Game, p *domain.Player) (*domain.Game, []Event, error) {
	if game.Status != domain.StatusWaiting {
		return nil, nil, ErrNotWaiting
	}
	if len(game.Players) >= game.MaxPlayers {
		return nil, nil, ErrGameFull
	}
	if _, existing := game.FindPlayer(p.ID); existing != nil {
		return nil, nil, ErrAlreadySeated
	}

	next := game.Clone()
	p.Position = len(next.Players)
	p.IsDealer = p.Position == 0
	p.Hand = []domain.Card{}
	next.Players = append(next.Players, p)
	next.UpdatedAt = s.now().UTC()

	return next, []Event{{
		Kind: EventPlayerJoined,
		Payload: PlayerJoinedPayload{
			PlayerID: p.ID,
			Name:     p.Name,
			Position: p.Position,
			IsBot:    p.IsBot,
		},
	}}, nil
}

// StartGame deals the first round and opens betting.
func (s *Service) StartGame(game *domain.Game) (*domain.Game, []Event, error) {
	if game.Status != domain.StatusWaiting {
		return nil, nil, ErrNotWaiting
	}
	if len(game.Players) < MinPlayersToStartGame {
		return nil, nil, ErrTooFewPlayers
	}

	next := game.Clone()
	events := []Event{{
		Kind: EventGameStarted,
		Payload: GameStartedPayload{
			Players: len(next.Players),
			Rounds:  domain.TotalRounds(len(next.Players)),
		},
	}}
	roundEvents, err := s.startRound(next, 1)
	if err != nil {
		return nil, nil, err
	}
	next.UpdatedAt = s.now().UTC()
	return next, append(events, roundEvents...), nil
}

// startRound deals round number on g in place, moving the dealer one seat forward.
func (s *Service) startRound(g *domain.Game, number int) ([]Event, error) {
	n := len(g.Players)
	phase, cards := domain.RoundSetup(number, n)

	hands, reveal, err := domain.Deal(s.rng.shuffle(domain.NewDeck()), n, cards)
	if err != nil {
		return nil, fmt.Errorf("deal round %d: %w", number, err)
	}

	dealer := g.Dealer()
	if dealer < 0 {
		dealer = n - 1
	}
	dealer = domain.NextSeat(dealer, n)
	first := domain.NextSeat(dealer, n)

	events := make([]Event, 0, n+1)
	for i, p := range g.Players {
		domain.SortHand(hands[i])
		p.Hand = hands[i]
		p.TricksWon = 0
		p.Bet = nil
		p.IsDealer = i == dealer
		events = append(events, Event{
			Kind:       EventHandDealt,
			Payload:    HandDealtPayload{PlayerID: p.ID, Hand: p.Hand},
			Recipients: []string{p.ID},
		})
	}
	g.SetCurrent(first)

	trump := domain.ResolveTrump(reveal)
	g.Round = &domain.Round{
		Number:         number,
		CardsPerPlayer: cards,
		Phase:          phase,
		Trump:          trump,
		TrumpCard:      reveal,
		DealerID:       g.Players[dealer].ID,
		Tricks:         []domain.Trick{},
		Bets:           make(map[string]int, n),
		Status:         domain.RoundBetting,
	}
	g.Status = domain.StatusBetting

	events = append(events, Event{
		Kind: EventRoundStarted,
		Payload: RoundStartedPayload{
			Number:         number,
			CardsPerPlayer: cards,
			Phase:          phase,
			Trump:          trump,
			DealerID:       g.Players[dealer].ID,
			FirstPlayerID:  g.Players[first].ID,
		},
	})
	return events, nil
}

// PlaceBet records the bet of the player whose turn it is and passes the turn on.
func (s *Service) PlaceBet(game *domain.Game, playerID string, bet int) (*domain.Game, []Event, error) {
	if game.Round == nil || game.Round.Status != domain.RoundBetting {
		return nil, nil, ErrNotBetting
	}
	idx, p := game.FindPlayer(playerID)
	if p == nil {
		return nil, nil, ErrUnknownPlayer
	}
	if !p.IsCurrent {
		return nil, nil, ErrNotYourTurn
	}
	if p.Bet != nil {
		return nil, nil, ErrAlreadyBet
	}
	if bet < 0 || bet > game.Round.CardsPerPlayer {
		return nil, nil, ErrInvalidBet
	}

	next := game.Clone()
	n := len(next.Players)
	b := bet
	next.Players[idx].Bet = &b
	next.Round.Bets[playerID] = bet
	following := domain.NextSeat(idx, n)
	next.SetCurrent(following)

	events := []Event{{
		Kind: EventBetPlaced,
		Payload: BetPlacedPayload{
			PlayerID:     playerID,
			Bet:          bet,
			NextPlayerID: next.Players[following].ID,
		},
	}}

	if len(next.Round.Bets) == n {
		next.Round.Status = domain.RoundPlaying
		next.Status = domain.StatusPlaying
		bets := make(map[string]int, n)
		for id, v := range next.Round.Bets {
			bets[id] = v
		}
		events = append(events, Event{
			Kind:    EventBettingClosed,
			Payload: BettingClosedPayload{Bets: bets},
		})
	}
	next.UpdatedAt = s.now().UTC()
	return next, events, nil
}

// PlayCard lays a card from the current player's hand onto the trick.
// Completing a trick, round or game is handled here as well.
func (s *Service) PlayCard(game *domain.Game, playerID string, played domain.PlayedCard) (*domain.Game, []Event, error) {
	if game.Round == nil || game.Round.Status != domain.RoundPlaying {
		return nil, nil, ErrNotPlaying
	}
	idx, p := game.FindPlayer(playerID)
	if p == nil {
		return nil, nil, ErrUnknownPlayer
	}
	if !p.IsCurrent {
		return nil, nil, ErrNotYourTurn
	}
	hi := domain.IndexOfCard(p.Hand, played.ID)
	if hi < 0 {
		return nil, nil, ErrCardNotInHand
	}
	card := p.Hand[hi]

	var declared *domain.Identity
	if played.LeonedAs != nil {
		if !card.IsLeon() || !domain.ValidSuit(played.LeonedAs.Suit) || !domain.ValidRank(played.LeonedAs.Rank) {
			return nil, nil, ErrInvalidDeclaration
		}
		id := *played.LeonedAs
		declared = &id
	}
	if legality := domain.CheckPlay(card, p.Hand, game.Round.CurrentTrick); !legality.Legal {
		return nil, nil, fmt.Errorf("%w: %s", ErrIllegalCard, legality.Reason)
	}

	next := game.Clone()
	n := len(next.Players)
	laid := domain.PlayedCard{Card: card, LeonedAs: declared}
	trick := &next.Round.CurrentTrick
	if len(trick.Plays) == 0 {
		trick.LeadSuit = laid.EffectiveSuit()
	}
	trick.Plays = append(trick.Plays, domain.Play{PlayerID: playerID, Card: laid})
	next.Players[idx].Hand = domain.RemoveCard(next.Players[idx].Hand, card.ID)
	next.Players[idx].IsCurrent = false
	next.UpdatedAt = s.now().UTC()

	cardEvent := Event{Kind: EventCardPlayed, Payload: CardPlayedPayload{PlayerID: playerID, Card: laid}}

	if len(trick.Plays) < n {
		following := domain.NextSeat(idx, n)
		next.SetCurrent(following)
		cardEvent.Payload = CardPlayedPayload{PlayerID: playerID, Card: laid, NextPlayerID: next.Players[following].ID}
		return next, []Event{cardEvent}, nil
	}

	winnerID, err := domain.TrickWinner(*trick, next.Round.Trump)
	if err != nil {
		return nil, nil, err
	}
	trick.WinnerID = winnerID
	wi, winner := next.FindPlayer(winnerID)
	winner.TricksWon++
	completed := *trick
	next.Round.Tricks = append(next.Round.Tricks, completed)
	next.Round.CurrentTrick = domain.Trick{}

	events := []Event{cardEvent, {
		Kind:    EventTrickCompleted,
		Payload: TrickCompletedPayload{WinnerID: winnerID, Trick: completed},
	}}

	if len(next.Round.Tricks) < next.Round.CardsPerPlayer {
		next.SetCurrent(wi)
		return next, events, nil
	}

	roundEvents, err := s.completeRound(next)
	if err != nil {
		return nil, nil, err
	}
	return next, append(events, roundEvents...), nil
}

// completeRound scores the round on g in place and either deals the next one or finishes the game.
func (s *Service) completeRound(g *domain.Game) ([]Event, error) {
	results := domain.RoundScores(g.Players, g.Round.Bets, g.Mode)
	domain.ApplyRoundScores(g.Players, results)
	g.LastResults = results
	g.Round.Status = domain.RoundCompleted
	g.SetCurrent(-1)

	events := []Event{{
		Kind:    EventRoundCompleted,
		Payload: RoundCompletedPayload{Number: g.Round.Number, Results: results},
	}}

	if g.Round.Number >= domain.TotalRounds(len(g.Players)) {
		g.Status = domain.StatusFinished
		ranking := domain.FinalRanking(g.Players)
		ids := make([]string, len(ranking))
		for i, p := range ranking {
			ids[i] = p.ID
		}
		return append(events, Event{Kind: EventGameFinished, Payload: GameFinishedPayload{Ranking: ids}}), nil
	}

	roundEvents, err := s.startRound(g, g.Round.Number+1)
	if err != nil {
		return nil, err
	}
	return append(events, roundEvents...), nil
}

// ApplySanction subtracts a fixed penalty from a player's score once the game has started.
func (s *Service) ApplySanction(game *domain.Game, playerID string, sanction domain.Sanction) (*domain.Game, []Event, error) {
	if game.Status == domain.StatusWaiting {
		return nil, nil, ErrNotStarted
	}
	points, ok := domain.SanctionPenalty(sanction)
	if !ok {
		return nil, nil, ErrUnknownSanction
	}
	idx, p := game.FindPlayer(playerID)
	if p == nil {
		return nil, nil, ErrUnknownPlayer
	}

	next := game.Clone()
	next.Players[idx].Score += points
	next.UpdatedAt = s.now().UTC()
	return next, []Event{{
		Kind:    EventSanctionApplied,
		Payload: SanctionAppliedPayload{PlayerID: playerID, Sanction: sanction, Points: points},
	}}, nil
}

// sharedRand guards a *rand.Rand so one Service can serve concurrent requests.
type sharedRand struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func (r *sharedRand) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.Float64()
}

func (r *sharedRand) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.Intn(n)
}

func (r *sharedRand) shuffle(deck []domain.Card) []domain.Card {
	r.mu.Lock()
	defer r.mu.Unlock()
	return domain.ShuffleDeck(deck, r.rng)
}
