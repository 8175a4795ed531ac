package nakama

import (
	"context"
	"database/sql"
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"

	"leleon/internal/app"
	"leleon/internal/app/lobby"
	"leleon/internal/config"
	"leleon/internal/domain"
	"leleon/internal/ports"

	"github.com/heroiclabs/nakama-common/runtime"
	qrcode "github.com/skip2/go-qrcode"
)

const (
	defaultInviteQRSize = 256
	maxInviteQRSize     = 1024
)

var errInvalidPayload = errors.New("invalid payload")

type createGameRequest struct {
	Mode       string `json:"mode"`
	MaxPlayers int    `json:"max_players"`
	Name       string `json:"name"`
}

type joinGameRequest struct {
	Game     string `json:"game"`
	Name     string `json:"name"`
	PlayerID string `json:"player_id"`
}

type gameRequest struct {
	Game     string `json:"game"`
	PlayerID string `json:"player_id"`
}

type placeBetRequest struct {
	Game     string `json:"game"`
	PlayerID string `json:"player_id"`
	Bet      *int   `json:"bet"`
}

type playCardRequest struct {
	Game     string           `json:"game"`
	PlayerID string           `json:"player_id"`
	CardID   string           `json:"card_id"`
	LeonedAs *domain.Identity `json:"leoned_as"`
}

type sanctionRequest struct {
	Game     string `json:"game"`
	PlayerID string `json:"player_id"`
	Sanction string `json:"sanction"`
}

type inviteRequest struct {
	Game string `json:"game"`
	Size int    `json:"size"`
}

// GameResponse is returned by every game RPC. Other players' hands are hidden.
type GameResponse struct {
	Game     *domain.Game     `json:"game"`
	PlayerID string           `json:"player_id,omitempty"`
	Events   []app.Event      `json:"events,omitempty"`
	Ranking  []*domain.Player `json:"ranking,omitempty"`
}

// InviteResponse carries the join code and its QR code as a base64 PNG.
type InviteResponse struct {
	GameID string `json:"game_id"`
	Code   string `json:"code"`
	QRCode string `json:"qr_code"`
}

// rpcHandlers binds the lobby to Nakama RPC functions.
type rpcHandlers struct {
	lobby    *lobby.Service
	notifier notificationModule
}

// RegisterRPCs registers Nakama RPC endpoints.
func (h *rpcHandlers) RegisterRPCs(initializer runtime.Initializer) error {
	rpcs := map[string]func(context.Context, runtime.Logger, *sql.DB, runtime.NakamaModule, string) (string, error){
		RpcCreateGame:    h.rpcCreateGame,
		RpcJoinGame:      h.rpcJoinGame,
		RpcAddBot:        h.rpcAddBot,
		RpcStartGame:     h.rpcStartGame,
		RpcPlaceBet:      h.rpcPlaceBet,
		RpcPlayCard:      h.rpcPlayCard,
		RpcGetGame:       h.rpcGetGame,
		RpcApplySanction: h.rpcApplySanction,
		RpcGameInvite:    h.rpcGameInvite,
	}
	for id, fn := range rpcs {
		if err := initializer.RegisterRpc(id, fn); err != nil {
			return err
		}
	}
	return nil
}

func (h *rpcHandlers) rpcCreateGame(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	var req createGameRequest
	if err := decodePayload(payload, &req); err != nil {
		return "", toRuntimeError(logger, RpcCreateGame, err)
	}
	mode := domain.Mode(req.Mode)
	if req.Mode == "" {
		mode = config.GetDefaultMode()
	}
	maxPlayers := req.MaxPlayers
	if maxPlayers == 0 {
		maxPlayers = config.GetDefaultMaxPlayers()
	}

	userID := callerID(ctx, "")
	result, err := h.lobby.CreateGame(ctx, mode, maxPlayers, userID, req.Name)
	if err != nil {
		return "", toRuntimeError(logger, RpcCreateGame, err)
	}
	logger.Info("rpcCreateGame [User:%s]: created game %s (%s)", userID, result.Game.ID, result.Game.Code)
	return h.respond(ctx, logger, result, result.PlayerID)
}

func (h *rpcHandlers) rpcJoinGame(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	var req joinGameRequest
	if err := decodePayload(payload, &req); err != nil {
		return "", toRuntimeError(logger, RpcJoinGame, err)
	}
	result, err := h.lobby.Join(ctx, req.Game, callerID(ctx, req.PlayerID), req.Name)
	if err != nil {
		return "", toRuntimeError(logger, RpcJoinGame, err)
	}
	logger.Info("rpcJoinGame: player %s joined game %s", result.PlayerID, result.Game.ID)
	return h.respond(ctx, logger, result, result.PlayerID)
}

func (h *rpcHandlers) rpcAddBot(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	var req gameRequest
	if err := decodePayload(payload, &req); err != nil {
		return "", toRuntimeError(logger, RpcAddBot, err)
	}
	result, err := h.lobby.AddBot(ctx, req.Game)
	if err != nil {
		return "", toRuntimeError(logger, RpcAddBot, err)
	}
	return h.respond(ctx, logger, result, callerID(ctx, req.PlayerID))
}

func (h *rpcHandlers) rpcStartGame(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	var req gameRequest
	if err := decodePayload(payload, &req); err != nil {
		return "", toRuntimeError(logger, RpcStartGame, err)
	}
	result, err := h.lobby.Start(ctx, req.Game)
	if err != nil {
		return "", toRuntimeError(logger, RpcStartGame, err)
	}
	logger.Info("rpcStartGame: game %s started with %d players", result.Game.ID, len(result.Game.Players))
	return h.respond(ctx, logger, result, callerID(ctx, req.PlayerID))
}

func (h *rpcHandlers) rpcPlaceBet(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	var req placeBetRequest
	if err := decodePayload(payload, &req); err != nil {
		return "", toRuntimeError(logger, RpcPlaceBet, err)
	}
	if req.Bet == nil {
		return "", runtime.NewError("bet is required", codeInvalidArgument)
	}
	playerID := callerID(ctx, req.PlayerID)
	result, err := h.lobby.PlaceBet(ctx, req.Game, playerID, *req.Bet)
	if err != nil {
		return "", toRuntimeError(logger, RpcPlaceBet, err)
	}
	return h.respond(ctx, logger, result, playerID)
}

func (h *rpcHandlers) rpcPlayCard(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	var req playCardRequest
	if err := decodePayload(payload, &req); err != nil {
		return "", toRuntimeError(logger, RpcPlayCard, err)
	}
	if req.CardID == "" {
		return "", runtime.NewError("card_id is required", codeInvalidArgument)
	}
	playerID := callerID(ctx, req.PlayerID)
	played := domain.PlayedCard{Card: domain.Card{ID: req.CardID}, LeonedAs: req.LeonedAs}
	result, err := h.lobby.PlayCard(ctx, req.Game, playerID, played)
	if err != nil {
		return "", toRuntimeError(logger, RpcPlayCard, err)
	}
	return h.respond(ctx, logger, result, playerID)
}

func (h *rpcHandlers) rpcGetGame(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	var req gameRequest
	if err := decodePayload(payload, &req); err != nil {
		return "", toRuntimeError(logger, RpcGetGame, err)
	}
	game, err := h.lobby.Fetch(ctx, req.Game)
	if err != nil {
		return "", toRuntimeError(logger, RpcGetGame, err)
	}
	return encodeResponse(logger, buildGameResponse(game, nil, callerID(ctx, req.PlayerID), ""))
}

func (h *rpcHandlers) rpcApplySanction(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	var req sanctionRequest
	if err := decodePayload(payload, &req); err != nil {
		return "", toRuntimeError(logger, RpcApplySanction, err)
	}
	result, err := h.lobby.Sanction(ctx, req.Game, req.PlayerID, domain.Sanction(req.Sanction))
	if err != nil {
		return "", toRuntimeError(logger, RpcApplySanction, err)
	}
	logger.Info("rpcApplySanction: %s on player %s in game %s", req.Sanction, req.PlayerID, result.Game.ID)
	return h.respond(ctx, logger, result, callerID(ctx, ""))
}

func (h *rpcHandlers) rpcGameInvite(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	var req inviteRequest
	if err := decodePayload(payload, &req); err != nil {
		return "", toRuntimeError(logger, RpcGameInvite, err)
	}
	game, err := h.lobby.Fetch(ctx, req.Game)
	if err != nil {
		return "", toRuntimeError(logger, RpcGameInvite, err)
	}

	size := req.Size
	if size <= 0 {
		size = defaultInviteQRSize
	}
	if size > maxInviteQRSize {
		size = maxInviteQRSize
	}
	png, err := qrcode.Encode(game.Code, qrcode.Medium, size)
	if err != nil {
		return "", toRuntimeError(logger, RpcGameInvite, err)
	}

	resp := InviteResponse{
		GameID: game.ID,
		Code:   game.Code,
		QRCode: base64.StdEncoding.EncodeToString(png),
	}
	b, err := json.Marshal(resp)
	if err != nil {
		return "", toRuntimeError(logger, RpcGameInvite, err)
	}
	return string(b), nil
}

// respond pushes the events to the other seated players and answers the caller with their own view.
func (h *rpcHandlers) respond(ctx context.Context, logger runtime.Logger, result lobby.Result, viewerID string) (string, error) {
	if result.HistoryErr != nil {
		logger.Warn("failed to record history for game %s: %v", result.Game.ID, result.HistoryErr)
	}
	publishEvents(ctx, logger, h.notifier, result.Game, result.Events, viewerID)
	return encodeResponse(logger, buildGameResponse(result.Game, result.Events, viewerID, result.PlayerID))
}

func buildGameResponse(game *domain.Game, events []app.Event, viewerID, playerID string) GameResponse {
	resp := GameResponse{
		Game:     gameForViewer(game, viewerID),
		PlayerID: playerID,
		Events:   eventsForViewer(events, viewerID),
	}
	if game.Status == domain.StatusFinished {
		resp.Ranking = domain.FinalRanking(resp.Game.Players)
	}
	return resp
}

func encodeResponse(logger runtime.Logger, resp GameResponse) (string, error) {
	b, err := json.Marshal(resp)
	if err != nil {
		logger.Error("failed to marshal response: %v", err)
		return "", runtime.NewError("internal error", codeInternal)
	}
	return string(b), nil
}

func decodePayload(payload string, v interface{}) error {
	if strings.TrimSpace(payload) == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(payload), v); err != nil {
		return errInvalidPayload
	}
	return nil
}

// callerID prefers the authenticated user; server-to-server calls may name the player instead.
func callerID(ctx context.Context, fallback string) string {
	if userID, ok := ctx.Value(runtime.RUNTIME_CTX_USER_ID).(string); ok && userID != "" {
		return userID
	}
	return fallback
}

func toRuntimeError(logger runtime.Logger, rpc string, err error) error {
	switch {
	case errors.Is(err, ports.ErrGameNotFound), errors.Is(err, app.ErrUnknownPlayer):
		return runtime.NewError(err.Error(), codeNotFound)
	case errors.Is(err, ports.ErrVersionConflict):
		return runtime.NewError("game changed concurrently, retry", codeAborted)
	case errors.Is(err, errInvalidPayload),
		errors.Is(err, lobby.ErrGameRefRequired),
		errors.Is(err, app.ErrInvalidMode),
		errors.Is(err, app.ErrInvalidMaxPlayers),
		errors.Is(err, app.ErrNameRequired),
		errors.Is(err, app.ErrInvalidBet),
		errors.Is(err, app.ErrInvalidDeclaration),
		errors.Is(err, app.ErrUnknownSanction):
		return runtime.NewError(err.Error(), codeInvalidArgument)
	case errors.Is(err, app.ErrNotWaiting),
		errors.Is(err, app.ErrGameFull),
		errors.Is(err, app.ErrAlreadySeated),
		errors.Is(err, app.ErrTooFewPlayers),
		errors.Is(err, app.ErrNotStarted),
		errors.Is(err, app.ErrNotBetting),
		errors.Is(err, app.ErrNotPlaying),
		errors.Is(err, app.ErrNotYourTurn),
		errors.Is(err, app.ErrAlreadyBet),
		errors.Is(err, app.ErrCardNotInHand),
		errors.Is(err, app.ErrIllegalCard):
		return runtime.NewError(err.Error(), codeFailedPrecondition)
	default:
		logger.Error("%s: %v", rpc, err)
		return runtime.NewError("internal error", codeInternal)
	}
}
