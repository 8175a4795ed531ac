package nakama

// RPC ids registered with Nakama.
const (
	RpcCreateGame    = "leon_create_game"
	RpcJoinGame      = "leon_join_game"
	RpcAddBot        = "leon_add_bot"
	RpcStartGame     = "leon_start_game"
	RpcPlaceBet      = "leon_place_bet"
	RpcPlayCard      = "leon_play_card"
	RpcGetGame       = "leon_get_game"
	RpcApplySanction = "leon_apply_sanction"
	RpcGameInvite    = "leon_game_invite"
)

const (
	gameConfigPath = "data/leon_config.json"

	gamesCollection   = "leon_games"
	codesCollection   = "leon_codes"
	historyCollection = "leon_history"
)

// Notification codes for game events pushed to seated players.
const (
	NotifyPlayerJoined    = 101
	NotifyGameStarted     = 102
	NotifyRoundStarted    = 103
	NotifyHandDealt       = 104 // sent privately
	NotifyBetPlaced       = 105
	NotifyBettingClosed   = 106
	NotifyCardPlayed      = 107
	NotifyTrickCompleted  = 108
	NotifyRoundCompleted  = 109
	NotifyGameFinished    = 110
	NotifySanctionApplied = 111
)

// gRPC status codes used in runtime errors.
const (
	codeInvalidArgument    = 3
	codeNotFound           = 5
	codeFailedPrecondition = 9
	codeAborted            = 10
	codeInternal           = 13
)
