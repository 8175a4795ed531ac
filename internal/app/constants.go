package app

// MinPlayersToStartGame defines the minimum number of occupied seats required to start a game.
// Keep this centralized so tests or local runs can adjust the rule without touching multiple call sites.
const MinPlayersToStartGame = 2

// MaxPlayersPerGame is the largest table the round schedule supports.
const MaxPlayersPerGame = 10

// DefaultAutomationLimit caps the number of bot actions a single AdvanceAutomatedTurns call may take.
// A full all-bot game needs well under this many.
const DefaultAutomationLimit = 10000
