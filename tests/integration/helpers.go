package integration

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/heroiclabs/nakama-go/v2"
)

const (
	ServerKey = "defaultkey"
	Host      = "127.0.0.1"
	Port      = 7350
)

type TestClient struct {
	Client  *nakama.Client
	Session *nakama.Session
	UserID  string
}

// Card, Player and Game mirror the JSON the game RPCs return.
type Card struct {
	ID   string `json:"id"`
	Suit string `json:"suit"`
	Rank string `json:"rank"`
}

type Player struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Hand      []Card `json:"hand"`
	IsBot     bool   `json:"isBot"`
	IsCurrent bool   `json:"isCurrentPlayer"`
	Score     int    `json:"score"`
}

type Game struct {
	ID      string    `json:"id"`
	Code    string    `json:"code"`
	Status  string    `json:"status"`
	Players []*Player `json:"players"`
}

type GameResponse struct {
	Game     Game   `json:"game"`
	PlayerID string `json:"player_id"`
}

func NewTestClient(t *testing.T) *TestClient {
	client := nakama.NewClient(ServerKey, Host, Port, false)

	deviceID := fmt.Sprintf("test_device_%d", time.Now().UnixNano())
	session, err := client.AuthenticateDevice(context.Background(), deviceID, true, "")
	if err != nil {
		t.Fatalf("Failed to authenticate: %v", err)
	}

	return &TestClient{
		Client:  client,
		Session: session,
		UserID:  session.UserId,
	}
}

// Call invokes a game RPC with a JSON payload and decodes the game response.
func (tc *TestClient) Call(t *testing.T, rpcID string, payload interface{}) GameResponse {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal %s payload: %v", rpcID, err)
	}
	rpc, err := tc.Client.RpcFunc(context.Background(), tc.Session, rpcID, string(body))
	if err != nil {
		t.Fatalf("RPC %s failed: %v", rpcID, err)
	}

	var resp GameResponse
	if err := json.Unmarshal([]byte(rpc.Payload), &resp); err != nil {
		t.Fatalf("unmarshal %s response: %v", rpcID, err)
	}
	return resp
}

func (g Game) Find(id string) *Player {
	for _, p := range g.Players {
		if p.ID == id {
			return p
		}
	}
	return nil
}
