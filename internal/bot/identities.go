package bot

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// DefaultBotNames is the name pool used when no identities file is configured.
var DefaultBotNames = []string{
	"RoboCards",
	"CyberPlayer",
	"TurboBot",
	"MasterBot",
	"PreciBot",
	"FlameBot",
	"DiamondBot",
	"AstroBot",
	"CircusBot",
	"RainbowBot",
}

// BotIdentity is one entry of the identities file.
type BotIdentity struct {
	DisplayName string `json:"display_name"`
}

// NamePool hands out bot display names without repeats until every name is taken.
type NamePool struct {
	mu    sync.Mutex
	names []string
	used  map[string]bool
}

// NewNamePool creates a pool over names, or DefaultBotNames when names is empty.
func NewNamePool(names []string) *NamePool {
	if len(names) == 0 {
		names = DefaultBotNames
	}
	return &NamePool{
		names: append([]string(nil), names...),
		used:  make(map[string]bool),
	}
}

// LoadNamePool reads bot identities from a JSON file at path.
func LoadNamePool(path string) (*NamePool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read bot identities: %w", err)
	}

	var identities []BotIdentity
	if err := json.Unmarshal(data, &identities); err != nil {
		return nil, fmt.Errorf("failed to unmarshal bot identities: %w", err)
	}

	names := make([]string, 0, len(identities))
	for _, identity := range identities {
		if identity.DisplayName != "" {
			names = append(names, identity.DisplayName)
		}
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("bot identities file %s has no names", path)
	}
	return NewNamePool(names), nil
}

// Next returns an unused name. Once every name has been handed out the pool starts over.
func (p *NamePool) Next(rng Random) string {
	p.mu.Lock()
	defer p.mu.Unlock()

	available := make([]string, 0, len(p.names))
	for _, n := range p.names {
		if !p.used[n] {
			available = append(available, n)
		}
	}
	if len(available) == 0 {
		p.used = make(map[string]bool)
		available = p.names
	}

	name := available[rng.Intn(len(available))]
	p.used[name] = true
	return name
}

// Reset forgets every handed-out name.
func (p *NamePool) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.used = make(map[string]bool)
}

// Size is the number of distinct names in the pool.
func (p *NamePool) Size() int {
	return len(p.names)
}
