package room

import (
	"crypto/rand"
	"math/big"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"punch/game"
)

// RoomInfo is returned by the API for the server list.
type RoomInfo struct {
	Code    string `json:"code"`
	MatchID string `json:"matchId"`
	Players int    `json:"players"`
}

// DefaultIdleTimeout is how long a room waits for its first player.
const DefaultIdleTimeout = time.Minute

// Manager holds multiple rooms by code. Rooms are created on first join or via CreateRoom,
// and removed when the last player leaves or when nobody joins within IdleTimeout.
type Manager struct {
	mu    sync.RWMutex
	rooms map[string]*Room

	rules game.Rules
	seed  int64 // 0 seeds every room from crypto/rand
	log   *zap.Logger

	// IdleTimeout applies to rooms created after it is set.
	IdleTimeout time.Duration
}

func NewManager(rules game.Rules, seed int64, log *zap.Logger) *Manager {
	if log == nil {
		log = zap.NewNop()
	}
	return &Manager{
		rooms: make(map[string]*Room),
		rules: rules,
		seed:  seed,
		log:   log,

		IdleTimeout: DefaultIdleTimeout,
	}
}

// GetOrCreateRoom returns the room for the given code, creating it if needed.
func (m *Manager) GetOrCreateRoom(code string) *Room {
	if code == "" {
		return nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if r, ok := m.rooms[code]; ok {
		return r
	}
	return m.startRoom(code)
}

const codeChars = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// CreateRoom generates a unique 6-char code, creates the room, and returns the code.
func (m *Manager) CreateRoom() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	for {
		code := generateCode(6)
		if _, exists := m.rooms[code]; exists {
			continue
		}
		m.startRoom(code)
		return code
	}
}

// startRoom requires m.mu held.
func (m *Manager) startRoom(code string) *Room {
	matchID := uuid.NewString()
	log := m.log.With(zap.String("room", code), zap.String("match", matchID))

	r := New(m.rules, game.NewRandom(m.seed), log)
	r.Code = code
	r.MatchID = matchID
	r.IdleTimeout = m.IdleTimeout
	r.OnEmpty = func(c string) {
		m.removeRoom(c)
	}
	m.rooms[code] = r
	go r.Run()
	log.Info("room created")
	return r
}

func (m *Manager) removeRoom(code string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if r, ok := m.rooms[code]; ok {
		r.Stop()
		delete(m.rooms, code)
		m.log.Info("room removed", zap.String("room", code))
	}
}

// ListRooms returns all active rooms sorted by code.
func (m *Manager) ListRooms() []RoomInfo {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]RoomInfo, 0, len(m.rooms))
	for code, r := range m.rooms {
		out = append(out, RoomInfo{Code: code, MatchID: r.MatchID, Players: r.NumPlayers()})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

// Close stops every room.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for code, r := range m.rooms {
		r.Stop()
		delete(m.rooms, code)
	}
}

func generateCode(n int) string {
	b := make([]byte, n)
	max := big.NewInt(int64(len(codeChars)))
	for i := range b {
		idx, _ := rand.Int(rand.Reader, max)
		b[i] = codeChars[idx.Int64()]
	}
	return string(b)
}
