package room

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"punch/game"
	"punch/match"
	"punch/protocol"
)

type client struct {
	conn Conn
	name string
	role string
}

// Room hosts one match. All match and client state is owned by the Run goroutine;
// other goroutines talk to it through Inbox.
type Room struct {
	Inbox   chan any
	Code    string            // room code (e.g. "ABC123")
	MatchID string            // unique per room, used in snapshots and logs
	OnEmpty func(code string) // called when last player leaves
	// IdleTimeout reaps a room nobody has joined yet. Zero keeps it until Stop.
	IdleTimeout time.Duration

	match   *match.Match
	clients map[string]*client
	gamerID string
	nextID  int
	players atomic.Int32
	tickMs  int64

	quit     chan struct{}
	stopOnce sync.Once
	log      *zap.Logger
}

func New(rules game.Rules, rnd game.Random, log *zap.Logger) *Room {
	if log == nil {
		log = zap.NewNop()
	}
	r := &Room{
		Inbox:   make(chan any, 256),
		clients: make(map[string]*client),
		nextID:  1,
		tickMs:  rules.TickInterval.Milliseconds(),
		quit:    make(chan struct{}),
		log:     log,
	}
	r.match = match.New(rules, rnd, r,
		match.WithObserver(r.broadcastState),
		match.WithLogger(log),
	)
	return r
}

// AfterFunc schedules f on the room goroutine. It makes Room the match's Scheduler.
func (r *Room) AfterFunc(d time.Duration, f func()) match.Timer {
	return time.AfterFunc(d, func() {
		select {
		case r.Inbox <- timerFired{f: f}:
		case <-r.quit:
		}
	})
}

func (r *Room) Stop() {
	r.stopOnce.Do(func() { close(r.quit) })
}

// Done is closed once the room stops.
func (r *Room) Done() <-chan struct{} {
	return r.quit
}

// NumPlayers returns the current number of connected clients.
func (r *Room) NumPlayers() int {
	return int(r.players.Load())
}

// Run owns the room until Stop. The match only runs while the gamer seat is taken.
func (r *Room) Run() {
	defer r.match.Stop()
	if r.IdleTimeout > 0 {
		idle := r.AfterFunc(r.IdleTimeout, r.reapIdle)
		defer idle.Stop()
	}

	for {
		select {
		case <-r.quit:
			return
		case cmd := <-r.Inbox:
			r.handleCommand(cmd)
		}
	}
}

func (r *Room) handleCommand(cmd any) {
	switch c := cmd.(type) {
	case Join:
		r.handleJoin(c)
	case Input:
		if c.PlayerID == "" || c.PlayerID != r.gamerID {
			return
		}
		r.match.Handle(c.Action)
	case Leave:
		r.handleLeave(c.PlayerID)
	case timerFired:
		c.f()
	}
}

func (r *Room) handleJoin(c Join) {
	idNum := r.nextID
	playerID := fmt.Sprintf("p%d", idNum)
	r.nextID++

	name := c.Name
	if name == "" {
		name = fmt.Sprintf("Player %d", idNum)
	}
	role := protocol.RoleSpectator
	if r.gamerID == "" {
		role = protocol.RoleGamer
		r.gamerID = playerID
	}
	r.clients[playerID] = &client{conn: c.Conn, name: name, role: role}
	r.players.Store(int32(len(r.clients)))
	r.log.Info("player joined",
		zap.String("player", playerID),
		zap.String("name", name),
		zap.String("role", role),
	)

	welcome := protocol.Welcome{PlayerID: playerID, Role: role, Room: r.Code, TickMs: r.tickMs}
	if b, err := protocol.Encode(protocol.MsgWelcome, welcome); err == nil {
		_ = c.Conn.Send(b)
	}
	r.sendStateTo(c.Conn)
	if role == protocol.RoleGamer && !r.match.Running() && !r.match.Over() {
		r.log.Info("match running", zap.String("gamer", playerID))
		r.match.Start()
	}
	if c.Reply != nil {
		c.Reply <- JoinResult{PlayerID: playerID, Role: role}
	}
}

func (r *Room) handleLeave(playerID string) {
	c, ok := r.clients[playerID]
	if !ok {
		return
	}
	_ = c.conn.Close()
	r.dropClient(playerID)
	r.log.Info("player left", zap.String("player", playerID))
	r.checkEmpty()
}

func (r *Room) dropClient(playerID string) {
	delete(r.clients, playerID)
	r.players.Store(int32(len(r.clients)))
	if r.gamerID == playerID {
		// the next player to join takes over the gamer seat
		r.gamerID = ""
		r.match.Stop()
		r.log.Info("match paused", zap.String("gamer", playerID))
	}
}

func (r *Room) removePlayer(playerID string) {
	if c, ok := r.clients[playerID]; ok {
		_ = c.conn.Close()
	}
	r.dropClient(playerID)
}

func (r *Room) reapIdle() {
	if r.nextID > 1 {
		return
	}
	r.log.Info("room idle, nobody joined", zap.Duration("after", r.IdleTimeout))
	r.checkEmpty()
}

func (r *Room) checkEmpty() {
	if len(r.clients) == 0 && r.OnEmpty != nil && r.Code != "" {
		r.OnEmpty(r.Code)
	}
}

func (r *Room) broadcastState(s game.RoundState) {
	b, err := protocol.Encode(protocol.MsgState, protocol.NewState(r.MatchID, s))
	if err != nil {
		r.log.Error("encode state", zap.Error(err))
		return
	}

	var failed []string
	for id, c := range r.clients {
		if err := c.conn.Send(b); err != nil {
			failed = append(failed, id)
		}
	}
	for _, id := range failed {
		r.log.Warn("dropping client after failed send", zap.String("player", id))
		r.removePlayer(id)
	}
	if len(failed) > 0 {
		r.checkEmpty()
	}
}

func (r *Room) sendStateTo(c Conn) {
	b, err := protocol.Encode(protocol.MsgState, protocol.NewState(r.MatchID, r.match.Snapshot()))
	if err != nil {
		return
	}
	_ = c.Send(b)
}
