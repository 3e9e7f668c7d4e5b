// Package match drives one round of the game. It owns the round state and the two
// timers that move it forward: the puncher's decision timer and the gamer's pose revert.
//
// A Match is not safe for concurrent use. Callers serialize Handle and timer callbacks
// on one goroutine; room does this by routing timer fires through its inbox.
package match

import (
	"time"

	"go.uber.org/zap"

	"punch/game"
)

type Timer interface {
	Stop() bool
}

// Scheduler runs f once after d. The callback must be delivered on the goroutine that
// owns the Match.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type Option func(*Match)

// WithObserver registers a callback run after every tick with the new state.
func WithObserver(fn func(game.RoundState)) Option {
	return func(m *Match) { m.observer = fn }
}

func WithLogger(l *zap.Logger) Option {
	return func(m *Match) { m.log = l }
}

type Match struct {
	state game.RoundState
	rnd   game.Random
	sched Scheduler

	aiTimer   Timer
	aiGen     uint64
	poseTimer Timer
	poseGen   uint64
	running   bool

	observer func(game.RoundState)
	log      *zap.Logger
}

func New(rules game.Rules, rnd game.Random, sched Scheduler, opts ...Option) *Match {
	m := &Match{
		state: game.NewRound(rules),
		rnd:   rnd,
		sched: sched,
		log:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Start arms the puncher's next decision. Calling it on a running or finished match is
// a no-op. A gamer pose left over from before a Stop is dropped.
func (m *Match) Start() {
	if m.running || m.state.Over() {
		return
	}
	m.running = true
	if m.state.Gamer.Pose != game.PoseIdle {
		m.tick(game.PoseEvent{Side: game.SideGamer, Pose: game.PoseIdle})
		return
	}
	m.armAI()
}

// Stop pauses the match: pending timers are cancelled and input is dropped until the
// next Start. The round itself is kept.
func (m *Match) Stop() {
	m.running = false
	m.stopTimers()
}

func (m *Match) Running() bool {
	return m.running
}

func (m *Match) Snapshot() game.RoundState {
	return m.state
}

func (m *Match) Over() bool {
	return m.state.Over()
}

// Handle applies one gamer action. Actions on a paused or finished round, or unknown
// to the match, are dropped.
func (m *Match) Handle(a Action) {
	if m.state.Over() || !m.running {
		return
	}
	switch a {
	case ActionMoveLeft:
		m.tick(game.MoveEvent{Side: game.SideGamer, Dir: -1})
	case ActionMoveRight:
		m.tick(game.MoveEvent{Side: game.SideGamer, Dir: 1})
	case ActionLeftPunch, ActionRightPunch, ActionBothPunch, ActionBlock:
		m.setPose(a.Pose())
	}
}

func (m *Match) setPose(p game.Pose) {
	// one pending revert per fighter; a newer pose restarts the clock
	if m.poseTimer != nil {
		m.poseTimer.Stop()
	}
	m.poseGen++
	gen := m.poseGen
	m.poseTimer = m.sched.AfterFunc(m.state.Rules.PoseDuration, func() { m.revertPose(gen) })
	m.tick(game.PoseEvent{Side: game.SideGamer, Pose: p})
}

func (m *Match) revertPose(gen uint64) {
	if gen != m.poseGen || m.state.Over() {
		return
	}
	m.poseTimer = nil
	m.tick(game.PoseEvent{Side: game.SideGamer, Pose: game.PoseIdle})
}

// armAI replaces the pending decision timer. Any state change pushes the next decision
// a full interval out.
func (m *Match) armAI() {
	if m.aiTimer != nil {
		m.aiTimer.Stop()
	}
	m.aiGen++
	gen := m.aiGen
	m.aiTimer = m.sched.AfterFunc(m.state.Rules.TickInterval, func() { m.decide(gen) })
}

func (m *Match) decide(gen uint64) {
	if gen != m.aiGen || m.state.Over() {
		return
	}
	m.aiTimer = nil
	mv := game.NextAIMove(m.state.Puncher, m.state.Gamer, m.rnd)
	m.tick(game.AIEvent{Move: mv})
}

func (m *Match) tick(events ...game.Event) {
	m.state = game.Update(m.state, events...)

	if m.state.GamerDamage > 0 || m.state.PuncherDamage > 0 {
		m.log.Debug("hit",
			zap.Int("tick", m.state.Tick),
			zap.Int("gamer_damage", m.state.GamerDamage),
			zap.Int("puncher_damage", m.state.PuncherDamage),
			zap.Int("gamer_life", m.state.Gamer.Life),
			zap.Int("puncher_life", m.state.Puncher.Life),
		)
	}

	if m.state.Over() {
		m.stopTimers()
		m.log.Info("round over",
			zap.Int("tick", m.state.Tick),
			zap.Stringer("winner", m.state.Outcome),
		)
	} else {
		m.armAI()
	}

	if m.observer != nil {
		m.observer(m.state)
	}
}

func (m *Match) stopTimers() {
	if m.aiTimer != nil {
		m.aiTimer.Stop()
		m.aiTimer = nil
	}
	if m.poseTimer != nil {
		m.poseTimer.Stop()
		m.poseTimer = nil
	}
	// invalidate callbacks already handed to the owner goroutine
	m.aiGen++
	m.poseGen++
}
