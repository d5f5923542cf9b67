// Package game owns the authoritative session state: the phase machine, the
// player registry, and round timing. All mutation is serialized onto one
// goroutine; the transport and REST layers only ever enqueue events.
package game

import (
	"context"
	"log"
	"math"
	"strings"
	"time"

	"emojitrivia/internal/bank"
	"emojitrivia/internal/model"
)

// Config tunes one session's rounds.
type Config struct {
	QuestionTime time.Duration // answering window per question
	RevealDelay  time.Duration // pause between reveal and next question
	JoinGrace    time.Duration // delay before the first question after a join
	BasePoints   int           // flat award for a correct answer
	BonusPerSec  int           // extra points per remaining second
	MaxChatLen   int           // chat messages are truncated to this
}

// DefaultConfig returns the standard round tuning.
func DefaultConfig() Config {
	return Config{
		QuestionTime: 20 * time.Second,
		RevealDelay:  5 * time.Second,
		JoinGrace:    3 * time.Second,
		BasePoints:   100,
		BonusPerSec:  5,
		MaxChatLen:   100,
	}
}

// Session is the game orchestrator. Public methods enqueue onto the command
// queue consumed by Run; handlers run to completion one at a time, so the
// state below needs no locking.
type Session struct {
	cfg    Config
	bank   *bank.Bank
	reg    *Registry
	timer  Scheduler
	sender Sender
	scores ScoreSink

	events chan func()
	ctx    context.Context

	phase   model.Phase
	current *model.Question

	// epoch stamps scheduled callbacks; cancelTimer bumps it so a stale
	// callback already sitting in the queue is dropped on arrival.
	epoch    uint64
	timerSet bool

	now func() time.Time
}

// NewSession creates a session in the waiting phase.
func NewSession(cfg Config, b *bank.Bank) *Session {
	return &Session{
		cfg:    cfg,
		bank:   b,
		reg:    NewRegistry(),
		timer:  newSlotTimer(),
		events: make(chan func(), 256),
		phase:  model.PhaseWaiting,
		now:    time.Now,
	}
}

// SetSender injects the connection layer's outbound half.
func (s *Session) SetSender(snd Sender) {
	s.sender = snd
}

// SetScoreSink injects the optional external leaderboard mirror.
func (s *Session) SetScoreSink(sink ScoreSink) {
	s.scores = sink
}

// Run consumes the command queue until ctx is cancelled. It must be running
// for any enqueued event to take effect.
func (s *Session) Run(ctx context.Context) {
	s.ctx = ctx
	for {
		select {
		case fn := <-s.events:
			fn()
		case <-ctx.Done():
			s.cancelTimer()
			return
		}
	}
}

// Connect registers a new connection and sends it the initial state.
func (s *Session) Connect(connID string) {
	s.dispatch(func() { s.handleConnect(connID) })
}

// Disconnect removes a connection's player. Close and transport error share
// this one cleanup path; calling it twice for the same id is a no-op.
func (s *Session) Disconnect(connID string) {
	s.dispatch(func() { s.handleDisconnect(connID) })
}

// Handle processes one decoded client event.
func (s *Session) Handle(connID string, ev Inbound) {
	s.dispatch(func() {
		switch ev := ev.(type) {
		case SetNickname:
			s.handleSetNickname(connID, ev.Nickname)
		case SubmitAnswer:
			s.handleSubmitAnswer(connID, ev.Answer)
		case ChatMessage:
			s.handleChat(connID, ev.Message)
		}
	})
}

// Leaderboard snapshots the live standings, round-tripping through the
// command queue so the read is consistent.
func (s *Session) Leaderboard(ctx context.Context) ([]model.PlayerSummary, error) {
	reply := make(chan []model.PlayerSummary, 1)
	select {
	case s.events <- func() { reply <- s.reg.Leaderboard() }:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	select {
	case lb := <-reply:
		return lb, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (s *Session) dispatch(fn func()) {
	s.events <- fn
}

// drain runs all queued events on the caller's goroutine. Test-only stand-in
// for Run.
func (s *Session) drain() {
	for {
		select {
		case fn := <-s.events:
			fn()
		default:
			return
		}
	}
}

// schedule arms the single-slot timer; fn later runs on the session
// goroutine, and only if no cancel or reschedule happened in between.
func (s *Session) schedule(d time.Duration, fn func()) {
	s.epoch++
	e := s.epoch
	s.timerSet = true
	s.timer.Schedule(d, func() {
		s.dispatch(func() {
			if e != s.epoch {
				return
			}
			s.timerSet = false
			fn()
		})
	})
}

func (s *Session) cancelTimer() {
	s.epoch++
	s.timerSet = false
	s.timer.Cancel()
}

func (s *Session) handleConnect(connID string) {
	st := s.statePayload()
	st.PlayerID = connID
	s.sender.SendTo(connID, "initialState", st)
}

func (s *Session) handleDisconnect(connID string) {
	p := s.reg.Remove(connID)
	if p == nil {
		return
	}
	log.Printf("Player %s left (%s)", p.Nickname, connID)
	s.mirrorRemove(p.Nickname)
	s.broadcastState()

	if s.reg.Count() == 0 && s.phase != model.PhaseWaiting {
		log.Println("Last player left, returning to waiting")
		s.toWaiting(true)
	}
}

func (s *Session) handleSetNickname(connID, nickname string) {
	p, err := s.reg.Register(connID, nickname)
	if err != nil {
		s.sender.SendTo(connID, "error", model.ErrorPayload{Message: err.Error()})
		return
	}
	log.Printf("Player %s claimed nickname %q", connID, p.Nickname)

	s.sender.SendTo(connID, "nicknameAccepted", model.NicknamePayload{Nickname: p.Nickname})
	s.mirrorScore(p.Nickname, 0)
	s.broadcastState()

	// First joiner of an idle session kicks off the opening round. Later
	// joiners must not re-arm the grace timer.
	if s.phase == model.PhaseWaiting && !s.timerSet {
		s.schedule(s.cfg.JoinGrace, s.startQuestion)
	}
}

// handleSubmitAnswer scores a guess. Late and duplicate submissions are
// silently dropped: under network jitter they are expected, not errors.
func (s *Session) handleSubmitAnswer(connID, answer string) {
	p := s.reg.Get(connID)
	if p == nil || s.phase != model.PhaseQuestion || s.current == nil || p.Answered {
		return
	}

	correct := Normalize(answer) == Normalize(s.current.Title)
	gained := 0
	if correct {
		elapsed := s.now().Sub(s.current.StartTime).Seconds()
		remaining := s.cfg.QuestionTime.Seconds() - elapsed
		if remaining < 0 {
			remaining = 0
		}
		gained = s.cfg.BasePoints + int(math.Floor(remaining*float64(s.cfg.BonusPerSec)))
	}
	s.reg.RecordAnswer(connID, correct, gained)

	s.sender.SendTo(connID, "answerResult", model.AnswerResultPayload{Correct: correct, ScoreGained: gained})
	if correct {
		log.Printf("%s answered correctly (+%d)", p.Nickname, gained)
		s.mirrorScore(p.Nickname, p.Score)
		s.broadcastState()
	}
}

func (s *Session) handleChat(connID, text string) {
	p := s.reg.Get(connID)
	if p == nil {
		return
	}
	msg := strings.TrimSpace(text)
	if runes := []rune(msg); len(runes) > s.cfg.MaxChatLen {
		msg = string(runes[:s.cfg.MaxChatLen])
	}
	if msg == "" {
		return
	}

	// Dual-send: everyone else gets the line, the sender gets its own echo
	// tagged as self, so each client sees each message exactly once.
	s.sender.BroadcastExcept(connID, "chatMessage", model.ChatPayload{Nickname: p.Nickname, Message: msg})
	s.sender.SendTo(connID, "chatMessage", model.ChatPayload{Nickname: p.Nickname, Message: msg, IsSelf: true})
}

func (s *Session) startQuestion() {
	if s.reg.Count() == 0 {
		s.toWaiting(false)
		return
	}

	item, idx := s.bank.Next()
	s.current = &model.Question{
		Index:     idx,
		Title:     item.Title,
		Emojis:    item.Emojis,
		Type:      item.Type,
		StartTime: s.now(),
	}
	s.phase = model.PhaseQuestion
	s.reg.ResetRound()
	log.Printf("Starting question %q (%s)", item.Title, item.Emojis)

	s.broadcastState()
	s.schedule(s.cfg.QuestionTime, s.startReveal)
}

func (s *Session) startReveal() {
	if s.phase != model.PhaseQuestion || s.current == nil {
		return
	}
	s.cancelTimer()
	s.phase = model.PhaseReveal
	log.Printf("Revealing answer %q", s.current.Title)

	s.sender.Broadcast("revealAnswer", model.RevealPayload{
		CorrectAnswer: s.current.Title,
		Scores:        s.reg.RoundScorers(),
	})
	s.broadcastState()

	s.schedule(s.cfg.RevealDelay, s.nextRound)
}

func (s *Session) nextRound() {
	if s.reg.Count() > 0 {
		s.startQuestion()
	} else {
		s.toWaiting(true)
	}
}

// toWaiting abandons any round in flight. resetBank additionally clears the
// served-question set so the next cohort starts a fresh pass.
func (s *Session) toWaiting(resetBank bool) {
	s.cancelTimer()
	s.phase = model.PhaseWaiting
	s.current = nil
	if resetBank {
		s.bank.Reset()
	}
	s.broadcastState()
}

func (s *Session) statePayload() model.StatePayload {
	return model.StatePayload{
		Players:         s.reg.Players(),
		Leaderboard:     s.reg.Leaderboard(),
		GameState:       s.phase,
		CurrentQuestion: s.questionView(),
		PlayerCount:     s.reg.Count(),
	}
}

// questionView is the client-safe projection of the current question: the
// title stays server-side until reveal.
func (s *Session) questionView() *model.QuestionView {
	if s.current == nil {
		return nil
	}
	return &model.QuestionView{
		Emojis:    s.current.Emojis,
		TimeLimit: int(s.cfg.QuestionTime / time.Second),
		Type:      s.current.Type,
	}
}

func (s *Session) broadcastState() {
	s.sender.Broadcast("updateState", s.statePayload())
}

func (s *Session) sinkCtx() context.Context {
	if s.ctx != nil {
		return s.ctx
	}
	return context.Background()
}

func (s *Session) mirrorScore(nickname string, score int) {
	if s.scores == nil {
		return
	}
	if err := s.scores.UpdateScore(s.sinkCtx(), nickname, score); err != nil {
		log.Printf("Leaderboard mirror update failed: %v", err)
	}
}

func (s *Session) mirrorRemove(nickname string) {
	if s.scores == nil {
		return
	}
	if err := s.scores.RemovePlayer(s.sinkCtx(), nickname); err != nil {
		log.Printf("Leaderboard mirror remove failed: %v", err)
	}
}
