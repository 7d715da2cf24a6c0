// Package ws serves PipeSlide over websockets. Each connection plays its
// own board; one goroutine per connection owns the game and applies both
// client commands and water ticks, so the puzzle is never shared.
package ws

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"

	platformcore "github.com/vovakirdan/pipeslide/internal/core"
	"github.com/vovakirdan/pipeslide/internal/games/pipeslide"
	"github.com/vovakirdan/pipeslide/internal/games/pipeslide/core"
	"github.com/vovakirdan/pipeslide/internal/proto"
	"github.com/vovakirdan/pipeslide/internal/storage"
)

// headless is the screen size given to games that are never drawn.
// Any board fits.
const headless = 1 << 12

// Config tunes the server.
type Config struct {
	GameID   string            // Variant; empty means pipeslide
	Options  pipeslide.Options // Config, difficulty and layout for every session
	TickRate int               // Ticks per second; 0 means 30
	Seed     int64             // 0 seeds each board from the clock

	// OriginPatterns are extra allowed origins for browser clients.
	OriginPatterns []string
	WriteTimeout   time.Duration // 0 means 5s

	Store  *storage.Store // Optional; finished runs are recorded
	Logger *log.Logger    // nil discards
}

// Server is an http.Handler that upgrades to a websocket game session.
type Server struct {
	cfg Config
	log *log.Logger
}

// NewServer creates a server. Config zero values are replaced by defaults.
func NewServer(cfg Config) *Server {
	if cfg.GameID == "" {
		cfg.GameID = pipeslide.IDClassic
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 30
	}
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = 5 * time.Second
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Server{cfg: cfg, log: logger}
}

// ServeHTTP upgrades the request and plays until the client leaves.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: s.cfg.OriginPatterns,
	})
	if err != nil {
		s.log.Warn("upgrade failed", "remote", r.RemoteAddr, "err", err)
		return
	}
	defer c.CloseNow()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	logger := s.log.With("remote", r.RemoteAddr)
	logger.Info("session started")

	inbox := make(chan inbound, 16)
	go readLoop(ctx, c, inbox)

	sess := newSession(s.cfg, logger, c)
	err = sess.run(ctx, inbox)

	switch {
	case err == nil, errors.Is(err, context.Canceled), websocket.CloseStatus(err) != -1:
		c.Close(websocket.StatusNormalClosure, "bye")
	default:
		logger.Warn("session failed", "err", err)
		c.Close(websocket.StatusInternalError, "session failed")
	}
	logger.Info("session ended", "score", sess.game.State().Score)
}

// inbound is one decoded client message or the error that ended reading.
type inbound struct {
	msg proto.ClientMsg
	err error // Decode errors keep the connection; read errors end it
	eof bool
}

// readLoop decodes client messages until the connection closes.
// It never touches the game.
func readLoop(ctx context.Context, c *websocket.Conn, inbox chan<- inbound) {
	for {
		_, data, err := c.Read(ctx)
		if err != nil {
			select {
			case inbox <- inbound{err: err, eof: true}:
			case <-ctx.Done():
			}
			return
		}

		in := inbound{}
		if err := json.Unmarshal(data, &in.msg); err != nil {
			in.err = err
		}
		select {
		case inbox <- in:
		case <-ctx.Done():
			return
		}
	}
}

// session is one connection's game. Only run touches it.
type session struct {
	cfg  Config
	log  *log.Logger
	conn *websocket.Conn

	game     *pipeslide.Game
	seq      int
	reported bool // Over message sent for the current run
}

func newSession(cfg Config, logger *log.Logger, c *websocket.Conn) *session {
	opts := cfg.Options
	opts.Logger = logger
	return &session{
		cfg:   cfg,
		log:   logger,
		conn:  c,
		game:  pipeslide.New(cfg.GameID, opts),
	}
}

// reset starts a new board and sends the hello and first state.
func (s *session) reset(ctx context.Context) error {
	seed := s.cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s.game.Reset(platformcore.RuntimeConfig{
		ScreenW:  headless,
		ScreenH:  headless,
		TickRate: s.cfg.TickRate,
		Seed:     seed,
	})
	s.reported = false

	if s.game.Engine() == nil {
		return s.reportOver(ctx)
	}

	b := s.game.Engine().Board()
	hello := proto.Hello{
		Type:     proto.TypeHello,
		Game:     s.cfg.GameID,
		Rows:     b.Rows(),
		Cols:     b.Cols(),
		Seed:     seed,
		PeriodMS: s.game.Engine().Timer().Period().Milliseconds(),
	}
	if err := s.write(ctx, hello); err != nil {
		return err
	}
	return s.sendState(ctx)
}

// run is the session loop: the single writer of the game.
func (s *session) run(ctx context.Context, inbox <-chan inbound) error {
	if err := s.reset(ctx); err != nil {
		return err
	}

	ticker := time.NewTicker(time.Second / time.Duration(s.cfg.TickRate))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case in := <-inbox:
			if in.eof {
				return in.err
			}
			if err := s.handle(ctx, in); err != nil {
				return err
			}

		case <-ticker.C:
			if err := s.tick(ctx); err != nil {
				return err
			}
		}
	}
}

// tick advances the water. Commands are applied as they arrive, so the
// frame is always empty.
func (s *session) tick(ctx context.Context) error {
	if s.game.Engine() == nil {
		return nil
	}
	res := s.game.Step(platformcore.InputFrame{})

	if res.Changed {
		if err := s.sendState(ctx); err != nil {
			return err
		}
	}
	if res.State.GameOver && !s.reported {
		return s.reportOver(ctx)
	}
	return nil
}

// handle applies one client message.
func (s *session) handle(ctx context.Context, in inbound) error {
	if in.err != nil {
		return s.write(ctx, proto.NewError(proto.ErrBadJSON, in.err.Error(), 0))
	}
	msg := in.msg

	switch msg.Type {
	case proto.TypePing:
		return s.write(ctx, proto.Pong{Type: proto.TypePong})

	case proto.TypeRestart:
		if !s.game.State().GameOver {
			return s.write(ctx, proto.NewError(proto.ErrRejected, "run still in progress", msg.ClientSeq))
		}
		return s.reset(ctx)

	case proto.TypePause:
		if s.game.Engine() == nil || s.game.State().GameOver {
			return s.write(ctx, proto.NewError(proto.ErrRejected, "game not running", msg.ClientSeq))
		}
		s.game.TogglePause()
		return s.sendState(ctx)

	case proto.TypeSelect, proto.TypeSlide, proto.TypeMove, proto.TypeRotate:
		return s.command(ctx, msg)
	}

	return s.write(ctx, proto.NewError(proto.ErrUnknownType, fmt.Sprintf("type %q", msg.Type), msg.ClientSeq))
}

// command applies an explicit puzzle command immediately.
func (s *session) command(ctx context.Context, msg proto.ClientMsg) error {
	st := s.game.State()
	if s.game.Engine() == nil || st.GameOver || st.Paused {
		return s.write(ctx, proto.NewError(proto.ErrRejected, "game not running", msg.ClientSeq))
	}
	e := s.game.Engine()

	var ok bool
	if msg.Type == proto.TypeRotate {
		ok = e.Rotate()
	} else {
		d, err := core.ParseDirection(msg.Dir)
		if err != nil {
			return s.write(ctx, proto.NewError(proto.ErrBadDirection, err.Error(), msg.ClientSeq))
		}
		switch msg.Type {
		case proto.TypeSelect:
			ok = e.Select(d)
		case proto.TypeSlide:
			ok = e.SlideToward(d)
		default:
			ok = s.game.Move(d)
		}
	}

	if !ok {
		return s.write(ctx, proto.NewError(proto.ErrRejected, msg.Type+" had no effect", msg.ClientSeq))
	}
	return s.sendState(ctx)
}

func (s *session) sendState(ctx context.Context) error {
	e := s.game.Engine()
	st := s.game.State()
	s.seq++
	return s.write(ctx, proto.NewState(s.seq, e.Snapshot(), st.Score, e.Timer().Remaining(), st.Paused))
}

// reportOver sends the over message and records the run.
func (s *session) reportOver(ctx context.Context) error {
	s.reported = true
	run := s.game.Run()
	s.log.Info("run over", "reason", run.EndReason, "score", run.Score, "filled", run.TilesFilled)

	if s.cfg.Store != nil {
		if _, err := s.cfg.Store.SaveRun(s.cfg.GameID, run); err != nil {
			s.log.Warn("cannot save run", "err", err)
		}
		if run.Score > 0 {
			if _, err := s.cfg.Store.SaveScore(s.cfg.GameID, run.Score); err != nil {
				s.log.Warn("cannot save score", "err", err)
			}
		}
	}

	return s.write(ctx, proto.Over{
		Type:   proto.TypeOver,
		Reason: run.EndReason,
		Score:  run.Score,
		Filled: run.TilesFilled,
		Ticks:  run.Ticks,
	})
}

func (s *session) write(ctx context.Context, v any) error {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.WriteTimeout)
	defer cancel()
	return wsjson.Write(ctx, s.conn, v)
}
