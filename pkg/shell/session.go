package shell

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// outboundQueueSize bounds buffered outbound frames per session.
const outboundQueueSize = 64

// Session is one connected dashboard client: a WebSocket connection, its
// hosted App, and the read/write pumps. Inbound frames are handled on the
// read goroutine, which serializes all App calls.
type Session struct {
	conn    *websocket.Conn
	app     App
	cfg     *Config
	logger  *slog.Logger
	metrics *metrics

	outbound chan Frame

	closeOnce sync.Once
	done      chan struct{}
}

func newSession(conn *websocket.Conn, app App, cfg *Config, m *metrics) *Session {
	return &Session{
		conn:     conn,
		app:      app,
		cfg:      cfg,
		logger:   cfg.Logger.With("remote", conn.RemoteAddr().String()),
		metrics:  m,
		outbound: make(chan Frame, outboundQueueSize),
		done:     make(chan struct{}),
	}
}

// run drives the session to completion. It blocks until the connection
// closes.
func (s *Session) run() {
	s.metrics.activeSessions.Inc()
	defer s.metrics.activeSessions.Dec()

	go s.writeLoop()
	defer s.close()

	s.app.Start(s.send)
	s.readLoop()
}

// send queues one outbound frame. Frames are dropped when the client cannot
// keep up; the next render supersedes anything it would have seen.
func (s *Session) send(f Frame) {
	select {
	case s.outbound <- f:
	case <-s.done:
	default:
		s.metrics.frameErrors.Inc()
		s.logger.Warn("outbound queue full, frame dropped", "type", f.Type)
	}
}

func (s *Session) readLoop() {
	for {
		s.conn.SetReadDeadline(time.Now().Add(s.cfg.ReadTimeout))

		_, msg, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseGoingAway,
				websocket.CloseAbnormalClosure,
				websocket.CloseNormalClosure) {
				s.logger.Error("read error", "error", err)
			}
			return
		}

		var frame Frame
		if err := json.Unmarshal(msg, &frame); err != nil {
			s.metrics.frameErrors.Inc()
			s.logger.Error("frame decode error", "error", err)
			s.send(Frame{Type: FrameError, Message: "invalid frame"})
			continue
		}

		s.metrics.framesIn.WithLabelValues(frame.Type).Inc()

		switch frame.Type {
		case FramePing:
			s.send(Frame{Type: FramePong})
		case FrameNavigate, FrameEvent, FrameSubmit:
			s.app.HandleFrame(frame)
		default:
			s.logger.Warn("unknown frame type", "type", frame.Type)
		}
	}
}

func (s *Session) writeLoop() {
	pingInterval := s.cfg.ReadTimeout / 3
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case frame := <-s.outbound:
			s.conn.SetWriteDeadline(time.Now().Add(s.cfg.WriteTimeout))
			if err := s.conn.WriteJSON(frame); err != nil {
				s.metrics.frameErrors.Inc()
				s.logger.Debug("write error", "error", err)
				s.close()
				return
			}
			s.metrics.framesOut.Inc()

		case <-ticker.C:
			s.conn.SetWriteDeadline(time.Now().Add(s.cfg.WriteTimeout))
			if err := s.conn.WriteControl(websocket.PingMessage, nil,
				time.Now().Add(s.cfg.WriteTimeout)); err != nil {
				s.close()
				return
			}

		case <-s.done:
			return
		}
	}
}

func (s *Session) close() {
	s.closeOnce.Do(func() {
		close(s.done)
		s.app.Close()
		s.conn.Close()
	})
}
