package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/sirupsen/logrus"
)

const (
	minStreamInterval = 10 * time.Millisecond
	writeTimeout      = 5 * time.Second
)

type streamOptions struct {
	interval time.Duration
	ticks    int64 // 0 = until the client disconnects
}

func (s *Server) parseStreamOptions(r *http.Request) (streamOptions, error) {
	opts := streamOptions{interval: s.cfg.TickInterval}
	q := r.URL.Query()
	if v := q.Get("interval"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return opts, fmt.Errorf("interval: %w", err)
		}
		if d < minStreamInterval {
			return opts, fmt.Errorf("interval must be at least %s, got %s", minStreamInterval, d)
		}
		opts.interval = d
	}
	if v := q.Get("ticks"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return opts, fmt.Errorf("ticks: %w", err)
		}
		if n < 0 {
			return opts, fmt.Errorf("ticks must be non-negative, got %d", n)
		}
		opts.ticks = n
	}
	return opts, nil
}

// handleStream upgrades to a websocket and sends one TickFrame immediately,
// then one per interval. Closing the socket pauses the session; a new stream
// continues the same chain.
func (s *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	opts, err := s.parseStreamOptions(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: s.cfg.OriginPatterns,
	})
	if err != nil {
		logrus.Warnf("session %s: accepting stream: %v", sess.ID, err)
		return
	}
	defer conn.CloseNow()

	// Inbound messages are not part of the protocol; CloseRead also cancels
	// ctx when the client goes away.
	ctx := conn.CloseRead(r.Context())

	logrus.Debugf("session %s: stream opened (interval %s, ticks %d)", sess.ID, opts.interval, opts.ticks)
	sent, err := streamTicks(ctx, opts, func(ctx context.Context) error {
		wctx, cancel := context.WithTimeout(ctx, writeTimeout)
		defer cancel()
		return wsjson.Write(wctx, conn, sess.Advance())
	})
	logrus.Debugf("session %s: stream closed after %d ticks", sess.ID, sent)

	switch {
	case err == nil:
		_ = conn.Close(websocket.StatusNormalClosure, "done")
	case errors.Is(err, context.Canceled):
		_ = conn.Close(websocket.StatusGoingAway, "stopped")
	default:
		logrus.Debugf("session %s: stream ended: %v", sess.ID, err)
	}
}

// streamTicks calls send once immediately and then once per interval until
// opts.ticks sends have been made or ctx ends.
func streamTicks(ctx context.Context, opts streamOptions, send func(context.Context) error) (int64, error) {
	var sent int64
	done := func() bool { return opts.ticks > 0 && sent >= opts.ticks }

	if err := send(ctx); err != nil {
		return sent, err
	}
	sent++

	ticker := time.NewTicker(opts.interval)
	defer ticker.Stop()
	for !done() {
		select {
		case <-ctx.Done():
			return sent, ctx.Err()
		case <-ticker.C:
			if err := send(ctx); err != nil {
				return sent, err
			}
			sent++
		}
	}
	return sent, nil
}
