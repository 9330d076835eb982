// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

// Package wsevents streams live events from a controller's legacy
// WebSocket endpoint into a DataStore, reconnecting automatically with
// exponential backoff when the connection drops.
package wsevents

import (
	"context"
	"math"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/ksc98/unifly-sub001/internal/errors"
	"github.com/ksc98/unifly-sub001/internal/logging"
	"github.com/ksc98/unifly-sub001/internal/store"
)

// ReconnectConfig bounds the backoff applied between reconnection
// attempts after an abnormal disconnect.
type ReconnectConfig struct {
	// InitialDelay is the delay before the first reconnection attempt.
	InitialDelay time.Duration
	// MaxDelay upper-bounds the backoff delay regardless of attempt count.
	MaxDelay time.Duration
	// MaxRetries caps reconnection attempts; zero means retry forever.
	MaxRetries uint32
}

// DefaultReconnectConfig mirrors the controller's default reconnect
// policy: 1s initial delay, 30s cap, unlimited retries.
func DefaultReconnectConfig() ReconnectConfig {
	return ReconnectConfig{InitialDelay: time.Second, MaxDelay: 30 * time.Second}
}

// Engine owns the background reconnection loop for one controller's
// WebSocket event stream. Construct with Connect; Shutdown tears it down.
type Engine struct {
	url       string
	cookie    string
	reconnect ReconnectConfig
	ds        *store.DataStore
	log       *logging.Logger
	dialer    *websocket.Dialer

	// OnStateChange, if set, is invoked every time the engine's connection
	// state changes: connected=true once a dial succeeds, connected=false
	// with the upcoming attempt number each time it backs off to retry.
	// Lets an embedding facade mirror this into its own state machine
	// without the engine importing it.
	OnStateChange func(attempt uint32, connected bool)

	cancel context.CancelFunc
	done   chan struct{}
}

// Connect spawns the background reconnection loop and returns immediately;
// the first connection attempt happens asynchronously. Cancel ctx or call
// Shutdown to tear the loop down. onStateChange, if non-nil, is wired in
// before the loop starts and called every time the connection state
// changes (see Engine.OnStateChange).
func Connect(ctx context.Context, url, cookie string, reconnect ReconnectConfig, ds *store.DataStore, log *logging.Logger, onStateChange func(attempt uint32, connected bool)) *Engine {
	loopCtx, cancel := context.WithCancel(ctx)
	e := &Engine{
		url:           url,
		cookie:        cookie,
		reconnect:     reconnect,
		ds:            ds,
		log:           log,
		dialer:        &websocket.Dialer{HandshakeTimeout: 10 * time.Second},
		OnStateChange: onStateChange,
		cancel:        cancel,
		done:          make(chan struct{}),
	}
	go e.loop(loopCtx)
	return e
}

func (e *Engine) notifyState(attempt uint32, connected bool) {
	if e.OnStateChange != nil {
		e.OnStateChange(attempt, connected)
	}
}

// Shutdown signals the background loop to stop and waits for it to exit.
func (e *Engine) Shutdown() {
	e.cancel()
	<-e.done
}

// loop is the outer reconnect loop: connect, read until the connection
// drops, then either reconnect immediately (clean disconnect) or back off
// (error) before trying again.
func (e *Engine) loop(ctx context.Context) {
	defer close(e.done)

	var attempt uint32
	for {
		if ctx.Err() != nil {
			return
		}

		err := e.connectAndRead(ctx)
		if err == nil {
			e.log.Info("websocket disconnected cleanly, reconnecting")
			attempt = 0
			continue
		}
		if ctx.Err() != nil {
			return
		}

		e.log.Warnw("websocket error", "attempt", attempt, "error", err)
		e.notifyState(attempt+1, false)

		if e.reconnect.MaxRetries > 0 && attempt >= e.reconnect.MaxRetries {
			e.log.Errorw("websocket reconnection limit reached, giving up", "max_retries", e.reconnect.MaxRetries)
			return
		}

		delay := calculateBackoff(attempt, e.reconnect)
		e.log.Infow("waiting before reconnect", "delay_ms", delay.Milliseconds(), "attempt", attempt)

		select {
		case <-ctx.Done():
			return
		case <-time.After(delay):
		}
		attempt++
	}
}

// connectAndRead establishes one WebSocket connection and reads frames
// from it until the connection drops or ctx is cancelled. A clean close
// (server close frame or EOF) returns nil; any other failure returns an
// error describing it.
func (e *Engine) connectAndRead(ctx context.Context) error {
	e.log.Infow("connecting to websocket", "url", e.url)

	header := http.Header{}
	if e.cookie != "" {
		header.Set("Cookie", e.cookie)
	}

	conn, _, err := e.dialer.DialContext(ctx, e.url, header)
	if err != nil {
		return errors.WebSocketConnect(err.Error())
	}
	defer conn.Close()

	e.log.Info("websocket connected")
	e.notifyState(0, true)

	readErr := make(chan error, 1)
	go func() {
		for {
			msgType, data, err := conn.ReadMessage()
			if err != nil {
				readErr <- err
				return
			}
			if msgType != websocket.TextMessage {
				continue
			}
			parseAndPublish(data, e.ds, e.log)
		}
	}()

	select {
	case <-ctx.Done():
		return nil
	case err := <-readErr:
		if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
			return nil
		}
		if ce, ok := err.(*websocket.CloseError); ok {
			e.log.Infow("websocket close frame received", "code", ce.Code, "reason", ce.Text)
			return nil
		}
		return errors.WebSocketConnect(err.Error())
	}
}

// calculateBackoff computes the delay before reconnection attempt
// attempt: min(initial * 2^attempt, max) scaled by a deterministic jitter
// factor in [0.75, 1.25], so that many clients reconnecting after a
// shared outage don't all retry in lockstep.
func calculateBackoff(attempt uint32, cfg ReconnectConfig) time.Duration {
	base := cfg.InitialDelay.Seconds() * math.Pow(2, float64(attempt))
	capped := math.Min(base, cfg.MaxDelay.Seconds())

	jitter := 1.0 + 0.25*math.Sin(float64(attempt)*7.3)
	withJitter := math.Max(capped*jitter, 0)

	return time.Duration(withJitter * float64(time.Second))
}
