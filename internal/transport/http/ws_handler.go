package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"quiz-racer/internal/app"
	"quiz-racer/internal/domain"
)

// WSHandler runs one game session per socket connection.
type WSHandler struct {
	service  *app.GameService
	upgrader websocket.Upgrader
}

func NewWSHandler(service *app.GameService) *WSHandler {
	return &WSHandler{
		service: service,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

type inboundMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type startPayload struct {
	PlayerName string `json:"playerName"`
	Tier       string `json:"tier"`
}

type answerPayload struct {
	Index int `json:"index"`
}

type leaderboardRequest struct {
	Limit int    `json:"limit"`
	Tier  string `json:"tier"`
}

type outboundMessage[T any] struct {
	Type    string `json:"type"`
	Payload T      `json:"payload"`
}

type errorPayload struct {
	Message string `json:"message"`
}

const (
	msgState       = "state"
	msgError       = "error"
	msgLeaderboard = "leaderboard"
)

// ServeWS upgrades the request, allocates a session and relays its events until the socket closes.
func (h *WSHandler) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn().Err(err).Msg("ws upgrade failed")
		return
	}
	defer conn.Close()

	ctx := r.Context()
	sessionID, err := h.service.NewSession(ctx)
	if err != nil {
		_ = conn.WriteJSON(outboundMessage[errorPayload]{Type: msgError, Payload: errorPayload{Message: err.Error()}})
		return
	}
	// Closing the session also ends the subscription below.
	defer h.service.Close(context.Background(), sessionID)

	events, cancel, err := h.service.Subscribe(ctx, sessionID)
	if err != nil {
		_ = conn.WriteJSON(outboundMessage[errorPayload]{Type: msgError, Payload: errorPayload{Message: err.Error()}})
		return
	}
	defer cancel()

	logger := log.With().Str("session", sessionID).Logger()
	logger.Debug().Msg("ws session opened")

	send := make(chan outboundMessage[any], 16)
	closeSignals := make(chan struct{})
	writerDone := make(chan struct{})
	eventsDone := make(chan struct{})

	// Single writer: gorilla connections do not allow concurrent writes.
	go func() {
		defer close(writerDone)
		for msg := range send {
			if err := conn.WriteJSON(msg); err != nil {
				logger.Debug().Err(err).Msg("ws write failed")
				// Unblock the reader so the handler can unwind.
				_ = conn.Close()
				for range send {
				}
				return
			}
		}
	}()

	go func() {
		defer close(eventsDone)
		for {
			select {
			case ev, ok := <-events:
				if !ok {
					return
				}
				select {
				case send <- outboundMessage[any]{Type: string(ev.Type), Payload: ev}:
				case <-closeSignals:
					return
				}
			case <-closeSignals:
				return
			}
		}
	}()

	if snap, err := h.service.Snapshot(ctx, sessionID); err == nil {
		send <- outboundMessage[any]{Type: msgState, Payload: snap}
	}

	for {
		var inbound inboundMessage
		if err := conn.ReadJSON(&inbound); err != nil {
			break
		}
		if reply, ok := h.handle(ctx, sessionID, inbound); ok {
			send <- reply
		}
	}

	close(closeSignals)
	<-eventsDone
	close(send)
	<-writerDone
	logger.Debug().Msg("ws session closed")
}

// handle runs one inbound command. ok is false when there is nothing to reply;
// state changes reach the client as events.
func (h *WSHandler) handle(ctx context.Context, sessionID string, in inboundMessage) (outboundMessage[any], bool) {
	switch in.Type {
	case "start":
		var payload startPayload
		if err := json.Unmarshal(in.Payload, &payload); err != nil {
			return errorMessage("invalid start payload"), true
		}
		tier, err := domain.ParseTier(payload.Tier)
		if err != nil {
			return errorMessage(err.Error()), true
		}
		snap, err := h.service.Start(ctx, sessionID, tier, payload.PlayerName)
		if err != nil {
			return errorMessage(userMessage(err)), true
		}
		return outboundMessage[any]{Type: msgState, Payload: snap}, true

	case "answer":
		var payload answerPayload
		if err := json.Unmarshal(in.Payload, &payload); err != nil {
			return errorMessage("invalid answer payload"), true
		}
		if _, err := h.service.SubmitAnswer(ctx, sessionID, payload.Index); err != nil {
			return errorMessage(userMessage(err)), true
		}
		// An ignored answer (reveal in progress) is not an error.
		return outboundMessage[any]{}, false

	case "restart":
		if err := h.service.Restart(ctx, sessionID); err != nil {
			return errorMessage(userMessage(err)), true
		}
		snap, err := h.service.Snapshot(ctx, sessionID)
		if err != nil {
			return errorMessage(userMessage(err)), true
		}
		return outboundMessage[any]{Type: msgState, Payload: snap}, true

	case "leaderboard":
		var req leaderboardRequest
		if len(in.Payload) > 0 {
			if err := json.Unmarshal(in.Payload, &req); err != nil {
				return errorMessage("invalid leaderboard payload"), true
			}
		}
		var tier domain.Tier
		if req.Tier != "" {
			t, err := domain.ParseTier(req.Tier)
			if err != nil {
				return errorMessage(err.Error()), true
			}
			tier = t
		}
		if err := h.service.ShowLeaderboard(ctx, sessionID); err != nil {
			return errorMessage(userMessage(err)), true
		}
		results, err := h.service.TopResults(ctx, req.Limit, tier)
		if err != nil {
			log.Error().Err(err).Str("session", sessionID).Msg("fetch leaderboard")
			return errorMessage("leaderboard unavailable"), true
		}
		return outboundMessage[any]{Type: msgLeaderboard, Payload: leaderboardResponse{Tier: tier, Results: results}}, true

	default:
		return errorMessage("unsupported message type"), true
	}
}

func errorMessage(msg string) outboundMessage[any] {
	return outboundMessage[any]{Type: msgError, Payload: errorPayload{Message: msg}}
}

// userMessage keeps validation errors verbatim and hides infrastructure failures.
func userMessage(err error) string {
	for _, known := range []error{
		domain.ErrPlayerNameRequired,
		domain.ErrPlayerNameTooLong,
		domain.ErrUnknownTier,
		domain.ErrInvalidPhase,
		domain.ErrSessionNotFound,
		domain.ErrNoQuestions,
	} {
		if errors.Is(err, known) {
			return err.Error()
		}
	}
	log.Error().Err(err).Msg("ws command failed")
	return "internal error"
}
