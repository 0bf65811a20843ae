package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/playgrid/tictactoe-backend/internal/entity"
)

const (
	readTimeout  = 10 * time.Second
	writeTimeout = 10 * time.Second
	idleTimeout  = 30 * time.Second
)

type gameplay interface {
	StartGame(ctx context.Context, playerID, mode, difficulty string) (*entity.Game, error)
	JoinGame(ctx context.Context, gameID, playerID string) (*entity.Game, error)
	MakeTurn(ctx context.Context, playerID string, move entity.Move) (*entity.Game, error)
	PassTurn(ctx context.Context, playerID string) (*entity.Game, error)
	OfferDraw(ctx context.Context, playerID string) (*entity.Game, error)
	ResolveDraw(ctx context.Context, playerID string, accept bool) (*entity.Game, error)
}

type players interface {
	GetOrCreatePlayer(ctx context.Context, id string) (*entity.Player, error)
}

type handlerFunc func(ctx context.Context, conn *websocket.Conn, msg *Message) error

type Server struct {
	logger   *slog.Logger
	gameplay gameplay
	players  players
	upgrader websocket.Upgrader
	handlers map[string]handlerFunc
}

func New(logger *slog.Logger, gameplay gameplay, players players) *Server {
	server := &Server{
		logger:   logger,
		gameplay: gameplay,
		players:  players,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}

	server.handlers = map[string]handlerFunc{
		"connect":           server.handleConnect,
		"game:new":          server.handleNewGame,
		"game:join":         server.handleJoinGame,
		"game:turn":         server.handleTurn,
		"game:pass":         server.handlePass,
		"game:draw:offer":   server.handleDrawOffer,
		"game:draw:resolve": server.handleDrawResolve,
	}

	return server
}

// Start - starts the WebSocket server.
func (that *Server) Start(ctx context.Context, port string) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		that.serveConnection(ctx, w, r)
	})

	srv := &http.Server{
		Addr:        ":" + port,
		Handler:     mux,
		ReadTimeout: readTimeout,
		IdleTimeout: idleTimeout,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), readTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shut down websocket server", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

func (that *Server) serveConnection(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "serveConnection")

	conn, err := that.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}
	defer conn.Close()

	log.Info("websocket connection established", "remote", conn.RemoteAddr().String())

	for {
		var message Message
		if err = conn.ReadJSON(&message); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Error("failed to read message", "error", err)
			}
			return
		}

		handler, ok := that.handlers[message.Action]
		if !ok {
			that.sendError(conn, message.Action, fmt.Sprintf("unknown action %q", message.Action))
			continue
		}

		if err = handler(ctx, conn, &message); err != nil {
			log.Error("failed to process message", "action", message.Action, "error", err)
			that.sendError(conn, message.Action, err.Error())
		}
	}
}

func (that *Server) sendMessage(conn *websocket.Conn, action string, payload ResponsePayload) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	if err = conn.SetWriteDeadline(time.Now().Add(writeTimeout)); err != nil {
		return fmt.Errorf("failed to set write deadline: %w", err)
	}

	if err = conn.WriteJSON(Message{Action: action, Payload: raw}); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}

func (that *Server) sendError(conn *websocket.Conn, action, errText string) {
	if err := that.sendMessage(conn, action, ResponsePayload{Error: errText}); err != nil {
		that.logger.Error("failed to send error response", "error", err)
	}
}
