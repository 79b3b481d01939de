package websocket

import (
	"context"
	"fmt"

	"github.com/mitchellh/mapstructure"
	"github.com/rocketscienceinc/hotseat-tictactoe/internal/entity"
)

func (that *Server) handleConnect(ctx context.Context, sess *session, payload map[string]any) error {
	log := that.logger.With("method", "handleConnect")

	var req ConnectPayload
	if err := mapstructure.Decode(payload, &req); err != nil {
		return fmt.Errorf("failed to decode connect payload: %w", err)
	}

	game, err := that.uGame.GetOrCreateGame(ctx, req.GameID)
	if err != nil {
		log.Error("failed to get or create game", "error", err)
		return that.sendError(sess, actionConnect, "failed to get or create game")
	}

	sess.gameID = game.ID

	if req.GameID == game.ID {
		log.Info("session reconnected", "game", game.ID)
	} else {
		log.Info("new session started", "game", game.ID)
	}

	return that.sendState(sess, actionConnect, game)
}

func (that *Server) handleMove(ctx context.Context, sess *session, payload map[string]any) error {
	log := that.logger.With("method", "handleMove")

	if sess.gameID == "" {
		return that.sendError(sess, actionMove, "not connected to a game")
	}

	var req MovePayload
	if err := mapstructure.Decode(payload, &req); err != nil {
		return fmt.Errorf("failed to decode move payload: %w", err)
	}

	// Invalid moves come back as the unchanged game; the client still gets
	// exactly one state push per click.
	game, err := that.uGame.PlaceMarker(ctx, sess.gameID, req.Cell)
	if err != nil {
		log.Error("failed to place marker", "game", sess.gameID, "error", err)
		return that.sendError(sess, actionMove, "failed to place marker")
	}

	return that.sendState(sess, actionState, game)
}

func (that *Server) handleReset(ctx context.Context, sess *session, _ map[string]any) error {
	log := that.logger.With("method", "handleReset")

	if sess.gameID == "" {
		return that.sendError(sess, actionReset, "not connected to a game")
	}

	game, err := that.uGame.ResetGame(ctx, sess.gameID)
	if err != nil {
		log.Error("failed to reset game", "game", sess.gameID, "error", err)
		return that.sendError(sess, actionReset, "failed to reset game")
	}

	return that.sendState(sess, actionState, game)
}

func (that *Server) sendState(sess *session, action string, game *entity.Game) error {
	response := Response{
		Action:  action,
		Payload: &GamePayload{Game: game},
	}

	if err := sess.conn.WriteJSON(response); err != nil {
		return fmt.Errorf("failed to send state: %w", err)
	}

	return nil
}

func (that *Server) sendError(sess *session, action, message string) error {
	response := Response{
		Action: action,
		Error:  message,
	}

	if err := sess.conn.WriteJSON(response); err != nil {
		return fmt.Errorf("failed to send error response: %w", err)
	}

	return nil
}
