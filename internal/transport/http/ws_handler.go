package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gorilla/websocket"

	"trivia-quiz-service/internal/app"
	"trivia-quiz-service/internal/domain"
)

// WSHandler drives one quiz playthrough per websocket connection. The client
// is the UI collaborator: it renders the messages and sends back the player's
// button presses.
type WSHandler struct {
	service  *app.QuizService
	upgrader websocket.Upgrader
}

func NewWSHandler(service *app.QuizService) *WSHandler {
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

type answerPayload struct {
	Index int `json:"index"`
}

type questionPayload struct {
	Index    int      `json:"index"`
	Total    int      `json:"total"`
	Question string   `json:"question"`
	Answers  []string `json:"answers"`
}

type completedPayload struct {
	Score int       `json:"score"`
	Route app.Route `json:"route"`
}

type outboundMessage[T any] struct {
	Type    string `json:"type"`
	Payload T      `json:"payload"`
}

type errorPayload struct {
	Message string `json:"message"`
}

// ServeWS upgrades the request and runs the play loop. Messages in: answer,
// next, restart. Messages out: question, answerResult, completed, leaderboard,
// error. The correct answer index is only revealed in answerResult.
func (h *WSHandler) ServeWS(w http.ResponseWriter, r *http.Request) {
	playerName := strings.TrimSpace(r.URL.Query().Get("name"))
	if playerName == "" {
		http.Error(w, "missing name", http.StatusBadRequest)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ws upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	session, err := h.service.StartSession()
	if err != nil {
		// Empty bank: reported to the client, nothing else to play.
		_ = conn.WriteJSON(outboundMessage[errorPayload]{Type: "error", Payload: errorPayload{Message: err.Error()}})
		return
	}

	h.sendQuestion(conn, session)

	for {
		var inbound inboundMessage
		if err := conn.ReadJSON(&inbound); err != nil {
			break
		}
		switch inbound.Type {
		case "answer":
			var payload answerPayload
			if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
				h.sendError(conn, "invalid answer payload")
				continue
			}
			result, err := session.SubmitAnswer(payload.Index)
			if err != nil {
				h.sendError(conn, err.Error())
				continue
			}
			_ = conn.WriteJSON(outboundMessage[app.SubmitResult]{Type: "answerResult", Payload: result})
		case "next":
			if err := session.Advance(); err != nil {
				h.sendError(conn, err.Error())
				continue
			}
			if session.State() == app.StateCompleted {
				h.finish(r, conn, session, playerName)
				continue
			}
			h.sendQuestion(conn, session)
		case "restart":
			session.Restart()
			h.sendQuestion(conn, session)
		default:
			h.sendError(conn, "unsupported message type")
		}
	}
}

func (h *WSHandler) finish(r *http.Request, conn *websocket.Conn, session *app.Session, playerName string) {
	route, board, err := h.service.FinishSession(r.Context(), session, playerName)
	if err != nil {
		if !errors.Is(err, domain.ErrScoreAlreadySubmitted) {
			h.sendError(conn, err.Error())
			return
		}
		// Repeated completion events: report the terminal state again
		// without touching the board.
		route = app.RouteLeaderboard
		board = h.service.Leaderboard().Load(r.Context())
	}
	_ = conn.WriteJSON(outboundMessage[completedPayload]{Type: "completed", Payload: completedPayload{
		Score: session.Score(),
		Route: route,
	}})
	if route == app.RouteLeaderboard {
		_ = conn.WriteJSON(outboundMessage[domain.Leaderboard]{Type: "leaderboard", Payload: board})
	}
}

func (h *WSHandler) sendQuestion(conn *websocket.Conn, session *app.Session) {
	q, ok := session.Current()
	if !ok {
		h.sendError(conn, domain.ErrNoActiveQuestion.Error())
		return
	}
	_ = conn.WriteJSON(outboundMessage[questionPayload]{Type: "question", Payload: questionPayload{
		Index:    session.CurrentIndex(),
		Total:    session.Len(),
		Question: q.Question,
		Answers:  q.ShuffledAnswers,
	}})
}

func (h *WSHandler) sendError(conn *websocket.Conn, msg string) {
	_ = conn.WriteJSON(outboundMessage[errorPayload]{Type: "error", Payload: errorPayload{Message: msg}})
}
