// Package network exposes rooms over HTTP: a small JSON lobby API and the websocket
// endpoint clients play through.
package network

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"punch/match"
	"punch/protocol"
	"punch/room"
)

type Server struct {
	rooms      *room.Manager
	log        *zap.Logger
	sendBuffer int
	upgrader   websocket.Upgrader
}

// NewServer serves rooms. With anyOrigin unset the websocket upgrader only accepts
// same-origin browsers.
func NewServer(rooms *room.Manager, log *zap.Logger, sendBuffer int, anyOrigin bool) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	if sendBuffer <= 0 {
		sendBuffer = 32
	}
	s := &Server{
		rooms:      rooms,
		log:        log,
		sendBuffer: sendBuffer,
	}
	if anyOrigin {
		s.upgrader.CheckOrigin = func(r *http.Request) bool { return true }
	}
	return s
}

func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), s.accessLog())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/rooms", func(c *gin.Context) {
		c.JSON(http.StatusOK, s.rooms.ListRooms())
	})
	r.POST("/rooms", func(c *gin.Context) {
		c.JSON(http.StatusCreated, gin.H{"code": s.rooms.CreateRoom()})
	})
	r.GET("/ws", s.serveWS)
	return r
}

func (s *Server) accessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.Debug("http",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("elapsed", time.Since(start)),
		)
	}
}

func (s *Server) serveWS(c *gin.Context) {
	// Upgrade HTTP -> WebSocket
	ws, err := s.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		s.log.Warn("upgrade", zap.Error(err))
		return
	}

	// Basic timeouts + pong handling (keeps connections healthy)
	ws.SetReadLimit(maxMessageSize)
	ws.SetPongHandler(func(string) error {
		return ws.SetReadDeadline(time.Now().Add(pongWait))
	})

	conn := newWSConn(ws, s.sendBuffer)
	go conn.writeLoop()
	defer conn.Close()

	_ = ws.SetReadDeadline(time.Now().Add(helloWait))
	hello, err := readHello(ws)
	if err != nil {
		s.log.Debug("bad hello", zap.Error(err))
		s.sendError(conn, "expected hello")
		return
	}
	if hello.V != protocol.Version {
		s.sendError(conn, "unsupported protocol version")
		return
	}

	code := hello.Room
	if code == "" {
		code = c.Query("room")
	}
	if code == "" {
		code = s.rooms.CreateRoom()
	}
	rm := s.rooms.GetOrCreateRoom(code)

	reply := make(chan room.JoinResult, 1)
	if !post(rm, room.Join{Conn: conn, Name: hello.Name, Reply: reply}) {
		s.sendError(conn, "room closed")
		return
	}
	var res room.JoinResult
	select {
	case res = <-reply:
	case <-rm.Done():
		s.sendError(conn, "room closed")
		return
	}
	defer post(rm, room.Leave{PlayerID: res.PlayerID})

	log := s.log.With(zap.String("room", code), zap.String("player", res.PlayerID))
	_ = ws.SetReadDeadline(time.Now().Add(pongWait))
	for {
		_, msg, err := ws.ReadMessage()
		if err != nil {
			log.Debug("read", zap.Error(err))
			return
		}
		_ = ws.SetReadDeadline(time.Now().Add(pongWait))

		env, err := protocol.DecodeEnvelope(msg)
		if err != nil || env.T != protocol.MsgInput {
			continue
		}
		in, err := protocol.DecodePayload[protocol.Input](env)
		if err != nil {
			continue
		}
		action := match.ParseAction(in.Action)
		if action == match.ActionNone {
			continue
		}
		if !post(rm, room.Input{PlayerID: res.PlayerID, Action: action}) {
			return
		}
	}
}

func readHello(ws *websocket.Conn) (protocol.Hello, error) {
	_, msg, err := ws.ReadMessage()
	if err != nil {
		return protocol.Hello{}, err
	}
	env, err := protocol.DecodeEnvelope(msg)
	if err != nil {
		return protocol.Hello{}, err
	}
	if env.T != protocol.MsgHello {
		return protocol.Hello{}, errUnexpectedMessage(env.T)
	}
	return protocol.DecodePayload[protocol.Hello](env)
}

// post delivers cmd unless the room has stopped.
func post(rm *room.Room, cmd any) bool {
	select {
	case rm.Inbox <- cmd:
		return true
	case <-rm.Done():
		return false
	}
}

func (s *Server) sendError(conn *wsConn, msg string) {
	if b, err := protocol.Encode(protocol.MsgError, protocol.Error{Message: msg}); err == nil {
		_ = conn.Send(b)
	}
}

type errUnexpectedMessage string

func (e errUnexpectedMessage) Error() string {
	return "unexpected message " + string(e)
}
