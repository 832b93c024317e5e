// Package server wires the analyst core to a Gin JSON API.
package server

import (
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/insightedge/insightedge-backend/internal"
	"github.com/insightedge/insightedge-backend/internal/analyst"
	"github.com/insightedge/insightedge-backend/internal/provider"
	"github.com/insightedge/insightedge-backend/internal/store"
	"github.com/insightedge/insightedge-backend/internal/table"
)

// SessionHeader selects the session a request operates on. Requests
// without it bind to the default session created at startup.
const SessionHeader = "X-Session-ID"

// maxUploadBytes bounds CSV uploads. The original behavior had no guard;
// 8 MiB is the explicit limit chosen here.
const maxUploadBytes = 8 << 20

const identityWarning = "Please set your user name to continue."

// Server owns the session store and the analyst pipeline.
type Server struct {
	sessions  *store.Store
	analyst   *analyst.Analyst
	gen       provider.Generator
	log       *slog.Logger
	defaultID string
}

// New builds a Server around the given generator. A default session is
// created immediately so header-less clients work out of the box.
func New(gen provider.Generator, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	sessions := store.NewStore()
	return &Server{
		sessions:  sessions,
		analyst:   analyst.New(gen),
		gen:       gen,
		log:       log,
		defaultID: sessions.Create().ID(),
	}
}

// DefaultSessionID returns the ID of the session used when no
// SessionHeader is sent.
func (s *Server) DefaultSessionID() string { return s.defaultID }

// Router builds the Gin engine with all routes mounted.
func (s *Server) Router() *gin.Engine {
	r := gin.Default()
	r.Use(cors)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true, "uptime": time.Now().Format(time.RFC3339)})
	})
	r.GET("/api/model", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"model": s.gen.Model()})
	})
	r.POST("/api/sessions", s.handleCreateSession)
	r.POST("/api/user", s.handleSetUser)
	r.POST("/api/upload", s.handleUpload)
	r.POST("/api/chat", s.handleChat)
	r.GET("/api/history", s.handleHistory)
	r.POST("/api/insights", s.handleInsights)
	r.GET("/api/metrics", s.handleMetrics)
	r.GET("/api/export", s.handleExport)

	return r
}

func cors(c *gin.Context) {
	c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
	c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, "+SessionHeader)
	c.Writer.Header().Set("Access-Control-Allow-Methods", "*")
	if c.Request.Method == http.MethodOptions {
		c.AbortWithStatus(http.StatusNoContent)
		return
	}
	c.Next()
}

// session resolves the request's session. A missing header means the
// default session; an unknown ID is a 404 and aborts the request.
func (s *Server) session(c *gin.Context) (*store.Session, bool) {
	id := c.GetHeader(SessionHeader)
	if id == "" {
		id = s.defaultID
	}
	sess, ok := s.sessions.Get(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown session"})
		return nil, false
	}
	return sess, true
}

// identified gates every action other than set-user behind a non-empty
// user label. A bare session gets a warning and no state changes.
func (s *Server) identified(c *gin.Context) (*store.Session, bool) {
	sess, ok := s.session(c)
	if !ok {
		return nil, false
	}
	if sess.User() == "" {
		c.JSON(http.StatusPreconditionFailed, gin.H{
			"error":   "identity required",
			"warning": identityWarning,
		})
		return nil, false
	}
	return sess, true
}

func (s *Server) handleCreateSession(c *gin.Context) {
	sess := s.sessions.Create()
	c.JSON(http.StatusOK, internal.CreateSessionResponse{SessionID: sess.ID()})
}

func (s *Server) handleSetUser(c *gin.Context) {
	sess, ok := s.session(c)
	if !ok {
		return
	}
	var req internal.SetUserRequest
	if err := c.BindJSON(&req); err != nil || strings.TrimSpace(req.Name) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name required"})
		return
	}
	name := strings.TrimSpace(req.Name)
	sess.SetUser(name)
	c.JSON(http.StatusOK, internal.SetUserResponse{User: name})
}

func (s *Server) handleUpload(c *gin.Context) {
	sess, ok := s.identified(c)
	if !ok {
		return
	}
	raw, err := s.uploadBytes(c)
	if err != nil {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "upload too large", "max_bytes": maxUploadBytes})
		return
	}
	tbl, err := table.Ingest(raw)
	if err != nil {
		// Prior table, if any, stays in place.
		s.log.Warn("CSV upload failed", "session", sess.ID(), "err", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	sess.SetTable(tbl)
	c.JSON(http.StatusOK, internal.UploadResponse{Rows: tbl.Rows(), Columns: tbl.ColumnNames()})
}

// uploadBytes accepts either a multipart "file" field or a raw request
// body, whichever the client sent.
func (s *Server) uploadBytes(c *gin.Context) ([]byte, error) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadBytes)
	if f, err := c.FormFile("file"); err == nil {
		src, err := f.Open()
		if err != nil {
			return nil, err
		}
		defer src.Close()
		return io.ReadAll(src)
	}
	return io.ReadAll(c.Request.Body)
}

func (s *Server) handleChat(c *gin.Context) {
	sess, ok := s.identified(c)
	if !ok {
		return
	}
	var req internal.ChatRequest
	if err := c.BindJSON(&req); err != nil || req.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message required"})
		return
	}

	reply := s.analyst.Chat(c.Request.Context(), sess.User(), req.Message)

	// Every invocation is recorded, error text included.
	sess.AppendExchange(internal.Exchange{UserMessage: req.Message, AIResponse: reply})

	c.JSON(http.StatusOK, internal.ChatResponse{Reply: reply, Model: s.gen.Model()})
}

func (s *Server) handleHistory(c *gin.Context) {
	sess, ok := s.identified(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, internal.ChatHistory{Exchanges: sess.History()})
}

func (s *Server) handleInsights(c *gin.Context) {
	sess, ok := s.identified(c)
	if !ok {
		return
	}
	insights := s.analyst.Insights(c.Request.Context(), sess.Table(), sess.User())
	c.JSON(http.StatusOK, internal.InsightsResponse{Insights: insights})
}

func (s *Server) handleMetrics(c *gin.Context) {
	sess, ok := s.identified(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, table.ComputeMetrics(sess.Table()))
}

func (s *Server) handleExport(c *gin.Context) {
	sess, ok := s.identified(c)
	if !ok {
		return
	}
	out, err := sess.Table().WriteCSV()
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"warning": "No data uploaded yet."})
		return
	}
	c.Header("Content-Disposition", `attachment; filename="exported_data.csv"`)
	c.Data(http.StatusOK, "text/csv", out)
}
