package transport

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"golang.org/x/time/rate"

	"github.com/spf13/viper"

	"github.com/tutorlink/session-gateway/gateway"
	interrors "github.com/tutorlink/session-gateway/internal/errors"
	"github.com/tutorlink/session-gateway/internal/log"
	"github.com/tutorlink/session-gateway/internal/token"
	"github.com/tutorlink/session-gateway/internal/validation"
	"github.com/tutorlink/session-gateway/transcripts"
	"github.com/tutorlink/session-gateway/transcripts/relay"
)

const (
	defaultSessionParticipants = 2
)

type Config struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	TokenRPS       float64  `mapstructure:"token_rps"`
	TokenBurst     int      `mapstructure:"token_burst"`
}

func Setup(v *viper.Viper, prefix string) {
	p := func(key string) string { return prefix + "." + key }

	v.SetDefault(p("allowed_origins"), []string{"*"})
	v.SetDefault(p("token_rps"), 10.0)
	v.SetDefault(p("token_burst"), 20)
}

type Router struct {
	broker      gateway.SessionBroker
	transcriber transcripts.Manager
	hub         *relay.Hub
	engine      *gin.Engine
	logger      *log.Logger
}

func NewRouter(
	cfg *Config,
	broker gateway.SessionBroker,
	transcriber transcripts.Manager,
	hub *relay.Hub,
	logger *log.Logger,
) *Router {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())

	// Add OpenTelemetry middleware for automatic HTTP tracing
	engine.Use(otelgin.Middleware("session-gateway"))

	engine.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	r := &Router{
		broker:      broker,
		transcriber: transcriber,
		hub:         hub,
		engine:      engine,
		logger:      logger,
	}

	// Request logging middleware
	r.engine.Use(func(c *gin.Context) {
		r.logger.Info("Incoming request",
			log.String("method", c.Request.Method),
			log.String("url", c.Request.URL.String()))
		c.Next()
	})

	r.setupRoutes(cfg)
	return r
}

func (r *Router) Handler() http.Handler {
	return r.engine
}

func (r *Router) setupRoutes(cfg *Config) {
	// Room management routes
	r.engine.GET("/api/rooms", r.listRooms)
	r.engine.POST("/api/rooms", r.createRoom)
	r.engine.DELETE("/api/rooms/:roomId", r.deleteRoom)
	r.engine.GET("/api/rooms/:roomId/capacity", r.checkCapacity)

	// Credential routes, throttled per client
	limited := r.engine.Group("/api", rateLimitMiddleware(rate.Limit(cfg.TokenRPS), cfg.TokenBurst))
	limited.POST("/token", r.issueToken)
	limited.POST("/sessions", r.startSession)

	// Transcription control and relay
	r.engine.POST("/api/transcription/start", r.startTranscription)
	r.engine.POST("/api/transcription/stop", r.stopTranscription)
	r.engine.GET("/ws/rooms/:roomId/transcripts", r.transcriptFeed)

	// Health check
	r.engine.GET("/health", r.healthCheck)
}

func (r *Router) listRooms(c *gin.Context) {
	rooms, err := r.broker.ListRooms(c.Request.Context())
	if err != nil {
		r.logger.Error("Failed to list rooms", log.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"status": "error",
			"error":  "Failed to list rooms",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"rooms":  rooms,
		"count":  len(rooms),
	})
}

func (r *Router) createRoom(c *gin.Context) {
	var req CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"error":   "Validation failed",
			"details": validation.FormatValidationError(err),
		})
		return
	}

	room, err := r.broker.CreateRoom(c.Request.Context(), &gateway.CreateRoomRequest{
		Name:            req.Room,
		EmptyTimeout:    req.EmptyTimeout,
		MaxParticipants: req.MaxParticipants,
		Metadata:        req.Metadata,
	})
	if err != nil {
		r.logger.Error("Failed to create room", log.String("room", req.Room), log.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"status": "error",
			"error":  "Failed to create room " + req.Room,
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Room " + room.Name + " created successfully",
		"room":    room,
	})
}

func (r *Router) deleteRoom(c *gin.Context) {
	var req RoomURIRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"error":   "Validation failed",
			"details": validation.FormatValidationError(err),
		})
		return
	}

	alreadyGone, err := r.broker.DeleteRoom(c.Request.Context(), req.RoomID)
	if err != nil {
		r.logger.Error("Failed to delete room", log.String("room", req.RoomID), log.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"status": "error",
			"error":  "Failed to delete room " + req.RoomID,
		})
		return
	}

	message := "Room " + req.RoomID + " deleted successfully"
	if alreadyGone {
		message = "Room " + req.RoomID + " already deleted"
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": message,
	})
}

func (r *Router) checkCapacity(c *gin.Context) {
	var req RoomURIRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"error":   "Validation failed",
			"details": validation.FormatValidationError(err),
		})
		return
	}

	decision, err := r.broker.CheckCapacity(c.Request.Context(), req.RoomID)
	if err != nil {
		r.logger.Error("Capacity check failed", log.String("room", req.RoomID), log.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":   "error",
			"error":    "Failed to check room capacity",
			"can_join": false,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":               "success",
		"room":                 req.RoomID,
		"can_join":             decision.CanJoin,
		"current_participants": decision.CurrentParticipants,
		"max_participants":     decision.MaxParticipants,
	})
}

func (r *Router) issueToken(c *gin.Context) {
	var req TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"error":   "identity and room are required",
			"details": validation.FormatValidationError(err),
		})
		return
	}

	resp, err := r.broker.JoinSession(c.Request.Context(), req.Room, req.Identity, req.Name)
	if err != nil {
		var missingErr *gateway.MissingArgumentError
		if errors.As(err, &missingErr) {
			c.JSON(http.StatusBadRequest, gin.H{
				"status": "error",
				"error":  err.Error(),
			})
			return
		}
		r.logger.Error("Failed to issue token", log.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"status": "error",
			"error":  "Failed to generate token",
		})
		return
	}

	// a placeholder would let the client attempt a join that cannot work
	if token.IsPlaceholder(resp.Token) {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status": "error",
			"error":  "Failed to generate valid token: service configuration incomplete",
		})
		return
	}

	out := gin.H{
		"status":   "success",
		"token":    resp.Token,
		"identity": req.Identity,
		"room":     req.Room,
	}
	if req.Name != "" {
		out["name"] = req.Name
	}
	c.JSON(http.StatusOK, out)
}

func (r *Router) startSession(c *gin.Context) {
	var req StartSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"error":   "Validation failed",
			"details": validation.FormatValidationError(err),
		})
		return
	}

	maxParticipants := req.MaxParticipants
	if maxParticipants == 0 {
		maxParticipants = defaultSessionParticipants
	}

	resp, err := r.broker.StartSession(c.Request.Context(), req.Identity, req.Name, maxParticipants)
	if err != nil {
		var createErr *gateway.RoomCreationFailedError
		if errors.As(err, &createErr) {
			r.logger.Error("Failed to start session", log.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{
				"status": "error",
				"error":  "Failed to create room for session",
			})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{
			"status": "error",
			"error":  err.Error(),
		})
		return
	}

	if token.IsPlaceholder(resp.Token) {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status": "error",
			"error":  "Failed to generate valid token: service configuration incomplete",
			"room":   resp.RoomName,
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":   "success",
		"room":     resp.RoomName,
		"token":    resp.Token,
		"identity": req.Identity,
	})
}

func (r *Router) startTranscription(c *gin.Context) {
	var req TranscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"error":   "Validation failed",
			"details": validation.FormatValidationError(err),
		})
		return
	}

	if err := r.transcriber.StartSession(c.Request.Context(), req.RoomName); err != nil {
		switch {
		case interrors.Is(err, transcripts.ErrSessionExists):
			c.JSON(http.StatusConflict, gin.H{
				"status": "error",
				"error":  "Transcription already running for room " + req.RoomName,
			})
		case interrors.Is(err, transcripts.ErrSessionLimit):
			c.JSON(http.StatusTooManyRequests, gin.H{
				"status": "error",
				"error":  "Too many transcription sessions",
			})
		default:
			r.logger.Error("Failed to start transcription",
				log.String("room", req.RoomName), log.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{
				"status": "error",
				"error":  "Failed to start transcription",
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Transcription started",
		"room":    req.RoomName,
	})
}

func (r *Router) stopTranscription(c *gin.Context) {
	var req TranscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"error":   "Validation failed",
			"details": validation.FormatValidationError(err),
		})
		return
	}

	if err := r.transcriber.StopSession(req.RoomName); err != nil {
		if interrors.Is(err, transcripts.ErrNoSession) {
			c.JSON(http.StatusNotFound, gin.H{
				"status": "error",
				"error":  "No transcription running for room " + req.RoomName,
			})
			return
		}
		r.logger.Error("Failed to stop transcription",
			log.String("room", req.RoomName), log.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"status": "error",
			"error":  "Failed to stop transcription",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Transcription stopped",
		"room":    req.RoomName,
	})
}

func (r *Router) transcriptFeed(c *gin.Context) {
	var req RoomURIRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"error":   "Validation failed",
			"details": validation.FormatValidationError(err),
		})
		return
	}

	r.hub.ServeRoom(c.Writer, c.Request, req.RoomID)
}

func (r *Router) healthCheck(c *gin.Context) {
	report := r.broker.Health(c.Request.Context())

	status := "healthy"
	httpStatus := http.StatusOK
	if !report.Healthy {
		status = "unhealthy"
		httpStatus = http.StatusInternalServerError
	}

	c.JSON(httpStatus, gin.H{
		"status":       status,
		"service_type": report.ServiceKind,
		"rooms_count":  report.RoomsCount,
		"timestamp":    time.Now().Unix(),
	})
}
