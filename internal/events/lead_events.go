package events

import (
	"net/http"
	"time"

	"github.com/white/lead-management/internal/models"
	"github.com/white/lead-management/pkg/uuid"
	"go.uber.org/zap"
)

// LeadAction is the lifecycle transition an event describes
type LeadAction string

const (
	ActionLeadCreated LeadAction = "lead.created"
	ActionLeadUpdated LeadAction = "lead.updated"
	ActionLeadClosed  LeadAction = "lead.closed"
	ActionLeadDeleted LeadAction = "lead.deleted"
)

// LeadEvent is the message published for every lead write
type LeadEvent struct {
	EventID    string     `json:"event_id"`
	Timestamp  int64      `json:"timestamp"`
	Action     LeadAction `json:"action"`
	LeadID     string     `json:"lead_id"`
	SalesAgent string     `json:"sales_agent,omitempty"`
	Status     string     `json:"status,omitempty"`
	Priority   string     `json:"priority,omitempty"`
	ClosedAt   *time.Time `json:"closed_at,omitempty"`
	RequestID  string     `json:"request_id,omitempty"`
	IPAddress  string     `json:"ip_address,omitempty"`
	UserAgent  string     `json:"user_agent,omitempty"`
}

// Producer is the subset of pkg/kafka.Producer the publisher needs
type Producer interface {
	PublishJSON(topic, key string, data interface{}) error
}

// LeadPublisher publishes lead lifecycle events to Kafka. A nil publisher
// or one without a producer only logs.
type LeadPublisher struct {
	producer Producer
	topic    string
	logger   *zap.Logger
	now      func() time.Time
}

// NewLeadPublisher creates a new lead event publisher
func NewLeadPublisher(producer Producer, topic string, logger *zap.Logger) *LeadPublisher {
	if logger == nil {
		logger = zap.NewNop()
	}
	if producer != nil {
		logger.Info("lead event publisher initialized (Kafka enabled)", zap.String("topic", topic))
	} else {
		logger.Info("lead event publisher initialized (Kafka disabled - events will be logged only)")
	}
	return &LeadPublisher{
		producer: producer,
		topic:    topic,
		logger:   logger,
		now:      time.Now,
	}
}

// Publish sends an event keyed by lead id (fire-and-forget). Failures are
// logged and never returned to the caller.
func (p *LeadPublisher) Publish(event *LeadEvent) {
	if p == nil {
		return
	}
	if event.EventID == "" {
		if id, err := uuid.NewUUID(); err == nil {
			event.EventID = id
		}
	}
	if event.Timestamp == 0 {
		event.Timestamp = p.now().Unix()
	}

	p.logger.Debug("lead event",
		zap.String("action", string(event.Action)),
		zap.String("lead_id", event.LeadID),
		zap.String("event_id", event.EventID))

	if p.producer == nil {
		return
	}
	if err := p.producer.PublishJSON(p.topic, event.LeadID, event); err != nil {
		p.logger.Warn("failed to publish lead event",
			zap.String("action", string(event.Action)),
			zap.String("lead_id", event.LeadID),
			zap.Error(err))
	}
}

// PublishLead builds an event from the lead and the request that changed it
func (p *LeadPublisher) PublishLead(r *http.Request, action LeadAction, lead *models.Lead) {
	if p == nil || lead == nil {
		return
	}
	event := &LeadEvent{
		Action:     action,
		LeadID:     lead.ID.Hex(),
		SalesAgent: lead.SalesAgent.Hex(),
		Status:     string(lead.Status),
		Priority:   string(lead.Priority),
		ClosedAt:   lead.ClosedAt,
	}
	if r != nil {
		event.RequestID = r.Header.Get("X-Request-ID")
		event.IPAddress = getClientIP(r)
		event.UserAgent = r.UserAgent()
	}
	p.Publish(event)
}

// Helper to get client IP address
func getClientIP(r *http.Request) string {
	// Check X-Forwarded-For header first (for proxied requests)
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		return forwarded
	}
	if realIP := r.Header.Get("X-Real-IP"); realIP != "" {
		return realIP
	}
	return r.RemoteAddr
}
