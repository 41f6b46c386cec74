package types

import "time"

// AlertSeverity grades how urgent a safety alert is.
type AlertSeverity string

const (
	SeverityLow      AlertSeverity = "low"
	SeverityMedium   AlertSeverity = "medium"
	SeverityHigh     AlertSeverity = "high"
	SeverityCritical AlertSeverity = "critical"
)

// AlertStatus tracks the lifecycle of a safety alert.
type AlertStatus string

const (
	AlertStatusActive     AlertStatus = "active"
	AlertStatusResolved   AlertStatus = "resolved"
	AlertStatusFalseAlarm AlertStatus = "false_alarm"
)

// Alert is a neighbourhood safety report.
type Alert struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	AlertType   string        `json:"alertType"`
	Location    string        `json:"location"`
	Latitude    *float64      `json:"latitude,omitempty"`
	Longitude   *float64      `json:"longitude,omitempty"`
	Severity    AlertSeverity `json:"severity"`
	Status      AlertStatus   `json:"status"`
	AuthorID    string        `json:"authorId"`
	CreatedAt   time.Time     `json:"createdAt"`
	ResolvedAt  *time.Time    `json:"resolvedAt,omitempty"`
}

// AlertCreate is the request payload for raising an alert.
type AlertCreate struct {
	Title       string        `json:"title" binding:"required"`
	Description string        `json:"description" binding:"required"`
	AlertType   string        `json:"alertType" binding:"required"`
	Location    string        `json:"location" binding:"required"`
	Latitude    *float64      `json:"latitude"`
	Longitude   *float64      `json:"longitude"`
	Severity    AlertSeverity `json:"severity"`
}

// AlertUpdate carries a partial alert update. Only non-nil fields are applied.
type AlertUpdate struct {
	Title       *string        `json:"title,omitempty"`
	Description *string        `json:"description,omitempty"`
	AlertType   *string        `json:"alertType,omitempty"`
	Location    *string        `json:"location,omitempty"`
	Latitude    *float64       `json:"latitude,omitempty"`
	Longitude   *float64       `json:"longitude,omitempty"`
	Severity    *AlertSeverity `json:"severity,omitempty"`
	Status      *AlertStatus   `json:"status,omitempty"`
}

// AlertFilter restricts ListAlerts results.
type AlertFilter struct {
	AlertType string
	Severity  AlertSeverity
	Status    AlertStatus
}
