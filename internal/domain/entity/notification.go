package entity

import "time"

// Severidades de notificación.
const (
	SeveritySuccess = "success"
	SeverityWarning = "warning"
	SeverityInfo    = "info"
	SeverityDanger  = "danger"
)

// NotificationTTL tiempo de vida de una notificación antes de auto-descartarse.
const NotificationTTL = 3 * time.Second

// Notification mensaje transitorio hacia el usuario. No se persiste: vive en
// memoria hasta expirar o hasta que una notificación nueva la reemplace.
type Notification struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	Severity  string    `json:"severity"` // success | warning | info | danger
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Active indica si la notificación sigue vigente en el instante dado.
func (n Notification) Active(now time.Time) bool {
	return now.Before(n.ExpiresAt)
}
