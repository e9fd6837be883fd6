package inventory

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/inventario-local/internal/domain/entity"
)

// Notifier mantiene la notificación transitoria vigente. Una notificación
// nueva reemplaza a la anterior aunque no haya expirado; la expiración se
// resuelve al consultar, sin timers.
type Notifier struct {
	mu      sync.Mutex
	current *entity.Notification
	now     func() time.Time
}

// NewNotifier construye el notificador.
func NewNotifier() *Notifier {
	return &Notifier{now: time.Now}
}

// Notify publica una notificación con la severidad indicada.
func (n *Notifier) Notify(message, severity string) entity.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	now := n.now()
	notif := entity.Notification{
		ID:        uuid.New().String(),
		Message:   message,
		Severity:  severity,
		CreatedAt: now,
		ExpiresAt: now.Add(entity.NotificationTTL),
	}
	n.current = &notif
	return notif
}

// Current devuelve la notificación vigente, o nil si no hay o ya expiró.
func (n *Notifier) Current() *entity.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.current == nil || !n.current.Active(n.now()) {
		return nil
	}
	notif := *n.current
	return &notif
}

// Dismiss descarta la notificación vigente antes de su expiración.
func (n *Notifier) Dismiss() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.current = nil
}
