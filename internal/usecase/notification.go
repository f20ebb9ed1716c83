package usecase

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"rotation-backend/internal/domain"
)

// PushSender is the slice of the FCM client the notifier needs.
type PushSender interface {
	IsEnabled() bool
	SendMulticast(tokens []string, title, body string, data map[string]string) error
}

// Notifier pushes rotation signal messages to registered devices. Each
// kind+subject pair has a cooldown so a persisting condition does not spam a
// push on every refresh cycle.
type Notifier struct {
	sender   PushSender
	tokens   domain.DeviceTokenRepository
	cooldown time.Duration
	log      *zap.SugaredLogger

	mu       sync.Mutex
	notified map[string]time.Time
}

func NewNotifier(sender PushSender, tokens domain.DeviceTokenRepository, cooldown time.Duration, log *zap.SugaredLogger) *Notifier {
	return &Notifier{
		sender:   sender,
		tokens:   tokens,
		cooldown: cooldown,
		log:      log,
		notified: make(map[string]time.Time),
	}
}

func (n *Notifier) Publish(signals []domain.SignalMessage) {
	if n.sender == nil || !n.sender.IsEnabled() || len(signals) == 0 {
		return
	}

	tokens, err := n.tokens.Tokens()
	if err != nil {
		n.log.Warnw("loading device tokens failed", "error", err)
		return
	}
	if len(tokens) == 0 {
		return
	}

	now := time.Now()
	for _, sig := range signals {
		key := string(sig.Kind) + ":" + sig.Subject

		n.mu.Lock()
		last, seen := n.notified[key]
		n.mu.Unlock()
		if seen && now.Sub(last) < n.cooldown {
			continue
		}

		data := map[string]string{
			"kind":    string(sig.Kind),
			"subject": sig.Subject,
		}
		if err := n.sender.SendMulticast(tokens, signalTitle(sig.Kind), sig.Text, data); err != nil {
			n.log.Warnw("push failed", "signal", key, "error", err)
			continue
		}

		n.log.Infow("signal pushed", "signal", key, "devices", len(tokens))
		n.mu.Lock()
		n.notified[key] = now
		n.mu.Unlock()
	}

	// Drop stale cooldown entries so the map does not grow unbounded.
	n.mu.Lock()
	for key, ts := range n.notified {
		if now.Sub(ts) > n.cooldown*2 {
			delete(n.notified, key)
		}
	}
	n.mu.Unlock()
}

func signalTitle(kind domain.SignalKind) string {
	switch kind {
	case domain.SignalSectorLeading:
		return "📈 Sector rotation"
	case domain.SignalSectorAbandoned:
		return "📉 Sector outflow"
	case domain.SignalAcceleration:
		return "🚀 Strong mover"
	case domain.SignalCapitulation:
		return "⚠️ Capitulation"
	default:
		return "Rotation signal"
	}
}
