package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"rotation-backend/internal/domain"
	"rotation-backend/internal/repository"
)

type fakeSender struct {
	enabled bool
	sent    []string // bodies, in order
}

func (f *fakeSender) IsEnabled() bool { return f.enabled }

func (f *fakeSender) SendMulticast(tokens []string, title, body string, data map[string]string) error {
	f.sent = append(f.sent, body)
	return nil
}

func leadingSignal() domain.SignalMessage {
	return domain.SignalMessage{
		Kind:    domain.SignalSectorLeading,
		Subject: "L1",
		Text:    "L1 sector clearly leading rotation",
	}
}

func TestNotifier_CooldownSuppressesRepeats(t *testing.T) {
	sender := &fakeSender{enabled: true}
	tokens := repository.NewInMemoryTokenRepository()
	require.NoError(t, tokens.Register("tok-1", "android"))

	n := NewNotifier(sender, tokens, time.Hour, zap.NewNop().Sugar())

	n.Publish([]domain.SignalMessage{leadingSignal()})
	n.Publish([]domain.SignalMessage{leadingSignal()})

	// Same kind+subject inside the cooldown window: only the first goes out.
	assert.Len(t, sender.sent, 1)
}

func TestNotifier_DistinctSubjectsBothSent(t *testing.T) {
	sender := &fakeSender{enabled: true}
	tokens := repository.NewInMemoryTokenRepository()
	require.NoError(t, tokens.Register("tok-1", "android"))

	n := NewNotifier(sender, tokens, time.Hour, zap.NewNop().Sugar())
	n.Publish([]domain.SignalMessage{
		{Kind: domain.SignalAcceleration, Subject: "SOL", Text: "SOL accelerating"},
		{Kind: domain.SignalCapitulation, Subject: "UNI", Text: "UNI in capitulation"},
	})

	assert.Len(t, sender.sent, 2)
}

func TestNotifier_NoTokensNoSend(t *testing.T) {
	sender := &fakeSender{enabled: true}
	n := NewNotifier(sender, repository.NewInMemoryTokenRepository(), time.Hour, zap.NewNop().Sugar())

	n.Publish([]domain.SignalMessage{leadingSignal()})
	assert.Empty(t, sender.sent)
}

func TestNotifier_DisabledSenderNoSend(t *testing.T) {
	sender := &fakeSender{enabled: false}
	tokens := repository.NewInMemoryTokenRepository()
	require.NoError(t, tokens.Register("tok-1", "android"))

	n := NewNotifier(sender, tokens, time.Hour, zap.NewNop().Sugar())
	n.Publish([]domain.SignalMessage{leadingSignal()})
	assert.Empty(t, sender.sent)
}
