package fcm

import (
	"context"
	"fmt"
	"os"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

// Client wraps Firebase Cloud Messaging. With no credentials configured the
// client stays disabled and every send is a no-op, so the screener runs fine
// without push delivery.
type Client struct {
	client *messaging.Client
	log    *zap.SugaredLogger
}

// NewClient initializes FCM from a credentials file path or a raw JSON blob.
func NewClient(credPath, credJSON string, log *zap.SugaredLogger) (*Client, error) {
	ctx := context.Background()

	if credPath == "" {
		if credJSON == "" {
			log.Info("no Firebase credentials configured, push notifications disabled")
			return &Client{log: log}, nil
		}

		tmpFile, err := os.CreateTemp("", "firebase-credentials-*.json")
		if err != nil {
			return nil, fmt.Errorf("failed to create temp file: %w", err)
		}
		defer tmpFile.Close()

		if _, err := tmpFile.Write([]byte(credJSON)); err != nil {
			return nil, fmt.Errorf("failed to write credentials: %w", err)
		}
		credPath = tmpFile.Name()
	}

	opt := option.WithCredentialsFile(credPath)
	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		return nil, fmt.Errorf("error initializing firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("error getting messaging client: %w", err)
	}

	log.Info("Firebase Cloud Messaging initialized")
	return &Client{client: client, log: log}, nil
}

// IsEnabled reports whether push delivery is configured.
func (c *Client) IsEnabled() bool {
	return c.client != nil
}

// SendMulticast pushes one notification to up to 500 device tokens.
func (c *Client) SendMulticast(tokens []string, title, body string, data map[string]string) error {
	if c.client == nil || len(tokens) == 0 {
		return nil
	}

	msg := &messaging.MulticastMessage{
		Tokens: tokens,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	resp, err := c.client.SendEachForMulticast(context.Background(), msg)
	if err != nil {
		return fmt.Errorf("fcm multicast failed: %w", err)
	}
	if resp.FailureCount > 0 {
		c.log.Warnw("some push deliveries failed",
			"success", resp.SuccessCount, "failure", resp.FailureCount)
	}
	return nil
}
