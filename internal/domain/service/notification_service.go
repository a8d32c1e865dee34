package service

import (
	"context"
)

// NotificationService pushes appointment notifications to owner devices.
type NotificationService interface {
	// SendBatchNotification delivers the same notification to every token.
	// The data keys ride along so the app can deep-link into the
	// appointment. It reports how many deliveries succeeded and failed, and
	// which tokens the provider rejected as no longer valid so the caller
	// can deactivate those devices.
	SendBatchNotification(ctx context.Context, tokens []string, title, body string, data map[string]string) (successCount, failureCount int, invalidTokens []string, err error)
}
