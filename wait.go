package iyzisub

import (
	"context"
	"fmt"
	"time"
)

// isTerminalStatus reports whether a subscription can no longer leave the
// given status on its own.
func isTerminalStatus(status SubscriptionStatus) bool {
	switch status {
	case SubscriptionStatusCancelled, SubscriptionStatusExpired, SubscriptionStatusUpgraded:
		return true
	}
	return false
}

// WaitForStatus polls a subscription until it reaches the target status.
// It returns the subscription in that status, or an error when the wait
// times out or the subscription settles in a terminal status the target
// can no longer follow.
//
// Payment processing is asynchronous on the remote side, so a subscription
// initialized as PENDING may take several seconds to become ACTIVE.
//
// Example:
//
//	sub, err := client.Subscriptions.WaitForStatus(ctx, ref,
//	    iyzisub.SubscriptionStatusActive,
//	    iyzisub.WithWaitTimeout(30*time.Second),
//	    iyzisub.WithPollInterval(2*time.Second),
//	)
func (s *SubscriptionsService) WaitForStatus(ctx context.Context, subscriptionReferenceCode string, target SubscriptionStatus, opts ...WaitOption) (*Subscription, error) {
	if subscriptionReferenceCode == "" {
		return nil, fmt.Errorf("subscription reference code is required")
	}

	cfg := &waitConfig{
		timeout:      defaultWaitTimeout,
		pollInterval: defaultPollInterval,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.timeout)
	defer cancel()

	// Check once before waiting, the subscription may already be there.
	sub, err := s.Retrieve(ctx, subscriptionReferenceCode)
	if err != nil {
		return nil, err
	}
	switch {
	case sub.SubscriptionStatus == target:
		return sub, nil
	case isTerminalStatus(sub.SubscriptionStatus):
		return nil, fmt.Errorf("subscription %s is %s and cannot reach %s",
			subscriptionReferenceCode, sub.SubscriptionStatus, target)
	}

	ticker := time.NewTicker(cfg.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
			sub, err := s.Retrieve(ctx, subscriptionReferenceCode)
			if err != nil {
				return nil, err
			}
			switch {
			case sub.SubscriptionStatus == target:
				return sub, nil
			case isTerminalStatus(sub.SubscriptionStatus):
				return nil, fmt.Errorf("subscription %s is %s and cannot reach %s",
					subscriptionReferenceCode, sub.SubscriptionStatus, target)
			}
		}
	}
}
