package setting

import "errors"

var (
	// ErrInvalidDataRegion is returned for an unknown data region
	ErrInvalidDataRegion = errors.New("invalid data region")

	// ErrInvalidSamplingProfile is returned for an unknown sampling profile
	ErrInvalidSamplingProfile = errors.New("invalid sampling profile")

	// ErrInvalidNotificationChannel is returned for an unknown channel
	ErrInvalidNotificationChannel = errors.New("invalid notification channel")

	// ErrWebhookURLRequired is returned when the webhook channel is enabled
	// without a webhook URL
	ErrWebhookURLRequired = errors.New("webhook URL is required for the webhook channel")
)
