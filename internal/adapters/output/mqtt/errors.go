package mqtt

import "errors"

var (
	// ErrConnectionFailed indicates the initial broker connection failed
	ErrConnectionFailed = errors.New("mqtt: connection failed")

	// ErrNotConnected indicates a publish was attempted while disconnected
	ErrNotConnected = errors.New("mqtt: not connected")

	// ErrPublishFailed indicates the broker did not acknowledge a publish
	ErrPublishFailed = errors.New("mqtt: publish failed")
)
