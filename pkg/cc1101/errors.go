package cc1101

import "errors"

// Device errors
var (
	// ErrDeviceNotResponding indicates the identification registers did not
	// return the expected CC1101 constants
	ErrDeviceNotResponding = errors.New("device not responding")

	// ErrUnknownModulation indicates a modulation name outside the MOD_FORMAT table
	ErrUnknownModulation = errors.New("unknown modulation type")

	// ErrUnknownPacketMode indicates a packet length mode outside the LENGTH_CONFIG table
	ErrUnknownPacketMode = errors.New("unknown packet length mode")

	// ErrMalformedSyncWord indicates a sync word that is not 4 hex digits
	ErrMalformedSyncWord = errors.New("sync word must be 4 hex digits")

	// ErrEmptyPayload indicates a transmit request with no data
	ErrEmptyPayload = errors.New("empty payload")

	// ErrPayloadTooBig indicates a payload longer than the configured packet length
	ErrPayloadTooBig = errors.New("payload exceeds packet length")

	// ErrInfiniteLengthMode indicates the chip is in PKT_LEN_INFINITE mode,
	// which packet send/receive does not support
	ErrInfiniteLengthMode = errors.New("infinite packet length mode not supported")
)
