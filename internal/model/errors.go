package model

import "fmt"

// FetchError reports a failed source fetch. The pipeline recovers from
// it: the source contributes an empty result and the run continues.
type FetchError struct {
	Source string
	Err    error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.Source, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// RenderError reports malformed input to the digest renderer. It is the
// only fatal error kind: nothing is delivered and the run fails.
type RenderError struct {
	Err error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render digest: %v", e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }

// DeliveryError reports one channel's failed push. Other channels are
// still attempted and the run still counts as successful.
type DeliveryError struct {
	Channel string
	Err     error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("deliver via %s: %v", e.Channel, e.Err)
}

func (e *DeliveryError) Unwrap() error { return e.Err }
