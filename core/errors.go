package core

import "fmt"

// TransportError is a network or HTTP-status failure reaching a version
// source. It is never retried; callers wanting resilience must wrap the
// client.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("request to %s failed: %s", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// DecodeError is a malformed response body from an otherwise reachable
// source.
type DecodeError struct {
	URL string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding response from %s failed: %s", e.URL, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// NoStableVersionError means the game feed listed no stable Minecraft
// version.
type NoStableVersionError struct{}

func (e *NoStableVersionError) Error() string {
	return "no stable Minecraft versions (???)"
}

// NoLoaderError means every listed loader version carried a pre-release
// tag.
type NoLoaderError struct{}

func (e *NoLoaderError) Error() string {
	return "no loaders (???)"
}

// NoMappingsError means no mappings exist for the given Minecraft version.
type NoMappingsError struct {
	Minecraft string
}

func (e *NoMappingsError) Error() string {
	return fmt.Sprintf("no mappings compatible with Minecraft version %s", e.Minecraft)
}

// NoLoomError means the loom package lists no published versions.
type NoLoomError struct{}

func (e *NoLoomError) Error() string {
	return "no loom versions (???)"
}
