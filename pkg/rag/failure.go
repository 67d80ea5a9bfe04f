package rag

import (
	"errors"
	"fmt"
)

// ErrComponentsUnavailable means a required collaborator (generator, embedder,
// drug registry or passage index) was not initialized, so no question can be answered.
var ErrComponentsUnavailable = errors.New("chat components unavailable")

// FailureKind names the collaborator whose error a stage absorbed.
type FailureKind string

const (
	FailureGenerator FailureKind = "generator"
	FailureEmbedder  FailureKind = "embedder"
	FailureRegistry  FailureKind = "registry"
	FailureIndex     FailureKind = "index"
	FailureProfile   FailureKind = "profile"
	FailureSession   FailureKind = "session"
)

// Failure is a collaborator error that a stage replaced with its default
// result. It is reported to the caller rather than raised.
type Failure struct {
	Stage string
	Kind  FailureKind
	Err   error
}

func (f Failure) Error() string {
	return fmt.Sprintf("%s: %s failure: %v", f.Stage, f.Kind, f.Err)
}

func (f Failure) Unwrap() error {
	return f.Err
}

// LogDetails renders the failure for structured logging.
func (f Failure) LogDetails() map[string]interface{} {
	return map[string]interface{}{
		"stage": f.Stage,
		"kind":  string(f.Kind),
		"error": f.Err.Error(),
	}
}
