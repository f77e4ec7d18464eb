package event

import (
	"fmt"

	"github.com/wagoodman/go-partybus"
	"github.com/wagoodman/go-progress"
)

const (
	typePrefix = "newtype"

	// GenerationStarted is published once per run; the value is a progress.Progressable over the packages to process.
	GenerationStarted partybus.EventType = typePrefix + "-generation-started"

	// FileGenerated is published for every file written (or found stale in check mode); the value is a GeneratedFile.
	FileGenerated partybus.EventType = typePrefix + "-file-generated"
)

// GeneratedFile describes one output file of the generator.
type GeneratedFile struct {
	Path    string
	Package string
	Types   []string
	Stale   bool
	Removed bool
}

type ErrBadPayload struct {
	Type  partybus.EventType
	Field string
	Value interface{}
}

func (e *ErrBadPayload) Error() string {
	return fmt.Sprintf("event='%s' has bad event payload field='%v': '%+v'", string(e.Type), e.Field, e.Value)
}

func newPayloadErr(t partybus.EventType, field string, value interface{}) error {
	return &ErrBadPayload{
		Type:  t,
		Field: field,
		Value: value,
	}
}

func checkEventType(actual, expected partybus.EventType) error {
	if actual != expected {
		return newPayloadErr(expected, "Type", actual)
	}
	return nil
}

func ParseGenerationStarted(e partybus.Event) (string, progress.Progressable, error) {
	if err := checkEventType(e.Type, GenerationStarted); err != nil {
		return "", nil, err
	}

	dir, ok := e.Source.(string)
	if !ok {
		return "", nil, newPayloadErr(e.Type, "Source", e.Source)
	}

	prog, ok := e.Value.(progress.Progressable)
	if !ok {
		return "", nil, newPayloadErr(e.Type, "Value", e.Value)
	}

	return dir, prog, nil
}

func ParseFileGenerated(e partybus.Event) (GeneratedFile, error) {
	if err := checkEventType(e.Type, FileGenerated); err != nil {
		return GeneratedFile{}, err
	}

	f, ok := e.Value.(GeneratedFile)
	if !ok {
		return GeneratedFile{}, newPayloadErr(e.Type, "Value", e.Value)
	}

	return f, nil
}
