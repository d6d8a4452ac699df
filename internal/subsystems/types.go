package subsystems

import (
	"errors"
	"fmt"
	"io"

	"github.com/danmuck/minectl/internal/messages"
)

const (
	IDExtraction    = "extraction"
	IDTransport     = "transport"
	IDPurification  = "purification"
	IDProductionLog = "production_log"
)

const (
	OpStart         = "start"
	OpStop          = "stop"
	OpLoad          = "load"
	OpUnload        = "unload"
	OpStartProcess  = "start_process"
	OpFinishProcess = "finish_process"
	OpRecord        = "record"
)

var (
	ErrUnknownAction    = errors.New("unknown subsystem action")
	ErrInvalidQuantity  = errors.New("invalid quantity")
	ErrUnknownSubsystem = errors.New("unknown subsystem")
)

// Metadata is the identity and display data of a subsystem.
type Metadata struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// OperationSpec describes one supported subsystem action.
type OperationSpec struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Idempotent  bool   `json:"idempotent"`
}

// Subsystem is the dispatch boundary used for single-operation calls.
type Subsystem interface {
	Metadata() Metadata
	Operations() []OperationSpec
	Execute(action string, args map[string]string) error
}

// Console is the status output shared by the stages of one mine.
type Console struct {
	Out      io.Writer
	Messages messages.Catalog
}

// NewConsole binds an output writer to a message catalog.
func NewConsole(out io.Writer, catalog messages.Catalog) Console {
	return Console{Out: out, Messages: catalog}
}

// emit writes one status line. Write errors are dropped; stage
// operations never fail.
func (c Console) emit(line string) {
	if c.Out == nil {
		return
	}
	_, _ = fmt.Fprintln(c.Out, line)
}

func unknownAction(id, action string) error {
	return fmt.Errorf("%w: %s.%s", ErrUnknownAction, id, action)
}
