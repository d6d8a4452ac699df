package subsystems

import (
	"github.com/danmuck/minectl/internal/observability"
	"github.com/rs/zerolog/log"
)

// Extraction runs the mining machines.
type Extraction struct {
	console Console
}

func NewExtraction(console Console) *Extraction {
	return &Extraction{console: console}
}

// Start signals that extraction machinery is running.
func (e *Extraction) Start() {
	log.Debug().Msg("subsystems.Extraction.Start")
	observability.RecordSubsystemCall(IDExtraction, OpStart)
	e.console.emit(e.console.Messages.ExtractionStarted)
}

// Stop signals that extraction machinery has shut down.
func (e *Extraction) Stop() {
	log.Debug().Msg("subsystems.Extraction.Stop")
	observability.RecordSubsystemCall(IDExtraction, OpStop)
	e.console.emit(e.console.Messages.ExtractionStopped)
}

func (e *Extraction) Metadata() Metadata {
	return Metadata{
		ID:          IDExtraction,
		Name:        "Extraction",
		Description: "Mining machines that extract ore",
	}
}

func (e *Extraction) Operations() []OperationSpec {
	return []OperationSpec{
		{Name: OpStart, Description: "start extraction machines", Idempotent: true},
		{Name: OpStop, Description: "stop extraction machines", Idempotent: true},
	}
}

func (e *Extraction) Execute(action string, _ map[string]string) error {
	switch action {
	case OpStart:
		e.Start()
	case OpStop:
		e.Stop()
	default:
		return unknownAction(IDExtraction, action)
	}
	return nil
}
