package subsystems

import (
	"github.com/danmuck/minectl/internal/observability"
	"github.com/rs/zerolog/log"
)

// Purification refines delivered ore into stored gold.
type Purification struct {
	console Console
}

func NewPurification(console Console) *Purification {
	return &Purification{console: console}
}

func (p *Purification) StartProcess() {
	log.Debug().Msg("subsystems.Purification.StartProcess")
	observability.RecordSubsystemCall(IDPurification, OpStartProcess)
	p.console.emit(p.console.Messages.PurificationStarted)
}

func (p *Purification) FinishProcess() {
	log.Debug().Msg("subsystems.Purification.FinishProcess")
	observability.RecordSubsystemCall(IDPurification, OpFinishProcess)
	p.console.emit(p.console.Messages.PurificationFinished)
}

func (p *Purification) Metadata() Metadata {
	return Metadata{
		ID:          IDPurification,
		Name:        "Purification",
		Description: "Gold refining process",
	}
}

func (p *Purification) Operations() []OperationSpec {
	return []OperationSpec{
		{Name: OpStartProcess, Description: "begin refining", Idempotent: true},
		{Name: OpFinishProcess, Description: "store refined gold", Idempotent: true},
	}
}

func (p *Purification) Execute(action string, _ map[string]string) error {
	switch action {
	case OpStartProcess:
		p.StartProcess()
	case OpFinishProcess:
		p.FinishProcess()
	default:
		return unknownAction(IDPurification, action)
	}
	return nil
}
