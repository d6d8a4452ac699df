package subsystems

import (
	"github.com/danmuck/minectl/internal/observability"
	"github.com/rs/zerolog/log"
)

// Transport moves ore between extraction and purification. It does not
// enforce load/unload ordering.
type Transport struct {
	console Console
}

func NewTransport(console Console) *Transport {
	return &Transport{console: console}
}

func (t *Transport) Load() {
	log.Debug().Msg("subsystems.Transport.Load")
	observability.RecordSubsystemCall(IDTransport, OpLoad)
	t.console.emit(t.console.Messages.TransportLoaded)
}

func (t *Transport) Unload() {
	log.Debug().Msg("subsystems.Transport.Unload")
	observability.RecordSubsystemCall(IDTransport, OpUnload)
	t.console.emit(t.console.Messages.TransportUnloaded)
}

func (t *Transport) Metadata() Metadata {
	return Metadata{
		ID:          IDTransport,
		Name:        "Transport",
		Description: "Trucks carrying ore to purification",
	}
}

func (t *Transport) Operations() []OperationSpec {
	return []OperationSpec{
		{Name: OpLoad, Description: "load trucks with ore", Idempotent: true},
		{Name: OpUnload, Description: "unload ore at purification", Idempotent: true},
	}
}

func (t *Transport) Execute(action string, _ map[string]string) error {
	switch action {
	case OpLoad:
		t.Load()
	case OpUnload:
		t.Unload()
	default:
		return unknownAction(IDTransport, action)
	}
	return nil
}
