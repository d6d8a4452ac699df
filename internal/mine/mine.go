package mine

import (
	"io"

	"github.com/danmuck/minectl/internal/messages"
	"github.com/danmuck/minectl/internal/observability"
	"github.com/danmuck/minectl/internal/subsystems"
	"github.com/rs/zerolog/log"
)

// Mine is the facade over the extraction, transport, purification and
// production log subsystems.
type Mine struct {
	extraction    *subsystems.Extraction
	transport     *subsystems.Transport
	purification  *subsystems.Purification
	productionLog *subsystems.ProductionLog

	registry *subsystems.Registry
}

// New builds a mine whose subsystems write status lines to out using catalog.
func New(out io.Writer, catalog messages.Catalog) *Mine {
	console := subsystems.NewConsole(out, catalog)
	m := &Mine{
		extraction:    subsystems.NewExtraction(console),
		transport:     subsystems.NewTransport(console),
		purification:  subsystems.NewPurification(console),
		productionLog: subsystems.NewProductionLog(console),
		registry:      subsystems.NewRegistry(),
	}
	for _, s := range []subsystems.Subsystem{m.extraction, m.transport, m.purification, m.productionLog} {
		// Built-in metadata is static and valid.
		if err := m.registry.Register(s); err != nil {
			panic(err)
		}
	}
	return m
}

// NewDefault builds a mine with the English catalog.
func NewDefault(out io.Writer) *Mine {
	return New(out, messages.Default())
}

// Operate runs the mining sequence once and records quantity kilograms.
func (m *Mine) Operate(quantity float64) {
	log.Debug().Float64("quantity", quantity).Msg("mine.Mine.Operate")
	m.extraction.Start()
	m.transport.Load()
	m.transport.Unload()
	m.purification.StartProcess()
	m.purification.FinishProcess()
	m.productionLog.Record(quantity)
	m.extraction.Stop()
	observability.RecordMineOperation()
}

// Execute runs a single operation on one of the mine's subsystems.
func (m *Mine) Execute(subsystemID, action string, args map[string]string) error {
	log.Debug().Str("subsystem", subsystemID).Str("action", action).Msg("mine.Mine.Execute")
	return m.registry.Execute(subsystemID, action, args)
}

// Describe lists the mine's subsystems ordered by id.
func (m *Mine) Describe() []subsystems.Descriptor {
	return m.registry.Describe()
}
