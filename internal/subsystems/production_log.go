package subsystems

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/danmuck/minectl/internal/observability"
	"github.com/rs/zerolog/log"
)

// ProductionLog records processed quantities.
type ProductionLog struct {
	console Console
}

func NewProductionLog(console Console) *ProductionLog {
	return &ProductionLog{console: console}
}

// Record emits the production message for quantity kilograms. Any value,
// including zero and negatives, is written as given.
func (l *ProductionLog) Record(quantity float64) {
	log.Debug().Float64("quantity", quantity).Msg("subsystems.ProductionLog.Record")
	observability.RecordSubsystemCall(IDProductionLog, OpRecord)
	observability.RecordProduction(quantity)
	l.console.emit(l.console.Messages.Record(quantity))
}

func (l *ProductionLog) Metadata() Metadata {
	return Metadata{
		ID:          IDProductionLog,
		Name:        "Production Log",
		Description: "Records kilograms of processed gold",
	}
}

func (l *ProductionLog) Operations() []OperationSpec {
	return []OperationSpec{
		{Name: OpRecord, Description: "record processed quantity (args: quantity)", Idempotent: false},
	}
}

func (l *ProductionLog) Execute(action string, args map[string]string) error {
	if action != OpRecord {
		return unknownAction(IDProductionLog, action)
	}
	quantity, err := ParseQuantity(args["quantity"])
	if err != nil {
		return err
	}
	l.Record(quantity)
	return nil
}

// ParseQuantity reads a decimal quantity from text.
func ParseQuantity(raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, fmt.Errorf("%w: quantity is required", ErrInvalidQuantity)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidQuantity, raw)
	}
	return v, nil
}
