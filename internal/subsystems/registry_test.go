package subsystems

import (
	"errors"
	"io"
	"reflect"
	"testing"

	"github.com/danmuck/minectl/internal/messages"
	"github.com/danmuck/minectl/internal/testutil/testlog"
)

type fakeSubsystem struct {
	meta  Metadata
	calls []string
}

func (f *fakeSubsystem) Metadata() Metadata {
	return f.meta
}

func (f *fakeSubsystem) Operations() []OperationSpec {
	return []OperationSpec{{Name: "ping", Description: "fake ping", Idempotent: true}}
}

func (f *fakeSubsystem) Execute(action string, args map[string]string) error {
	f.calls = append(f.calls, action)
	return nil
}

func TestRegisterResolveAndDuplicate(t *testing.T) {
	testlog.Start(t)
	r := NewRegistry()
	s := &fakeSubsystem{meta: Metadata{ID: "stage.fake", Name: "Fake", Description: "fake stage"}}

	if err := r.Register(s); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := r.Register(s); !errors.Is(err, ErrSubsystemExists) {
		t.Fatalf("expected ErrSubsystemExists, got %v", err)
	}
	got, ok := r.Resolve("stage.fake")
	if !ok || got.Metadata().ID != "stage.fake" {
		t.Fatalf("resolve failed: ok=%v", ok)
	}
}

func TestRegistryExecuteDispatches(t *testing.T) {
	testlog.Start(t)
	r := NewRegistry()
	s := &fakeSubsystem{meta: Metadata{ID: "stage.fake", Name: "Fake", Description: "fake stage"}}
	if err := r.Register(s); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := r.Execute("stage.fake", "ping", nil); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !reflect.DeepEqual(s.calls, []string{"ping"}) {
		t.Fatalf("unexpected calls: %v", s.calls)
	}
	if err := r.Execute("stage.missing", "ping", nil); !errors.Is(err, ErrUnknownSubsystem) {
		t.Fatalf("expected ErrUnknownSubsystem, got %v", err)
	}
}

func TestListMetadataSorted(t *testing.T) {
	testlog.Start(t)
	r := NewRegistry()
	console := NewConsole(io.Discard, messages.Default())
	_ = r.Register(NewTransport(console))
	_ = r.Register(NewExtraction(console))
	_ = r.Register(NewPurification(console))
	_ = r.Register(NewProductionLog(console))

	list := r.ListMetadata()
	ids := make([]string, 0, len(list))
	for _, meta := range list {
		ids = append(ids, meta.ID)
	}
	want := []string{IDExtraction, IDProductionLog, IDPurification, IDTransport}
	if !reflect.DeepEqual(ids, want) {
		t.Fatalf("metadata not sorted: got=%v want=%v", ids, want)
	}

	desc := r.Describe()
	if len(desc) != 4 || len(desc[0].Operations) != 2 || desc[0].ID != IDExtraction {
		t.Fatalf("unexpected descriptors: %+v", desc)
	}
}

func TestValidateMetadataFailures(t *testing.T) {
	testlog.Start(t)
	cases := []Metadata{
		{ID: "", Name: "Extraction", Description: "x"},
		{ID: "extraction", Name: "", Description: "x"},
		{ID: "extraction", Name: "Extraction", Description: ""},
		{ID: "Extraction", Name: "Extraction", Description: "x"},
		{ID: "_extraction", Name: "Extraction", Description: "x"},
		{ID: "production__log", Name: "Log", Description: "x"},
	}
	for _, meta := range cases {
		if err := ValidateMetadata(meta); !errors.Is(err, ErrInvalidMetadata) {
			t.Fatalf("expected ErrInvalidMetadata for meta=%+v, got %v", meta, err)
		}
	}
}

func TestRegisterNilSubsystem(t *testing.T) {
	testlog.Start(t)
	r := NewRegistry()
	if err := r.Register(nil); !errors.Is(err, ErrSubsystemNil) {
		t.Fatalf("expected ErrSubsystemNil, got %v", err)
	}
}
