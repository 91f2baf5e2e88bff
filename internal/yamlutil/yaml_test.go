package yamlutil_test

// Notes:
// - Marshal error branch: not tested because yaml.Marshal only fails with
//   unmarshalable types (channels, functions) which are compile-time
//   detectable and not realistic in production usage.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"errors"
	"strings"
	"testing"

	"github.com/masaomi/html2png/internal/yamlutil"
)

type testDoc struct {
	Name  string `yaml:"name"`
	Count int    `yaml:"count"`
}

func TestUnmarshal(t *testing.T) {
	t.Parallel()

	var doc testDoc
	err := yamlutil.Unmarshal([]byte("name: diagram\ncount: 3\n"), &doc)
	if err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if doc.Name != "diagram" || doc.Count != 3 {
		t.Errorf("doc = %+v", doc)
	}
}

func TestUnmarshal_EmptyData(t *testing.T) {
	t.Parallel()

	var doc testDoc
	err := yamlutil.Unmarshal(nil, &doc)
	if !errors.Is(err, yamlutil.ErrNilData) {
		t.Fatalf("Unmarshal(nil) = %v, want %v", err, yamlutil.ErrNilData)
	}
}

func TestUnmarshal_NilDestination(t *testing.T) {
	t.Parallel()

	err := yamlutil.Unmarshal([]byte("name: x"), nil)
	if !errors.Is(err, yamlutil.ErrNilDestination) {
		t.Fatalf("Unmarshal(..., nil) = %v, want %v", err, yamlutil.ErrNilDestination)
	}
}

func TestUnmarshal_InputTooLarge(t *testing.T) {
	t.Parallel()

	big := []byte("name: " + strings.Repeat("x", yamlutil.MaxInputSize))
	var doc testDoc
	err := yamlutil.Unmarshal(big, &doc)
	if !errors.Is(err, yamlutil.ErrInputTooLarge) {
		t.Fatalf("Unmarshal(big) = %v, want %v", err, yamlutil.ErrInputTooLarge)
	}
}

func TestUnmarshalStrict_RejectsUnknownFields(t *testing.T) {
	t.Parallel()

	var doc testDoc
	err := yamlutil.UnmarshalStrict([]byte("name: x\nunknown: y\n"), &doc)
	if err == nil {
		t.Fatal("UnmarshalStrict() = nil, want error for unknown field")
	}
}

func TestUnmarshalStrict_AcceptsKnownFields(t *testing.T) {
	t.Parallel()

	var doc testDoc
	err := yamlutil.UnmarshalStrict([]byte("name: x\ncount: 1\n"), &doc)
	if err != nil {
		t.Fatalf("UnmarshalStrict() error = %v", err)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	t.Parallel()

	in := testDoc{Name: "diagram", Count: 2}
	data, err := yamlutil.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var out testDoc
	if err := yamlutil.Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if out != in {
		t.Errorf("round trip = %+v, want %+v", out, in)
	}
}
