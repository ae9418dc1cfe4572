package storage

import (
	"reflect"
	"strings"
	"testing"

	"github.com/vmihailenco/msgpack/v5"
)

func TestInputsRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		masks []uint16
	}{
		{"single", []uint16{4}},
		{"held key", []uint16{2, 2, 2, 2, 2, 2, 2, 2}},
		{"mixed", []uint16{0, 0, 1, 1, 2, 0, 3, 3, 0, 16}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := EncodeInputs(tt.masks)
			if err != nil {
				t.Fatalf("EncodeInputs() failed: %v", err)
			}
			got, err := DecodeInputs(data)
			if err != nil {
				t.Fatalf("DecodeInputs() failed: %v", err)
			}
			if !reflect.DeepEqual(got, tt.masks) {
				t.Errorf("got %v, expected %v", got, tt.masks)
			}
		})
	}
}

func TestInputsEmpty(t *testing.T) {
	data, err := EncodeInputs(nil)
	if err != nil {
		t.Fatalf("EncodeInputs(nil) failed: %v", err)
	}
	got, err := DecodeInputs(data)
	if err != nil {
		t.Fatalf("DecodeInputs() failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected no masks, got %v", got)
	}
}

func TestInputsHeldKeyCompresses(t *testing.T) {
	held := make([]uint16, 10000)
	for i := range held {
		held[i] = 2
	}
	data, err := EncodeInputs(held)
	if err != nil {
		t.Fatalf("EncodeInputs() failed: %v", err)
	}
	if len(data) > 32 {
		t.Errorf("10000 identical masks encoded to %d bytes, expected a single span", len(data))
	}
}

func TestDecodeInputsRejectsGarbage(t *testing.T) {
	if _, err := DecodeInputs([]byte{0xc1}); err == nil {
		t.Error("expected an error for invalid msgpack")
	}
}

func TestDecodeInputsRejectsOversizedLog(t *testing.T) {
	tests := []struct {
		name  string
		spans []inputSpan
	}{
		{"one huge span", []inputSpan{{Mask: 1, Count: 1<<32 - 1}}},
		{"many spans", []inputSpan{
			{Mask: 1, Count: MaxInputFrames / 2},
			{Mask: 2, Count: MaxInputFrames / 2},
			{Mask: 1, Count: 1},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := msgpack.Marshal(&inputLog{Version: inputLogVersion, Spans: tt.spans})
			if err != nil {
				t.Fatalf("Marshal() failed: %v", err)
			}
			_, err = DecodeInputs(data)
			if err == nil || !strings.Contains(err.Error(), "exceeds") {
				t.Errorf("DecodeInputs() error = %v, expected a size error", err)
			}
		})
	}
}

func TestDecodeInputsAcceptsLimit(t *testing.T) {
	data, err := msgpack.Marshal(&inputLog{
		Version: inputLogVersion,
		Spans:   []inputSpan{{Mask: 2, Count: 1000}},
	})
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	got, err := DecodeInputs(data)
	if err != nil || len(got) != 1000 {
		t.Errorf("DecodeInputs() = %d masks, %v; expected 1000", len(got), err)
	}
}
