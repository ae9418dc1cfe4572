package storage

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// inputSpan is a run of identical input masks.
type inputSpan struct {
	Mask  uint16 `msgpack:"m"`
	Count uint32 `msgpack:"n"`
}

// inputLog is the persisted form of a run's per-tick input masks.
type inputLog struct {
	Version int         `msgpack:"v"`
	Spans   []inputSpan `msgpack:"s"`
}

const inputLogVersion = 1

// MaxInputFrames bounds a decoded input log: 24 hours at 120 ticks per second.
const MaxInputFrames = 24 * 60 * 60 * 120

// EncodeInputs packs one input mask per tick into a run-length msgpack blob.
// Held keys repeat for many ticks, so runs compress well.
func EncodeInputs(masks []uint16) ([]byte, error) {
	rec := inputLog{Version: inputLogVersion}
	for _, m := range masks {
		if n := len(rec.Spans); n > 0 && rec.Spans[n-1].Mask == m {
			rec.Spans[n-1].Count++
			continue
		}
		rec.Spans = append(rec.Spans, inputSpan{Mask: m, Count: 1})
	}

	data, err := msgpack.Marshal(&rec)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot encode inputs: %w", err)
	}
	return data, nil
}

// DecodeInputs expands a blob written by EncodeInputs.
func DecodeInputs(data []byte) ([]uint16, error) {
	var rec inputLog
	if err := msgpack.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("storage: cannot decode inputs: %w", err)
	}
	if rec.Version != inputLogVersion {
		return nil, fmt.Errorf("storage: unsupported input log version %d", rec.Version)
	}

	total := 0
	for _, s := range rec.Spans {
		total += int(s.Count)
		if total > MaxInputFrames {
			return nil, fmt.Errorf("storage: input log exceeds %d frames", MaxInputFrames)
		}
	}

	var masks []uint16
	if total > 0 {
		masks = make([]uint16, 0, total)
	}
	for _, s := range rec.Spans {
		for i := uint32(0); i < s.Count; i++ {
			masks = append(masks, s.Mask)
		}
	}
	return masks, nil
}
