package slashing

import (
	"go.uber.org/zap/zapcore"

	"github.com/spacemeshos/go-slashindicator/common/types"
)

// Indicator is the misbehavior record of a single validator.
type Indicator struct {
	LastHeight types.Height `json:"height"`
	Count      uint64       `json:"count"`
}

// ValidatorIndicator is an Indicator together with the validator it belongs to.
type ValidatorIndicator struct {
	Validator types.ValidatorID `json:"validator"`
	Indicator
}

// MarshalLogObject implements logging interface.
func (v *ValidatorIndicator) MarshalLogObject(encoder zapcore.ObjectEncoder) error {
	encoder.AddString("validator", v.Validator.String())
	encoder.AddUint64("last_height", v.LastHeight.Uint64())
	encoder.AddUint64("count", v.Count)
	return nil
}

// registry is a dense array of indicators with an index from validator to position.
// Every validator in index is stored exactly once in entries at the position index points to.
type registry struct {
	entries []ValidatorIndicator
	index   map[types.ValidatorID]int
}

func newRegistry() *registry {
	return &registry{index: map[types.ValidatorID]int{}}
}

func (r *registry) len() int {
	return len(r.entries)
}

// get returns a pointer that is valid until the next call to add or compact.
func (r *registry) get(id types.ValidatorID) *ValidatorIndicator {
	i, exists := r.index[id]
	if !exists {
		return nil
	}
	return &r.entries[i]
}

func (r *registry) add(id types.ValidatorID) *ValidatorIndicator {
	r.index[id] = len(r.entries)
	r.entries = append(r.entries, ValidatorIndicator{Validator: id})
	return &r.entries[len(r.entries)-1]
}

func (r *registry) all() []ValidatorIndicator {
	rst := make([]ValidatorIndicator, len(r.entries))
	copy(rst, r.entries)
	return rst
}

// compact subtracts decay from every counter and drops entries with a counter that is not above decay.
// Survivors at the low end are updated in place, every dropped entry is overwritten with the
// closest survivor from the high end. Returns the number of dropped entries.
func (r *registry) compact(decay uint64) int {
	lo, hi := 0, len(r.entries)-1
	for lo <= hi {
		if r.entries[lo].Count > decay {
			r.entries[lo].Count -= decay
			lo++
			continue
		}
		delete(r.index, r.entries[lo].Validator)
		for hi > lo && r.entries[hi].Count <= decay {
			delete(r.index, r.entries[hi].Validator)
			hi--
		}
		if hi == lo {
			break
		}
		r.entries[lo] = r.entries[hi]
		r.entries[lo].Count -= decay
		r.index[r.entries[lo].Validator] = lo
		hi--
		lo++
	}
	removed := len(r.entries) - lo
	clear(r.entries[lo:])
	r.entries = r.entries[:lo]
	return removed
}
