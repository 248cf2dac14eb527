package mocks

import (
	"github.com/mcoot/volleydraft-go/internal/dependencies/random"
)

// MockRandom is a Random that replays queued results, returning zero
// values once the queues run dry
type MockRandom struct {
	IntnResults   []int
	StringResults []string

	intnIndex   int
	stringIndex int
}

var _ random.Random = (*MockRandom)(nil)

// NewMockRandom creates a new MockRandom with empty queues
func NewMockRandom() *MockRandom {
	return &MockRandom{}
}

func (r *MockRandom) Intn(n int) int {
	if r.intnIndex >= len(r.IntnResults) {
		return 0
	}
	result := r.IntnResults[r.intnIndex]
	r.intnIndex++
	return result
}

func (r *MockRandom) String(length int, alphabet string) string {
	if r.stringIndex >= len(r.StringResults) {
		return ""
	}
	result := r.StringResults[r.stringIndex]
	r.stringIndex++
	return result
}

// QueueIntn appends values to the Intn result queue
func (r *MockRandom) QueueIntn(values ...int) {
	r.IntnResults = append(r.IntnResults, values...)
}

// QueueString appends values to the String result queue
func (r *MockRandom) QueueString(values ...string) {
	r.StringResults = append(r.StringResults, values...)
}
