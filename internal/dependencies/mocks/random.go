package mocks

import (
	"github.com/mcoot/connect4-solver/internal/dependencies/random"
)

// MockRandom is a mock implementation of Random for testing.
//
// Intn returns queued values in order. Once the queue is drained it returns
// 0. Queued values are clamped into [0, n) so a test cannot pick an index
// past the end of the choices it is offered.
type MockRandom struct {
	IntnResults []int
	intnIndex   int
	calls       []int
}

// Ensure MockRandom implements Random
var _ random.Random = (*MockRandom)(nil)

// NewMockRandom creates a new MockRandom
func NewMockRandom() *MockRandom {
	return &MockRandom{}
}

// Intn returns the next queued result
func (r *MockRandom) Intn(n int) int {
	r.calls = append(r.calls, n)
	if r.intnIndex >= len(r.IntnResults) {
		return 0
	}
	result := r.IntnResults[r.intnIndex]
	r.intnIndex++
	if result >= n {
		result = n - 1
	}
	return max(result, 0)
}

// QueueIntn adds values to the Intn result queue
func (r *MockRandom) QueueIntn(values ...int) {
	r.IntnResults = append(r.IntnResults, values...)
}

// Calls returns the n argument of every Intn call so far
func (r *MockRandom) Calls() []int {
	return r.calls
}

// Reset clears all queued results and recorded calls
func (r *MockRandom) Reset() {
	r.IntnResults = nil
	r.intnIndex = 0
	r.calls = nil
}
