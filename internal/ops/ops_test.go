package ops

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/mishimalab/frametrap/internal/errors"
	"github.com/mishimalab/frametrap/internal/frames"
)

// fakeProvider serves a canned payload per character and counts fetches.
type fakeProvider struct {
	mu       sync.Mutex
	payloads map[string][]byte
	err      error
	calls    int
}

func (f *fakeProvider) Movelist(_ context.Context, character string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	body, ok := f.payloads[character]
	if !ok {
		return nil, errors.NewNetwork(nil)
	}
	return body, nil
}

func (f *fakeProvider) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// fakeOverviews serves a fixed overview string.
type fakeOverviews struct {
	mu    sync.Mutex
	text  string
	err   error
	calls int
}

func (f *fakeOverviews) Overview(_ context.Context, _ string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.text, nil
}

// testClock is a manually advanced clock.
type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func newTestClock() *testClock {
	return &testClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// fixtureMoves is a small movelist exercising every filter dimension.
func fixtureMoves() []frames.Move {
	return []frames.Move{
		{MoveNumber: 1, Command: "1", HitLevel: "h", Damage: "5",
			Startup: "i10", Block: "+1", Hit: "+8", CounterHit: "+8"},
		{MoveNumber: 2, Command: "d/f+2", Name: "Party Crasher", HitLevel: "m", Damage: "12",
			Startup: "i15", Block: "-7", Hit: "+32a", CounterHit: "+32a"},
		{MoveNumber: 3, Command: "d/b+4", HitLevel: "l", Damage: "18",
			Startup: "i18", Block: "-13", Hit: "+4", CounterHit: "+9"},
		{MoveNumber: 4, Command: "b+1+2", HitLevel: "m", Damage: "20",
			Startup: "i22", Block: "-15", Hit: "+6", CounterHit: "+15",
			Tags:  map[string]string{"pc": "1"},
			Notes: "Power crush. Hold to charge for a guard break"},
		{MoveNumber: 5, Command: "H.2,3", HitLevel: "m", Damage: "24",
			Startup: "i16", Block: "-9", Hit: "+20", CounterHit: "+35a",
			Tags: map[string]string{"he": "1", "bbr": "1"}},
		{MoveNumber: 6, Command: "ws4", HitLevel: "m", Damage: "13",
			Block: "-6", Hit: "+7", CounterHit: "+7"}, // no startup field at all
		{MoveNumber: 7, Command: "1+3", HitLevel: "h", Damage: "throw",
			Startup: "i12", Block: "", Hit: "", CounterHit: ""},
		{MoveNumber: 8, Command: "d/f+2", Name: "duplicate command", HitLevel: "m", Damage: "10",
			Startup: "i13", Block: "-9", Hit: "+5", CounterHit: "+5"},
	}
}

// fixturePayload wraps moves in the provider wire shape.
func fixturePayload(t *testing.T, moves []frames.Move) []byte {
	t.Helper()
	body, err := json.Marshal(map[string]any{"moves": moves})
	if err != nil {
		t.Fatalf("marshal fixture: %v", err)
	}
	return body
}

// newTestService wires a Service to the fake providers with a test clock.
func newTestService(t *testing.T) (*Service, *fakeProvider, *testClock) {
	t.Helper()
	provider := &fakeProvider{
		payloads: map[string][]byte{
			"law": fixturePayload(t, fixtureMoves()),
		},
	}
	clock := newTestClock()
	svc := NewService(provider, &fakeOverviews{text: "A rushdown legend."}, 0, clock.Now)
	return svc, provider, clock
}
