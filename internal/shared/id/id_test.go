package id

import (
	"math/rand"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"
)

func TestGenerate(t *testing.T) {
	gen := NewGenerator()

	id1 := gen.Generate()
	id2 := gen.Generate()

	if id1.String() == id2.String() {
		t.Error("Generated IDs should be unique")
	}
	if len(id1.String()) != 26 {
		t.Errorf("ULID should be 26 characters, got %d", len(id1.String()))
	}
}

func TestGenerateWithPrefix(t *testing.T) {
	gen := NewGenerator()

	for _, prefix := range []string{"run", "suite", "case"} {
		id := gen.GenerateWithPrefix(prefix)

		if !strings.HasPrefix(id, prefix+"_") {
			t.Errorf("ID should start with '%s_', got: %s", prefix, id)
		}

		parts := strings.Split(id, "_")
		if len(parts) != 2 {
			t.Fatalf("Prefixed ID should have format 'prefix_ulid', got: %s", id)
		}
		if !IsValid(parts[1]) {
			t.Errorf("ULID part should be valid: %s", parts[1])
		}
	}
}

func TestNewRun(t *testing.T) {
	run := Default().NewRun()

	if !strings.HasPrefix(run.String(), "run_") {
		t.Errorf("RunID should start with 'run_', got: %s", run)
	}
	if _, err := run.ULID(); err != nil {
		t.Errorf("RunID should carry a valid ULID: %v", err)
	}
}

func TestRunIDULIDErrors(t *testing.T) {
	cases := []RunID{
		"",
		"01JAB3C4D5E6F7G8H9J0KMNPQR",
		"sess_01JAB3C4D5E6F7G8H9J0KMNPQR",
		"run_invalid",
	}

	for _, c := range cases {
		if _, err := c.ULID(); err == nil {
			t.Errorf("expected error for %q", c)
		}
	}
}

func TestIsValid(t *testing.T) {
	gen := NewGenerator()

	if !IsValid(gen.Generate().String()) {
		t.Error("Generated ULID should be valid")
	}

	invalidIDs := []string{
		"",
		"invalid",
		"1234567890",
		"zzzzzzzzzzzzzzzzzzzzzzzzzzz",
	}
	for _, id := range invalidIDs {
		if IsValid(id) {
			t.Errorf("ID should be invalid: %s", id)
		}
	}
}

func TestParse(t *testing.T) {
	gen := NewGenerator()

	original := gen.Generate()
	parsed, err := Parse(original.String())
	if err != nil {
		t.Fatalf("Failed to parse ULID: %v", err)
	}
	if parsed != original {
		t.Errorf("Parsed ULID doesn't match original: %s != %s", parsed, original)
	}

	if _, err := Parse("nope"); err == nil || !strings.Contains(err.Error(), "nope") {
		t.Errorf("expected wrapped parse error naming the input, got %v", err)
	}
}

func TestStarted(t *testing.T) {
	gen := NewGenerator()
	fixed := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	gen.now = func() time.Time { return fixed }

	started, err := gen.NewRun().Started()
	if err != nil {
		t.Fatalf("Failed to extract timestamp: %v", err)
	}
	if !started.Equal(fixed) {
		t.Errorf("Started should be %v, got %v", fixed, started)
	}
}

func TestDeterministicEntropy(t *testing.T) {
	fixed := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	a := NewGeneratorWithEntropy(rand.New(rand.NewSource(7)))
	b := NewGeneratorWithEntropy(rand.New(rand.NewSource(7)))
	a.now = func() time.Time { return fixed }
	b.now = func() time.Time { return fixed }

	for i := 0; i < 10; i++ {
		if a.Generate() != b.Generate() {
			t.Fatalf("generators with the same seed diverged at %d", i)
		}
	}
}

func TestMonotonicWithinMillisecond(t *testing.T) {
	gen := NewGenerator()
	fixed := time.Now()
	gen.now = func() time.Time { return fixed }

	ids := make([]string, 100)
	for i := range ids {
		ids[i] = gen.Generate().String()
	}

	if !sort.StringsAreSorted(ids) {
		t.Error("IDs minted in the same millisecond should sort in creation order")
	}
}

func TestConcurrentGeneration(t *testing.T) {
	gen := NewGenerator()

	const workers, perWorker = 10, 100
	var (
		mu   sync.Mutex
		seen = make(map[string]bool)
		wg   sync.WaitGroup
	)

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				id := gen.NewRun().String()
				mu.Lock()
				seen[id] = true
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if len(seen) != workers*perWorker {
		t.Errorf("Expected %d unique IDs, got %d", workers*perWorker, len(seen))
	}
}

func BenchmarkNewRun(b *testing.B) {
	gen := NewGenerator()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = gen.NewRun()
	}
}
