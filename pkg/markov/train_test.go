package markov

import (
	"errors"
	"fmt"
	"reflect"
	"testing"
)

func TestNewModelErrors(t *testing.T) {
	testCases := []struct {
		name  string
		text  string
		order int
	}{
		{"negative order", sampleText, -1},
		{"text shorter than order", "ab", 3},
		{"empty text with positive order", "", 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewModel(tc.text, tc.order)
			if !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("NewModel(%q, %d) error = %v, want ErrInvalidArgument", tc.text, tc.order, err)
			}
		})
	}
}

func TestNewModelWrapsAround(t *testing.T) {
	// "abc" with order 2 sees ab->c, bc->a and ca->b once the end wraps.
	m := setupTestModel(t, "abc", 2)

	want := map[string]byte{"ab": 'c', "bc": 'a', "ca": 'b'}
	if got := m.KGrams(); !reflect.DeepEqual(got, []string{"ab", "bc", "ca"}) {
		t.Fatalf("KGrams() = %v, want [ab bc ca]", got)
	}
	for kgram, next := range want {
		n, err := m.FrequencyOf(kgram, next)
		if err != nil {
			t.Fatalf("FrequencyOf(%q, %q) error = %v", kgram, next, err)
		}
		if n != 1 {
			t.Errorf("FrequencyOf(%q, %q) = %d, want 1", kgram, next, n)
		}
	}
}

func TestNewModelOrderEqualsLength(t *testing.T) {
	// Every rotation of the text is a k-gram and is followed by its own first byte.
	m := setupTestModel(t, "abcd", 4)

	for _, kgram := range []string{"abcd", "bcda", "cdab", "dabc"} {
		n, err := m.FrequencyOf(kgram, kgram[0])
		if err != nil {
			t.Fatalf("FrequencyOf(%q) error = %v", kgram, err)
		}
		if n != 1 {
			t.Errorf("FrequencyOf(%q, %q) = %d, want 1", kgram, kgram[0], n)
		}
	}
}

func TestNewModelEmptyOrderZero(t *testing.T) {
	m := setupTestModel(t, "", 0)
	if len(m.KGrams()) != 0 {
		t.Errorf("expected no kgrams for an empty text, got %v", m.KGrams())
	}
	n, err := m.Frequency("")
	if err != nil || n != 0 {
		t.Errorf("Frequency(\"\") = %d, %v; want 0, nil", n, err)
	}
}

func TestNewModelIsDeterministic(t *testing.T) {
	text := "the quick brown fox jumps over the lazy dog"
	a := setupTestModel(t, text, 2)
	b := setupTestModel(t, text, 2)

	if !reflect.DeepEqual(a.KGrams(), b.KGrams()) {
		t.Fatalf("kgram sets differ: %v vs %v", a.KGrams(), b.KGrams())
	}
	for _, kgram := range a.KGrams() {
		sa, ta, _ := a.Successors(kgram)
		sb, tb, _ := b.Successors(kgram)
		if ta != tb || !reflect.DeepEqual(sa, sb) {
			t.Errorf("kgram %q: %v (%d) vs %v (%d)", kgram, sa, ta, sb, tb)
		}
	}
}

func BenchmarkNewModel(b *testing.B) {
	corpus := createBenchmarkCorpus()

	for _, order := range []int{1, 2, 3, 4, 5} {
		b.Run(fmt.Sprintf("Order%d", order), func(b *testing.B) {
			b.SetBytes(int64(len(corpus)))
			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				if _, err := NewModel(corpus, order); err != nil {
					b.Fatalf("NewModel() failed: %v", err)
				}
			}
		})
	}
}
