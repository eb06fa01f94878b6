package markov

import (
	"go/build"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

// sampleText is the short nucleotide-style text used throughout the tests.
const sampleText = "gagggagaggcgagaaa"

// setupTestModel builds a model and fails the test if construction fails.
func setupTestModel(t testing.TB, text string, order int) *Model {
	t.Helper()
	m, err := NewModel(text, order)
	if err != nil {
		t.Fatalf("NewModel(%q, %d) error = %v", text, order, err)
	}
	return m
}

// setupTestGenerator is a convenience helper that also wraps the model in a
// seeded Generator.
func setupTestGenerator(t testing.TB, text string, order int) (*Model, *Generator) {
	t.Helper()
	m := setupTestModel(t, text, order)
	return m, NewGenerator(m, WithSeed(11111))
}

var (
	benchmarkCorpus string
	corpusOnce      sync.Once
)

// createBenchmarkCorpus reads Go source files to create a corpus for benchmarking.
func createBenchmarkCorpus() string {
	corpusOnce.Do(func() {
		var sb strings.Builder
		goRoot := build.Default.GOROOT
		filesToRead := []string{
			filepath.Join(goRoot, "src/net/http/server.go"),
			filepath.Join(goRoot, "src/go/parser/parser.go"),
			filepath.Join(goRoot, "src/encoding/json/encode.go"),
		}

		for _, file := range filesToRead {
			content, err := os.ReadFile(file)
			if err != nil {
				benchmarkCorpus = strings.Repeat("this is a fallback corpus for benchmarking. it is not very long but will prevent a crash. ", 50)
				return
			}
			sb.Write(content)
		}
		benchmarkCorpus = strings.ReplaceAll(sb.String(), "\n", "")
	})
	return benchmarkCorpus
}
