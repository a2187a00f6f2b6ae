package dictionary

import (
	"os"
	"path/filepath"
	"testing"
)

func writeDict(t *testing.T, words []string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "words.txt")
	content := ""
	for _, w := range words {
		content += w + "\n"
	}
	content += "\n\n" // trailing blank lines must be ignored
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

var testWords = []string{"woord", "woorden", "zijn", "wapens", "logos", "lustoord"}

func TestFromDictionaryBuildsAlphabetCoveringEveryWord(t *testing.T) {
	path := writeDict(t, testWords)
	f, err := FromDictionary(path)
	if err != nil {
		t.Fatalf("FromDictionary: %v", err)
	}
	for _, w := range testWords {
		for _, r := range w {
			if _, ok := f.Alphabet().IndexOf(r); !ok {
				t.Errorf("alphabet missing rune %q from word %q", r, w)
			}
		}
	}
}

func TestFactoryCreateBuildsAddableBuilder(t *testing.T) {
	path := writeDict(t, testWords)
	f, err := FromDictionary(path)
	if err != nil {
		t.Fatalf("FromDictionary: %v", err)
	}
	b := f.Create()
	if err := b.AddRange(testWords); err != nil {
		t.Fatalf("AddRange: %v", err)
	}
	tr, err := b.Finalize(true, true)
	if err != nil {
		t.Fatalf("Finalize: %v", err)
	}
	for _, w := range testWords {
		if !tr.Contains(w) {
			t.Errorf("Contains(%q) = false, want true", w)
		}
	}
}

func TestImportIgnoresTrailingBlankLines(t *testing.T) {
	path := writeDict(t, testWords)
	tr, err := Import(path)
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if tr.Count() != len(testWords) {
		t.Errorf("Count() = %d, want %d (blank lines must not become words)", tr.Count(), len(testWords))
	}
	for _, w := range testWords {
		if !tr.Contains(w) {
			t.Errorf("Contains(%q) = false, want true", w)
		}
	}
}

func TestExportThenLoadRoundTrips(t *testing.T) {
	path := writeDict(t, testWords)
	tr, err := Import(path)
	if err != nil {
		t.Fatalf("Import: %v", err)
	}

	outPath := filepath.Join(t.TempDir(), "out.json")
	if err := Export(tr, outPath); err != nil {
		t.Fatalf("Export: %v", err)
	}

	loaded, err := Load(outPath)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Count() != tr.Count() {
		t.Errorf("loaded Count() = %d, want %d", loaded.Count(), tr.Count())
	}
	for _, w := range testWords {
		if !loaded.Contains(w) {
			t.Errorf("loaded trie lost word %q", w)
		}
	}
}

func TestComputeStatsDepthHistogram(t *testing.T) {
	path := writeDict(t, testWords)
	tr, err := Import(path)
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	stats := ComputeStats(tr)

	if stats.WordCount != len(testWords) {
		t.Errorf("WordCount = %d, want %d", stats.WordCount, len(testWords))
	}
	if stats.NodeCount != tr.NumNodes() {
		t.Errorf("NodeCount = %d, want %d", stats.NodeCount, tr.NumNodes())
	}

	// woord, logos -> len 5; zijn -> len 4; wapens -> len 6; woorden -> len 7; lustoord -> len 8
	want := map[int]int{4: 1, 5: 2, 6: 1, 7: 1, 8: 1}
	for depth, count := range want {
		if got := stats.CountAtDepth(depth); got != count {
			t.Errorf("CountAtDepth(%d) = %d, want %d", depth, got, count)
		}
	}

	depths := stats.Depths()
	for i := 1; i < len(depths); i++ {
		if depths[i-1] >= depths[i] {
			t.Errorf("Depths() not ascending: %v", depths)
		}
	}
}

func TestFromDictionaryRejectsMissingFile(t *testing.T) {
	if _, err := FromDictionary(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Fatalf("FromDictionary with missing file should return an error")
	}
}
