package git

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"pgregory.net/rapid"
)

func buffer(tokens ...string) []byte {
	return []byte(strings.Join(tokens, "\x00") + "\x00")
}

func TestParseChangeList_MultipleFiles(t *testing.T) {
	raw := buffer("A", "src/Foo.php", "C", "src/Foo/Bar/Bar.txt", "X", "baz")

	list := ParseChangeList(raw)

	want := []ChangeEntry{
		{Path: "src/Foo.php", Status: StatusAdded},
		{Path: "src/Foo/Bar/Bar.txt", Status: StatusCopied},
		{Path: "baz", Status: StatusUnknown},
	}
	if got := list.Entries(); !reflect.DeepEqual(got, want) {
		t.Errorf("entries mismatch\n got: %v\nwant: %v", got, want)
	}
}

func TestParseChangeList_Empty(t *testing.T) {
	for _, raw := range [][]byte{nil, {}} {
		list := ParseChangeList(raw)
		if list.Len() != 0 {
			t.Errorf("expected empty list for %q, got %v", raw, list.Entries())
		}
		if entries := list.Entries(); len(entries) != 0 {
			t.Errorf("expected no entries, got %v", entries)
		}
	}
}

func TestParseChangeList_UnterminatedPathDropped(t *testing.T) {
	raw := []byte("M\x00README.md\x00A\x00new.go")

	list := ParseChangeList(raw)

	if list.Len() != 1 {
		t.Fatalf("expected 1 entry, got %v", list.Entries())
	}
	if _, ok := list.Status("new.go"); ok {
		t.Error("unterminated trailing path must not be emitted")
	}
}

func TestParseChangeList_UnpairedStatusDropped(t *testing.T) {
	raw := buffer("M", "README.md", "D")

	list := ParseChangeList(raw)

	want := []ChangeEntry{{Path: "README.md", Status: StatusModified}}
	if got := list.Entries(); !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestParseChangeList_EmptyPathSkipped(t *testing.T) {
	raw := buffer("M", "", "A", "main.go")

	list := ParseChangeList(raw)

	want := []ChangeEntry{{Path: "main.go", Status: StatusAdded}}
	if got := list.Entries(); !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestParseChangeList_DuplicatePathLastStatusWins(t *testing.T) {
	raw := buffer("A", "a.go", "M", "b.go", "D", "a.go")

	list := ParseChangeList(raw)

	if got, _ := list.Status("a.go"); got != StatusDeleted {
		t.Errorf("expected later status D for a.go, got %q", got)
	}
	if got := list.Paths(); !reflect.DeepEqual(got, []string{"a.go", "b.go"}) {
		t.Errorf("expected first-seen order [a.go b.go], got %v", got)
	}
}

func TestParseChangeList_StatusPassedThroughVerbatim(t *testing.T) {
	raw := buffer("R100", "renamed.go", "Q", "odd.txt")

	list := ParseChangeList(raw)

	if got, _ := list.Status("renamed.go"); got != "R100" {
		t.Errorf("expected verbatim status R100, got %q", got)
	}
	if got, _ := list.Status("odd.txt"); got != "Q" {
		t.Errorf("expected verbatim status Q, got %q", got)
	}
}

func TestParseChangeList_PathWithSpacesAndNewlines(t *testing.T) {
	raw := buffer("A", "dir with space/file\nname.txt")

	list := ParseChangeList(raw)

	if _, ok := list.Status("dir with space/file\nname.txt"); !ok {
		t.Errorf("expected path with whitespace to survive, got %v", list.Paths())
	}
}

func TestChangeList_PathsIsACopy(t *testing.T) {
	list := ParseChangeList(buffer("A", "a.go"))

	paths := list.Paths()
	paths[0] = "mutated"

	if list.Paths()[0] != "a.go" {
		t.Error("mutating Paths() result must not affect the list")
	}
}

func TestStatus_Known(t *testing.T) {
	for _, s := range []Status{StatusAdded, StatusCopied, StatusDeleted, StatusModified, StatusRenamed, StatusTypeChanged, StatusUnmerged, StatusUnknown} {
		if !s.Known() {
			t.Errorf("expected %q to be known", s)
		}
	}
	if Status("R100").Known() {
		t.Error("expected R100 to be unknown")
	}
	if got := StatusUnmerged.Description(); got != "unmerged" {
		t.Errorf("expected 'unmerged', got %q", got)
	}
	if got := Status("Z").Description(); got != "Z" {
		t.Errorf("expected raw code for unknown status, got %q", got)
	}
}

func TestParseChangeList_WellFormedRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		paths := rapid.SliceOfNDistinct(
			rapid.StringMatching(`[a-zA-Z0-9_. /-]{1,24}`),
			0, 20,
			func(s string) string { return s },
		).Draw(t, "paths")
		statuses := rapid.SliceOfN(
			rapid.SampledFrom([]Status{StatusAdded, StatusCopied, StatusDeleted, StatusModified, StatusRenamed, StatusTypeChanged, StatusUnmerged, StatusUnknown}),
			len(paths), len(paths),
		).Draw(t, "statuses")

		var raw bytes.Buffer
		want := make([]ChangeEntry, 0, len(paths))
		for i, p := range paths {
			raw.WriteString(string(statuses[i]))
			raw.WriteByte(0)
			raw.WriteString(p)
			raw.WriteByte(0)
			want = append(want, ChangeEntry{Path: p, Status: statuses[i]})
		}

		first := ParseChangeList(raw.Bytes())
		if got := first.Entries(); !reflect.DeepEqual(got, want) {
			t.Fatalf("entries mismatch\n got: %v\nwant: %v", got, want)
		}

		second := ParseChangeList(raw.Bytes())
		if !reflect.DeepEqual(first.Entries(), second.Entries()) {
			t.Fatal("parsing the same buffer twice gave different results")
		}
	})
}

func TestParseChangeList_ArbitraryBytesNeverYieldEmptyPaths(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		raw := rapid.SliceOf(rapid.SampledFrom([]byte{0, 'A', 'M', '/', 'x'})).Draw(t, "raw")

		list := ParseChangeList(raw)

		tokens := bytes.Count(raw, []byte{0})
		if list.Len() > tokens/2 {
			t.Fatalf("got %d entries from %d terminated tokens", list.Len(), tokens)
		}
		for _, e := range list.Entries() {
			if e.Path == "" {
				t.Fatalf("empty path in %v", list.Entries())
			}
		}
	})
}
