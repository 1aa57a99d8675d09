package extract

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestExtract_Scenarios(t *testing.T) {
	tests := []struct {
		name        string
		in          string
		wantText    string
		wantMatches []Match
	}{
		{
			name:        "keeps color drops margin",
			in:          ".a { color: #fff; margin: 1px; }",
			wantText:    ".a {\n    color: #fff;\n}\n\n",
			wantMatches: []Match{{Selector: ".a", Property: "color", Value: "#fff"}},
		},
		{
			name:     "url background is not a color",
			in:       ".b { background: url(x.png); }",
			wantText: NoDataSentinel,
		},
		{
			name:     "comment only",
			in:       "/* color: red; */",
			wantText: NoDataSentinel,
		},
		{
			name:        "var reference counts as color",
			in:          ".c { border-color: var(--x); }",
			wantText:    ".c {\n    border-color: var(--x);\n}\n\n",
			wantMatches: []Match{{Selector: ".c", Property: "border-color", Value: "var(--x)"}},
		},
		{
			name:     "no braces at all",
			in:       "color: red; background: blue;",
			wantText: NoDataSentinel,
		},
		{
			name:     "properties outside allow-list",
			in:       ".a { margin: red; } .b { width: #fff; }",
			wantText: NoDataSentinel,
		},
		{
			name:     "empty input",
			in:       "",
			wantText: NoDataSentinel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extract(tt.in)
			if got.CleanedText != tt.wantText {
				t.Errorf("CleanedText = %q, want %q", got.CleanedText, tt.wantText)
			}
			if !reflect.DeepEqual(got.Matches, tt.wantMatches) {
				t.Errorf("Matches = %#v, want %#v", got.Matches, tt.wantMatches)
			}
			if got.Count() != len(tt.wantMatches) {
				t.Errorf("Count = %d", got.Count())
			}
		})
	}
}

func TestExtract_SentinelIsNotEmpty(t *testing.T) {
	if NoDataSentinel == "" {
		t.Fatal("sentinel must differ from the empty string")
	}
	if !Extract("").Empty() {
		t.Fatal("expected Empty() for empty input")
	}
}

func TestExtract_Idempotent(t *testing.T) {
	in := ".a { color: red; }\n.b { fill: #000; stroke: blue }"
	first := Extract(in)
	second := Extract(in)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("results differ: %#v vs %#v", first, second)
	}
}

func TestExtract_OrderPreserved(t *testing.T) {
	in := `
.one { stroke: #111; color: #222; }
.two { fill: #333; }
.three { background: #444; border-left: 1px solid #555; }
`
	got := Extract(in)
	var values []string
	for _, m := range got.Matches {
		values = append(values, m.Value)
	}
	want := []string{"#111", "#222", "#333", "#444", "1px solid #555"}
	if !reflect.DeepEqual(values, want) {
		t.Fatalf("order = %v, want %v", values, want)
	}
	if !strings.HasPrefix(got.CleanedText, ".one {") || !strings.HasSuffix(got.CleanedText, "}\n\n") {
		t.Fatalf("unexpected cleaned text %q", got.CleanedText)
	}
}

func TestExtract_CaseInsensitiveProperty(t *testing.T) {
	upper := Extract(".a { COLOR: Red; }")
	lower := Extract(".a { color: Red; }")
	if !reflect.DeepEqual(upper, lower) {
		t.Fatalf("COLOR and color differ: %#v vs %#v", upper, lower)
	}
}

func TestExtract_SampleInput(t *testing.T) {
	in := "/* Wklej kod CSS tutaj... */\n.example {\n  color: #f36c00;\n  background: rgba(243, 108, 0, 0.1);\n  border: 1px solid var(--border-color);\n}"
	got := Extract(in)
	if got.Count() != 3 {
		t.Fatalf("Count = %d, want 3", got.Count())
	}
	want := ".example {\n    color: #f36c00;\n    background: rgba(243, 108, 0, 0.1);\n    border: 1px solid var(--border-color);\n}\n\n"
	if got.CleanedText != want {
		t.Fatalf("CleanedText = %q", got.CleanedText)
	}
}

func TestExtractBytes_InvalidUTF8(t *testing.T) {
	_, err := ExtractBytes([]byte{0xff, 0xfe, '{'})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func TestExtractReader(t *testing.T) {
	res, err := ExtractReader(strings.NewReader(".a { fill: green }"))
	if err != nil {
		t.Fatalf("ExtractReader: %v", err)
	}
	if res.Count() != 1 {
		t.Fatalf("Count = %d", res.Count())
	}

	if _, err := ExtractReader(nil); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("nil reader err = %v", err)
	}
}
