package puml

import (
	"testing"

	"mindbridge/internal/mindmap"
)

func TestWriteBasic(t *testing.T) {
	m := mindmap.NewMap()
	root := m.AddRoot("Root")
	root.AddChild("A")
	b := root.AddChild("B")
	b.AddChild("C")

	got := Write(m)
	want := "@startmindmap\n* Root\n** A\n** B\n*** C\n@endmindmap\n"
	if got != want {
		t.Errorf("Write() = %q, want %q", got, want)
	}
}

func TestWriteMultilineLabel(t *testing.T) {
	m := mindmap.NewMap()
	root := m.AddRoot("Root")
	root.AddChild("Line 1\nLine 2")

	got := Write(m)
	want := "@startmindmap\n* Root\n** :Line 1\nLine 2;\n@endmindmap\n"
	if got != want {
		t.Errorf("Write() = %q, want %q", got, want)
	}
}

func TestWriteHyperlinks(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		link     string
		wantLine string
	}{
		{
			name:     "label differs from url",
			text:     "Link",
			link:     "http://example.com",
			wantLine: "* [[http://example.com Link]]",
		},
		{
			name:     "label equals url",
			text:     "http://example.com",
			link:     "http://example.com",
			wantLine: "* [[http://example.com]]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := mindmap.NewMap()
			root := m.AddRoot(tt.text)
			root.Link = tt.link

			got := Write(m)
			want := "@startmindmap\n" + tt.wantLine + "\n@endmindmap\n"
			if got != want {
				t.Errorf("Write() = %q, want %q", got, want)
			}
		})
	}
}

func TestWriteEmptyMap(t *testing.T) {
	got := Write(mindmap.NewMap())
	want := "@startmindmap\n@endmindmap\n"
	if got != want {
		t.Errorf("Write() = %q, want %q", got, want)
	}
}

func TestWriteParseRoundtrip(t *testing.T) {
	m := mindmap.NewMap()
	root := m.AddRoot("Root")
	a := root.AddChild("A")
	a.Link = "http://example.com"
	root.AddChild("Multi\nline")

	parsed, err := Parse(Write(m))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if got := Write(parsed); got != Write(m) {
		t.Errorf("roundtrip changed output:\nfirst:  %q\nsecond: %q", Write(m), got)
	}
	if parsed.Roots[0].Children[0].Link != "http://example.com" {
		t.Errorf("link lost in roundtrip: %q", parsed.Roots[0].Children[0].Link)
	}
}
