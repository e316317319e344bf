package gallery

import (
	"strings"
	"testing"
	"testing/fstest"
)

func TestLoadNotesParsesEmbeddedNotes(t *testing.T) {
	notes, err := LoadNotes()
	if err != nil {
		t.Fatalf("load notes: %v", err)
	}

	for _, id := range []string{"search-results", "buttons", "wizard", "snippet-editor"} {
		note, ok := notes[id]
		if !ok {
			t.Fatalf("expected a note for %q", id)
		}
		if note.Title == "" {
			t.Fatalf("note %q has no title", id)
		}
		if !strings.Contains(note.HTML, "<p>") {
			t.Fatalf("note %q body did not render to HTML: %q", id, note.HTML)
		}
	}
}

func TestLoadNotesSanitizesMarkup(t *testing.T) {
	fsys := fstest.MapFS{
		"notes/evil.md": &fstest.MapFile{
			Data: []byte("---\nwidget: evil\ntitle: Evil\n---\n\nSafe **bold** text.\n\n<script>alert(1)</script>\n"),
		},
	}

	notes, err := loadNotesFrom(fsys, "notes/*.md")
	if err != nil {
		t.Fatalf("load notes: %v", err)
	}

	note := notes["evil"]
	if strings.Contains(note.HTML, "<script>") {
		t.Fatalf("expected scripts stripped, got %q", note.HTML)
	}
	if !strings.Contains(note.HTML, "<strong>bold</strong>") {
		t.Fatalf("expected markdown emphasis to survive, got %q", note.HTML)
	}
}

func TestLoadNotesRejectsMissingWidget(t *testing.T) {
	fsys := fstest.MapFS{
		"notes/orphan.md": &fstest.MapFile{
			Data: []byte("---\ntitle: Orphan\n---\n\nBody.\n"),
		},
	}

	if _, err := loadNotesFrom(fsys, "notes/*.md"); err == nil {
		t.Fatal("expected a note without a widget id to fail")
	}
}
