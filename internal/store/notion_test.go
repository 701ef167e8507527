package store

import (
	"testing"

	"github.com/jomei/notionapi"

	"github.com/atelierpage/traduire/internal/doc"
)

func textRun(content string) notionapi.RichText {
	return notionapi.RichText{
		Type:      notionapi.ObjectType("text"),
		Text:      &notionapi.Text{Content: content},
		PlainText: content,
	}
}

func TestFromNotionProperty(t *testing.T) {
	t.Parallel()

	title := fromNotionProperty(&notionapi.TitleProperty{
		Title: []notionapi.RichText{textRun("Recette")},
	})
	if title.Kind != doc.PropertyTitle {
		t.Fatalf("unexpected kind: %q", title.Kind)
	}
	if len(title.Runs) != 1 || title.Runs[0].Content != "Recette" {
		t.Fatalf("unexpected title runs: %+v", title.Runs)
	}

	status := fromNotionProperty(&notionapi.StatusProperty{
		Status: notionapi.Status{Name: doc.StatusPending},
	})
	if status.Kind != doc.PropertyStatus || status.Value != doc.StatusPending {
		t.Fatalf("unexpected status property: %+v", status)
	}

	other := fromNotionProperty(&notionapi.NumberProperty{})
	if other.Kind != doc.PropertyOther {
		t.Fatalf("expected unmapped property to be tagged other, got %q", other.Kind)
	}
}

func TestToNotionProperty_RejectsUnwritableKind(t *testing.T) {
	t.Parallel()

	if _, err := toNotionProperty(doc.Property{Kind: doc.PropertyOther}); err == nil {
		t.Fatalf("expected unwritable property kind to be rejected")
	}
}

func TestFromNotionBlock(t *testing.T) {
	t.Parallel()

	paragraph := &notionapi.ParagraphBlock{
		Paragraph: notionapi.Paragraph{
			RichText: []notionapi.RichText{textRun("Bonjour")},
		},
	}

	block := fromNotionBlock(paragraph)
	if block.Kind != doc.BlockParagraph {
		t.Fatalf("unexpected kind: %q", block.Kind)
	}
	if len(block.Runs) != 1 || block.Runs[0].Content != "Bonjour" {
		t.Fatalf("unexpected runs: %+v", block.Runs)
	}
	if block.Raw != notionapi.Block(paragraph) {
		t.Fatalf("expected raw payload to be retained")
	}
}

func TestMergeRuns_PreservesNonTextRuns(t *testing.T) {
	t.Parallel()

	original := []notionapi.RichText{
		textRun("Bonjour"),
		{
			Type:      notionapi.ObjectType("mention"),
			PlainText: "@alice",
		},
		textRun(" le monde"),
	}
	runs := []doc.TextRun{
		{Kind: doc.RunText, Content: "Hallo"},
		{Kind: doc.RunMention, Content: "@alice"},
		{Kind: doc.RunText, Content: " wereld"},
	}

	merged := mergeRuns(original, runs)
	if len(merged) != 3 {
		t.Fatalf("expected run count to be preserved, got %d", len(merged))
	}
	if merged[0].Text.Content != "Hallo" || merged[2].Text.Content != " wereld" {
		t.Fatalf("unexpected merged text: %+v", merged)
	}
	if merged[1].Text != nil || merged[1].PlainText != "@alice" {
		t.Fatalf("expected mention run to be untouched, got %+v", merged[1])
	}

	if original[0].Text.Content != "Bonjour" {
		t.Fatalf("expected original rich text to stay unmodified, got %+v", original[0])
	}
}

func TestBlockUpdateRequest(t *testing.T) {
	t.Parallel()

	raw := &notionapi.ToDoBlock{
		ToDo: notionapi.ToDo{
			RichText: []notionapi.RichText{textRun("Acheter du lait")},
			Checked:  true,
		},
	}
	block := doc.Block{
		ID:   "b-1",
		Kind: doc.BlockToDo,
		Runs: []doc.TextRun{{Kind: doc.RunText, Content: "Melk kopen"}},
		Raw:  notionapi.Block(raw),
	}

	request, err := blockUpdateRequest(block)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if request.ToDo == nil {
		t.Fatalf("expected to_do payload on update request")
	}
	if request.ToDo.RichText[0].Text.Content != "Melk kopen" {
		t.Fatalf("unexpected updated text: %+v", request.ToDo.RichText)
	}
	if !request.ToDo.Checked {
		t.Fatalf("expected checked state to survive the rewrite")
	}
}

func TestBlockUpdateRequest_NoWritablePayload(t *testing.T) {
	t.Parallel()

	block := doc.Block{
		ID:   "b-2",
		Kind: doc.BlockOther,
		Raw:  notionapi.Block(&notionapi.DividerBlock{}),
	}

	if _, err := blockUpdateRequest(block); err == nil {
		t.Fatalf("expected blocks without rich text payload to be rejected")
	}
}
