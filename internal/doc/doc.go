// Package doc holds the document-store domain model: pages, properties,
// content blocks and their text runs, independent of the Notion SDK types.
package doc

// Well-known property names and status literals used by the translation
// workflow. The status property is the durable "already translated" marker.
const (
	PropertyNameStatus   = "Statut"
	PropertyNameLanguage = "Langue"

	StatusPending    = "A traduire"
	StatusTranslated = "Traduit"
)

// PropertyKind tags a page property payload.
type PropertyKind string

const (
	PropertyTitle    PropertyKind = "title"
	PropertyRichText PropertyKind = "rich_text"
	PropertyStatus   PropertyKind = "status"
	PropertySelect   PropertyKind = "select"
	PropertyOther    PropertyKind = "other"
)

// Translatable reports whether a property payload carries text runs that the
// pipeline may rewrite.
func (k PropertyKind) Translatable() bool {
	return k == PropertyTitle || k == PropertyRichText
}

// RunKind tags one rich-text run.
type RunKind string

const (
	RunText     RunKind = "text"
	RunMention  RunKind = "mention"
	RunEquation RunKind = "equation"
)

// TextRun is one atomic span of text inside a title or rich-text payload.
type TextRun struct {
	Kind    RunKind
	Content string
}

// Property is a kind-tagged page property. Title and rich_text payloads carry
// Runs; status and select payloads carry their option name in Value.
type Property struct {
	Kind  PropertyKind
	Runs  []TextRun
	Value string
}

// BlockKind tags a content block.
type BlockKind string

const (
	BlockParagraph        BlockKind = "paragraph"
	BlockHeading1         BlockKind = "heading_1"
	BlockHeading2         BlockKind = "heading_2"
	BlockHeading3         BlockKind = "heading_3"
	BlockBulletedListItem BlockKind = "bulleted_list_item"
	BlockNumberedListItem BlockKind = "numbered_list_item"
	BlockToDo             BlockKind = "to_do"
	BlockToggle           BlockKind = "toggle"
	BlockQuote            BlockKind = "quote"
	BlockCallout          BlockKind = "callout"
	BlockOther            BlockKind = "other"
)

var translatableBlockKinds = map[BlockKind]struct{}{
	BlockParagraph:        {},
	BlockHeading1:         {},
	BlockHeading2:         {},
	BlockHeading3:         {},
	BlockBulletedListItem: {},
	BlockNumberedListItem: {},
	BlockToDo:             {},
	BlockToggle:           {},
	BlockQuote:            {},
	BlockCallout:          {},
}

// Translatable reports whether blocks of this kind carry a rich-text payload
// the pipeline understands. All other kinds pass through unmodified.
func (k BlockKind) Translatable() bool {
	_, ok := translatableBlockKinds[k]
	return ok
}

// Block is one unit of page body content. Raw retains the store-native payload
// so that the gateway can write translated runs back without dropping
// structure it does not model (checked state, colors, mention runs).
type Block struct {
	ID   string
	Kind BlockKind
	Runs []TextRun
	Raw  any
}

// HasText reports whether the block carries at least one plain-text run.
func (b Block) HasText() bool {
	for _, run := range b.Runs {
		if run.Kind == RunText {
			return true
		}
	}
	return false
}

// Page is a full document: an id plus its named properties. Child blocks are
// fetched separately.
type Page struct {
	ID         string
	Properties map[string]Property
}

// PageSummary is one listing-call result. Only the status property is carried;
// it is all the fetcher inspects.
type PageSummary struct {
	ID     string
	Status string
}
