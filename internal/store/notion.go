package store

import (
	"context"
	"fmt"

	"github.com/jomei/notionapi"

	"github.com/atelierpage/traduire/internal/doc"
)

// NotionGateway implements Gateway on top of the Notion REST API client.
type NotionGateway struct {
	client *notionapi.Client
}

func NewNotionGateway(token string) *NotionGateway {
	return &NotionGateway{client: notionapi.NewClient(notionapi.Token(token))}
}

func (g *NotionGateway) QueryDatabase(ctx context.Context, databaseID, cursor string) (QueryPage, error) {
	request := &notionapi.DatabaseQueryRequest{}
	if cursor != "" {
		request.StartCursor = notionapi.Cursor(cursor)
	}

	response, err := g.client.Database.Query(ctx, notionapi.DatabaseID(databaseID), request)
	if err != nil {
		return QueryPage{}, &UpstreamError{Op: "query database", Err: err}
	}

	summaries := make([]doc.PageSummary, 0, len(response.Results))
	for _, page := range response.Results {
		summaries = append(summaries, doc.PageSummary{
			ID:     page.ID.String(),
			Status: statusName(page.Properties),
		})
	}

	return QueryPage{
		Summaries:  summaries,
		HasMore:    response.HasMore,
		NextCursor: string(response.NextCursor),
	}, nil
}

func (g *NotionGateway) GetPage(ctx context.Context, pageID string) (doc.Page, error) {
	page, err := g.client.Page.Get(ctx, notionapi.PageID(pageID))
	if err != nil {
		return doc.Page{}, &UpstreamError{Op: "get page", Err: err}
	}

	properties := make(map[string]doc.Property, len(page.Properties))
	for name, property := range page.Properties {
		properties[name] = fromNotionProperty(property)
	}

	return doc.Page{ID: page.ID.String(), Properties: properties}, nil
}

func (g *NotionGateway) UpdatePageProperties(ctx context.Context, pageID string, properties map[string]doc.Property) error {
	staged := notionapi.Properties{}
	for name, property := range properties {
		converted, err := toNotionProperty(property)
		if err != nil {
			return fmt.Errorf("property %q: %w", name, err)
		}
		staged[name] = converted
	}

	if _, err := g.client.Page.Update(ctx, notionapi.PageID(pageID), &notionapi.PageUpdateRequest{
		Properties: staged,
	}); err != nil {
		return &UpstreamError{Op: "update page properties", Err: err}
	}
	return nil
}

func (g *NotionGateway) ListChildBlocks(ctx context.Context, pageID string) ([]doc.Block, error) {
	response, err := g.client.Block.GetChildren(ctx, notionapi.BlockID(pageID), nil)
	if err != nil {
		return nil, &UpstreamError{Op: "list child blocks", Err: err}
	}

	blocks := make([]doc.Block, 0, len(response.Results))
	for _, block := range response.Results {
		blocks = append(blocks, fromNotionBlock(block))
	}
	return blocks, nil
}

func (g *NotionGateway) UpdateBlock(ctx context.Context, block doc.Block) error {
	request, err := blockUpdateRequest(block)
	if err != nil {
		return err
	}
	if _, err := g.client.Block.Update(ctx, notionapi.BlockID(block.ID), request); err != nil {
		return &UpstreamError{Op: "update block", Err: err}
	}
	return nil
}

func statusName(properties notionapi.Properties) string {
	property, ok := properties[doc.PropertyNameStatus]
	if !ok {
		return ""
	}
	status, ok := property.(*notionapi.StatusProperty)
	if !ok {
		return ""
	}
	return status.Status.Name
}

func fromNotionProperty(property notionapi.Property) doc.Property {
	switch value := property.(type) {
	case *notionapi.TitleProperty:
		return doc.Property{Kind: doc.PropertyTitle, Runs: fromNotionRichText(value.Title)}
	case *notionapi.RichTextProperty:
		return doc.Property{Kind: doc.PropertyRichText, Runs: fromNotionRichText(value.RichText)}
	case *notionapi.StatusProperty:
		return doc.Property{Kind: doc.PropertyStatus, Value: value.Status.Name}
	case *notionapi.SelectProperty:
		return doc.Property{Kind: doc.PropertySelect, Value: value.Select.Name}
	default:
		return doc.Property{Kind: doc.PropertyOther}
	}
}

func toNotionProperty(property doc.Property) (notionapi.Property, error) {
	switch property.Kind {
	case doc.PropertyTitle:
		return notionapi.TitleProperty{Title: toNotionRichText(property.Runs)}, nil
	case doc.PropertyRichText:
		return notionapi.RichTextProperty{RichText: toNotionRichText(property.Runs)}, nil
	case doc.PropertyStatus:
		return notionapi.StatusProperty{Status: notionapi.Status{Name: property.Value}}, nil
	case doc.PropertySelect:
		return notionapi.SelectProperty{Select: notionapi.Option{Name: property.Value}}, nil
	default:
		return nil, fmt.Errorf("property kind %q is not writable", property.Kind)
	}
}

func fromNotionRichText(richText []notionapi.RichText) []doc.TextRun {
	if len(richText) == 0 {
		return nil
	}
	runs := make([]doc.TextRun, 0, len(richText))
	for _, element := range richText {
		content := element.PlainText
		if element.Text != nil {
			content = element.Text.Content
		}
		runs = append(runs, doc.TextRun{
			Kind:    doc.RunKind(element.Type),
			Content: content,
		})
	}
	return runs
}

func toNotionRichText(runs []doc.TextRun) []notionapi.RichText {
	richText := make([]notionapi.RichText, 0, len(runs))
	for _, run := range runs {
		richText = append(richText, notionapi.RichText{
			Type:      notionapi.ObjectType(doc.RunText),
			Text:      &notionapi.Text{Content: run.Content},
			PlainText: run.Content,
		})
	}
	return richText
}

func fromNotionBlock(block notionapi.Block) doc.Block {
	converted := doc.Block{
		ID:   block.GetID().String(),
		Kind: doc.BlockOther,
		Raw:  block,
	}

	switch value := block.(type) {
	case *notionapi.ParagraphBlock:
		converted.Kind = doc.BlockParagraph
		converted.Runs = fromNotionRichText(value.Paragraph.RichText)
	case *notionapi.Heading1Block:
		converted.Kind = doc.BlockHeading1
		converted.Runs = fromNotionRichText(value.Heading1.RichText)
	case *notionapi.Heading2Block:
		converted.Kind = doc.BlockHeading2
		converted.Runs = fromNotionRichText(value.Heading2.RichText)
	case *notionapi.Heading3Block:
		converted.Kind = doc.BlockHeading3
		converted.Runs = fromNotionRichText(value.Heading3.RichText)
	case *notionapi.BulletedListItemBlock:
		converted.Kind = doc.BlockBulletedListItem
		converted.Runs = fromNotionRichText(value.BulletedListItem.RichText)
	case *notionapi.NumberedListItemBlock:
		converted.Kind = doc.BlockNumberedListItem
		converted.Runs = fromNotionRichText(value.NumberedListItem.RichText)
	case *notionapi.ToDoBlock:
		converted.Kind = doc.BlockToDo
		converted.Runs = fromNotionRichText(value.ToDo.RichText)
	case *notionapi.ToggleBlock:
		converted.Kind = doc.BlockToggle
		converted.Runs = fromNotionRichText(value.Toggle.RichText)
	case *notionapi.QuoteBlock:
		converted.Kind = doc.BlockQuote
		converted.Runs = fromNotionRichText(value.Quote.RichText)
	case *notionapi.CalloutBlock:
		converted.Kind = doc.BlockCallout
		converted.Runs = fromNotionRichText(value.Callout.RichText)
	}

	return converted
}

// blockUpdateRequest rebuilds the store payload for a translated block from
// its original payload, replacing only the text-run contents so that mention
// and equation runs, checked state and colors survive the round trip.
func blockUpdateRequest(block doc.Block) (*notionapi.BlockUpdateRequest, error) {
	request := &notionapi.BlockUpdateRequest{}

	switch raw := block.Raw.(type) {
	case *notionapi.ParagraphBlock:
		payload := raw.Paragraph
		payload.RichText = mergeRuns(payload.RichText, block.Runs)
		payload.Children = nil
		request.Paragraph = &payload
	case *notionapi.Heading1Block:
		payload := raw.Heading1
		payload.RichText = mergeRuns(payload.RichText, block.Runs)
		payload.Children = nil
		request.Heading1 = &payload
	case *notionapi.Heading2Block:
		payload := raw.Heading2
		payload.RichText = mergeRuns(payload.RichText, block.Runs)
		payload.Children = nil
		request.Heading2 = &payload
	case *notionapi.Heading3Block:
		payload := raw.Heading3
		payload.RichText = mergeRuns(payload.RichText, block.Runs)
		payload.Children = nil
		request.Heading3 = &payload
	case *notionapi.BulletedListItemBlock:
		payload := raw.BulletedListItem
		payload.RichText = mergeRuns(payload.RichText, block.Runs)
		payload.Children = nil
		request.BulletedListItem = &payload
	case *notionapi.NumberedListItemBlock:
		payload := raw.NumberedListItem
		payload.RichText = mergeRuns(payload.RichText, block.Runs)
		payload.Children = nil
		request.NumberedListItem = &payload
	case *notionapi.ToDoBlock:
		payload := raw.ToDo
		payload.RichText = mergeRuns(payload.RichText, block.Runs)
		payload.Children = nil
		request.ToDo = &payload
	case *notionapi.ToggleBlock:
		payload := raw.Toggle
		payload.RichText = mergeRuns(payload.RichText, block.Runs)
		payload.Children = nil
		request.Toggle = &payload
	case *notionapi.QuoteBlock:
		payload := raw.Quote
		payload.RichText = mergeRuns(payload.RichText, block.Runs)
		payload.Children = nil
		request.Quote = &payload
	case *notionapi.CalloutBlock:
		payload := raw.Callout
		payload.RichText = mergeRuns(payload.RichText, block.Runs)
		payload.Children = nil
		request.Callout = &payload
	default:
		return nil, fmt.Errorf("block %s: kind %q has no writable payload", block.ID, block.Kind)
	}

	return request, nil
}

func mergeRuns(original []notionapi.RichText, runs []doc.TextRun) []notionapi.RichText {
	merged := make([]notionapi.RichText, len(original))
	copy(merged, original)
	for i := range merged {
		if i >= len(runs) {
			break
		}
		if runs[i].Kind != doc.RunText || merged[i].Text == nil {
			continue
		}
		text := *merged[i].Text
		text.Content = runs[i].Content
		merged[i].Text = &text
		merged[i].PlainText = runs[i].Content
	}
	return merged
}
