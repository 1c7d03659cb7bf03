package quill

import (
	"context"
	"fmt"
	"strings"

	"github.com/tsawler/quill/model"
	"github.com/tsawler/quill/request"
	"github.com/tsawler/quill/validate"
)

// variantHints maps a header/footer variant to the id substrings used to
// match a physical section when the service does not expose variants
// directly.
var variantHints = map[string][]string{
	"DEFAULT":         {"default"},
	"FIRST_PAGE_ONLY": {"firstpage", "first"},
	"EVEN_PAGE":       {"even"},
}

// UpdateHeaderFooter replaces the content of a header or footer section.
//
// The physical section is resolved in three steps: an id-substring match
// for the requested variant, then the first available section of the
// requested type. A document with no sections of that type fails with an
// instruction to create one first; quill never fabricates a section.
func (e *Editor) UpdateHeaderFooter(ctx context.Context, documentID, sectionType, content, variant string) Result {
	if res, ok := checkDocumentID(documentID); !ok {
		return res
	}
	if ok, msg := validate.HeaderFooter(sectionType, variant); !ok {
		return failure(msg)
	}

	doc, err := e.snapshot(ctx, documentID)
	if err != nil {
		return serviceFailure("Failed to fetch document", err)
	}

	kind := model.SectionHeader
	if sectionType == "footer" {
		kind = model.SectionFooter
	}
	sections := doc.Sections(kind)
	if len(sections) == 0 {
		return failure(fmt.Sprintf(
			"Document has no %s sections; create one first with CreateHeaderFooter", sectionType))
	}

	section, matched := resolveSection(sections, variant)

	para := section.FirstParagraph()
	if para == nil {
		return failure(fmt.Sprintf("%s section %s has no paragraph to write into", sectionType, section.ID))
	}

	// Delete before insert: the delete boundaries are computed against
	// the pre-insert state of the section.
	var records []request.Record
	if para.Text != "" && para.Span.End-1 > para.Span.Start {
		records = append(records,
			request.NewSegmentDeleteRange(section.ID, para.Span.Start, para.Span.End-1))
	}
	records = append(records,
		request.NewSegmentInsertText(section.ID, para.Span.Start, content))

	if _, err := e.svc.BatchUpdate(ctx, documentID, records); err != nil {
		return serviceFailure(fmt.Sprintf("Failed to update %s content", sectionType), err)
	}

	return success(fmt.Sprintf("Updated %s %s", sectionType, section.ID), map[string]any{
		"section_id":      section.ID,
		"section_type":    sectionType,
		"variant_matched": matched,
		"replaced":        para.Text != "",
	})
}

// resolveSection picks the section matching the variant's id-substring
// hints, falling back to the first available section. The second return
// value reports whether a hint matched.
func resolveSection(sections []*model.Section, variant string) (*model.Section, bool) {
	for _, hint := range variantHints[variant] {
		for _, s := range sections {
			if strings.Contains(strings.ToLower(s.ID), hint) {
				return s, true
			}
		}
	}
	return sections[0], false
}

// CreateHeaderFooter asks the service to create a header or footer of the
// given variant. A duplicate-create rejected by the service is reported as
// an explicit "already exists" failure. For first-page variants the batch
// also enables distinct first-page headers and footers on the document.
func (e *Editor) CreateHeaderFooter(ctx context.Context, documentID, sectionType, variant string) Result {
	if res, ok := checkDocumentID(documentID); !ok {
		return res
	}
	if ok, msg := validate.HeaderFooter(sectionType, variant); !ok {
		return failure(msg)
	}

	var records []request.Record
	if sectionType == "header" {
		records = append(records, request.NewCreateHeader(variant))
	} else {
		records = append(records, request.NewCreateFooter(variant))
	}
	if variant == "FIRST_PAGE_ONLY" {
		records = append(records, request.NewUseFirstPageHeaderFooter())
	}

	result, err := e.svc.BatchUpdate(ctx, documentID, records)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "exist") {
			return failure(fmt.Sprintf("A %s %s already exists for this document", variant, sectionType))
		}
		return serviceFailure(fmt.Sprintf("Failed to create %s", sectionType), err)
	}

	metadata := map[string]any{
		"section_type": sectionType,
		"variant":      variant,
	}
	if len(result.Replies) > 0 {
		if r := result.Replies[0].CreateHeader; r != nil {
			metadata["section_id"] = r.HeaderID
		}
		if r := result.Replies[0].CreateFooter; r != nil {
			metadata["section_id"] = r.FooterID
		}
	}
	return success(fmt.Sprintf("Created %s %s", variant, sectionType), metadata)
}
