package quill

import (
	"context"
	"fmt"
	"strings"

	"github.com/tsawler/quill/request"
	"github.com/tsawler/quill/validate"
)

// bulletPresets maps friendly preset names to the service's enum values.
// Values already in enum form are passed through unchanged.
var bulletPresets = map[string]string{
	"bullet":   "BULLET_DISC_CIRCLE_SQUARE",
	"numbered": "NUMBERED_DECIMAL_ALPHA_ROMAN",
	"checkbox": "BULLET_CHECKBOX",
}

// InsertImage inserts an inline image fetched from uri at the given index.
// Width and height are in points; pass zero for both to let the service
// size the image.
func (e *Editor) InsertImage(ctx context.Context, documentID, uri string, index int64, width, height float64) Result {
	if res, ok := checkDocumentID(documentID); !ok {
		return res
	}
	if ok, msg := validate.Index(index); !ok {
		return failure(msg)
	}
	if strings.TrimSpace(uri) == "" {
		return failure("image URI is required")
	}
	if width < 0 || height < 0 {
		return failure("image dimensions must be non-negative")
	}
	if (width > 0) != (height > 0) {
		return failure("image width and height must be supplied together")
	}

	_, err := e.svc.BatchUpdate(ctx, documentID, []request.Record{
		request.NewInlineImage(index, uri, width, height),
	})
	if err != nil {
		return serviceFailure("Failed to insert image", err)
	}

	return success(fmt.Sprintf("Inserted image at index %d", index), map[string]any{
		"uri":   uri,
		"index": index,
	})
}

// ApplyBullets applies a bullet preset to the paragraphs overlapping the
// range [start, end). Preset may be a friendly name (bullet, numbered,
// checkbox) or a service enum value.
func (e *Editor) ApplyBullets(ctx context.Context, documentID string, start, end int64, preset string) Result {
	if res, ok := checkDocumentID(documentID); !ok {
		return res
	}
	if ok, msg := validate.IndexRange(start, end, 0); !ok {
		return failure(msg)
	}

	enum, ok := bulletPresets[strings.ToLower(preset)]
	if !ok {
		if preset == "" {
			return failure("bullet preset is required")
		}
		enum = preset
	}

	_, err := e.svc.BatchUpdate(ctx, documentID, []request.Record{
		request.NewBullets(start, end, enum),
	})
	if err != nil {
		return serviceFailure("Failed to apply bullets", err)
	}

	return success(fmt.Sprintf("Applied %s bullets to range [%d, %d)", enum, start, end), map[string]any{
		"preset":      enum,
		"start_index": start,
		"end_index":   end,
	})
}
