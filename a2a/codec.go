package a2a

import (
	"encoding/base64"

	"github.com/NIHAAL084/ultimate-ai-assistant/errors"
)

// DefaultMimeType is assumed for inline file content when the producer did
// not declare one.
const DefaultMimeType = "application/octet-stream"

// ConvertContentPartsToA2A converts an ordered sequence of engine content
// parts into wire parts. Conversion is strict: a structurally empty part is an
// error, unlike the inbound direction which drops such parts.
func ConvertContentPartsToA2A(parts []ContentPart) ([]Part, error) {
	converted := make([]Part, 0, len(parts))
	for i, part := range parts {
		p, err := convertContentPartToA2A(part)
		if err != nil {
			return nil, errors.Wrapf(err, "part %d", i)
		}
		converted = append(converted, p)
	}
	return converted, nil
}

func convertContentPartToA2A(part ContentPart) (Part, error) {
	switch {
	case part.Text != "":
		return NewTextPart(part.Text), nil
	case part.FileData != nil:
		return Part{
			Type: PartTypeFile,
			File: &FileContent{
				URI:      part.FileData.FileURI,
				MimeType: part.FileData.MimeType,
			},
		}, nil
	case part.InlineData != nil:
		mimeType := part.InlineData.MimeType
		if mimeType == "" {
			mimeType = DefaultMimeType
		}
		return Part{
			Type: PartTypeFile,
			File: &FileContent{
				Bytes:    base64.StdEncoding.EncodeToString(part.InlineData.Data),
				MimeType: mimeType,
			},
		}, nil
	}
	return Part{}, errors.WithStack(errors.ErrUnsupportedPart)
}

// ConvertA2APartsToContent converts wire parts back into engine content
// parts. Inbound conversion is tolerant: a wire part carrying no text, no URI
// and no inline bytes is dropped rather than rejected, so a sloppy peer cannot
// fail the whole turn. Ordering of the surviving parts is preserved.
func ConvertA2APartsToContent(parts []Part) ([]ContentPart, error) {
	converted := make([]ContentPart, 0, len(parts))
	for i, part := range parts {
		if isEmptyWirePart(part) {
			continue
		}
		p, err := convertA2APartToContent(part)
		if err != nil {
			return nil, errors.Wrapf(err, "part %d", i)
		}
		converted = append(converted, p)
	}
	return converted, nil
}

func isEmptyWirePart(part Part) bool {
	if part.Text != "" {
		return false
	}
	if part.File != nil && (part.File.URI != "" || part.File.Bytes != "") {
		return false
	}
	return true
}

func convertA2APartToContent(part Part) (ContentPart, error) {
	if part.Text != "" {
		return NewTextContentPart(part.Text), nil
	}
	if part.File != nil {
		if part.File.URI != "" {
			return ContentPart{
				FileData: &FileData{
					FileURI:  part.File.URI,
					MimeType: part.File.MimeType,
				},
			}, nil
		}
		if part.File.Bytes != "" {
			data, err := base64.StdEncoding.DecodeString(part.File.Bytes)
			if err != nil {
				return ContentPart{}, errors.Wrapf(errors.ErrMissingFileData, "undecodable file bytes: %v", err)
			}
			return ContentPart{
				InlineData: &Blob{
					Data:     data,
					MimeType: part.File.MimeType,
				},
			}, nil
		}
		return ContentPart{}, errors.WithStack(errors.ErrMissingFileData)
	}
	return ContentPart{}, errors.WithStack(errors.ErrUnsupportedPart)
}
