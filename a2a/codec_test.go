package a2a_test

import (
	"encoding/base64"
	"testing"

	"github.com/NIHAAL084/ultimate-ai-assistant/a2a"
	"github.com/NIHAAL084/ultimate-ai-assistant/errors"
	"github.com/stretchr/testify/require"
)

func TestConvertContentPartsToA2A(t *testing.T) {
	t.Run("text part", func(t *testing.T) {
		parts, err := a2a.ConvertContentPartsToA2A([]a2a.ContentPart{
			a2a.NewTextContentPart("hello"),
		})
		require.NoError(t, err)
		require.Len(t, parts, 1)
		require.Equal(t, a2a.PartTypeText, parts[0].Type)
		require.Equal(t, "hello", parts[0].Text)
	})

	t.Run("file reference keeps uri and mime type", func(t *testing.T) {
		parts, err := a2a.ConvertContentPartsToA2A([]a2a.ContentPart{
			{FileData: &a2a.FileData{FileURI: "gs://bucket/report.pdf", MimeType: "application/pdf"}},
		})
		require.NoError(t, err)
		require.Len(t, parts, 1)
		require.Equal(t, a2a.PartTypeFile, parts[0].Type)
		require.Equal(t, "gs://bucket/report.pdf", parts[0].File.URI)
		require.Equal(t, "application/pdf", parts[0].File.MimeType)
		require.Empty(t, parts[0].File.Bytes)
	})

	t.Run("inline data is base64 encoded", func(t *testing.T) {
		data := []byte{0x00, 0x01, 0x02, 0xff}
		parts, err := a2a.ConvertContentPartsToA2A([]a2a.ContentPart{
			{InlineData: &a2a.Blob{Data: data, MimeType: "image/png"}},
		})
		require.NoError(t, err)
		require.Len(t, parts, 1)
		require.Equal(t, base64.StdEncoding.EncodeToString(data), parts[0].File.Bytes)
		require.Equal(t, "image/png", parts[0].File.MimeType)
	})

	t.Run("inline data without mime type gets the default", func(t *testing.T) {
		parts, err := a2a.ConvertContentPartsToA2A([]a2a.ContentPart{
			{InlineData: &a2a.Blob{Data: []byte("raw")}},
		})
		require.NoError(t, err)
		require.Equal(t, a2a.DefaultMimeType, parts[0].File.MimeType)
	})

	t.Run("empty part is rejected", func(t *testing.T) {
		_, err := a2a.ConvertContentPartsToA2A([]a2a.ContentPart{
			a2a.NewTextContentPart("ok"),
			{},
		})
		require.Error(t, err)
		require.ErrorIs(t, err, errors.ErrUnsupportedPart)
		require.Contains(t, err.Error(), "part 1")
	})

	t.Run("ordering is preserved", func(t *testing.T) {
		parts, err := a2a.ConvertContentPartsToA2A([]a2a.ContentPart{
			a2a.NewTextContentPart("first"),
			{FileData: &a2a.FileData{FileURI: "file:///second"}},
			a2a.NewTextContentPart("third"),
		})
		require.NoError(t, err)
		require.Len(t, parts, 3)
		require.Equal(t, "first", parts[0].Text)
		require.Equal(t, "file:///second", parts[1].File.URI)
		require.Equal(t, "third", parts[2].Text)
	})
}

func TestConvertA2APartsToContent(t *testing.T) {
	t.Run("text part", func(t *testing.T) {
		parts, err := a2a.ConvertA2APartsToContent([]a2a.Part{
			a2a.NewTextPart("hello"),
		})
		require.NoError(t, err)
		require.Len(t, parts, 1)
		require.Equal(t, "hello", parts[0].Text)
	})

	t.Run("file by uri", func(t *testing.T) {
		parts, err := a2a.ConvertA2APartsToContent([]a2a.Part{
			{Type: a2a.PartTypeFile, File: &a2a.FileContent{URI: "https://peer/file.txt", MimeType: "text/plain"}},
		})
		require.NoError(t, err)
		require.Len(t, parts, 1)
		require.NotNil(t, parts[0].FileData)
		require.Equal(t, "https://peer/file.txt", parts[0].FileData.FileURI)
		require.Equal(t, "text/plain", parts[0].FileData.MimeType)
	})

	t.Run("file by value is base64 decoded", func(t *testing.T) {
		data := []byte("inline content")
		parts, err := a2a.ConvertA2APartsToContent([]a2a.Part{
			{Type: a2a.PartTypeFile, File: &a2a.FileContent{
				Bytes:    base64.StdEncoding.EncodeToString(data),
				MimeType: "text/plain",
			}},
		})
		require.NoError(t, err)
		require.Len(t, parts, 1)
		require.NotNil(t, parts[0].InlineData)
		require.Equal(t, data, parts[0].InlineData.Data)
	})

	t.Run("structurally empty wire parts are dropped", func(t *testing.T) {
		parts, err := a2a.ConvertA2APartsToContent([]a2a.Part{
			a2a.NewTextPart("keep me"),
			{Type: a2a.PartTypeText},
			{Type: a2a.PartTypeFile, File: &a2a.FileContent{MimeType: "text/plain"}},
			{},
			a2a.NewTextPart("and me"),
		})
		require.NoError(t, err)
		require.Len(t, parts, 2)
		require.Equal(t, "keep me", parts[0].Text)
		require.Equal(t, "and me", parts[1].Text)
	})

	t.Run("undecodable file bytes fail the turn", func(t *testing.T) {
		_, err := a2a.ConvertA2APartsToContent([]a2a.Part{
			{Type: a2a.PartTypeFile, File: &a2a.FileContent{Bytes: "not base64!!!"}},
		})
		require.Error(t, err)
		require.ErrorIs(t, err, errors.ErrMissingFileData)
	})
}

func TestCodecRoundTrip(t *testing.T) {
	original := []a2a.ContentPart{
		a2a.NewTextContentPart("check this file"),
		{FileData: &a2a.FileData{FileURI: "gs://bucket/a.bin", MimeType: "application/octet-stream"}},
		{InlineData: &a2a.Blob{Data: []byte{1, 2, 3}, MimeType: "image/png"}},
	}

	wire, err := a2a.ConvertContentPartsToA2A(original)
	require.NoError(t, err)

	back, err := a2a.ConvertA2APartsToContent(wire)
	require.NoError(t, err)
	require.Equal(t, original, back)
}
