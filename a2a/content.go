package a2a

// FileData references a file by URI.
type FileData struct {
	FileURI  string `json:"fileUri"`
	MimeType string `json:"mimeType,omitempty"`
}

// Blob carries raw inline bytes.
type Blob struct {
	Data     []byte `json:"data"`
	MimeType string `json:"mimeType,omitempty"`
}

// ContentPart is the multimodal representation the agent engine consumes and
// produces. It is a tagged union over text, a file reference, and an inline
// blob; exactly one field is expected to be populated.
type ContentPart struct {
	Text       string    `json:"text,omitempty"`
	FileData   *FileData `json:"fileData,omitempty"`
	InlineData *Blob     `json:"inlineData,omitempty"`
}

// NewTextContentPart returns a text content part.
func NewTextContentPart(text string) ContentPart {
	return ContentPart{Text: text}
}

// IsEmpty reports whether the part carries no text, no file reference, and no
// inline bytes.
func (p ContentPart) IsEmpty() bool {
	return p.Text == "" && p.FileData == nil && p.InlineData == nil
}
