// Package a2a implements the wire protocol spoken between ZORA and remote
// agents: the part-oriented message model, the JSON-RPC envelopes for
// message/send, and the lossless conversion between the wire parts and the
// multimodal content parts consumed by the agent engine.
package a2a

import (
	"encoding/json"
)

const (
	// MethodMessageSend is the JSON-RPC method used to deliver one
	// conversational turn to a remote agent.
	MethodMessageSend = "message/send"

	// WellKnownAgentCardPath is where an agent publishes its card relative
	// to its base URL.
	WellKnownAgentCardPath = "/.well-known/agent.json"
)

const (
	PartTypeText = "text"
	PartTypeFile = "file"
)

const (
	RoleUser  = "user"
	RoleAgent = "agent"
)

const (
	KindTask    = "task"
	KindMessage = "message"
)

// TaskState is the lifecycle state of a remote task.
type TaskState string

const (
	TaskStateSubmitted TaskState = "submitted"
	TaskStateWorking   TaskState = "working"
	TaskStateCompleted TaskState = "completed"
	TaskStateFailed    TaskState = "failed"
	TaskStateCanceled  TaskState = "canceled"
)

// FileContent carries a file either by reference (URI) or by value
// (base64-encoded bytes). Exactly one of URI and Bytes is expected to be set.
type FileContent struct {
	Name     string `json:"name,omitempty"`
	MimeType string `json:"mimeType,omitempty"`
	URI      string `json:"uri,omitempty"`
	// Bytes is the base64-encoded file content for file-by-value parts.
	Bytes string `json:"bytes,omitempty"`
}

// Part is the wire representation of one message fragment. It is a tagged
// union: Type selects between a text part and a file part.
type Part struct {
	Type string       `json:"type"`
	Text string       `json:"text,omitempty"`
	File *FileContent `json:"file,omitempty"`

	Metadata map[string]any `json:"metadata,omitempty"`
}

// NewTextPart returns a wire text part.
func NewTextPart(text string) Part {
	return Part{Type: PartTypeText, Text: text}
}

// Message is one conversational turn, carried inside the message/send params.
type Message struct {
	Role      string `json:"role"`
	Parts     []Part `json:"parts"`
	MessageID string `json:"messageId"`
	ContextID string `json:"contextId,omitempty"`
	TaskID    string `json:"taskId,omitempty"`
}

// MessageSendParams is the params object of a message/send request.
type MessageSendParams struct {
	Message Message `json:"message"`
}

// SendMessageRequest is the outbound envelope for one message/send exchange.
// ID is a fresh correlation identifier generated per request.
type SendMessageRequest struct {
	ID     string            `json:"id"`
	Params MessageSendParams `json:"params"`
}

// ResponseError mirrors a JSON-RPC error object returned by a remote agent.
type ResponseError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// SendMessageResponse is the decoded reply to a message/send request. Result
// is left loosely typed: the dispatch layer normalizes it into a Task when the
// peer returned one.
type SendMessageResponse struct {
	Result any            `json:"result,omitempty"`
	Error  *ResponseError `json:"error,omitempty"`
}

// TaskStatus describes where a task is in its lifecycle.
type TaskStatus struct {
	State     TaskState `json:"state"`
	Message   *Message  `json:"message,omitempty"`
	Timestamp string    `json:"timestamp,omitempty"`
}

// Artifact is one unit of task output, holding an ordered list of parts.
type Artifact struct {
	ArtifactID string `json:"artifactId,omitempty"`
	Name       string `json:"name,omitempty"`
	Parts      []Part `json:"parts"`
}

// Task is the result object a remote agent returns for a completed
// message/send exchange.
type Task struct {
	ID        string     `json:"id"`
	ContextID string     `json:"contextId,omitempty"`
	Kind      string     `json:"kind"`
	Status    TaskStatus `json:"status"`
	Artifacts []Artifact `json:"artifacts,omitempty"`
	History   []Message  `json:"history,omitempty"`

	Metadata map[string]any `json:"metadata,omitempty"`
}

// Standard JSON-RPC 2.0 error codes used by the inbound server.
const (
	CodeParseError     = -32700
	CodeInvalidRequest = -32600
	CodeMethodNotFound = -32601
	CodeInvalidParams  = -32602
	CodeInternalError  = -32603
)

// Request is a raw inbound JSON-RPC request, decoded in two stages so the
// server can dispatch on Method before touching Params.
type Request struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      any             `json:"id"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// Response is an outbound JSON-RPC response produced by the inbound server.
type Response struct {
	JSONRPC string         `json:"jsonrpc"`
	ID      any            `json:"id"`
	Result  any            `json:"result,omitempty"`
	Error   *ResponseError `json:"error,omitempty"`
}
