// Package mcp is a thin JSON-RPC 2.0 stdio transport for the robogen tool
// table. It decodes a caller's tool invocation into plain parameters,
// dispatches through internal/tools, and encodes the artifact or
// validation report back as MCP content blocks.
//
// Stdout carries only the JSON-RPC stream; all logging goes to stderr.
package mcp

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	json "github.com/goccy/go-json"

	"robogen/internal/dialect"
	"robogen/internal/errors"
	"robogen/internal/logging"
	"robogen/internal/tools"
	"robogen/internal/version"
)

const protocolVersion = "2024-11-05"

// JSON-RPC 2.0 error codes.
const (
	codeParseError     = -32700
	codeMethodNotFound = -32601
	codeInvalidParams  = -32602
)

// Request is an incoming JSON-RPC 2.0 request.
type Request struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      interface{}     `json:"id"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// Response is an outgoing JSON-RPC 2.0 response.
type Response struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      interface{}     `json:"id"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *ResponseError  `json:"error,omitempty"`
}

// ResponseError is a JSON-RPC 2.0 error object.
type ResponseError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ContentBlock is a single content block in a tool result.
type ContentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// ToolResult is the result of a tools/call request.
type ToolResult struct {
	Content []ContentBlock `json:"content"`
	IsError bool           `json:"isError,omitempty"`
}

// ToolDescriptor describes one tool for tools/list.
type ToolDescriptor struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

type initializeResult struct {
	ProtocolVersion string       `json:"protocolVersion"`
	ServerInfo      serverInfo   `json:"serverInfo"`
	Capabilities    capabilities `json:"capabilities"`
}

type serverInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

type capabilities struct {
	Tools struct{} `json:"tools"`
}

type toolsListResult struct {
	Tools []ToolDescriptor `json:"tools"`
}

type toolCallParams struct {
	Name      string                     `json:"name"`
	Arguments map[string]json.RawMessage `json:"arguments"`
}

// Server serves the tool table over line-delimited JSON-RPC.
type Server struct {
	opts   tools.Options
	logger logging.Logger
	in     io.Reader
	out    io.Writer
}

// NewServer creates a stdio MCP server.
func NewServer(in io.Reader, out io.Writer, opts tools.Options, logger logging.Logger) *Server {
	return &Server{
		opts:   opts,
		logger: logger.WithComponent("mcp"),
		in:     in,
		out:    out,
	}
}

// Serve reads requests until the input closes or ctx is cancelled. Every
// request is answered synchronously; requests are independent, so callers
// may pipeline them freely.
func (s *Server) Serve(ctx context.Context) error {
	scanner := bufio.NewScanner(s.in)

	// Up to the validator payload cap plus framing overhead.
	const maxScanTokenSize = 1 << 20
	buf := make([]byte, maxScanTokenSize)
	scanner.Buffer(buf, maxScanTokenSize)

	for scanner.Scan() {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		var req Request
		if err := json.Unmarshal([]byte(line), &req); err != nil {
			s.write(Response{
				JSONRPC: "2.0",
				ID:      nil,
				Error:   &ResponseError{Code: codeParseError, Message: "parse error: " + err.Error()},
			})

			continue
		}

		// Notifications get no response.
		if strings.HasPrefix(req.Method, "notifications/") {
			continue
		}

		s.write(s.handle(req))
	}

	return scanner.Err()
}

func (s *Server) handle(req Request) Response {
	switch req.Method {
	case "initialize":
		return s.result(req.ID, initializeResult{
			ProtocolVersion: protocolVersion,
			ServerInfo:      serverInfo{Name: "robogen", Version: version.GetVersion()},
		})
	case "tools/list":
		return s.result(req.ID, toolsListResult{Tools: descriptors()})
	case "tools/call":
		return s.toolCall(req)
	case "ping":
		return s.result(req.ID, struct{}{})
	default:
		return Response{
			JSONRPC: "2.0",
			ID:      req.ID,
			Error:   &ResponseError{Code: codeMethodNotFound, Message: "method not found: " + req.Method},
		}
	}
}

func (s *Server) toolCall(req Request) Response {
	var params toolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return Response{
			JSONRPC: "2.0",
			ID:      req.ID,
			Error:   &ResponseError{Code: codeInvalidParams, Message: "invalid tools/call params: " + err.Error()},
		}
	}

	tool, ok := tools.Lookup(params.Name)
	if !ok {
		return Response{
			JSONRPC: "2.0",
			ID:      req.ID,
			Error:   &ResponseError{Code: codeInvalidParams, Message: "unknown tool: " + params.Name},
		}
	}

	args := make(map[string]string, len(params.Arguments))
	for key, raw := range params.Arguments {
		args[key] = decodeArgument(raw)
	}

	result, err := tool.Run(args, s.opts)
	if err != nil {
		// Typed core errors are tool-level failures, not protocol errors:
		// the call itself succeeded and the caller gets a correctable
		// diagnostic.
		s.logger.Warn(context.Background(), err, "tool call failed",
			"tool", params.Name, "code", errors.CodeOf(err))

		return s.result(req.ID, ToolResult{
			Content: []ContentBlock{{Type: "text", Text: err.Error()}},
			IsError: true,
		})
	}

	return s.result(req.ID, renderResult(result))
}

// renderResult encodes a tool result as content blocks. Artifacts pass
// through verbatim; a default-dialect substitution is surfaced as an extra
// note block rather than silently dropped or mixed into the artifact text.
func renderResult(result tools.Result) ToolResult {
	if result.Artifact != nil {
		blocks := []ContentBlock{{Type: "text", Text: result.Artifact.Body}}
		if result.Artifact.UsedDefaultDialect {
			blocks = append(blocks, ContentBlock{
				Type: "text",
				Text: fmt.Sprintf("note: unknown template_type, generated with default dialect %q", dialect.DefaultID),
			})
		}

		return ToolResult{Content: blocks}
	}

	reportJSON, err := json.MarshalIndent(result.Report, "", "  ")
	if err != nil {
		return ToolResult{
			Content: []ContentBlock{{Type: "text", Text: "internal error: failed to encode validation report"}},
			IsError: true,
		}
	}

	return ToolResult{Content: []ContentBlock{{Type: "text", Text: string(reportJSON)}}}
}

func (s *Server) result(id interface{}, payload interface{}) Response {
	raw, err := json.Marshal(payload)
	if err != nil {
		return Response{
			JSONRPC: "2.0",
			ID:      id,
			Error:   &ResponseError{Code: codeInvalidParams, Message: "failed to encode result"},
		}
	}

	return Response{JSONRPC: "2.0", ID: id, Result: raw}
}

func (s *Server) write(resp Response) {
	raw, err := json.Marshal(resp)
	if err != nil {
		s.logger.Error(context.Background(), err, "failed to encode response")

		return
	}
	fmt.Fprintln(s.out, string(raw))
}

// decodeArgument renders a JSON argument value as the plain string the
// tool table expects. Strings are unquoted; everything else keeps its
// JSON text.
func decodeArgument(raw json.RawMessage) string {
	var str string
	if err := json.Unmarshal(raw, &str); err == nil {
		return str
	}

	return strings.TrimSpace(string(raw))
}

// descriptors builds the tools/list entries from the tool table.
func descriptors() []ToolDescriptor {
	all := tools.All()
	out := make([]ToolDescriptor, 0, len(all))
	for _, t := range all {
		properties := make(map[string]interface{}, len(t.Params))
		var required []string
		for _, p := range t.Params {
			prop := map[string]interface{}{
				"type":        "string",
				"description": p.Description,
			}
			if len(p.Enum) > 0 {
				prop["enum"] = p.Enum
			}
			if p.Default != "" {
				prop["default"] = p.Default
			}
			properties[p.Name] = prop
			if p.Required {
				required = append(required, p.Name)
			}
		}

		schema := map[string]interface{}{
			"type":       "object",
			"properties": properties,
		}
		if len(required) > 0 {
			schema["required"] = required
		}

		out = append(out, ToolDescriptor{
			Name:        t.Name,
			Description: t.Description,
			InputSchema: schema,
		})
	}

	return out
}
