package mcp

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"robogen/internal/logging"
	"robogen/internal/tools"
)

func newTestLogger() logging.Logger {
	return logging.NewLogger(&logging.LoggerConfig{
		Level:  logging.LevelError,
		Format: "text",
		Output: io.Discard,
	})
}

// serve runs the server over the given request lines and returns one decoded
// response per output line.
func serve(t *testing.T, opts tools.Options, requests ...string) []Response {
	t.Helper()

	in := strings.NewReader(strings.Join(requests, "\n") + "\n")
	var out bytes.Buffer
	srv := NewServer(in, &out, opts, newTestLogger())
	require.NoError(t, srv.Serve(context.Background()))

	var responses []Response
	for _, line := range strings.Split(strings.TrimSpace(out.String()), "\n") {
		if line == "" {
			continue
		}
		var resp Response
		require.NoError(t, json.Unmarshal([]byte(line), &resp), "line: %s", line)
		responses = append(responses, resp)
	}

	return responses
}

func toolResult(t *testing.T, resp Response) ToolResult {
	t.Helper()

	require.Nil(t, resp.Error, "unexpected error: %+v", resp.Error)
	var result ToolResult
	require.NoError(t, json.Unmarshal(resp.Result, &result))

	return result
}

func TestInitialize(t *testing.T) {
	responses := serve(t, tools.Options{},
		`{"jsonrpc":"2.0","id":1,"method":"initialize","params":{}}`)
	require.Len(t, responses, 1)

	resp := responses[0]
	require.Nil(t, resp.Error)
	assert.Equal(t, "2.0", resp.JSONRPC)
	assert.Equal(t, float64(1), resp.ID)

	var result struct {
		ProtocolVersion string `json:"protocolVersion"`
		ServerInfo      struct {
			Name string `json:"name"`
		} `json:"serverInfo"`
	}
	require.NoError(t, json.Unmarshal(resp.Result, &result))
	assert.Equal(t, "2024-11-05", result.ProtocolVersion)
	assert.Equal(t, "robogen", result.ServerInfo.Name)
}

func TestToolsList(t *testing.T) {
	responses := serve(t, tools.Options{},
		`{"jsonrpc":"2.0","id":2,"method":"tools/list"}`)
	require.Len(t, responses, 1)

	var result struct {
		Tools []ToolDescriptor `json:"tools"`
	}
	require.NoError(t, json.Unmarshal(responses[0].Result, &result))
	require.Len(t, result.Tools, 8)
	assert.Equal(t, "create_login_test_case", result.Tools[0].Name)
	assert.Equal(t, "validate_robot_framework_syntax", result.Tools[7].Name)

	login := result.Tools[0]
	assert.Equal(t, "object", login.InputSchema["type"])
	required, ok := login.InputSchema["required"].([]interface{})
	require.True(t, ok)
	assert.ElementsMatch(t, []interface{}{"url", "username", "password"}, required)
}

func TestToolsCallGeneratesArtifact(t *testing.T) {
	responses := serve(t, tools.Options{},
		`{"jsonrpc":"2.0","id":3,"method":"tools/call","params":{"name":"create_login_test_case","arguments":{"url":"https://app.example.com","username":"user","password":"pass"}}}`)
	require.Len(t, responses, 1)

	result := toolResult(t, responses[0])
	assert.False(t, result.IsError)
	require.Len(t, result.Content, 1)
	assert.Equal(t, "text", result.Content[0].Type)
	assert.Contains(t, result.Content[0].Text, "*** Test Cases ***")
	assert.Contains(t, result.Content[0].Text, "https://app.example.com")
}

func TestToolsCallSurfacesDefaultDialect(t *testing.T) {
	responses := serve(t, tools.Options{},
		`{"jsonrpc":"2.0","id":4,"method":"tools/call","params":{"name":"create_page_object_login","arguments":{"template_type":"shopify"}}}`)

	result := toolResult(t, responses[0])
	require.Len(t, result.Content, 2)
	assert.Contains(t, result.Content[1].Text, "default dialect")
	assert.Contains(t, result.Content[1].Text, "appLocator")
}

func TestToolsCallValidationError(t *testing.T) {
	responses := serve(t, tools.Options{},
		`{"jsonrpc":"2.0","id":5,"method":"tools/call","params":{"name":"create_login_test_case","arguments":{"url":"javascript:alert(1)","username":"u","password":"p"}}}`)

	// Sanitizer rejections are tool-level failures, not protocol errors.
	result := toolResult(t, responses[0])
	assert.True(t, result.IsError)
	require.NotEmpty(t, result.Content)
	assert.Contains(t, result.Content[0].Text, "ERR_INVALID_URL")
}

func TestToolsCallValidateReport(t *testing.T) {
	responses := serve(t, tools.Options{},
		`{"jsonrpc":"2.0","id":6,"method":"tools/call","params":{"name":"validate_robot_framework_syntax","arguments":{"robot_code":"*** Test Cases ***\nT\n    Log    ok\n"}}}`)

	result := toolResult(t, responses[0])
	require.Len(t, result.Content, 1)

	var report struct {
		Valid bool `json:"valid"`
	}
	require.NoError(t, json.Unmarshal([]byte(result.Content[0].Text), &report))
	assert.True(t, report.Valid)
}

func TestParseError(t *testing.T) {
	responses := serve(t, tools.Options{}, `{not json`)
	require.Len(t, responses, 1)
	require.NotNil(t, responses[0].Error)
	assert.Equal(t, -32700, responses[0].Error.Code)
}

func TestMethodNotFound(t *testing.T) {
	responses := serve(t, tools.Options{},
		`{"jsonrpc":"2.0","id":7,"method":"resources/list"}`)
	require.NotNil(t, responses[0].Error)
	assert.Equal(t, -32601, responses[0].Error.Code)
	assert.Contains(t, responses[0].Error.Message, "resources/list")
}

func TestUnknownTool(t *testing.T) {
	responses := serve(t, tools.Options{},
		`{"jsonrpc":"2.0","id":8,"method":"tools/call","params":{"name":"no_such_tool","arguments":{}}}`)
	require.NotNil(t, responses[0].Error)
	assert.Equal(t, -32602, responses[0].Error.Code)
	assert.Contains(t, responses[0].Error.Message, "no_such_tool")
}

func TestNotificationsAreSilent(t *testing.T) {
	responses := serve(t, tools.Options{},
		`{"jsonrpc":"2.0","method":"notifications/initialized"}`,
		`{"jsonrpc":"2.0","id":9,"method":"ping"}`)
	require.Len(t, responses, 1)
	assert.Equal(t, float64(9), responses[0].ID)
}

func TestPipelinedRequests(t *testing.T) {
	responses := serve(t, tools.Options{},
		`{"jsonrpc":"2.0","id":1,"method":"ping"}`,
		`{"jsonrpc":"2.0","id":2,"method":"ping"}`,
		`{"jsonrpc":"2.0","id":3,"method":"ping"}`)
	require.Len(t, responses, 3)
	for i, resp := range responses {
		assert.Equal(t, float64(i+1), resp.ID)
		assert.Nil(t, resp.Error)
	}
}

func TestNonStringArgumentsCoerced(t *testing.T) {
	// A numeric argument value is carried as its JSON text rather than
	// rejected at the transport.
	responses := serve(t, tools.Options{},
		`{"jsonrpc":"2.0","id":10,"method":"tools/call","params":{"name":"validate_robot_framework_syntax","arguments":{"robot_code":42}}}`)

	result := toolResult(t, responses[0])
	require.Len(t, result.Content, 1)

	var report struct {
		Valid bool `json:"valid"`
	}
	require.NoError(t, json.Unmarshal([]byte(result.Content[0].Text), &report))
	assert.False(t, report.Valid)
}
