package tools

import "github.com/modelcontextprotocol/go-sdk/mcp"

// ptrBool is a convenience helper that returns a pointer to b, used for
// the DestructiveHint field on read-only tool annotations.
func ptrBool(b bool) *bool {
	return &b
}

// RegisterAll registers all Iron Throne MCP tools on the given server.
func RegisterAll(s *mcp.Server, h *Handler) {
	readOnly := &mcp.ToolAnnotations{
		ReadOnlyHint:    true,
		DestructiveHint: ptrBool(false),
	}

	mcp.AddTool(s, &mcp.Tool{
		Name: "parse_utterance",
		Description: "Extract entity claims from a free-text " +
			"utterance against the configured catalog, " +
			"tolerating misspellings and overlapping " +
			"candidate phrases. Returns the best-explaining " +
			"claims with a combined confidence score and tier.",
		Annotations: readOnly,
	}, h.ParseUtterance)
}
