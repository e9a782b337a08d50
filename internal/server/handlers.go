package server

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ironsheep/dark-pattern-detector/internal/detection"
	"github.com/ironsheep/dark-pattern-detector/internal/imaging"
	"github.com/ironsheep/dark-pattern-detector/internal/pipeline"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "detect_dark_patterns").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// invalidArgsError marks argument problems so they surface as -32602 rather
// than as tool failures.
type invalidArgsError struct {
	msg string
}

func (e *invalidArgsError) Error() string { return e.msg }

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, codeInvalidParams, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		if _, ok := err.(*invalidArgsError); ok {
			return s.errorResponse(req.ID, codeInvalidParams, "Invalid params", err.Error())
		}
		return s.errorResponse(req.ID, codeToolFailure, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	case "image_load":
		return s.handleImageLoad(args)
	case "extract_text":
		return s.handleExtractText(args)
	case "detect_dark_patterns":
		return s.handleDetectDarkPatterns(args)
	case "detect_text_patterns":
		return s.handleDetectTextPatterns(args)
	case "capture_and_detect":
		return s.handleCaptureAndDetect()
	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	resp := &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
		},
	}
	if data != "" {
		resp.Error.Data = data
	}
	return resp
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure it returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

type pathArgs struct {
	Path string `json:"path"`
}

func parsePathArgs(args json.RawMessage) (string, error) {
	var a pathArgs
	if len(args) > 0 {
		if err := json.Unmarshal(args, &a); err != nil {
			return "", &invalidArgsError{msg: err.Error()}
		}
	}
	if strings.TrimSpace(a.Path) == "" {
		return "", &invalidArgsError{msg: "path is required"}
	}
	return a.Path, nil
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	path, err := parsePathArgs(args)
	if err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, path)
}

func (s *Server) analyzeFile(args json.RawMessage) (*pipeline.Result, error) {
	path, err := parsePathArgs(args)
	if err != nil {
		return nil, err
	}
	img, err := s.cache.Load(path)
	if err != nil {
		return nil, err
	}
	return s.analyzer.Analyze(img)
}

func (s *Server) handleExtractText(args json.RawMessage) (interface{}, error) {
	res, err := s.analyzeFile(args)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"text": res.Text,
	}, nil
}

func (s *Server) handleDetectDarkPatterns(args json.RawMessage) (interface{}, error) {
	res, err := s.analyzeFile(args)
	if err != nil {
		return nil, err
	}
	return res.Report(), nil
}

type textArgs struct {
	Text *string `json:"text"`
}

func (s *Server) handleDetectTextPatterns(args json.RawMessage) (interface{}, error) {
	var a textArgs
	if len(args) > 0 {
		if err := json.Unmarshal(args, &a); err != nil {
			return nil, &invalidArgsError{msg: err.Error()}
		}
	}
	if a.Text == nil {
		return nil, &invalidArgsError{msg: "text is required"}
	}

	set := s.matcher.Match(*a.Text)
	patterns := make(map[string][]string, len(set))
	for _, c := range detection.Categories {
		patterns[string(c)] = set[c]
	}
	return map[string]interface{}{
		"patterns": patterns,
		"summary":  set.Lines(),
		"total":    set.Total(),
	}, nil
}

func (s *Server) handleCaptureAndDetect() (interface{}, error) {
	res, err := s.analyzer.Run()
	if err != nil {
		return nil, err
	}
	return res.Report(), nil
}
