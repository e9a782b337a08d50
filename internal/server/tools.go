package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

func pathSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"path": map[string]interface{}{
				"type":        "string",
				"description": "Absolute path to the image file",
			},
		},
		"required": []string{"path"},
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions, format and size on disk.",
			InputSchema: pathSchema(),
		},
		{
			Name:        "extract_text",
			Description: "Binarize an image file for OCR and return the recognized text.",
			InputSchema: pathSchema(),
		},
		{
			Name:        "detect_dark_patterns",
			Description: "Run preprocessing, OCR and dark-pattern matching on an image file. Returns the text, the matches per category (FOMO, False Scarcity, False Urgency) and summary lines.",
			InputSchema: pathSchema(),
		},
		{
			Name:        "detect_text_patterns",
			Description: "Match already-extracted text against the dark-pattern phrase table.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"text": map[string]interface{}{
						"type":        "string",
						"description": "Text to scan",
					},
				},
				"required": []string{"text"},
			},
		},
		{
			Name:        "capture_and_detect",
			Description: "Capture the primary screen and run the full detection pipeline on it.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			},
		},
	}
}
