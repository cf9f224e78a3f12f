// Package tools implements the MCP tools exposed by explain.
package tools

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Laisky/errors/v2"
	logSDK "github.com/Laisky/go-utils/v6/log"
	"github.com/Laisky/zap"
	mcp "github.com/mark3labs/mcp-go/mcp"

	"github.com/Laisky/explain/library/wikipedia"
)

// ExplainToolName is the name the tool is registered under.
const ExplainToolName = "explain"

// Explainer resolves query words into an article summary.
type Explainer interface {
	Explain(ctx context.Context, words []string, longForm bool) (*wikipedia.ArticleSummary, error)
}

// ExplainTool implements the explain MCP tool.
type ExplainTool struct {
	explainer Explainer
	logger    logSDK.Logger
}

// NewExplainTool constructs an ExplainTool with the provided dependencies.
func NewExplainTool(explainer Explainer, logger logSDK.Logger) (*ExplainTool, error) {
	if explainer == nil {
		return nil, errors.New("explainer is required")
	}
	if logger == nil {
		return nil, errors.New("logger is required")
	}

	return &ExplainTool{
		explainer: explainer,
		logger:    logger,
	}, nil
}

// Definition returns the MCP metadata describing the tool.
func (t *ExplainTool) Definition() mcp.Tool {
	return mcp.NewTool(
		ExplainToolName,
		mcp.WithDescription("Explain a concept with the summary of its best matching Wikipedia article."),
		mcp.WithString(
			"query",
			mcp.Required(),
			mcp.Description("Concept to explain, as plain words."),
		),
		mcp.WithBoolean(
			"more",
			mcp.Description("Return the longer article extract instead of the short description."),
		),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}

// Handle executes the explain tool logic.
func (t *ExplainTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := req.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	words := strings.Fields(query)
	if len(words) == 0 {
		return mcp.NewToolResultError("query cannot be empty"), nil
	}
	longForm := readBoolArg(req, "more")

	start := time.Now().UTC()
	t.logger.Debug("explain started",
		zap.Int("words", len(words)),
		zap.Bool("more", longForm),
	)

	summary, err := t.explainer.Explain(ctx, words, longForm)
	if err != nil {
		t.logger.Warn("explain failed", zap.Error(err), zap.Strings("words", words))
		return mcp.NewToolResultError(describeError(err)), nil
	}

	t.logger.Debug("explain completed",
		zap.String("title", summary.Title),
		zap.Duration("duration", time.Since(start)),
	)

	toolResult, err := mcp.NewToolResultJSON(summary)
	if err != nil {
		t.logger.Error("encode explain result", zap.Error(err))
		return mcp.NewToolResultError("failed to encode explain result"), nil
	}

	return toolResult, nil
}

// describeError formats lookup failures as "CODE: message" so clients can branch on the code.
func describeError(err error) string {
	if wikiErr, ok := wikipedia.AsError(err); ok {
		return fmt.Sprintf("%s: %s", wikiErr.Code, wikiErr.Error())
	}
	return fmt.Sprintf("explain failed: %v", err)
}

// readBoolArg reads an optional boolean argument, defaulting to false.
func readBoolArg(req mcp.CallToolRequest, key string) bool {
	if req.Params.Arguments == nil {
		return false
	}
	if raw, ok := req.Params.Arguments.(map[string]any); ok {
		if value, ok := raw[key].(bool); ok {
			return value
		}
	}
	return false
}
