package app

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/mverhoef/folio/internal/common"
	"github.com/mverhoef/folio/internal/interfaces"
	"github.com/mverhoef/folio/internal/models"
)

// registerTools registers all MCP tools on the App's MCPServer.
func (a *App) registerTools() {
	s := a.MCPServer
	logger := a.Logger

	s.AddTool(createGetVersionTool(), handleGetVersion())
	s.AddTool(createGetPortfolioTool(), handleGetPortfolio(a.TrackerService, logger))
	s.AddTool(createAnalyzeTokensTool(), handleAnalyzeTokens(a.AnalyzerService, logger))
	s.AddTool(createGetMarketMoodTool(), handleGetMarketMood(a.AnalyzerService, logger))
	s.AddTool(createGetNetWorthTimelineTool(), handleGetNetWorthTimeline(a.NetWorthService, logger))
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(text),
		},
	}
}

func errorResult(message string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(message),
		},
		IsError: true,
	}
}

func jsonResult(v interface{}) *mcp.CallToolResult {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errorResult(fmt.Sprintf("Error encoding result: %v", err))
	}
	return textResult(string(data))
}

// createGetVersionTool returns the get_version tool definition
func createGetVersionTool() mcp.Tool {
	return mcp.NewTool("get_version",
		mcp.WithDescription("Get the Folio server version and status. Use this to verify connectivity."),
	)
}

func handleGetVersion() server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result := fmt.Sprintf("Folio Server\nVersion: %s\nBuild: %s\nCommit: %s\nStatus: OK",
			common.GetVersion(), common.GetBuild(), common.GetGitCommit())
		return textResult(result), nil
	}
}

// createGetPortfolioTool returns the get_portfolio tool definition
func createGetPortfolioTool() mcp.Tool {
	return mcp.NewTool("get_portfolio",
		mcp.WithDescription("Get a portfolio with current valuations: positions priced live, profit/loss per position, and portfolio totals including realised profit from closed positions."),
		mcp.WithString("kind",
			mcp.Required(),
			mcp.Description("Portfolio to fetch: 'crypto' or 'etf'"),
		),
	)
}

func handleGetPortfolio(trackerService interfaces.TrackerService, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		kindStr, err := request.RequireString("kind")
		if err != nil || kindStr == "" {
			return errorResult("Error: kind parameter is required ('crypto' or 'etf')"), nil
		}

		kind, err := models.ParseAssetKind(kindStr)
		if err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}

		view, err := trackerService.GetPortfolio(ctx, kind)
		if err != nil {
			logger.Error().Err(err).Str("kind", string(kind)).Msg("Get portfolio failed")
			return errorResult(fmt.Sprintf("Portfolio error: %v", err)), nil
		}

		return jsonResult(view), nil
	}
}

// createAnalyzeTokensTool returns the analyze_tokens tool definition
func createAnalyzeTokensTool() mcp.Tool {
	return mcp.NewTool("analyze_tokens",
		mcp.WithDescription("Rank tracked crypto assets by buy-signal strength. Each token is scored against its all-time and one-year price bands; tokens trading near historical lows rank first."),
	)
}

func handleAnalyzeTokens(analyzerService interfaces.AnalyzerService, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		tokens, err := analyzerService.AnalyzeTokens(ctx)
		if err != nil {
			logger.Error().Err(err).Msg("Token analysis failed")
			return errorResult(fmt.Sprintf("Analysis error: %v", err)), nil
		}

		return jsonResult(tokens), nil
	}
}

// createGetMarketMoodTool returns the get_market_mood tool definition
func createGetMarketMoodTool() mcp.Tool {
	return mcp.NewTool("get_market_mood",
		mcp.WithDescription("Get market-wide sentiment: the crypto Fear & Greed index and the altcoin season index, each classified into a sentiment band."),
	)
}

func handleGetMarketMood(analyzerService interfaces.AnalyzerService, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		mood, err := analyzerService.MarketMood(ctx)
		if err != nil {
			logger.Error().Err(err).Msg("Market mood fetch failed")
			return errorResult(fmt.Sprintf("Market mood error: %v", err)), nil
		}

		return jsonResult(mood), nil
	}
}

// createGetNetWorthTimelineTool returns the get_net_worth_timeline tool definition
func createGetNetWorthTimelineTool() mcp.Tool {
	return mcp.NewTool("get_net_worth_timeline",
		mcp.WithDescription("Get the chronological net worth timeline with period-over-period changes and a summary of recent and total growth."),
	)
}

func handleGetNetWorthTimeline(netWorthService interfaces.NetWorthService, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		timeline, err := netWorthService.Timeline(ctx)
		if err != nil {
			logger.Error().Err(err).Msg("Net worth timeline failed")
			return errorResult(fmt.Sprintf("Timeline error: %v", err)), nil
		}

		return jsonResult(timeline), nil
	}
}
