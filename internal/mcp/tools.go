package mcp

import "github.com/mark3labs/mcp-go/mcp"

// searchArticlesTool defines the search_articles MCP tool.
var searchArticlesTool = mcp.NewTool("search_articles",
	mcp.WithDescription("Search EU AI Act articles by number or title, optionally narrowed by category and risk level."),
	mcp.WithString("search",
		mcp.Description("Case-insensitive substring matched against the article number and both titles"),
	),
	mcp.WithString("category",
		mcp.Description("Filter by article category"),
		mcp.Enum("definition", "scope", "prohibition", "classification", "obligation_provider",
			"obligation_deployer", "quality_management", "conformity_assessment", "transparency",
			"testing", "monitoring", "gpai"),
	),
	mcp.WithString("risk_level",
		mcp.Description("Filter by risk level"),
		mcp.Enum("prohibited", "high-risk", "gpai", "gpai_systemic", "limited-risk", "minimal-risk", "general"),
	),
)

// getArticleTool defines the get_article MCP tool.
var getArticleTool = mcp.NewTool("get_article",
	mcp.WithDescription("Get the full record of one article: bilingual text, requirements, cross-references and metadata."),
	mcp.WithString("article_id",
		mcp.Required(),
		mcp.Description("Article id, e.g. article_9"),
	),
)

// buildSlideDeckTool defines the build_slide_deck MCP tool.
var buildSlideDeckTool = mcp.NewTool("build_slide_deck",
	mcp.WithDescription("Derive the flattened slide sequence (title, body and requirements slides per article) from the whole collection."),
)
