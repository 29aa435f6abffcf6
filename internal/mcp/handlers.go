package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/takumif/aiact-explorer/internal/articles"
	"github.com/takumif/aiact-explorer/internal/slides"
)

// handleSearchArticles filters the collection without disturbing the
// store's own filter state.
func (s *Server) handleSearchArticles(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	filter := articles.Filter{
		SearchText: request.GetString("search", ""),
		Category:   articles.Category(request.GetString("category", "")),
		RiskLevel:  articles.RiskLevel(request.GetString("risk_level", "")),
	}

	var matched []articles.Article
	for _, a := range s.store.Articles() {
		if articles.Matches(&a, filter) {
			matched = append(matched, a)
		}
	}

	if len(matched) == 0 {
		return mcp.NewToolResultText("No articles match. The collection may be empty; load a dataset first."), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d article(s):\n\n", len(matched))
	for _, a := range matched {
		fmt.Fprintf(&b, "- %s [%s] %s / %s (category: %s, risk: %s, requirements: %d)\n",
			a.ArticleID, a.ArticleNumber, a.TitleJA, a.TitleEN, a.Category, a.RiskLevel, len(a.Requirements))
	}
	return mcp.NewToolResultText(b.String()), nil
}

// handleGetArticle returns the full JSON record of one article.
func (s *Server) handleGetArticle(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := request.RequireString("article_id")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: article_id"), nil
	}

	a := s.store.Resolve(id)
	if a == nil {
		return mcp.NewToolResultError(fmt.Sprintf("no article with id %q", id)), nil
	}

	data, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encoding article: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

// handleBuildSlideDeck derives and returns the slide sequence.
func (s *Server) handleBuildSlideDeck(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	deck := slides.BuildDeck(s.store.Articles())
	if len(deck) == 0 {
		return mcp.NewToolResultText("The collection is empty; the deck has no slides."), nil
	}

	data, err := json.MarshalIndent(deck, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encoding deck: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
