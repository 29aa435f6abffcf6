package slides

import (
	"strings"
	"testing"

	"github.com/takumif/aiact-explorer/internal/articles"
)

func articleWithRequirements(n int) articles.Article {
	a := articles.Article{
		ArticleID:     "article_9",
		ArticleNumber: "9条",
		TitleJA:       "リスク管理システム",
		TitleEN:       "Risk management system",
		SlidePages:    []int{23, 24},
		Category:      articles.CategoryQualityManagement,
		RiskLevel:     articles.RiskHigh,
		ArticleText:   articles.ArticleText{JA: "本文", EN: "body"},
	}
	for i := 0; i < n; i++ {
		a.Requirements = append(a.Requirements, articles.Requirement{
			ReqID:         "9-" + string(rune('1'+i)),
			Type:          articles.RequirementMandatory,
			DescriptionJA: "要件",
			DescriptionEN: "requirement",
		})
	}
	return a
}

func TestBuildDeckEmptyCollection(t *testing.T) {
	if deck := BuildDeck(nil); len(deck) != 0 {
		t.Errorf("deck from empty collection has %d slides, want 0", len(deck))
	}
}

func TestBuildDeckThreeSlidesPerArticle(t *testing.T) {
	deck := BuildDeck([]articles.Article{articleWithRequirements(4)})

	if len(deck) != 3 {
		t.Fatalf("got %d slides, want 3", len(deck))
	}
	if deck[0].Kind != KindTitle || deck[1].Kind != KindBody || deck[2].Kind != KindRequirements {
		t.Fatalf("slide kinds = %v %v %v", deck[0].Kind, deck[1].Kind, deck[2].Kind)
	}

	title := deck[0]
	if title.Title != "9条: リスク管理システム" {
		t.Errorf("title slide title = %q", title.Title)
	}
	if title.CategoryLabel != "品質管理" || title.RiskLabel != "高リスク" {
		t.Error("title slide labels not resolved")
	}

	reqs := deck[2]
	if len(reqs.Requirements) != 3 {
		t.Errorf("requirements slide lists %d, want 3", len(reqs.Requirements))
	}
	if reqs.Requirements[0].ReqID != "9-1" || reqs.Requirements[2].ReqID != "9-3" {
		t.Error("requirements slide does not show the first three verbatim")
	}
	if reqs.Remaining != 1 {
		t.Errorf("remaining = %d, want 1", reqs.Remaining)
	}
	if reqs.Total != 4 {
		t.Errorf("total = %d, want 4", reqs.Total)
	}
}

func TestBuildDeckSkipsRequirementsSlideWhenEmpty(t *testing.T) {
	deck := BuildDeck([]articles.Article{articleWithRequirements(0)})
	if len(deck) != 2 {
		t.Fatalf("got %d slides, want 2", len(deck))
	}
}

func TestBuildDeckPreservesCollectionOrder(t *testing.T) {
	first := articleWithRequirements(0)
	second := articleWithRequirements(2)
	second.ArticleID = "article_17"
	second.ArticleNumber = "17条"

	deck := BuildDeck([]articles.Article{first, second})
	if len(deck) != 5 {
		t.Fatalf("got %d slides, want 5", len(deck))
	}
	if deck[0].ArticleID != "article_9" || deck[2].ArticleID != "article_17" {
		t.Error("deck not in collection order")
	}
}

func TestExporterRender(t *testing.T) {
	deck := BuildDeck([]articles.Article{articleWithRequirements(4)})

	var b strings.Builder
	if err := NewExporter("").Render(&b, deck); err != nil {
		t.Fatalf("Render: %v", err)
	}
	html := b.String()

	for _, want := range []string{
		"<!DOCTYPE html>",
		"9条: リスク管理システム",
		"9条: 条文本文",
		"9条: 要件 (4件)",
		"... 他 1件",
		"page-break-after",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("rendered HTML missing %q", want)
		}
	}
}

func TestExporterWriteFile(t *testing.T) {
	dir := t.TempDir()
	deck := BuildDeck([]articles.Article{articleWithRequirements(1)})

	path, err := NewExporter("テスト").WriteFile(dir, deck)
	if err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if !strings.HasPrefix(path, dir) || !strings.HasSuffix(path, ".html") {
		t.Errorf("unexpected output path %q", path)
	}
}

func TestExporterRendersMarkdownBody(t *testing.T) {
	a := articleWithRequirements(0)
	a.ArticleText.JA = "リスクは**管理**されなければならない。"

	var b strings.Builder
	if err := NewExporter("").Render(&b, BuildDeck([]articles.Article{a})); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(b.String(), "<strong>管理</strong>") {
		t.Error("markdown emphasis in body text not rendered")
	}
}
