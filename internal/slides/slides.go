package slides

import (
	"fmt"

	"github.com/takumif/aiact-explorer/internal/articles"
)

// maxRequirementsPerSlide caps how many requirements a requirements slide
// lists verbatim; the rest are summarized as a remainder count.
const maxRequirementsPerSlide = 3

// Kind distinguishes the three slide shapes derived from an article.
type Kind string

const (
	KindTitle        Kind = "title"
	KindBody         Kind = "body"
	KindRequirements Kind = "requirements"
)

// Slide is a derived, read-only presentational unit. The deck feeds the
// in-browser presenter and the HTML exporter unchanged.
type Slide struct {
	Kind          Kind                   `json:"kind"`
	ArticleID     string                 `json:"article_id"`
	ArticleNumber string                 `json:"article_number"`
	Title         string                 `json:"title"`
	TitleEN       string                 `json:"title_en,omitempty"`
	CategoryLabel string                 `json:"category_label,omitempty"`
	RiskLabel     string                 `json:"risk_label,omitempty"`
	SlidePages    []int                  `json:"slide_pages,omitempty"`
	TextJA        string                 `json:"text_ja,omitempty"`
	TextEN        string                 `json:"text_en,omitempty"`
	Requirements  []articles.Requirement `json:"requirements,omitempty"`
	Remaining     int                    `json:"remaining,omitempty"`
	Total         int                    `json:"total,omitempty"`
}

// BuildDeck derives the slide sequence from the articles in collection
// order: a title slide and a body slide per article, plus a requirements
// slide when the article has requirements. The deck is empty iff the input
// is empty. Pure derivation, no mutation of the input.
func BuildDeck(arts []articles.Article) []Slide {
	var deck []Slide
	for _, a := range arts {
		deck = append(deck, Slide{
			Kind:          KindTitle,
			ArticleID:     a.ArticleID,
			ArticleNumber: a.ArticleNumber,
			Title:         fmt.Sprintf("%s: %s", a.ArticleNumber, a.TitleJA),
			TitleEN:       a.TitleEN,
			CategoryLabel: a.Category.Label(),
			RiskLabel:     a.RiskLevel.Label(),
			SlidePages:    a.SlidePages,
		})

		deck = append(deck, Slide{
			Kind:          KindBody,
			ArticleID:     a.ArticleID,
			ArticleNumber: a.ArticleNumber,
			Title:         fmt.Sprintf("%s: 条文本文", a.ArticleNumber),
			TextJA:        a.ArticleText.JA,
			TextEN:        a.ArticleText.EN,
		})

		if len(a.Requirements) == 0 {
			continue
		}
		shown := a.Requirements
		if len(shown) > maxRequirementsPerSlide {
			shown = shown[:maxRequirementsPerSlide]
		}
		deck = append(deck, Slide{
			Kind:          KindRequirements,
			ArticleID:     a.ArticleID,
			ArticleNumber: a.ArticleNumber,
			Title:         fmt.Sprintf("%s: 要件 (%d件)", a.ArticleNumber, len(a.Requirements)),
			Requirements:  shown,
			Remaining:     len(a.Requirements) - len(shown),
			Total:         len(a.Requirements),
		})
	}
	return deck
}
