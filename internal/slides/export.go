package slides

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// Exporter renders a slide deck as a standalone paginated HTML document,
// one print page per slide. Body text is run through markdown so dataset
// text may carry emphasis or lists.
type Exporter struct {
	Title string
	md    goldmark.Markdown
}

// NewExporter creates an Exporter. The title appears in the document head.
func NewExporter(title string) *Exporter {
	if title == "" {
		title = "欧州AI法 スライド"
	}
	return &Exporter{
		Title: title,
		md: goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
				highlighting.NewHighlighting(
					highlighting.WithStyle("github"),
				),
			),
			goldmark.WithRendererOptions(
				html.WithUnsafe(),
			),
		),
	}
}

// slidePage is one rendered slide handed to the HTML template.
type slidePage struct {
	Slide
	BodyJA template.HTML
	BodyEN template.HTML
}

type deckData struct {
	Title  string
	Slides []slidePage
}

// Render writes the full HTML artifact for the deck.
func (e *Exporter) Render(w io.Writer, deck []Slide) error {
	tmpl, err := template.New("deck").Parse(deckTemplate)
	if err != nil {
		return fmt.Errorf("parsing deck template: %w", err)
	}

	pages := make([]slidePage, 0, len(deck))
	for _, s := range deck {
		p := slidePage{Slide: s}
		if s.Kind == KindBody {
			p.BodyJA, err = e.markdown(s.TextJA)
			if err != nil {
				return err
			}
			p.BodyEN, err = e.markdown(s.TextEN)
			if err != nil {
				return err
			}
		}
		pages = append(pages, p)
	}

	return tmpl.Execute(w, deckData{Title: e.Title, Slides: pages})
}

// WriteFile renders the deck into the output directory and returns the
// written path. The filename carries the export date, matching the save
// format of the editor.
func (e *Exporter) WriteFile(outputDir string, deck []Slide) (string, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}
	name := fmt.Sprintf("eu_ai_act_slides_%s.html", time.Now().Format("2006-01-02"))
	path := filepath.Join(outputDir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if err := e.Render(f, deck); err != nil {
		return "", fmt.Errorf("rendering deck: %w", err)
	}
	return path, nil
}

func (e *Exporter) markdown(src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := e.md.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return template.HTML(buf.String()), nil
}
