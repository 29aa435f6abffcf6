package slides

// deckTemplate is the Go html/template for the exported slide document.
// Each slide is one print page.
const deckTemplate = `<!DOCTYPE html>
<html lang="ja">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}}</title>
  <style>
    body {
      font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif;
      margin: 0;
      padding: 0;
    }
    .slide {
      width: 100%;
      min-height: 100vh;
      padding: 4rem;
      box-sizing: border-box;
      page-break-after: always;
      border-bottom: 2px solid #ddd;
    }
    h2 {
      color: #2c3e50;
      border-bottom: 3px solid #3498db;
      padding-bottom: 0.5rem;
    }
    h3 {
      color: #34495e;
    }
    .subtitle {
      color: #7f8c8d;
      font-style: italic;
    }
    .body-text {
      padding: 1rem;
      background: #f9f9f9;
      border-radius: 4px;
    }
    .requirement {
      padding: 1rem;
      background: #fafafa;
      margin-bottom: 1rem;
      border-left: 4px solid #9b59b6;
      border-radius: 4px;
    }
    .remainder {
      color: #999;
      text-align: center;
    }
    @media print {
      .slide {
        page-break-after: always;
        border: none;
      }
    }
  </style>
</head>
<body>
{{range .Slides}}
  <div class="slide">
    <h2>{{.Title}}</h2>
{{- if eq .Kind "title"}}
    <h3 class="subtitle">{{.TitleEN}}</h3>
    <div style="margin-top: 2rem;">
      <p><strong>カテゴリ:</strong> {{.CategoryLabel}}</p>
      <p><strong>リスクレベル:</strong> {{.RiskLabel}}</p>
      <p><strong>スライドページ:</strong> {{range $i, $p := .SlidePages}}{{if $i}}, {{end}}{{$p}}{{end}}</p>
    </div>
{{- else if eq .Kind "body"}}
    <div style="margin-top: 2rem;">
      <h3>日本語</h3>
      <div class="body-text">{{.BodyJA}}</div>
      <h3 style="margin-top: 1rem;">English</h3>
      <div class="body-text">{{.BodyEN}}</div>
    </div>
{{- else if eq .Kind "requirements"}}
    <div style="margin-top: 1rem;">
{{- range .Requirements}}
      <div class="requirement"><strong>{{.ReqID}}:</strong> {{.DescriptionJA}}</div>
{{- end}}
{{- if gt .Remaining 0}}
      <p class="remainder">... 他 {{.Remaining}}件</p>
{{- end}}
    </div>
{{- end}}
  </div>
{{end}}
</body>
</html>`
