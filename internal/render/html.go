package render

import (
	"html/template"
	"io"
)

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="pt-BR">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
</head>
<body>
<section class="container-cartoes">
{{- with .View.Message}}
<p class="{{.Kind}}">{{.Text}}</p>
{{- end}}
{{- range .View.Cards}}
<article class="cartao">
<h2 class="cartao__titulo">{{.Title}}</h2>
<p class="cartao__texto">{{.Body}}</p>
<p class="cartao__texto"><strong>{{.FoundedLabel}}</strong> {{.Founded}}</p>
{{- if .Examples}}
<ul class="cartao__lista">
{{- range .Examples}}
<li class="cartao__item">{{.}}</li>
{{- end}}
</ul>
{{- end}}
{{- with .Link}}
<a class="cartao__link" href="{{.URL}}" target="{{.Target}}" rel="{{.Rel}}" aria-label="{{.AriaLabel}}">{{.Text}}</a>
{{- end}}
</article>
{{- end}}
</section>
</body>
</html>
`))

// WriteHTML writes v as a standalone HTML page.
func WriteHTML(w io.Writer, title string, v View) error {
	return pageTemplate.Execute(w, struct {
		Title string
		View  View
	}{Title: title, View: v})
}
