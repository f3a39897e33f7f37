package templates

import (
	"bytes"
	"embed"
	"fmt"
	htmpl "html/template"
	"strings"
	texttpl "text/template"
)

//go:embed *.tmpl
var FS embed.FS

// subjects maps template name to the subject line template.
var subjects = map[string]string{
	"collaborator_invite": "{{.InviterName}} invited you to plan {{.ItineraryTitle}}",
}

// defaultFn supports pipe usage: {{ .Value | default "Fallback" }}
func defaultFn(fallback any, value any) any {
	switch x := value.(type) {
	case string:
		if strings.TrimSpace(x) == "" {
			return fallback
		}
		return x
	case nil:
		return fallback
	default:
		return value
	}
}

// Render renders the named template with data and returns subject, text and
// HTML bodies. Template files are <name>.txt.tmpl and <name>.html.tmpl.
func Render(name string, data map[string]any) (subject, text, html string, err error) {
	subjTpl, ok := subjects[name]
	if !ok {
		return "", "", "", fmt.Errorf("unknown email template %q", name)
	}

	st, err := texttpl.New("subject").Funcs(texttpl.FuncMap{"default": defaultFn}).Parse(subjTpl)
	if err != nil {
		return "", "", "", err
	}
	var sb bytes.Buffer
	if err := st.Execute(&sb, data); err != nil {
		return "", "", "", err
	}

	tt, err := texttpl.New(name + ".txt.tmpl").Funcs(texttpl.FuncMap{"default": defaultFn}).ParseFS(FS, name+".txt.tmpl")
	if err != nil {
		return "", "", "", err
	}
	var tb bytes.Buffer
	if err := tt.Execute(&tb, data); err != nil {
		return "", "", "", err
	}

	ht, err := htmpl.New(name + ".html.tmpl").Funcs(htmpl.FuncMap{"default": defaultFn}).ParseFS(FS, name+".html.tmpl")
	if err != nil {
		return "", "", "", err
	}
	var hb bytes.Buffer
	if err := ht.Execute(&hb, data); err != nil {
		return "", "", "", err
	}

	return sb.String(), tb.String(), hb.String(), nil
}
