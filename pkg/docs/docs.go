// Package docs renders component documentation for display: plain text for
// completion items, markdown and HTML pages, and online documentation links.
package docs

import (
	"bytes"
	"fmt"
	"html"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/open-cli-collective/searchui-cli/pkg/schema"
)

// DefaultBaseURL is the root of the online component reference.
const DefaultBaseURL = "https://coveo.github.io/search-ui/components/"

// mdRenderer is a pre-configured goldmark instance with GFM table extension.
var mdRenderer = goldmark.New(
	goldmark.WithExtensions(extension.Table),
)

// Text converts a documentation comment to readable text. Comments that
// cannot be converted are returned trimmed but otherwise untouched.
func Text(comment string) string {
	if strings.TrimSpace(comment) == "" {
		return ""
	}
	text, err := htmltomarkdown.ConvertString(comment)
	if err != nil {
		return strings.TrimSpace(comment)
	}
	return strings.TrimSpace(text)
}

// ComponentURL links to the online reference of a component.
func ComponentURL(baseURL, componentName string) string {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	return baseURL + strings.ToLower(componentName) + ".html"
}

// OptionURL links to one option of a component's online reference.
func OptionURL(baseURL, componentName, optionName string) string {
	return ComponentURL(baseURL, componentName) + "#options." + strings.ToLower(optionName)
}

// ComponentMarkdown renders a component page: description and option table.
func ComponentMarkdown(component *schema.Entity) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", component.Name)
	fmt.Fprintf(&sb, "Markup: `class=\"%s\"`\n\n", schema.MarkupClass(component.Name))
	if text := Text(component.Comment); text != "" {
		sb.WriteString(text)
		sb.WriteString("\n\n")
	}

	if len(component.Options) == 0 {
		return sb.String()
	}

	sb.WriteString("## Options\n\n")
	sb.WriteString("| Attribute | Type | Default | Required | Values |\n")
	sb.WriteString("|---|---|---|---|---|\n")
	for _, option := range component.Options {
		def, _ := option.DefaultValue()
		required := ""
		if option.Required() {
			required = "yes"
		}
		fmt.Fprintf(&sb, "| `%s` | %s | %s | %s | %s |\n",
			option.MarkupName(),
			cell(option.Type),
			cell(def),
			required,
			cell(strings.Join(option.AllowedValues(), ", ")),
		)
	}
	return sb.String()
}

func cell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

// ComponentHTML renders ComponentMarkdown as an HTML fragment.
func ComponentHTML(component *schema.Entity) (string, error) {
	return render(ComponentMarkdown(component))
}

// PreviewHTML renders a standalone page naming the component and showing
// its markup.
func PreviewHTML(component *schema.Entity, markup string) (string, error) {
	if component == nil {
		return page("Not a component !"), nil
	}

	fence := "```"
	for strings.Contains(markup, fence) {
		fence += "`"
	}
	body, err := render(fmt.Sprintf("Current component is **%s**\n\n%shtml\n%s\n%s\n", component.Name, fence, markup, fence))
	if err != nil {
		return "", err
	}
	return page(body), nil
}

func render(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := mdRenderer.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("failed to render documentation: %w", err)
	}
	return buf.String(), nil
}

func page(body string) string {
	return "<html><head></head><body>" + body + "</body></html>"
}

// Examples renders one attribute usage per value, followed by the comment,
// as text.
func Examples(attributeName string, values []string, comment string) string {
	lines := make([]string, len(values))
	for i, v := range values {
		lines[i] = fmt.Sprintf("%s='%s'", attributeName, v)
	}
	return Text(fmt.Sprintf("<h1>Example(s) :</h1><pre>%s</pre>%s",
		html.EscapeString(strings.Join(lines, "\n")), comment))
}
