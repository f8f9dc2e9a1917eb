package render

import (
	"html"
	"strings"
)

// voidTags are serialized without a closing tag.
var voidTags = map[string]bool{
	"img": true,
	"br":  true,
	"hr":  true,
}

// HTML serializes a tree to markup. Text content and attribute values are
// escaped; the tree never carries raw markup.
func HTML(n *Node) string {
	var sb strings.Builder
	writeNode(&sb, n)
	return sb.String()
}

// PageHTML wraps a tree in a complete standalone page suitable for
// headless-browser printing.
func PageHTML(n *Node) string {
	var sb strings.Builder
	sb.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<style>\n")
	sb.WriteString(baseCSS)
	sb.WriteString("</style>\n</head>\n<body>\n")
	writeNode(&sb, n)
	sb.WriteString("\n</body>\n</html>\n")
	return sb.String()
}

func writeNode(sb *strings.Builder, n *Node) {
	if n == nil {
		return
	}

	sb.WriteString("<")
	sb.WriteString(n.Tag)
	if n.Class != "" {
		sb.WriteString(` class="`)
		sb.WriteString(html.EscapeString(n.Class))
		sb.WriteString(`"`)
	}
	for _, attr := range n.Attrs {
		sb.WriteString(" ")
		sb.WriteString(attr.Key)
		sb.WriteString(`="`)
		sb.WriteString(html.EscapeString(attr.Value))
		sb.WriteString(`"`)
	}
	sb.WriteString(">")

	if voidTags[n.Tag] {
		return
	}

	if n.Text != "" {
		sb.WriteString(html.EscapeString(n.Text))
	}
	for _, c := range n.Children {
		writeNode(sb, c)
	}

	sb.WriteString("</")
	sb.WriteString(n.Tag)
	sb.WriteString(">")
}

// baseCSS is the minimal stylesheet shared by all templates. Template
// specific styling keys off the template-<id> class on the root node.
const baseCSS = `
body { margin: 0; font-family: Georgia, 'Times New Roman', serif; color: #1e293b; }
.resume { position: relative; background: #fff; padding: 40px; min-height: 1123px; box-sizing: border-box; }
.name { margin: 0 0 4px; font-size: 32px; }
.contact { color: #475569; margin-bottom: 24px; }
section { margin-bottom: 20px; }
.section-heading { font-size: 18px; border-bottom: 1px solid #cbd5e1; padding-bottom: 4px; }
.item { margin-bottom: 12px; }
.item-header { display: flex; justify-content: space-between; }
.item-title { font-weight: bold; }
.item-date { color: #64748b; }
.item-subtitle { font-style: italic; color: #475569; }
.item-description { white-space: pre-line; margin: 4px 0 0; }
.photo img { width: 96px; height: 96px; object-fit: cover; }
.photo-circle img { border-radius: 50%; }
.photo-rectangle img { width: 120px; height: 90px; }
.photo-small img { width: 64px; height: 64px; }
.watermark { position: absolute; bottom: 12px; right: 16px; color: #94a3b8; font-size: 11px; }
.template-modern .name { color: #2563eb; }
.template-minimal .section-heading { border-bottom: none; text-transform: uppercase; font-size: 14px; }
.template-creative .name { font-family: Helvetica, Arial, sans-serif; }
.template-executive .resume { border-top: 6px solid #1e293b; }
.template-compact .resume { padding: 24px; font-size: 13px; }
`
