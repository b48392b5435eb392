package ubb

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	bracketEscaper = strings.NewReplacer("[", `\[`, "]", `\]`)
	htmlEscaper    = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")
)

// Escape backslash-escapes square brackets so the text scans back as itself.
func Escape(s string) string {
	return bracketEscaper.Replace(s)
}

// escapeHTML encodes the characters that are special in HTML text and
// double-quoted attribute values.
func escapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

var rgbPattern = regexp.MustCompile(`([0-9]+)[, ]+([0-9]+)[, ]+([0-9]+)`)

// NormalizeColor converts rgb(r, g, b) and #rgb colors to #rrggbb form.
// Anything else is returned unchanged.
func NormalizeColor(color string) string {
	color = strings.TrimSpace(color)
	if m := rgbPattern.FindStringSubmatch(color); m != nil {
		var sb strings.Builder
		sb.WriteByte('#')
		for _, part := range m[1:] {
			n, err := strconv.Atoi(part)
			if err != nil || n > 255 {
				n = 255
			}
			fmt.Fprintf(&sb, "%02x", n)
		}
		return sb.String()
	}
	if len(color) == 4 && color[0] == '#' {
		var sb strings.Builder
		sb.WriteByte('#')
		for i := 1; i < 4; i++ {
			sb.WriteByte(color[i])
			sb.WriteByte(color[i])
		}
		return strings.ToLower(sb.String())
	}
	return color
}

// ColorAttr formats the attribute of a color tag.
func ColorAttr(color string) string {
	return "=" + color
}

// LinkAttr formats the attribute of a link tag.
func LinkAttr(href string) string {
	return " href=" + href
}

// colorValue extracts the color from a color tag attribute such as "=#ff0000".
func colorValue(attr string) string {
	attr = strings.TrimLeft(attr, " ")
	return strings.TrimSpace(strings.TrimPrefix(attr, "="))
}

// hrefValue extracts the URL from a link tag attribute such as " href=http://x"
// or "=http://x".
func hrefValue(attr string) string {
	attr = strings.TrimLeft(attr, " ")
	if len(attr) >= 5 && strings.EqualFold(attr[:5], "href=") {
		return attr[5:]
	}
	return strings.TrimPrefix(attr, "=")
}
