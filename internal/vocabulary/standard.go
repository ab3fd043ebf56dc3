package vocabulary

// standardNames lists the element names that are never treated as includes.
// The list is fixed at build time.
var standardNames = []string{
	// Markup declarations.
	"!DOCTYPE", "!doctype", "!--",

	// Document metadata and sectioning root.
	"html", "head", "title", "base", "link", "meta", "style", "body",

	// Content sectioning.
	"address", "article", "aside", "footer", "header", "h1", "h2", "h3", "h4", "h5", "h6",
	"hgroup", "main", "nav", "section", "search",

	// Text content.
	"blockquote", "dd", "div", "dl", "dt", "figcaption", "figure", "hr", "li", "menu", "ol",
	"p", "pre", "ul",

	// Inline text semantics.
	"a", "abbr", "b", "bdi", "bdo", "br", "cite", "code", "data", "dfn", "em", "i", "kbd",
	"mark", "q", "rp", "rt", "ruby", "s", "samp", "small", "span", "strong", "sub", "sup",
	"time", "u", "var", "wbr",

	// Image and multimedia.
	"area", "audio", "img", "map", "track", "video",

	// Embedded content.
	"embed", "fencedframe", "iframe", "object", "picture", "portal", "source",

	// SVG and MathML roots.
	"svg", "math",

	// Scripting.
	"canvas", "noscript", "script",

	// Demarcating edits.
	"del", "ins",

	// Tables.
	"caption", "col", "colgroup", "table", "tbody", "td", "tfoot", "th", "thead", "tr",

	// Forms.
	"button", "datalist", "fieldset", "form", "input", "label", "legend", "meter", "optgroup",
	"option", "output", "progress", "select", "textarea",

	// Interactive elements.
	"details", "dialog", "summary",

	// Web components.
	"slot", "template",

	// Obsolete but still seen in the wild.
	"acronym", "big", "center", "dir", "font", "frame", "frameset", "marquee", "nobr",
	"noembed", "noframes", "param", "plaintext", "rb", "rtc", "strike", "tt", "xmp",
}

var standard = func() map[string]struct{} {
	set := make(map[string]struct{}, len(standardNames))
	for _, name := range standardNames {
		set[name] = struct{}{}
	}
	return set
}()

// IsStandard reports whether name belongs to the standard vocabulary.
func IsStandard(name string) bool {
	_, ok := standard[name]
	return ok
}
