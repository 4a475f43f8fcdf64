package dom

import "golang.org/x/net/html/atom"

// ElementKind is the closed taxonomy of spec.md §3.4: roughly one kind
// per distinct HTML element behavior, plus UnknownElement (tag name not
// recognized) and GenericElement (recognized but behaviorally plain).
// The original engine's dom/htmlelement.cpp special-cases these kinds
// for graphics/scripting dispatch; that dispatch is out of scope here,
// but tree construction's special-element-scope predicate and
// "insert element for token" still need to know which kind an element
// is, not just its string name (spec.md §7, supplemented features).
type ElementKind int

const (
	UnknownElement ElementKind = iota
	GenericElement
	HTMLElement
	HeadElement
	BodyElement
	TitleElement
	BaseElement
	LinkElement
	MetaElement
	StyleElement
	ScriptElement
	NoscriptElement
	TemplateElement
	ParagraphElement
	HeadingElement
	DivElement
	SpanElement
	AnchorElement
	ImageElement
	BrElement
	HrElement
	ListElement // ol, ul
	ListItemElement
	DListElement
	DTElement
	DDElement
	TableElement
	TheadElement
	TbodyElement
	TfootElement
	TrElement
	TdElement
	ThElement
	CaptionElement
	ColgroupElement
	ColElement
	FormElement
	InputElement
	ButtonElement
	SelectElement
	OptionElement
	OptgroupElement
	TextareaElement
	LabelElement
	FieldsetElement
	LegendElement
	FrameElement
	FramesetElement
	PlaintextElement
	PreElement
	BlockquoteElement
	AppletElement
	MarqueeElement
	ObjectElement
	FormattingElement // a, b, big, code, em, font, i, nobr, s, small, strike, strong, tt, u
)

// htmlTagKind maps a lowercase local name to its ElementKind and
// also serves as the tag-name validity table the original's
// parser/htmlnames.hpp kept separate (spec.md §7, "folded into dom's
// element-kind table since maintaining two tag lists in lockstep would
// drift").
var htmlTagKind = map[string]ElementKind{
	"html":       HTMLElement,
	"head":       HeadElement,
	"body":       BodyElement,
	"title":      TitleElement,
	"base":       BaseElement,
	"link":       LinkElement,
	"meta":       MetaElement,
	"style":      StyleElement,
	"script":     ScriptElement,
	"noscript":   NoscriptElement,
	"template":   TemplateElement,
	"p":          ParagraphElement,
	"h1":         HeadingElement,
	"h2":         HeadingElement,
	"h3":         HeadingElement,
	"h4":         HeadingElement,
	"h5":         HeadingElement,
	"h6":         HeadingElement,
	"div":        DivElement,
	"span":       SpanElement,
	"a":          FormattingElement,
	"b":          FormattingElement,
	"big":        FormattingElement,
	"code":       FormattingElement,
	"em":         FormattingElement,
	"font":       FormattingElement,
	"i":          FormattingElement,
	"nobr":       FormattingElement,
	"s":          FormattingElement,
	"small":      FormattingElement,
	"strike":     FormattingElement,
	"strong":     FormattingElement,
	"tt":         FormattingElement,
	"u":          FormattingElement,
	"img":        ImageElement,
	"br":         BrElement,
	"hr":         HrElement,
	"ol":         ListElement,
	"ul":         ListElement,
	"li":         ListItemElement,
	"dl":         DListElement,
	"dt":         DTElement,
	"dd":         DDElement,
	"table":      TableElement,
	"thead":      TheadElement,
	"tbody":      TbodyElement,
	"tfoot":      TfootElement,
	"tr":         TrElement,
	"td":         TdElement,
	"th":         ThElement,
	"caption":    CaptionElement,
	"colgroup":   ColgroupElement,
	"col":        ColElement,
	"form":       FormElement,
	"input":      InputElement,
	"button":     ButtonElement,
	"select":     SelectElement,
	"option":     OptionElement,
	"optgroup":   OptgroupElement,
	"textarea":   TextareaElement,
	"label":      LabelElement,
	"fieldset":   FieldsetElement,
	"legend":     LegendElement,
	"frame":      FrameElement,
	"frameset":   FramesetElement,
	"plaintext":  PlaintextElement,
	"pre":        PreElement,
	"blockquote": BlockquoteElement,
	"applet":     AppletElement,
	"marquee":    MarqueeElement,
	"object":     ObjectElement,

	// Recognized HTML5 tags with no behavior beyond the base element
	// (spec.md §3.4 "generic 'HTML element'"): tree construction still
	// needs these to resolve to something other than UnknownElement
	// (several are in specialTags below, or are rawTextTags/rcdataTags,
	// and must be "recognized" for those checks to be meaningful).
	"address":    GenericElement,
	"area":       GenericElement,
	"article":    GenericElement,
	"aside":      GenericElement,
	"audio":      GenericElement,
	"basefont":   GenericElement,
	"bgsound":    GenericElement,
	"canvas":     GenericElement,
	"center":     GenericElement,
	"details":    GenericElement,
	"dir":        GenericElement,
	"embed":      GenericElement,
	"figcaption": GenericElement,
	"figure":     GenericElement,
	"footer":     GenericElement,
	"header":     GenericElement,
	"hgroup":     GenericElement,
	"listing":    GenericElement,
	"main":       GenericElement,
	"mark":       GenericElement,
	"menu":       GenericElement,
	"meter":      GenericElement,
	"nav":        GenericElement,
	"noembed":    GenericElement,
	"noframes":   GenericElement,
	"output":     GenericElement,
	"param":      GenericElement,
	"progress":   GenericElement,
	"section":    GenericElement,
	"source":     GenericElement,
	"summary":    GenericElement,
	"time":       GenericElement,
	"track":      GenericElement,
	"video":      GenericElement,
	"wbr":        GenericElement,
	"xmp":        GenericElement,
}

// rawTextTags names elements whose content the tokenizer switches into
// RAWTEXT for; rcdataTags into RCDATA. Used by the tree constructor's
// "insert element for token" to drive SetState (spec.md §4.4 "state
// changes driven by the tree constructor").
var rawTextTags = map[string]bool{
	"style": true, "script": true, "xmp": true, "iframe": true,
	"noembed": true, "noframes": true,
}
var rcdataTags = map[string]bool{"title": true, "textarea": true}

// specialTags is the HTML5 "special" category used by the adoption
// agency algorithm's furthest-block search (spec.md §4.5).
var specialTags = map[string]bool{
	"address": true, "applet": true, "area": true, "article": true, "aside": true,
	"base": true, "basefont": true, "bgsound": true, "blockquote": true, "body": true,
	"br": true, "button": true, "caption": true, "center": true, "col": true,
	"colgroup": true, "dd": true, "details": true, "dir": true, "div": true,
	"dl": true, "dt": true, "embed": true, "fieldset": true, "figcaption": true,
	"figure": true, "footer": true, "form": true, "frame": true, "frameset": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"head": true, "header": true, "hgroup": true, "hr": true, "html": true,
	"iframe": true, "img": true, "input": true, "li": true, "link": true,
	"listing": true, "main": true, "marquee": true, "menu": true, "meta": true,
	"nav": true, "noembed": true, "noframes": true, "noscript": true, "object": true,
	"ol": true, "p": true, "param": true, "plaintext": true, "pre": true,
	"script": true, "section": true, "select": true, "source": true, "style": true,
	"summary": true, "table": true, "tbody": true, "td": true, "template": true,
	"textarea": true, "tfoot": true, "th": true, "thead": true, "title": true,
	"tr": true, "track": true, "ul": true, "wbr": true, "xmp": true,
}

// IsSpecial reports whether n (an Element) is in the "special" category.
func IsSpecial(n *Node) bool {
	return n.Type == ElementNode && specialTags[n.TagName]
}

// IsFormatting reports whether n is one of the formatting elements the
// adoption agency algorithm and active-formatting list operate on.
func IsFormatting(n *Node) bool {
	return n.Type == ElementNode && n.Kind == FormattingElement
}

// kindForTagName looks up the element-kind table, falling back to
// UnknownElement for a name the table doesn't recognize (spec.md §4.6
// Document::create_element).
func kindForTagName(name string) ElementKind {
	if k, ok := htmlTagKind[name]; ok {
		return k
	}
	return UnknownElement
}

// WantsRCDATA/WantsRAWTEXT tell the tree constructor which tokenizer
// state to switch into right after inserting this element (spec.md
// §4.4).
func WantsRCDATA(tagName string) bool  { return rcdataTags[tagName] }
func WantsRAWTEXT(tagName string) bool { return rawTextTags[tagName] }

// atomOf returns the interned atom for a lowercase tag name without
// needing a *Node; nothing in the module calls it yet.
func atomOf(name string) atom.Atom { return atom.Lookup([]byte(name)) }
