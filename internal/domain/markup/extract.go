// Package markup is the raw-text extraction boundary for page inspection.
// There is deliberately no HTML parse tree here: detection is regex and
// substring based, and every heuristic lives behind a named function so the
// approach can be swapped later without touching evaluator logic.
package markup

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/weppos/publicsuffix-go/publicsuffix"
)

var (
	titleRe    = regexp.MustCompile(`(?is)<title[^>]*>(.*?)</title>`)
	doctypeRe  = regexp.MustCompile(`(?i)<!doctype\s+html`)
	headingRe  = regexp.MustCompile(`(?is)<h([1-6])\b`)
	jsonLDRe   = regexp.MustCompile(`(?is)<script\b[^>]*type\s*=\s*["']application/ld\+json["'][^>]*>(.*?)</script>`)
	scriptRe   = regexp.MustCompile(`(?is)<script\b.*?</script>`)
	styleRe    = regexp.MustCompile(`(?is)<style\b.*?</style>`)
	anyTagRe   = regexp.MustCompile(`(?s)<[^>]*>`)

	// Precompiled per-element and per-attribute patterns. The maps are
	// populated once at init and read-only afterwards, so concurrent audits
	// share them safely.
	tagRes     = map[string]*regexp.Regexp{}
	attrValRes = map[string][3]*regexp.Regexp{}
)

func init() {
	for _, name := range []string{"html", "meta", "link", "title", "img", "script", "a", "input", "label", "button", "form", "nav", "main", "style", "body", "head"} {
		tagRes[name] = compileTagRe(name)
	}
	for _, name := range []string{"name", "content", "property", "charset", "http-equiv", "rel", "href", "lang", "src", "alt", "width", "height", "loading", "type", "id", "for", "role", "class", "style"} {
		attrValRes[name] = compileAttrRes(name)
	}
}

func compileTagRe(name string) *regexp.Regexp {
	return regexp.MustCompile(`(?is)<` + regexp.QuoteMeta(name) + `\b[^>]*>`)
}

func compileAttrRes(name string) [3]*regexp.Regexp {
	quoted := regexp.QuoteMeta(name)
	return [3]*regexp.Regexp{
		regexp.MustCompile(`(?i)\b` + quoted + `\s*=\s*"([^"]*)"`),
		regexp.MustCompile(`(?i)\b` + quoted + `\s*=\s*'([^']*)'`),
		regexp.MustCompile(`(?i)\b` + quoted + `\s*=\s*([^\s"'>]+)`),
	}
}

func tagRe(name string) *regexp.Regexp {
	if re, ok := tagRes[name]; ok {
		return re
	}
	return compileTagRe(name)
}

// Tags returns every opening tag of the given element name, in document
// order, including attributes.
func Tags(doc, name string) []string {
	return tagRe(name).FindAllString(doc, -1)
}

// Attr extracts an attribute value from a single opening tag. The first
// matching form wins, regardless of where the attribute sits in the tag, so
// both attribute orders ("name" before "content" and the reverse) resolve
// identically.
func Attr(tag, name string) (string, bool) {
	res, ok := attrValRes[name]
	if !ok {
		res = compileAttrRes(name)
	}
	for _, re := range res {
		if m := re.FindStringSubmatch(tag); m != nil {
			return m[1], true
		}
	}
	return "", false
}

// HasAttr reports whether the tag carries the attribute at all, valued or
// bare (e.g. a bare "async").
func HasAttr(tag, name string) bool {
	if _, ok := Attr(tag, name); ok {
		return true
	}
	re := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(name) + `(\s|>|/|$)`)
	return re.MatchString(tag)
}

// Title returns the trimmed contents of the first <title> element.
func Title(doc string) (string, bool) {
	m := titleRe.FindStringSubmatch(doc)
	if m == nil {
		return "", false
	}
	return strings.TrimSpace(m[1]), true
}

// MetaContent returns the content of <meta name="..."> for the given name.
func MetaContent(doc, name string) (string, bool) {
	return metaLookup(doc, "name", name)
}

// MetaProperty returns the content of <meta property="..."> (Open Graph).
func MetaProperty(doc, property string) (string, bool) {
	return metaLookup(doc, "property", property)
}

func metaLookup(doc, keyAttr, want string) (string, bool) {
	for _, tag := range Tags(doc, "meta") {
		key, ok := Attr(tag, keyAttr)
		if !ok || !strings.EqualFold(key, want) {
			continue
		}
		content, ok := Attr(tag, "content")
		return content, ok
	}
	return "", false
}

// HasDoctype reports whether an HTML5 doctype appears anywhere in the
// document.
func HasDoctype(doc string) bool { return doctypeRe.MatchString(doc) }

// HasCharset reports whether a character encoding is declared, either as
// <meta charset> or the legacy http-equiv form.
func HasCharset(doc string) bool {
	for _, tag := range Tags(doc, "meta") {
		if _, ok := Attr(tag, "charset"); ok {
			return true
		}
		if v, ok := Attr(tag, "http-equiv"); ok && strings.EqualFold(v, "content-type") {
			return true
		}
	}
	return false
}

// LinkRel returns the href of the first <link> whose rel attribute contains
// the given token.
func LinkRel(doc, rel string) (string, bool) {
	for _, tag := range Tags(doc, "link") {
		v, ok := Attr(tag, "rel")
		if !ok {
			continue
		}
		for _, token := range strings.Fields(v) {
			if strings.EqualFold(token, rel) {
				href, _ := Attr(tag, "href")
				return href, true
			}
		}
	}
	return "", false
}

// Lang returns the lang attribute of the <html> element.
func Lang(doc string) (string, bool) {
	tags := Tags(doc, "html")
	if len(tags) == 0 {
		return "", false
	}
	v, ok := Attr(tags[0], "lang")
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// HeadingLevels returns the heading levels (1-6) in document order.
func HeadingLevels(doc string) []int {
	var levels []int
	for _, m := range headingRe.FindAllStringSubmatch(doc, -1) {
		levels = append(levels, int(m[1][0]-'0'))
	}
	return levels
}

// JSONLDBlocks returns the raw contents of every application/ld+json script
// block.
func JSONLDBlocks(doc string) []string {
	var blocks []string
	for _, m := range jsonLDRe.FindAllStringSubmatch(doc, -1) {
		blocks = append(blocks, strings.TrimSpace(m[1]))
	}
	return blocks
}

// JSONLDHasType reports whether a JSON-LD block is valid JSON and declares a
// schema.org @type, either at the top level or as the first element of an
// array.
func JSONLDHasType(block string) bool {
	if !gjson.Valid(block) {
		return false
	}
	if gjson.Get(block, `\@type`).Exists() {
		return true
	}
	return gjson.Get(block, `0.\@type`).Exists()
}

// WordCount approximates the visible word count by stripping script and
// style blocks, then all tags.
func WordCount(doc string) int {
	text := scriptRe.ReplaceAllString(doc, " ")
	text = styleRe.ReplaceAllString(text, " ")
	text = anyTagRe.ReplaceAllString(text, " ")
	return len(strings.Fields(text))
}

// AnchorHrefs returns the href values of all anchors, in document order.
func AnchorHrefs(doc string) []string {
	var hrefs []string
	for _, tag := range Tags(doc, "a") {
		if href, ok := Attr(tag, "href"); ok {
			hrefs = append(hrefs, href)
		}
	}
	return hrefs
}

// IsInternalLink reports whether an anchor href points at the same site as
// the page. Relative paths and fragments count as internal; absolute URLs
// are compared by registered domain (public suffix aware), falling back to
// an exact host comparison when the suffix lookup fails.
func IsInternalLink(href, pageURL string) bool {
	href = strings.TrimSpace(href)
	switch {
	case href == "":
		return false
	case strings.HasPrefix(href, "mailto:"), strings.HasPrefix(href, "tel:"), strings.HasPrefix(href, "javascript:"):
		return false
	}
	u, err := url.Parse(href)
	if err != nil {
		return false
	}
	if u.Host == "" {
		return true
	}
	page, err := url.Parse(pageURL)
	if err != nil || page.Host == "" {
		return false
	}
	return registeredDomain(u.Hostname()) == registeredDomain(page.Hostname())
}

func registeredDomain(host string) string {
	if !strings.Contains(host, ".") {
		return host
	}
	domain, err := publicsuffix.Domain(host)
	if err != nil {
		return host
	}
	return domain
}
