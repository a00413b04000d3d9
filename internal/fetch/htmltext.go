package fetch

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// MaxTextLength caps extracted page text. Longer pages are truncated;
// the cap bounds cost and latency of downstream extraction calls.
const MaxTextLength = 15000

// TruncationMarker is appended when page text exceeds MaxTextLength.
const TruncationMarker = "\n\n[content truncated]"

// FooterMarker labels footer content in extracted text. Footers are
// kept rather than stripped because they often hold contact details
// and opening hours.
const FooterMarker = "\n\n--- FOOTER ---\n"

// droppedBlocks match elements removed wholesale, one pattern per tag
// so an unclosed script cannot swallow unrelated markup.
var droppedBlocks = func() []*regexp.Regexp {
	tags := []string{"script", "style", "noscript", "header", "nav"}
	res := make([]*regexp.Regexp, 0, len(tags))
	for _, tag := range tags {
		res = append(res, regexp.MustCompile(`(?is)<`+tag+`\b[^>]*>.*?</`+tag+`>`))
	}
	return res
}()

var (
	footerRe    = regexp.MustCompile(`(?is)<footer\b[^>]*>(.*?)</footer>`)
	headingRe   = regexp.MustCompile(`(?is)<h[1-6][^>]*>(.*?)</h[1-6]>`)
	listItemRe  = regexp.MustCompile(`(?i)<li[^>]*>`)
	breakRe     = regexp.MustCompile(`(?i)<br\s*/?>`)
	paraOpenRe  = regexp.MustCompile(`(?i)<p[^>]*>`)
	paraCloseRe = regexp.MustCompile(`(?i)</p>`)
	anyTagRe    = regexp.MustCompile(`(?s)<[^>]*>`)
	spaceRunRe  = regexp.MustCompile(`[ \t]+`)
	lineRunRe   = regexp.MustCompile(`\n{3,}`)
)

// ExtractText converts raw HTML into normalized plain text through a
// fixed, deterministic pipeline: drop script/style/noscript/header/nav,
// mark footer content, turn headings into "### " lines and list items
// into bullets, convert breaks and paragraphs to newlines, strip the
// remaining tags, decode common entities, collapse whitespace, and
// truncate to MaxTextLength.
func ExtractText(html string) string {
	text := html
	for _, re := range droppedBlocks {
		text = re.ReplaceAllString(text, " ")
	}
	text = footerRe.ReplaceAllString(text, FooterMarker+"$1\n")

	// Headings keep a structural hint the extractor can key on.
	text = headingRe.ReplaceAllString(text, "\n### $1\n")
	text = listItemRe.ReplaceAllString(text, "\n- ")
	text = breakRe.ReplaceAllString(text, "\n")
	text = paraOpenRe.ReplaceAllString(text, "\n")
	text = paraCloseRe.ReplaceAllString(text, "\n")

	text = anyTagRe.ReplaceAllString(text, " ")
	text = decodeEntities(text)

	text = spaceRunRe.ReplaceAllString(text, " ")
	text = normalizeLines(text)

	if len(text) > MaxTextLength {
		text = TruncateOnRuneBoundary(text, MaxTextLength) + TruncationMarker
	}
	return text
}

// TruncateOnRuneBoundary cuts text to at most max bytes without
// splitting a multi-byte rune; a mid-rune cut would yield invalid
// UTF-8, which the extraction service rejects.
func TruncateOnRuneBoundary(text string, max int) string {
	if len(text) <= max {
		return text
	}
	for max > 0 && !utf8.RuneStart(text[max]) {
		max--
	}
	return text[:max]
}

// decodeEntities resolves the handful of HTML entities that actually
// show up in business-site copy; anything rarer is left alone.
func decodeEntities(text string) string {
	replacer := strings.NewReplacer(
		"&nbsp;", " ",
		"&amp;", "&",
		"&lt;", "<",
		"&gt;", ">",
		"&quot;", `"`,
		"&#39;", "'",
	)
	return replacer.Replace(text)
}

// normalizeLines trims each line and collapses runs of blank lines.
func normalizeLines(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	text = strings.Join(lines, "\n")
	text = lineRunRe.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}
