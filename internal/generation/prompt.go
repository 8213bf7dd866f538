package generation

import (
	"fmt"
	"regexp"
	"strings"
)

var typeInstructions = map[string]string{
	"document":    "Create a well-structured document with clear headings, paragraphs, and professional formatting.",
	"slide":       "Create content suitable for a presentation with bullet points, clear sections, and engaging headlines.",
	"spreadsheet": "Create structured data with clear columns, rows, and organized information suitable for a spreadsheet.",
}

var categoryTone = map[string]string{
	"business": "Focus on professional language, business terminology, and corporate standards.",
	"personal": "Use a friendly, personal tone while maintaining clarity and usefulness.",
	"academic": "Use formal academic language with proper citations and scholarly approach.",
}

const promptTemplate = `Create a %s titled "%s" for %s use.

%s
%s

User prompt: %s

Please generate comprehensive, high-quality content that is relevant, well-organized, up to date and professional.
The content should be substantial enough to be useful while being clear and concise.

CRITICAL INSTRUCTIONS:
- Do NOT include any specific dates, timestamps, or date signatures in the content
- Do NOT add date footers like "Date: [specific date]"
- Use relative terms like "recently", "this quarter", "current period", "latest analysis" instead
- Focus only on the main content without any date metadata
`

// BuildPrompt renders the instruction prompt sent to every model in the chain.
func BuildPrompt(req Request) string {
	return fmt.Sprintf(
		promptTemplate,
		req.Type,
		req.Title,
		req.Category,
		typeInstructions[req.Type],
		categoryTone[req.Category],
		req.Prompt,
	)
}

var (
	dateSignature = regexp.MustCompile(`(?i)\*?Date:\s*[A-Za-z]+\s+\d{1,2},?\s+\d{4}\*?`)
	datePatterns  = []*regexp.Regexp{
		regexp.MustCompile(`\b[A-Za-z]+\s+\d{1,2},?\s+\d{4}\b`),
		regexp.MustCompile(`\b\d{1,2}/\d{1,2}/\d{4}\b`),
		regexp.MustCompile(`\b\d{4}-\d{2}-\d{2}\b`),
	}
	blankRuns = regexp.MustCompile(`\n\s*\n\s*\n`)
)

// CleanContent strips literal dates the model emitted despite instructions
// and collapses the blank-line runs left behind.
//
// This is a best-effort filter: it misses dates in other shapes and can
// remove non-date text that looks like "Word 12, 2024".
func CleanContent(text string) string {
	cleaned := dateSignature.ReplaceAllString(text, "")
	for _, re := range datePatterns {
		cleaned = re.ReplaceAllString(cleaned, "")
	}
	cleaned = blankRuns.ReplaceAllString(cleaned, "\n\n")
	return strings.TrimSpace(cleaned)
}
