package generation_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/JaimeStill/docudash/internal/generation"
)

func TestBuildPrompt(t *testing.T) {
	prompt := generation.BuildPrompt(generation.Request{
		Title:    "Budget Plan",
		Type:     "spreadsheet",
		Category: "business",
		Prompt:   "Generate a budget tracking template",
	})

	assert.Contains(t, prompt, `Create a spreadsheet titled "Budget Plan" for business use.`)
	assert.Contains(t, prompt, "organized information suitable for a spreadsheet")
	assert.Contains(t, prompt, "business terminology")
	assert.Contains(t, prompt, "User prompt: Generate a budget tracking template")
	assert.Contains(t, prompt, "Do NOT include any specific dates")
}

func TestBuildPromptPerType(t *testing.T) {
	tests := []struct {
		docType  string
		category string
		want     []string
	}{
		{"document", "academic", []string{"clear headings", "scholarly approach"}},
		{"slide", "personal", []string{"bullet points", "friendly, personal tone"}},
	}

	for _, tt := range tests {
		t.Run(tt.docType, func(t *testing.T) {
			prompt := generation.BuildPrompt(generation.Request{Title: "T", Type: tt.docType, Category: tt.category, Prompt: "p"})
			for _, w := range tt.want {
				assert.Contains(t, prompt, w)
			}
		})
	}
}

func TestCleanContent(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "date signature line",
			in:   "Report body.\n\nDate: March 3, 2024\n\nMore text.",
			want: "Report body.\n\nMore text.",
		},
		{
			name: "emphasized signature",
			in:   "Summary\n\n*Date: February 14, 2024*",
			want: "Summary",
		},
		{
			name: "numeric formats",
			in:   "Due 12/31/2024 and filed 2024-01-15 ok",
			want: "Due  and filed  ok",
		},
		{
			name: "month day year inline",
			in:   "Signed on January 5, 2025 by staff.",
			want: "Signed on  by staff.",
		},
		{
			name: "blank runs collapsed",
			in:   "\n\nA\n\n\n\n\nB\n \n \nC  ",
			want: "A\n\nB\n\nC",
		},
		{
			name: "no dates untouched",
			in:   "Quarterly review of 12 items",
			want: "Quarterly review of 12 items",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := generation.CleanContent(tt.in)
			assert.Equal(t, tt.want, got)
			assert.NotContains(t, got, "\n\n\n")
		})
	}
}

func TestCleanContentIdempotent(t *testing.T) {
	in := "Intro\n\nDate: March 3, 2024\n\n\n\nBody 2024-02-02\n\nEnd"
	once := generation.CleanContent(in)
	assert.Equal(t, once, generation.CleanContent(once))
	assert.False(t, strings.Contains(once, "2024"))
}
