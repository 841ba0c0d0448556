package prompt

import (
	_ "embed"
	"strings"
	"text/template"
)

// MaxResumeChars bounds the resume text sent to the model.
const MaxResumeChars = 5000

//go:embed prompts/site_v1.txt
var siteV1 string

var siteTemplate = template.Must(template.New("site_v1").Parse(siteV1))

type templateData struct {
	Resume string
	StyleParameters
}

// Build renders the site generation instruction using the default truncation bound.
func Build(resume string, style StyleParameters) string {
	return BuildWithLimit(resume, style, MaxResumeChars)
}

// BuildWithLimit renders the instruction, keeping at most limit characters of resume.
// A non-positive limit falls back to MaxResumeChars.
func BuildWithLimit(resume string, style StyleParameters, limit int) string {
	if limit <= 0 {
		limit = MaxResumeChars
	}
	var b strings.Builder
	// The template is parsed at init and only interpolates strings.
	_ = siteTemplate.Execute(&b, templateData{
		Resume:          Truncate(resume, limit),
		StyleParameters: style,
	})
	return b.String()
}

// Truncate returns the first n characters of s without splitting a rune.
func Truncate(s string, n int) string {
	if n < 0 {
		return ""
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
