package site

// Site is the three-file bundle decoded from a model completion.
type Site struct {
	HTML string
	CSS  string
	JS   string
}

const (
	IndexFile  = "index.html"
	StylesFile = "styles.css"
	ScriptFile = "script.js"

	// FallbackHTML stands in when the completion carries no html field.
	FallbackHTML = "<h1>Generation Error</h1>"
)
