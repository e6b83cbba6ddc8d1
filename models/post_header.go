package models

// PostHeader is the front matter written at the top of every exported file.
// It is built right before the file is written and never stored anywhere else.
type PostHeader struct {
	Title       string     `toml:"title"`
	Description string     `toml:"description"`
	Date        string     `toml:"date"`
	Authors     []string   `toml:"authors"`
	Taxonomies  Taxonomies `toml:"taxonomies"`
	Extra       Extras     `toml:"extra"`
}

// Taxonomies groups classification values under [taxonomies].
type Taxonomies struct {
	Tags []string `toml:"tags"`
}

// Extras is rendered as the [extra] table, free-form data for templates.
type Extras struct {
	Author  string `toml:"author"`
	Summary string `toml:"summary"`
}
