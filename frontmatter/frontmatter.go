package frontmatter

import (
	"bytes"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"zola-posts/models"
)

// Delimiter opens and closes a TOML front matter block in Zola content files.
const Delimiter = "+++"

const (
	shellFence = "```shell"
	bashFence  = "```bash"
)

// ToHeader derives the front matter for a post. Content is not part of it.
func ToHeader(post models.Post) models.PostHeader {
	author := post.Author.DisplayName()

	tags := make([]string, 0, len(post.Tags))
	for _, t := range post.Tags {
		tags = append(tags, t.Tag)
	}

	return models.PostHeader{
		Title:       post.Title,
		Description: post.Summary,
		Date:        post.PublishedDate.Format(time.RFC3339Nano),
		Authors:     []string{author},
		Taxonomies:  models.Taxonomies{Tags: tags},
		Extra: models.Extras{
			Author:  author,
			Summary: post.Summary,
		},
	}
}

// TransformBody rewrites ```shell code fences to ```bash so Zola highlights them.
// The rewrite cannot be undone.
func TransformBody(content string) string {
	return strings.ReplaceAll(content, shellFence, bashFence)
}

// Marshal renders the header as TOML. The output always ends with a newline.
func Marshal(header models.PostHeader) ([]byte, error) {
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	if err := enc.Encode(header); err != nil {
		return nil, err
	}

	out := buf.Bytes()
	if len(out) > 0 && out[len(out)-1] != '\n' {
		out = append(out, '\n')
	}
	return out, nil
}
