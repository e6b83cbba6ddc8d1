package emitter

import (
	"bufio"
	"os"
	"path/filepath"

	"zola-posts/errs"
	"zola-posts/frontmatter"
	"zola-posts/models"
)

// Extension of every generated content file.
const Extension = ".md"

// FilePath returns where the file for a post titled title is written.
// The title is used as-is; it is not sanitized.
func FilePath(dir, title string) string {
	return filepath.Join(dir, title+Extension)
}

// WritePostFile writes
//
//	+++
//	<header as TOML>
//	+++
//	<body>
//
// to FilePath(dir, title), replacing any existing file, and returns the path.
// The header is rendered before the file is touched, so a SerializeError never
// leaves a partial file behind.
func WritePostFile(dir, title string, header models.PostHeader, body string) (string, error) {
	fm, err := frontmatter.Marshal(header)
	if err != nil {
		return "", errs.NewSerializeError(title, err)
	}

	path := FilePath(dir, title)
	f, err := os.Create(path)
	if err != nil {
		return "", errs.NewIOError(path, err)
	}

	w := bufio.NewWriter(f)
	w.WriteString(frontmatter.Delimiter + "\n")
	w.Write(fm)
	w.WriteString(frontmatter.Delimiter + "\n")
	w.WriteString(body)

	// bufio keeps the first write error and returns it from Flush
	if err := w.Flush(); err != nil {
		f.Close()
		return "", errs.NewIOError(path, err)
	}
	if err := f.Close(); err != nil {
		return "", errs.NewIOError(path, err)
	}
	return path, nil
}
