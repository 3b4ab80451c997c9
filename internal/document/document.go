// Package document provides page-addressable access to brand-guideline
// documents. A document is either a single text/HTML/markdown file (one page)
// or a directory of per-page files; PDF rasterization is handled upstream by
// an external converter that emits per-page files.
package document

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// pageExtensions lists file extensions treated as document pages.
var pageExtensions = map[string]bool{
	".txt":  true,
	".md":   true,
	".html": true,
	".htm":  true,
}

// Page is one renderable page of a guideline document.
type Page struct {
	Index int    `json:"index"`
	Path  string `json:"path"`
	Text  string `json:"text"`
}

// Document is an opened guideline document with its pages in order.
type Document struct {
	Path  string `json:"path"`
	Pages []Page `json:"pages"`
}

// PageCount returns the number of readable pages.
func (d *Document) PageCount() int {
	return len(d.Pages)
}

// FullText concatenates all page text with page separators.
func (d *Document) FullText() string {
	parts := make([]string, 0, len(d.Pages))
	for _, p := range d.Pages {
		parts = append(parts, p.Text)
	}
	return strings.Join(parts, "\n\n---\n\n")
}

// Open reads a guideline document from a file or a directory of page files.
// Directory entries are ordered by filename so page numbering in filenames
// (page-01.txt, page-02.txt) is preserved. Unreadable or non-page entries are
// skipped; a document with zero readable pages is returned as-is and rejected
// later by the extractor.
func Open(path string) (*Document, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, &ReadError{Path: path, Message: "document not found", Cause: err}
	}

	doc := &Document{Path: path}

	if !info.IsDir() {
		page, err := readPage(path, 0)
		if err != nil {
			return nil, err
		}
		doc.Pages = append(doc.Pages, page)
		return doc, nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, &ReadError{Path: path, Message: "failed to list document pages", Cause: err}
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !pageExtensions[strings.ToLower(filepath.Ext(entry.Name()))] {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	for i, name := range names {
		page, err := readPage(filepath.Join(path, name), i)
		if err != nil {
			// Skip unreadable pages, keep the rest.
			fmt.Fprintf(os.Stderr, "Warning: skipping page %s: %v\n", name, err)
			continue
		}
		page.Index = len(doc.Pages)
		doc.Pages = append(doc.Pages, page)
	}

	return doc, nil
}

// readPage loads one page file and reduces it to clean text.
func readPage(path string, index int) (Page, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Page{}, &ReadError{Path: path, Message: "failed to read page", Cause: err}
	}

	text := string(raw)
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".html" || ext == ".htm" {
		text, err = htmlToText(text)
		if err != nil {
			return Page{}, &ReadError{Path: path, Message: "failed to parse HTML page", Cause: err}
		}
	}

	return Page{Index: index, Path: path, Text: CleanText(text)}, nil
}
