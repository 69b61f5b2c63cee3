package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

type Format string

const (
	FormatDefault  Format = "DEFAULT"
	FormatBullet   Format = "BULLET"
	FormatMarkdown Format = "MARKDOWN"
	FormatNumeric  Format = "NUMERIC"
)

var ErrInvalidFormat = errors.New("invalid format")

// ParseFormat parses a case-insensitive format name
func ParseFormat(s string) (Format, error) {
	format := Format(strings.ToUpper(s))
	switch format {
	case FormatDefault, FormatBullet, FormatMarkdown, FormatNumeric:
		return format, nil
	}
	return "", fmt.Errorf(`%w: "%s"`, ErrInvalidFormat, s)
}

type Match struct {
	Path string
	Line int
	Text string
}

type SearchOptions struct {
	// Extensions without leading dots, all files are searched if empty
	Extensions []string
	Recursive  bool
	Logger     *slog.Logger
}

// Search returns lines containing `query` in the file at `root` or in files of the `root` directory
func Search(root, query string, opts SearchOptions) ([]Match, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	var matches []Match
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && !opts.Recursive {
				return fs.SkipDir
			}
			return nil
		}
		if !hasExtension(path, opts.Extensions) {
			return nil
		}
		fileMatches, err := searchFile(path, query)
		if err != nil {
			return err
		}
		logger.Debug("file searched", "path", path, "matches", len(fileMatches))
		matches = append(matches, fileMatches...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return matches, nil
}

func hasExtension(path string, extensions []string) bool {
	if len(extensions) == 0 {
		return true
	}
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	return slices.ContainsFunc(extensions, func(e string) bool {
		return strings.TrimPrefix(e, ".") == ext
	})
}

func searchFile(path, query string) (matches []Match, err error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		err = errors.Join(err, file.Close())
	}()

	scanner := bufio.NewScanner(file)
	for line := 1; scanner.Scan(); line++ {
		if text := scanner.Text(); strings.Contains(text, query) {
			matches = append(matches, Match{Path: path, Line: line, Text: text})
		}
	}
	return matches, scanner.Err()
}

// WriteMatches writes one line per match in the given format
func WriteMatches(w io.Writer, format Format, matches []Match) error {
	if format == FormatMarkdown {
		if _, err := fmt.Fprintln(w, "| File | Line | Text |\n|---|---|---|"); err != nil {
			return err
		}
	}
	for i, m := range matches {
		var err error
		switch format {
		case FormatBullet:
			_, err = fmt.Fprintf(w, "- %s:%d: %s\n", m.Path, m.Line, m.Text)
		case FormatMarkdown:
			_, err = fmt.Fprintf(w, "| %s | %d | %s |\n", m.Path, m.Line, m.Text)
		case FormatNumeric:
			_, err = fmt.Fprintf(w, "%d. %s:%d: %s\n", i+1, m.Path, m.Line, m.Text)
		default:
			_, err = fmt.Fprintf(w, "%s:%d: %s\n", m.Path, m.Line, m.Text)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
