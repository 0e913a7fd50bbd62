package service

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// isDir is swapped in tests to resolve against synthetic directories.
var isDir = func(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// ResolveOutputPath returns where downloaded content for resource is written.
//
// The file name is the last path segment of resource. With no output the
// file lands in the working directory as "./<name>". An output naming an
// existing directory gets the file name appended; any other output is used
// verbatim as the destination file.
func ResolveOutputPath(resource, output string) (string, error) {
	filename, err := filenameFromURL(resource)
	if err != nil {
		return "", err
	}

	if output == "" {
		return "./" + filename, nil
	}
	if isDir(output) {
		return filepath.Join(output, filename), nil
	}
	return output, nil
}

func filenameFromURL(resource string) (string, error) {
	p := resource
	if u, err := url.Parse(resource); err == nil && u.Scheme != "" {
		p = u.Path
	} else if unescaped, err := url.PathUnescape(resource); err == nil {
		p = unescaped
	}

	segment := p[strings.LastIndex(p, "/")+1:]
	if segment == "" || segment == "." || segment == ".." || strings.Contains(segment, `\`) {
		return "", fmt.Errorf("%w: %q", ErrNoFilename, resource)
	}
	return segment, nil
}
