// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// OutcomeKind is the normalised result of one command.
type OutcomeKind string

const (
	FileExists     OutcomeKind = "file_exists"
	FileStored     OutcomeKind = "file_stored"
	FileModified   OutcomeKind = "file_modified"
	FileDeleted    OutcomeKind = "file_deleted"
	FileNotDeleted OutcomeKind = "file_not_deleted"
	FileDownloaded OutcomeKind = "file_downloaded"
	ServiceError   OutcomeKind = "service_error"
	TransportError OutcomeKind = "transport_error"
)

// Outcome decouples HTTP status nuance from display logic. Stored is set for
// success outcomes carrying file metadata, Path for downloads and Name,
// Message and Details for service errors.
type Outcome struct {
	Kind    OutcomeKind     `json:"kind" yaml:"kind"`
	Name    string          `json:"name,omitempty" yaml:"name,omitempty"`
	Message string          `json:"message,omitempty" yaml:"message,omitempty"`
	Details []FailureDetail `json:"details,omitempty" yaml:"details,omitempty"`
	Stored  *Stored         `json:"stored,omitempty" yaml:"stored,omitempty"`
	Path    string          `json:"path,omitempty" yaml:"path,omitempty"`
}

// Style is the semantic role of a piece of display text. The renderer maps
// roles to colours.
type Style int

const (
	StylePlain Style = iota
	StyleToken
	StyleURL
	StyleProtected
	StyleUnprotected
	StyleRetention
	StyleErrorName
	StyleErrorMessage
	StyleSuccess
	StyleFailure
	StylePath
)

// Segment is a run of text with one style.
type Segment struct {
	Text  string
	Style Style
}

// Plain is a shortcut for an unstyled segment.
func Plain(text string) Segment {
	return Segment{Text: text, Style: StylePlain}
}

// Styled is a shortcut for a styled segment.
func Styled(text string, style Style) Segment {
	return Segment{Text: text, Style: style}
}

// Line is one display line.
type Line []Segment

// String returns the line without any styling.
func (l Line) String() string {
	var sb strings.Builder
	for _, s := range l {
		sb.WriteString(s.Text)
	}
	return sb.String()
}

// Result is what a command produces: the outcome and the ordered lines that
// describe it to the user.
type Result struct {
	Outcome Outcome
	Lines   []Line
}

// PlainLines returns every line without styling.
func (r Result) PlainLines() []string {
	out := make([]string, 0, len(r.Lines))
	for _, l := range r.Lines {
		out = append(out, l.String())
	}
	return out
}
