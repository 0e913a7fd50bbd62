// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package display renders command results for the terminal.
//
// Text output prints the client header followed by the result lines, styled
// with lipgloss. JSON and YAML output print a document holding the outcome
// and the unstyled lines, for scripting.
package display

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/go-vault-client/internal/app"
	"github.com/MKhiriev/go-vault-client/models"
	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// Format is an output format.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat parses a format name. An empty name selects text.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "yaml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q (must be text, json or yaml)", ErrUnknownFormat, s)
	}
}

// Document is the machine readable form of a result.
type Document struct {
	Outcome models.Outcome `json:"outcome" yaml:"outcome"`
	Lines   []string       `json:"lines" yaml:"lines"`
}

// Renderer writes results to one output.
type Renderer struct {
	format  Format
	noColor bool
	out     io.Writer
	styles  styleSet
}

// NewRenderer creates a renderer writing to out. Colours are used only in
// text mode, only when noColor is false and only if out supports them.
func NewRenderer(format Format, noColor bool, out io.Writer) *Renderer {
	return &Renderer{
		format:  format,
		noColor: noColor,
		out:     out,
		styles:  newStyleSet(lipgloss.NewRenderer(out)),
	}
}

// Render writes res in the configured format.
func (r *Renderer) Render(res models.Result) error {
	switch r.format {
	case FormatText:
		return r.renderText(res)
	case FormatJSON:
		return r.renderJSON(res)
	case FormatYAML:
		return r.renderYAML(res)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, r.format)
	}
}

func (r *Renderer) renderText(res models.Result) error {
	var sb strings.Builder

	header := app.MsgHeader
	if !r.noColor {
		header = r.styles.header.Render(header)
	}
	sb.WriteString(header)
	sb.WriteString("\n\n")

	for _, line := range res.Lines {
		for _, seg := range line {
			if r.noColor {
				sb.WriteString(seg.Text)
			} else {
				sb.WriteString(r.styles.render(seg))
			}
		}
		sb.WriteByte('\n')
	}

	_, err := io.WriteString(r.out, sb.String())
	return err
}

func (r *Renderer) renderJSON(res models.Result) error {
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	return enc.Encode(newDocument(res))
}

func (r *Renderer) renderYAML(res models.Result) error {
	enc := yaml.NewEncoder(r.out)
	enc.SetIndent(2)
	if err := enc.Encode(newDocument(res)); err != nil {
		return err
	}
	return enc.Close()
}

func newDocument(res models.Result) Document {
	return Document{Outcome: res.Outcome, Lines: res.PlainLines()}
}
