// Package render formats fragments and templates for the terminal.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/timvw/tmux-fragments/internal/model"
	"gopkg.in/yaml.v3"
)

// Format is an output format for the fragment and template commands.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatText Format = "text"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatJSON, FormatYAML, FormatText:
		return f, nil
	default:
		return "", fmt.Errorf("unknown format %q (supported: json, yaml, text)", s)
	}
}

// Fragments writes fragments in the given format. Text output is the raw
// content blocks separated by blank lines, ready to paste into a prompt.
func Fragments(w io.Writer, frags []model.Fragment, format Format) error {
	switch format {
	case FormatYAML:
		return writeYAML(w, frags)
	case FormatText:
		parts := make([]string, len(frags))
		for i, f := range frags {
			parts[i] = f.Content
		}
		_, err := fmt.Fprintln(w, strings.Join(parts, "\n\n"))
		return err
	default:
		if frags == nil {
			frags = []model.Fragment{}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(frags)
	}
}

// Template writes a template in the given format. YAML matches the host's
// template file layout (name, system).
func Template(w io.Writer, tpl model.Template, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(tpl)
	case FormatText:
		_, err := fmt.Fprint(w, tpl.System)
		return err
	default:
		return writeYAML(w, tpl)
	}
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

// Pretty writes fragments for a human reader: a styled header per fragment
// followed by the captured text.
func Pretty(w io.Writer, frags []model.Fragment, theme Theme) error {
	s := newStyles(theme)
	for i, f := range frags {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		header := s.source.Render(f.Source)
		switch {
		case strings.Contains(f.Content, `active="true"`):
			header += " " + s.active.Render("● active")
		case strings.Contains(f.Content, `active="false"`):
			header += " " + s.inactive.Render("○ inactive")
		}
		lines := strings.Count(f.Content, "\n") + 1
		header += " " + s.inactive.Render(fmt.Sprintf("(%d lines)", lines))

		// Unstyled: lipgloss pads multi-line blocks to a common width.
		body := f.Content
		if strings.TrimSpace(f.Content) == "" {
			body = s.warn.Render("(empty)")
		}
		if _, err := fmt.Fprintf(w, "%s\n%s\n%s\n", header, s.rule.Render(strings.Repeat("─", 40)), body); err != nil {
			return err
		}
	}
	return nil
}
