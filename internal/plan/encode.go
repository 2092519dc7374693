// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package plan

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"
)

// Format selects a plan encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unknown plan format %q: must be 'text', 'json' or 'yaml'", s)
	}
}

// Encode writes the plan to w in the given format.
func Encode(w io.Writer, p *Plan, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(p)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(p); err != nil {
			return err
		}
		return enc.Close()
	case FormatText:
		return encodeText(w, p)
	default:
		return fmt.Errorf("unknown plan format %q", format)
	}
}

func encodeText(w io.Writer, p *Plan) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "Package:\t%s (tools %s)\n", p.Package, p.ToolsVersion)
	if p.Root != "" {
		fmt.Fprintf(tw, "Root:\t%s\n", p.Root)
	}
	platforms := make([]string, len(p.Platforms))
	for i, pl := range p.Platforms {
		platforms[i] = pl.Name + " " + pl.Minimum
	}
	fmt.Fprintf(tw, "Platforms:\t%s\n", joinOrNone(platforms))
	fmt.Fprintf(tw, "Fingerprint:\t%s\n", p.Fingerprint)

	fmt.Fprintln(tw, "\nProducts:")
	for _, pr := range p.Products {
		fmt.Fprintf(tw, "  %s\t%s\t%s\n", pr.Name, pr.Linkage, strings.Join(pr.Targets, ", "))
	}

	fmt.Fprintln(tw, "\nTargets (compile order):")
	for _, t := range p.Targets {
		fmt.Fprintf(tw, "  %s\t%s\n", t.Name, t.Root)
		if t.PublicHeaders != "" {
			fmt.Fprintf(tw, "    public headers:\t%s\n", t.PublicHeaders)
		}
		if len(t.Dependencies) > 0 {
			fmt.Fprintf(tw, "    depends on:\t%s\n", strings.Join(t.Dependencies, ", "))
		}
		for i, inc := range t.IncludePaths {
			fmt.Fprintf(tw, "    -I %d:\t%s\n", i+1, inc)
		}
		for _, d := range t.Defines {
			fmt.Fprintf(tw, "    -D\t%s=%s\n", d.Name, d.Value)
		}
	}

	return tw.Flush()
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "(none)"
	}
	return strings.Join(items, ", ")
}
