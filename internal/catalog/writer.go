package catalog

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"
)

// Format is a catalog serialization.
type Format string

const (
	FormatXML  Format = "xml"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// tmpSuffix is appended to the target file during atomic writes.
const tmpSuffix = ".tmp"

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatXML, FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unknown catalog format %q (want xml, json or yaml)", s)
	}
}

// Write serializes the catalog to w.
func Write(w io.Writer, c *Catalog, format Format) error {
	switch format {
	case FormatXML:
		return WriteXML(w, c)
	case FormatJSON:
		return WriteJSON(w, c)
	case FormatYAML:
		return WriteYAML(w, c)
	default:
		return fmt.Errorf("unknown catalog format %q", format)
	}
}

// xmlEscaper escapes character data. Quotes are left as is: parameter
// declarations are full of them and they need no escaping in text nodes.
var xmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// WriteXML writes the catalog as a tab indented proto-list document.
func WriteXML(w io.Writer, c *Catalog) error {
	bw := bufio.NewWriter(w)
	bw.WriteString("<?xml version=\"1.0\" encoding=\"utf-8\"?>\n")
	if len(c.Protos) == 0 {
		bw.WriteString("<proto-list/>\n")
		return bw.Flush()
	}

	bw.WriteString("<proto-list>\n")
	for i := range c.Protos {
		bw.WriteString("\t<proto>\n")
		for _, f := range c.Protos[i].Fields() {
			if f.Value == "" {
				fmt.Fprintf(bw, "\t\t<%s/>\n", f.Name)
				continue
			}
			fmt.Fprintf(bw, "\t\t<%s>%s</%s>\n", f.Name, xmlEscaper.Replace(f.Value), f.Name)
		}
		bw.WriteString("\t</proto>\n")
	}
	bw.WriteString("</proto-list>\n")
	return bw.Flush()
}

// WriteJSON writes the catalog as indented JSON.
func WriteJSON(w io.Writer, c *Catalog) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("encoding catalog JSON: %w", err)
	}
	return nil
}

// WriteYAML writes the catalog as YAML.
func WriteYAML(w io.Writer, c *Catalog) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("encoding catalog YAML: %w", err)
	}
	return enc.Close()
}

// WriteFile serializes the catalog to path, replacing any previous file. The
// document is written to a .tmp file first and renamed on success so a failed
// run never leaves a truncated catalog behind.
func WriteFile(path string, c *Catalog, format Format) error {
	var buf bytes.Buffer
	if err := Write(&buf, c, format); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating catalog directory: %w", err)
	}

	tmp := path + tmpSuffix
	if err := os.WriteFile(tmp, buf.Bytes(), 0644); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("writing catalog %s: %w", tmp, err)
	}

	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		_ = os.Remove(tmp)
		return fmt.Errorf("removing previous catalog %s: %w", path, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("finalizing catalog %s: %w", path, err)
	}
	return nil
}
