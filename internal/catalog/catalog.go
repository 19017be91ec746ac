// Package catalog assembles resolved descriptors into the proto list catalog
// and writes it as XML (the format consumed by the simulator), JSON or YAML.
package catalog

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/protolist-labs/protolist/internal/proto"
	"github.com/protolist-labs/protolist/internal/registry"
)

// TagPlaceholder is replaced by the release tag in the remote url template.
const TagPlaceholder = "{tag}"

// Entry is one catalog record. Optional fields are nil or empty when the
// descriptor does not declare them.
type Entry struct {
	Name               string  `json:"name" yaml:"name"`
	BaseType           string  `json:"base-type" yaml:"base-type"`
	URL                string  `json:"url" yaml:"url"`
	License            *string `json:"license,omitempty" yaml:"license,omitempty"`
	LicenseURL         *string `json:"license-url,omitempty" yaml:"license-url,omitempty"`
	DocumentationURL   *string `json:"documentation-url,omitempty" yaml:"documentation-url,omitempty"`
	Description        string  `json:"description,omitempty" yaml:"description,omitempty"`
	SlotType           *string `json:"slot-type,omitempty" yaml:"slot-type,omitempty"`
	Tags               string  `json:"tags,omitempty" yaml:"tags,omitempty"`
	Parameters         string  `json:"parameters,omitempty" yaml:"parameters,omitempty"`
	NeedsRobotAncestor string  `json:"needs-robot-ancestor,omitempty" yaml:"needs-robot-ancestor,omitempty"`
}

// Field is a populated catalog field, in document order.
type Field struct {
	Name  string
	Value string
}

// Fields returns the populated fields of e in document order.
func (e *Entry) Fields() []Field {
	fields := []Field{
		{"name", e.Name},
		{"base-type", e.BaseType},
		{"url", e.URL},
	}
	if e.License != nil {
		fields = append(fields, Field{"license", *e.License})
	}
	if e.LicenseURL != nil {
		fields = append(fields, Field{"license-url", *e.LicenseURL})
	}
	if e.DocumentationURL != nil {
		fields = append(fields, Field{"documentation-url", *e.DocumentationURL})
	}
	if e.Description != "" {
		fields = append(fields, Field{"description", e.Description})
	}
	if e.SlotType != nil {
		fields = append(fields, Field{"slot-type", *e.SlotType})
	}
	if e.Tags != "" {
		fields = append(fields, Field{"tags", e.Tags})
	}
	if e.Parameters != "" {
		fields = append(fields, Field{"parameters", e.Parameters})
	}
	if e.NeedsRobotAncestor != "" {
		fields = append(fields, Field{"needs-robot-ancestor", e.NeedsRobotAncestor})
	}
	return fields
}

// Catalog is the full proto list, sorted by name.
type Catalog struct {
	Protos []Entry `json:"protos" yaml:"protos"`
}

// Prefix returns the url prefix for asset paths: the remote template with the
// tag substituted when a tag is given, the local scheme otherwise.
func Prefix(remoteTemplate, local, tag string) string {
	if tag == "" {
		return local
	}
	return strings.ReplaceAll(remoteTemplate, TagPlaceholder, tag)
}

// RewriteURL replaces the home directory at the start of path with prefix.
// Paths outside home are returned unchanged.
func RewriteURL(path, home, prefix string) string {
	p := filepath.ToSlash(path)
	h := strings.TrimSuffix(filepath.ToSlash(home), "/") + "/"
	if !strings.HasPrefix(p, h) {
		return p
	}
	return prefix + strings.TrimPrefix(p, h)
}

// NewEntry converts a resolved descriptor.
func NewEntry(d *proto.Descriptor, home, prefix string) Entry {
	e := Entry{
		Name:             d.Name,
		BaseType:         d.BaseType,
		URL:              RewriteURL(d.Path, home, prefix),
		License:          d.License,
		LicenseURL:       d.LicenseURL,
		DocumentationURL: d.DocumentationURL,
		Description:      d.Description,
		SlotType:         d.SlotType,
		Tags:             strings.Join(d.Tags, ","),
		Parameters:       strings.Join(d.Parameters, proto.LineBreak),
	}
	if d.NeedsRobotAncestor {
		e.NeedsRobotAncestor = "true"
	}
	return e
}

// Build assembles the catalog from a fully resolved registry.
func Build(reg *registry.Registry, home, prefix string) (*Catalog, error) {
	all := reg.All()
	cat := &Catalog{Protos: make([]Entry, 0, len(all))}
	for _, d := range all {
		if !d.Resolved() {
			return nil, fmt.Errorf("proto %s has no base type: run the hierarchy pass first", d.Name)
		}
		cat.Protos = append(cat.Protos, NewEntry(d, home, prefix))
	}
	return cat, nil
}

// Find returns the entry named name.
func (c *Catalog) Find(name string) (*Entry, bool) {
	for i := range c.Protos {
		if c.Protos[i].Name == name {
			return &c.Protos[i], true
		}
	}
	return nil, false
}
