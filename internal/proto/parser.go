package proto

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// LineBreak is the literal marker appended after each description line and
// used to join parameters in the catalog. It is the two characters '\' 'n',
// not a newline.
const LineBreak = `\n`

// Extension is the file extension of descriptor files.
const Extension = ".proto"

var (
	// geometryBlocks match the IndexedFaceSet data arrays. They carry no
	// metadata and make the body regex very slow on large meshes.
	geometryBlocks = []*regexp.Regexp{
		regexp.MustCompile(`point\s+\[[^\]]+\]`),
		regexp.MustCompile(`vector\s+\[[^\]]+\]`),
		regexp.MustCompile(`coordIndex\s+\[[^\]]+\]`),
		regexp.MustCompile(`normalIndex\s+\[[^\]]+\]`),
	}

	templateLanguageRe = regexp.MustCompile(`template language\s*:`)
	licenseRe          = regexp.MustCompile(`license\s*:`)
	licenseURLRe       = regexp.MustCompile(`license url\s*:`)
	documentationURLRe = regexp.MustCompile(`documentation url\s*:`)
	tagsRe             = regexp.MustCompile(`tags\s*:`)

	// A field declaration preceded by two whitespace characters, up to the end
	// of the line or a trailing comment.
	parameterRe = regexp.MustCompile(`\s\s((?:field|vrmlField)\s+[^\n#]+)`)

	// The body starts after the interface closing bracket: "]" "{". An optional
	// template block (%< ... >%) and an optional "DEF <id>" may precede the
	// instantiated node, which is followed by its own "{".
	bodyRe = regexp.MustCompile(`(?:\]\s*)\{\s*(?:%<[\s\S]*?(?:>%\s*))?(?:DEF\s+[^\s]+)?\s+([a-zA-Z0-9_\-+]+)\s*\{`)
)

// ParseFile reads a descriptor file and extracts its metadata. The descriptor
// name is the file stem.
func ParseFile(path string) (*Descriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &IOError{Path: path, Err: err}
	}
	return Parse(path, string(data))
}

// Parse extracts the metadata of a descriptor from its raw text. It does not
// touch the filesystem: path is only used for the name and error messages.
func Parse(path, text string) (*Descriptor, error) {
	d := &Descriptor{
		Name:    NameFromPath(path),
		Path:    path,
		Content: StripGeometry(text),
	}

	parseHeader(d)
	d.Parameters = parseParameters(d.Content)

	protoType, err := parseBody(d.Content)
	if err != nil {
		return nil, &ParseError{Path: path, Reason: err.Error()}
	}
	d.ProtoType = protoType

	return d, nil
}

// NameFromPath returns the descriptor name for a file path.
// "/home/projects/objects/road/protos/RoadSegment.proto" -> "RoadSegment"
func NameFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// StripGeometry removes point, vector, coordIndex and normalIndex arrays from
// text. Text without such arrays is returned unchanged.
func StripGeometry(text string) string {
	for _, re := range geometryBlocks {
		text = re.ReplaceAllString(text, "")
	}
	return text
}

// parseHeader scans the leading run of comment lines.
func parseHeader(d *Descriptor) {
	for _, line := range strings.Split(d.Content, "\n") {
		if !strings.HasPrefix(line, "#") {
			break
		}

		clean := strings.TrimSpace(line[1:])
		switch {
		case strings.HasPrefix(clean, "VRML_SIM"), templateLanguageRe.MatchString(clean):
			continue
		case licenseRe.MatchString(clean):
			d.License = directiveValue(licenseRe, clean)
		case licenseURLRe.MatchString(clean):
			d.LicenseURL = directiveValue(licenseURLRe, clean)
		case documentationURLRe.MatchString(clean):
			d.DocumentationURL = directiveValue(documentationURLRe, clean)
		case tagsRe.MatchString(clean):
			raw := strings.TrimSpace(tagsRe.ReplaceAllString(clean, ""))
			tags := strings.Split(raw, ",")
			d.Tags = make([]string, 0, len(tags))
			for _, tag := range tags {
				d.Tags = append(d.Tags, strings.TrimSpace(tag))
			}
		default:
			d.Description += clean + LineBreak
		}
	}
}

func directiveValue(key *regexp.Regexp, line string) *string {
	v := strings.TrimSpace(key.ReplaceAllString(line, ""))
	return &v
}

func parseParameters(content string) []string {
	var params []string
	for _, m := range parameterRe.FindAllStringSubmatch(content, -1) {
		params = append(params, strings.TrimSpace(m[1]))
	}
	return params
}

func parseBody(content string) (string, error) {
	m := bodyRe.FindStringSubmatch(content)
	if m == nil {
		return "", errNoBody
	}
	return m[len(m)-1], nil
}
