package obsservice

import (
	"encoding/xml"
	"io"
	"os"
	"path/filepath"
	"strings"
)

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

func (s *Schema) buildXML() string {
	var b strings.Builder
	b.WriteString(`<service name="` + xmlEscaper.Replace(s.service.Name) + "\">\n")
	b.WriteString("  <summary>" + xmlEscaper.Replace(s.service.Summary) + "</summary>\n")
	b.WriteString("  <description>" + xmlEscaper.Replace(s.service.Description) + "</description>\n")
	for _, p := range s.params {
		b.WriteString(`  <parameter name="` + xmlEscaper.Replace(p.Name) + "\">\n")
		b.WriteString("    <description>" + xmlEscaper.Replace(p.Description) + "</description>\n")
		p.Kind.appendXML(&b)
		b.WriteString("  </parameter>\n")
	}
	b.WriteString("</service>\n")
	return b.String()
}

// XML returns the service descriptor, as installed to
// /usr/lib/obs/service/<name>.service.
func (s *Schema) XML() string {
	return s.xml
}

// The descriptor's file name.
func (s *Schema) ServiceFileName() string {
	return s.service.Name + ".service"
}

// Writes the descriptor into dir, returning the file's path.
func (s *Schema) WriteServiceFile(dir string) (string, error) {
	path := filepath.Join(dir, s.ServiceFileName())
	return path, os.WriteFile(path, []byte(s.xml), 0o644)
}

// Descriptor is a service descriptor as read back from XML.
type Descriptor struct {
	Name        string
	Summary     string
	Description string
	Parameters  []DescriptorParam
}

type DescriptorParam struct {
	Name          string
	Description   string
	Required      bool
	AllowMultiple bool
	AllowedValues []string
}

type xmlService struct {
	XMLName     xml.Name       `xml:"service"`
	Name        string         `xml:"name,attr"`
	Summary     string         `xml:"summary"`
	Description string         `xml:"description"`
	Parameters  []xmlParameter `xml:"parameter"`
}

type xmlParameter struct {
	Name          string    `xml:"name,attr"`
	Description   string    `xml:"description"`
	Required      *struct{} `xml:"required"`
	AllowMultiple *struct{} `xml:"allowmultiple"`
	AllowedValues []string  `xml:"allowedvalue"`
}

func DecodeDescriptor(r io.Reader) (*Descriptor, error) {
	var xs xmlService
	if err := xml.NewDecoder(r).Decode(&xs); err != nil {
		return nil, err
	}
	d := &Descriptor{
		Name:        xs.Name,
		Summary:     xs.Summary,
		Description: xs.Description,
	}
	for _, xp := range xs.Parameters {
		d.Parameters = append(d.Parameters, DescriptorParam{
			Name:          xp.Name,
			Description:   xp.Description,
			Required:      xp.Required != nil,
			AllowMultiple: xp.AllowMultiple != nil,
			AllowedValues: xp.AllowedValues,
		})
	}
	return d, nil
}
