package scorm

import (
	"encoding/xml"
	"fmt"
	"time"
)

// manifestHeader matches what SCORM 1.2 hosts expect on the first line.
const manifestHeader = `<?xml version="1.0" standalone="no" ?>` + "\n"

const (
	nsIMSCP        = "http://www.imsproject.org/xsd/imscp_rootv1p1p2"
	nsADLCP        = "http://www.imsproject.org/xsd/adlcp_rootv1p2"
	nsXSI          = "http://www.w3.org/2001/XMLSchema-instance"
	schemaLocation = "http://www.imsproject.org/xsd/imscp_rootv1p1p2 imscp_rootv1p1p2.xsd\n" +
		" http://www.imsproject.org/xsd/adlcp_rootv1p2 adlcp_rootv1p2.xsd"

	orgID      = "default_org"
	itemID     = "item_1"
	resourceID = "resource_1"
	launchFile = "index.html"
)

type manifest struct {
	XMLName        xml.Name `xml:"manifest"`
	Identifier     string   `xml:"identifier,attr"`
	Version        string   `xml:"version,attr"`
	Xmlns          string   `xml:"xmlns,attr"`
	XmlnsADLCP     string   `xml:"xmlns:adlcp,attr"`
	XmlnsXSI       string   `xml:"xmlns:xsi,attr"`
	SchemaLocation string   `xml:"xsi:schemaLocation,attr"`

	Metadata      metadata      `xml:"metadata"`
	Organizations organizations `xml:"organizations"`
	Resources     []resource    `xml:"resources>resource"`
}

type metadata struct {
	Schema        string `xml:"schema"`
	SchemaVersion string `xml:"schemaversion"`
}

type organizations struct {
	Default       string         `xml:"default,attr"`
	Organizations []organization `xml:"organization"`
}

type organization struct {
	Identifier string `xml:"identifier,attr"`
	Title      string `xml:"title"`
	Items      []item `xml:"item"`
}

type item struct {
	Identifier    string `xml:"identifier,attr"`
	IdentifierRef string `xml:"identifierref,attr"`
	Title         string `xml:"title"`
}

type resource struct {
	Identifier string `xml:"identifier,attr"`
	Type       string `xml:"type,attr"`
	ScormType  string `xml:"adlcp:scormtype,attr"`
	Href       string `xml:"href,attr"`
	Files      []file `xml:"file"`
}

type file struct {
	Href string `xml:"href,attr"`
}

// Identifier derives the package identifier from the build time, so a
// re-imported package never collides with an earlier version.
func Identifier(now time.Time) string {
	return fmt.Sprintf("com.cursoapp.%d", now.UnixMilli())
}

// BuildManifest returns imsmanifest.xml for a single-SCO package.
func BuildManifest(identifier, title string) ([]byte, error) {
	mf := manifest{
		Identifier:     identifier,
		Version:        "1",
		Xmlns:          nsIMSCP,
		XmlnsADLCP:     nsADLCP,
		XmlnsXSI:       nsXSI,
		SchemaLocation: schemaLocation,
		Metadata:       metadata{Schema: "ADL SCORM", SchemaVersion: "1.2"},
		Organizations: organizations{
			Default: orgID,
			Organizations: []organization{{
				Identifier: orgID,
				Title:      title,
				Items:      []item{{Identifier: itemID, IdentifierRef: resourceID, Title: title}},
			}},
		},
		Resources: []resource{{
			Identifier: resourceID,
			Type:       "webcontent",
			ScormType:  "sco",
			Href:       launchFile,
			Files:      []file{{Href: launchFile}},
		}},
	}
	b, err := xml.MarshalIndent(mf, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal manifest: %w", err)
	}
	return append([]byte(manifestHeader), b...), nil
}
