package archive

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Package kinds recognised by Inspect.
const (
	KindSCORM   = "scorm"
	KindH5P     = "h5p"
	KindUnknown = "unknown"
)

var ErrEntryNotFound = errors.New("archive entry not found")

// Report summarises a built package.
type Report struct {
	Kind        string     `json:"kind"`
	Entries     []string   `json:"entries"`
	Directories []string   `json:"directories,omitempty"` // bare directory entries
	SCORM       *SCORMInfo `json:"scorm,omitempty"`
	H5P         *H5PInfo   `json:"h5p,omitempty"`
}

type SCORMInfo struct {
	Identifier    string   `json:"identifier"`
	SchemaVersion string   `json:"schema_version"`
	Title         string   `json:"title"`
	Launch        []string `json:"launch"`
}

type H5PInfo struct {
	Title        string   `json:"title"`
	Language     string   `json:"language"`
	MainLibrary  string   `json:"main_library"`
	Dependencies []string `json:"dependencies"`
	Blocks       int      `json:"blocks"`
}

// read-side models; only the fields Inspect reports
type imsManifest struct {
	XMLName       xml.Name `xml:"manifest"`
	Identifier    string   `xml:"identifier,attr"`
	SchemaVersion string   `xml:"metadata>schemaversion"`
	Title         string   `xml:"organizations>organization>title"`
	Resources     []struct {
		Href string `xml:"href,attr"`
	} `xml:"resources>resource"`
}

type h5pManifest struct {
	Title                 string `json:"title"`
	Language              string `json:"language"`
	MainLibrary           string `json:"mainLibrary"`
	PreloadedDependencies []struct {
		MachineName  string `json:"machineName"`
		MajorVersion int    `json:"majorVersion"`
		MinorVersion int    `json:"minorVersion"`
	} `json:"preloadedDependencies"`
}

type h5pContent struct {
	Content []json.RawMessage `json:"content"`
}

// Inspect lists the entries of a zip package and decodes its manifest.
func Inspect(r io.ReaderAt, size int64) (Report, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return Report{}, err
	}
	rep := Report{Kind: KindUnknown}
	files := map[string]*zip.File{}
	for _, f := range zr.File {
		rep.Entries = append(rep.Entries, f.Name)
		if strings.HasSuffix(f.Name, "/") || f.FileInfo().IsDir() {
			rep.Directories = append(rep.Directories, f.Name)
			continue
		}
		files[f.Name] = f
	}

	if f, ok := files["imsmanifest.xml"]; ok {
		b, err := readZipFile(f)
		if err != nil {
			return rep, err
		}
		var mf imsManifest
		if err := xml.Unmarshal(b, &mf); err != nil {
			return rep, fmt.Errorf("imsmanifest.xml: %w", err)
		}
		info := &SCORMInfo{Identifier: mf.Identifier, SchemaVersion: mf.SchemaVersion, Title: mf.Title}
		for _, res := range mf.Resources {
			info.Launch = append(info.Launch, res.Href)
		}
		rep.Kind, rep.SCORM = KindSCORM, info
		return rep, nil
	}

	if f, ok := files["h5p.json"]; ok {
		b, err := readZipFile(f)
		if err != nil {
			return rep, err
		}
		var mf h5pManifest
		if err := json.Unmarshal(b, &mf); err != nil {
			return rep, fmt.Errorf("h5p.json: %w", err)
		}
		info := &H5PInfo{Title: mf.Title, Language: mf.Language, MainLibrary: mf.MainLibrary}
		for _, d := range mf.PreloadedDependencies {
			info.Dependencies = append(info.Dependencies, fmt.Sprintf("%s %d.%d", d.MachineName, d.MajorVersion, d.MinorVersion))
		}
		if cf, ok := files["content/content.json"]; ok {
			cb, err := readZipFile(cf)
			if err != nil {
				return rep, err
			}
			var content h5pContent
			if err := json.Unmarshal(cb, &content); err != nil {
				return rep, fmt.Errorf("content/content.json: %w", err)
			}
			info.Blocks = len(content.Content)
		}
		rep.Kind, rep.H5P = KindH5P, info
	}
	return rep, nil
}

// InspectBytes is Inspect over an in-memory archive.
func InspectBytes(b []byte) (Report, error) {
	return Inspect(bytes.NewReader(b), int64(len(b)))
}

// ReadFile returns the contents of one entry of an in-memory archive.
func ReadFile(archive []byte, name string) ([]byte, error) {
	zr, err := zip.NewReader(bytes.NewReader(archive), int64(len(archive)))
	if err != nil {
		return nil, err
	}
	for _, f := range zr.File {
		if f.Name == name {
			return readZipFile(f)
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrEntryNotFound, name)
}

func readZipFile(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}
