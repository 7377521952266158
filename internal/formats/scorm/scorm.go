// Package scorm builds SCORM 1.2 packages: a zip holding imsmanifest.xml and a
// self-contained index.html player that reports its score to the LMS.
package scorm

import (
	"context"

	"github.com/VictoriaCloud360/CursoAPP/internal/archive"
	"github.com/VictoriaCloud360/CursoAPP/internal/course"
	"github.com/VictoriaCloud360/CursoAPP/internal/formats"
)

func init() { formats.Register(Adapter{}) }

type Adapter struct{}

func (Adapter) Descriptor() formats.Descriptor {
	return formats.Descriptor{
		Format:      formats.SCORM,
		Prefix:      "SCORM_",
		Extension:   ".zip",
		ContentType: "application/zip",
		Packaged:    true,
	}
}

// Export fails with formats.ErrNoArchiver before building anything when no
// archiver is configured.
func (Adapter) Export(ctx context.Context, c course.Course, opts formats.Options) ([]byte, error) {
	if opts.Archiver == nil {
		return nil, formats.ErrNoArchiver
	}
	b, err := Bundle(c, opts)
	if err != nil {
		return nil, err
	}
	return opts.Archiver.Pack(ctx, b)
}

// Bundle lays out the two package files without compressing them.
func Bundle(c course.Course, opts formats.Options) (*archive.Bundle, error) {
	mf, err := BuildManifest(Identifier(opts.Time()), c.Title)
	if err != nil {
		return nil, err
	}
	resources := opts.Resources
	if resources == nil {
		resources = course.DefaultResources()
	}
	page, err := BuildPlayer(c, resources, opts.Lang())
	if err != nil {
		return nil, err
	}
	b := archive.NewBundle()
	b.AddFile("imsmanifest.xml", mf)
	b.AddFile(launchFile, page)
	return b, nil
}
