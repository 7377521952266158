package scorm

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/VictoriaCloud360/CursoAPP/internal/archive"
	"github.com/VictoriaCloud360/CursoAPP/internal/course"
	"github.com/VictoriaCloud360/CursoAPP/internal/course/coursetest"
	"github.com/VictoriaCloud360/CursoAPP/internal/formats"
)

func fixedClock(ms int64) func() time.Time {
	return func() time.Time { return time.UnixMilli(ms) }
}

func exportSample(t *testing.T, opts formats.Options) []byte {
	t.Helper()
	if opts.Archiver == nil {
		opts.Archiver = archive.NewZipArchiver(-1)
	}
	out, err := Adapter{}.Export(context.Background(), coursetest.Sample(), opts)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	return out
}

func TestPackageHasExactlyTwoFiles(t *testing.T) {
	pkg := exportSample(t, formats.Options{Now: fixedClock(1700000000000)})
	rep, err := archive.InspectBytes(pkg)
	if err != nil {
		t.Fatalf("inspect: %v", err)
	}
	if len(rep.Entries) != 2 || rep.Entries[0] != "imsmanifest.xml" || rep.Entries[1] != "index.html" {
		t.Fatalf("entries = %v", rep.Entries)
	}
	if rep.Kind != archive.KindSCORM {
		t.Fatalf("kind = %s", rep.Kind)
	}
	s := rep.SCORM
	if s.Identifier != "com.cursoapp.1700000000000" || s.SchemaVersion != "1.2" || s.Title != "Intro a Python 3!" {
		t.Fatalf("manifest info = %+v", s)
	}
	if len(s.Launch) != 1 || s.Launch[0] != "index.html" {
		t.Fatalf("launch = %v", s.Launch)
	}
}

func TestManifestSkeleton(t *testing.T) {
	mf, err := BuildManifest("com.cursoapp.1", "A & B")
	if err != nil {
		t.Fatal(err)
	}
	s := string(mf)
	if !strings.HasPrefix(s, `<?xml version="1.0" standalone="no" ?>`+"\n<manifest ") {
		t.Fatalf("header: %q", s[:60])
	}
	for _, want := range []string{
		`identifier="com.cursoapp.1"`,
		`version="1"`,
		`xmlns="http://www.imsproject.org/xsd/imscp_rootv1p1p2"`,
		`xmlns:adlcp="http://www.imsproject.org/xsd/adlcp_rootv1p2"`,
		`<schema>ADL SCORM</schema>`,
		`<schemaversion>1.2</schemaversion>`,
		`<organizations default="default_org">`,
		`<item identifier="item_1" identifierref="resource_1">`,
		`adlcp:scormtype="sco"`,
		`<file href="index.html"></file>`,
		`<title>A &amp; B</title>`,
	} {
		if !strings.Contains(s, want) {
			t.Errorf("manifest missing %s", want)
		}
	}
}

func TestIdentifierUniquePerBuild(t *testing.T) {
	a := exportSample(t, formats.Options{Now: fixedClock(1)})
	b := exportSample(t, formats.Options{Now: fixedClock(2)})
	ra, _ := archive.InspectBytes(a)
	rb, _ := archive.InspectBytes(b)
	if ra.SCORM.Identifier == rb.SCORM.Identifier {
		t.Fatalf("identifiers collide: %s", ra.SCORM.Identifier)
	}
}

func TestPlayerEmbedsAnswerKeyAndThreshold(t *testing.T) {
	pkg := exportSample(t, formats.Options{})
	page, err := archive.ReadFile(pkg, "index.html")
	if err != nil {
		t.Fatal(err)
	}
	s := string(page)
	if !strings.Contains(s, "const correctAnswers = [1,0,3];") {
		t.Error("answer key not embedded as [1,0,3]")
	}
	if !regexp.MustCompile(`const passingScore =\s*3\s*;`).MatchString(s) {
		t.Error("passing score for 3 questions should be 3")
	}
	for _, want := range []string{
		`<html lang="es">`,
		"https://cdn.tailwindcss.com",
		"fonts.googleapis.com/css2?family=Inter",
		`id="module-0" class="tab-content"`,
		`id="module-1" class="tab-content hidden"`,
		`id="quiz" class="tab-content hidden"`,
		"Evaluación Final",
		"<strong>Hi</strong> there<br/>• a<br/>• b<br/><br/>Next",
		"https://picsum.photos/seed/code0/800/600",
		"https://picsum.photos/seed/code1/800/600",
		"Lectura complementaria PDF",
		`name="q-2" value="3"`,
		"LMSInitialize",
		"tries < 10",
		"Por favor responde todas las preguntas.",
	} {
		if !strings.Contains(s, want) {
			t.Errorf("player missing %q", want)
		}
	}
	if n := strings.Count(s, `class="tab-content`); n != 4 {
		t.Errorf("tab panels = %d, want 4", n)
	}
}

func TestPlayerReportsScoreOnce(t *testing.T) {
	page, err := BuildPlayer(coursetest.Sample(), nil, "es")
	if err != nil {
		t.Fatal(err)
	}
	s := string(page)
	start := strings.Index(s, "function submitQuiz()")
	if start < 0 {
		t.Fatal("submitQuiz missing")
	}
	body := s[start:]
	guard := strings.Index(body, "if (quizSubmitted) return;")
	hide := strings.Index(body, "getElementById('quiz-container').classList.add('hidden')")
	disable := strings.Index(body, "getElementById('quiz-submit').disabled = true")
	report := strings.Index(body, "scorm.setScore(score)")
	if guard < 0 || hide < 0 || disable < 0 || report < 0 {
		t.Fatalf("guard=%d hide=%d disable=%d report=%d", guard, hide, disable, report)
	}
	if !(guard < hide && hide < report && disable < report) {
		t.Fatal("quiz must be locked before the score is reported")
	}
	// the form and its button live inside the hidden container
	container := strings.Index(s, `<div id="quiz-container">`)
	if container < 0 || container > strings.Index(s, `id="quiz-form"`) || container > strings.Index(s, `id="quiz-submit"`) {
		t.Fatal("quiz form is not wrapped by quiz-container")
	}
}

func TestPlayerImageAltAndResourceLinks(t *testing.T) {
	page, err := BuildPlayer(coursetest.Sample(), course.DefaultResources(), "es")
	if err != nil {
		t.Fatal(err)
	}
	s := string(page)
	for _, want := range []string{`alt="Variables"`, `alt="Funciones"`, `alt="Módulos"`} {
		if !strings.Contains(s, want) {
			t.Errorf("missing %s", want)
		}
	}
	if strings.Contains(s, `alt="code"`) {
		t.Error("image alt should be the module title, not the keyword")
	}
	if n := strings.Count(s, `target="_blank" rel="noopener noreferrer"`); n != 9 {
		t.Errorf("external resource links = %d, want 3 per module", n)
	}
}

func TestPlayerUsesSessionResources(t *testing.T) {
	res := []course.Resource{{Title: "Guía oficial", URL: "https://docs.python.org"}}
	page, err := BuildPlayer(coursetest.Sample(), res, "es")
	if err != nil {
		t.Fatal(err)
	}
	s := string(page)
	if strings.Count(s, "Guía oficial") != 3 {
		t.Fatalf("resource should appear once per module")
	}
	if strings.Contains(s, "Plantilla de trabajo") {
		t.Fatal("default resources leaked in")
	}
}

func TestPlayerEscapesCourseText(t *testing.T) {
	c := coursetest.Sample()
	c.Title = `<script>alert(1)</script>`
	page, err := BuildPlayer(c, nil, "es")
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(page), "<script>alert(1)</script>") {
		t.Fatal("title rendered unescaped")
	}
}

func TestExportWithoutArchiver(t *testing.T) {
	_, err := Adapter{}.Export(context.Background(), coursetest.Sample(), formats.Options{})
	if !errors.Is(err, formats.ErrNoArchiver) {
		t.Fatalf("err = %v, want ErrNoArchiver", err)
	}
}

func TestFilename(t *testing.T) {
	if got := (Adapter{}).Descriptor().Filename("Intro a Python 3!"); got != "SCORM_introapython3.zip" {
		t.Fatalf("filename = %q", got)
	}
}
