package main

import (
	"fmt"
	"os"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "export":
		err = cmdExport(os.Args[2:], os.Stdout)
	case "inspect":
		err = cmdInspect(os.Args[2:], os.Stdout)
	case "validate":
		err = cmdValidate(os.Args[2:], os.Stdout)
	case "help", "-h", "--help":
		printUsage()
	case "version", "-v", "--version":
		fmt.Printf("cursoapp %s\n", Version)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`CursoApp - course export tool

Usage:
  cursoapp <command> [arguments]

Commands:
  export     Build a Markdown, SCORM 1.2, H5P or print file from a course JSON
  inspect    List the entries and manifest of a SCORM or H5P package
  validate   Check a course JSON (raw generator output is accepted)
  help       Show this help message
  version    Show version information

Examples:
  cursoapp export -format scorm -in course.json -out dist/
  cursoapp export -format h5p -in course.json -resources resources.json
  cursoapp inspect dist/SCORM_introapython.zip
  cursoapp validate -in course.json`)
}
