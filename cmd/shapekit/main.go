// Package main provides the shapekit CLI.
//
// shapekit loads shape schemas (YAML or JSONC), runs shape transforms on
// them, validates JSON data against them, and exports resolved schemas as
// deterministic CBOR:
//
//	shapekit paths -f schema.yaml User
//	shapekit flatten -f schema.yaml Matrix
//	shapekit merge -f schema.yaml --policy first Feed
//	shapekit check -f schema.yaml --shape User data.json
//	shapekit fmt -f schema.yaml -o expanded.yaml
//	shapekit export -f schema.yaml -o schema.cbor
package main

import (
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/pflag"

	"shapekit/check"
	"shapekit/internal/codec"
	"shapekit/internal/schemafile"
	"shapekit/shape"
	"shapekit/transform"
)

const usage = `shapekit - shape schema toolbox

Usage:
  shapekit <command> -f <schema-file> [flags] [args]

Commands:
  paths     list the dotted property paths of a shape
  flatten   strip array nesting from a shape
  merge     merge the object members of a union
  check     validate a JSON data file against a shape
  fmt       rewrite a schema as YAML with references expanded
  export    encode the resolved schema as deterministic CBOR

Run 'shapekit <command> --help' for command flags.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	var err error

	switch cmd := os.Args[1]; cmd {
	case "paths":
		err = runPaths(os.Args[2:])
	case "flatten":
		err = runFlatten(os.Args[2:])
	case "merge":
		err = runMerge(os.Args[2:])
	case "check":
		err = runCheck(os.Args[2:])
	case "fmt":
		err = runFmt(os.Args[2:])
	case "export":
		err = runExport(os.Args[2:])
	case "help", "-h", "--help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "shapekit: unknown command %q\n\n%s", cmd, usage)
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "shapekit: %v\n", err)
		os.Exit(1)
	}
}

// schemaFlag registers the shared -f/--file flag on a command's flag set.
func schemaFlag(flags *pflag.FlagSet) *string {
	return flags.StringP("file", "f", "", "schema file (YAML, JSON or JSONC)")
}

// loadDocument loads the schema file named by the -f flag.
func loadDocument(path string) (*schemafile.Document, error) {
	if path == "" {
		return nil, fmt.Errorf("-f is required")
	}

	return schemafile.LoadFile(path)
}

// loadShape loads the schema file and resolves one named shape from it.
func loadShape(path, name string) (*shape.Shape, error) {
	doc, err := loadDocument(path)
	if err != nil {
		return nil, err
	}

	return doc.ResolveShape(name)
}

func runPaths(args []string) error {
	flags := pflag.NewFlagSet("paths", pflag.ExitOnError)
	schemaPath := schemaFlag(flags)

	if err := flags.Parse(args); err != nil {
		return err
	}

	if flags.NArg() != 1 {
		return fmt.Errorf("paths: expected exactly one shape name")
	}

	s, err := loadShape(*schemaPath, flags.Arg(0))
	if err != nil {
		return err
	}

	for _, p := range transform.Paths(s) {
		fmt.Println(p)
	}

	return nil
}

func runFlatten(args []string) error {
	flags := pflag.NewFlagSet("flatten", pflag.ExitOnError)
	schemaPath := schemaFlag(flags)

	if err := flags.Parse(args); err != nil {
		return err
	}

	if flags.NArg() != 1 {
		return fmt.Errorf("flatten: expected exactly one shape name")
	}

	s, err := loadShape(*schemaPath, flags.Arg(0))
	if err != nil {
		return err
	}

	fmt.Println(transform.Flatten(s))

	return nil
}

func runMerge(args []string) error {
	flags := pflag.NewFlagSet("merge", pflag.ExitOnError)
	schemaPath := schemaFlag(flags)
	policyName := flags.String("policy", "never", "conflict policy: never, first or error")

	if err := flags.Parse(args); err != nil {
		return err
	}

	if flags.NArg() < 1 {
		return fmt.Errorf("merge: expected at least one shape name")
	}

	policy, err := transform.PolicyFromName(*policyName)
	if err != nil {
		return err
	}

	doc, err := loadDocument(*schemaPath)
	if err != nil {
		return err
	}

	// A single name merges that shape; several names are unioned first,
	// so members can be merged without declaring the union in the file.
	members := make([]*shape.Shape, 0, flags.NArg())

	for _, name := range flags.Args() {
		s, err := doc.ResolveShape(name)
		if err != nil {
			return err
		}

		members = append(members, s)
	}

	target := members[0]
	if len(members) > 1 {
		target = shape.Union(members...)
	}

	merged, err := transform.Merge(target, policy)
	if err != nil {
		return err
	}

	fmt.Println(merged)

	return nil
}

func runCheck(args []string) error {
	flags := pflag.NewFlagSet("check", pflag.ExitOnError)
	schemaPath := schemaFlag(flags)
	shapeName := flags.String("shape", "", "name of the shape to validate against")
	partial := flags.Bool("partial", false, "treat every field as optional before checking")

	if err := flags.Parse(args); err != nil {
		return err
	}

	if *shapeName == "" {
		return fmt.Errorf("check: --shape is required")
	}

	if flags.NArg() != 1 {
		return fmt.Errorf("check: expected exactly one data file")
	}

	s, err := loadShape(*schemaPath, *shapeName)
	if err != nil {
		return err
	}

	if *partial {
		s = transform.DeepPartial(s)
	}

	value, err := check.LoadValue(flags.Arg(0))
	if err != nil {
		return err
	}

	diags := check.Named(*shapeName, value, s)

	for _, d := range diags.All() {
		fmt.Println(d)
	}

	if diags.HasErrors() {
		return fmt.Errorf("%d error(s) found", len(diags.Errors))
	}

	return nil
}

func runFmt(args []string) error {
	flags := pflag.NewFlagSet("fmt", pflag.ExitOnError)
	schemaPath := schemaFlag(flags)
	outPath := flags.StringP("out", "o", "", "output file (default: stdout)")

	if err := flags.Parse(args); err != nil {
		return err
	}

	doc, err := loadDocument(*schemaPath)
	if err != nil {
		return err
	}

	shapes, err := doc.Resolve()
	if err != nil {
		return err
	}

	if *outPath != "" {
		return schemafile.WriteFile(*outPath, doc.Names(), shapes)
	}

	data, err := schemafile.Marshal(doc.Names(), shapes)
	if err != nil {
		return err
	}

	_, err = os.Stdout.Write(data)

	return err
}

func runExport(args []string) error {
	flags := pflag.NewFlagSet("export", pflag.ExitOnError)
	schemaPath := schemaFlag(flags)
	outPath := flags.StringP("out", "o", "", "output file for the encoded schema")
	dump := flags.Bool("dump", false, "dump the resolved shapes to stderr")

	if err := flags.Parse(args); err != nil {
		return err
	}

	if *outPath == "" {
		return fmt.Errorf("export: -o is required")
	}

	doc, err := loadDocument(*schemaPath)
	if err != nil {
		return err
	}

	shapes, err := doc.Resolve()
	if err != nil {
		return err
	}

	if *dump {
		spew.Fdump(os.Stderr, shapes)
	}

	data, err := codec.Encode(shapes)
	if err != nil {
		return err
	}

	if err := os.WriteFile(*outPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", *outPath, err)
	}

	fmt.Printf("wrote %d shapes (%d bytes) to %s\n", len(shapes), len(data), *outPath)

	return nil
}
