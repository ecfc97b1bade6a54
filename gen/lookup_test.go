package gen

import (
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"os"
	"os/exec"
	"path"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

func TestGeneratedLookups(t *testing.T) {
	fs := testRepoFs(t)
	if _, err := Generate(fs, testFlags(), Env{}); err != nil {
		t.Fatal(err)
	}
	f, err := parser.ParseFile(token.NewFileSet(), "material_icons.go", readOut(t, fs, "material_icons.go"), 0)
	if err != nil {
		t.Fatal(err)
	}
	byPath, byName := parseLookup(t, f, "ByPath"), parseLookup(t, f, "ByName")
	all := parseAll(t, f)
	if len(all) != 5 {
		t.Fatalf("expected 5 entries, got: %d", len(all))
	}
	first := make(map[string]string)
	for _, e := range all {
		for _, s := range []string{e.path, strings.ToUpper(e.path), mixCase(e.path), " " + e.path + "\t\n"} {
			if id, ok := byPath.call(t, s); !ok || id != e.id {
				t.Errorf("ByPath(%q) expected %s, got: %q, %t", s, e.id, id, ok)
			}
		}
		if name := path.Base(e.path); first[name] == "" {
			first[name] = e.id
		}
	}
	// bare names resolve to the first occurrence in All
	for name, exp := range first {
		for _, s := range []string{name, strings.ToUpper(name), mixCase(name)} {
			if id, ok := byName.call(t, s); !ok || id != exp {
				t.Errorf("ByName(%q) expected %s, got: %q, %t", s, exp, id, ok)
			}
		}
	}
	tests := []struct {
		f   *lookupFunc
		s   string
		exp string
	}{
		{byName, "WARNING", "Android.Action.Warning"},
		{byName, " Error ", "Android.Alert.Error"},
		{byName, "3D_Rotation", "Android.Action.X3dRotation"},
		{byPath, "ANDROID/Alert/WARNING", "Android.Alert.Warning"},
		{byName, "xxx_only", ""},
		{byName, "", ""},
		{byPath, "android/alert/xxx_only", ""},
		{byPath, "android/action", ""},
		{byPath, "warning", ""},
	}
	for i, test := range tests {
		id, ok := test.f.call(t, test.s)
		if ok != (test.exp != "") || id != test.exp {
			t.Errorf("test %d %s(%q) expected %q, got: %q, %t", i, test.f.name, test.s, test.exp, id, ok)
		}
	}
}

func TestGeneratedPackage(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping generated package build in short mode")
	}
	goBin, err := exec.LookPath("go")
	if err != nil {
		t.Skip("go tool not available")
	}
	if _, err := os.Stat(filepath.Join("..", "go.sum")); err != nil {
		t.Skip("module dependencies not resolved")
	}
	fs := testRepoFs(t)
	res, err := Generate(fs, testFlags(), Env{})
	if err != nil {
		t.Fatal(err)
	}
	// the generated package must live inside the module to import blob
	dir, err := os.MkdirTemp("..", "generated")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.RemoveAll(dir) })
	for _, n := range res.Files {
		rel, err := filepath.Rel("/out", n)
		if err != nil {
			t.Fatal(err)
		}
		out := filepath.Join(dir, rel)
		if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(out, readOut(t, fs, filepath.ToSlash(rel)), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.WriteFile(filepath.Join(dir, "lookup_test.go"), []byte(generatedLookupTest), 0o644); err != nil {
		t.Fatal(err)
	}
	for _, tags := range []string{"", "mdicons_uncompressed"} {
		args := []string{"test", "-count=1"}
		if tags != "" {
			args = append(args, "-tags", tags)
		}
		cmd := exec.Command(goBin, append(args, ".")...)
		cmd.Dir = dir
		if out, err := cmd.CombinedOutput(); err != nil {
			t.Errorf("go %s: %v\n%s", strings.Join(args, " "), err, out)
		}
	}
}

// generatedLookupTest is run against the generated package of testRepoFs.
const generatedLookupTest = `package mdicons

import (
	"path"
	"strings"
	"testing"
)

func TestLookups(t *testing.T) {
	if len(All) != 5 {
		t.Fatalf("expected 5 icons, got: %d", len(All))
	}
	first := make(map[string]IconID)
	for _, e := range All {
		for _, s := range []string{e.Path, strings.ToUpper(e.Path), " " + e.Path + "\t\n"} {
			if id, ok := ByPath(s); !ok || id != e.ID {
				t.Errorf("ByPath(%q) expected %v, got: %v, %t", s, e.ID, id, ok)
			}
		}
		if n := len(e.ID.Alpha()); n != int(e.ID.Width)*int(e.ID.Height) {
			t.Errorf("%s: expected %d alpha bytes, got: %d", e.Path, int(e.ID.Width)*int(e.ID.Height), n)
		}
		if _, ok := first[path.Base(e.Path)]; !ok {
			first[path.Base(e.Path)] = e.ID
		}
	}
	for name, exp := range first {
		if id, ok := ByName(strings.ToUpper(name)); !ok || id != exp {
			t.Errorf("ByName(%q) expected %v, got: %v, %t", name, exp, id, ok)
		}
	}
	if id, ok := ByName("WARNING"); !ok || id != Android.Action.Warning {
		t.Errorf("expected action warning, got: %v, %t", id, ok)
	}
	if Action != Android.Action || Alert != Android.Alert {
		t.Error("expected category aliases to equal platform categories")
	}
	if a := Alert.Error.Alpha(); len(a) != 4 || a[0] != 0x50 || a[3] != 0x50 {
		t.Errorf("unexpected alpha for alert/error: %v", a)
	}
	for _, s := range []string{"", "xxx_only", "android/alert/xxx_only", "android/action"} {
		if _, ok := ByPath(s); ok {
			t.Errorf("expected ByPath(%q) to fail", s)
		}
		if _, ok := ByName(s); ok {
			t.Errorf("expected ByName(%q) to fail", s)
		}
	}
}
`

// lookupFunc is a generated ByPath or ByName function read back from its
// source.
type lookupFunc struct {
	name  string
	param string
	tag   ast.Expr
	cases map[string]string
}

// call evaluates the function's switch for arg, returning the expression of
// the matched case.
func (f *lookupFunc) call(t *testing.T, arg string) (string, bool) {
	t.Helper()
	expr, ok := f.cases[evalTag(t, f.tag, f.param, arg)]
	return expr, ok
}

// evalTag evaluates a switch tag built from the parameter and strings
// package calls.
func evalTag(t *testing.T, expr ast.Expr, param, arg string) string {
	t.Helper()
	switch x := expr.(type) {
	case *ast.Ident:
		if x.Name == param {
			return arg
		}
	case *ast.CallExpr:
		if len(x.Args) != 1 {
			break
		}
		v := evalTag(t, x.Args[0], param, arg)
		switch types.ExprString(x.Fun) {
		case "strings.ToLower":
			return strings.ToLower(v)
		case "strings.ToUpper":
			return strings.ToUpper(v)
		case "strings.TrimSpace":
			return strings.TrimSpace(v)
		}
	}
	t.Fatalf("cannot evaluate switch tag %s", types.ExprString(expr))
	return ""
}

// parseLookup reads the switch of the named function in f.
func parseLookup(t *testing.T, f *ast.File, name string) *lookupFunc {
	t.Helper()
	for _, d := range f.Decls {
		fd, ok := d.(*ast.FuncDecl)
		if !ok || fd.Recv != nil || fd.Name.Name != name {
			continue
		}
		if len(fd.Type.Params.List) != 1 || len(fd.Type.Params.List[0].Names) != 1 || len(fd.Body.List) == 0 {
			t.Fatalf("unexpected signature for %s", name)
		}
		sw, ok := fd.Body.List[0].(*ast.SwitchStmt)
		if !ok || sw.Tag == nil {
			t.Fatalf("expected %s to start with a tagged switch", name)
		}
		lf := &lookupFunc{
			name:  name,
			param: fd.Type.Params.List[0].Names[0].Name,
			tag:   sw.Tag,
			cases: make(map[string]string),
		}
		for _, stmt := range sw.Body.List {
			cc := stmt.(*ast.CaseClause)
			ret, ok := cc.Body[0].(*ast.ReturnStmt)
			if !ok || len(ret.Results) != 2 {
				t.Fatalf("%s: unexpected case body", name)
			}
			for _, e := range cc.List {
				key, err := strconv.Unquote(e.(*ast.BasicLit).Value)
				if err != nil {
					t.Fatal(err)
				}
				if _, ok := lf.cases[key]; ok {
					t.Fatalf("%s: duplicate case %q", name, key)
				}
				lf.cases[key] = types.ExprString(ret.Results[0])
			}
		}
		return lf
	}
	t.Fatalf("no func %s in generated source", name)
	return nil
}

// allEntry is an element of the generated All.
type allEntry struct {
	path string
	id   string
}

// parseAll reads the elements of the generated All.
func parseAll(t *testing.T, f *ast.File) []allEntry {
	t.Helper()
	for _, d := range f.Decls {
		gd, ok := d.(*ast.GenDecl)
		if !ok || gd.Tok != token.VAR {
			continue
		}
		for _, s := range gd.Specs {
			vs := s.(*ast.ValueSpec)
			if vs.Names[0].Name != "All" {
				continue
			}
			var entries []allEntry
			for _, elt := range vs.Values[0].(*ast.CompositeLit).Elts {
				var e allEntry
				for _, kv := range elt.(*ast.CompositeLit).Elts {
					kv := kv.(*ast.KeyValueExpr)
					switch types.ExprString(kv.Key) {
					case "Path":
						p, err := strconv.Unquote(kv.Value.(*ast.BasicLit).Value)
						if err != nil {
							t.Fatal(err)
						}
						e.path = p
					case "ID":
						e.id = types.ExprString(kv.Value)
					}
				}
				entries = append(entries, e)
			}
			return entries
		}
	}
	t.Fatal("no All in generated source")
	return nil
}

// mixCase upper-cases every other letter of s.
func mixCase(s string) string {
	b := []byte(s)
	for i := 0; i < len(b); i += 2 {
		if 'a' <= b[i] && b[i] <= 'z' {
			b[i] -= 'a' - 'A'
		}
	}
	return string(b)
}
