package main

import (
	"bytes"
	"embed"
	"io/fs"
	"path"
	"strings"
	"testing"

	"github.com/cottand/nform/nform"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

// embeds the test folder
//
//go:embed test
var testSet embed.FS

// the first line of each test file is one of
//
//	#nform:test expected CNF | expected DNF
//	#nform:error expected code | expected message fragment
//
// and the formula is the rest of the file
func extractTestComment(t *testing.T, str string) (kind, first, second, formula string) {
	firstLine, rest, _ := strings.Cut(str, "\n")
	kind, header, ok := strings.Cut(strings.TrimPrefix(firstLine, "#nform:"), " ")
	elems := strings.Split(header, "|")
	if !ok || len(elems) != 2 {
		t.Fatalf("could not parse comment string: '%v'", firstLine)
	}
	return kind, strings.TrimSpace(elems[0]), strings.TrimSpace(elems[1]), strings.TrimSpace(rest)
}

func TestScenariosEndToEnd(t *testing.T) {
	testFolder(t, "scenarios")
}

func TestErrorsEndToEnd(t *testing.T) {
	testFolder(t, "errors")
}

func testFolder(t *testing.T, at string) {
	files, err := testSet.ReadDir(path.Join("test", at))
	assert.NoError(t, err)
	assert.NotEmpty(t, files)
	for _, f := range files {
		if f.IsDir() || !strings.HasSuffix(f.Name(), ".nf") {
			continue
		}
		testFile(t, at, f)
	}
}

func testFile(t *testing.T, at string, f fs.DirEntry) bool {
	return t.Run(f.Name(), func(t *testing.T) {
		content, err := testSet.ReadFile(path.Join("test", at, f.Name()))
		assert.NoError(t, err)

		kind, first, second, formula := extractTestComment(t, string(content))
		res, err := nform.Convert(formula, nform.Options{Verify: true})
		switch kind {
		case "test":
			if !assert.NoError(t, err) {
				t.Log(nform.FormatError(err, formula))
				return
			}
			assert.Equal(t, first, res.CNF, "CNF of %s", formula)
			assert.Equal(t, second, res.DNF, "DNF of %s", formula)

			if !strings.Contains(formula, "\n") {
				out := runCLI(t, "convert", formula)
				assert.Equal(t, "CNF: "+first+"\nDNF: "+second+"\n", out)
			}
		case "error":
			if !assert.Error(t, err) {
				return
			}
			msg := nform.FormatError(err, formula)
			assert.Contains(t, msg, first)
			assert.Contains(t, msg, second)
		default:
			t.Fatalf("unknown test kind %q", kind)
		}
	})
}

func runCLI(t *testing.T, args ...string) string {
	color.NoColor = true
	out := &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	assert.NoError(t, rootCmd.Execute())
	return out.String()
}
