package filekit_test

import (
	"fmt"
	"log"

	"github.com/klauspost/compress/gzip"

	"github.com/dstevens/filekit"
	"github.com/dstevens/filekit/billyfs"
)

// Example_quickStart demonstrates loading a file into lines with an
// in-memory filesystem.
func Example_quickStart() {
	kit := filekit.New(filekit.WithFileSystem(billyfs.NewMemory()))

	if err := kit.AppendString("words.txt", "alpha\nbeta\ngamma\n"); err != nil {
		log.Fatal(err)
	}

	lines, err := kit.Load("words.txt")
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(lines)
	// Output: [alpha beta gamma]
}

// ExampleKit_PickRandom demonstrates uniform random selection. With a
// single candidate the pick is deterministic.
func ExampleKit_PickRandom() {
	kit := filekit.New(filekit.WithFileSystem(billyfs.NewMemory()))

	if err := kit.AppendString("quotes.txt", "the only quote\n"); err != nil {
		log.Fatal(err)
	}

	quote, err := kit.PickRandom("quotes.txt")
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(quote)
	// Output: the only quote
}

// ExampleKit_LoadInts demonstrates parsing numbers from mixed layouts.
func ExampleKit_LoadInts() {
	kit := filekit.New(filekit.WithFileSystem(billyfs.NewMemory()))

	if err := kit.AppendString("scores.txt", "10 20\n30\n"); err != nil {
		log.Fatal(err)
	}

	nums, err := kit.LoadInts("scores.txt")
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(nums)
	// Output: [10 20 30]
}

// ExampleKit_ListFiles demonstrates extension filtering.
func ExampleKit_ListFiles() {
	kit := filekit.New(filekit.WithFileSystem(billyfs.NewMemory()))

	for _, name := range []string{"notes.txt", "build.log", "data.csv"} {
		if err := kit.AppendString(name, "x\n"); err != nil {
			log.Fatal(err)
		}
	}

	names, err := kit.ListFiles(".", filekit.WithDirFilter(filekit.DirFilter{
		TargetExtensions: []string{".txt"},
	}))
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(names)
	// Output: [notes.txt]
}

// ExampleLineFilter demonstrates predicate matching on raw lines.
func ExampleLineFilter() {
	filter := filekit.LineFilter{
		SkipPrefixes: []string{"#"},
		SkipContains: []string{"WIP"},
	}

	fmt.Println(filter.Skip("# a comment"))
	fmt.Println(filter.Skip("feature: WIP"))
	fmt.Println(filter.Skip("keep this"))
	// Output:
	// true
	// true
	// false
}

// Example_compressed demonstrates transparent decompression by file
// extension.
func Example_compressed() {
	kit := filekit.New(filekit.WithFileSystem(billyfs.NewMemory()))

	out, err := kit.OpenOutput("words.txt.gz")
	if err != nil {
		log.Fatal(err)
	}
	zw := gzip.NewWriter(out)
	if _, err := zw.Write([]byte("packed\nlines\n")); err != nil {
		log.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		log.Fatal(err)
	}
	if err := out.Close(); err != nil {
		log.Fatal(err)
	}

	lines, err := kit.Load("words.txt.gz")
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(lines)
	// Output: [packed lines]
}
