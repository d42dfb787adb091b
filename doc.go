// Package filekit provides line-oriented file reading, random line
// selection, directory listing, and append-only writing for Go.
//
// Filekit wraps the small filesystem chores that text-file tooling
// repeats everywhere: split a file into tokens, pick one at random,
// list a directory by extension, append a record. All operations are
// synchronous and return on completion.
//
// # Quick Start
//
// Package-level functions use a shared default Kit:
//
//	lines, _ := filekit.Load("words.txt")
//	nums, _ := filekit.LoadInts("scores.txt")
//	word, _ := filekit.PickRandom("words.txt")
//	_ = filekit.AppendString("log.txt", "done\n")
//
// A Kit carries its own file system, logger, metrics, and RNG:
//
//	kit := filekit.New(
//	    filekit.WithLogLevel(slog.LevelDebug),
//	    filekit.WithRandomSeed(42),
//	)
//	word, _ := kit.PickRandom("words.txt")
//
// # Tokens and Filters
//
// Files are split on a single-byte separator, newline by default. A
// separator at the end of the file does not produce a trailing empty
// token; a final unterminated token is kept. Load drops empty tokens
// unless WithSkipEmpty(false) is set, and a LineFilter drops tokens by
// prefix or substring:
//
//	lines, _ := filekit.Load("config.txt",
//	    filekit.WithFilter(filekit.LineFilter{SkipPrefixes: []string{"#"}}),
//	)
//	fields, _ := filekit.Load("row.csv", filekit.WithSeparator(','))
//
// Files ending in .gz, .zst, or .lz4 are decompressed transparently.
//
// # Errors
//
// Failures carry a kind the caller can branch on:
//
//	_, err := filekit.Load("missing.txt")
//	if errors.Is(err, filekit.ErrNotFound) { ... }
//
//	_, err = filekit.PickRandom("empty.txt", filekit.WithSkipEmpty(true))
//	if errors.Is(err, filekit.ErrEmptyFile) { ... }
//
//	var perr *filekit.ParseError
//	if errors.As(err, &perr) { fmt.Println(perr.Token) }
//
// # File Systems
//
// Operations run against fsys.Default unless WithFileSystem overrides
// it. The billyfs package adapts go-billy filesystems, including an
// in-memory one for tests:
//
//	kit := filekit.New(filekit.WithFileSystem(billyfs.NewMemory()))
//
// # Key Features
//
//   - Exact single-byte separator tokenization, unbounded token length
//   - Prefix and substring line filters
//   - Uniform random pick via reservoir sampling or two-pass counting
//   - Directory listing with extension and name filters
//   - Append with optional create, fsync, and advisory locking
//   - Transparent gzip, zstd, and lz4 decompression
//   - Pluggable file system, logger, metrics collector, and RNG
package filekit
