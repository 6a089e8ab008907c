// Command convert converts an Eight business-card CSV/TSV export into the
// 61-column Atena Shokunin CSV on the command line.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"

	"github.com/kobune/eightatena/internal/company"
	"github.com/kobune/eightatena/internal/convert"
	"github.com/kobune/eightatena/internal/dict"
	"github.com/kobune/eightatena/internal/kana"
	"github.com/kobune/eightatena/internal/logger"
)

func main() {
	if err := mainE(); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func mainE() error {
	_ = godotenv.Load()

	fs := ff.NewFlagSet("eightatena-convert")

	var (
		input           = fs.StringLong("input", "", "input Eight CSV/TSV ('-' or empty for stdin)")
		output          = fs.StringLong("output", "", "output Atena CSV ('-' or empty for stdout)")
		dataDir         = fs.StringLong("data-dir", "data", "dictionary directory")
		kanaEngine      = fs.StringEnumLong("kana-engine", "transliterator backend", "kagome", "none")
		partialMatch    = fs.BoolLong("partial-match", "compose company kana from dictionary tokens")
		partialMinLen   = fs.IntLong("partial-token-min-len", 2, "minimum token length for partial matching")
		acronymCharwise = fs.BoolLong("acronym-charwise", "expand short ASCII runs letter by letter")
		acronymMaxLen   = fs.IntLong("acronym-max-len", 3, "longest ASCII run expanded char-by-char")
	)

	if err := ff.Parse(fs, os.Args[1:], ff.WithEnvVars()); err != nil {
		fmt.Printf("%s\n", ffhelp.Flags(fs))
		return fmt.Errorf("parsing flags: %w", err)
	}

	log := logger.Init()

	tr, err := newTransliterator(*kanaEngine)
	if err != nil {
		return err
	}

	opts := company.Options{
		PartialMatch:       *partialMatch,
		PartialTokenMinLen: *partialMinLen,
		AcronymCharwise:    *acronymCharwise,
		AcronymMaxLen:      *acronymMaxLen,
	}

	store := dict.NewStore(*dataDir)
	conv := convert.New(store.Tables(), tr, opts)

	in, closeIn, err := openInput(*input)
	if err != nil {
		return err
	}
	defer closeIn()

	out, closeOut, err := openOutput(*output)
	if err != nil {
		return err
	}

	stats, err := conv.Convert(in, out)
	if err != nil {
		closeOut()
		return err
	}
	if err := closeOut(); err != nil {
		return fmt.Errorf("closing output: %w", err)
	}

	log.Info("converted", "rows", stats.Rows, "kana_engine", tr.Name())
	return nil
}

func newTransliterator(engine string) (kana.Transliterator, error) {
	if engine == "none" {
		return kana.Null{}, nil
	}
	return kana.NewKagome()
}

func openInput(path string) (io.Reader, func(), error) {
	if path == "" || path == "-" {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening input: %w", err)
	}
	return f, func() { f.Close() }, nil
}

func openOutput(path string) (io.Writer, func() error, error) {
	if path == "" || path == "-" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("creating output: %w", err)
	}
	return f, f.Close, nil
}
