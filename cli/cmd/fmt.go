package cmd

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/ardnew/jan/lang"
	"github.com/ardnew/jan/log"
)

// Fmt parses Jan source and writes it in the chosen format.
type Fmt struct {
	Native Native `cmd:"" default:"withargs" help:"Format as canonical Jan source (default)."`
	JSON   JSON   `cmd:""                    help:"Format the syntax tree as JSON."`
	YAML   YAML   `cmd:""                    help:"Format the syntax tree as YAML."`
	AST    AST    `cmd:""                    help:"Format the syntax tree as an indented outline."`
	Tokens Tokens `cmd:""                    help:"List the tokens of the source."`
}

// Native formats input as canonical Jan source.
type Native struct {
	Indent int `default:"2" help:"Indent width for nested blocks (0 writes one line)" short:"i"`

	Source string `arg:"" default:"-" help:"Source input file or '-' for stdin." name:"source"`
}

// Run executes the fmt native command.
func (f *Native) Run(ctx context.Context) error {
	return format(ctx, f.Source, "native", func(p *lang.Program, w io.Writer) error {
		return p.Format(ctx, w, f.Indent)
	})
}

// JSON formats the syntax tree as JSON.
type JSON struct {
	Indent int `default:"2" help:"Indent width for JSON output (0 is compact)" short:"i"`

	Source string `arg:"" default:"-" help:"Source input file or '-' for stdin." name:"source"`
}

// Run executes the fmt json command.
func (j *JSON) Run(ctx context.Context) error {
	return format(ctx, j.Source, "json", func(p *lang.Program, w io.Writer) error {
		return p.FormatJSON(ctx, w, j.Indent)
	})
}

// YAML formats the syntax tree as YAML.
type YAML struct {
	Indent int `default:"2" help:"Indent width for YAML output (0 is flow style)" short:"i"`

	Source string `arg:"" default:"-" help:"Source input file or '-' for stdin." name:"source"`
}

// Run executes the fmt yaml command.
func (y *YAML) Run(ctx context.Context) error {
	return format(ctx, y.Source, "yaml", func(p *lang.Program, w io.Writer) error {
		return p.FormatYAML(ctx, w, y.Indent)
	})
}

// AST formats the syntax tree as an indented outline.
type AST struct {
	Indent int `default:"2" help:"Indent width per tree level" short:"i"`

	Source string `arg:"" default:"-" help:"Source input file or '-' for stdin." name:"source"`
}

// Run executes the fmt ast command.
func (a *AST) Run(ctx context.Context) error {
	return format(ctx, a.Source, "ast", func(p *lang.Program, w io.Writer) error {
		return p.FormatTree(ctx, w, a.Indent)
	})
}

// Tokens lists the tokens of the input, one per line.
type Tokens struct {
	Source string `arg:"" default:"-" help:"Source input file or '-' for stdin." name:"source"`
}

// Run executes the fmt tokens command.
func (t *Tokens) Run(ctx context.Context) error {
	stdio := stdioFrom(ctx)

	text, err := readSource(t.Source, stdio.In)
	if err != nil {
		return err
	}

	var b bytes.Buffer

	for tok, err := range lang.NewLexer(text).All() {
		if err != nil {
			return annotate(ctx, err, t.Source, text)
		}

		fmt.Fprintf(&b, "%d:%d\t%s\t%s\n",
			tok.Pos.Line, tok.Pos.Column, tok.Kind, tok)
	}

	_, err = stdio.Out.Write(b.Bytes())

	return err
}

// format parses source and writes it to stdout with write. Output is
// buffered so nothing is written if formatting fails.
func format(
	ctx context.Context,
	source, name string,
	write func(*lang.Program, io.Writer) error,
) error {
	stdio := stdioFrom(ctx)

	text, err := readSource(source, stdio.In)
	if err != nil {
		return err
	}

	prog, err := lang.ParseCached(ctx, text, lang.WithLogger(log.Default()))
	if err != nil {
		return annotate(ctx, err, source, text)
	}

	var b bytes.Buffer
	if err := write(prog, &b); err != nil {
		return lang.ErrWriteOutput.Wrap(err).With(slog.String("format", name))
	}

	log.DebugContext(ctx, "formatted source",
		slog.String("format", name),
		slog.String("source", source),
		slog.Int("statements", len(prog.Statements)))

	_, err = stdio.Out.Write(b.Bytes())

	return err
}

// readSource reads all of the named file, or stdin for "-".
func readSource(name string, stdin io.Reader) (string, error) {
	src := source{name: name, path: name}
	if name == stdinSource {
		src.path = ""
	}

	rc, err := src.open(stdin)
	if err != nil {
		return "", err
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return "", lang.ErrReadInput.Wrap(err).With(slog.String("source", name))
	}

	return string(data), nil
}
