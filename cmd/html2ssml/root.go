package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/aural/dom/domdbg"
	"github.com/npillmayer/aural/dom/style/cssom"
	"github.com/npillmayer/aural/dom/style/cssom/douceuradapter"
	"github.com/npillmayer/aural/dom/styledtree"
	"github.com/npillmayer/aural/ssml"
	"github.com/npillmayer/schuko/tracing"
	"github.com/spf13/cobra"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var traceKeys = []string{"aural.cli", "aural.ssml", "aural.dom", "aural.cssom", "aural.tree"}

type options struct {
	cssFiles []string
	indent   int
	escape   bool
	selector string
	dotFile  string
	verbose  bool
}

func newRootCommand() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:           "html2ssml [flags] [FILE.html]",
		Short:         "Render an HTML document with aural CSS as speech synthesis markup",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.verbose {
				for _, key := range traceKeys {
					tracing.Select(key).SetTraceLevel(tracing.LevelDebug)
				}
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			input := "-"
			if len(args) > 0 {
				input = args[0]
			}
			return convert(cmd.Context(), input, opts, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
	flags := cmd.Flags()
	flags.StringArrayVar(&opts.cssFiles, "css", nil, "additional stylesheet (repeatable)")
	flags.IntVar(&opts.indent, "indent", 2, "spaces per nesting level")
	flags.BoolVar(&opts.escape, "escape", false, "escape markup characters in text and attribute values")
	flags.StringVar(&opts.selector, "selector", "body", "CSS selector of the element to render")
	flags.StringVar(&opts.dotFile, "dot", "", "write the styled tree as a GraphViz diagram to `FILE`")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug tracing and print the styled tree to stderr")
	return cmd
}

func convert(ctx context.Context, input string, opts *options, stdin io.Reader, stdout, stderr io.Writer) error {
	doc, err := parseDocument(input, stdin)
	if err != nil {
		return err
	}
	sheets, err := stylesheets(doc, opts.cssFiles)
	if err != nil {
		return err
	}
	root, err := selectRoot(doc, opts.selector)
	if err != nil {
		return err
	}
	if err = ctx.Err(); err != nil {
		return err
	}
	styled, err := cssom.Style(root, sheets...)
	if err != nil {
		return fmt.Errorf("styling %s: %w", input, err)
	}
	if opts.verbose {
		fmt.Fprint(stderr, domdbg.Dump(styled))
	}
	if opts.dotFile != "" {
		if err = writeGraph(styled, opts.dotFile); err != nil {
			return err
		}
	}
	renderOpts := []ssml.Option{ssml.WithIndent(opts.indent)}
	if opts.escape {
		renderOpts = append(renderOpts, ssml.WithEscaping())
	}
	_, err = io.WriteString(stdout, ssml.NewRenderer(renderOpts...).Render(styled))
	return err
}

func parseDocument(input string, stdin io.Reader) (*html.Node, error) {
	r := stdin
	if input != "-" {
		f, err := os.Open(input)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	tracer().Infof("reading HTML from %s", input)
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", input, err)
	}
	return doc, nil
}

func stylesheets(doc *html.Node, cssFiles []string) ([]cssom.StyleSheet, error) {
	embedded, err := douceuradapter.ExtractStyleElements(doc)
	if err != nil {
		return nil, fmt.Errorf("embedded stylesheet: %w", err)
	}
	sheets := make([]cssom.StyleSheet, 0, len(embedded)+len(cssFiles))
	for _, s := range embedded {
		sheets = append(sheets, s)
	}
	for _, name := range cssFiles {
		src, err := os.ReadFile(name)
		if err != nil {
			return nil, err
		}
		s, err := douceuradapter.ParseStyleSheet(string(src))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		tracer().Debugf("stylesheet %s has %d rules", name, len(s.Rules()))
		sheets = append(sheets, s)
	}
	return sheets, nil
}

func writeGraph(styled *styledtree.StyNode, name string) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err = domdbg.ToGraphViz(styled, f); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", name, err)
	}
	tracer().Infof("styled tree written to %s", name)
	return f.Close()
}

var errNoRoot = errors.New("document has no root element")

// selectRoot finds the first element matching selector, falling back to the
// document's root element.
func selectRoot(doc *html.Node, selector string) (*html.Node, error) {
	if selector != "" {
		sel, err := cascadia.ParseGroup(selector)
		if err != nil {
			return nil, fmt.Errorf("invalid selector %q: %w", selector, err)
		}
		if n := cascadia.Query(doc, sel); n != nil {
			return n, nil
		}
		tracer().Infof("no element matches %q, rendering whole document", selector)
	}
	if n := douceuradapter.FindElement(atom.Html, doc); n != nil {
		return n, nil
	}
	return nil, errNoRoot
}
