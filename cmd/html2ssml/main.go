/*
Command html2ssml renders an HTML document, styled with aural CSS, as
speech synthesis markup.

Usage:

    html2ssml [--css FILE]… [--indent N] [--escape] [--selector SEL] [FILE.html]

Stylesheets embedded in <style> elements are applied first, then the
stylesheets given with --css, in order. Without a file argument (or with
"-") the document is read from stdin. The markup is written to stdout.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'aural.cli'.
func tracer() tracing.Trace {
	return tracing.Select("aural.cli")
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
