/*
Package diagnostics collects messages from the parsers and defines the
taxonomy of parse errors.

A Sink buckets messages by severity. Parsers record non-fatal findings
(e.g., a repeated attribute) as warnings or infos, and record the single
fatal failure which aborts a parse as an error. The fatal failure is
returned to the caller as well, as a *ParseError.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package diagnostics

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'webcore.diagnostics'.
func tracer() tracing.Trace {
	return tracing.Select("webcore.diagnostics")
}
