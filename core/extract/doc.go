// Package extract is the format dispatcher in front of the two snippet
// extraction engines. [Extract] routes input to the JSON or tag engine by
// format name (JSON input passes through the clean preprocessor first) and
// turns unknown format names into an immediate fail Result without invoking
// any engine. [Strict] is the throwing variant: it converts any non-success
// outcome into a [ResultError] and hands back the extracted data otherwise.
//
// This package is also where observability attaches: pass [WithObserver] to
// record one structured log event and one counter increment per call.
package extract
