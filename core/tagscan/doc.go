// Package tagscan implements the tag extraction engine. It recovers the
// first embedded HTML/XML element from surrounding prose by walking the text
// with a stack of open tag names: opening tags push, closing tags pop and
// must match, and the span is complete the moment the stack first empties.
//
// Unlike the JSON engine there is no repair path and no check state: a
// mismatched or unclosed tag always fails the call, with the consumed text
// reported in Raw for manual follow-up. Tag names are limited to ASCII word
// characters, colon and hyphen, and are compared case-insensitively unless
// [WithCaseSensitive] says otherwise.
package tagscan
