// Package query evaluates jq expressions against extracted JSON values via
// gojq. It backs the CLI's --query flag, letting callers pull a field out of
// a recovered structure without another tool in the pipeline.
package query
