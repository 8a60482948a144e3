// Package clean is the text preprocessor that sits in front of the JSON
// extraction engine. Model output often arrives wrapped in markdown code
// fences, quoted as a whole, or with escaped newlines from double
// serialization; [Strip] undoes that incidental packaging without touching
// the structure inside. The tag engine never sees cleaned input; tags are
// extracted from the text exactly as given.
package clean
