// Package render converts argument values into the canonical text a key/value
// settings loader parses back.
//
// Primitive values render in their natural textual form: strings as is,
// booleans as True/False, numbers in invariant decimal notation, levels by
// symbolic name, durations in the [-][d.]hh:mm:ss[.fffffff] constant format,
// times in RFC 3339 and URLs through their String method. Pointers to any of
// these are dereferenced.
//
// Values bound to interface-typed parameters are rendered as references the
// loader can resolve back to the same instance:
//
//   - a named accessor registered in the catalog renders as
//     "<DeclaringType>::<Member>, <Module>";
//   - a default-constructed instance of a registered concrete type renders as
//     "<FullName>, <Module>", telling the loader to instantiate the type.
//
// For any other interface with methods nothing else is tried: the value fails
// with ErrCannotRender. Values bound to concrete or empty-interface parameters
// that implement encoding.TextMarshaler render as their text, and remaining
// named types of a primitive kind render like their underlying kind.
// Values matching none of these rules fail with ErrCannotRender rather than
// producing a best-guess placeholder.
package render
