/*
Package builder writes the expanded output tree.

For every tag, in the order it is given, the builder:

 1. Resolves the tag's source file through the topology store and reads it.
 2. Finds every known tag t whose literal `<t>` occurs in the content and
    replaces all of those occurrences with the full content of t's source.
 3. Writes the result to the mirrored path under the output root, creating
    intermediate directories and overwriting existing files.

Substitution is a single pass over the original text. Content pulled in from
an included file is never scanned again, so nested includes inside it reach
the output literally. A document that includes itself is reported and left
unexpanded, and references to tags without a source stay literal.
*/
package builder
