// Package vocabulary decides which markup elements are standard and which are
// custom. A custom element is any element whose name is missing from the
// built-in standard list; tagweaver treats every custom element as an include
// directive naming another document.
//
// Classification is purely textual. Elements are found with a greedy
// per-line match of `<.*>`, so a line such as `<p><card></p>` yields a single
// token whose name is "p". Closing tags are classified by their literal name,
// which includes the slash ("/div"), and are therefore reported as custom.
package vocabulary
