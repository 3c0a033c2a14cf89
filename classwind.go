// Package classwind composes utility class lists: it flattens plain,
// conditional, nested, and keyed class inputs into one ordered string,
// then resolves conflicts so each utility family is represented at most
// once, by its last occurrence.
//
// # Composition
//
// Build a class list from mixed inputs:
//
//	classwind.Compose(
//		classwind.Token("btn px-2"),
//		classwind.KV("btn--active", isActive),
//		classwind.List(classwind.Token("text-sm")),
//		classwind.Keyed(
//			classwind.Pair{Class: "shadow", On: elevated},
//			classwind.Pair{Class: "px-4", On: wide},
//		),
//	)
//	// isActive, elevated, wide true => "btn btn--active text-sm shadow px-4"
//	// (px-2 is displaced by the later px-4)
//
// # Merging
//
// Resolve conflicts in an existing class string:
//
//	classwind.Merge("p-4 px-2 px-8") // "p-4 px-8"
//
// # Custom conflict tables
//
// The family table is data, not code. Extend the default table, build
// one from scratch, or derive one from a stylesheet:
//
//	table, err := classwind.TableFromCSS(cssFile)
//	merged := classwind.New(table).Merge("p-2 p-1")
//
// # CLI Tool
//
// classwind also provides a CLI tool. Install with:
//
//	go install github.com/yacobolo/classwind/cmd/classwind@latest
package classwind
