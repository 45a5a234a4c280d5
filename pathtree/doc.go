// Package pathtree defines a path-compressed tree keyed by ordered sequences of string
// segments ("paths") rather than by single characters.
//
// Runs of segments without branching are merged into a single node, so lookups, inserts and
// deletes cost time proportional to the path length.
//
// Structure:
// ---------
//
//   - Tree - the root value (stored at the empty path) and the first-level nodes;
//   - node - a non-empty prefix of segments, an optional value and the children keyed by
//     the first segment of their own prefix (a crit-bit dict).
//
// Every operation keeps the tree compressed: no node is left without a value and with
// exactly one child.
//
// Example tree:
// ------------
//
//	            ,-- ["john"] = John --+-- ["profile"] = P
//	            |                     `-- ["settings"] = S
//	["users"] --+
//	            `-- ["jane", "photos"] = Photos
//
// The tree above contains the following paths:
//
//   - users/john
//   - users/john/profile
//   - users/john/settings
//   - users/jane/photos
//
// Mutation:
// --------
//
// Set and Delete change a tree in place and need a single owner. Setting, Deleting,
// Merging, Clone and the Traverse family never change their receiver: they return trees
// sharing the untouched nodes. Sharing is safe because a tree rewrites only the nodes it
// created since it last handed its structure out; anything else is copied along the
// changed path first.
package pathtree
