// Package lists repairs list numbering inside classified tables.
//
// Paragraphs that use a list style without an explicit numbering reference
// pick up the style's default sequence when the document is saved, which
// shows up as phantom or restarted numbers. The functions here compensate:
//
//   - [Discover] infers which numId a table's items belong to.
//   - [Reconciler] converts unnumbered list-styled paragraphs to the normal
//     style and numbers each cell's main item explicitly.
//   - [Restore] puts back references changed by a save/reload cycle, from a
//     [Snapshot] taken before any mutation.
//   - [PatchBold] and [ApplyIndentation] adjust the shared level definitions.
//   - [GuardAfter] stops a list from continuing into the paragraphs that
//     follow a table.
//
// Numbering is never fabricated: references only ever point at numIds the
// document's store already defines.
package lists
