// Package resolve maps typed path expressions onto folders of a drive.
//
// Three grammars are recognized, in priority order:
//   - "..": the parent of the working folder (change-directory only)
//   - drive-rooted, any expression containing ':' such as C:/Docs/A
//   - relative to the working folder, such as Docs/A
//
// Input uses '/' between components. The working location is kept as a
// Working value (label plus folder names) and displayed with '\'. Every
// walk starts again from the drive root; folders hold no parent links.
package resolve
