// Package verify sequences the verified line-range edit: snapshot the
// linter's view of the file, back the file up, apply the edit, snapshot
// again, and either commit (surfacing non-fatal warnings) or roll back
// (restoring the original bytes and rendering what the rejected edit
// would have looked like).
package verify

import (
	"context"
	"fmt"

	"github.com/jpl-au/lnedit/internal/delta"
	"github.com/jpl-au/lnedit/internal/diff"
	"github.com/jpl-au/lnedit/internal/doc"
	"github.com/jpl-au/lnedit/internal/lint"
	"github.com/jpl-au/lnedit/internal/view"
)

// Request describes one line-range edit: replace lines Start through End
// (1-indexed, inclusive, End beyond the file meaning end-of-file) with
// Replacement.
type Request struct {
	Start       int
	End         int
	Replacement []string
}

// Outcome is the result of a verified edit.
type Outcome struct {
	// Accepted reports whether the edit was committed.
	Accepted bool

	// CursorLine is the session cursor to commit on acceptance: the edit's
	// start line, clamped into the new document.
	CursorLine int

	// Warnings are newly introduced non-blocking findings (accepted edits).
	Warnings []lint.Finding

	// Blocking are the newly introduced blocking findings (rejected edits).
	Blocking []lint.Finding

	// View is the updated window around the edit (accepted edits).
	View string

	// Preview shows what the rejected edit would have looked like,
	// centred on the edited region with a widened window.
	Preview string

	// Original shows the restored content, centred on the original region.
	Original string

	// Diff is a line diff of the original content against the rejected
	// edit, to help the caller correct and retry.
	Diff string
}

// Verifier applies edits speculatively and decides accept or rollback.
// One Verifier may serve many edits; each Apply call is self-contained.
type Verifier struct {
	runner     lint.Runner
	blocking   lint.Profile
	full       lint.Profile
	extensions []string
}

// New creates a Verifier. Edits to files whose extension is not in
// extensions skip lint verification and always commit.
func New(runner lint.Runner, blocking, full lint.Profile, extensions []string) *Verifier {
	return &Verifier{runner: runner, blocking: blocking, full: full, extensions: extensions}
}

// Apply runs one verified edit against path. windowSize is the session's
// window size, used for the committed view; rejection renders use a
// doubled window so the caller sees the whole damaged region.
//
// The document is never left partially written: either the full post-edit
// content is on disk, or the pre-edit bytes are restored from the backup.
// The backup is removed whatever the outcome, except when the post-edit
// write itself fails, in which case it is left in place for manual
// recovery and the IO error is surfaced verbatim.
func (v *Verifier) Apply(ctx context.Context, path string, req Request, windowSize int) (Outcome, error) {
	d, err := doc.Load(path)
	if err != nil {
		return Outcome{}, err
	}

	edited, err := d.Replace(req.Start, req.End, req.Replacement)
	if err != nil {
		return Outcome{}, err
	}

	supported := lint.Supported(path, v.extensions)

	var beforeBlocking, beforeFull lint.Snapshot
	if supported {
		beforeBlocking = v.runner.Lint(ctx, path, v.blocking)
		beforeFull = v.runner.Lint(ctx, path, v.full)
	}

	backup, err := doc.NewBackup(path)
	if err != nil {
		return Outcome{}, err
	}

	if err := edited.Write(); err != nil {
		// Backup stays on disk for manual recovery.
		return Outcome{}, err
	}

	var afterBlocking, afterFull lint.Snapshot
	if supported {
		afterBlocking = v.runner.Lint(ctx, path, v.blocking)
		afterFull = v.runner.Lint(ctx, path, v.full)
	}

	window := delta.Window{Start: req.Start, End: d.ClampEnd(req.End)}
	newBlocking := delta.New(beforeBlocking.Findings, afterBlocking.Findings, window, len(req.Replacement))

	if len(newBlocking) > 0 {
		return v.reject(d, edited, backup, req, window, windowSize, newBlocking)
	}

	newFull := delta.New(beforeFull.Findings, afterFull.Findings, window, len(req.Replacement))

	cursor := view.Clamp(req.Start, edited.Len())
	out := Outcome{
		Accepted:   true,
		CursorLine: cursor,
		Warnings:   delta.Subtract(newFull, newBlocking),
		View:       view.Render(path, edited.Lines(), cursor, windowSize),
	}
	if err := backup.Remove(); err != nil {
		return out, fmt.Errorf("removing backup: %w", err)
	}
	return out, nil
}

// reject rolls the edit back. The preview is rendered from the rejected
// content before the restore; the original render is built afterwards.
func (v *Verifier) reject(d, edited *doc.Document, backup *doc.Backup, req Request, window delta.Window, windowSize int, findings []lint.Finding) (Outcome, error) {
	wide := windowSize * 2

	previewEnd := req.Start + len(req.Replacement) - 1
	preview := view.Render(d.Path(), edited.Lines(), view.Center(req.Start, previewEnd), wide)

	if err := backup.Restore(); err != nil {
		return Outcome{}, err
	}
	original := view.Render(d.Path(), d.Lines(), view.Center(window.Start, window.End), wide)

	out := Outcome{
		Blocking: findings,
		Preview:  preview,
		Original: original,
		Diff:     diff.Compute(d.Content(), edited.Content()),
	}
	if err := backup.Remove(); err != nil {
		return out, fmt.Errorf("removing backup: %w", err)
	}
	return out, nil
}
