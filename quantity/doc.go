// Package quantity holds the wall/opening/room model of a building and
// derives construction quantities from it.
//
// Walls follow the H/V method: horizontal walls are numbered H0, H1, ...
// and vertical walls V0, V1, ..., each direction its own unbroken 0-based
// sequence. The model is produced outside this module (by the drawing
// interpretation step or a reviewer) and decoded with [DecodeModel].
//
// [Validate] reports problems as human-readable warnings in Portuguese,
// the language of the reviewers; it never fails. [Derive] is a pure
// function over the model and is defined even for models that did not
// validate, so reviewers see best-effort numbers while fixing data.
// [Apply] does both and returns a [Result].
//
//	m, err := quantity.DecodeModel(r)
//	res := quantity.Apply(m)
//	fmt.Println(res.Derived.AParedesTotal, res.Warnings)
package quantity
