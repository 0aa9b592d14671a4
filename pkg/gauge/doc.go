// Package gauge computes semicircular analog gauges.
//
// # Overview
//
// A gauge maps a reading onto a half circle: zero at one end of the arc,
// the scale maximum at the other. [Build] turns a [Spec] into a [Scene], a
// backend-independent list of drawing primitives, by running five stages
// in order:
//
//  1. [Normalize]: reading → angle in degrees
//  2. [BuildTicks]: evenly spaced scale labels
//  3. [ComposeArcs]: track arc, active arc, optional ramp segments
//  4. [ProjectNeedle]: arrow from the pivot toward the angle
//  5. [PlaceLabels]: tick labels and the centered value/title label
//
// Every stage is a pure function. Nothing is shared between calls, so
// gauges can be built concurrently and identical inputs always yield
// identical scenes.
//
// # Angles
//
// Angles are degrees measured from the zero end of the arc. With the
// default [CounterClockwise] orientation, 0° lies on the right of the pivot
// and 180° on the left, sweeping over the top. [Clockwise] mirrors this so
// the scale reads left to right.
//
// # Out-of-range readings
//
// By default readings are clamped into [0, Max] ([ClampRange]). With
// [ClampOverflow] the angle is left unclamped and the active arc and needle
// continue past the ends of the track.
//
// Rendering a Scene to PNG, SVG, PDF or JSON is done by the sink package.
package gauge
