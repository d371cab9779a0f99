// Package docs composes human-readable documentation for a build framework:
// overviews of the available easyconfig parameters (optionally merged with
// one easyblock's extra options) and per-easyblock reference blocks. The
// Generator deep-copies its working tables per call, so repeated calls never
// interfere with the shared defaults.
package docs
