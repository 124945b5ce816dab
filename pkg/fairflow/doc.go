// Package fairflow provides a pluggable pipeline for fairness-aware
// machine-learning workflows.
//
// Every pipeline stage (training, evaluation, fairness post-processing,
// reporting, publishing) is served by an interchangeable engine behind a
// uniform wrapper contract: the wrapper validates the stage's inputs from
// the control object, merges user hyperparameters with the engine's
// declared defaults, invokes the engine, and packages its raw result into
// the stage family's canonical output envelope. Later stages consume
// earlier stages' envelopes, never raw engine outputs, so swapping an
// algorithm never ripples beyond its own stage.
//
// Stage-fatal validation errors abort only the affected split. The one
// documented partial-failure policy is publishing: a failed or
// incompatible export yields a success=false envelope with the error
// message attached instead of aborting the pipeline.
//
// The workflow runner is deliberately thin. Splits are independent and run
// concurrently; the result collection is assembled only after all splits
// joined, and reporting stages consume it read-only.
package fairflow
