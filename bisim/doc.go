// Package bisim implements the strong timed bisimulation check:
// given two virtual clock graphs (package vcg) built over a common
// pair of synchronised events, it decides whether their initial states are
// strongly timed bisimilar, returning a compressed vcg.Container of the
// virtual-constraint sub-regions where they are not. The algorithm follows
// Lieb et al.'s recursive check_for_virt_bisim: project each side's zone
// onto the virtual clocks, record any region one side has that the other
// lacks, sync the zones over the resets of the transition that produced
// them, recurse over a delay step and over every synchronised action, and
// pull every sub-region discrepancy found deeper back to the caller via
// vcg.VCG's revert_* operations.
package bisim
