// Package joinlinks implements the join-links kernel: combining two
// link states under a cut-off policy into a
// single-step array indexed by elapsed time t, tagged by an EvalFunc that
// selects which quantity is being computed (bare probability, or one of
// the Werner-weighted swap/distillation kernels).
//
// Two evaluation paths exist. The efficient path (Kind == MemoryTime, and
// Config.Efficient) exploits that the relative delay |t1-t2| has bounded
// support (the memory-time window) to compute the marginal in
// O(T_trunc·mt_cut). The compatible path enumerates the full 2-D joint
// distribution and marginalizes; it is O(T_trunc²) but handles every
// cut-off kind, including Fidelity and RunTime, which have no bounded
// -window shortcut.
package joinlinks
