// Package blocks defines the component model of the circuit simulator.
//
// Two families of types live here:
//
//   - Construction blocks (CBlock): per-kind connection rules consulted while
//     lowering a voxel grid into the signal graph. They know which directions
//     they source power into, which directions they accept power from (and
//     through which channel, rear or side), and which runtime block they
//     lower to. Construction blocks are discarded once the graph is built.
//
//   - Runtime blocks (Block): the compact per-kind state machines advanced by
//     the tick scheduler. Every runtime block exposes OutputPower in [0,15];
//     kinds with tick delay additionally implement Updater, the two-phase
//     stage/commit contract.
//
// Weight is the typed edge annotation shared by both worlds: a rear or side
// channel tag plus an integer signal loss.
package blocks
