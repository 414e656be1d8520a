// Package pipeline provides the multi stage evaluation engine of color transforms.
//
// A Pipeline is an ordered chain of stages. Each stage has a fixed number of input and output
// channels and performs one elementary step: a matrix with offset, a set of per channel tone
// curves, a color lookup table, a colorimetric conversion between CIE XYZ and CIE Lab, a
// rescaling between Lab versions or to and from the floating point PCS, a negative clipper or
// an identity. Stages are only built by the factories of this package, so the payload of a
// stage always matches the mechanism evaluating it.
//
// Evaluation feeds one sample through every stage in order. Two fixed size scratch buffers
// local to the call alternate as input and output of successive stages, so evaluating does
// not allocate and a built pipeline can be evaluated from many goroutines at once. Mutating
// a pipeline while it is evaluated is not safe.
//
// EvalU16 works on the 16 bit encoding, 0..65535 mapped to 0..1.0. EvalFloat takes values
// as they are. EvalU16Batch and EvalFloatBatch spread packed samples over goroutines.
//
// Misuse of the construction API, such as too many channels or chaining stages whose
// channel counts do not match, panics with an error wrapping one of the Err sentinels.
package pipeline
