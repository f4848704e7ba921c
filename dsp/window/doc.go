// Package window shapes the onset and offset of finished stimulus buffers.
//
// Each envelope is applied to the first and last length samples of a
// buffer: the onset rises towards unity and the offset is its mirror
// image. Samples in between are left untouched.
package window
