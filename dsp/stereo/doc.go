// Package stereo pairs two mono channel buffers into a stereo stimulus.
package stereo
