// SPDX-License-Identifier: MIT

package resample

// GatherOptionsForTest exposes the option snapshot used by Resample and
// ResampleBatch to resample_test.
func GatherOptionsForTest(opts ...Option) Options { return gatherOptions(opts...) }
