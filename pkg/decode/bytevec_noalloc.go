//go:build bitrail_noalloc

package decode

const AllocEnabled = false
