package interfaces

import "errors"

// ErrRecordRejected is returned by repositories when the store refuses a
// write as invalid (oversized item, malformed attribute). Retrying the same
// write cannot succeed.
var ErrRecordRejected = errors.New("record rejected by store")
