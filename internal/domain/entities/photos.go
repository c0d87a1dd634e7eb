package entities

// PhotoBucket is one of the two capped photo sequences on an order.
type PhotoBucket string

const (
	PhotoBucketBefore PhotoBucket = "antes"
	PhotoBucketAfter  PhotoBucket = "depois"
)

const (
	MaxPhotosBefore = 3
	MaxPhotosAfter  = 3
)

func (b PhotoBucket) Max() int {
	if b == PhotoBucketAfter {
		return MaxPhotosAfter
	}
	return MaxPhotosBefore
}

// MergePhotos appends pending to persisted and truncates to max.
// It returns the merged sequence and how many pending items did not fit.
// Empty entries are ignored.
func MergePhotos(persisted, pending []string, max int) ([]string, int) {
	merged := make([]string, 0, max)
	for _, p := range persisted {
		if len(merged) == max {
			break
		}
		merged = append(merged, p)
	}

	rejected := 0
	for _, p := range pending {
		if p == "" {
			continue
		}
		if len(merged) >= max {
			rejected++
			continue
		}
		merged = append(merged, p)
	}
	return merged, rejected
}

// PhotoSaveResult reports the outcome of a photo merge-write.
type PhotoSaveResult struct {
	Order          ServiceOrder
	AcceptedBefore int
	RejectedBefore int
	AcceptedAfter  int
	RejectedAfter  int
}

func (r PhotoSaveResult) Rejected() int {
	return r.RejectedBefore + r.RejectedAfter
}

func (r PhotoSaveResult) Accepted() int {
	return r.AcceptedBefore + r.AcceptedAfter
}
