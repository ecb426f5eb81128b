package models

// DeletePolicy describes how an entity disappears. It is either SoftDelete
// (a status transition) or HardDelete (row removal).
type DeletePolicy interface {
	deletePolicy()
}

type SoftDelete struct {
	Status string
}

type HardDelete struct {
	// Cascade removes dependent rows (likes, favorites, comments, reviews)
	// before the row itself.
	Cascade bool
}

func (SoftDelete) deletePolicy() {}
func (HardDelete) deletePolicy() {}

var (
	ReviewDeletePolicy  DeletePolicy = SoftDelete{Status: ReviewStatusHidden}
	ReviewPurgePolicy   DeletePolicy = HardDelete{Cascade: true}
	BookDeletePolicy    DeletePolicy = HardDelete{Cascade: true}
	CommentDeletePolicy DeletePolicy = HardDelete{Cascade: false}
)
