package types

import (
	"fmt"

	"github.com/mycelian/readlater/client/internal/wire"
)

// Has is the tri-state image/video indicator on an item.
type Has uint8

const (
	HasNo  Has = 0 // item has none
	HasYes Has = 1 // item has some
	HasIs  Has = 2 // item is one
)

func (h Has) String() string {
	switch h {
	case HasNo:
		return "no"
	case HasYes:
		return "yes"
	case HasIs:
		return "is"
	default:
		return fmt.Sprintf("Has(%d)", uint8(h))
	}
}

// Status is the lifecycle state of a saved item.
type Status uint8

const (
	StatusNormal   Status = 0
	StatusArchived Status = 1
	StatusDeleted  Status = 2
)

func (s Status) String() string {
	switch s {
	case StatusNormal:
		return "normal"
	case StatusArchived:
		return "archived"
	case StatusDeleted:
		return "deleted"
	default:
		return fmt.Sprintf("Status(%d)", uint8(s))
	}
}

func readHas(r *wire.Record, name string) Has       { return Has(r.Enum(name, 3)) }
func readStatus(r *wire.Record, name string) Status { return Status(r.Enum(name, 3)) }

// State selects items by read state in a get request.
type State string

const (
	StateUnread  State = "unread"
	StateArchive State = "archive"
	StateAll     State = "all"
)

// ContentType selects items by kind in a get request.
type ContentType string

const (
	ContentArticle ContentType = "article"
	ContentVideo   ContentType = "video"
	ContentImage   ContentType = "image"
)

// DetailType controls how much of each item the service returns.
type DetailType string

const (
	DetailSimple   DetailType = "simple"
	DetailComplete DetailType = "complete"
)

// Sort orders the returned items.
type Sort string

const (
	SortNewest Sort = "newest"
	SortOldest Sort = "oldest"
	SortTitle  Sort = "title"
	SortSite   Sort = "site"
)
