package client

import "github.com/mycelian/readlater/client/internal/types"

// Public type aliases so SDK consumers can import only the client package.
type (
	// Domain entities
	Item      = types.Item
	AddedItem = types.AddedItem
	Image     = types.Image
	Video     = types.Video
	Tag       = types.Tag
	Author    = types.Author
	Has       = types.Has
	Status    = types.Status

	// Filters
	Filter      = types.Filter
	TagSelector = types.TagSelector
	State       = types.State
	ContentType = types.ContentType
	DetailType  = types.DetailType
	Sort        = types.Sort

	// Actions
	Action          = types.Action
	ItemAction      = types.ItemAction
	AddAction       = types.AddAction
	TagsAction      = types.TagsAction
	TagRenameAction = types.TagRenameAction

	// Responses
	AddResponse = types.AddResponse
	GetResponse = types.GetResponse
)

const (
	HasNo  = types.HasNo
	HasYes = types.HasYes
	HasIs  = types.HasIs

	StatusNormal   = types.StatusNormal
	StatusArchived = types.StatusArchived
	StatusDeleted  = types.StatusDeleted

	StateUnread  = types.StateUnread
	StateArchive = types.StateArchive
	StateAll     = types.StateAll

	ContentArticle = types.ContentArticle
	ContentVideo   = types.ContentVideo
	ContentImage   = types.ContentImage

	DetailSimple   = types.DetailSimple
	DetailComplete = types.DetailComplete

	SortNewest = types.SortNewest
	SortOldest = types.SortOldest
	SortTitle  = types.SortTitle
	SortSite   = types.SortSite

	UntaggedSentinel = types.UntaggedSentinel
)

// Filter and action constructors.
var (
	NewFilter = types.NewFilter
	Untagged  = types.Untagged
	Tagged    = types.Tagged

	Archive     = types.Archive
	Readd       = types.Readd
	Favorite    = types.Favorite
	Unfavorite  = types.Unfavorite
	Delete      = types.Delete
	TagsClear   = types.TagsClear
	NewAdd      = types.NewAdd
	TagsAdd     = types.TagsAdd
	TagsReplace = types.TagsReplace
	TagRename   = types.TagRename
)
