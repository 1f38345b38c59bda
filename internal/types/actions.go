package types

import (
	"encoding/json"

	"github.com/mycelian/readlater/client/internal/wire"
)

// Action names as the service expects them in the "action" discriminator.
// Older client libraries send the same names under "name"; the service reads "action".
const (
	ActionAdd         = "add"
	ActionArchive     = "archive"
	ActionReadd       = "readd"
	ActionFavorite    = "favorite"
	ActionUnfavorite  = "unfavorite"
	ActionDelete      = "delete"
	ActionTagsAdd     = "tags_add"
	ActionTagsReplace = "tags_replace"
	ActionTagsClear   = "tags_clear"
	ActionTagRename   = "tag_rename"
)

// Action is one mutation in a send batch. Implementations are immutable
// values: every modifier returns a copy.
//
// The optional time attached with At is passed through to the service
// unchanged; its unit is not documented upstream.
type Action interface {
	json.Marshaler
	Name() string
}

// ItemAction is an action that targets a single item and carries nothing
// else: archive, readd, favorite, unfavorite, delete and tags_clear.
type ItemAction struct {
	name   string
	itemID uint64
	time   *uint64
}

func Archive(itemID uint64) ItemAction { return ItemAction{name: ActionArchive, itemID: itemID} }
func Readd(itemID uint64) ItemAction { return ItemAction{name: ActionReadd, itemID: itemID} }
func Favorite(itemID uint64) ItemAction { return ItemAction{name: ActionFavorite, itemID: itemID} }
func Unfavorite(itemID uint64) ItemAction { return ItemAction{name: ActionUnfavorite, itemID: itemID} }
func Delete(itemID uint64) ItemAction { return ItemAction{name: ActionDelete, itemID: itemID} }
func TagsClear(itemID uint64) ItemAction { return ItemAction{name: ActionTagsClear, itemID: itemID} }

// At returns a copy of a carrying time.
func (a ItemAction) At(time uint64) ItemAction { a.time = &time; return a }

func (a ItemAction) Name() string { return a.name }

func (a ItemAction) MarshalJSON() ([]byte, error) {
	return wire.NewObject().
		Str("action", a.name).
		Uint("item_id", a.itemID).
		OptUint("time", a.time).
		Bytes()
}

// AddAction saves a URL (or re-adds a known item) as part of a batch. All of
// its fields are optional; an unset item id is omitted, which the service
// treats differently from an item id that is present.
type AddAction struct {
	itemID *uint64
	refID  *string
	tags   *string
	time   *uint64
	title  *string
	url    *string
}

// NewAdd returns an add action with no fields set.
func NewAdd() AddAction { return AddAction{} }

func (a AddAction) WithItemID(id uint64) AddAction { a.itemID = &id; return a }
func (a AddAction) WithRefID(ref string) AddAction { a.refID = &ref; return a }
func (a AddAction) WithTags(tags string) AddAction { a.tags = &tags; return a }
func (a AddAction) WithTitle(title string) AddAction { a.title = &title; return a }
func (a AddAction) WithURL(url string) AddAction { a.url = &url; return a }
func (a AddAction) At(time uint64) AddAction { a.time = &time; return a }

func (a AddAction) Name() string { return ActionAdd }

func (a AddAction) MarshalJSON() ([]byte, error) {
	return wire.NewObject().
		Str("action", ActionAdd).
		OptUint("item_id", a.itemID).
		OptStr("ref_id", a.refID).
		OptStr("tags", a.tags).
		OptUint("time", a.time).
		OptStr("title", a.title).
		OptStr("url", a.url).
		Bytes()
}

// TagsAction adds tags to, or replaces the tags of, one item. Tags is the
// service's comma separated tag list.
type TagsAction struct {
	name   string
	itemID uint64
	tags   string
	time   *uint64
}

func TagsAdd(itemID uint64, tags string) TagsAction {
	return TagsAction{name: ActionTagsAdd, itemID: itemID, tags: tags}
}

func TagsReplace(itemID uint64, tags string) TagsAction {
	return TagsAction{name: ActionTagsReplace, itemID: itemID, tags: tags}
}

func (a TagsAction) At(time uint64) TagsAction { a.time = &time; return a }
func (a TagsAction) Name() string { return a.name }

func (a TagsAction) MarshalJSON() ([]byte, error) {
	return wire.NewObject().
		Str("action", a.name).
		Uint("item_id", a.itemID).
		Str("tags", a.tags).
		OptUint("time", a.time).
		Bytes()
}

// TagRenameAction renames a tag.
type TagRenameAction struct {
	itemID uint64
	oldTag string
	newTag string
	time   *uint64
}

func TagRename(itemID uint64, oldTag, newTag string) TagRenameAction {
	return TagRenameAction{itemID: itemID, oldTag: oldTag, newTag: newTag}
}

func (a TagRenameAction) At(time uint64) TagRenameAction { a.time = &time; return a }
func (a TagRenameAction) Name() string { return ActionTagRename }

func (a TagRenameAction) MarshalJSON() ([]byte, error) {
	return wire.NewObject().
		Str("action", ActionTagRename).
		Uint("item_id", a.itemID).
		Str("old_tag", a.oldTag).
		Str("new_tag", a.newTag).
		OptUint("time", a.time).
		Bytes()
}
