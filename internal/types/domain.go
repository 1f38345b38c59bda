package types

import (
	"encoding/json"
	"time"

	"github.com/mycelian/readlater/client/internal/wire"
)

// ------------------------------
// Core Domain Records
// ------------------------------
//
// Records are produced only by decoding service responses. Each decode is
// all-or-nothing: the first missing or malformed field aborts it.

// Image is an image attached to an item.
type Image struct {
	ItemID  uint64
	ImageID uint64
	Src     string
	Width   uint16
	Height  uint16
	Caption string
	Credit  string
}

// Video is a video attached to an item. Length is nil when the service does
// not report one.
type Video struct {
	ItemID  uint64
	VideoID uint64
	Src     string
	Width   uint16
	Height  uint16
	Length  *int
	VID     string
	Type    uint16
}

// Tag is a tag attached to a listed item.
type Tag struct {
	ItemID uint64
	Tag    string
}

// Author is an author credited on a listed item.
type Author struct {
	AuthorID uint64
	Name     string
}

// Item is a saved item as returned by the get operation. Images, Videos,
// Tags and Authors are nil when the service omits them.
type Item struct {
	ItemID     uint64
	ResolvedID uint64

	GivenURL      string
	GivenTitle    string
	ResolvedTitle string
	ResolvedURL   string
	Excerpt       string
	WordCount     int
	SortID        int

	TimeAdded     time.Time
	TimeRead      time.Time
	TimeUpdated   time.Time
	TimeFavorited time.Time

	Favorite  bool
	IsIndex   bool
	IsArticle bool
	HasImage  Has
	HasVideo  Has
	Status    Status

	Images  []Image
	Videos  []Video
	Tags    []Tag
	Authors []Author
}

// AddedItem is the item returned by the add operation. It overlaps with Item
// but carries resolution metadata instead of list state.
type AddedItem struct {
	ItemID         uint64
	ExtendedItemID uint64
	ResolvedID     uint64
	DomainID       uint64
	OriginDomainID uint64

	GivenURL          string
	NormalURL         string
	ResolvedURL       string
	ResolvedNormalURL string
	ContentLength     int
	WordCount         int
	Encoding          string
	MimeType          string
	Lang              string
	Title             string
	Excerpt           string

	// Free-form service dates such as "2014-01-01 00:00:00"; kept verbatim.
	DatePublished string
	DateResolved  string

	LoginRequired       bool
	ResponseCode        uint16
	UsedFallback        bool
	InnerdomainRedirect bool

	IsIndex   bool
	IsArticle bool
	HasImage  Has
	HasVideo  Has

	Images []Image
	Videos []Video
}

// DecodeImage decodes one image record.
func DecodeImage(raw json.RawMessage) (Image, error) {
	r := wire.NewRecord("image", raw)
	img := Image{
		ItemID:  r.Uint64("item_id"),
		ImageID: r.Uint64("image_id"),
		Src:     r.String("src"),
		Width:   r.Uint16("width"),
		Height:  r.Uint16("height"),
		Caption: r.String("caption"),
		Credit:  r.String("credit"),
	}
	if err := r.Err(); err != nil {
		return Image{}, err
	}
	return img, nil
}

// DecodeVideo decodes one video record. The numeric type tag is read from "type".
func DecodeVideo(raw json.RawMessage) (Video, error) {
	r := wire.NewRecord("video", raw)
	v := Video{
		ItemID:  r.Uint64("item_id"),
		VideoID: r.Uint64("video_id"),
		Src:     r.String("src"),
		Width:   r.Uint16("width"),
		Height:  r.Uint16("height"),
		Length:  r.OptInt("length"),
		VID:     r.String("vid"),
		Type:    r.Uint16("type"),
	}
	if err := r.Err(); err != nil {
		return Video{}, err
	}
	return v, nil
}

func decodeTag(raw json.RawMessage) (Tag, error) {
	r := wire.NewRecord("tag", raw)
	t := Tag{ItemID: r.Uint64("item_id"), Tag: r.String("tag")}
	if err := r.Err(); err != nil {
		return Tag{}, err
	}
	return t, nil
}

func decodeAuthor(raw json.RawMessage) (Author, error) {
	r := wire.NewRecord("author", raw)
	a := Author{AuthorID: r.Uint64("author_id"), Name: r.String("name")}
	if err := r.Err(); err != nil {
		return Author{}, err
	}
	return a, nil
}

// decodeAll decodes every element with fn, failing on the first bad one.
func decodeAll[T any](elems []json.RawMessage, fn func(json.RawMessage) (T, error)) ([]T, error) {
	out := make([]T, 0, len(elems))
	for _, e := range elems {
		v, err := fn(e)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// readSeq decodes a required indexed collection field of r.
func readSeq[T any](r *wire.Record, name string, fn func(json.RawMessage) (T, error)) []T {
	elems := r.Indexed(name)
	if r.Err() != nil {
		return nil
	}
	out, err := decodeAll(elems, fn)
	r.Fail(name, err)
	return out
}

// readOptSeq is readSeq for a collection the service may omit.
func readOptSeq[T any](r *wire.Record, name string, keyed bool, fn func(json.RawMessage) (T, error)) []T {
	var (
		elems []json.RawMessage
		ok    bool
	)
	if keyed {
		elems, ok = r.OptKeyed(name)
	} else {
		elems, ok = r.OptIndexed(name)
	}
	if !ok {
		return nil
	}
	out, err := decodeAll(elems, fn)
	r.Fail(name, err)
	return out
}

// DecodeItem decodes one entry of the get operation's list.
func DecodeItem(raw json.RawMessage) (Item, error) {
	r := wire.NewRecord("item", raw)
	it := Item{
		ItemID:        r.Uint64("item_id"),
		GivenURL:      r.String("given_url"),
		GivenTitle:    r.String("given_title"),
		WordCount:     r.Int("word_count"),
		Excerpt:       r.String("excerpt"),
		TimeAdded:     r.Time("time_added"),
		TimeRead:      r.Time("time_read"),
		TimeUpdated:   r.Time("time_updated"),
		TimeFavorited: r.Time("time_favorited"),
		Favorite:      r.Bool("favorite"),
		IsIndex:       r.Bool("is_index"),
		IsArticle:     r.Bool("is_article"),
		HasImage:      readHas(r, "has_image"),
		HasVideo:      readHas(r, "has_video"),
		ResolvedID:    r.Uint64("resolved_id"),
		ResolvedTitle: r.String("resolved_title"),
		ResolvedURL:   r.String("resolved_url"),
		SortID:        r.Int("sort_id"),
		Status:        readStatus(r, "status"),
	}
	it.Images = readOptSeq(r, "images", false, DecodeImage)
	it.Videos = readOptSeq(r, "videos", false, DecodeVideo)
	it.Tags = readOptSeq(r, "tags", true, decodeTag)
	it.Authors = readOptSeq(r, "authors", false, decodeAuthor)
	if err := r.Err(); err != nil {
		return Item{}, err
	}
	return it, nil
}

// DecodeAddedItem decodes the item echoed back by the add operation.
func DecodeAddedItem(raw json.RawMessage) (AddedItem, error) {
	r := wire.NewRecord("added item", raw)
	it := AddedItem{
		ItemID:              r.Uint64("item_id"),
		ExtendedItemID:      r.Uint64("extended_item_id"),
		GivenURL:            r.String("given_url"),
		NormalURL:           r.String("normal_url"),
		ContentLength:       r.Int("content_length"),
		WordCount:           r.Int("word_count"),
		Encoding:            r.String("encoding"),
		MimeType:            r.String("mime_type"),
		Lang:                r.String("lang"),
		Title:               r.String("title"),
		Excerpt:             r.String("excerpt"),
		DatePublished:       r.String("date_published"),
		DateResolved:        r.String("date_resolved"),
		ResolvedID:          r.Uint64("resolved_id"),
		ResolvedURL:         r.String("resolved_url"),
		ResolvedNormalURL:   r.String("resolved_normal_url"),
		LoginRequired:       r.Bool("login_required"),
		ResponseCode:        r.Uint16("response_code"),
		UsedFallback:        r.Bool("used_fallback"),
		DomainID:            r.Uint64("domain_id"),
		OriginDomainID:      r.Uint64("origin_domain_id"),
		InnerdomainRedirect: r.Bool("innerdomain_redirect"),
		IsIndex:             r.Bool("is_index"),
		IsArticle:           r.Bool("is_article"),
		HasImage:            readHas(r, "has_image"),
		HasVideo:            readHas(r, "has_video"),
	}
	it.Videos = readSeq(r, "videos", DecodeVideo)
	it.Images = readSeq(r, "images", DecodeImage)
	if err := r.Err(); err != nil {
		return AddedItem{}, err
	}
	return it, nil
}

// UnmarshalJSON lets an Item be decoded with encoding/json.
func (it *Item) UnmarshalJSON(b []byte) error {
	v, err := DecodeItem(b)
	if err != nil {
		return err
	}
	*it = v
	return nil
}

// UnmarshalJSON lets an AddedItem be decoded with encoding/json.
func (it *AddedItem) UnmarshalJSON(b []byte) error {
	v, err := DecodeAddedItem(b)
	if err != nil {
		return err
	}
	*it = v
	return nil
}
