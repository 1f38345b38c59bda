package types

import (
	"time"

	"github.com/mycelian/readlater/client/internal/wire"
)

// UntaggedSentinel is the tag value the service reads as "items without tags".
// A real tag with this exact name cannot be selected; it is indistinguishable
// from the sentinel and is not guarded against.
const UntaggedSentinel = "_untagged_"

// TagSelector is the tag clause of a Filter: either untagged or one tag.
type TagSelector struct {
	tag      string
	untagged bool
}

// Untagged selects items that carry no tags.
func Untagged() TagSelector { return TagSelector{untagged: true} }

// Tagged selects items carrying tag.
func Tagged(tag string) TagSelector { return TagSelector{tag: tag} }

// IsUntagged reports whether t selects untagged items.
func (t TagSelector) IsUntagged() bool { return t.untagged }

func (t TagSelector) wireValue() string {
	if t.untagged {
		return UntaggedSentinel
	}
	return t.tag
}

// Filter accumulates the optional clauses of a get request. Each setter
// overwrites the previous value of its clause; clauses never set are left
// out of the request entirely. A Filter is not safe for concurrent mutation.
type Filter struct {
	search      *string
	domain      *string
	tag         *TagSelector
	state       *State
	contentType *ContentType
	detailType  *DetailType
	favorite    *bool
	since       *time.Time
	sort        *Sort
	offset      *uint64
	count       *uint64
}

// NewFilter returns a Filter with no clauses set.
func NewFilter() *Filter { return &Filter{} }

func (f *Filter) Search(text string) *Filter { f.search = &text; return f }
func (f *Filter) Domain(domain string) *Filter { f.domain = &domain; return f }
func (f *Filter) Tag(sel TagSelector) *Filter { f.tag = &sel; return f }
func (f *Filter) State(s State) *Filter { f.state = &s; return f }
func (f *Filter) ContentType(ct ContentType) *Filter { f.contentType = &ct; return f }
func (f *Filter) DetailType(dt DetailType) *Filter { f.detailType = &dt; return f }
func (f *Filter) Favorite(fav bool) *Filter { f.favorite = &fav; return f }
func (f *Filter) Since(t time.Time) *Filter { f.since = &t; return f }
func (f *Filter) Sort(s Sort) *Filter { f.sort = &s; return f }
func (f *Filter) Offset(n uint64) *Filter { f.offset = &n; return f }
func (f *Filter) Count(n uint64) *Filter { f.count = &n; return f }
func (f *Filter) Slice(offset, count uint64) *Filter { return f.Offset(offset).Count(count) }
func (f *Filter) Untagged() *Filter { return f.Tag(Untagged()) }
func (f *Filter) Tagged(tag string) *Filter { return f.Tag(Tagged(tag)) }
func (f *Filter) Unread() *Filter { return f.State(StateUnread) }
func (f *Filter) Archived() *Filter { return f.State(StateArchive) }
func (f *Filter) All() *Filter { return f.State(StateAll) }
func (f *Filter) Articles() *Filter { return f.ContentType(ContentArticle) }
func (f *Filter) Videos() *Filter { return f.ContentType(ContentVideo) }
func (f *Filter) Images() *Filter { return f.ContentType(ContentImage) }
func (f *Filter) Simple() *Filter { return f.DetailType(DetailSimple) }
func (f *Filter) Complete() *Filter { return f.DetailType(DetailComplete) }
func (f *Filter) SortByNewest() *Filter { return f.Sort(SortNewest) }
func (f *Filter) SortByOldest() *Filter { return f.Sort(SortOldest) }
func (f *Filter) SortByTitle() *Filter { return f.Sort(SortTitle) }
func (f *Filter) SortBySite() *Filter { return f.Sort(SortSite) }

// encode appends the set clauses to o.
func (f *Filter) encode(o *wire.Object) {
	o.OptStr("search", f.search).
		OptStr("domain", f.domain)
	if f.tag != nil {
		o.Str("tag", f.tag.wireValue())
	}
	if f.state != nil {
		o.Str("state", string(*f.state))
	}
	// camelCase keys and 0/1 favorite are what the service reads; some
	// clients send content_type, detail_type and a JSON boolean instead.
	if f.contentType != nil {
		o.Str("contentType", string(*f.contentType))
	}
	if f.detailType != nil {
		o.Str("detailType", string(*f.detailType))
	}
	o.OptBool01("favorite", f.favorite)
	if f.since != nil {
		// pre-epoch times clamp to 0, which already means "everything"
		o.Uint("since", uint64(max(f.since.Unix(), 0)))
	}
	if f.sort != nil {
		o.Str("sort", string(*f.sort))
	}
	o.OptUint("count", f.count).
		OptUint("offset", f.offset)
}

// MarshalJSON encodes only the filter clauses, without credentials.
func (f *Filter) MarshalJSON() ([]byte, error) {
	o := wire.NewObject()
	f.encode(o)
	return o.Bytes()
}
