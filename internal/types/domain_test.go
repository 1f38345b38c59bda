package types

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mycelian/readlater/client/internal/wire"
)

const imageJSON = `{"item_id":"229279689","image_id":"1","src":"http://example.com/a.jpg","width":"640","height":"480","caption":"cap","credit":"me"}`

const videoJSON = `{"item_id":"229279689","video_id":"1","src":"http://www.youtube.com/v/Er34PbFkVGk","width":"420","height":"315","type":"1","vid":"Er34PbFkVGk","length":"212"}`

func itemJSON(overrides map[string]any) json.RawMessage {
	base := map[string]any{
		"item_id":        "229279689",
		"resolved_id":    "229279689",
		"given_url":      "http://www.example.com/article",
		"given_title":    "Given",
		"favorite":       "1",
		"status":         "0",
		"resolved_title": "Resolved",
		"resolved_url":   "http://www.example.com/article",
		"excerpt":        "An excerpt",
		"is_article":     "1",
		"is_index":       "0",
		"has_video":      "1",
		"has_image":      "2",
		"word_count":     "3197",
		"time_added":     "1700000000",
		"time_updated":   "1700000100",
		"time_read":      "0",
		"time_favorited": "1700000200",
		"sort_id":        0,
		"images":         json.RawMessage(`{"1":` + imageJSON + `}`),
		"videos":         json.RawMessage(`{"1":` + videoJSON + `}`),
		"unknown_field":  []int{1, 2, 3},
	}
	for k, v := range overrides {
		if v == nil {
			delete(base, k)
			continue
		}
		base[k] = v
	}
	b, _ := json.Marshal(base)
	return b
}

func TestDecodeImage(t *testing.T) {
	t.Parallel()
	img, err := DecodeImage(json.RawMessage(imageJSON))
	require.NoError(t, err)
	assert.Equal(t, Image{
		ItemID: 229279689, ImageID: 1, Src: "http://example.com/a.jpg",
		Width: 640, Height: 480, Caption: "cap", Credit: "me",
	}, img)
}

func TestDecodeVideo(t *testing.T) {
	t.Parallel()
	v, err := DecodeVideo(json.RawMessage(videoJSON))
	require.NoError(t, err)
	require.NotNil(t, v.Length)
	assert.Equal(t, 212, *v.Length)
	assert.Equal(t, uint16(1), v.Type)
	assert.Equal(t, "Er34PbFkVGk", v.VID)

	noLength := `{"item_id":"1","video_id":"2","src":"s","width":"0","height":"0","type":"2","vid":"v"}`
	v, err = DecodeVideo(json.RawMessage(noLength))
	require.NoError(t, err)
	assert.Nil(t, v.Length)
}

func TestDecodeItem(t *testing.T) {
	t.Parallel()
	it, err := DecodeItem(itemJSON(nil))
	require.NoError(t, err)

	assert.Equal(t, uint64(229279689), it.ItemID)
	assert.Equal(t, "Given", it.GivenTitle)
	assert.True(t, it.Favorite)
	assert.True(t, it.IsArticle)
	assert.False(t, it.IsIndex)
	assert.Equal(t, HasYes, it.HasVideo)
	assert.Equal(t, HasIs, it.HasImage)
	assert.Equal(t, StatusNormal, it.Status)
	assert.Equal(t, 3197, it.WordCount)
	assert.Equal(t, time.Unix(1700000000, 0).UTC(), it.TimeAdded)
	assert.Equal(t, int64(0), it.TimeRead.Unix())
	require.Len(t, it.Images, 1)
	assert.Equal(t, uint16(640), it.Images[0].Width)
	require.Len(t, it.Videos, 1)
	assert.Nil(t, it.Tags)
	assert.Nil(t, it.Authors)
}

func TestDecodeItem_OptionalCollections(t *testing.T) {
	t.Parallel()
	it, err := DecodeItem(itemJSON(map[string]any{
		"images":  nil,
		"videos":  json.RawMessage(`[]`),
		"tags":    json.RawMessage(`{"go":{"item_id":"229279689","tag":"go"},"reading":{"item_id":"229279689","tag":"reading"}}`),
		"authors": json.RawMessage(`{"42":{"item_id":"229279689","author_id":"42","name":"Ada"}}`),
	}))
	require.NoError(t, err)
	assert.Nil(t, it.Images)
	assert.NotNil(t, it.Videos)
	assert.Empty(t, it.Videos)
	assert.Equal(t, []Tag{{ItemID: 229279689, Tag: "go"}, {ItemID: 229279689, Tag: "reading"}}, it.Tags)
	assert.Equal(t, []Author{{AuthorID: 42, Name: "Ada"}}, it.Authors)
}

func TestDecodeItem_AllOrNothing(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name      string
		overrides map[string]any
		field     string
		reason    error
	}{
		{"missing given_url", map[string]any{"given_url": nil}, "given_url", wire.ErrMissingField},
		{"status out of range", map[string]any{"status": "3"}, "status", wire.ErrInvalidEnumValue},
		{"has_image out of range", map[string]any{"has_image": 7}, "has_image", wire.ErrInvalidEnumValue},
		{"favorite not 0/1", map[string]any{"favorite": "2"}, "favorite", wire.ErrInvalidEnumValue},
		{"item id with letters", map[string]any{"item_id": "12a"}, "item_id", wire.ErrMalformedNumber},
		{"images as non-empty array", map[string]any{"images": []string{"x"}}, "images", wire.ErrUnexpectedShape},
		{"bad nested image", map[string]any{"images": json.RawMessage(`{"0":{"item_id":"1"}}`)}, "images", wire.ErrMissingField},
	}
	for _, c := range cases {
		it, err := DecodeItem(itemJSON(c.overrides))
		require.Error(t, err, c.name)
		assert.ErrorIs(t, err, c.reason, c.name)
		assert.Equal(t, Item{}, it, c.name)

		var fe *wire.FieldError
		require.True(t, errors.As(err, &fe), c.name)
		assert.Equal(t, "item", fe.Entity, c.name)
		assert.Equal(t, c.field, fe.Field, c.name)
	}
}

func TestDecodeAddedItem(t *testing.T) {
	t.Parallel()
	raw := `{
		"item_id":"229279689","extended_item_id":"229279689","normal_url":"http://example.com",
		"given_url":"http://example.com/","content_length":"1234","word_count":"300","encoding":"utf-8",
		"mime_type":"text/html","lang":"en","title":"T","excerpt":"E",
		"date_published":"2014-01-01 00:00:00","date_resolved":"2014-01-02 00:00:00",
		"resolved_id":"229279689","resolved_url":"http://example.com/","resolved_normal_url":"http://example.com",
		"login_required":"0","response_code":"200","used_fallback":"0",
		"domain_id":"85964","origin_domain_id":"85964","innerdomain_redirect":"1",
		"is_index":"0","is_article":"1","has_image":"1","has_video":"0",
		"images":{"1":` + imageJSON + `},"videos":[]
	}`
	it, err := DecodeAddedItem(json.RawMessage(raw))
	require.NoError(t, err)
	assert.Equal(t, uint64(85964), it.DomainID)
	assert.Equal(t, uint16(200), it.ResponseCode)
	assert.True(t, it.InnerdomainRedirect)
	assert.False(t, it.LoginRequired)
	assert.Equal(t, 1234, it.ContentLength)
	assert.Equal(t, "2014-01-01 00:00:00", it.DatePublished)
	assert.Equal(t, HasYes, it.HasImage)
	require.Len(t, it.Images, 1)
	assert.NotNil(t, it.Videos)
	assert.Empty(t, it.Videos)

	// images and videos are required on an added item
	var m map[string]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(raw), &m))
	delete(m, "videos")
	b, _ := json.Marshal(m)
	_, err = DecodeAddedItem(b)
	assert.ErrorIs(t, err, wire.ErrMissingField)
}

func TestItem_UnmarshalJSON(t *testing.T) {
	t.Parallel()
	var it Item
	require.NoError(t, json.Unmarshal(itemJSON(nil), &it))
	assert.Equal(t, uint64(229279689), it.ItemID)

	var bad Item
	assert.Error(t, json.Unmarshal(itemJSON(map[string]any{"status": 9}), &bad))
}
